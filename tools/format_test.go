package tools

import (
	"strings"
	"testing"

	"hackvm/parser"
)

func parseAll(t *testing.T, src string) []parser.Command {
	t.Helper()
	lines := parser.Normalize(src, "Demo.vm")
	cmds, err := parser.New("Demo.vm").Parse(lines)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	return cmds
}

func TestFormatRoundTrip(t *testing.T) {
	src := "push constant 7\npush constant 8\nadd\npop local 0\nlabel LOOP\ngoto LOOP\nif-goto LOOP\nfunction Main.main 2\ncall Main.main 0\nreturn"
	cmds := parseAll(t, src)

	formatted := NewFormatter(DefaultFormatOptions()).Format(cmds)

	reparsed, err := parser.New("Demo.vm").Parse(parser.Normalize(formatted, "Demo.vm"))
	if err != nil {
		t.Fatalf("re-parse error: %v", err)
	}
	if len(reparsed) != len(cmds) {
		t.Fatalf("expected %d commands after round trip, got %d", len(cmds), len(reparsed))
	}
	for i := range cmds {
		if cmds[i].Kind != reparsed[i].Kind || cmds[i].Name != reparsed[i].Name ||
			cmds[i].Segment != reparsed[i].Segment || cmds[i].Offset != reparsed[i].Offset ||
			cmds[i].Op != reparsed[i].Op {
			t.Errorf("command %d changed across round trip: %+v vs %+v", i, cmds[i], reparsed[i])
		}
	}
}

func TestFormatOmitsComments(t *testing.T) {
	cmds := parseAll(t, "push constant 1 // comment")
	out := NewFormatter(DefaultFormatOptions()).Format(cmds)
	if strings.Contains(out, "//") {
		t.Errorf("expected no comments in formatted output, got %q", out)
	}
	if strings.TrimSpace(out) != "push constant 1" {
		t.Errorf("got %q", out)
	}
}

func TestFormatNoTrailingNewline(t *testing.T) {
	cmds := parseAll(t, "return")
	opts := DefaultFormatOptions()
	opts.TrailingNewline = false
	out := NewFormatter(opts).Format(cmds)
	if strings.HasSuffix(out, "\n") {
		t.Errorf("expected no trailing newline, got %q", out)
	}
}
