package codegen

import (
	"strings"
	"testing"

	"hackvm/parser"
)

func translate(t *testing.T, state *State, src string, filename string) string {
	t.Helper()
	state.EnterFile(strings.TrimSuffix(filename, ".vm"))

	lines := parser.Normalize(src, filename)
	cmds, err := parser.New(filename).Parse(lines)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	cg := New(state, Options{EmitComments: false})
	var sb strings.Builder
	for _, cmd := range cmds {
		out, err := cg.Emit(cmd)
		if err != nil {
			t.Fatalf("emit error for %+v: %v", cmd, err)
		}
		sb.WriteString(out)
	}
	return sb.String()
}

func TestPushConstantSequence(t *testing.T) {
	out := translate(t, NewState(), "push constant 7", "Demo.vm")
	want := []string{"@7", "D=A", "@SP", "A=M", "M=D", "@SP", "M=M+1"}
	idx := 0
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		if line != want[idx] {
			t.Fatalf("instruction %d: want %q got %q (full: %q)", idx, want[idx], line, out)
		}
		idx++
	}
	if idx != len(want) {
		t.Fatalf("expected %d instructions, got %d", len(want), idx)
	}
}

func TestAddEndsWithExpectedTail(t *testing.T) {
	out := translate(t, NewState(), "push constant 7\npush constant 8\nadd", "Demo.vm")
	if !strings.HasSuffix(out, "A=A-1\nM=M+D\n") {
		t.Fatalf("add block did not end as expected, got: %q", out)
	}
}

func TestComparisonLabelsIncreasePerKind(t *testing.T) {
	out := translate(t, NewState(), "push constant 5\npush constant 3\neq\npush constant 1\npush constant 1\neq", "Demo.vm")
	if !strings.Contains(out, "(EQ1)") || !strings.Contains(out, "(EQ1_END)") {
		t.Fatalf("expected EQ1/EQ1_END in output: %q", out)
	}
	if !strings.Contains(out, "(EQ2)") || !strings.Contains(out, "(EQ2_END)") {
		t.Fatalf("expected EQ2/EQ2_END in output: %q", out)
	}
}

func TestStaticLabelStableAcrossPushAndPop(t *testing.T) {
	out := translate(t, NewState(), "push static 3\npop static 3", "Demo.vm")
	if strings.Count(out, "@Demo.3") != 2 {
		t.Fatalf("expected @Demo.3 to appear twice, got: %q", out)
	}
}

func TestFunctionDeclarationPushesZeroLocals(t *testing.T) {
	out := translate(t, NewState(), "function Mult.mult 2", "Mult.vm")
	want := "(Mult.mult)\n" + pushZero + pushZero
	if out != want {
		t.Fatalf("want %q got %q", want, out)
	}
}

func TestCallAndReturnSequence(t *testing.T) {
	src := "function Mult.mult 0\ncall Mult.mult 0\nreturn"
	out := translate(t, NewState(), src, "Mult.vm")

	if !strings.Contains(out, "@Mult.mult\n0;JMP\n(Mult.mult$ret.1)\n") {
		t.Fatalf("expected call tail with return label, got: %q", out)
	}

	returnBlock := out[strings.LastIndex(out, "@LCL\nD=M\n@R13"):]
	wantPrefix := "@LCL\nD=M\n@R13\nM=D\n" +
		"@R13\nD=M\n@5\nA=D-A\nD=M\n@R14\nM=D\n" +
		"@SP\nAM=M-1\nD=M\n@ARG\nA=M\nM=D\n" +
		"@ARG\nD=M+1\n@SP\nM=D\n" +
		"@R13\nD=M\n@1\nA=D-A\nD=M\n@THAT\nM=D\n" +
		"@R13\nD=M\n@2\nA=D-A\nD=M\n@THIS\nM=D\n" +
		"@R13\nD=M\n@3\nA=D-A\nD=M\n@ARG\nM=D\n" +
		"@R13\nD=M\n@4\nA=D-A\nD=M\n@LCL\nM=D\n" +
		"@R14\nA=M\n0;JMP\n"
	if returnBlock != wantPrefix {
		t.Fatalf("return block mismatch:\nwant %q\ngot  %q", wantPrefix, returnBlock)
	}
}

func TestCallCountersPersistAcrossFiles(t *testing.T) {
	state := NewState()
	translate(t, state, "function Foo.bar 0\ncall Foo.bar 0\nreturn", "Foo.vm")
	out := translate(t, state, "call Foo.bar 0", "Other.vm")
	if !strings.Contains(out, "(Foo.bar$ret.2)") {
		t.Fatalf("expected second call to Foo.bar to use ret.2, got: %q", out)
	}
}

func TestCommentEchoPrecedesExpansion(t *testing.T) {
	lines := parser.Normalize("push constant 7", "Demo.vm")
	cmds, err := parser.New("Demo.vm").Parse(lines)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	cg := New(NewState(), DefaultOptions())
	out, err := cg.Emit(cmds[0])
	if err != nil {
		t.Fatalf("emit error: %v", err)
	}
	if !strings.HasPrefix(out, "// --- push constant 7 ---\n") {
		t.Fatalf("expected comment echo prefix, got: %q", out)
	}
}

func TestBootstrapPrependsStackInitAndCall(t *testing.T) {
	cg := New(NewState(), Options{EmitComments: false})
	out := cg.Bootstrap("Sys.init", 0)
	if !strings.HasPrefix(out, "@256\nD=A\n@SP\nM=D\n") {
		t.Fatalf("expected SP=256 prologue, got: %q", out)
	}
	if !strings.Contains(out, "@Sys.init\n0;JMP\n(Sys.init$ret.1)\n") {
		t.Fatalf("expected bootstrap call to Sys.init, got: %q", out)
	}
}

func TestPopConstantRejectedByCodeGen(t *testing.T) {
	cg := New(NewState(), Options{EmitComments: false})
	cmd := parser.Command{Kind: parser.Pop, Segment: parser.Constant, Offset: 0, Raw: "pop constant 0"}
	_, err := cg.Emit(cmd)
	if err == nil {
		t.Fatal("expected CannotPopToConstant error")
	}
	terr, ok := err.(*Error)
	if !ok || terr.Kind != CannotPopToConstant {
		t.Errorf("expected CannotPopToConstant, got %v", err)
	}
}

func TestPushTempOutOfRange(t *testing.T) {
	cg := New(NewState(), Options{EmitComments: false})
	cmd := parser.Command{Kind: parser.Push, Segment: parser.Temp, Offset: 8, Raw: "push temp 8"}
	_, err := cg.Emit(cmd)
	if err == nil {
		t.Fatal("expected TempOutOfRange error")
	}
	terr, ok := err.(*Error)
	if !ok || terr.Kind != TempOutOfRange {
		t.Errorf("expected TempOutOfRange, got %v", err)
	}
}

func TestPushTempSevenSucceeds(t *testing.T) {
	cg := New(NewState(), Options{EmitComments: false})
	cmd := parser.Command{Kind: parser.Push, Segment: parser.Temp, Offset: 7, Raw: "push temp 7"}
	if _, err := cg.Emit(cmd); err != nil {
		t.Fatalf("push temp 7 should succeed: %v", err)
	}
}

func TestPushPointerOutOfRange(t *testing.T) {
	cg := New(NewState(), Options{EmitComments: false})
	cmd := parser.Command{Kind: parser.Push, Segment: parser.Pointer, Offset: 2, Raw: "push pointer 2"}
	_, err := cg.Emit(cmd)
	if err == nil {
		t.Fatal("expected PointerOutOfRange error")
	}
	terr, ok := err.(*Error)
	if !ok || terr.Kind != PointerOutOfRange {
		t.Errorf("expected PointerOutOfRange, got %v", err)
	}
}

func TestUnscopedLabelBeforeAnyFunction(t *testing.T) {
	out := translate(t, NewState(), "label LOOP\ngoto LOOP", "Demo.vm")
	if !strings.Contains(out, "($LOOP)") {
		t.Fatalf("expected unscoped label to read ($LOOP), got: %q", out)
	}
}
