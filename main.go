package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"hackvm/codegen"
	"hackvm/config"
	"hackvm/inspect"
	"hackvm/loader"
	"hackvm/parser"
	"hackvm/tools"
)

// Version information - can be overridden at build time with:
// go build -ldflags "-X main.Version=v1.2.3"
var (
	Version = "dev"     // Version number (set by git tag at build time)
	Commit  = "unknown" // Git commit hash
	Date    = "unknown" // Build date
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "Show version information")
		showHelp    = flag.Bool("help", false, "Show help information")
		src         = flag.String("src", "", "Source .vm file or directory")
		out         = flag.String("out", "out.asm", "Output assembly file")
		boot        = flag.Bool("boot", false, "Prepend bootstrap code calling the configured entry point")
		configPath  = flag.String("config", "", "Path to a TOML configuration file")
		lint        = flag.Bool("lint", false, "Run the linter over the translated program and report issues")
		xrefPath    = flag.String("xref", "", "Write a cross-reference report to this path")
		formatCheck = flag.Bool("format-check", false, "Verify the input is already in canonical form; exit nonzero if not")
		inspectMode = flag.Bool("inspect", false, "Open the read-only terminal inspector after translating")
	)

	flag.Parse()

	if *showVersion {
		fmt.Printf("hackvm %s\n", Version)
		if Commit != "unknown" {
			fmt.Printf("Commit: %s\n", Commit)
		}
		if Date != "unknown" {
			fmt.Printf("Built: %s\n", Date)
		}
		os.Exit(0)
	}

	if *showHelp {
		printHelp()
		os.Exit(0)
	}

	if *src == "" {
		fmt.Fprintln(os.Stderr, "hackvm: --src is required")
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hackvm: %v\n", err)
		os.Exit(1)
	}

	files, err := loader.Resolve(*src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hackvm: %v\n", err)
		os.Exit(1)
	}

	allCmds, output, err := translateAll(files, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if *formatCheck {
		f := tools.NewFormatter(tools.DefaultFormatOptions())
		canonical := f.Format(allCmds)
		if canonical != joinRaw(allCmds) {
			fmt.Fprintln(os.Stderr, "hackvm: input is not in canonical form")
			os.Exit(1)
		}
	}

	if *lint {
		issues := tools.NewLinter(&tools.LintOptions{
			WarnUndefinedLabel:         cfg.Lint.WarnUndefinedLabel,
			WarnUnknownCallee:          cfg.Lint.WarnUnknownCallee,
			WarnUnreachableAfterReturn: cfg.Lint.WarnUnreachableAfterReturn,
		}).Lint(allCmds)
		for _, issue := range issues {
			fmt.Fprintln(os.Stderr, issue.String())
		}
	}

	state := codegen.NewState()
	opts := codegen.Options{EmitComments: cfg.Translation.EmitComments, CommentPrefix: cfg.Translation.CommentPrefix}
	cg := codegen.New(state, opts)

	var sb strings.Builder
	if *boot {
		sb.WriteString(cg.Bootstrap(cfg.Translation.BootstrapEntry, cfg.Translation.BootstrapArgs))
	}

	asm, err := emit(files, cg, state)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	sb.WriteString(asm)
	final := sb.String()
	if !cfg.Output.TrailingNewline {
		final = strings.TrimRight(final, "\n")
	}

	if err := os.WriteFile(*out, []byte(final), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "hackvm: writing %s: %v\n", *out, err)
		os.Exit(1)
	}

	if *xrefPath != "" {
		fileOf := func(pos parser.Position) string { return loader.FilePrefix(pos.Filename) }
		x := tools.Build(allCmds, fileOf)
		if err := os.WriteFile(*xrefPath, []byte(x.Report()), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "hackvm: writing %s: %v\n", *xrefPath, err)
			os.Exit(1)
		}
	}

	if *inspectMode {
		x := tools.Build(allCmds, func(pos parser.Position) string { return loader.FilePrefix(pos.Filename) })
		ui := inspect.New(inspect.Report{Output: final, State: state, Xref: x, History: cfg.Inspector.HistorySize})
		if err := ui.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "hackvm: inspector: %v\n", err)
			os.Exit(1)
		}
	}

	_ = output
}

// translateAll parses every file and returns the combined command stream.
// Its string result is always empty; --format-check compares against
// joinRaw instead.
func translateAll(files []string, cfg *config.Config) ([]parser.Command, string, error) {
	var all []parser.Command
	for _, file := range files {
		src, err := os.ReadFile(file)
		if err != nil {
			return nil, "", fmt.Errorf("hackvm: reading %s: %w", file, err)
		}
		lines := parser.Normalize(string(src), file)
		cmds, err := parser.New(file).Parse(lines)
		if err != nil {
			return nil, "", fmt.Errorf("hackvm: %v", err)
		}
		all = append(all, cmds...)
	}
	return all, "", nil
}

// emit runs the shared translation-unit state across every input file in
// the run: file_prefix resets per file, but function scope, comparison
// counters, call counts, and static labels persist for the whole run.
func emit(files []string, cg *codegen.CodeGen, state *codegen.State) (string, error) {
	var sb strings.Builder
	for _, file := range files {
		src, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("hackvm: reading %s: %w", file, err)
		}
		state.EnterFile(loader.FilePrefix(file))
		lines := parser.Normalize(string(src), file)
		cmds, err := parser.New(file).Parse(lines)
		if err != nil {
			return "", fmt.Errorf("hackvm: %v", err)
		}
		for _, cmd := range cmds {
			asm, err := cg.Emit(cmd)
			if err != nil {
				return "", fmt.Errorf("hackvm: %v", err)
			}
			sb.WriteString(asm)
		}
	}
	return sb.String(), nil
}

func joinRaw(cmds []parser.Command) string {
	var sb strings.Builder
	for _, cmd := range cmds {
		sb.WriteString(cmd.Raw)
		sb.WriteString("\n")
	}
	return sb.String()
}

func printHelp() {
	fmt.Println("hackvm - VM language to assembly translator")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  hackvm --src <file.vm|dir> [--out out.asm] [flags]")
	fmt.Println()
	fmt.Println("Flags:")
	flag.PrintDefaults()
}
