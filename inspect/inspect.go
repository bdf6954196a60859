// Package inspect is a read-only, post-translation terminal viewer. It is
// explicitly not a simulator or stepping debugger (spec.md Non-goals
// exclude both) — it only displays the static artifacts a completed
// translation run produced: the assembled output, the static/call-count
// tables, and the comparison counters.
package inspect

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"hackvm/codegen"
	"hackvm/tools"
)

// Report bundles everything the inspector displays.
type Report struct {
	Output  string
	State   *codegen.State
	Xref    *tools.Xref
	History int // scrollback lines kept by the output pane (config.Inspector.HistorySize)
}

// UI is the terminal inspector window.
type UI struct {
	App         *tview.Application
	Pages       *tview.Pages
	OutputView  *tview.TextView
	SymbolsView *tview.TextView
	CountersView *tview.TextView
}

// New builds the inspector UI around report, laid out the way the
// teacher's debugger TUI composes Flex/TextView panes, minus every pane
// that would require a live execution (registers, memory, breakpoints).
func New(report Report) *UI {
	ui := &UI{App: tview.NewApplication()}

	ui.OutputView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(false).
		SetMaxLines(report.History)
	ui.OutputView.SetBorder(true).SetTitle(" Assembly Output ")
	ui.OutputView.SetText(tview.Escape(report.Output))

	ui.SymbolsView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true)
	ui.SymbolsView.SetBorder(true).SetTitle(" Symbols ")
	ui.SymbolsView.SetText(tview.Escape(symbolsText(report)))

	ui.CountersView = tview.NewTextView().
		SetDynamicColors(true)
	ui.CountersView.SetBorder(true).SetTitle(" Counters ")
	ui.CountersView.SetText(tview.Escape(countersText(report)))

	rightPanel := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(ui.SymbolsView, 0, 3, false).
		AddItem(ui.CountersView, 6, 0, false)

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(ui.OutputView, 0, 2, false).
		AddItem(rightPanel, 0, 1, false)

	ui.Pages = tview.NewPages().AddPage("main", mainLayout, true, true)

	ui.App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			ui.App.Stop()
			return nil
		}
		if event.Rune() == 'q' {
			ui.App.Stop()
			return nil
		}
		return event
	})

	ui.App.SetRoot(ui.Pages, true).SetFocus(ui.OutputView)
	return ui
}

// Run starts the terminal UI event loop and blocks until the user quits.
func (ui *UI) Run() error {
	return ui.App.Run()
}

func symbolsText(report Report) string {
	var sb strings.Builder

	sb.WriteString("Static labels:\n")
	for _, label := range report.State.StaticLabels() {
		fmt.Fprintf(&sb, "  %s\n", label)
	}

	sb.WriteString("\nCall counts:\n")
	for name, count := range report.State.CallCounts() {
		fmt.Fprintf(&sb, "  %s -> highest ret.%d\n", name, count)
	}

	if report.Xref != nil {
		sb.WriteString("\n")
		sb.WriteString(report.Xref.Report())
	}

	return sb.String()
}

func countersText(report Report) string {
	eq, gt, lt := report.State.Counters()
	return fmt.Sprintf("eq: %d\ngt: %d\nlt: %d\n", eq, gt, lt)
}
