// Package view is a read-only terminal browser over a finished assembly
// image, modeled on the teacher's debugger.TUI (debugger/tui.go). Per
// SPEC_FULL.md §5, it runs strictly after assembly completes and never
// reopens or mutates the emitter's buffer.
package view

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/relocbyte/ia32asm/asmctx"
	"github.com/relocbyte/ia32asm/report"
)

// Browser is the terminal UI wrapping a finished *asmctx.Context.
type Browser struct {
	ctx *asmctx.Context

	App   *tview.Application
	Pages *tview.Pages

	SymbolView    *tview.TextView
	ReferenceView *tview.TextView
	HexView       *tview.TextView

	bytesPerLine int
}

// New builds a Browser over ctx's finished state. bytesPerLine controls
// the hex pane's wrap width (see asmconfig.Config.Report.HexBytesPerLine).
func New(ctx *asmctx.Context, bytesPerLine int) *Browser {
	b := &Browser{
		ctx:          ctx,
		App:          tview.NewApplication(),
		bytesPerLine: bytesPerLine,
	}
	b.initializeViews()
	b.buildLayout()
	b.setupKeyBindings()
	return b
}

func (b *Browser) initializeViews() {
	b.SymbolView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(false)
	b.SymbolView.SetBorder(true).SetTitle(" Symbols ")
	b.SymbolView.SetText(report.SymbolTable(b.ctx.Symbols))

	b.ReferenceView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(false)
	b.ReferenceView.SetBorder(true).SetTitle(" Pending References ")
	b.ReferenceView.SetText(report.ReferenceReport(b.ctx.Fixups))

	b.HexView = tview.NewTextView().
		SetDynamicColors(false).
		SetScrollable(true).
		SetWrap(false)
	b.HexView.SetBorder(true).SetTitle(fmt.Sprintf(" Image (%d bytes) ", b.ctx.Em.Len()))
	b.HexView.SetText(report.HexDump(b.ctx.Em.Bytes(), b.bytesPerLine))
}

func (b *Browser) buildLayout() {
	left := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(b.SymbolView, 0, 1, false).
		AddItem(b.ReferenceView, 0, 1, false)

	main := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(left, 0, 1, false).
		AddItem(b.HexView, 0, 2, false)

	b.Pages = tview.NewPages().
		AddPage("main", main, true, true)
}

func (b *Browser) setupKeyBindings() {
	b.App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			b.App.Stop()
			return nil
		}
		switch event.Rune() {
		case 'q', 'Q':
			b.App.Stop()
			return nil
		}
		return event
	})
}

// Run starts the terminal UI's event loop, blocking until the user
// exits.
func (b *Browser) Run() error {
	return b.App.SetRoot(b.Pages, true).EnableMouse(false).Run()
}
