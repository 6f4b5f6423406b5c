// Package assembler is the top-level per-line dispatcher: it drives a
// source file's lines through the lexer, directive handling, and the
// encode package's instruction dispatch, then the resolver, producing a
// finished image plus the diagnostics collected along the way. It is the
// "assembler (dispatch)" stage of SPEC_FULL.md §2's data flow.
package assembler

import (
	"errors"

	"github.com/relocbyte/ia32asm/asmctx"
	"github.com/relocbyte/ia32asm/asmerr"
	"github.com/relocbyte/ia32asm/directive"
	"github.com/relocbyte/ia32asm/encode"
	"github.com/relocbyte/ia32asm/lexer"
	"github.com/relocbyte/ia32asm/resolver"
)

// Assembler drives one single-pass assembly run: every source line is
// fed to ProcessLine in order, then Resolve is called exactly once.
type Assembler struct {
	ctx   *asmctx.Context
	diags asmerr.List
}

// New returns an Assembler ready to process lines.
func New() *Assembler {
	return &Assembler{ctx: asmctx.New()}
}

// ProcessLine normalizes and dispatches one raw source line. Errors are
// recorded as diagnostics, not returned — per spec.md §5, the pass never
// aborts early over a recoverable error.
func (a *Assembler) ProcessLine(filename string, lineNo int, raw string) {
	line := lexer.NewLine(filename, lineNo, raw)
	if line.IsBlank() {
		return
	}

	if name, ok := line.LabelDef(); ok {
		if a.ctx.DefineLabel(name) {
			a.diags.Add(asmerr.New(line.Pos, asmerr.KindDuplicateLabel,
				"label \""+name+"\" redefined; first definition retained"))
		}
		return
	}

	mnemonic, rest := lexer.SplitMnemonic(line.Text)

	if directive.IsSkippable(mnemonic) {
		return
	}

	if equKeyword, valueText := lexer.SplitMnemonic(rest); directive.IsEqu(equKeyword) {
		if _, err := directive.HandleEqu(a.ctx, mnemonic, valueText); err != nil {
			a.diags.Add(asmerr.Wrap(line.Pos, asmerr.KindInvalidDirective, "EQU", err))
		}
		return
	}

	if kind, ok := directive.ParseDataDirective(rest); ok {
		if directive.HandleData(a.ctx, mnemonic, kind) {
			a.diags.Add(asmerr.New(line.Pos, asmerr.KindDuplicateLabel,
				"label \""+mnemonic+"\" redefined; first definition retained"))
		}
		return
	}

	if err := encode.Dispatch(a.ctx, mnemonic, rest); err != nil {
		if errors.Is(err, encode.ErrUnknownMnemonic) {
			a.diags.Add(asmerr.New(line.Pos, asmerr.KindUnknownMnemonic,
				"unrecognized mnemonic \""+mnemonic+"\""))
		} else {
			a.diags.Add(asmerr.Wrap(line.Pos, asmerr.KindInvalidOperand, mnemonic, err))
		}
	}
}

// Resolve runs the second pass over the fixup table, patching every
// pending reference. Labels left undefined are reported as diagnostics
// positioned at the filename given (line number is not tracked per
// fixup, since the resolver pass has no per-line context).
func (a *Assembler) Resolve(filename string) error {
	warnings, err := resolver.Resolve(a.ctx.Em, a.ctx.Fixups, a.ctx.Symbols)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		a.diags.Add(asmerr.New(lexer.Position{Filename: filename}, asmerr.KindUndefinedLabel,
			"undefined label \""+w.Label+"\" referenced at offset "+itoa(w.Position)))
	}
	return nil
}

// Diagnostics returns every diagnostic collected so far.
func (a *Assembler) Diagnostics() []*asmerr.AssemblyError {
	return a.diags.Errors
}

// Image returns the finished byte image.
func (a *Assembler) Image() []byte {
	return a.ctx.Em.Bytes()
}

// Context exposes the underlying shared state, for callers (reports,
// the terminal viewer) that need direct access to the symbol and fixup
// tables.
func (a *Assembler) Context() *asmctx.Context {
	return a.ctx
}

func itoa(v uint32) string {
	if v == 0 {
		return "0"
	}
	var buf [10]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}
