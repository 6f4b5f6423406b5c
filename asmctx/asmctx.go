// Package asmctx bundles the mutable state a single line of assembly is
// processed against: the emitter, the fixup and symbol tables, and the
// EQU alias table. Both the directive handler and the instruction
// encoders take a *Context rather than each owning their own copy of
// this state, per spec.md §9's call to model it as "one owning
// aggregate passed explicitly to each encoder; no globals."
package asmctx

import (
	"github.com/relocbyte/ia32asm/emitter"
	"github.com/relocbyte/ia32asm/fixup"
	"github.com/relocbyte/ia32asm/symtab"
)

// Context is the shared state threaded through directive handling and
// instruction encoding for one assembler pass.
type Context struct {
	Em      *emitter.Emitter
	Fixups  *fixup.Table
	Symbols *symtab.Table
	Aliases *symtab.AliasTable
}

// New returns a freshly initialized Context.
func New() *Context {
	return &Context{
		Em:      emitter.New(),
		Fixups:  fixup.New(),
		Symbols: symtab.New(),
		Aliases: symtab.NewAliasTable(),
	}
}

// DefineLabel records name at the emitter's current position. It reports
// redefined=true if the label was already defined (first definition
// wins; see spec.md §9).
func (c *Context) DefineLabel(name string) (redefined bool) {
	return c.Symbols.Define(name, c.Em.Pos())
}
