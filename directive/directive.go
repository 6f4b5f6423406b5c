// Package directive handles the non-instruction lines spec.md §4.8
// describes: the ignored SECTION/GLOBAL/EXTERN/BITS family, EQU alias
// definitions, and the DD/DB data-reservation forms.
package directive

import (
	"fmt"
	"strings"

	"github.com/relocbyte/ia32asm/asmctx"
	"github.com/relocbyte/ia32asm/operand"
)

var skippable = map[string]bool{
	"SECTION": true,
	"GLOBAL":  true,
	"EXTERN":  true,
	"BITS":    true,
}

// IsSkippable reports whether mnemonic names a directive that is
// recognized and entirely ignored.
func IsSkippable(mnemonic string) bool {
	return skippable[mnemonic]
}

// IsEqu reports whether the second token of a line (the one following the
// leading identifier) is the EQU keyword, identifying an
// "IDENT EQU <value>" line.
func IsEqu(secondTok string) bool {
	return strings.TrimSpace(secondTok) == "EQU"
}

// HandleEqu records name as an alias for the immediate value parsed from
// valueText. Per SPEC_FULL.md §1, EQU is recorded rather than merely
// skipped, so later operands can reference name as an alias for the
// literal.
func HandleEqu(ctx *asmctx.Context, name, valueText string) (redefined bool, err error) {
	op, err := operand.Classify(strings.TrimSpace(valueText), ctx.Aliases)
	if err != nil {
		return false, fmt.Errorf("EQU: %w", err)
	}
	if op.Kind != operand.Immediate {
		return false, fmt.Errorf("EQU: %q is not a constant immediate", valueText)
	}
	return ctx.Aliases.Define(name, op.Imm), nil
}

// DataKind distinguishes the two data-reservation directives.
type DataKind int

const (
	DD DataKind = iota
	DB
)

// HandleData defines name at the emitter's current position and reserves
// the space the directive calls for: 4 zero bytes for DD, 1 for DB.
func HandleData(ctx *asmctx.Context, name string, kind DataKind) (redefined bool) {
	redefined = ctx.DefineLabel(name)
	switch kind {
	case DD:
		ctx.Em.EmitDword(0)
	case DB:
		ctx.Em.EmitByte(0)
	}
	return redefined
}

// ParseDataDirective recognizes a line's remainder as "DD" or "DB" and
// returns the matching DataKind.
func ParseDataDirective(tok string) (DataKind, bool) {
	switch strings.TrimSpace(tok) {
	case "DD":
		return DD, true
	case "DB":
		return DB, true
	default:
		return 0, false
	}
}
