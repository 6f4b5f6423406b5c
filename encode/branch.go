package encode

import (
	"fmt"

	"github.com/relocbyte/ia32asm/asmctx"
	"github.com/relocbyte/ia32asm/fixup"
)

// emitRel32EagerOrFixup implements the control-flow encoders' shared
// relative-displacement logic. If eager is true and label is already
// defined, the displacement is computed and emitted immediately;
// otherwise a relative fixup is recorded and a zero placeholder emitted,
// to be patched in by the resolver pass. Per spec.md §9 resolution #1,
// resolution applies no off-by-one adjustment: the displacement is
// simply target-(position+width).
func emitRel32EagerOrFixup(ctx *asmctx.Context, label string, eager bool) {
	if eager {
		if target, ok := ctx.Symbols.Lookup(label); ok {
			pos := ctx.Em.Pos()
			disp := target - (pos + 4)
			ctx.Em.EmitDword(disp)
			return
		}
	}
	ctx.Fixups.Record(label, ctx.Em.Pos(), 4, fixup.Relative, 0)
	ctx.Em.EmitDword(0)
}

// encodeJMP implements "JMP label" (0xE9 rel32). Per the original's
// asymmetric behavior (preserved here; see DESIGN.md), JMP resolves
// eagerly against an already-defined label and falls back to a fixup
// only for a forward reference.
func encodeJMP(ctx *asmctx.Context, operandsText string) error {
	label, ok := labelOperand(operandsText)
	if !ok {
		return fmt.Errorf("JMP: expected a bare label operand, got %q", operandsText)
	}
	ctx.Em.EmitByte(0xE9)
	emitRel32EagerOrFixup(ctx, label, true)
	return nil
}

// encodeCondJump implements the 0F 8x rel32 conditional jump forms
// (JE/JZ, JNE/JNZ, JL, JLE, JG, JGE, JA, JAE, JB, JBE), with the same
// eager-resolve-else-fixup behavior as JMP.
func encodeCondJump(ctx *asmctx.Context, mnemonic, operandsText string) error {
	opcode, ok := condJumpOpcodes[mnemonic]
	if !ok {
		return fmt.Errorf("%s: not a recognized conditional jump", mnemonic)
	}
	label, ok := labelOperand(operandsText)
	if !ok {
		return fmt.Errorf("%s: expected a bare label operand, got %q", mnemonic, operandsText)
	}
	ctx.Em.EmitByte(0x0F)
	ctx.Em.EmitByte(opcode)
	emitRel32EagerOrFixup(ctx, label, true)
	return nil
}

// encodeCALL implements "CALL label" (0xE8 rel32). Unlike JMP, CALL
// always records a fixup, even if the label is already defined — this
// matches the original's unconditional-fixup behavior for CALL and
// produces an identical numeric result to eager resolution.
func encodeCALL(ctx *asmctx.Context, operandsText string) error {
	label, ok := labelOperand(operandsText)
	if !ok {
		return fmt.Errorf("CALL: expected a bare label operand, got %q", operandsText)
	}
	ctx.Em.EmitByte(0xE8)
	emitRel32EagerOrFixup(ctx, label, false)
	return nil
}

// encodeLOOP implements "LOOP label" (0xE2 rel8). Like CALL, LOOP always
// records a fixup, but with a one-byte patch width.
func encodeLOOP(ctx *asmctx.Context, operandsText string) error {
	label, ok := labelOperand(operandsText)
	if !ok {
		return fmt.Errorf("LOOP: expected a bare label operand, got %q", operandsText)
	}
	ctx.Em.EmitByte(0xE2)
	ctx.Fixups.Record(label, ctx.Em.Pos(), 1, fixup.Relative, 0)
	ctx.Em.EmitByte(0)
	return nil
}

// labelOperand accepts a bare identifier as the sole operand of a
// control-flow instruction.
func labelOperand(s string) (string, bool) {
	tok := trimToken(s)
	if tok == "" {
		return "", false
	}
	for i := 0; i < len(tok); i++ {
		c := tok[i]
		isAlnum := (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_'
		if !isAlnum {
			return "", false
		}
	}
	if tok[0] >= '0' && tok[0] <= '9' {
		return "", false
	}
	return tok, true
}

// trimToken strips leading/trailing spaces; operand text reaching here is
// already uppercased by the lexer.
func trimToken(s string) string {
	i, j := 0, len(s)
	for i < j && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	for j > i && (s[j-1] == ' ' || s[j-1] == '\t') {
		j--
	}
	return s[i:j]
}
