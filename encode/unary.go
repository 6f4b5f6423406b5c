package encode

import (
	"fmt"

	"github.com/relocbyte/ia32asm/addr"
	"github.com/relocbyte/ia32asm/asmctx"
	"github.com/relocbyte/ia32asm/lexer"
	"github.com/relocbyte/ia32asm/operand"
	"github.com/relocbyte/ia32asm/reg"
)

// encodeUnaryF7 implements the single-operand F7 /n forms MUL, DIV, and
// IDIV, which spec.md §4.6 restricts to a single 32-bit register operand
// (EDX:EAX is the implicit wide destination).
func encodeUnaryF7(ctx *asmctx.Context, operandsText string, ext uint8, mnemonic string) error {
	op, err := classify(ctx, operandsText)
	if err != nil {
		return fmt.Errorf("%s: %w", mnemonic, err)
	}
	if op.Kind != operand.Reg32 {
		return fmt.Errorf("%s: requires a 32-bit register operand, got %q", mnemonic, operandsText)
	}

	ctx.Em.EmitByte(0xF7)
	ctx.Em.EmitByte(addr.ModRM(0b11, ext, uint8(op.Reg)))
	return nil
}

// encodeIncDec implements the single-byte +rd forms INC (0x40+rd) and DEC
// (0x48+rd) against a 32-bit register.
func encodeIncDec(ctx *asmctx.Context, operandsText string, base byte, mnemonic string) error {
	op, err := classify(ctx, operandsText)
	if err != nil {
		return fmt.Errorf("%s: %w", mnemonic, err)
	}
	if op.Kind != operand.Reg32 {
		return fmt.Errorf("%s: requires a 32-bit register operand, got %q", mnemonic, operandsText)
	}

	ctx.Em.EmitByte(base + byte(op.Reg))
	return nil
}

// encodeTEST implements "TEST r32, r32" (0x85 /r, mod=11) — the original
// only supports the register/register form.
func encodeTEST(ctx *asmctx.Context, operandsText string) error {
	destTok, srcTok, ok := lexer.SplitOperands(operandsText)
	if !ok {
		return fmt.Errorf("TEST requires two operands, got %q", operandsText)
	}
	dest, err := classify(ctx, destTok)
	if err != nil {
		return fmt.Errorf("TEST: destination operand: %w", err)
	}
	src, err := classify(ctx, srcTok)
	if err != nil {
		return fmt.Errorf("TEST: source operand: %w", err)
	}
	if dest.Kind != operand.Reg32 || src.Kind != operand.Reg32 {
		return fmt.Errorf("TEST: unsupported operand combination %q", operandsText)
	}

	ctx.Em.EmitByte(0x85)
	ctx.Em.EmitByte(addr.ModRM(0b11, uint8(src.Reg), uint8(dest.Reg)))
	return nil
}

// encodePUSH implements PUSH r32 (0x50+rd), PUSH imm32 (0x68), and
// PUSH r/m32 (0xFF /6) against a memory operand.
func encodePUSH(ctx *asmctx.Context, operandsText string) error {
	op, err := classify(ctx, operandsText)
	if err != nil {
		return fmt.Errorf("PUSH: %w", err)
	}

	switch op.Kind {
	case operand.Reg32:
		ctx.Em.EmitByte(0x50 + byte(op.Reg))
		return nil
	case operand.Immediate:
		ctx.Em.EmitByte(0x68)
		ctx.Em.EmitDword(op.Imm)
		return nil
	case operand.MemLabel, operand.MemBaseDisp, operand.MemSIB:
		ctx.Em.EmitByte(0xFF)
		return addr.Memory(ctx.Em, ctx.Fixups, op, reg.ID(0b110))
	default:
		return fmt.Errorf("PUSH: unsupported operand %q", operandsText)
	}
}

// encodePOP implements POP r32 (0x58+rd).
func encodePOP(ctx *asmctx.Context, operandsText string) error {
	op, err := classify(ctx, operandsText)
	if err != nil {
		return fmt.Errorf("POP: %w", err)
	}
	if op.Kind != operand.Reg32 {
		return fmt.Errorf("POP: requires a 32-bit register operand, got %q", operandsText)
	}

	ctx.Em.EmitByte(0x58 + byte(op.Reg))
	return nil
}

// encodeINT implements "INT imm8" (0xCD ib).
func encodeINT(ctx *asmctx.Context, operandsText string) error {
	op, err := classify(ctx, operandsText)
	if err != nil {
		return fmt.Errorf("INT: %w", err)
	}
	if op.Kind != operand.Immediate {
		return fmt.Errorf("INT: requires an immediate operand, got %q", operandsText)
	}
	if op.Imm > 0xFF {
		return fmt.Errorf("INT: immediate %d does not fit in a byte", op.Imm)
	}

	ctx.Em.EmitByte(0xCD)
	ctx.Em.EmitByte(byte(op.Imm))
	return nil
}
