package encode

import (
	"fmt"

	"github.com/relocbyte/ia32asm/addr"
	"github.com/relocbyte/ia32asm/asmctx"
	"github.com/relocbyte/ia32asm/fixup"
	"github.com/relocbyte/ia32asm/lexer"
	"github.com/relocbyte/ia32asm/operand"
	"github.com/relocbyte/ia32asm/reg"
)

// encodeMOV implements spec.md §4.5's MOV case ladder. Unlike the
// generalized ALU encoder, MOV's opcodes don't follow the four-family
// pattern, so it gets its own dispatch.
func encodeMOV(ctx *asmctx.Context, operandsText string) error {
	destTok, srcTok, ok := lexer.SplitOperands(operandsText)
	if !ok {
		return fmt.Errorf("MOV requires two operands, got %q", operandsText)
	}
	dest, err := classify(ctx, destTok)
	if err != nil {
		return fmt.Errorf("MOV: destination operand: %w", err)
	}
	src, err := classify(ctx, srcTok)
	if err != nil {
		return fmt.Errorf("MOV: source operand: %w", err)
	}

	switch {
	case dest.Kind == operand.Reg32 && src.Kind == operand.Reg32:
		ctx.Em.EmitByte(0x89)
		ctx.Em.EmitByte(addr.ModRM(0b11, uint8(src.Reg), uint8(dest.Reg)))
		return nil

	case dest.Kind == operand.Reg32 && src.Kind == operand.Immediate:
		ctx.Em.EmitByte(0xB8 + byte(dest.Reg))
		ctx.Em.EmitDword(src.Imm)
		return nil

	// Short form: MOV [label], EAX -> A3. Per spec.md §9's resolution of
	// the original's ambiguous label-trimming behavior, this only fires
	// for a bare [label] destination; any other memory shape falls
	// through to the generic 0x89 /r encoding below.
	case dest.Kind == operand.MemLabel && src.Kind == operand.Reg32 && src.Reg == reg.EAX:
		ctx.Em.EmitByte(0xA3)
		ctx.Fixups.Record(dest.Label, ctx.Em.Pos(), 4, fixup.Absolute, 0)
		ctx.Em.EmitDword(0)
		return nil

	case isMemory(dest.Kind) && src.Kind == operand.Reg32:
		ctx.Em.EmitByte(0x89)
		return addr.Memory(ctx.Em, ctx.Fixups, dest, src.Reg)

	case dest.Kind == operand.Reg32 && isMemory(src.Kind):
		ctx.Em.EmitByte(0x8B)
		return addr.Memory(ctx.Em, ctx.Fixups, src, dest.Reg)

	case isMemory(dest.Kind) && src.Kind == operand.Immediate:
		ctx.Em.EmitByte(0xC7)
		if err := addr.Memory(ctx.Em, ctx.Fixups, dest, 0b000); err != nil {
			return err
		}
		ctx.Em.EmitDword(src.Imm)
		return nil
	}

	return fmt.Errorf("MOV: unsupported operand combination %q", operandsText)
}

// encodeMOVZX implements "MOVZX r32, r8" (0F B6 /r, mod=11) and
// "MOVZX r32, m8" (0F B6 /r against memory), stripping an optional
// leading BYTE size hint from the source operand.
func encodeMOVZX(ctx *asmctx.Context, operandsText string) error {
	destTok, srcTok, ok := lexer.SplitOperands(operandsText)
	if !ok {
		return fmt.Errorf("MOVZX requires two operands, got %q", operandsText)
	}
	dest, err := classify(ctx, destTok)
	if err != nil || dest.Kind != operand.Reg32 {
		return fmt.Errorf("MOVZX: requires a 32-bit register destination, got %q", destTok)
	}

	src, err := classify(ctx, stripByteHint(srcTok))
	if err != nil {
		return fmt.Errorf("MOVZX: source operand: %w", err)
	}

	ctx.Em.EmitByte(0x0F)
	ctx.Em.EmitByte(0xB6)
	switch src.Kind {
	case operand.Reg8:
		ctx.Em.EmitByte(addr.ModRM(0b11, uint8(dest.Reg), uint8(src.Reg)))
		return nil
	case operand.MemLabel, operand.MemBaseDisp, operand.MemSIB:
		return addr.Memory(ctx.Em, ctx.Fixups, src, dest.Reg)
	default:
		return fmt.Errorf("MOVZX: unsupported source operand %q", srcTok)
	}
}

// encodeLEA implements "LEA r32, m" (0x8D /r) against the simple
// absolute memory form, per spec.md §4.5.
func encodeLEA(ctx *asmctx.Context, operandsText string) error {
	destTok, srcTok, ok := lexer.SplitOperands(operandsText)
	if !ok {
		return fmt.Errorf("LEA requires two operands, got %q", operandsText)
	}
	dest, err := classify(ctx, destTok)
	if err != nil || dest.Kind != operand.Reg32 {
		return fmt.Errorf("LEA: requires a 32-bit register destination, got %q", destTok)
	}
	src, err := classify(ctx, srcTok)
	if err != nil {
		return fmt.Errorf("LEA: source operand: %w", err)
	}
	if src.Kind != operand.MemLabel {
		return fmt.Errorf("LEA: only a bare [label] addressing form is supported, got %q", srcTok)
	}

	ctx.Em.EmitByte(0x8D)
	return addr.Simple(ctx.Em, ctx.Fixups, src.Label, dest.Reg)
}

// encodeXCHG implements "XCHG r32, r32" (0x87 /r, mod=11).
func encodeXCHG(ctx *asmctx.Context, operandsText string) error {
	destTok, srcTok, ok := lexer.SplitOperands(operandsText)
	if !ok {
		return fmt.Errorf("XCHG requires two operands, got %q", operandsText)
	}
	dest, err := classify(ctx, destTok)
	if err != nil {
		return fmt.Errorf("XCHG: destination operand: %w", err)
	}
	src, err := classify(ctx, srcTok)
	if err != nil {
		return fmt.Errorf("XCHG: source operand: %w", err)
	}
	if dest.Kind != operand.Reg32 || src.Kind != operand.Reg32 {
		return fmt.Errorf("XCHG: unsupported operand combination %q", operandsText)
	}

	ctx.Em.EmitByte(0x87)
	ctx.Em.EmitByte(addr.ModRM(0b11, uint8(src.Reg), uint8(dest.Reg)))
	return nil
}

// encodeIMUL implements "IMUL r32, r32" (0F AF /r).
func encodeIMUL(ctx *asmctx.Context, operandsText string) error {
	destTok, srcTok, ok := lexer.SplitOperands(operandsText)
	if !ok {
		return fmt.Errorf("IMUL requires two operands, got %q", operandsText)
	}
	dest, err := classify(ctx, destTok)
	if err != nil {
		return fmt.Errorf("IMUL: destination operand: %w", err)
	}
	src, err := classify(ctx, srcTok)
	if err != nil {
		return fmt.Errorf("IMUL: source operand: %w", err)
	}
	if dest.Kind != operand.Reg32 || src.Kind != operand.Reg32 {
		return fmt.Errorf("IMUL: unsupported operand combination %q", operandsText)
	}

	ctx.Em.EmitByte(0x0F)
	ctx.Em.EmitByte(0xAF)
	ctx.Em.EmitByte(addr.ModRM(0b11, uint8(dest.Reg), uint8(src.Reg)))
	return nil
}
