package encode

import (
	"fmt"

	"github.com/relocbyte/ia32asm/addr"
	"github.com/relocbyte/ia32asm/asmctx"
	"github.com/relocbyte/ia32asm/lexer"
	"github.com/relocbyte/ia32asm/operand"
	"github.com/relocbyte/ia32asm/reg"
)

// aluOps names the four opcode families and the /n opcode-extension
// subfield spec.md §4.4's table assigns to one generalized binary ALU
// mnemonic.
type aluOps struct {
	RMR  byte // store register into r/m32   (r/m32, r32)
	RRM  byte // load r/m32 into register    (r32, r/m32)
	AXI  byte // accumulator, imm32          (EAX, imm32)
	Imm  byte // generic immediate form      (r/m32, imm32)
	Ext  uint8
}

var aluTable = map[string]aluOps{
	"ADD": {RMR: 0x01, RRM: 0x03, AXI: 0x05, Imm: 0x81, Ext: 0b000},
	"OR":  {RMR: 0x09, RRM: 0x0B, AXI: 0x0D, Imm: 0x81, Ext: 0b001},
	"AND": {RMR: 0x21, RRM: 0x23, AXI: 0x25, Imm: 0x81, Ext: 0b100},
	"SUB": {RMR: 0x29, RRM: 0x2B, AXI: 0x2D, Imm: 0x81, Ext: 0b101},
	"XOR": {RMR: 0x31, RRM: 0x33, AXI: 0x35, Imm: 0x81, Ext: 0b110},
	"CMP": {RMR: 0x39, RRM: 0x3B, AXI: 0x3D, Imm: 0x81, Ext: 0b111},
}

func isALU(mnemonic string) bool {
	_, ok := aluTable[mnemonic]
	return ok
}

// encodeALU implements the dispatch order of spec.md §4.4: Reg,Reg then
// EAX,Imm then Reg,[Mem] then [Mem],Reg then [Mem]/Reg,Imm with the
// imm8/imm32 choice.
func encodeALU(ctx *asmctx.Context, mnemonic, operandsText string) error {
	ops := aluTable[mnemonic]

	destTok, srcTok, ok := lexer.SplitOperands(operandsText)
	if !ok {
		return fmt.Errorf("%s requires two operands, got %q", mnemonic, operandsText)
	}
	dest, err := classify(ctx, destTok)
	if err != nil {
		return fmt.Errorf("%s: destination operand: %w", mnemonic, err)
	}
	src, err := classify(ctx, srcTok)
	if err != nil {
		return fmt.Errorf("%s: source operand: %w", mnemonic, err)
	}

	switch {
	case dest.Kind == operand.Reg32 && src.Kind == operand.Reg32:
		ctx.Em.EmitByte(ops.RMR)
		ctx.Em.EmitByte(addr.ModRM(0b11, uint8(src.Reg), uint8(dest.Reg)))
		return nil

	case dest.Kind == operand.Reg32 && dest.Reg == reg.EAX && src.Kind == operand.Immediate:
		ctx.Em.EmitByte(ops.AXI)
		ctx.Em.EmitDword(src.Imm)
		return nil

	case dest.Kind == operand.Reg32 && isMemory(src.Kind):
		ctx.Em.EmitByte(ops.RRM)
		return addr.Memory(ctx.Em, ctx.Fixups, src, dest.Reg)

	case isMemory(dest.Kind) && src.Kind == operand.Reg32:
		ctx.Em.EmitByte(ops.RMR)
		return addr.Memory(ctx.Em, ctx.Fixups, dest, src.Reg)

	case isMemory(dest.Kind) && src.Kind == operand.Immediate:
		return emitALUImmToMem(ctx, dest, src.Imm, ops)

	case dest.Kind == operand.Reg32 && src.Kind == operand.Immediate:
		return emitALUImmToReg(ctx, dest.Reg, src.Imm, ops)
	}

	return fmt.Errorf("%s: unsupported operand combination %q", mnemonic, operandsText)
}

func emitALUImmToMem(ctx *asmctx.Context, mem operand.Operand, imm uint32, ops aluOps) error {
	if fitsImm8(imm) {
		ctx.Em.EmitByte(0x83)
		if err := addr.Memory(ctx.Em, ctx.Fixups, mem, reg.ID(ops.Ext)); err != nil {
			return err
		}
		ctx.Em.EmitByte(byte(imm))
		return nil
	}
	ctx.Em.EmitByte(ops.Imm)
	if err := addr.Memory(ctx.Em, ctx.Fixups, mem, reg.ID(ops.Ext)); err != nil {
		return err
	}
	ctx.Em.EmitDword(imm)
	return nil
}

func emitALUImmToReg(ctx *asmctx.Context, dst reg.ID, imm uint32, ops aluOps) error {
	if fitsImm8(imm) {
		ctx.Em.EmitByte(0x83)
		ctx.Em.EmitByte(addr.ModRM(0b11, ops.Ext, uint8(dst)))
		ctx.Em.EmitByte(byte(imm))
		return nil
	}
	ctx.Em.EmitByte(ops.Imm)
	ctx.Em.EmitByte(addr.ModRM(0b11, ops.Ext, uint8(dst)))
	ctx.Em.EmitDword(imm)
	return nil
}
