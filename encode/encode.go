// Package encode implements the per-mnemonic IA-32 instruction encoders:
// the generalized binary ALU encoder, MOV and its relatives, the unary
// and stack-manipulation forms, and the control-flow encoders — plus the
// top-level mnemonic dispatch that ties them together.
package encode

import (
	"errors"
	"strings"

	"github.com/relocbyte/ia32asm/asmctx"
	"github.com/relocbyte/ia32asm/lexer"
	"github.com/relocbyte/ia32asm/operand"
)

// ErrUnknownMnemonic is returned by Dispatch when mnemonic names neither
// an instruction this package implements, so the caller can report an
// unknown-mnemonic diagnostic. Directives and data definitions
// (IDENT DD/DB) are recognized by the caller before Dispatch is called.
var ErrUnknownMnemonic = errors.New("unknown mnemonic")

var condJumpOpcodes = map[string]byte{
	"JE": 0x84, "JZ": 0x84,
	"JNE": 0x85, "JNZ": 0x85,
	"JL": 0x8C, "JLE": 0x8E,
	"JG": 0x8F, "JGE": 0x8D,
	"JA": 0x87, "JAE": 0x83,
	"JB": 0x82, "JBE": 0x86,
}

// Dispatch routes mnemonic to its encoder, passing the remaining operand
// text unparsed. It returns ErrUnknownMnemonic if mnemonic is not one of
// the instructions this package implements.
func Dispatch(ctx *asmctx.Context, mnemonic, operandsText string) error {
	switch {
	case isALU(mnemonic):
		return encodeALU(ctx, mnemonic, operandsText)
	case mnemonic == "MOV":
		return encodeMOV(ctx, operandsText)
	case mnemonic == "MOVZX":
		return encodeMOVZX(ctx, operandsText)
	case mnemonic == "LEA":
		return encodeLEA(ctx, operandsText)
	case mnemonic == "XCHG":
		return encodeXCHG(ctx, operandsText)
	case mnemonic == "IMUL":
		return encodeIMUL(ctx, operandsText)
	case mnemonic == "MUL":
		return encodeUnaryF7(ctx, operandsText, 0b100, "MUL")
	case mnemonic == "DIV":
		return encodeUnaryF7(ctx, operandsText, 0b110, "DIV")
	case mnemonic == "IDIV":
		return encodeUnaryF7(ctx, operandsText, 0b111, "IDIV")
	case mnemonic == "INC":
		return encodeIncDec(ctx, operandsText, 0x40, "INC")
	case mnemonic == "DEC":
		return encodeIncDec(ctx, operandsText, 0x48, "DEC")
	case mnemonic == "TEST":
		return encodeTEST(ctx, operandsText)
	case mnemonic == "PUSH":
		return encodePUSH(ctx, operandsText)
	case mnemonic == "POP":
		return encodePOP(ctx, operandsText)
	case mnemonic == "LEAVE":
		ctx.Em.EmitByte(0xC9)
		return nil
	case mnemonic == "RET":
		ctx.Em.EmitByte(0xC3)
		return nil
	case mnemonic == "NOP":
		ctx.Em.EmitByte(0x90)
		return nil
	case mnemonic == "INT":
		return encodeINT(ctx, operandsText)
	case mnemonic == "JMP":
		return encodeJMP(ctx, operandsText)
	case mnemonic == "CALL":
		return encodeCALL(ctx, operandsText)
	case mnemonic == "LOOP":
		return encodeLOOP(ctx, operandsText)
	case isCondJump(mnemonic):
		return encodeCondJump(ctx, mnemonic, operandsText)
	default:
		return ErrUnknownMnemonic
	}
}

func isCondJump(mnemonic string) bool {
	_, ok := condJumpOpcodes[mnemonic]
	return ok
}

// classify compacts tok (removing stray internal whitespace) and
// classifies it, consulting the context's EQU alias table.
func classify(ctx *asmctx.Context, tok string) (operand.Operand, error) {
	return operand.Classify(lexer.CompactOperand(tok), ctx.Aliases)
}

func isMemory(k operand.Kind) bool {
	return k == operand.MemLabel || k == operand.MemBaseDisp || k == operand.MemSIB
}

// fitsImm8 reports whether v, read as a 32-bit two's complement value,
// fits in a sign-extended 8-bit immediate field.
func fitsImm8(v uint32) bool {
	sv := int32(v)
	return sv >= -128 && sv <= 127
}

// stripByteHint removes a leading "BYTE" size pseudo-operand from a
// memory operand token, per spec.md §6 ("the optional size pseudo BYTE
// before a memory operand is tolerated and stripped by MOVZX").
func stripByteHint(tok string) string {
	trimmed := strings.TrimSpace(tok)
	upper := strings.ToUpper(trimmed)
	if strings.HasPrefix(upper, "BYTE") {
		rest := strings.TrimSpace(trimmed[len("BYTE"):])
		if rest != "" {
			return rest
		}
	}
	return trimmed
}
