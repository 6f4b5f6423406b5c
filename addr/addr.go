// Package addr implements the three IA-32 memory addressing encoders:
// simple absolute [label], base+displacement [reg±disp], and indexed SIB
// [label+ESI*4(±disp)]. Each emits a ModR/M byte (and, for SIB, a SIB
// byte) plus any displacement placeholder, and records a fixup when the
// operand references a label.
package addr

import (
	"fmt"

	"github.com/relocbyte/ia32asm/emitter"
	"github.com/relocbyte/ia32asm/fixup"
	"github.com/relocbyte/ia32asm/operand"
	"github.com/relocbyte/ia32asm/reg"
)

// ModRM packs mod (2 bits), regField (3 bits), and rm (3 bits) into a
// single ModR/M byte.
func ModRM(mod, regField, rm uint8) byte {
	return (mod << 6) | ((regField & 0x7) << 3) | (rm & 0x7)
}

// Simple emits the ModR/M byte for a [label] operand (mod=00, r/m=101)
// and a four-byte absolute fixup placeholder.
func Simple(em *emitter.Emitter, fx *fixup.Table, label string, regField reg.ID) error {
	em.EmitByte(ModRM(0b00, uint8(regField), 0b101))
	fx.Record(label, em.Pos(), 4, fixup.Absolute, 0)
	em.EmitDword(0)
	return nil
}

// BaseDisp emits the ModR/M byte and displacement for a [reg±disp]
// operand. Per spec.md §4.3, ESP is not supported as a base register (it
// would require forcing a SIB byte, which this addressing form does not
// model), and a zero displacement still takes the disp8 form (mod=01)
// because mod=00,r/m=101 is reserved for the simple-absolute form.
func BaseDisp(em *emitter.Emitter, base reg.ID, disp int32, regField reg.ID) error {
	if base == reg.ESP {
		return fmt.Errorf("ESP is not supported as a base register in [reg±disp] addressing")
	}

	if disp >= -128 && disp <= 127 {
		em.EmitByte(ModRM(0b01, uint8(regField), uint8(base)))
		em.EmitByte(byte(disp))
	} else {
		em.EmitByte(ModRM(0b10, uint8(regField), uint8(base)))
		em.EmitDword(uint32(disp))
	}
	return nil
}

// SIB emits the ModR/M byte (mod=00, r/m=100), the SIB byte
// (scale=10, index=ESI, base=101/no-base), and a four-byte absolute
// fixup whose addend is disp — the resolver adds disp to the label's
// resolved value, since the label's own placeholder occupies the same
// bytes as the displacement.
func SIB(em *emitter.Emitter, fx *fixup.Table, label string, disp int32, regField reg.ID) error {
	em.EmitByte(ModRM(0b00, uint8(regField), 0b100))
	const (
		scale = 0b10  // x4
		index = 0b110 // ESI
		base  = 0b101 // disp32, no base register
	)
	em.EmitByte((scale << 6) | (index << 3) | base)
	fx.Record(label, em.Pos(), 4, fixup.Absolute, uint32(disp))
	em.EmitDword(uint32(disp))
	return nil
}

// Memory dispatches a classified memory Operand to the matching encoder,
// in the order base+displacement, SIB, then simple absolute — mirroring
// spec.md §4.4's stated try-order for the generalized ALU encoder. op
// must be one of operand.MemBaseDisp, operand.MemSIB, or operand.MemLabel.
func Memory(em *emitter.Emitter, fx *fixup.Table, op operand.Operand, regField reg.ID) error {
	switch op.Kind {
	case operand.MemBaseDisp:
		return BaseDisp(em, op.BaseReg, op.Disp, regField)
	case operand.MemSIB:
		return SIB(em, fx, op.Label, op.Disp, regField)
	case operand.MemLabel:
		return Simple(em, fx, op.Label, regField)
	default:
		return fmt.Errorf("not a memory operand")
	}
}
