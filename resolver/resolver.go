// Package resolver performs the second pass over a fixup table, patching
// every pending reference once the full source has been scanned and all
// labels are known. It is the direct counterpart of the original's
// resolver_referencias_pendientes, with the off-by-one adjustment that
// routine applied to relative references removed (see spec.md §9).
package resolver

import (
	"fmt"

	"github.com/relocbyte/ia32asm/emitter"
	"github.com/relocbyte/ia32asm/fixup"
	"github.com/relocbyte/ia32asm/symtab"
)

// Warning reports a fixup that could not be patched because its label was
// never defined.
type Warning struct {
	Label    string
	Position uint32
}

// Resolve patches every pending fixup in fx against sym's defined labels,
// writing through em. It returns a Warning for each fixup whose label was
// never defined; those sites keep their placeholder bytes unchanged (zero,
// or the displacement a SIB operand stored there).
//
// Absolute fixups write target+addend. Relative fixups write
// target-(position+width) — a plain displacement from the byte following
// the patched field to the target, with no further adjustment.
func Resolve(em *emitter.Emitter, fx *fixup.Table, sym *symtab.Table) ([]Warning, error) {
	var warnings []Warning

	for _, label := range fx.Labels() {
		target, ok := sym.Lookup(label)
		if !ok {
			for _, site := range fx.Sites(label) {
				warnings = append(warnings, Warning{Label: label, Position: site.Position})
			}
			continue
		}

		for _, site := range fx.Sites(label) {
			var value uint32
			switch site.Kind {
			case fixup.Absolute:
				value = target + site.Addend
			case fixup.Relative:
				value = target - (site.Position + uint32(site.Width))
			default:
				return warnings, fmt.Errorf("fixup for %q: unknown kind %d", label, site.Kind)
			}

			switch site.Width {
			case 4:
				if err := em.PatchDword(site.Position, value); err != nil {
					return warnings, fmt.Errorf("fixup for %q at %d: %w", label, site.Position, err)
				}
			case 1:
				if err := em.PatchByte(site.Position, byte(value)); err != nil {
					return warnings, fmt.Errorf("fixup for %q at %d: %w", label, site.Position, err)
				}
			default:
				return warnings, fmt.Errorf("fixup for %q: unsupported width %d", label, site.Width)
			}
		}
	}

	return warnings, nil
}
