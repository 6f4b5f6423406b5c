// Package fixup models the deferred patch sites created while an
// instruction references a label whose final address may not be known
// yet (or, for the SIB addressing form, is never known until resolution
// regardless of declaration order).
package fixup

// Kind distinguishes an absolute patch (write the symbol's value, plus an
// optional addend) from a relative patch (write the distance from the
// byte following the patched field to the symbol's value).
type Kind int

const (
	// Absolute patches write the symbol's value (+ addend) directly.
	Absolute Kind = iota
	// Relative patches write target-(position+width).
	Relative
)

func (k Kind) String() string {
	if k == Relative {
		return "RELATIVO"
	}
	return "ABSOLUTO"
}

// Record is a single pending patch site.
type Record struct {
	Label    string
	Position uint32
	Width    uint8 // 1 or 4
	Kind     Kind
	Addend   uint32
}

// Table collects fixup records, keyed by the label they reference. Order
// is preserved both across labels (first referenced, first listed) and
// within a label's own record list, purely for deterministic reporting —
// it has no bearing on resolution correctness.
type Table struct {
	sites map[string][]Record
	order []string
}

// New returns an empty fixup table.
func New() *Table {
	return &Table{sites: make(map[string][]Record)}
}

// Record appends a pending patch site for label.
func (t *Table) Record(label string, position uint32, width uint8, kind Kind, addend uint32) {
	if _, seen := t.sites[label]; !seen {
		t.order = append(t.order, label)
	}
	t.sites[label] = append(t.sites[label], Record{
		Label:    label,
		Position: position,
		Width:    width,
		Kind:     kind,
		Addend:   addend,
	})
}

// Labels returns the referenced label names, in first-reference order.
func (t *Table) Labels() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Sites returns the fixup records recorded against label.
func (t *Table) Sites(label string) []Record {
	return t.sites[label]
}

// All returns every fixup record, ordered by label first-reference order
// then by site order within the label.
func (t *Table) All() []Record {
	var all []Record
	for _, label := range t.order {
		all = append(all, t.sites[label]...)
	}
	return all
}
