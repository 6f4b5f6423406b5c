// Package symtab holds the label->offset symbol table and the EQU alias
// table consulted during single-pass assembly.
package symtab

import "sort"

// Entry is one resolved symbol, as reported to the caller in definition
// order.
type Entry struct {
	Name   string
	Offset uint32
}

// Table maps a normalized label name to the byte offset it was defined at.
// A label is written at most once; per spec.md §9, first definition wins
// and a second definition is reported by the caller as a diagnostic, not
// as an error returned from Define.
type Table struct {
	offsets map[string]uint32
	order   []string
}

// New returns an empty symbol table.
func New() *Table {
	return &Table{offsets: make(map[string]uint32)}
}

// Define records name at offset. It reports redefined=true (and leaves the
// original offset untouched) if name was already defined.
func (t *Table) Define(name string, offset uint32) (redefined bool) {
	if _, exists := t.offsets[name]; exists {
		return true
	}
	t.offsets[name] = offset
	t.order = append(t.order, name)
	return false
}

// Lookup returns the offset recorded for name, if any.
func (t *Table) Lookup(name string) (uint32, bool) {
	off, ok := t.offsets[name]
	return off, ok
}

// Defined reports whether name has been defined.
func (t *Table) Defined(name string) bool {
	_, ok := t.offsets[name]
	return ok
}

// Entries returns all symbols sorted by name, for deterministic reports.
func (t *Table) Entries() []Entry {
	entries := make([]Entry, 0, len(t.offsets))
	for name, off := range t.offsets {
		entries = append(entries, Entry{Name: name, Offset: off})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}

// DefinitionOrder returns symbol names in the order they were first
// defined, for reports that want to mirror source order instead of
// alphabetical order.
func (t *Table) DefinitionOrder() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// AliasTable maps an EQU-defined identifier to its resolved constant value.
// It is distinct from Table: an alias is never a byte offset. The two
// tables are independent; defining a name in one does not check the other.
type AliasTable struct {
	values map[string]uint32
	order  []string
}

// NewAliasTable returns an empty alias table.
func NewAliasTable() *AliasTable {
	return &AliasTable{values: make(map[string]uint32)}
}

// Define records name EQU value. Like Table.Define, first definition wins.
func (a *AliasTable) Define(name string, value uint32) (redefined bool) {
	if _, exists := a.values[name]; exists {
		return true
	}
	a.values[name] = value
	a.order = append(a.order, name)
	return false
}

// Lookup returns the value bound to name, if any.
func (a *AliasTable) Lookup(name string) (uint32, bool) {
	v, ok := a.values[name]
	return v, ok
}
