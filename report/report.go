// Package report renders the assembled image and its diagnostic tables
// as text: the hex dump, the symbol table, the pending-reference table
// (format fixed by spec.md §6), and an additive cross-reference report
// modeled on the teacher's tools/xref.go generator.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/relocbyte/ia32asm/fixup"
	"github.com/relocbyte/ia32asm/symtab"
)

// HexDump renders image as uppercase two-digit hex bytes, space
// separated, bytesPerLine bytes to a line, each line newline-terminated
// — matching the original's generar_hex.
func HexDump(image []byte, bytesPerLine int) string {
	if bytesPerLine <= 0 {
		bytesPerLine = 16
	}
	var sb strings.Builder
	for i, b := range image {
		fmt.Fprintf(&sb, "%02X ", b)
		if (i+1)%bytesPerLine == 0 {
			sb.WriteByte('\n')
		}
	}
	if len(image)%bytesPerLine != 0 {
		sb.WriteByte('\n')
	}
	return sb.String()
}

// SymbolTable renders sym's entries in definition order, one
// "NAME -> OFFSET" line per symbol, under the original's fixed header.
func SymbolTable(sym *symtab.Table) string {
	var sb strings.Builder
	sb.WriteString("Tabla de Simbolos:\n")
	for _, name := range sym.DefinitionOrder() {
		off, _ := sym.Lookup(name)
		fmt.Fprintf(&sb, "%s -> %d\n", name, off)
	}
	return sb.String()
}

// ReferenceReport renders every pending fixup in fx, one line per site,
// in the exact format spec.md §6 fixes:
// "Etiqueta: L, Posicion: P, Tamano: W, Tipo: (ABSOLUTO|RELATIVO)".
func ReferenceReport(fx *fixup.Table) string {
	var sb strings.Builder
	sb.WriteString("Tabla de Referencias Pendientes:\n")
	for _, label := range fx.Labels() {
		for _, site := range fx.Sites(label) {
			fmt.Fprintf(&sb, "Etiqueta: %s, Posicion: %d, Tamano: %d, Tipo: %s\n",
				label, site.Position, site.Width, site.Kind)
		}
	}
	return sb.String()
}

// XRefEntry is one symbol's complete cross-reference record: its
// definition offset (if any) and every fixup site that referenced it.
type XRefEntry struct {
	Name       string
	Defined    bool
	Offset     uint32
	References []fixup.Record
}

// CrossReference builds one XRefEntry per symbol name that is either
// defined or referenced, the union of sym's and fx's name sets, sorted
// alphabetically. This is additive to, and does not replace,
// ReferenceReport's fixed spec.md §6 format.
func CrossReference(sym *symtab.Table, fx *fixup.Table) []XRefEntry {
	names := make(map[string]bool)
	for _, n := range sym.DefinitionOrder() {
		names[n] = true
	}
	for _, n := range fx.Labels() {
		names[n] = true
	}

	entries := make([]XRefEntry, 0, len(names))
	for name := range names {
		e := XRefEntry{Name: name, References: fx.Sites(name)}
		if off, ok := sym.Lookup(name); ok {
			e.Defined = true
			e.Offset = off
		}
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}

// CrossReferenceReport renders entries as a human-readable text report,
// modeled on the teacher's tools.XRefReport.String().
func CrossReferenceReport(entries []XRefEntry) string {
	var sb strings.Builder
	sb.WriteString("Symbol Cross-Reference\n")
	sb.WriteString("=======================\n\n")

	for _, e := range entries {
		fmt.Fprintf(&sb, "%-30s", e.Name)
		if e.Defined {
			fmt.Fprintf(&sb, " [offset=%d]\n", e.Offset)
		} else {
			sb.WriteString(" [undefined]\n")
		}

		if e.Defined {
			fmt.Fprintf(&sb, "  Defined:     offset %d\n", e.Offset)
		} else {
			sb.WriteString("  Defined:     (undefined)\n")
		}

		if len(e.References) == 0 {
			sb.WriteString("  Referenced:  (never)\n")
		} else {
			fmt.Fprintf(&sb, "  Referenced:  %d time(s)\n", len(e.References))
			for _, ref := range e.References {
				fmt.Fprintf(&sb, "    position %d, width %d, %s\n", ref.Position, ref.Width, ref.Kind)
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
