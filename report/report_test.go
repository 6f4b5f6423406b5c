package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/relocbyte/ia32asm/fixup"
	"github.com/relocbyte/ia32asm/symtab"
)

func TestHexDumpWraps16PerLine(t *testing.T) {
	image := make([]byte, 18)
	for i := range image {
		image[i] = byte(i)
	}
	out := HexDump(image, 16)
	lines := []string{}
	for _, l := range splitLines(out) {
		lines = append(lines, l)
	}
	assert.Len(t, lines, 2)
	assert.Equal(t, "00 01 02 03 04 05 06 07 08 09 0A 0B 0C 0D 0E 0F", lines[0])
	assert.Equal(t, "10 11", lines[1])
}

func TestSymbolTableFormat(t *testing.T) {
	sym := symtab.New()
	sym.Define("START", 0)
	sym.Define("LOOP", 5)
	out := SymbolTable(sym)
	assert.Equal(t, "Tabla de Simbolos:\nSTART -> 0\nLOOP -> 5\n", out)
}

func TestReferenceReportFormat(t *testing.T) {
	fx := fixup.New()
	fx.Record("DONE", 1, 4, fixup.Relative, 0)
	out := ReferenceReport(fx)
	assert.Equal(t, "Tabla de Referencias Pendientes:\nEtiqueta: DONE, Posicion: 1, Tamano: 4, Tipo: RELATIVO\n", out)
}

func TestCrossReferenceIncludesUndefined(t *testing.T) {
	sym := symtab.New()
	sym.Define("START", 0)
	fx := fixup.New()
	fx.Record("GHOST", 1, 4, fixup.Absolute, 0)

	entries := CrossReference(sym, fx)
	assert.Len(t, entries, 2)
	assert.Equal(t, "GHOST", entries[0].Name)
	assert.False(t, entries[0].Defined)
	assert.Equal(t, "START", entries[1].Name)
	assert.True(t, entries[1].Defined)
}

func splitLines(s string) []string {
	var out []string
	cur := ""
	for _, r := range s {
		if r == '\n' {
			out = append(out, cur)
			cur = ""
			continue
		}
		cur += string(r)
	}
	if cur != "" {
		out = append(out, cur)
	}
	for i, l := range out {
		out[i] = trimTrailingSpace(l)
	}
	return out
}

func trimTrailingSpace(s string) string {
	for len(s) > 0 && s[len(s)-1] == ' ' {
		s = s[:len(s)-1]
	}
	return s
}
