package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relocbyte/ia32asm/asmctx"
)

func newTestContext() *asmctx.Context {
	ctx := asmctx.New()
	ctx.DefineLabel("START")
	ctx.Em.EmitByte(0x90)
	ctx.Em.EmitDword(0x12345678)
	ctx.Fixups.Record("MISSING", 1, 4, 0, 0)
	return ctx
}

func TestNewBrowserInitializesViews(t *testing.T) {
	b := New(newTestContext(), 16)

	require.NotNil(t, b.App)
	require.NotNil(t, b.Pages)
	require.NotNil(t, b.SymbolView)
	require.NotNil(t, b.ReferenceView)
	require.NotNil(t, b.HexView)
}

func TestNewBrowserSymbolViewShowsLabel(t *testing.T) {
	b := New(newTestContext(), 16)
	assert.Contains(t, b.SymbolView.GetText(true), "START")
}

func TestNewBrowserReferenceViewShowsLabel(t *testing.T) {
	b := New(newTestContext(), 16)
	assert.Contains(t, b.ReferenceView.GetText(true), "MISSING")
}

func TestNewBrowserHexViewShowsBytes(t *testing.T) {
	b := New(newTestContext(), 16)
	assert.Contains(t, b.HexView.GetText(true), "90")
}
