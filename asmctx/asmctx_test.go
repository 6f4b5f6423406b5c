package asmctx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInitializesAllComponents(t *testing.T) {
	ctx := New()
	require.NotNil(t, ctx.Em)
	require.NotNil(t, ctx.Fixups)
	require.NotNil(t, ctx.Symbols)
	require.NotNil(t, ctx.Aliases)
}

func TestDefineLabelUsesEmitterPosition(t *testing.T) {
	ctx := New()
	ctx.Em.EmitByte(0x90)
	ctx.Em.EmitByte(0x90)

	redefined := ctx.DefineLabel("L1")
	assert.False(t, redefined)

	off, ok := ctx.Symbols.Lookup("L1")
	require.True(t, ok)
	assert.EqualValues(t, 2, off)
}

func TestDefineLabelRedefinitionReported(t *testing.T) {
	ctx := New()
	ctx.DefineLabel("L1")
	assert.True(t, ctx.DefineLabel("L1"))
}
