package encode

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relocbyte/ia32asm/asmctx"
)

func TestDispatchUnknownMnemonic(t *testing.T) {
	ctx := asmctx.New()
	err := Dispatch(ctx, "FROBNICATE", "EAX")
	assert.True(t, errors.Is(err, ErrUnknownMnemonic))
}

func TestDispatchNullaryForms(t *testing.T) {
	ctx := asmctx.New()
	require.NoError(t, Dispatch(ctx, "NOP", ""))
	require.NoError(t, Dispatch(ctx, "RET", ""))
	require.NoError(t, Dispatch(ctx, "LEAVE", ""))
	assert.Equal(t, []byte{0x90, 0xC3, 0xC9}, ctx.Em.Bytes())
}

func TestDispatchRoutesALU(t *testing.T) {
	ctx := asmctx.New()
	require.NoError(t, Dispatch(ctx, "SUB", "EAX, 0FFH"))
	assert.Equal(t, []byte{0x2D, 0xFF, 0x00, 0x00, 0x00}, ctx.Em.Bytes())
}

func TestFitsImm8(t *testing.T) {
	assert.True(t, fitsImm8(1))
	assert.True(t, fitsImm8(127))
	assert.False(t, fitsImm8(128))
	assert.True(t, fitsImm8(0xFFFFFFFF)) // -1
	assert.False(t, fitsImm8(0xFFFFFF00))
}

func TestStripByteHint(t *testing.T) {
	assert.Equal(t, "[VAL]", stripByteHint("BYTE [VAL]"))
	assert.Equal(t, "[VAL]", stripByteHint("BYTE[VAL]"))
	assert.Equal(t, "BL", stripByteHint("BL"))
}
