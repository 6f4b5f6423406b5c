package emitter

import "testing"

import "github.com/stretchr/testify/assert"

func TestEmitByteAdvancesPosition(t *testing.T) {
	e := New()
	assert.Equal(t, uint32(0), e.Pos())
	e.EmitByte(0xB8)
	assert.Equal(t, uint32(1), e.Pos())
	e.EmitByte(0x05)
	assert.Equal(t, uint32(2), e.Pos())
	assert.Equal(t, []byte{0xB8, 0x05}, e.Bytes())
}

func TestEmitDwordLittleEndian(t *testing.T) {
	e := New()
	e.EmitDword(0x12345678)
	assert.Equal(t, []byte{0x78, 0x56, 0x34, 0x12}, e.Bytes())
	assert.Equal(t, uint32(4), e.Pos())
}

func TestPatchDwordDoesNotMovePosition(t *testing.T) {
	e := New()
	e.EmitByte(0xE9)
	e.EmitDword(0)
	pos := e.Pos()

	require := assert.New(t)
	require.NoError(e.PatchDword(1, 0xFFFFFFFB))
	require.Equal(pos, e.Pos())
	require.Equal([]byte{0xE9, 0xFB, 0xFF, 0xFF, 0xFF}, e.Bytes())
}

func TestPatchByteOutOfRange(t *testing.T) {
	e := New()
	e.EmitByte(0x90)
	err := e.PatchByte(5, 0x00)
	assert.Error(t, err)
}

func TestPatchDwordOutOfRange(t *testing.T) {
	e := New()
	e.EmitByte(0x90)
	err := e.PatchDword(0, 0x01020304)
	assert.Error(t, err)
}
