package operand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relocbyte/ia32asm/reg"
	"github.com/relocbyte/ia32asm/symtab"
)

func TestClassifyRegisters(t *testing.T) {
	op, err := Classify("EAX", nil)
	require.NoError(t, err)
	assert.Equal(t, Reg32, op.Kind)
	assert.Equal(t, reg.EAX, op.Reg)

	op, err = Classify("BH", nil)
	require.NoError(t, err)
	assert.Equal(t, Reg8, op.Kind)
	assert.Equal(t, reg.BH, op.Reg)
}

func TestClassifyImmediateForms(t *testing.T) {
	cases := map[string]uint32{
		"123":   123,
		"7FH":   0x7F,
		"0X7F":  0x7F,
		"'A'":   65,
		"0H":    0,
	}
	for tok, want := range cases {
		op, err := Classify(tok, nil)
		require.NoError(t, err, tok)
		assert.Equal(t, Immediate, op.Kind, tok)
		assert.Equal(t, want, op.Imm, tok)
	}
}

func TestClassifyImmediateRejectsTrailingGarbage(t *testing.T) {
	_, err := Classify("123X", nil)
	assert.Error(t, err)
}

func TestClassifyEquAlias(t *testing.T) {
	aliases := symtab.NewAliasTable()
	aliases.Define("LEN", 6)

	op, err := Classify("LEN", aliases)
	require.NoError(t, err)
	assert.Equal(t, Immediate, op.Kind)
	assert.Equal(t, uint32(6), op.Imm)
}

func TestClassifyUnknownBareIdentifierFails(t *testing.T) {
	_, err := Classify("UNDEFINEDNAME", nil)
	assert.Error(t, err)
}

func TestClassifyMemLabel(t *testing.T) {
	op, err := Classify("[BUFFER]", nil)
	require.NoError(t, err)
	assert.Equal(t, MemLabel, op.Kind)
	assert.Equal(t, "BUFFER", op.Label)
}

func TestClassifyMemBaseDisp(t *testing.T) {
	op, err := Classify("[EBP+8]", nil)
	require.NoError(t, err)
	assert.Equal(t, MemBaseDisp, op.Kind)
	assert.Equal(t, reg.EBP, op.BaseReg)
	assert.Equal(t, int32(8), op.Disp)

	op, err = Classify("[EBP]", nil)
	require.NoError(t, err)
	assert.Equal(t, MemBaseDisp, op.Kind)
	assert.Equal(t, int32(0), op.Disp)

	op, err = Classify("[EBX-4]", nil)
	require.NoError(t, err)
	assert.Equal(t, reg.EBX, op.BaseReg)
	assert.Equal(t, int32(-4), op.Disp)
}

func TestClassifyMemSIB(t *testing.T) {
	op, err := Classify("[TABLE+ESI*4]", nil)
	require.NoError(t, err)
	assert.Equal(t, MemSIB, op.Kind)
	assert.Equal(t, "TABLE", op.Label)
	assert.Equal(t, int32(0), op.Disp)

	op, err = Classify("[TABLE+ESI*4+8]", nil)
	require.NoError(t, err)
	assert.Equal(t, int32(8), op.Disp)

	op, err = Classify("[TABLE+ESI*4-8]", nil)
	require.NoError(t, err)
	assert.Equal(t, int32(-8), op.Disp)
}

func TestClassifySIBRequiresLabel(t *testing.T) {
	_, err := Classify("[ESI*4]", nil)
	assert.Error(t, err)
}
