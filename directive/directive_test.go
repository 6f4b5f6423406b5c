package directive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relocbyte/ia32asm/asmctx"
)

func TestIsSkippable(t *testing.T) {
	assert.True(t, IsSkippable("SECTION"))
	assert.True(t, IsSkippable("BITS"))
	assert.False(t, IsSkippable("MOV"))
}

func TestHandleEquRecordsAlias(t *testing.T) {
	ctx := asmctx.New()
	redefined, err := HandleEqu(ctx, "LEN", "6")
	require.NoError(t, err)
	assert.False(t, redefined)

	v, ok := ctx.Aliases.Lookup("LEN")
	require.True(t, ok)
	assert.EqualValues(t, 6, v)
}

func TestHandleEquRejectsNonImmediate(t *testing.T) {
	ctx := asmctx.New()
	_, err := HandleEqu(ctx, "BAD", "EAX")
	assert.Error(t, err)
}

func TestHandleEquRedefinitionReported(t *testing.T) {
	ctx := asmctx.New()
	_, err := HandleEqu(ctx, "LEN", "6")
	require.NoError(t, err)
	redefined, err := HandleEqu(ctx, "LEN", "7")
	require.NoError(t, err)
	assert.True(t, redefined)

	v, _ := ctx.Aliases.Lookup("LEN")
	assert.EqualValues(t, 6, v, "first definition wins")
}

func TestHandleDataDD(t *testing.T) {
	ctx := asmctx.New()
	redefined := HandleData(ctx, "COUNTER", DD)
	assert.False(t, redefined)
	assert.Equal(t, []byte{0, 0, 0, 0}, ctx.Em.Bytes())
	off, ok := ctx.Symbols.Lookup("COUNTER")
	require.True(t, ok)
	assert.EqualValues(t, 0, off)
}

func TestHandleDataDB(t *testing.T) {
	ctx := asmctx.New()
	HandleData(ctx, "FLAG", DB)
	assert.Equal(t, []byte{0}, ctx.Em.Bytes())
}

func TestParseDataDirective(t *testing.T) {
	kind, ok := ParseDataDirective("DD")
	assert.True(t, ok)
	assert.Equal(t, DD, kind)

	_, ok = ParseDataDirective("MOV")
	assert.False(t, ok)
}
