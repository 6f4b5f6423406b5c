package sourcefile

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLinesRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "programa.asm")
	require.NoError(t, WriteFile(path, []byte("MOV EAX, 5\nRET\n")))

	lines, err := ReadLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"MOV EAX, 5", "RET"}, lines)
}

func TestReadLinesMissingFile(t *testing.T) {
	_, err := ReadLines(filepath.Join(t.TempDir(), "absent.asm"))
	assert.Error(t, err)
}

func TestBaseName(t *testing.T) {
	assert.Equal(t, "programa.asm", BaseName("/tmp/foo/programa.asm"))
}
