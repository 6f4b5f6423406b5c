package asmconfig

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigMatchesSpecDefaults(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "programa.asm", cfg.Files.Source)
	assert.Equal(t, "programa.hex", cfg.Files.Image)
	assert.Equal(t, "simbolos.txt", cfg.Files.Symbols)
	assert.Equal(t, "referencias.txt", cfg.Files.References)
	assert.Equal(t, 16, cfg.Report.HexBytesPerLine)
}

func TestLoadFromMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveToThenLoadFromRoundTrips(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Files.Source = "main.asm"
	cfg.Report.HexBytesPerLine = 8

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, cfg.SaveTo(path))

	loaded, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "main.asm", loaded.Files.Source)
	assert.Equal(t, 8, loaded.Report.HexBytesPerLine)
}
