// Package asmconfig is a TOML-backed configuration struct modeled
// line-for-line on the teacher's config/config.go, holding the default
// filenames and hex-dump formatting spec.md §6 specifies, with an
// optional .ia32asmrc.toml override.
package asmconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DefaultConfigFilename is the override file asmconfig.Load looks for in
// the working directory.
const DefaultConfigFilename = ".ia32asmrc.toml"

// Config holds the assembler's file-naming and report-formatting
// defaults.
type Config struct {
	Files struct {
		Source     string `toml:"source"`
		Image      string `toml:"image"`
		Symbols    string `toml:"symbols"`
		References string `toml:"references"`
	} `toml:"files"`

	Report struct {
		HexBytesPerLine int  `toml:"hex_bytes_per_line"`
		CrossReference  bool `toml:"cross_reference"`
	} `toml:"report"`
}

// DefaultConfig returns the spec.md §6 defaults: programa.asm /
// programa.hex / simbolos.txt / referencias.txt, 16 bytes per hex-dump
// line.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Files.Source = "programa.asm"
	cfg.Files.Image = "programa.hex"
	cfg.Files.Symbols = "simbolos.txt"
	cfg.Files.References = "referencias.txt"
	cfg.Report.HexBytesPerLine = 16
	cfg.Report.CrossReference = false
	return cfg
}

// Load reads DefaultConfigFilename from the working directory, if
// present, layering its values over DefaultConfig. Absent the file, the
// plain defaults are returned.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigFilename)
}

// LoadFrom reads path, layering its values over DefaultConfig. A missing
// file is not an error.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save writes c to DefaultConfigFilename in the working directory.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigFilename)
}

// SaveTo writes c to path in TOML form.
func (c *Config) SaveTo(path string) (err error) {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	f, err := os.Create(path) // #nosec G304 -- user-controlled config path by design
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close config file: %w", closeErr)
		}
	}()

	enc := toml.NewEncoder(f)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}
