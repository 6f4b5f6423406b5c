// Package sourcefile is the scoped file-reading driver that hands
// complete source lines to the lexer, modeled on the teacher's
// parser.ParseFile (parser/file.go) and loader/loader.go.
package sourcefile

import (
	"bufio"
	"os"
	"path/filepath"
)

// ReadLines opens path, reads it line by line, and returns the raw lines
// (without trailing newlines). The file handle is scoped to this call:
// opened, read, and closed before returning, on every exit path.
func ReadLines(path string) (lines []string, err error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided assembly source path
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if scanErr := scanner.Err(); scanErr != nil {
		return nil, scanErr
	}

	return lines, nil
}

// BaseName returns path's filename component, for use as the position
// tag reported in diagnostics.
func BaseName(path string) string {
	return filepath.Base(path)
}

// WriteFile writes data to path, creating or truncating it, with file
// handling scoped to this call the same way ReadLines scopes its open.
func WriteFile(path string, data []byte) (err error) {
	f, err := os.Create(path) // #nosec G304 -- user-provided output path
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	_, err = f.Write(data)
	return err
}
