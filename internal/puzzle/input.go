package puzzle

import (
	"fmt"
	"os"
	"path/filepath"
)

// InputKind selects the directory an input is read from.
type InputKind string

const (
	InputPuzzle  InputKind = "inputs"
	InputExample InputKind = "examples"
)

// InputPath returns "<dir>/<kind>/<DD>.txt".
func InputPath(dir string, kind InputKind, day int) string {
	return filepath.Join(dir, string(kind), fmt.Sprintf("%02d.txt", day))
}

// ReadInput reads a whole input file.
func ReadInput(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input %s: %w", path, err)
	}

	return string(data), nil
}
