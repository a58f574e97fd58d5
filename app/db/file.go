package db

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// FileWriter writes reports to "<word>.txt" files in Dir
type FileWriter struct {
	Dir string
}

// Path returns report file path for word
func (w FileWriter) Path(word string) string {
	return filepath.Join(w.Dir, word+".txt")
}

// Write replaces word report file with text
func (w FileWriter) Write(word, text string) error {
	path := w.Path(word)
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}
