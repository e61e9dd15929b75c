package javacomments

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteTree writes the output of every file in doc below dir, mirroring the
// paths the files were found at. Files from the second and later
// filesystems go to fs1/, fs2/, ... subdirectories so that equal paths do
// not overwrite each other.
func WriteTree(doc Document, dir string) error {
	for _, f := range doc.Files {
		target := filepath.Join(dir, filepath.FromSlash(f.Path))
		if f.FS > 0 {
			target = filepath.Join(dir, fmt.Sprintf("fs%d", f.FS), filepath.FromSlash(f.Path))
		}
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
		if err := os.WriteFile(target, []byte(f.Output), 0o644); err != nil {
			return fmt.Errorf("failed to write file: %w", err)
		}
	}
	return nil
}
