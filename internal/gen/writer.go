package gen

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes files into outputDir, creating it if needed. Files
// whose content is already on disk are left alone. It returns the names
// of the files actually written.
func WriteFiles(files []GeneratedFile, outputDir string) ([]string, error) {
	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	var written []string

	for _, file := range files {
		outputPath := filepath.Join(outputDir, file.Filename)

		current, err := os.ReadFile(outputPath)
		if err == nil && bytes.Equal(current, file.Content) {
			continue
		}

		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return written, fmt.Errorf("reading file %s: %w", file.Filename, err)
		}

		if err := writeAtomic(outputPath, file.Content); err != nil {
			return written, fmt.Errorf("writing file %s: %w", file.Filename, err)
		}

		written = append(written, file.Filename)
	}

	return written, nil
}

// writeAtomic replaces path through a temporary file in the same
// directory, so readers never see a half-written file.
func writeAtomic(path string, content []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}

	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		return err
	}

	if err := tmp.Chmod(filePerm); err != nil {
		_ = tmp.Close()
		return err
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}

// writeDebugUnformatted writes unformatted code to a sidecar file next to
// the intended output. It is best-effort.
func writeDebugUnformatted(outDir, filename string, content []byte) error {
	if outDir == "" || filename == "" {
		return nil
	}

	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return err
	}

	debugName := strings.TrimSuffix(filename, ".go") + ".unformatted.go"

	return os.WriteFile(filepath.Join(outDir, debugName), content, filePerm)
}
