package gen

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes generated files below outputDir, creating package
// directories as needed. Existing files are overwritten.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	for _, file := range files {
		outputPath := filepath.Join(outputDir, filepath.FromSlash(file.Filename))

		if err := os.MkdirAll(filepath.Dir(outputPath), dirPerm); err != nil {
			return fmt.Errorf("creating directory for %s: %w", file.Filename, err)
		}

		if err := os.WriteFile(outputPath, file.Content, filePerm); err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}
	}

	return nil
}

// ReadExisting loads the on-disk counterpart of every file. Missing files
// map to nil content.
func ReadExisting(files []GeneratedFile, outputDir string) (map[string][]byte, error) {
	existing := make(map[string][]byte, len(files))

	for _, file := range files {
		content, err := os.ReadFile(filepath.Join(outputDir, filepath.FromSlash(file.Filename)))
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading %s: %w", file.Filename, err)
		}

		existing[file.Filename] = content
	}

	return existing, nil
}
