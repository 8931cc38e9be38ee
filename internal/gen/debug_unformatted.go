package gen

import (
	"os"
	"path/filepath"
	"strings"
)

// writeDebugUnformatted writes template output that failed to format to a
// sidecar next to the intended file, so the broken source can be inspected.
func writeDebugUnformatted(outDir, filename string, content []byte) error {
	if outDir == "" || filename == "" {
		return nil
	}

	debugName := strings.TrimSuffix(filepath.FromSlash(filename), ".go") + ".unformatted.go"
	p := filepath.Join(outDir, debugName)

	if err := os.MkdirAll(filepath.Dir(p), dirPerm); err != nil {
		return err
	}

	return os.WriteFile(p, content, filePerm)
}
