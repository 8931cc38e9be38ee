package compiler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"fixdict-generator/internal/gen"
)

// ErrDrift is returned by Check when files on disk differ from the
// generated code.
var ErrDrift = errors.New("generated code is out of date")

// Check compiles every dictionary in memory and writes a unified diff to w
// for each file that is missing or differs on disk.
func (c *Compiler) Check(ctx context.Context, w io.Writer) error {
	results, err := c.CompileAll(ctx)
	if err != nil {
		return err
	}

	var stale []string

	for _, res := range results {
		existing, err := gen.ReadExisting(res.Files, c.cfg.OutputDir)
		if err != nil {
			return err
		}

		for _, f := range res.Files {
			old := existing[f.Filename]
			if bytes.Equal(old, f.Content) {
				continue
			}

			stale = append(stale, f.Filename)

			diff, err := Diff(f.Filename, old, f.Content)
			if err != nil {
				return err
			}

			if _, err := io.WriteString(w, diff); err != nil {
				return err
			}
		}
	}

	if len(stale) > 0 {
		c.logger.Warn().Strs("files", stale).Msg("generated code drifted")

		return fmt.Errorf("%w: %d file(s) differ", ErrDrift, len(stale))
	}

	c.logger.Info().Int("packages", len(results)).Msg("generated code is up to date")

	return nil
}

// Diff renders the unified diff turning old into generated. A nil old
// stands for a missing file.
func Diff(filename string, old, generated []byte) (string, error) {
	from := path.Join("a", filename)
	if old == nil {
		from = "/dev/null"
	}

	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        splitLines(old),
		B:        splitLines(generated),
		FromFile: from,
		ToFile:   path.Join("b", filename),
		Context:  3,
	})
}

func splitLines(b []byte) []string {
	if len(b) == 0 {
		return nil
	}

	return difflib.SplitLines(strings.TrimSuffix(string(b), "\n"))
}
