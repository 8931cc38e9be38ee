package compiler

import (
	"bytes"
	"context"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixdict-generator/internal/config"
	"fixdict-generator/internal/diagnostic"
	"fixdict-generator/internal/dictionary"
	"fixdict-generator/internal/gen"
	"fixdict-generator/internal/logging"
	"fixdict-generator/internal/plan"
)

const fix42XML = `<fix major="4" minor="2">
 <header><field name="BeginString" required="Y"/></header>
 <messages>
  <message name="Heartbeat" msgtype="0" msgcat="admin">
   <field name="TestReqID" required="N"/>
  </message>
 </messages>
 <components/>
 <fields>
  <field number="8" name="BeginString" type="STRING"/>
  <field number="112" name="TestReqID" type="STRING"/>
 </fields>
</fix>`

const fix44XML = `<fix major="4" minor="4">
 <messages>
  <message name="Logout" msgtype="5" msgcat="admin">
   <field name="Text" required="N"/>
  </message>
 </messages>
 <fields>
  <field number="58" name="Text" type="STRING"/>
 </fields>
</fix>`

// workspace writes the given dictionaries into a temporary directory and
// returns a validated configuration compiling them.
func workspace(t *testing.T, dicts map[string]string) *config.Config {
	t.Helper()

	dir := t.TempDir()
	cfg := config.Default()
	cfg.ImportPath = "example.com/fix"
	cfg.OutputDir = filepath.Join(dir, "out")
	cfg.Jobs = 2

	for _, name := range slices.Sorted(maps.Keys(dicts)) {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(dicts[name]), 0o644))
		cfg.AddDictionaries(path)
	}

	require.NoError(t, cfg.Validate())

	return cfg
}

func TestCompile(t *testing.T) {
	doc, err := dictionary.Parse([]byte(fix42XML))
	require.NoError(t, err)

	res, err := Compile(doc, plan.DefaultConfig(), gen.GeneratorConfig{ImportPath: "example.com/fix"})
	require.NoError(t, err)

	assert.Equal(t, "fix42", res.Package)
	assert.Same(t, doc, res.Document)
	require.Len(t, res.Schema.Messages, 1)

	var names []string
	for _, f := range res.Files {
		names = append(names, f.Filename)
	}

	assert.Equal(t, []string{"fix42/enum/enums.go", "fix42/fix42.go", "fix42/heartbeat.go"}, names)
}

func TestCompile_Error(t *testing.T) {
	doc, err := dictionary.Parse([]byte(`<fix major="4" minor="2"><messages>
  <message name="Heartbeat" msgtype="0"><field name="TestReqId" required="N"/></message>
</messages><fields><field number="112" name="TestReqID" type="STRING"/></fields></fix>`))
	require.NoError(t, err)

	_, err = Compile(doc, plan.DefaultConfig(), gen.DefaultGeneratorConfig())
	require.ErrorIs(t, err, diagnostic.ErrUnknownField)
}

func TestCompiler_Run(t *testing.T) {
	cfg := workspace(t, map[string]string{"FIX42.xml": fix42XML, "FIX44.xml": fix44XML})
	c := New(cfg, logging.Nop())

	results, err := c.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "fix42", results[0].Package)
	assert.Equal(t, "fix44", results[1].Package)

	first, err := os.ReadFile(filepath.Join(cfg.OutputDir, "fix44", "logout.go"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(first, []byte(gen.Header)))

	_, err = c.Run(context.Background())
	require.NoError(t, err)

	second, err := os.ReadFile(filepath.Join(cfg.OutputDir, "fix44", "logout.go"))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCompiler_Run_WritesNothingOnFailure(t *testing.T) {
	cfg := workspace(t, map[string]string{
		"A.xml": fix42XML,
		"B.xml": `<fix major="4" minor="4"><messages/></fix>`,
	})

	_, err := New(cfg, logging.Nop()).Run(context.Background())
	require.ErrorIs(t, err, diagnostic.ErrMalformedDictionary)

	_, err = os.Stat(cfg.OutputDir)
	assert.True(t, os.IsNotExist(err))
}

func TestCompiler_CompileAll_DuplicatePackage(t *testing.T) {
	cfg := workspace(t, map[string]string{"A.xml": fix42XML, "B.xml": fix42XML})

	_, err := New(cfg, logging.Nop()).CompileAll(context.Background())
	require.ErrorIs(t, err, diagnostic.ErrNameCollision)

	cfg.Dictionaries[1].Package = "fix42b"
	_, err = New(cfg, logging.Nop()).CompileAll(context.Background())
	require.NoError(t, err)
}

func TestCompiler_CompileAll_Cancelled(t *testing.T) {
	cfg := workspace(t, map[string]string{"FIX42.xml": fix42XML})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(cfg, logging.Nop()).CompileAll(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestCompiler_Check(t *testing.T) {
	cfg := workspace(t, map[string]string{"FIX42.xml": fix42XML})
	c := New(cfg, logging.Nop())

	var out strings.Builder

	err := c.Check(context.Background(), &out)
	require.ErrorIs(t, err, ErrDrift)
	assert.Contains(t, err.Error(), "3 file(s) differ")
	assert.Contains(t, out.String(), "--- /dev/null\n+++ b/fix42/heartbeat.go\n")

	_, err = c.Run(context.Background())
	require.NoError(t, err)

	out.Reset()
	require.NoError(t, c.Check(context.Background(), &out))
	assert.Empty(t, out.String())

	path := filepath.Join(cfg.OutputDir, "fix42", "fix42.go")
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, bytes.Replace(content, []byte(`"FIX.4.2"`), []byte(`"FIX.4.1"`), 1), 0o644))

	err = c.Check(context.Background(), &out)
	require.ErrorIs(t, err, ErrDrift)
	assert.Contains(t, out.String(), "--- a/fix42/fix42.go\n+++ b/fix42/fix42.go\n")
	assert.Contains(t, out.String(), "-const BeginString = \"FIX.4.1\"\n+const BeginString = \"FIX.4.2\"\n")
}

func TestCompiler_Check_CommittedExample(t *testing.T) {
	cfg, err := config.LoadFile(filepath.Join("..", "..", "examples", "fix42lite", "fixdict.yaml"))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	var out strings.Builder

	require.NoError(t, New(cfg, logging.Nop()).Check(context.Background(), &out))
	assert.Empty(t, out.String())
}

func TestCompiler_CompileAll_DiagnosticsSummary(t *testing.T) {
	const spare = `<fix major="4" minor="3">
 <messages>
  <message name="Logout" msgtype="5"><field name="Text" required="N"/></message>
 </messages>
 <components>
  <component name="Spare"><field name="Text"/></component>
 </components>
 <fields>
  <field number="58" name="Text" type="STRING"/>
 </fields>
</fix>`

	tests := []struct {
		name  string
		dicts map[string]string
		want  []string
	}{
		{
			name:  "unused component",
			dicts: map[string]string{"FIX43.xml": spare, "FIX44.xml": fix44XML},
			want: []string{
				`"message":"compiled with diagnostics"`,
				`"dictionaries":2`,
				`"warnings":1`,
			},
		},
		{
			name:  "clean",
			dicts: map[string]string{"FIX44.xml": fix44XML},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := workspace(t, tt.dicts)

			var buf bytes.Buffer
			logger, err := logging.New(&buf, config.LogConfig{Level: "info", Format: config.LogFormatJSON})
			require.NoError(t, err)

			_, err = New(cfg, logger).CompileAll(context.Background())
			require.NoError(t, err)

			if len(tt.want) == 0 {
				assert.NotContains(t, buf.String(), "compiled with diagnostics")
				return
			}

			for _, want := range tt.want {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestDiff(t *testing.T) {
	diff, err := Diff("fix42/a.go", []byte("a\nb\nc\n"), []byte("a\nB\nc\n"))
	require.NoError(t, err)

	assert.Equal(t, "--- a/fix42/a.go\n+++ b/fix42/a.go\n@@ -1,3 +1,3 @@\n a\n-b\n+B\n c\n", diff)

	diff, err = Diff("fix42/a.go", []byte("same\n"), []byte("same\n"))
	require.NoError(t, err)
	assert.Empty(t, diff)
}

func TestCompiler_Watch(t *testing.T) {
	cfg := workspace(t, map[string]string{"FIX44.xml": fix44XML})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- New(cfg, logging.Nop()).Watch(ctx) }()

	exists := func(parts ...string) func() bool {
		return func() bool {
			_, err := os.Stat(filepath.Join(append([]string{cfg.OutputDir}, parts...)...))
			return err == nil
		}
	}

	require.Eventually(t, exists("fix44", "logout.go"), 5*time.Second, 20*time.Millisecond)

	updated := strings.Replace(fix44XML, "</messages>",
		`<message name="TestRequest" msgtype="1" msgcat="admin"><field name="Text" required="Y"/></message></messages>`, 1)
	require.NoError(t, os.WriteFile(cfg.Dictionaries[0].Path, []byte(updated), 0o644))

	require.Eventually(t, exists("fix44", "testrequest.go"), 5*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}
