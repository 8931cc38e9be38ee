package gen

import (
	"bytes"
	"fmt"
	"path"
	"sort"
	"text/template"

	"golang.org/x/tools/imports"

	"fixdict-generator/internal/common"
	"fixdict-generator/internal/plan"
)

// Header is the first line of every generated file.
const Header = "// Code generated by fixdict-generator. DO NOT EDIT."

// DefaultRuntimeImport is the import path of the tagvalue runtime.
const DefaultRuntimeImport = "fixdict-generator/tagvalue"

// EnumPackage is the name of the enum subpackage of every revision.
const EnumPackage = "enum"

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName overrides the package name derived from the revision.
	PackageName string
	// ImportPath is the import path of OutputDir.
	ImportPath string
	// RuntimeImport is the import path of the tagvalue runtime.
	RuntimeImport string
	// OutputDir is where files will be written. Generation itself does not
	// write; the directory is only used for unformatted debug sidecars.
	OutputDir string
	// GenerateComments enables doc comments on generated declarations.
	GenerateComments bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		RuntimeImport:    DefaultRuntimeImport,
		OutputDir:        "./generated",
		GenerateComments: true,
	}
}

// Generator generates Go code from a resolved Schema.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	if config.RuntimeImport == "" {
		config.RuntimeImport = DefaultRuntimeImport
	}

	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is relative to the output directory, e.g. "fix42/heartbeat.go".
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// PackageName returns the Go package generated for s.
func (g *Generator) PackageName(s *plan.Schema) string {
	if g.config.PackageName != "" {
		return g.config.PackageName
	}

	return s.Revision.PackageName()
}

// Generate renders every file of the revision package. Files are ordered
// by name and the same Schema always yields byte-identical output.
func (g *Generator) Generate(s *plan.Schema) ([]GeneratedFile, error) {
	data, err := g.buildTemplateData(s)
	if err != nil {
		return nil, err
	}

	pkg := data.pkg.Package

	var files []GeneratedFile

	render := func(name, tmpl string, v any) error {
		file, err := g.render(path.Join(pkg, name), tmpl, v)
		if err != nil {
			return err
		}

		files = append(files, *file)

		return nil
	}

	if err := render(pkg+".go", "package", data.pkg); err != nil {
		return nil, err
	}

	for _, m := range data.messages {
		if err := render(m.Filename, "message", m); err != nil {
			return nil, err
		}
	}

	if err := render(path.Join(EnumPackage, "enums.go"), "enums", data.enums); err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Filename < files[j].Filename })

	return files, nil
}

func (g *Generator) render(filename, name string, data any) (*GeneratedFile, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("executing %s template for %s: %w", name, filename, err)
	}

	formatted, err := imports.Process(filename, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		// best-effort sidecar next to the intended output
		if g.config.OutputDir != "" {
			_ = writeDebugUnformatted(g.config.OutputDir, filename, buf.Bytes())
		}

		return nil, fmt.Errorf("formatting %s: %w", filename, err)
	}

	return &GeneratedFile{Filename: filename, Content: formatted}, nil
}

// runtimeRef is how generated code refers to the runtime package.
type runtimeRef struct {
	Path  string
	Alias string
	// Named is set when the alias differs from the last path element.
	Named bool
}

func newRuntimeRef(importPath string) runtimeRef {
	alias := common.PkgAlias(importPath)
	ref := runtimeRef{Path: importPath, Alias: "tagvalue"}

	if alias != ref.Alias {
		ref.Named = true
	}

	return ref
}

var templates = template.Must(template.New("gen").Funcs(template.FuncMap{
	"quote": func(s string) string { return fmt.Sprintf("%q", s) },
}).Parse(templateText))
