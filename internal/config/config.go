package config

import (
	"errors"
	"fmt"
	"go/token"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/mod/module"
)

// Environment variables overriding the log section.
const (
	EnvLogLevel  = "FIXDICT_LOG_LEVEL"
	EnvLogFormat = "FIXDICT_LOG_FORMAT"
)

// Log output formats.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

const (
	defaultOutputDir     = "./generated"
	defaultRuntimeImport = "fixdict-generator/tagvalue"
	defaultLogLevel      = "info"
)

// Config is the generator configuration.
type Config struct {
	// OutputDir receives one subdirectory per revision package.
	OutputDir string `yaml:"output_dir" toml:"output_dir"`
	// ImportPath is the Go import path of OutputDir.
	ImportPath string `yaml:"import_path" toml:"import_path"`
	// RuntimeImport is the import path of the tagvalue runtime.
	RuntimeImport string `yaml:"runtime_import,omitempty" toml:"runtime_import,omitempty"`
	// Jobs bounds how many revisions compile concurrently.
	Jobs int `yaml:"jobs,omitempty" toml:"jobs,omitempty"`
	// Comments enables doc comments in generated code. Defaults to true.
	Comments     *bool        `yaml:"comments,omitempty" toml:"comments,omitempty"`
	Dictionaries []Dictionary `yaml:"dictionaries" toml:"dictionaries"`
	Log          LogConfig    `yaml:"log" toml:"log"`
}

// Dictionary is one revision to compile.
type Dictionary struct {
	Path string `yaml:"path" toml:"path"`
	// Package overrides the package name derived from the revision.
	Package string `yaml:"package,omitempty" toml:"package,omitempty"`
}

// LogConfig selects the logger level and output format.
type LogConfig struct {
	Level  string `yaml:"level,omitempty" toml:"level,omitempty"`
	Format string `yaml:"format,omitempty" toml:"format,omitempty"`
}

// Default returns a configuration with every default applied and no
// dictionaries.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)

	return cfg
}

// GenerateComments reports whether generated code carries doc comments.
func (c *Config) GenerateComments() bool {
	return c.Comments == nil || *c.Comments
}

// AddDictionaries appends dictionaries given by path.
func (c *Config) AddDictionaries(paths ...string) {
	for _, p := range paths {
		c.Dictionaries = append(c.Dictionaries, Dictionary{Path: p})
	}
}

// applyDefaults fills in default values for optional settings.
func applyDefaults(cfg *Config) {
	if cfg.OutputDir == "" {
		cfg.OutputDir = defaultOutputDir
	}

	if cfg.RuntimeImport == "" {
		cfg.RuntimeImport = defaultRuntimeImport
	}

	if cfg.Jobs == 0 {
		cfg.Jobs = 1
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = defaultLogLevel
	}

	if cfg.Log.Format == "" {
		cfg.Log.Format = LogFormatConsole
	}
}

// ApplyEnv overrides the log section from the environment via lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvLogLevel); ok && strings.TrimSpace(v) != "" {
		c.Log.Level = strings.TrimSpace(v)
	}

	if v, ok := lookup(EnvLogFormat); ok && strings.TrimSpace(v) != "" {
		c.Log.Format = strings.TrimSpace(v)
	}
}

// resolvePaths makes relative output and dictionary paths relative to dir.
func (c *Config) resolvePaths(dir string) {
	abs := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}

		return filepath.Join(dir, p)
	}

	c.OutputDir = abs(c.OutputDir)
	for i := range c.Dictionaries {
		c.Dictionaries[i].Path = abs(c.Dictionaries[i].Path)
	}
}

// Validate checks the configuration and reports every problem found.
func (c *Config) Validate() error {
	var errs []error

	addf := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if c.OutputDir == "" {
		addf("output_dir is required")
	}

	if c.ImportPath == "" {
		addf("import_path is required")
	} else if err := module.CheckImportPath(c.ImportPath); err != nil {
		addf("import_path: %w", err)
	}

	if err := module.CheckImportPath(c.RuntimeImport); err != nil {
		addf("runtime_import: %w", err)
	}

	if c.Jobs < 1 {
		addf("jobs must be at least 1, got %d", c.Jobs)
	}

	if len(c.Dictionaries) == 0 {
		addf("no dictionaries configured")
	}

	packages := make(map[string]string)

	for i, d := range c.Dictionaries {
		if d.Path == "" {
			addf("dictionaries[%d]: path is required", i)
		}

		if d.Package == "" {
			continue
		}

		if !token.IsIdentifier(d.Package) || d.Package != strings.ToLower(d.Package) {
			addf("dictionaries[%d]: %q is not a lowercase Go package name", i, d.Package)
		}

		if prev, ok := packages[d.Package]; ok {
			addf("dictionaries[%d]: package %q already used by %s", i, d.Package, prev)
		}

		packages[d.Package] = d.Path
	}

	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		addf("log.level: %w", err)
	}

	switch c.Log.Format {
	case LogFormatConsole, LogFormatJSON:
	default:
		addf("log.format must be %q or %q, got %q", LogFormatConsole, LogFormatJSON, c.Log.Format)
	}

	return errors.Join(errs...)
}
