package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"fixdict-generator/internal/compiler"
	"fixdict-generator/internal/config"
	"fixdict-generator/internal/logging"
)

const defaultConfigFile = "fixdict.yaml"

// buildOptions are the configuration overrides shared by gen, check and
// watch.
type buildOptions struct {
	outputDir  string
	importPath string
	jobs       int
	noComments bool
}

func (o *buildOptions) flags(flags *pflag.FlagSet) {
	flags.StringVarP(&o.outputDir, "out", "o", "", "output directory, overrides output_dir")
	flags.StringVar(&o.importPath, "import-path", "", "Go import path of the output directory, overrides import_path")
	flags.IntVarP(&o.jobs, "jobs", "j", 0, "revisions compiled concurrently, overrides jobs")
	flags.BoolVar(&o.noComments, "no-comments", false, "omit doc comments from generated code")
}

// loadConfig reads the configuration file, applies command line overrides
// and validates the result. Dictionaries given as arguments replace the
// configured ones.
func (o *buildOptions) loadConfig(env *environment, dictionaries []string) (*config.Config, error) {
	cfg, err := readConfig(env.configPath)
	if err != nil {
		return nil, err
	}

	if len(dictionaries) > 0 {
		cfg.Dictionaries = nil
		cfg.AddDictionaries(dictionaries...)
	}

	if o.outputDir != "" {
		cfg.OutputDir = o.outputDir
	}

	if o.importPath != "" {
		cfg.ImportPath = o.importPath
	}

	if o.jobs != 0 {
		cfg.Jobs = o.jobs
	}

	if o.noComments {
		comments := false
		cfg.Comments = &comments
	}

	if env.logLevel != "" {
		cfg.Log.Level = env.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration:\n%w", err)
	}

	return cfg, nil
}

func readConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}

	if _, err := os.Stat(defaultConfigFile); err == nil {
		return config.LoadFile(defaultConfigFile)
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	cfg := config.Default()
	cfg.ApplyEnv(os.LookupEnv)

	return cfg, nil
}

func (o *buildOptions) compiler(env *environment, dictionaries []string) (*compiler.Compiler, error) {
	cfg, err := o.loadConfig(env, dictionaries)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(env.stderr, cfg.Log)
	if err != nil {
		return nil, err
	}

	return compiler.New(cfg, logger), nil
}

// inspectLogger is used by commands that run without a configuration.
func inspectLogger(env *environment) (zerolog.Logger, error) {
	cfg := config.Default()
	cfg.ApplyEnv(os.LookupEnv)

	if env.logLevel != "" {
		cfg.Log.Level = env.logLevel
	}

	return logging.New(env.stderr, cfg.Log)
}
