package compiler

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"fixdict-generator/internal/config"
	"fixdict-generator/internal/diagnostic"
	"fixdict-generator/internal/dictionary"
	"fixdict-generator/internal/gen"
	"fixdict-generator/internal/logging"
	"fixdict-generator/internal/plan"
)

// Result is the compilation of one dictionary.
type Result struct {
	Dictionary config.Dictionary
	Document   *dictionary.Document
	Schema     *plan.Schema
	// Package is the generated Go package name.
	Package string
	Files   []gen.GeneratedFile
}

// Compile resolves doc and renders its package. Nothing is written.
func Compile(doc *dictionary.Document, resolution plan.ResolutionConfig, genCfg gen.GeneratorConfig) (*Result, error) {
	schema, err := plan.NewResolver(doc, resolution).Resolve()
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", doc.Path, err)
	}

	generator := gen.NewGenerator(genCfg)

	files, err := generator.Generate(schema)
	if err != nil {
		return nil, fmt.Errorf("generating %s: %w", doc.Path, err)
	}

	return &Result{
		Document: doc,
		Schema:   schema,
		Package:  generator.PackageName(schema),
		Files:    files,
	}, nil
}

// Compiler compiles the dictionaries of a configuration.
type Compiler struct {
	cfg        *config.Config
	resolution plan.ResolutionConfig
	logger     zerolog.Logger
}

// New creates a Compiler. cfg is expected to be validated.
func New(cfg *config.Config, logger zerolog.Logger) *Compiler {
	return &Compiler{
		cfg:        cfg,
		resolution: plan.DefaultConfig(),
		logger:     logger,
	}
}

func (c *Compiler) generatorConfig(d config.Dictionary) gen.GeneratorConfig {
	return gen.GeneratorConfig{
		PackageName:      d.Package,
		ImportPath:       c.cfg.ImportPath,
		RuntimeImport:    c.cfg.RuntimeImport,
		OutputDir:        c.cfg.OutputDir,
		GenerateComments: c.cfg.GenerateComments(),
	}
}

// CompileOne loads and compiles a single dictionary.
func (c *Compiler) CompileOne(ctx context.Context, d config.Dictionary) (*Result, error) {
	logger := c.logger.With().Str("dictionary", d.Path).Logger()

	logger.Debug().Msg("loading dictionary")

	doc, err := dictionary.LoadFile(d.Path)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.Debug().Str("revision", doc.Revision.Version()).Msg("resolving schema")

	res, err := Compile(doc, c.resolution, c.generatorConfig(d))
	if err != nil {
		return nil, err
	}

	res.Dictionary = d

	logging.Diagnostics(logger, res.Schema.Diagnostics)
	logger.Debug().
		Int("messages", len(res.Schema.Messages)).
		Int("classes", len(res.Schema.Classes)).
		Int("enums", len(res.Schema.Enums)).
		Int("files", len(res.Files)).
		Msg("generated package")

	return res, nil
}

// CompileAll compiles every configured dictionary, at most Jobs at a time.
// The first failure cancels the remaining work. Results keep the
// configuration order.
func (c *Compiler) CompileAll(ctx context.Context) ([]*Result, error) {
	results := make([]*Result, len(c.cfg.Dictionaries))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.cfg.Jobs)

	for i, d := range c.cfg.Dictionaries {
		g.Go(func() error {
			res, err := c.CompileOne(ctx, d)
			if err != nil {
				return err
			}

			results[i] = res

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var total diagnostic.Diagnostics

	packages := make(map[string]string, len(results))
	for _, res := range results {
		if prev, ok := packages[res.Package]; ok {
			return nil, diagnostic.Errorf(diagnostic.CodeNameCollision, res.Dictionary.Path,
				"package %s is already generated from %s", res.Package, prev)
		}

		packages[res.Package] = res.Dictionary.Path
		total.Merge(res.Schema.Diagnostics)
	}

	if !total.Empty() {
		c.logger.Info().
			Int("dictionaries", len(results)).
			Int("warnings", len(total.Warnings)).
			Int("infos", len(total.Infos)).
			Msg("compiled with diagnostics")
	}

	return results, nil
}

// Run compiles every dictionary and, only if all of them succeed, writes
// the generated packages to the output directory.
func (c *Compiler) Run(ctx context.Context) ([]*Result, error) {
	results, err := c.CompileAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, res := range results {
		if err := c.write(res); err != nil {
			return nil, err
		}
	}

	return results, nil
}

func (c *Compiler) write(res *Result) error {
	if err := gen.WriteFiles(res.Files, c.cfg.OutputDir); err != nil {
		return err
	}

	c.logger.Info().
		Str("revision", res.Schema.Revision.Version()).
		Str("package", res.Package).
		Int("messages", len(res.Schema.Messages)).
		Int("files", len(res.Files)).
		Msg("wrote package")

	return nil
}
