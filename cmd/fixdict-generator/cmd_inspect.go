package main

import (
	"context"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"fixdict-generator/internal/dictionary"
	"fixdict-generator/internal/logging"
	"fixdict-generator/internal/plan"
)

const (
	formatYAML = "yaml"
	formatSpew = "spew"
)

type cmdInspect struct {
	format string
}

func (*cmdInspect) help() *commandHelp {
	return &commandHelp{
		usage:   "inspect DICTIONARY",
		summary: "Print the expanded schema of a dictionary",
		args:    cobra.ExactArgs(1),
	}
}

func (cmd *cmdInspect) flags(flags *pflag.FlagSet) {
	flags.StringVarP(&cmd.format, "format", "f", formatYAML, "output format: yaml or spew")
}

func (cmd *cmdInspect) run(_ context.Context, env *environment, args []string) error {
	if cmd.format != formatYAML && cmd.format != formatSpew {
		return fmt.Errorf("unknown format %q, want %s or %s", cmd.format, formatYAML, formatSpew)
	}

	logger, err := inspectLogger(env)
	if err != nil {
		return err
	}

	doc, err := dictionary.LoadFile(args[0])
	if err != nil {
		return err
	}

	schema, err := plan.Resolve(doc)
	if err != nil {
		return err
	}

	logging.Diagnostics(logger, schema.Diagnostics)

	if cmd.format == formatSpew {
		dumper := spew.ConfigState{
			Indent:                  "  ",
			DisablePointerAddresses: true,
			DisableCapacities:       true,
			SortKeys:                true,
		}
		dumper.Fdump(env.stdout, plan.Export(schema))

		return nil
	}

	out, err := plan.ExportYAML(schema)
	if err != nil {
		return err
	}

	_, err = env.stdout.Write(out)

	return err
}
