package main

import (
	"context"

	"github.com/spf13/pflag"
)

type cmdGen struct {
	build buildOptions
}

func (*cmdGen) help() *commandHelp {
	return &commandHelp{
		usage:   "gen [dictionary...]",
		summary: "Compile dictionaries and write the generated packages",
	}
}

func (cmd *cmdGen) flags(flags *pflag.FlagSet) {
	cmd.build.flags(flags)
}

func (cmd *cmdGen) run(ctx context.Context, env *environment, args []string) error {
	c, err := cmd.build.compiler(env, args)
	if err != nil {
		return err
	}

	_, err = c.Run(ctx)

	return err
}
