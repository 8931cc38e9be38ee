package main

import (
	"context"

	"github.com/spf13/pflag"
)

type cmdWatch struct {
	build buildOptions
}

func (*cmdWatch) help() *commandHelp {
	return &commandHelp{
		usage:   "watch [dictionary...]",
		summary: "Regenerate a revision whenever its dictionary changes",
	}
}

func (cmd *cmdWatch) flags(flags *pflag.FlagSet) {
	cmd.build.flags(flags)
}

func (cmd *cmdWatch) run(ctx context.Context, env *environment, args []string) error {
	c, err := cmd.build.compiler(env, args)
	if err != nil {
		return err
	}

	return c.Watch(ctx)
}
