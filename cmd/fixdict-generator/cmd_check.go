package main

import (
	"context"

	"github.com/spf13/pflag"
)

type cmdCheck struct {
	build buildOptions
}

func (*cmdCheck) help() *commandHelp {
	return &commandHelp{
		usage:   "check [dictionary...]",
		summary: "Fail with a diff when generated packages on disk are out of date",
	}
}

func (cmd *cmdCheck) flags(flags *pflag.FlagSet) {
	cmd.build.flags(flags)
}

func (cmd *cmdCheck) run(ctx context.Context, env *environment, args []string) error {
	c, err := cmd.build.compiler(env, args)
	if err != nil {
		return err
	}

	return c.Check(ctx, env.stdout)
}
