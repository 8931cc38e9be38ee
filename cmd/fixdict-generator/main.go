// Command fixdict-generator compiles QuickFIX XML data dictionaries into Go
// message records, enum types and a per-revision MsgType registry.
//
//	fixdict-generator gen -c fixdict.yaml
//	fixdict-generator gen --import-path example.com/fix -o ./fix dict/FIX42.xml
//	fixdict-generator check -c fixdict.yaml
//	fixdict-generator inspect dict/FIX42.xml --format spew
//	fixdict-generator watch -c fixdict.yaml
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type command interface {
	help() *commandHelp
	flags(flags *pflag.FlagSet)
	run(ctx context.Context, env *environment, args []string) error
}

type commandHelp struct {
	usage   string
	summary string
	args    cobra.PositionalArgs
}

// environment is shared by every command.
type environment struct {
	stdout     io.Writer
	stderr     io.Writer
	configPath string
	logLevel   string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := newRootCommand(&environment{stdout: os.Stdout, stderr: os.Stderr})
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCommand(env *environment) *cobra.Command {
	root := &cobra.Command{
		Use:   "fixdict-generator [options] COMMAND",
		Short: "Generate Go message records from FIX data dictionaries",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.SetOut(env.stdout)
	root.SetErr(env.stderr)
	root.PersistentFlags().StringVarP(&env.configPath, "config", "c", "", "config file path (default ./"+defaultConfigFile+" if present)")
	root.PersistentFlags().StringVar(&env.logLevel, "log-level", "", "log level, overrides the config file")

	commands := []command{
		&cmdGen{},
		&cmdCheck{},
		&cmdInspect{format: formatYAML},
		&cmdWatch{},
	}

	for _, cmd := range commands {
		help := cmd.help()
		cobraCmd := &cobra.Command{
			Use:   help.usage,
			Short: help.summary,
			Args:  help.args,
			RunE: func(c *cobra.Command, args []string) error {
				return cmd.run(c.Context(), env, args)
			},
		}
		cmd.flags(cobraCmd.Flags())
		root.AddCommand(cobraCmd)
	}

	return root
}
