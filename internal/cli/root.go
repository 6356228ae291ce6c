package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRootCommand(env *runEnv) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ccx",
		Short: "Clean code exercises: comparison compactor, shipping rates, CSV summaries",
		Long: `ccx runs the clean code exercises from the command line.

Configuration is loaded in the following order (later sources override earlier):
  1. Default values
  2. YAML config file (--config)
  3. .env file (--env-file, default: .env in the current directory)
  4. Environment variables
  5. Command line flags

Environment variables:
  CCX_CONTEXT_LENGTH   Context shown around a difference (default: 20)
  CCX_LOG_FILE         Append JSON logs to this file (default: logging disabled)
  CCX_LOG_LEVEL        DEBUG, INFO, WARN, ERROR (default: INFO)
  CCX_RATES_FILE       YAML shipping rate table (default: built-in rates)
  CCX_WEEKEND_POLICY   all, international (default: all)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		// Unknown subcommands fail Args as UsageErrors. With no args, print help.
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return env.setup(cmd.Name())
		},
	}
	cmd.SetFlagErrorFunc(flagUsageError)

	cmd.PersistentFlags().StringVar(&env.configFile, "config", "", "Path to a YAML config file")
	cmd.PersistentFlags().StringVar(&env.envFile, "env-file", "", "Path to .env file (default: .env in current directory)")

	cmd.AddCommand(compactCmd(env))
	cmd.AddCommand(shipCmd(env))
	cmd.AddCommand(summarizeCmd(env))
	cmd.AddCommand(versionCmd(env))

	return cmd
}

func versionCmd(env *runEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(env.out, "ccx version %s\n", Version)
			return err
		},
	}
}
