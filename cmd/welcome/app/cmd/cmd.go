package cmd

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/3-lines-studio/welcome/internal/adapters/env"
)

type rootOptions struct {
	verbosity string
	envFile   string

	// cfg is loaded once in PersistentPreRunE, after the dotenv file.
	cfg env.Config
}

func NewWelcomeCommand(out, errOut io.Writer) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "welcome",
		Short:         "Serve or export the welcome page",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := env.LoadDotenv(opts.envFile); err != nil {
			return err
		}

		cfg, err := env.Load(nil)
		if err != nil {
			return err
		}
		overrideFromFlag(cmd.Flags(), "verbosity", &cfg.LogLevel)
		opts.cfg = cfg

		return SetUpLogs(errOut, cfg.LogLevel)
	}

	rootCmd.PersistentFlags().StringVarP(&opts.verbosity, "verbosity", "v", env.DefaultLogLevel, "Log level (debug, info, warn, error, fatal, panic); overrides $LOG_LEVEL")
	rootCmd.PersistentFlags().StringVar(&opts.envFile, "env-file", env.DefaultDotenv, "Dotenv file loaded before reading the environment; missing files are ignored")

	rootCmd.AddCommand(NewCmdServe(opts))
	rootCmd.AddCommand(NewCmdExport(opts, out))
	rootCmd.AddCommand(NewCmdHealthcheck(opts))

	return rootCmd
}

// overrideFromFlag replaces dst with the flag value when the flag was given
// on the command line.
func overrideFromFlag(flags *pflag.FlagSet, name string, dst *string) {
	f := flags.Lookup(name)
	if f == nil || !f.Changed {
		return
	}
	*dst = f.Value.String()
}

func SetUpLogs(out io.Writer, level string) error {
	logrus.SetOutput(out)
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parsing log level: %w", err)
	}
	logrus.SetLevel(lvl)
	return nil
}
