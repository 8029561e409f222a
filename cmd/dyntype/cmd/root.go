// Package cmd implements the dyntype CLI commands.
//
// The root command loads dyntype.yaml, installs the structured error log and
// dispatches to the picker, stepper and locale subcommands.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-drift/dyntype/pkg/config"
	"github.com/go-drift/dyntype/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// rootOptions are the flags shared by every command.
type rootOptions struct {
	configPath string
	verbose    bool
	logFile    string

	logCloser io.Closer
}

// New returns the root command.
func New() *cobra.Command {
	o := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "dyntype",
		Short: "Dynamic-type aware date picker and stepper controls",
		Long: `dyntype drives wheel date pickers and steppers whose layout follows the
preferred text size, and shows the locale data they are built from.

Settings are read from dyntype.yaml in the current directory unless --config
names another file; a missing file means defaults.`,
		Version:       fmt.Sprintf("%s (built %s)", Version, BuildTime),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.installLogger(cmd.ErrOrStderr())
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if o.logCloser != nil {
				return o.logCloser.Close()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&o.configPath, "config", "c", config.DefaultPath, "configuration file")
	flags.BoolVar(&o.verbose, "verbose", false, "log range corrections and panic stacks")
	flags.StringVar(&o.logFile, "log-file", "", "write logs to this file instead of stderr")

	addPicker(cmd, o)
	addStepper(cmd, o)
	addLocale(cmd, o)
	return cmd
}

func (o *rootOptions) installLogger(stderr io.Writer) error {
	out := stderr
	if o.logFile != "" {
		f, err := os.OpenFile(o.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		o.logCloser = f
		out = f
	}
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
	errors.SetHandler(&errors.LogHandler{Logger: logger, Verbose: o.verbose})
	return nil
}

func (o *rootOptions) resolve() (*config.Resolved, error) {
	return config.Resolve(o.configPath)
}
