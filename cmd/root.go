package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kilianp07/energy-predict/config"
	"github.com/kilianp07/energy-predict/core/prediction"
	"github.com/kilianp07/energy-predict/infra/logger"
	inframetrics "github.com/kilianp07/energy-predict/infra/metrics"
)

func newRootCmd() *cobra.Command {
	var cfgPath string
	root := &cobra.Command{
		Use:   "energy-predict <hour>",
		Short: "Predict energy usage for an hour of day",
		Long: "Fits a least squares line on the built-in hourly usage dataset and prints\n" +
			"the usage predicted for <hour> as a single line on stdout.",
		Args:          hourArg,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPredict(cmd, cfgPath, args[0])
		},
	}
	root.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (yaml or json)")
	root.AddCommand(newModelCmd(&cfgPath))
	return root
}

// Execute runs the CLI with the process arguments.
func Execute() error {
	return run(os.Args[1:], os.Stdout, os.Stderr)
}

func run(args []string, stdout, stderr io.Writer) error {
	if args == nil {
		args = []string{}
	}
	root := newRootCmd()
	root.SetArgs(numericArgs(args))
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.Execute()
}

func hourArg(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: expected exactly one hour argument, got %d", prediction.ErrInvalidArgument, len(args))
	}
	return nil
}

// numericArgs moves the first negative number behind a "--" terminator so
// that an hour such as -1 is not read as a shorthand flag while flags given
// after it are still parsed.
func numericArgs(args []string) []string {
	for i, a := range args {
		if a == "--" {
			return args
		}
		if !strings.HasPrefix(a, "-") {
			continue
		}
		if _, err := strconv.ParseFloat(a, 64); err == nil {
			out := make([]string, 0, len(args)+1)
			out = append(out, args[:i]...)
			out = append(out, args[i+1:]...)
			return append(out, "--", a)
		}
	}
	return args
}

// setup loads the configuration and builds the component logger. Sinks
// created afterwards log through the same settings.
func setup(cmd *cobra.Command, cfgPath, component string) (*config.Config, logger.Logger, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	opts := cfg.Logging.Options()
	errOut := cmd.ErrOrStderr()
	inframetrics.SetLogger(func(c string) logger.Logger {
		return logger.NewZerologLogger(c, errOut, opts)
	})
	return cfg, logger.NewZerologLogger(component, errOut, opts), nil
}
