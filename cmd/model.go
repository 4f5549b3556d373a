package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kilianp07/energy-predict/core/prediction"
)

func newModelCmd(cfgPath *string) *cobra.Command {
	var output string
	c := &cobra.Command{
		Use:   "model",
		Short: "Print the fitted line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printModel(cmd, *cfgPath, output)
		},
	}
	c.Flags().StringVarP(&output, "output", "o", "text", "output format: text or json")
	return c
}

func printModel(cmd *cobra.Command, cfgPath, output string) error {
	if output != "text" && output != "json" {
		return fmt.Errorf("%w: unknown output format %q", prediction.ErrInvalidArgument, output)
	}
	_, logg, err := setup(cmd, cfgPath, "model")
	if err != nil {
		return err
	}
	ts := prediction.DefaultTrainingSet()
	model, err := prediction.Fit(ts)
	if err != nil {
		return fmt.Errorf("fit model: %w", err)
	}
	logg.Debugf("fitted %d points", len(ts))

	out := cmd.OutOrStdout()
	if output == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(model)
	}
	w := tabwriter.NewWriter(out, 0, 0, 1, ' ', 0)
	fmt.Fprintf(w, "slope:\t%s\n", formatUsage(model.Slope))
	fmt.Fprintf(w, "intercept:\t%s\n", formatUsage(model.Intercept))
	fmt.Fprintf(w, "r2:\t%s\n", formatUsage(model.R2))
	return w.Flush()
}
