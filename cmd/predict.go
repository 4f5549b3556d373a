package cmd

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	coremetrics "github.com/kilianp07/energy-predict/core/metrics"
	"github.com/kilianp07/energy-predict/core/prediction"
	"github.com/kilianp07/energy-predict/infra/logger"
)

func runPredict(cmd *cobra.Command, cfgPath, raw string) error {
	hour, err := prediction.ParseHour(raw)
	if err != nil {
		return err
	}
	cfg, logg, err := setup(cmd, cfgPath, "predictor")
	if err != nil {
		return err
	}
	model, err := prediction.NewDefaultModel()
	if err != nil {
		return fmt.Errorf("fit model: %w", err)
	}
	usage := model.Predict(hour)
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), formatUsage(usage)); err != nil {
		return fmt.Errorf("write prediction: %w", err)
	}
	logg.Debugw("prediction", map[string]any{
		"hour":      hour,
		"usage":     usage,
		"slope":     model.Slope,
		"intercept": model.Intercept,
	})

	ev := coremetrics.NewPredictionEvent(hour, usage, model.Slope, model.Intercept)
	recordPrediction(logg, cfg.Metrics, ev)
	return nil
}

// recordPrediction sends the event to the configured sinks. Failures are
// logged and never affect the command result.
func recordPrediction(logg logger.Logger, cfg coremetrics.Config, ev coremetrics.PredictionEvent) {
	sink, err := coremetrics.NewMetricsSink(cfg.Sinks)
	if err != nil {
		logg.Warnf("metrics sink: %v", err)
		return
	}
	if err := sink.RecordPrediction(ev); err != nil {
		logg.Warnf("record prediction %s: %v", ev.ID, err)
	}
	if err := coremetrics.CloseSink(sink); err != nil {
		logg.Warnf("close metrics sink: %v", err)
	}
}

// formatUsage prints the shortest decimal that round-trips to v. Exponent
// notation is only used below 1e-4 and from 1e16 on, and whole numbers keep a
// trailing ".0".
func formatUsage(v float64) string {
	abs := math.Abs(v)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
