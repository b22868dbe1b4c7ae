package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/couchcryptid/obs-shots2cnv/internal/adapter/cnvfile"
	"github.com/couchcryptid/obs-shots2cnv/internal/adapter/kafka"
	"github.com/couchcryptid/obs-shots2cnv/internal/adapter/shotdir"
	"github.com/couchcryptid/obs-shots2cnv/internal/config"
	"github.com/couchcryptid/obs-shots2cnv/internal/domain"
	"github.com/couchcryptid/obs-shots2cnv/internal/observability"
	"github.com/couchcryptid/obs-shots2cnv/internal/pipeline"
)

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var metricsFile string
	var summaryMode string

	cmd := &cobra.Command{
		Use:   "convert [directory] [out_file] [station_list] [pha_wgt]",
		Short: "Convert a directory of <station>.time files into one CNV file",
		Long: "Convert every <station>.time file in directory into a VELEST CNV pseudo-event.\n" +
			"Arguments left out are taken from the config file or environment.",
		Args: cobra.MaximumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.loadConfig()
			if err != nil {
				return err
			}
			applyConvertArgs(cfg, args)
			if cmd.Flags().Changed("metrics-file") {
				cfg.MetricsFile = metricsFile
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			summary, err := runConvert(cmd.Context(), cfg, ctx)
			if err != nil {
				return err
			}
			if shouldRenderSummary(summaryMode, ctx.stdout) {
				fmt.Fprintln(ctx.stdout, renderSummary(summary))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&metricsFile, "metrics-file", "", "Write run metrics in Prometheus text format to this path")
	cmd.Flags().StringVar(&summaryMode, "summary", "auto", "Print a conversion summary table: auto, always, never")

	return cmd
}

// applyConvertArgs maps positional arguments onto the configuration in
// invocation order: directory, out_file, station_list, pha_wgt.
func applyConvertArgs(cfg *config.Config, args []string) {
	targets := []*string{&cfg.Directory, &cfg.OutFile, &cfg.StationList, &cfg.PhaseWeight}
	for i, arg := range args {
		*targets[i] = arg
	}
}

func runConvert(ctx context.Context, cfg *config.Config, cc *commandContext) (pipeline.Summary, error) {
	runID := uuid.NewString()
	logger := observability.NewLogger(cfg, cc.stderr).With("run_id", runID)

	registry := prometheus.NewRegistry()
	metrics := observability.NewMetrics(registry)
	defer writeMetrics(cfg.MetricsFile, registry, logger)

	// The output is truncated before anything is read so a failed run never
	// leaves the previous run's CNV behind.
	output, err := cnvfile.Open(cfg.OutFile, logger)
	if err != nil {
		metrics.ConversionErrors.WithLabelValues("io").Inc()
		metrics.LastRunSuccess.Set(0)
		return pipeline.Summary{}, err
	}

	table, err := domain.LoadStationTable(cfg.StationList)
	if err != nil {
		metrics.ConversionErrors.WithLabelValues("station_table").Inc()
		metrics.LastRunSuccess.Set(0)
		if closeErr := output.Close(); closeErr != nil {
			logger.Error("cnv output close error", "error", closeErr)
		}
		return pipeline.Summary{}, err
	}
	logger.Info("station table loaded", "path", cfg.StationList, "stations", len(table))

	var loader pipeline.EventLoader = output
	if cfg.Kafka.Enabled {
		publisher := kafka.NewWriter(cfg, runID, logger, metrics)
		defer func() {
			if err := publisher.Close(); err != nil {
				logger.Error("kafka writer close error", "error", err)
			}
		}()
		loader = pipeline.NewMultiLoader(output, publisher)
		logger.Info("kafka publishing enabled", "topic", cfg.Kafka.Topic, "brokers", cfg.Kafka.Brokers)
	}

	p := pipeline.New(
		shotdir.NewReader(cfg.Directory, logger),
		pipeline.NewTransformer(table, cfg.PhaseWeight),
		loader,
		logger,
		metrics,
	)

	summary, runErr := p.Run(ctx)

	closeErr := output.Close()
	metrics.BytesWritten.Add(float64(output.Written()))

	if runErr != nil {
		return summary, runErr
	}
	if closeErr != nil {
		metrics.LastRunSuccess.Set(0)
		return summary, closeErr
	}
	logger.Info("cnv written", "path", output.Path(), "bytes", output.Written())
	return summary, nil
}

func writeMetrics(path string, registry *prometheus.Registry, logger *slog.Logger) {
	if err := observability.WriteTextfile(path, registry); err != nil {
		logger.Warn("failed to write metrics file", "path", path, "error", err)
	}
}
