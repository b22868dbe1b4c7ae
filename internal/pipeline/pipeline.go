package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/obs-shots2cnv/internal/domain"
	"github.com/couchcryptid/obs-shots2cnv/internal/observability"
)

// ShotSource enumerates per-station shot files and reads their arrivals.
type ShotSource interface {
	List(ctx context.Context) ([]domain.ShotFile, error)
	Read(ctx context.Context, f domain.ShotFile) ([]domain.ShotArrival, error)
}

// EventLoader writes a station event to a destination.
type EventLoader interface {
	Load(ctx context.Context, e domain.CnvEvent) error
}

// StationSummary describes one station written to the output.
type StationSummary struct {
	Code     string
	File     string
	Arrivals int
	Lines    int
}

// Summary reports what a run converted.
type Summary struct {
	Stations []StationSummary
	Skipped  []string // shot files with no arrivals
	Arrivals int
	Duration time.Duration
}

// Pipeline converts every shot file from a source into station events, one
// file at a time and in source order.
type Pipeline struct {
	source      ShotSource
	transformer *StationTransformer
	loader      EventLoader
	logger      *slog.Logger
	metrics     *observability.Metrics
}

// New creates a Pipeline with the given stages and observability.
func New(s ShotSource, t *StationTransformer, l EventLoader, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{
		source:      s,
		transformer: t,
		loader:      l,
		logger:      logger,
		metrics:     metrics,
	}
}

// Run converts the whole source. The first error aborts the run; stations
// already handed to the loader stay written. Cancellation is checked between files.
func (p *Pipeline) Run(ctx context.Context) (Summary, error) {
	start := domain.Now()
	var summary Summary

	err := p.run(ctx, &summary)

	summary.Duration = domain.Since(start)
	p.metrics.RunDuration.Observe(summary.Duration.Seconds())
	if err != nil {
		p.metrics.LastRunSuccess.Set(0)
		p.metrics.ConversionErrors.WithLabelValues(errorKind(err)).Inc()
		return summary, err
	}
	p.metrics.LastRunSuccess.Set(1)
	p.logger.Info("conversion complete",
		"stations", len(summary.Stations),
		"skipped", len(summary.Skipped),
		"arrivals", summary.Arrivals,
		"duration", summary.Duration,
	)
	return summary, nil
}

func (p *Pipeline) run(ctx context.Context, summary *Summary) error {
	files, err := p.source.List(ctx)
	if err != nil {
		return err
	}
	p.metrics.FilesScanned.Add(float64(len(files)))
	p.logger.Info("conversion started", "shot_files", len(files))

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := p.convertFile(ctx, file, summary); err != nil {
			return fmt.Errorf("convert %s: %w", file.Name, err)
		}
	}
	return nil
}

// convertFile resolves, reads and loads one shot file. Arrivals are parsed in
// full before anything is written, so a malformed line never leaves a partial
// station block behind.
func (p *Pipeline) convertFile(ctx context.Context, file domain.ShotFile, summary *Summary) error {
	p.logger.Info("converting shot file", "path", file.Path, "station", file.StationCode)

	station, err := p.transformer.Resolve(file)
	if err != nil {
		return err
	}

	arrivals, err := p.source.Read(ctx, file)
	if err != nil {
		return err
	}
	if len(arrivals) == 0 {
		p.logger.Warn("shot file has no arrivals, skipping station", "path", file.Path, "station", station.Code)
		p.metrics.StationsSkipped.Inc()
		summary.Skipped = append(summary.Skipped, file.Name)
		return nil
	}

	event := p.transformer.Transform(station, file, arrivals)
	if err := p.loader.Load(ctx, event); err != nil {
		return err
	}

	p.metrics.StationsConverted.Inc()
	p.metrics.ArrivalsWritten.Add(float64(len(arrivals)))
	summary.Arrivals += len(arrivals)
	summary.Stations = append(summary.Stations, StationSummary{
		Code:     station.Code,
		File:     file.Name,
		Arrivals: len(arrivals),
		Lines:    domain.ArrivalLineCount(len(arrivals)),
	})
	p.logger.Debug("station written", "station", station.Code, "arrivals", len(arrivals))
	return nil
}

// errorKind labels a fatal error for the conversion_errors_total metric.
func errorKind(err error) string {
	switch {
	case errors.Is(err, domain.ErrStationNotFound):
		return "station_not_found"
	case errors.Is(err, domain.ErrMalformedArrival):
		return "arrival"
	case errors.Is(err, domain.ErrMalformedStationTable):
		return "station_table"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "io"
	}
}
