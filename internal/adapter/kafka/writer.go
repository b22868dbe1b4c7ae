package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/couchcryptid/obs-shots2cnv/internal/config"
	"github.com/couchcryptid/obs-shots2cnv/internal/domain"
	"github.com/couchcryptid/obs-shots2cnv/internal/observability"
	kafkago "github.com/segmentio/kafka-go"
)

// Writer publishes one message per converted station to a Kafka topic.
// It implements pipeline.EventLoader.
type Writer struct {
	writer  *kafkago.Writer
	runID   string
	logger  *slog.Logger
	metrics *observability.Metrics
}

// stationMessage is the JSON payload published for a station event. CNV carries
// the exact block written to the output file.
type stationMessage struct {
	RunID        string                 `json:"run_id"`
	Station      domain.StationLocation `json:"station"`
	ArrivalCount int                    `json:"arrival_count"`
	PhaseWeight  string                 `json:"phase_weight"`
	SourcePath   string                 `json:"source_path"`
	ConvertedAt  time.Time              `json:"converted_at"`
	CNV          string                 `json:"cnv"`
}

// NewWriter creates a Kafka producer for the configured topic.
func NewWriter(cfg *config.Config, runID string, logger *slog.Logger, metrics *observability.Metrics) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.Kafka.Brokers...),
		Topic:        cfg.Kafka.Topic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, runID: runID, logger: logger, metrics: metrics}
}

// Load serializes and publishes a station event, keyed by station code so all
// runs for one station land on the same partition.
func (w *Writer) Load(ctx context.Context, e domain.CnvEvent) error {
	msg, err := serializeToMessage(w.runID, e)
	if err != nil {
		return err
	}
	if err := w.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish station %s: %w", e.Station.Code, err)
	}
	w.metrics.EventsPublished.Inc()
	w.logger.Debug("station event published", "station", e.Station.Code, "topic", w.writer.Topic)
	return nil
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals a CnvEvent into a Kafka message.
func serializeToMessage(runID string, e domain.CnvEvent) (kafkago.Message, error) {
	data, err := json.Marshal(stationMessage{
		RunID:        runID,
		Station:      e.Station,
		ArrivalCount: len(e.Arrivals),
		PhaseWeight:  e.PhaseWeight,
		SourcePath:   e.SourcePath,
		ConvertedAt:  e.ConvertedAt,
		CNV:          string(domain.AppendCNV(nil, e)),
	})
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize station event: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(e.Station.Code),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "run_id", Value: []byte(runID)},
			{Key: "arrival_count", Value: []byte(strconv.Itoa(len(e.Arrivals)))},
			{Key: "converted_at", Value: []byte(e.ConvertedAt.Format(time.RFC3339))},
		},
	}, nil
}
