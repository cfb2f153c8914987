// Package sink mirrors traceability rows onto a Kafka topic so downstream
// consumers (reporting, CRM sync) see issuance events without polling the
// primary log.
package sink

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/twmb/franz-go/pkg/kgo"

	"vincula/internal/trace"
)

// MirrorLog wraps a primary trace.Log and republishes every appended row as a
// JSON event. The mirror is best-effort: a produce failure is logged but does
// not fail the append, because the primary log is the source of truth.
type MirrorLog struct {
	primary trace.Log
	client  *kgo.Client
	topic   string
	logger  *slog.Logger
}

// NewMirrorLog connects to the given brokers and wraps primary.
func NewMirrorLog(primary trace.Log, brokers []string, topic string, logger *slog.Logger) (*MirrorLog, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka client: %w", err)
	}
	return &MirrorLog{primary: primary, client: client, topic: topic, logger: logger}, nil
}

func (m *MirrorLog) Append(ctx context.Context, rec trace.Record) error {
	if err := m.primary.Append(ctx, rec); err != nil {
		return err
	}

	payload, err := json.Marshal(rec)
	if err != nil {
		m.logger.WarnContext(ctx, "trace mirror marshal failed", "error", err)
		return nil
	}
	record := &kgo.Record{
		Topic: m.topic,
		Key:   []byte(rec.DocumentID),
		Value: payload,
	}
	if err := m.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		m.logger.WarnContext(ctx, "trace mirror produce failed",
			"document_id", rec.DocumentID,
			"error", err,
		)
	}
	return nil
}

func (m *MirrorLog) List(ctx context.Context) ([]trace.Record, error) {
	return m.primary.List(ctx)
}

// Close flushes pending produce requests and releases the client.
func (m *MirrorLog) Close() {
	m.client.Close()
}
