// Package worker consumes parse requests from the broker, runs them through
// the parsing engine and publishes the resulting record batches.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"jizhang/internal/amqp"
	"jizhang/internal/core"
	"jizhang/internal/parser"
)

// Publisher forwards record batches to downstream consumers.
type Publisher interface {
	PublishRecords(ctx context.Context, source string, records []core.ExpenseRecord) error
}

// ParseWorker turns queued text inputs into record batches.
type ParseWorker struct {
	publisher Publisher
	processed atomic.Int64
}

func NewParseWorker(publisher Publisher) *ParseWorker {
	return &ParseWorker{publisher: publisher}
}

// HandleParseRequest parses one request. Inputs without recognizable amounts
// are dropped silently; a publish failure is returned so the delivery is
// requeued.
func (w *ParseWorker) HandleParseRequest(ctx context.Context, msg *amqp.ParseRequestMessage) error {
	records := parser.Parse(msg.Text)
	if len(records) == 0 {
		slog.InfoContext(ctx, "No expenses recognized in parse request", "source", msg.Source)
		w.processed.Add(1)
		return nil
	}

	if err := w.publisher.PublishRecords(ctx, msg.Source, records); err != nil {
		return fmt.Errorf("publish parsed records: %w", err)
	}

	slog.InfoContext(ctx, "Parsed expense records",
		"source", msg.Source,
		"count", len(records))
	w.processed.Add(1)
	return nil
}

// Processed reports the number of requests handled so far.
func (w *ParseWorker) Processed() int64 {
	return w.processed.Load()
}
