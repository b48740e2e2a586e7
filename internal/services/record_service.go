// Package services orchestrates the parsing and analytics engines against
// the record store and the message broker.
package services

import (
	"context"
	"fmt"
	"log/slog"

	"jizhang/internal/analytics"
	"jizhang/internal/core"
	"jizhang/internal/parser"
	"jizhang/internal/store"
)

// RecordStore combines the storage ports the service needs.
type RecordStore interface {
	store.RecordWriter
	store.RecordLister
}

// Publisher notifies downstream consumers of newly parsed records.
type Publisher interface {
	PublishRecords(ctx context.Context, source string, records []core.ExpenseRecord) error
}

// RecordService parses raw text into stored records and summarizes them.
type RecordService struct {
	store     RecordStore
	publisher Publisher // nil when the broker is not configured
}

func NewRecordService(st RecordStore, publisher Publisher) *RecordService {
	return &RecordService{
		store:     st,
		publisher: publisher,
	}
}

// CreateFromText parses text and appends every resulting record to the
// store. Text without recognizable amounts yields no records and no error.
// A publish failure is logged and swallowed: the records are already stored.
func (s *RecordService) CreateFromText(ctx context.Context, text string) ([]store.StoredRecord, error) {
	records := parser.Parse(text)
	if len(records) == 0 {
		slog.InfoContext(ctx, "No expenses recognized in input")
		return nil, nil
	}

	stored := make([]store.StoredRecord, 0, len(records))
	for _, r := range records {
		rec, err := s.store.Append(ctx, r)
		if err != nil {
			return nil, fmt.Errorf("append record: %w", err)
		}
		stored = append(stored, rec)
	}

	if s.publisher != nil {
		if err := s.publisher.PublishRecords(ctx, "http", records); err != nil {
			slog.ErrorContext(ctx, "Failed to publish record batch",
				"error", err, "count", len(records))
			// Don't fail the request - records are stored
		}
	}

	slog.InfoContext(ctx, "Created expense records", "count", len(stored))
	return stored, nil
}

// Overview analyzes everything currently in the store over the period.
func (s *RecordService) Overview(ctx context.Context, period core.Period) (core.AnalysisResult, error) {
	stored, err := s.store.List(ctx)
	if err != nil {
		return core.AnalysisResult{}, fmt.Errorf("list records: %w", err)
	}

	records := make([]core.ExpenseRecord, len(stored))
	for i, rec := range stored {
		records[i] = rec.ExpenseRecord
	}
	return analytics.Analyze(records, period), nil
}
