// Package store defines the ports for record storage. Storage is a
// collaborator of the parsing and analytics engines, never a dependency:
// records flow in and out as plain values.
package store

import (
	"context"

	"jizhang/internal/core"
)

// StoredRecord is an expense record with the identifier assigned on append.
type StoredRecord struct {
	ID string `json:"id"`
	core.ExpenseRecord
}

type (
	// RecordWriter appends a single record and returns it with its ID.
	RecordWriter interface {
		Append(ctx context.Context, r core.ExpenseRecord) (StoredRecord, error)
	}

	// RecordLister returns every stored record in insertion order.
	RecordLister interface {
		List(ctx context.Context) ([]StoredRecord, error)
	}
)
