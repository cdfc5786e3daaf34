// Package fallback is the single policy point deciding whether a read serves
// stored data or the seeded demo dataset. The repository reports data and
// error as-is; the policy here is that public reads degrade to seed data on a
// storage error or an empty result instead of failing the request.
package fallback

import (
	"errors"
	"log/slog"

	"dentalSummit/internal/lib/logger/sl"
	"dentalSummit/internal/storage"
)

const (
	SourceDB   = "db"
	SourceMock = "mock"
)

// List returns the stored items with source "db", or the seed set with source
// "mock" when the store errored or returned nothing. ErrNotFound is an empty
// result, not an outage, and is not logged.
func List[T any](log *slog.Logger, items []T, err error, seed func() []T) ([]T, string) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return seed(), SourceMock
	case err != nil:
		log.Warn("store unavailable, serving seed data", sl.Err(err))
		return seed(), SourceMock
	case len(items) == 0:
		return seed(), SourceMock
	}

	return items, SourceDB
}

// One is List for detail lookups.
func One[T any](log *slog.Logger, item *T, err error, seed func() *T) (*T, string) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return seed(), SourceMock
	case err != nil:
		log.Warn("store unavailable, serving seed data", sl.Err(err))
		return seed(), SourceMock
	case item == nil:
		return seed(), SourceMock
	}

	return item, SourceDB
}
