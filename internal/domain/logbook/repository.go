package logbook

import (
	"context"
	"time"
)

type EntryRepository interface {
	Create(ctx context.Context, e Entry) (Entry, error)
	GetByID(ctx context.Context, id, storeID string) (Entry, error)
	ListByMonth(ctx context.Context, storeID string, month time.Time) ([]Entry, error)
	Update(ctx context.Context, req UpdateEntryRequest) (Entry, error)
	Delete(ctx context.Context, id, storeID string) error
}
