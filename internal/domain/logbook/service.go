package logbook

import (
	"context"
	"time"
)

type LogbookService interface {
	Create(ctx context.Context, req CreateEntryRequest) (EntryResponse, error)
	GetByID(ctx context.Context, id, storeID string) (EntryResponse, error)
	ListByMonth(ctx context.Context, storeID string, month time.Time) ([]EntryResponse, error)
	Update(ctx context.Context, req UpdateEntryRequest) (EntryResponse, error)
	Delete(ctx context.Context, id, storeID string) error
}
