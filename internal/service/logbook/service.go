package logbook

import (
	"context"
	"time"

	"github.com/dienstpilot/dienstpilot-backend-go/internal/domain/logbook"
	"github.com/google/uuid"
)

type logbookServiceImpl struct {
	entryRepo logbook.EntryRepository
}

func NewLogbookService(entryRepo logbook.EntryRepository) logbook.LogbookService {
	return &logbookServiceImpl{entryRepo: entryRepo}
}

// Create implements logbook.LogbookService.
func (s *logbookServiceImpl) Create(ctx context.Context, req logbook.CreateEntryRequest) (logbook.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return logbook.EntryResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	created, err := s.entryRepo.Create(ctx, logbook.Entry{
		ID:      uuid.NewString(),
		StoreID: req.StoreID,
		Date:    date,
		Author:  req.Author,
		Text:    req.Text,
	})
	if err != nil {
		return logbook.EntryResponse{}, err
	}

	return logbook.ToResponse(created), nil
}

// GetByID implements logbook.LogbookService.
func (s *logbookServiceImpl) GetByID(ctx context.Context, id, storeID string) (logbook.EntryResponse, error) {
	found, err := s.entryRepo.GetByID(ctx, id, storeID)
	if err != nil {
		return logbook.EntryResponse{}, err
	}
	return logbook.ToResponse(found), nil
}

// ListByMonth implements logbook.LogbookService.
func (s *logbookServiceImpl) ListByMonth(ctx context.Context, storeID string, month time.Time) ([]logbook.EntryResponse, error) {
	entries, err := s.entryRepo.ListByMonth(ctx, storeID, month)
	if err != nil {
		return nil, err
	}

	responses := make([]logbook.EntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, logbook.ToResponse(e))
	}
	return responses, nil
}

// Update implements logbook.LogbookService.
func (s *logbookServiceImpl) Update(ctx context.Context, req logbook.UpdateEntryRequest) (logbook.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return logbook.EntryResponse{}, err
	}

	updated, err := s.entryRepo.Update(ctx, req)
	if err != nil {
		return logbook.EntryResponse{}, err
	}
	return logbook.ToResponse(updated), nil
}

// Delete implements logbook.LogbookService.
func (s *logbookServiceImpl) Delete(ctx context.Context, id, storeID string) error {
	return s.entryRepo.Delete(ctx, id, storeID)
}
