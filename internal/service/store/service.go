package store

import (
	"context"

	"github.com/dienstpilot/dienstpilot-backend-go/internal/domain/store"
	"github.com/dienstpilot/dienstpilot-backend-go/internal/fixtures"
	"github.com/dienstpilot/dienstpilot-backend-go/internal/pkg/database"
	"github.com/dienstpilot/dienstpilot-backend-go/internal/pkg/holiday"
	"github.com/dienstpilot/dienstpilot-backend-go/internal/repository/postgresql"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dienstpilot/dienstpilot-backend-go/internal/domain/shift"
)

type storeServiceImpl struct {
	db             *database.DB
	storeRepo      store.StoreRepository
	definitionRepo shift.ShiftDefinitionRepository
}

func NewStoreService(db *database.DB, storeRepo store.StoreRepository, definitionRepo shift.ShiftDefinitionRepository) store.StoreService {
	return &storeServiceImpl{
		db:             db,
		storeRepo:      storeRepo,
		definitionRepo: definitionRepo,
	}
}

// Create implements store.StoreService. A new store is seeded with the
// default shift definitions so planning can start right away.
func (s *storeServiceImpl) Create(ctx context.Context, req store.CreateStoreRequest) (store.StoreResponse, error) {
	if err := req.Validate(); err != nil {
		return store.StoreResponse{}, err
	}

	newStore := store.Store{
		ID:      uuid.NewString(),
		Name:    req.Name,
		State:   holiday.GermanState(req.State),
		Address: req.Address,
	}

	var created store.Store
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		created, err = s.storeRepo.Create(txCtx, newStore)
		if err != nil {
			return err
		}

		for _, def := range fixtures.DefaultShiftDefinitions(created.ID) {
			if _, err := s.definitionRepo.Create(txCtx, def); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return store.StoreResponse{}, err
	}

	return store.ToResponse(created), nil
}

// GetByID implements store.StoreService.
func (s *storeServiceImpl) GetByID(ctx context.Context, id string) (store.StoreResponse, error) {
	found, err := s.storeRepo.GetByID(ctx, id)
	if err != nil {
		return store.StoreResponse{}, err
	}
	return store.ToResponse(found), nil
}

// List implements store.StoreService.
func (s *storeServiceImpl) List(ctx context.Context) ([]store.StoreResponse, error) {
	stores, err := s.storeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]store.StoreResponse, 0, len(stores))
	for _, st := range stores {
		responses = append(responses, store.ToResponse(st))
	}
	return responses, nil
}

// Update implements store.StoreService.
func (s *storeServiceImpl) Update(ctx context.Context, req store.UpdateStoreRequest) (store.StoreResponse, error) {
	if err := req.Validate(); err != nil {
		return store.StoreResponse{}, err
	}

	updated, err := s.storeRepo.Update(ctx, req)
	if err != nil {
		return store.StoreResponse{}, err
	}
	return store.ToResponse(updated), nil
}

// Delete implements store.StoreService.
func (s *storeServiceImpl) Delete(ctx context.Context, id string) error {
	return s.storeRepo.SoftDelete(ctx, id)
}
