package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/dienstpilot/dienstpilot-backend-go/internal/domain/store"
	"github.com/dienstpilot/dienstpilot-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type storeRepositoryImpl struct {
	db *database.DB
}

func NewStoreRepository(db *database.DB) store.StoreRepository {
	return &storeRepositoryImpl{db: db}
}

// Create implements store.StoreRepository.
func (r *storeRepositoryImpl) Create(ctx context.Context, newStore store.Store) (store.Store, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO stores (id, name, state, address)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, state, address, created_at, updated_at, deleted_at
	`

	var created store.Store
	err := q.QueryRow(ctx, query, newStore.ID, newStore.Name, newStore.State, newStore.Address).Scan(
		&created.ID, &created.Name, &created.State, &created.Address,
		&created.CreatedAt, &created.UpdatedAt, &created.DeletedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return store.Store{}, store.ErrStoreNameExists
		}
		return store.Store{}, fmt.Errorf("failed to create store: %w", err)
	}

	return created, nil
}

// GetByID implements store.StoreRepository.
func (r *storeRepositoryImpl) GetByID(ctx context.Context, id string) (store.Store, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, state, address, created_at, updated_at, deleted_at
		FROM stores
		WHERE id = $1 AND deleted_at IS NULL
	`

	var s store.Store
	err := q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.State, &s.Address, &s.CreatedAt, &s.UpdatedAt, &s.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return store.Store{}, store.ErrStoreNotFound
		}
		return store.Store{}, err
	}

	return s, nil
}

// List implements store.StoreRepository.
func (r *storeRepositoryImpl) List(ctx context.Context) ([]store.Store, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, state, address, created_at, updated_at, deleted_at
		FROM stores
		WHERE deleted_at IS NULL
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stores []store.Store
	for rows.Next() {
		var s store.Store
		if err := rows.Scan(&s.ID, &s.Name, &s.State, &s.Address, &s.CreatedAt, &s.UpdatedAt, &s.DeletedAt); err != nil {
			return nil, err
		}
		stores = append(stores, s)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stores, nil
}

// Update implements store.StoreRepository.
func (r *storeRepositoryImpl) Update(ctx context.Context, req store.UpdateStoreRequest) (store.Store, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE stores
		SET name = COALESCE($2, name),
			state = COALESCE($3, state),
			address = COALESCE($4, address),
			updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING id, name, state, address, created_at, updated_at, deleted_at
	`

	var updated store.Store
	err := q.QueryRow(ctx, query, req.ID, req.Name, req.State, req.Address).Scan(
		&updated.ID, &updated.Name, &updated.State, &updated.Address,
		&updated.CreatedAt, &updated.UpdatedAt, &updated.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return store.Store{}, store.ErrStoreNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return store.Store{}, store.ErrStoreNameExists
		}
		return store.Store{}, fmt.Errorf("failed to update store %s: %w", req.ID, err)
	}

	return updated, nil
}

// SoftDelete implements store.StoreRepository.
func (r *storeRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE stores
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING id
	`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return store.ErrStoreNotFound
		}
		return err
	}

	return nil
}
