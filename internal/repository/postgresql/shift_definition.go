package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/dienstpilot/dienstpilot-backend-go/internal/domain/shift"
	"github.com/dienstpilot/dienstpilot-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type shiftDefinitionRepositoryImpl struct {
	db *database.DB
}

func NewShiftDefinitionRepository(db *database.DB) shift.ShiftDefinitionRepository {
	return &shiftDefinitionRepositoryImpl{db: db}
}

// Create implements shift.ShiftDefinitionRepository.
func (r *shiftDefinitionRepositoryImpl) Create(ctx context.Context, def shift.ShiftDefinition) (shift.ShiftDefinition, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shift_definitions (
			id, store_id, title, start_time, end_time, work_hours, exclude_from_calculations, sort_order
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, store_id, title, start_time, end_time, work_hours, exclude_from_calculations, sort_order,
			created_at, updated_at, deleted_at
	`

	var created shift.ShiftDefinition
	err := q.QueryRow(ctx, query,
		def.ID, def.StoreID, def.Title, def.StartTime, def.EndTime,
		def.WorkHours, def.ExcludeFromCalculations, def.SortOrder,
	).Scan(
		&created.ID, &created.StoreID, &created.Title, &created.StartTime, &created.EndTime,
		&created.WorkHours, &created.ExcludeFromCalculations, &created.SortOrder,
		&created.CreatedAt, &created.UpdatedAt, &created.DeletedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return shift.ShiftDefinition{}, shift.ErrShiftTitleExists
		}
		return shift.ShiftDefinition{}, fmt.Errorf("failed to create shift definition: %w", err)
	}

	return created, nil
}

// GetByID implements shift.ShiftDefinitionRepository.
func (r *shiftDefinitionRepositoryImpl) GetByID(ctx context.Context, id, storeID string) (shift.ShiftDefinition, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, store_id, title, start_time, end_time, work_hours, exclude_from_calculations, sort_order,
			created_at, updated_at, deleted_at
		FROM shift_definitions
		WHERE id = $1 AND store_id = $2 AND deleted_at IS NULL
	`

	var def shift.ShiftDefinition
	err := q.QueryRow(ctx, query, id, storeID).Scan(
		&def.ID, &def.StoreID, &def.Title, &def.StartTime, &def.EndTime,
		&def.WorkHours, &def.ExcludeFromCalculations, &def.SortOrder,
		&def.CreatedAt, &def.UpdatedAt, &def.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.ShiftDefinition{}, shift.ErrShiftDefinitionNotFound
		}
		return shift.ShiftDefinition{}, err
	}

	return def, nil
}

// GetByStoreID implements shift.ShiftDefinitionRepository.
func (r *shiftDefinitionRepositoryImpl) GetByStoreID(ctx context.Context, storeID string) ([]shift.ShiftDefinition, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, store_id, title, start_time, end_time, work_hours, exclude_from_calculations, sort_order,
			created_at, updated_at, deleted_at
		FROM shift_definitions
		WHERE store_id = $1 AND deleted_at IS NULL
		ORDER BY sort_order, title
	`

	rows, err := q.Query(ctx, query, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var defs []shift.ShiftDefinition
	for rows.Next() {
		var def shift.ShiftDefinition
		err := rows.Scan(
			&def.ID, &def.StoreID, &def.Title, &def.StartTime, &def.EndTime,
			&def.WorkHours, &def.ExcludeFromCalculations, &def.SortOrder,
			&def.CreatedAt, &def.UpdatedAt, &def.DeletedAt,
		)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return defs, nil
}

// Update implements shift.ShiftDefinitionRepository.
func (r *shiftDefinitionRepositoryImpl) Update(ctx context.Context, req shift.UpdateShiftDefinitionRequest) (shift.ShiftDefinition, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shift_definitions
		SET title = COALESCE($3, title),
			start_time = COALESCE($4, start_time),
			end_time = COALESCE($5, end_time),
			work_hours = COALESCE($6, work_hours),
			exclude_from_calculations = COALESCE($7, exclude_from_calculations),
			sort_order = COALESCE($8, sort_order),
			updated_at = NOW()
		WHERE id = $1 AND store_id = $2 AND deleted_at IS NULL
		RETURNING id, store_id, title, start_time, end_time, work_hours, exclude_from_calculations, sort_order,
			created_at, updated_at, deleted_at
	`

	var updated shift.ShiftDefinition
	err := q.QueryRow(ctx, query,
		req.ID, req.StoreID, req.Title, req.StartTime, req.EndTime,
		req.WorkHours, req.ExcludeFromCalculations, req.SortOrder,
	).Scan(
		&updated.ID, &updated.StoreID, &updated.Title, &updated.StartTime, &updated.EndTime,
		&updated.WorkHours, &updated.ExcludeFromCalculations, &updated.SortOrder,
		&updated.CreatedAt, &updated.UpdatedAt, &updated.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.ShiftDefinition{}, shift.ErrShiftDefinitionNotFound
		}
		return shift.ShiftDefinition{}, fmt.Errorf("failed to update shift definition %s: %w", req.ID, err)
	}

	return updated, nil
}

// SoftDelete implements shift.ShiftDefinitionRepository.
func (r *shiftDefinitionRepositoryImpl) SoftDelete(ctx context.Context, id, storeID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shift_definitions
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND store_id = $2 AND deleted_at IS NULL
		RETURNING id
	`

	var deletedID string
	err := q.QueryRow(ctx, query, id, storeID).Scan(&deletedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.ErrShiftDefinitionNotFound
		}
		return err
	}

	return nil
}
