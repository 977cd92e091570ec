package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dienstpilot/dienstpilot-backend-go/internal/domain/shift"
	"github.com/dienstpilot/dienstpilot-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type shiftAssignmentRepositoryImpl struct {
	db *database.DB
}

func NewShiftAssignmentRepository(db *database.DB) shift.ShiftAssignmentRepository {
	return &shiftAssignmentRepositoryImpl{db: db}
}

// Create implements shift.ShiftAssignmentRepository.
func (r *shiftAssignmentRepositoryImpl) Create(ctx context.Context, a shift.ShiftAssignment) (shift.ShiftAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shift_assignments (id, store_id, employee_id, shift_id, date, work_hours)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, store_id, employee_id, shift_id, date, work_hours, created_at, updated_at
	`

	var created shift.ShiftAssignment
	err := q.QueryRow(ctx, query,
		a.ID, a.StoreID, a.EmployeeID, a.ShiftID, a.Date, a.WorkHours,
	).Scan(
		&created.ID, &created.StoreID, &created.EmployeeID, &created.ShiftID,
		&created.Date, &created.WorkHours, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return shift.ShiftAssignment{}, fmt.Errorf("failed to create shift assignment: %w", err)
	}

	return created, nil
}

// GetByID implements shift.ShiftAssignmentRepository.
func (r *shiftAssignmentRepositoryImpl) GetByID(ctx context.Context, id, storeID string) (shift.ShiftAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, store_id, employee_id, shift_id, date, work_hours, created_at, updated_at
		FROM shift_assignments
		WHERE id = $1 AND store_id = $2
	`

	var a shift.ShiftAssignment
	err := q.QueryRow(ctx, query, id, storeID).Scan(
		&a.ID, &a.StoreID, &a.EmployeeID, &a.ShiftID,
		&a.Date, &a.WorkHours, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.ShiftAssignment{}, shift.ErrAssignmentNotFound
		}
		return shift.ShiftAssignment{}, err
	}

	return a, nil
}

// ListByMonth implements shift.ShiftAssignmentRepository.
func (r *shiftAssignmentRepositoryImpl) ListByMonth(ctx context.Context, storeID string, month time.Time) ([]shift.ShiftAssignment, error) {
	q := GetQuerier(ctx, r.db)

	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	next := first.AddDate(0, 1, 0)

	query := `
		SELECT id, store_id, employee_id, shift_id, date, work_hours, created_at, updated_at
		FROM shift_assignments
		WHERE store_id = $1 AND date >= $2 AND date < $3
		ORDER BY date, employee_id
	`

	rows, err := q.Query(ctx, query, storeID, first, next)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []shift.ShiftAssignment
	for rows.Next() {
		var a shift.ShiftAssignment
		err := rows.Scan(
			&a.ID, &a.StoreID, &a.EmployeeID, &a.ShiftID,
			&a.Date, &a.WorkHours, &a.CreatedAt, &a.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}

// Update implements shift.ShiftAssignmentRepository.
func (r *shiftAssignmentRepositoryImpl) Update(ctx context.Context, req shift.UpdateAssignmentRequest) (shift.ShiftAssignment, error) {
	q := GetQuerier(ctx, r.db)

	var date *time.Time
	if req.Date != nil {
		parsed, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return shift.ShiftAssignment{}, fmt.Errorf("invalid assignment date %q: %w", *req.Date, err)
		}
		date = &parsed
	}

	query := `
		UPDATE shift_assignments
		SET shift_id = COALESCE($3, shift_id),
			date = COALESCE($4, date),
			work_hours = COALESCE($5, work_hours),
			updated_at = NOW()
		WHERE id = $1 AND store_id = $2
		RETURNING id, store_id, employee_id, shift_id, date, work_hours, created_at, updated_at
	`

	var updated shift.ShiftAssignment
	err := q.QueryRow(ctx, query, req.ID, req.StoreID, req.ShiftID, date, req.WorkHours).Scan(
		&updated.ID, &updated.StoreID, &updated.EmployeeID, &updated.ShiftID,
		&updated.Date, &updated.WorkHours, &updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.ShiftAssignment{}, shift.ErrAssignmentNotFound
		}
		return shift.ShiftAssignment{}, fmt.Errorf("failed to update shift assignment %s: %w", req.ID, err)
	}

	return updated, nil
}

// Delete implements shift.ShiftAssignmentRepository.
func (r *shiftAssignmentRepositoryImpl) Delete(ctx context.Context, id, storeID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM shift_assignments WHERE id = $1 AND store_id = $2`

	tag, err := q.Exec(ctx, query, id, storeID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrAssignmentNotFound
	}

	return nil
}
