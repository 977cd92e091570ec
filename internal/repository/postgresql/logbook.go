package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dienstpilot/dienstpilot-backend-go/internal/domain/logbook"
	"github.com/dienstpilot/dienstpilot-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type logbookRepositoryImpl struct {
	db *database.DB
}

func NewLogbookRepository(db *database.DB) logbook.EntryRepository {
	return &logbookRepositoryImpl{db: db}
}

// Create implements logbook.EntryRepository.
func (r *logbookRepositoryImpl) Create(ctx context.Context, e logbook.Entry) (logbook.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO logbook_entries (id, store_id, date, author, text)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, store_id, date, author, text, created_at, updated_at
	`

	var created logbook.Entry
	err := q.QueryRow(ctx, query, e.ID, e.StoreID, e.Date, e.Author, e.Text).Scan(
		&created.ID, &created.StoreID, &created.Date, &created.Author, &created.Text,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return logbook.Entry{}, fmt.Errorf("failed to create logbook entry: %w", err)
	}

	return created, nil
}

// GetByID implements logbook.EntryRepository.
func (r *logbookRepositoryImpl) GetByID(ctx context.Context, id, storeID string) (logbook.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, store_id, date, author, text, created_at, updated_at
		FROM logbook_entries
		WHERE id = $1 AND store_id = $2
	`

	var e logbook.Entry
	err := q.QueryRow(ctx, query, id, storeID).Scan(
		&e.ID, &e.StoreID, &e.Date, &e.Author, &e.Text, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return logbook.Entry{}, logbook.ErrEntryNotFound
		}
		return logbook.Entry{}, err
	}

	return e, nil
}

// ListByMonth implements logbook.EntryRepository.
func (r *logbookRepositoryImpl) ListByMonth(ctx context.Context, storeID string, month time.Time) ([]logbook.Entry, error) {
	q := GetQuerier(ctx, r.db)

	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	next := first.AddDate(0, 1, 0)

	query := `
		SELECT id, store_id, date, author, text, created_at, updated_at
		FROM logbook_entries
		WHERE store_id = $1 AND date >= $2 AND date < $3
		ORDER BY date, created_at
	`

	rows, err := q.Query(ctx, query, storeID, first, next)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []logbook.Entry
	for rows.Next() {
		var e logbook.Entry
		if err := rows.Scan(&e.ID, &e.StoreID, &e.Date, &e.Author, &e.Text, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// Update implements logbook.EntryRepository.
func (r *logbookRepositoryImpl) Update(ctx context.Context, req logbook.UpdateEntryRequest) (logbook.Entry, error) {
	q := GetQuerier(ctx, r.db)

	var date *time.Time
	if req.Date != nil {
		parsed, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return logbook.Entry{}, fmt.Errorf("invalid logbook date %q: %w", *req.Date, err)
		}
		date = &parsed
	}

	query := `
		UPDATE logbook_entries
		SET date = COALESCE($3, date),
			author = COALESCE($4, author),
			text = COALESCE($5, text),
			updated_at = NOW()
		WHERE id = $1 AND store_id = $2
		RETURNING id, store_id, date, author, text, created_at, updated_at
	`

	var updated logbook.Entry
	err := q.QueryRow(ctx, query, req.ID, req.StoreID, date, req.Author, req.Text).Scan(
		&updated.ID, &updated.StoreID, &updated.Date, &updated.Author, &updated.Text,
		&updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return logbook.Entry{}, logbook.ErrEntryNotFound
		}
		return logbook.Entry{}, fmt.Errorf("failed to update logbook entry %s: %w", req.ID, err)
	}

	return updated, nil
}

// Delete implements logbook.EntryRepository.
func (r *logbookRepositoryImpl) Delete(ctx context.Context, id, storeID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM logbook_entries WHERE id = $1 AND store_id = $2`

	tag, err := q.Exec(ctx, query, id, storeID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return logbook.ErrEntryNotFound
	}

	return nil
}
