package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/dienstpilot/dienstpilot-backend-go/internal/domain/employee"
	"github.com/dienstpilot/dienstpilot-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (id, store_id, first_name, last_name, sort_order)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, store_id, first_name, last_name, sort_order, created_at, updated_at, deleted_at
	`

	var created employee.Employee
	err := q.QueryRow(ctx, query,
		newEmployee.ID, newEmployee.StoreID, newEmployee.FirstName, newEmployee.LastName, newEmployee.SortOrder,
	).Scan(
		&created.ID, &created.StoreID, &created.FirstName, &created.LastName,
		&created.SortOrder, &created.CreatedAt, &created.UpdatedAt, &created.DeletedAt,
	)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id, storeID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, store_id, first_name, last_name, sort_order, created_at, updated_at, deleted_at
		FROM employees
		WHERE id = $1 AND store_id = $2 AND deleted_at IS NULL
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id, storeID).Scan(
		&emp.ID, &emp.StoreID, &emp.FirstName, &emp.LastName,
		&emp.SortOrder, &emp.CreatedAt, &emp.UpdatedAt, &emp.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}

	return emp, nil
}

// GetByStoreID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByStoreID(ctx context.Context, storeID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, store_id, first_name, last_name, sort_order, created_at, updated_at, deleted_at
		FROM employees
		WHERE store_id = $1 AND deleted_at IS NULL
		ORDER BY sort_order, last_name, first_name
	`

	rows, err := q.Query(ctx, query, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID, &emp.StoreID, &emp.FirstName, &emp.LastName,
			&emp.SortOrder, &emp.CreatedAt, &emp.UpdatedAt, &emp.DeletedAt,
		)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET first_name = COALESCE($3, first_name),
			last_name = COALESCE($4, last_name),
			sort_order = COALESCE($5, sort_order),
			updated_at = NOW()
		WHERE id = $1 AND store_id = $2 AND deleted_at IS NULL
		RETURNING id, store_id, first_name, last_name, sort_order, created_at, updated_at, deleted_at
	`

	var updated employee.Employee
	err := q.QueryRow(ctx, query, req.ID, req.StoreID, req.FirstName, req.LastName, req.SortOrder).Scan(
		&updated.ID, &updated.StoreID, &updated.FirstName, &updated.LastName,
		&updated.SortOrder, &updated.CreatedAt, &updated.UpdatedAt, &updated.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee %s: %w", req.ID, err)
	}

	return updated, nil
}

// SoftDelete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) SoftDelete(ctx context.Context, id, storeID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND store_id = $2 AND deleted_at IS NULL
		RETURNING id
	`

	var deletedID string
	err := q.QueryRow(ctx, query, id, storeID).Scan(&deletedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return err
	}

	return nil
}
