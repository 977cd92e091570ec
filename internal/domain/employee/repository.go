package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, e Employee) (Employee, error)
	GetByID(ctx context.Context, id, storeID string) (Employee, error)
	GetByStoreID(ctx context.Context, storeID string) ([]Employee, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (Employee, error)
	SoftDelete(ctx context.Context, id, storeID string) error
}
