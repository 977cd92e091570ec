package shift

import (
	"context"
	"time"
)

type ShiftDefinitionRepository interface {
	Create(ctx context.Context, d ShiftDefinition) (ShiftDefinition, error)
	GetByID(ctx context.Context, id, storeID string) (ShiftDefinition, error)
	GetByStoreID(ctx context.Context, storeID string) ([]ShiftDefinition, error)
	Update(ctx context.Context, req UpdateShiftDefinitionRequest) (ShiftDefinition, error)
	SoftDelete(ctx context.Context, id, storeID string) error
}

type ShiftAssignmentRepository interface {
	Create(ctx context.Context, a ShiftAssignment) (ShiftAssignment, error)
	GetByID(ctx context.Context, id, storeID string) (ShiftAssignment, error)
	// ListByMonth returns every assignment of the store whose date falls
	// in the month containing the given time.
	ListByMonth(ctx context.Context, storeID string, month time.Time) ([]ShiftAssignment, error)
	Update(ctx context.Context, req UpdateAssignmentRequest) (ShiftAssignment, error)
	Delete(ctx context.Context, id, storeID string) error
}
