package shift

import (
	"context"
	"time"
)

type ShiftService interface {
	// Definitions
	CreateDefinition(ctx context.Context, req CreateShiftDefinitionRequest) (ShiftDefinitionResponse, error)
	GetDefinition(ctx context.Context, id, storeID string) (ShiftDefinitionResponse, error)
	ListDefinitions(ctx context.Context, storeID string) ([]ShiftDefinitionResponse, error)
	UpdateDefinition(ctx context.Context, req UpdateShiftDefinitionRequest) (ShiftDefinitionResponse, error)
	DeleteDefinition(ctx context.Context, id, storeID string) error

	// Assignments
	CreateAssignment(ctx context.Context, req CreateAssignmentRequest) (AssignmentResponse, error)
	GetAssignment(ctx context.Context, id, storeID string) (AssignmentResponse, error)
	ListAssignmentsByMonth(ctx context.Context, storeID string, month time.Time) ([]AssignmentResponse, error)
	UpdateAssignment(ctx context.Context, req UpdateAssignmentRequest) (AssignmentResponse, error)
	DeleteAssignment(ctx context.Context, id, storeID string) error
}
