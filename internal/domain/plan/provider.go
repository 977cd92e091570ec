package plan

import (
	"context"
	"time"

	"github.com/dienstpilot/dienstpilot-backend-go/internal/domain/employee"
	"github.com/dienstpilot/dienstpilot-backend-go/internal/domain/shift"
	"github.com/dienstpilot/dienstpilot-backend-go/internal/domain/store"
)

// DataProvider is the storage seam the plan service reads through. The
// postgresql repositories satisfy it in production; the memory provider
// does for tests and single-node setups. The plan service never writes.
type DataProvider interface {
	GetStore(ctx context.Context, storeID string) (store.Store, error)
	ListEmployees(ctx context.Context, storeID string) ([]employee.Employee, error)
	ListShiftDefinitions(ctx context.Context, storeID string) ([]shift.ShiftDefinition, error)
	ListAssignments(ctx context.Context, storeID string, month time.Time) ([]shift.ShiftAssignment, error)
}
