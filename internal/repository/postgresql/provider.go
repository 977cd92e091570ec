package postgresql

import (
	"context"
	"time"

	"github.com/dienstpilot/dienstpilot-backend-go/internal/domain/employee"
	"github.com/dienstpilot/dienstpilot-backend-go/internal/domain/plan"
	"github.com/dienstpilot/dienstpilot-backend-go/internal/domain/shift"
	"github.com/dienstpilot/dienstpilot-backend-go/internal/domain/store"
)

// planProviderImpl bundles the read paths the plan service needs into
// the plan.DataProvider seam.
type planProviderImpl struct {
	storeRepo      store.StoreRepository
	employeeRepo   employee.EmployeeRepository
	definitionRepo shift.ShiftDefinitionRepository
	assignmentRepo shift.ShiftAssignmentRepository
}

func NewPlanProvider(
	storeRepo store.StoreRepository,
	employeeRepo employee.EmployeeRepository,
	definitionRepo shift.ShiftDefinitionRepository,
	assignmentRepo shift.ShiftAssignmentRepository,
) plan.DataProvider {
	return &planProviderImpl{
		storeRepo:      storeRepo,
		employeeRepo:   employeeRepo,
		definitionRepo: definitionRepo,
		assignmentRepo: assignmentRepo,
	}
}

// GetStore implements plan.DataProvider.
func (p *planProviderImpl) GetStore(ctx context.Context, storeID string) (store.Store, error) {
	return p.storeRepo.GetByID(ctx, storeID)
}

// ListEmployees implements plan.DataProvider.
func (p *planProviderImpl) ListEmployees(ctx context.Context, storeID string) ([]employee.Employee, error) {
	return p.employeeRepo.GetByStoreID(ctx, storeID)
}

// ListShiftDefinitions implements plan.DataProvider.
func (p *planProviderImpl) ListShiftDefinitions(ctx context.Context, storeID string) ([]shift.ShiftDefinition, error) {
	return p.definitionRepo.GetByStoreID(ctx, storeID)
}

// ListAssignments implements plan.DataProvider.
func (p *planProviderImpl) ListAssignments(ctx context.Context, storeID string, month time.Time) ([]shift.ShiftAssignment, error) {
	return p.assignmentRepo.ListByMonth(ctx, storeID, month)
}
