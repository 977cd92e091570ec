package shift

import (
	"context"
	"time"

	"github.com/dienstpilot/dienstpilot-backend-go/internal/domain/employee"
	"github.com/dienstpilot/dienstpilot-backend-go/internal/domain/shift"
	"github.com/google/uuid"
)

type shiftServiceImpl struct {
	definitionRepo shift.ShiftDefinitionRepository
	assignmentRepo shift.ShiftAssignmentRepository
	employeeRepo   employee.EmployeeRepository
}

func NewShiftService(
	definitionRepo shift.ShiftDefinitionRepository,
	assignmentRepo shift.ShiftAssignmentRepository,
	employeeRepo employee.EmployeeRepository,
) shift.ShiftService {
	return &shiftServiceImpl{
		definitionRepo: definitionRepo,
		assignmentRepo: assignmentRepo,
		employeeRepo:   employeeRepo,
	}
}

// ==================== DEFINITIONS ====================

// CreateDefinition implements shift.ShiftService.
func (s *shiftServiceImpl) CreateDefinition(ctx context.Context, req shift.CreateShiftDefinitionRequest) (shift.ShiftDefinitionResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftDefinitionResponse{}, err
	}

	created, err := s.definitionRepo.Create(ctx, shift.ShiftDefinition{
		ID:                      uuid.NewString(),
		StoreID:                 req.StoreID,
		Title:                   req.Title,
		StartTime:               req.StartTime,
		EndTime:                 req.EndTime,
		WorkHours:               req.WorkHours,
		ExcludeFromCalculations: req.ExcludeFromCalculations,
		SortOrder:               req.SortOrder,
	})
	if err != nil {
		return shift.ShiftDefinitionResponse{}, err
	}

	return shift.ToDefinitionResponse(created), nil
}

// GetDefinition implements shift.ShiftService.
func (s *shiftServiceImpl) GetDefinition(ctx context.Context, id, storeID string) (shift.ShiftDefinitionResponse, error) {
	found, err := s.definitionRepo.GetByID(ctx, id, storeID)
	if err != nil {
		return shift.ShiftDefinitionResponse{}, err
	}
	return shift.ToDefinitionResponse(found), nil
}

// ListDefinitions implements shift.ShiftService.
func (s *shiftServiceImpl) ListDefinitions(ctx context.Context, storeID string) ([]shift.ShiftDefinitionResponse, error) {
	defs, err := s.definitionRepo.GetByStoreID(ctx, storeID)
	if err != nil {
		return nil, err
	}

	responses := make([]shift.ShiftDefinitionResponse, 0, len(defs))
	for _, def := range defs {
		responses = append(responses, shift.ToDefinitionResponse(def))
	}
	return responses, nil
}

// UpdateDefinition implements shift.ShiftService.
func (s *shiftServiceImpl) UpdateDefinition(ctx context.Context, req shift.UpdateShiftDefinitionRequest) (shift.ShiftDefinitionResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftDefinitionResponse{}, err
	}

	updated, err := s.definitionRepo.Update(ctx, req)
	if err != nil {
		return shift.ShiftDefinitionResponse{}, err
	}
	return shift.ToDefinitionResponse(updated), nil
}

// DeleteDefinition implements shift.ShiftService. Soft delete: existing
// assignments keep pointing at the definition, the aggregation treats
// missing definitions as blank contributions either way.
func (s *shiftServiceImpl) DeleteDefinition(ctx context.Context, id, storeID string) error {
	return s.definitionRepo.SoftDelete(ctx, id, storeID)
}

// ==================== ASSIGNMENTS ====================

// CreateAssignment implements shift.ShiftService.
func (s *shiftServiceImpl) CreateAssignment(ctx context.Context, req shift.CreateAssignmentRequest) (shift.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.AssignmentResponse{}, err
	}

	// The employee and the definition must belong to the same store.
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, req.StoreID); err != nil {
		return shift.AssignmentResponse{}, err
	}
	def, err := s.definitionRepo.GetByID(ctx, req.ShiftID, req.StoreID)
	if err != nil {
		return shift.AssignmentResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	workHours := req.WorkHours
	if workHours == 0 && def.WorkHours != nil {
		workHours = *def.WorkHours
	}

	created, err := s.assignmentRepo.Create(ctx, shift.ShiftAssignment{
		ID:         uuid.NewString(),
		StoreID:    req.StoreID,
		EmployeeID: req.EmployeeID,
		ShiftID:    req.ShiftID,
		Date:       date,
		WorkHours:  workHours,
	})
	if err != nil {
		return shift.AssignmentResponse{}, err
	}

	return shift.ToAssignmentResponse(created), nil
}

// GetAssignment implements shift.ShiftService.
func (s *shiftServiceImpl) GetAssignment(ctx context.Context, id, storeID string) (shift.AssignmentResponse, error) {
	found, err := s.assignmentRepo.GetByID(ctx, id, storeID)
	if err != nil {
		return shift.AssignmentResponse{}, err
	}
	return shift.ToAssignmentResponse(found), nil
}

// ListAssignmentsByMonth implements shift.ShiftService.
func (s *shiftServiceImpl) ListAssignmentsByMonth(ctx context.Context, storeID string, month time.Time) ([]shift.AssignmentResponse, error) {
	assignments, err := s.assignmentRepo.ListByMonth(ctx, storeID, month)
	if err != nil {
		return nil, err
	}

	responses := make([]shift.AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		responses = append(responses, shift.ToAssignmentResponse(a))
	}
	return responses, nil
}

// UpdateAssignment implements shift.ShiftService.
func (s *shiftServiceImpl) UpdateAssignment(ctx context.Context, req shift.UpdateAssignmentRequest) (shift.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.AssignmentResponse{}, err
	}

	if req.ShiftID != nil {
		if _, err := s.definitionRepo.GetByID(ctx, *req.ShiftID, req.StoreID); err != nil {
			return shift.AssignmentResponse{}, err
		}
	}

	updated, err := s.assignmentRepo.Update(ctx, req)
	if err != nil {
		return shift.AssignmentResponse{}, err
	}
	return shift.ToAssignmentResponse(updated), nil
}

// DeleteAssignment implements shift.ShiftService.
func (s *shiftServiceImpl) DeleteAssignment(ctx context.Context, id, storeID string) error {
	return s.assignmentRepo.Delete(ctx, id, storeID)
}
