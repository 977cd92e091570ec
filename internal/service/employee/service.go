package employee

import (
	"context"

	"github.com/dienstpilot/dienstpilot-backend-go/internal/domain/employee"
	"github.com/google/uuid"
)

type employeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &employeeServiceImpl{employeeRepo: employeeRepo}
}

// Create implements employee.EmployeeService.
func (s *employeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		ID:        uuid.NewString(),
		StoreID:   req.StoreID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(created), nil
}

// GetByID implements employee.EmployeeService.
func (s *employeeServiceImpl) GetByID(ctx context.Context, id, storeID string) (employee.EmployeeResponse, error) {
	found, err := s.employeeRepo.GetByID(ctx, id, storeID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(found), nil
}

// ListByStore implements employee.EmployeeService.
func (s *employeeServiceImpl) ListByStore(ctx context.Context, storeID string) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.GetByStoreID(ctx, storeID)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToResponse(emp))
	}
	return responses, nil
}

// Update implements employee.EmployeeService.
func (s *employeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.employeeRepo.Update(ctx, req)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(updated), nil
}

// Delete implements employee.EmployeeService.
func (s *employeeServiceImpl) Delete(ctx context.Context, id, storeID string) error {
	return s.employeeRepo.SoftDelete(ctx, id, storeID)
}
