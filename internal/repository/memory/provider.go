package memory

import (
	"context"
	"sync"
	"time"

	"github.com/dienstpilot/dienstpilot-backend-go/internal/domain/employee"
	"github.com/dienstpilot/dienstpilot-backend-go/internal/domain/plan"
	"github.com/dienstpilot/dienstpilot-backend-go/internal/domain/shift"
	"github.com/dienstpilot/dienstpilot-backend-go/internal/domain/store"
)

// Provider is an in-memory plan.DataProvider. It backs the plan service
// in tests and in database-less single-node setups; all data is seeded
// up front through the Set methods.
type Provider struct {
	mu          sync.RWMutex
	stores      map[string]store.Store
	employees   map[string][]employee.Employee        // keyed by store ID
	definitions map[string][]shift.ShiftDefinition    // keyed by store ID
	assignments map[string][]shift.ShiftAssignment    // keyed by store ID
}

func NewProvider() *Provider {
	return &Provider{
		stores:      make(map[string]store.Store),
		employees:   make(map[string][]employee.Employee),
		definitions: make(map[string][]shift.ShiftDefinition),
		assignments: make(map[string][]shift.ShiftAssignment),
	}
}

// SetStore registers or replaces a store.
func (p *Provider) SetStore(s store.Store) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stores[s.ID] = s
}

// SetEmployees replaces the employee list of a store. Order is kept.
func (p *Provider) SetEmployees(storeID string, employees []employee.Employee) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.employees[storeID] = append([]employee.Employee(nil), employees...)
}

// SetShiftDefinitions replaces the shift definitions of a store.
func (p *Provider) SetShiftDefinitions(storeID string, defs []shift.ShiftDefinition) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.definitions[storeID] = append([]shift.ShiftDefinition(nil), defs...)
}

// SetAssignments replaces the assignments of a store.
func (p *Provider) SetAssignments(storeID string, assignments []shift.ShiftAssignment) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.assignments[storeID] = append([]shift.ShiftAssignment(nil), assignments...)
}

// GetStore implements plan.DataProvider.
func (p *Provider) GetStore(ctx context.Context, storeID string) (store.Store, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	s, ok := p.stores[storeID]
	if !ok {
		return store.Store{}, store.ErrStoreNotFound
	}
	return s, nil
}

// ListEmployees implements plan.DataProvider.
func (p *Provider) ListEmployees(ctx context.Context, storeID string) ([]employee.Employee, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]employee.Employee(nil), p.employees[storeID]...), nil
}

// ListShiftDefinitions implements plan.DataProvider.
func (p *Provider) ListShiftDefinitions(ctx context.Context, storeID string) ([]shift.ShiftDefinition, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]shift.ShiftDefinition(nil), p.definitions[storeID]...), nil
}

// ListAssignments implements plan.DataProvider.
func (p *Provider) ListAssignments(ctx context.Context, storeID string, month time.Time) ([]shift.ShiftAssignment, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	var result []shift.ShiftAssignment
	for _, a := range p.assignments[storeID] {
		if a.Date.Year() == month.Year() && a.Date.Month() == month.Month() {
			result = append(result, a)
		}
	}
	return result, nil
}

var _ plan.DataProvider = (*Provider)(nil)
