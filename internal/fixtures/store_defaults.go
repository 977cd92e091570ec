package fixtures

import (
	"github.com/dienstpilot/dienstpilot-backend-go/internal/domain/shift"
	"github.com/google/uuid"
)

func strPtr(s string) *string       { return &s }
func float64Ptr(f float64) *float64 { return &f }

// DefaultShiftDefinitions returns the shift definitions a fresh store
// starts with. Absence categories are flagged so they show up on the
// plan without counting as work hours.
func DefaultShiftDefinitions(storeID string) []shift.ShiftDefinition {
	return []shift.ShiftDefinition{
		{
			ID:        uuid.NewString(),
			StoreID:   storeID,
			Title:     "Frühschicht",
			StartTime: strPtr("06:00"),
			EndTime:   strPtr("14:00"),
			WorkHours: float64Ptr(8),
			SortOrder: 1,
		},
		{
			ID:        uuid.NewString(),
			StoreID:   storeID,
			Title:     "Spätschicht",
			StartTime: strPtr("14:00"),
			EndTime:   strPtr("22:00"),
			WorkHours: float64Ptr(8),
			SortOrder: 2,
		},
		{
			ID:                      uuid.NewString(),
			StoreID:                 storeID,
			Title:                   "Urlaub",
			ExcludeFromCalculations: true,
			SortOrder:               3,
		},
		{
			ID:                      uuid.NewString(),
			StoreID:                 storeID,
			Title:                   "Krank",
			ExcludeFromCalculations: true,
			SortOrder:               4,
		},
		{
			ID:                      uuid.NewString(),
			StoreID:                 storeID,
			Title:                   "Frei",
			ExcludeFromCalculations: true,
			SortOrder:               5,
		},
	}
}
