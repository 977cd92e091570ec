package memory

import (
	"context"
	"testing"
	"time"

	"github.com/dienstpilot/dienstpilot-backend-go/internal/domain/shift"
	"github.com/dienstpilot/dienstpilot-backend-go/internal/domain/store"
	"github.com/dienstpilot/dienstpilot-backend-go/internal/pkg/holiday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderGetStore(t *testing.T) {
	p := NewProvider()
	p.SetStore(store.Store{ID: "st1", Name: "Filiale Nord", State: holiday.Hamburg})

	got, err := p.GetStore(context.Background(), "st1")
	require.NoError(t, err)
	assert.Equal(t, "Filiale Nord", got.Name)

	_, err = p.GetStore(context.Background(), "missing")
	require.ErrorIs(t, err, store.ErrStoreNotFound)
}

func TestProviderListAssignmentsFiltersByMonth(t *testing.T) {
	p := NewProvider()
	p.SetAssignments("st1", []shift.ShiftAssignment{
		{ID: "a1", StoreID: "st1", Date: time.Date(2024, time.May, 31, 0, 0, 0, 0, time.UTC)},
		{ID: "a2", StoreID: "st1", Date: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "a3", StoreID: "st1", Date: time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC)},
		{ID: "a4", StoreID: "st1", Date: time.Date(2023, time.June, 15, 0, 0, 0, 0, time.UTC)},
	})

	june := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	got, err := p.ListAssignments(context.Background(), "st1", june)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a2", got[0].ID)
	assert.Equal(t, "a3", got[1].ID)
}

func TestProviderListsCopyOnRead(t *testing.T) {
	p := NewProvider()
	p.SetAssignments("st1", []shift.ShiftAssignment{
		{ID: "a1", StoreID: "st1", Date: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)},
	})

	june := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	first, err := p.ListAssignments(context.Background(), "st1", june)
	require.NoError(t, err)
	first[0].ID = "mutated"

	second, err := p.ListAssignments(context.Background(), "st1", june)
	require.NoError(t, err)
	assert.Equal(t, "a1", second[0].ID)
}
