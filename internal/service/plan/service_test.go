package plan

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/dienstpilot/dienstpilot-backend-go/internal/domain/employee"
	"github.com/dienstpilot/dienstpilot-backend-go/internal/domain/plan"
	"github.com/dienstpilot/dienstpilot-backend-go/internal/domain/shift"
	"github.com/dienstpilot/dienstpilot-backend-go/internal/domain/store"
	"github.com/dienstpilot/dienstpilot-backend-go/internal/pkg/holiday"
	"github.com/dienstpilot/dienstpilot-backend-go/internal/pkg/validator"
	"github.com/dienstpilot/dienstpilot-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testStoreID = "11111111-1111-1111-1111-111111111111"

func seededProvider() *memory.Provider {
	p := memory.NewProvider()
	p.SetStore(store.Store{ID: testStoreID, Name: "Filiale Mitte", State: holiday.Berlin})
	p.SetEmployees(testStoreID, []employee.Employee{
		{ID: "e1", StoreID: testStoreID, FirstName: "Anna", LastName: "Schmidt"},
		{ID: "e2", StoreID: testStoreID, FirstName: "Ben", LastName: "Weber"},
	})
	p.SetShiftDefinitions(testStoreID, []shift.ShiftDefinition{
		{ID: "s1", StoreID: testStoreID, Title: "Frühschicht"},
		{ID: "s2", StoreID: testStoreID, Title: "Urlaub", ExcludeFromCalculations: true},
	})
	p.SetAssignments(testStoreID, []shift.ShiftAssignment{
		{ID: "a1", StoreID: testStoreID, EmployeeID: "e1", ShiftID: "s1",
			Date: time.Date(2024, time.May, 2, 0, 0, 0, 0, time.UTC), WorkHours: 8},
		{ID: "a2", StoreID: testStoreID, EmployeeID: "e1", ShiftID: "s2",
			Date: time.Date(2024, time.May, 3, 0, 0, 0, 0, time.UTC), WorkHours: 8},
		{ID: "a3", StoreID: testStoreID, EmployeeID: "e2", ShiftID: "s2",
			Date: time.Date(2024, time.May, 6, 0, 0, 0, 0, time.UTC), WorkHours: 8},
	})
	return p
}

func newTestService() plan.PlanService {
	return NewPlanService(seededProvider(), holiday.NewTableStore(2024))
}

func TestPlanServiceMonthly(t *testing.T) {
	svc := newTestService()

	resp, err := svc.Monthly(context.Background(), plan.MonthlyPlanRequest{
		StoreID: testStoreID,
		Month:   "2024-05",
	})
	require.NoError(t, err)

	assert.Equal(t, testStoreID, resp.StoreID)
	assert.Equal(t, "Filiale Mitte", resp.StoreName)
	assert.Equal(t, "2024-05", resp.Month)
	require.Len(t, resp.Days, 31)

	// 2024-05-01 is Tag der Arbeit, 2024-05-04 a Saturday.
	assert.Equal(t, "2024-05-01", resp.Days[0].Date)
	assert.Equal(t, "holiday", resp.Days[0].Kind)
	assert.Equal(t, "saturday", resp.Days[3].Kind)
	assert.Equal(t, "sunday", resp.Days[4].Kind)
	assert.Equal(t, "weekday", resp.Days[1].Kind)

	// Ben only has an excluded shift, so only Anna survives.
	require.Len(t, resp.Rows, 1)
	assert.Equal(t, "Anna Schmidt", resp.Rows[0].EmployeeName)
	assert.Equal(t, "Frühschicht", resp.Rows[0].Cells[1])
	assert.Equal(t, "Urlaub", resp.Rows[0].Cells[2])
	assert.InDelta(t, 8, resp.Rows[0].TotalHours, 1e-9)
}

func TestPlanServiceMonthlyValidation(t *testing.T) {
	svc := newTestService()

	_, err := svc.Monthly(context.Background(), plan.MonthlyPlanRequest{
		StoreID: "not-a-uuid",
		Month:   "2024-05",
	})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)

	_, err = svc.Monthly(context.Background(), plan.MonthlyPlanRequest{
		StoreID: testStoreID,
		Month:   "05-2024",
	})
	require.ErrorAs(t, err, &verrs)
}

func TestPlanServiceMonthlyStoreNotFound(t *testing.T) {
	svc := newTestService()

	_, err := svc.Monthly(context.Background(), plan.MonthlyPlanRequest{
		StoreID: "22222222-2222-2222-2222-222222222222",
		Month:   "2024-05",
	})
	require.ErrorIs(t, err, store.ErrStoreNotFound)
}

func TestPlanServiceExport(t *testing.T) {
	svc := newTestService()

	xlsx, err := svc.Export(context.Background(), plan.ExportRequest{
		StoreID: testStoreID,
		Month:   "2024-05",
		Format:  plan.FormatSpreadsheet,
	})
	require.NoError(t, err)
	assert.Equal(t, "Arbeitsplan_Filiale Mitte_Mai 2024.xlsx", xlsx.Filename)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", xlsx.ContentType)
	assert.NotEmpty(t, xlsx.Data)

	pdf, err := svc.Export(context.Background(), plan.ExportRequest{
		StoreID: testStoreID,
		Month:   "2024-05",
		Format:  plan.FormatDocument,
	})
	require.NoError(t, err)
	assert.Equal(t, "Arbeitsplan_Filiale Mitte_2024-05.pdf", pdf.Filename)
	assert.Equal(t, "application/pdf", pdf.ContentType)
	assert.True(t, bytes.HasPrefix(pdf.Data, []byte("%PDF")))
}

func TestPlanServiceExportBadFormat(t *testing.T) {
	svc := newTestService()

	_, err := svc.Export(context.Background(), plan.ExportRequest{
		StoreID: testStoreID,
		Month:   "2024-05",
		Format:  plan.ExportFormat("docx"),
	})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
}
