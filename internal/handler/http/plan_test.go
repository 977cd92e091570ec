package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dienstpilot/dienstpilot-backend-go/internal/domain/employee"
	"github.com/dienstpilot/dienstpilot-backend-go/internal/domain/plan"
	"github.com/dienstpilot/dienstpilot-backend-go/internal/domain/shift"
	"github.com/dienstpilot/dienstpilot-backend-go/internal/domain/store"
	"github.com/dienstpilot/dienstpilot-backend-go/internal/handler/http/response"
	"github.com/dienstpilot/dienstpilot-backend-go/internal/pkg/holiday"
	"github.com/dienstpilot/dienstpilot-backend-go/internal/repository/memory"
	planService "github.com/dienstpilot/dienstpilot-backend-go/internal/service/plan"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const planTestStoreID = "11111111-1111-1111-1111-111111111111"

func newPlanTestRouter() *chi.Mux {
	provider := memory.NewProvider()
	provider.SetStore(store.Store{ID: planTestStoreID, Name: "Filiale Mitte", State: holiday.Berlin})
	provider.SetEmployees(planTestStoreID, []employee.Employee{
		{ID: "e1", StoreID: planTestStoreID, FirstName: "Anna", LastName: "Schmidt"},
	})
	provider.SetShiftDefinitions(planTestStoreID, []shift.ShiftDefinition{
		{ID: "s1", StoreID: planTestStoreID, Title: "Frühschicht"},
	})
	provider.SetAssignments(planTestStoreID, []shift.ShiftAssignment{
		{ID: "a1", StoreID: planTestStoreID, EmployeeID: "e1", ShiftID: "s1",
			Date: time.Date(2024, time.May, 2, 0, 0, 0, 0, time.UTC), WorkHours: 8},
	})

	svc := planService.NewPlanService(provider, holiday.NewTableStore(2024))
	handler := NewPlanHandler(svc)

	r := chi.NewRouter()
	r.Get("/api/v1/stores/{storeID}/plan", handler.Monthly)
	r.Get("/api/v1/stores/{storeID}/plan/export", handler.Export)
	return r
}

func TestPlanHandlerMonthly(t *testing.T) {
	router := newPlanTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stores/"+planTestStoreID+"/plan?month=2024-05", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool                     `json:"success"`
		Data    plan.MonthlyPlanResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "Filiale Mitte", body.Data.StoreName)
	assert.Equal(t, "2024-05", body.Data.Month)
	require.Len(t, body.Data.Rows, 1)
	assert.Equal(t, "Anna Schmidt", body.Data.Rows[0].EmployeeName)
	assert.Equal(t, "holiday", body.Data.Days[0].Kind)
}

func TestPlanHandlerMonthlyValidation(t *testing.T) {
	router := newPlanTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stores/"+planTestStoreID+"/plan?month=bogus", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Contains(t, body.Error.Details, "month")
}

func TestPlanHandlerMonthlyStoreNotFound(t *testing.T) {
	router := newPlanTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stores/22222222-2222-2222-2222-222222222222/plan?month=2024-05", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPlanHandlerExport(t *testing.T) {
	router := newPlanTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stores/"+planTestStoreID+"/plan/export?month=2024-05&format=xlsx", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Arbeitsplan_Filiale Mitte_Mai 2024.xlsx"`, rec.Header().Get("Content-Disposition"))
	assert.NotEmpty(t, rec.Body.Bytes())
}

func TestPlanHandlerExportBadFormat(t *testing.T) {
	router := newPlanTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stores/"+planTestStoreID+"/plan/export?month=2024-05&format=docx", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
