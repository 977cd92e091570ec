package plan

import (
	"context"
	"time"

	"github.com/dienstpilot/dienstpilot-backend-go/internal/domain/plan"
	"github.com/dienstpilot/dienstpilot-backend-go/internal/domain/store"
	"github.com/dienstpilot/dienstpilot-backend-go/internal/pkg/holiday"
	"github.com/dienstpilot/dienstpilot-backend-go/internal/service/export"
)

type planServiceImpl struct {
	provider plan.DataProvider
	tables   *holiday.TableStore
}

func NewPlanService(provider plan.DataProvider, tables *holiday.TableStore) plan.PlanService {
	return &planServiceImpl{
		provider: provider,
		tables:   tables,
	}
}

// Monthly implements plan.PlanService.
func (s *planServiceImpl) Monthly(ctx context.Context, req plan.MonthlyPlanRequest) (plan.MonthlyPlanResponse, error) {
	if err := req.Validate(); err != nil {
		return plan.MonthlyPlanResponse{}, err
	}
	month, _ := time.Parse("2006-01", req.Month)

	st, grid, days, err := s.load(ctx, req.StoreID, month)
	if err != nil {
		return plan.MonthlyPlanResponse{}, err
	}

	resp := plan.MonthlyPlanResponse{
		StoreID:   st.ID,
		StoreName: st.Name,
		Month:     month.Format("2006-01"),
		Days:      make([]plan.DayResponse, len(days)),
		Rows:      make([]plan.PlanRowResponse, len(grid.Rows)),
	}
	for i, day := range days {
		resp.Days[i] = plan.DayResponse{
			Date: day.Date.Format("2006-01-02"),
			Kind: string(day.Kind),
		}
	}
	for i, row := range grid.Rows {
		resp.Rows[i] = plan.PlanRowResponse{
			EmployeeID:   row.EmployeeID,
			EmployeeName: row.EmployeeName,
			Cells:        row.DayCells,
			TotalHours:   row.TotalHours,
		}
	}

	return resp, nil
}

// Export implements plan.PlanService.
func (s *planServiceImpl) Export(ctx context.Context, req plan.ExportRequest) (plan.ExportResult, error) {
	if err := req.Validate(); err != nil {
		return plan.ExportResult{}, err
	}
	month, _ := time.Parse("2006-01", req.Month)

	st, grid, days, err := s.load(ctx, req.StoreID, month)
	if err != nil {
		return plan.ExportResult{}, err
	}

	switch req.Format {
	case plan.FormatSpreadsheet:
		data, err := export.Spreadsheet(grid, days, st)
		if err != nil {
			return plan.ExportResult{}, err
		}
		return plan.ExportResult{
			Filename:    export.SpreadsheetFilename(st.Name, month),
			ContentType: export.ContentTypeSpreadsheet,
			Data:        data,
		}, nil
	default:
		data, err := export.Document(grid, days, st)
		if err != nil {
			return plan.ExportResult{}, err
		}
		return plan.ExportResult{
			Filename:    export.DocumentFilename(st.Name, month),
			ContentType: export.ContentTypeDocument,
			Data:        data,
		}, nil
	}
}

// load fetches the store's data for the month, builds the grid and
// classifies each day column.
func (s *planServiceImpl) load(ctx context.Context, storeID string, month time.Time) (store.Store, plan.MonthlyGrid, []export.Day, error) {
	st, err := s.provider.GetStore(ctx, storeID)
	if err != nil {
		return store.Store{}, plan.MonthlyGrid{}, nil, err
	}

	employees, err := s.provider.ListEmployees(ctx, storeID)
	if err != nil {
		return store.Store{}, plan.MonthlyGrid{}, nil, err
	}
	defs, err := s.provider.ListShiftDefinitions(ctx, storeID)
	if err != nil {
		return store.Store{}, plan.MonthlyGrid{}, nil, err
	}
	assignments, err := s.provider.ListAssignments(ctx, storeID, month)
	if err != nil {
		return store.Store{}, plan.MonthlyGrid{}, nil, err
	}

	grid := BuildMonthlyGrid(month, employees, defs, assignments)

	table := s.tables.Table()
	days := make([]export.Day, 0, 31)
	for _, d := range MonthDays(month) {
		days = append(days, export.Day{
			Date: d,
			Kind: holiday.Classify(d, st.State, table),
		})
	}

	return st, grid, days, nil
}
