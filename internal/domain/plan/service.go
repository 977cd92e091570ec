package plan

import "context"

type PlanService interface {
	// Monthly returns the calendar-view representation of the grid.
	Monthly(ctx context.Context, req MonthlyPlanRequest) (MonthlyPlanResponse, error)
	// Export renders the grid as an XLSX or PDF artifact.
	Export(ctx context.Context, req ExportRequest) (ExportResult, error)
}
