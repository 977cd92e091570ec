package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/dienstpilot/dienstpilot-backend-go/internal/config"
	appHTTP "github.com/dienstpilot/dienstpilot-backend-go/internal/handler/http"
	"github.com/dienstpilot/dienstpilot-backend-go/internal/pkg/cron"
	"github.com/dienstpilot/dienstpilot-backend-go/internal/pkg/database"
	"github.com/dienstpilot/dienstpilot-backend-go/internal/pkg/holiday"
	"github.com/dienstpilot/dienstpilot-backend-go/internal/repository/postgresql"
	employeeService "github.com/dienstpilot/dienstpilot-backend-go/internal/service/employee"
	logbookService "github.com/dienstpilot/dienstpilot-backend-go/internal/service/logbook"
	planService "github.com/dienstpilot/dienstpilot-backend-go/internal/service/plan"
	shiftService "github.com/dienstpilot/dienstpilot-backend-go/internal/service/shift"
	storeService "github.com/dienstpilot/dienstpilot-backend-go/internal/service/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	storeRepo := postgresql.NewStoreRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	definitionRepo := postgresql.NewShiftDefinitionRepository(db)
	assignmentRepo := postgresql.NewShiftAssignmentRepository(db)
	logbookRepo := postgresql.NewLogbookRepository(db)
	planProvider := postgresql.NewPlanProvider(storeRepo, employeeRepo, definitionRepo, assignmentRepo)

	holidayYear := cfg.Export.HolidayYear
	if holidayYear == 0 {
		holidayYear = time.Now().Year()
	}
	holidayTables := holiday.NewTableStore(holidayYear)

	storeSvc := storeService.NewStoreService(db, storeRepo, definitionRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	shiftSvc := shiftService.NewShiftService(definitionRepo, assignmentRepo, employeeRepo)
	logbookSvc := logbookService.NewLogbookService(logbookRepo)
	planSvc := planService.NewPlanService(planProvider, holidayTables)

	storeHandler := appHTTP.NewStoreHandler(storeSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	shiftHandler := appHTTP.NewShiftHandler(shiftSvc)
	logbookHandler := appHTTP.NewLogbookHandler(logbookSvc)
	planHandler := appHTTP.NewPlanHandler(planSvc)

	scheduler := cron.NewScheduler()
	if cfg.Export.HolidayYear == 0 {
		scheduler.AddJob("holiday-table-refresh", 24*time.Hour, cron.NewHolidayTableJob(holidayTables))
	}
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		cfg.App,
		storeHandler,
		employeeHandler,
		shiftHandler,
		logbookHandler,
		planHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
