package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/dienstpilot/dienstpilot-backend-go/internal/config"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	cfg config.AppConfig,
	storeHandler StoreHandler,
	employeeHandler EmployeeHandler,
	shiftHandler ShiftHandler,
	logbookHandler LogbookHandler,
	planHandler PlanHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "dienstpilot"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/stores", func(r chi.Router) {
			r.Get("/", storeHandler.List)
			r.Post("/", storeHandler.Create)

			r.Route("/{storeID}", func(r chi.Router) {
				r.Get("/", storeHandler.GetByID)
				r.Put("/", storeHandler.Update)
				r.Delete("/", storeHandler.Delete)

				r.Route("/employees", func(r chi.Router) {
					r.Get("/", employeeHandler.ListByStore)
					r.Post("/", employeeHandler.Create)
					r.Route("/{employeeID}", func(r chi.Router) {
						r.Get("/", employeeHandler.GetByID)
						r.Put("/", employeeHandler.Update)
						r.Delete("/", employeeHandler.Delete)
					})
				})

				r.Route("/shifts", func(r chi.Router) {
					r.Get("/", shiftHandler.ListDefinitions)
					r.Post("/", shiftHandler.CreateDefinition)
					r.Route("/{shiftID}", func(r chi.Router) {
						r.Get("/", shiftHandler.GetDefinition)
						r.Put("/", shiftHandler.UpdateDefinition)
						r.Delete("/", shiftHandler.DeleteDefinition)
					})
				})

				r.Route("/assignments", func(r chi.Router) {
					r.Get("/", shiftHandler.ListAssignments)
					r.Post("/", shiftHandler.CreateAssignment)
					r.Route("/{assignmentID}", func(r chi.Router) {
						r.Get("/", shiftHandler.GetAssignment)
						r.Put("/", shiftHandler.UpdateAssignment)
						r.Delete("/", shiftHandler.DeleteAssignment)
					})
				})

				r.Route("/logbook", func(r chi.Router) {
					r.Get("/", logbookHandler.ListByMonth)
					r.Post("/", logbookHandler.Create)
					r.Route("/{entryID}", func(r chi.Router) {
						r.Get("/", logbookHandler.GetByID)
						r.Put("/", logbookHandler.Update)
						r.Delete("/", logbookHandler.Delete)
					})
				})

				r.Route("/plan", func(r chi.Router) {
					r.Get("/", planHandler.Monthly)
					r.Get("/export", planHandler.Export)
				})
			})
		})
	})
	return r
}
