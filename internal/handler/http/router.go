package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(analyticsHandler AnalyticsHandler, importHandler ImportHandler, env, frontendURL string) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-analytics"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Attendance API is running\n"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/user-sessions", func(r chi.Router) {
			r.Get("/", analyticsHandler.ListSessions)
			r.Post("/import", importHandler.Import)
		})

		r.Get("/total-employees", analyticsHandler.TotalEmployees)
		r.Get("/dashboard-stats", analyticsHandler.DashboardStats)
		r.Get("/employee-monthly-hours", analyticsHandler.EmployeeMonthlyHours)
		r.Get("/monthly-overtime", analyticsHandler.MonthlyOvertime)
		r.Get("/avg-break-per-month", analyticsHandler.AvgBreakPerMonth)
		r.Get("/total-break-per-month", analyticsHandler.TotalBreakPerMonth)
		r.Get("/top-working-hours", analyticsHandler.TopWorkingHours)
		r.Get("/bottom-working-hours", analyticsHandler.BottomWorkingHours)
		r.Get("/employee-summary", analyticsHandler.EmployeeSummary)
		r.Get("/attendance-years", analyticsHandler.AttendanceYears)
	})
	return r
}
