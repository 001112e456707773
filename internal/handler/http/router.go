package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/pointage/timeclock-backend-go/internal/config"
	"github.com/pointage/timeclock-backend-go/internal/handler/http/middleware"
	"github.com/pointage/timeclock-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	timeclockHandler TimeclockHandler,
	kioskHandler KioskHandler,
	employeeHandler EmployeeHandler,
	leaveHandler LeaveHandler,
	salaryHandler SalaryHandler,
	settingsHandler SettingsHandler,
	reportHandler ReportHandler,
	trendsHandler TrendsHandler,
	dashboardHandler DashboardHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "pointage"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
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

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
				r.Get("/profile", authHandler.Profile)
			})
		})

		// The lock screen trades the device password for a kiosk token;
		// everything past that carries the token. The stream endpoint
		// accepts it as a query param because EventSource cannot set
		// headers.
		r.Route("/kiosk", func(r chi.Router) {
			r.Post("/unlock", authHandler.UnlockKiosk)

			r.Group(func(r chi.Router) {
				r.Use(middleware.KioskRequired(jwtService))
				r.Post("/scan", kioskHandler.Scan)
				r.Post("/reset", kioskHandler.Reset)
				r.Get("/stream", kioskHandler.Stream)
			})
		})

		// Branding is needed before login.
		r.Get("/settings", settingsHandler.Get)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/timeclock", func(r chi.Router) {
				r.Get("/status", timeclockHandler.Status)
				r.Post("/clock-in", timeclockHandler.ClockIn)
				r.Post("/clock-out", timeclockHandler.ClockOut)
				r.Get("/weekly", timeclockHandler.WeeklyStats)
			})

			r.Get("/dashboard/me", dashboardHandler.Me)

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", leaveHandler.Create)
				r.Get("/my", leaveHandler.ListMine)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", leaveHandler.List)
					r.Put("/{id}", leaveHandler.Update)
					r.Post("/{id}/approve", leaveHandler.Approve)
					r.Post("/{id}/reject", leaveHandler.Reject)
					r.Delete("/{id}", leaveHandler.Delete)
				})
			})

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/employees", func(r chi.Router) {
					r.Get("/", employeeHandler.List)
					r.Post("/", employeeHandler.Create)
					r.Get("/{id}", employeeHandler.Get)
					r.Put("/{id}", employeeHandler.Update)
					r.Delete("/{id}", employeeHandler.Delete)
					r.Get("/{id}/badge", employeeHandler.Badge)
					r.Get("/{id}/salary-stats", salaryHandler.EmployeeStats)
				})

				r.Route("/records", func(r chi.Router) {
					r.Get("/", timeclockHandler.List)
					r.Delete("/", timeclockHandler.DeleteAllRecords)
					r.Put("/{id}", timeclockHandler.UpdateRecord)
					r.Delete("/{id}", timeclockHandler.DeleteRecord)
				})

				r.Route("/salary-settings", func(r chi.Router) {
					r.Get("/", salaryHandler.GetSettings)
					r.Put("/", salaryHandler.UpdateSettings)
				})

				r.Put("/settings", settingsHandler.Update)

				r.Route("/reports", func(r chi.Router) {
					r.Get("/export", reportHandler.GlobalExport)
					r.Get("/attendance.xlsx", reportHandler.AttendanceXLSX)
					r.Get("/employees/{id}", reportHandler.EmployeeReport)
					r.Get("/employees/{id}/salary.pdf", reportHandler.SalaryReportPDF)
				})

				r.Get("/trends", trendsHandler.Analyze)
			})
		})
	})

	return r
}
