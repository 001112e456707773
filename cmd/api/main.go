package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pointage/timeclock-backend-go/internal/config"
	appHTTP "github.com/pointage/timeclock-backend-go/internal/handler/http"
	"github.com/pointage/timeclock-backend-go/internal/pkg/database"
	"github.com/pointage/timeclock-backend-go/internal/pkg/jwt"
	"github.com/pointage/timeclock-backend-go/internal/pkg/sse"
	"github.com/pointage/timeclock-backend-go/internal/repository/postgresql"
	serviceAuth "github.com/pointage/timeclock-backend-go/internal/service/auth"
	kioskService "github.com/pointage/timeclock-backend-go/internal/service/kiosk"
	leaveService "github.com/pointage/timeclock-backend-go/internal/service/leave"
	reportService "github.com/pointage/timeclock-backend-go/internal/service/report"
	salaryService "github.com/pointage/timeclock-backend-go/internal/service/salary"
	settingsService "github.com/pointage/timeclock-backend-go/internal/service/settings"
	timeclockService "github.com/pointage/timeclock-backend-go/internal/service/timeclock"
	trendsService "github.com/pointage/timeclock-backend-go/internal/service/trends"
	employeeService "github.com/pointage/timeclock-backend-go/internal/service/user"
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

	loc := cfg.Location()

	userRepo := postgresql.NewUserRepository(db)
	timeRecordRepo := postgresql.NewTimeRecordRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	appSettingsRepo := postgresql.NewAppSettingsRepository(db)
	salarySettingsRepo := postgresql.NewSalarySettingsRepository(db)
	JWTRepository := postgresql.NewJWTRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	hub := sse.NewHub()

	authSvc := serviceAuth.NewAuthService(db, userRepo, JWTService, JWTRepository, cfg.Kiosk)
	timeclockSvc := timeclockService.NewTimeclockService(db, timeRecordRepo, userRepo, loc)
	kioskSvc := kioskService.NewService(hub, timeclockSvc)
	leaveSvc := leaveService.NewLeaveService(leaveRepo)
	employeeSvc := employeeService.NewEmployeeService(db, userRepo, timeRecordRepo, leaveRepo)
	settingsSvc := settingsService.NewSettingsService(appSettingsRepo)
	salarySvc := salaryService.NewSalaryService(salarySettingsRepo, timeRecordRepo, leaveRepo, userRepo, loc)
	reportSvc := reportService.NewReportService(settingsSvc, salarySvc, timeRecordRepo, leaveRepo, userRepo)
	trendsSvc := trendsService.NewTrendsService(timeRecordRepo, leaveRepo, userRepo)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc)
	timeclockHandler := appHTTP.NewTimeclockHandler(timeclockSvc)
	kioskHandler := appHTTP.NewKioskHandler(kioskSvc, hub)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	salaryHandler := appHTTP.NewSalaryHandler(salarySvc)
	settingsHandler := appHTTP.NewSettingsHandler(settingsSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	trendsHandler := appHTTP.NewTrendsHandler(trendsSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(timeclockSvc)

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		authHandler,
		timeclockHandler,
		kioskHandler,
		employeeHandler,
		leaveHandler,
		salaryHandler,
		settingsHandler,
		reportHandler,
		trendsHandler,
		dashboardHandler,
	)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Println("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Stop pending kiosk timers before the listener goes away; stream
	// handlers unsubscribe themselves when their contexts end.
	kioskSvc.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		fmt.Println("Shutdown error:", err)
	}
}
