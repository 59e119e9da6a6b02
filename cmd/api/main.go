package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/geoattend/geoattend-backend-go/internal/config"
	appHTTP "github.com/geoattend/geoattend-backend-go/internal/handler/http"
	"github.com/geoattend/geoattend-backend-go/internal/pkg/cron"
	"github.com/geoattend/geoattend-backend-go/internal/pkg/database"
	"github.com/geoattend/geoattend-backend-go/internal/pkg/email"
	"github.com/geoattend/geoattend-backend-go/internal/pkg/gemini"
	"github.com/geoattend/geoattend-backend-go/internal/pkg/jwt"
	"github.com/geoattend/geoattend-backend-go/internal/pkg/sse"
	"github.com/geoattend/geoattend-backend-go/internal/pkg/storage"
	"github.com/geoattend/geoattend-backend-go/internal/repository/postgresql"
	anomalyService "github.com/geoattend/geoattend-backend-go/internal/service/anomaly"
	authService "github.com/geoattend/geoattend-backend-go/internal/service/auth"
	dashboardService "github.com/geoattend/geoattend-backend-go/internal/service/dashboard"
	employeeService "github.com/geoattend/geoattend-backend-go/internal/service/employee"
	"github.com/geoattend/geoattend-backend-go/internal/service/file"
	reportService "github.com/geoattend/geoattend-backend-go/internal/service/report"
	settingsService "github.com/geoattend/geoattend-backend-go/internal/service/settings"
	worklogService "github.com/geoattend/geoattend-backend-go/internal/service/worklog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)
	workLogRepo := postgresql.NewWorkLogRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	fileService := file.NewFileService(fileStorage)
	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	hub := sse.NewHub()
	analyzer := gemini.NewClient(cfg.Anomaly)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, fileService)
	settingsSvc := settingsService.NewSettingsService(settingsRepo)
	workLogSvc := worklogService.NewWorkLogService(
		db,
		workLogRepo,
		settingsRepo,
		employeeRepo,
		fileService,
		emailService,
		hub,
		cfg.App.Timezone,
	)
	dashboardSvc := dashboardService.NewDashboardService(workLogRepo, employeeRepo, cfg.App.Timezone)
	reportSvc := reportService.NewReportService(workLogRepo, employeeRepo)
	anomalySvc := anomalyService.NewAnomalyService(workLogRepo, analyzer)

	handlers := appHTTP.Handlers{
		Auth:      appHTTP.NewAuthHandler(authSvc, jwtService),
		Employee:  appHTTP.NewEmployeeHandler(employeeSvc),
		Settings:  appHTTP.NewSettingsHandler(settingsSvc),
		WorkLog:   appHTTP.NewWorkLogHandler(workLogSvc),
		Dashboard: appHTTP.NewDashboardHandler(dashboardSvc),
		Report:    appHTTP.NewReportHandler(reportSvc),
		Anomaly:   appHTTP.NewAnomalyHandler(anomalySvc),
		Events:    appHTTP.NewEventsHandler(hub, jwtService),
	}

	router := appHTTP.NewRouter(cfg, jwtService, handlers, cfg.Storage.BasePath)

	// Periodic heartbeat keeps idle SSE subscribers visible in the logs
	scheduler := cron.NewScheduler()
	scheduler.AddJob("sse-heartbeat", 5*time.Minute, func(ctx context.Context) error {
		hub.Broadcast(sse.Event{Event: "heartbeat"})
		return nil
	})
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
