package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/nexhr/attendance-backend-go/internal/config"
	appHTTP "github.com/nexhr/attendance-backend-go/internal/handler/http"
	"github.com/nexhr/attendance-backend-go/internal/pkg/clock"
	"github.com/nexhr/attendance-backend-go/internal/pkg/database"
	"github.com/nexhr/attendance-backend-go/internal/pkg/email"
	"github.com/nexhr/attendance-backend-go/internal/pkg/jwt"
	"github.com/nexhr/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/nexhr/attendance-backend-go/internal/service/attendance"
	authService "github.com/nexhr/attendance-backend-go/internal/service/auth"
	employeeService "github.com/nexhr/attendance-backend-go/internal/service/employee"
	"github.com/nexhr/attendance-backend-go/internal/service/notification"
	reportService "github.com/nexhr/attendance-backend-go/internal/service/report"
	"github.com/nexhr/attendance-backend-go/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	ctx := context.Background()
	dsn := cfg.DatabaseURL()

	if err := database.Migrate(ctx, dsn, migrations.FS); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	location := cfg.Location()
	systemClock := clock.System()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	reportRepo := postgresql.NewReportRepository(db)
	txManager := postgresql.NewTxManager(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}
	dispatcher := notification.NewEmailDispatcher(emailService, location)

	authSvc := authService.NewAuthService(employeeRepo, jwtService, emailService, systemClock, cfg.App.BaseURL)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, attendanceRepo, txManager, systemClock, location)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, txManager, dispatcher, systemClock, location)
	reportSvc := reportService.NewReportService(reportRepo, location)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(cfg, jwtService, authHandler, employeeHandler, attendanceHandler, reportHandler)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal(err)
	}
}
