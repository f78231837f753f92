package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/peoplecore/hrms-backend-go/internal/config"
	appHTTP "github.com/peoplecore/hrms-backend-go/internal/handler/http"
	"github.com/peoplecore/hrms-backend-go/internal/pkg/database"
	"github.com/peoplecore/hrms-backend-go/internal/pkg/gemini"
	"github.com/peoplecore/hrms-backend-go/internal/pkg/jwt"
	"github.com/peoplecore/hrms-backend-go/internal/repository/postgresql"
	aiService "github.com/peoplecore/hrms-backend-go/internal/service/ai"
	attendanceService "github.com/peoplecore/hrms-backend-go/internal/service/attendance"
	authService "github.com/peoplecore/hrms-backend-go/internal/service/auth"
	employeeService "github.com/peoplecore/hrms-backend-go/internal/service/employee"
	payrollService "github.com/peoplecore/hrms-backend-go/internal/service/payroll"
	performanceService "github.com/peoplecore/hrms-backend-go/internal/service/performance"
	userService "github.com/peoplecore/hrms-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	reviewRepo := postgresql.NewReviewRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	geminiClient := gemini.NewClient(cfg.AI.APIKey, cfg.AI.BaseURL, cfg.AI.Model)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	userSvc := userService.NewUserService(userRepo)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, userRepo, payrollRepo, reviewRepo, attendanceRepo)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, employeeRepo)
	performanceSvc := performanceService.NewPerformanceService(reviewRepo, employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	aiSvc := aiService.NewAIService(geminiClient, reviewRepo)

	router := appHTTP.NewRouter(appHTTP.RouterDeps{
		Config:      cfg,
		JWTService:  jwtService,
		UserRepo:    userRepo,
		Auth:        appHTTP.NewAuthHandler(authSvc),
		User:        appHTTP.NewUserHandler(userSvc),
		Employee:    appHTTP.NewEmployeeHandler(employeeSvc),
		Payroll:     appHTTP.NewPayrollHandler(payrollSvc),
		Performance: appHTTP.NewPerformanceHandler(performanceSvc),
		Attendance:  appHTTP.NewAttendanceHandler(attendanceSvc),
		AI:          appHTTP.NewAIHandler(aiSvc),
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}
