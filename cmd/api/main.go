package main

import (
	"fmt"
	"net/http"

	"github.com/gestionahr/gestion-backend-go/internal/config"
	appHTTP "github.com/gestionahr/gestion-backend-go/internal/handler/http"
	"github.com/gestionahr/gestion-backend-go/internal/pkg/database"
	"github.com/gestionahr/gestion-backend-go/internal/pkg/jwt"
	"github.com/gestionahr/gestion-backend-go/internal/repository/postgresql"
	attendanceService "github.com/gestionahr/gestion-backend-go/internal/service/attendance"
	authService "github.com/gestionahr/gestion-backend-go/internal/service/auth"
	calendarService "github.com/gestionahr/gestion-backend-go/internal/service/calendar"
	employeeService "github.com/gestionahr/gestion-backend-go/internal/service/employee"
	leaveService "github.com/gestionahr/gestion-backend-go/internal/service/leave"
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

	employeeRepo := postgresql.NewEmployeeRepository(db)
	absenceRepo := postgresql.NewAbsenceRepository(db)
	ruleRepo := postgresql.NewEntitlementRuleRepository(db)
	carryOverRepo := postgresql.NewCarryOverRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	calendarSvc := calendarService.NewCalendarService(holidayRepo)
	calculator := leaveService.NewBalanceCalculator(nil)
	leaveSvc := leaveService.NewLeaveService(postgresql.NewTxManager(db), absenceRepo, ruleRepo, carryOverRepo, employeeRepo, calendarSvc, calculator)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	authSvc := authService.NewAuthService(employeeRepo, jwtSvc)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	calendarHandler := appHTTP.NewCalendarHandler(calendarSvc)

	router := appHTTP.NewRouter(
		jwtSvc,
		cfg.App.Env,
		cfg.App.AllowedOrigins,
		authHandler,
		leaveHandler,
		employeeHandler,
		attendanceHandler,
		calendarHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
