package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/traincore/schedule-backend-go/internal/config"
	appHTTP "github.com/traincore/schedule-backend-go/internal/handler/http"
	"github.com/traincore/schedule-backend-go/internal/pkg/cron"
	"github.com/traincore/schedule-backend-go/internal/pkg/database"
	"github.com/traincore/schedule-backend-go/internal/pkg/jwt"
	"github.com/traincore/schedule-backend-go/internal/pkg/keylock"
	"github.com/traincore/schedule-backend-go/internal/repository/postgresql"
	clockService "github.com/traincore/schedule-backend-go/internal/service/clock"
	holidayService "github.com/traincore/schedule-backend-go/internal/service/holiday"
	integrityService "github.com/traincore/schedule-backend-go/internal/service/integrity"
	scheduleService "github.com/traincore/schedule-backend-go/internal/service/schedule"
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

	holidayRepo := postgresql.NewHolidayRepository(db)
	workScheduleRepo := postgresql.NewWorkScheduleRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	overtimeRepo := postgresql.NewOvertimeRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret)

	// The virtual clock and the per-employee lock map are the only pieces
	// of process-wide state; both are injected, never global.
	virtualClock := clockService.NewVirtualClock()
	employeeLocks := keylock.New()

	calendar := holidayService.NewCalendarService(holidayRepo, virtualClock)
	schedules := scheduleService.NewService(workScheduleRepo, calendar, virtualClock, employeeLocks, cfg.HR.LockWait)
	integrity := integrityService.NewService(
		virtualClock,
		employeeLocks,
		cfg.HR.LockWait,
		cfg.HR.OvertimeDailyCap,
		leaveRequestRepo,
		overtimeRepo,
		schedules,
	)

	clockHandler := appHTTP.NewClockHandler(virtualClock)
	holidayHandler := appHTTP.NewHolidayHandler(calendar)
	scheduleHandler := appHTTP.NewScheduleHandler(schedules)
	leaveHandler := appHTTP.NewLeaveHandler(integrity, jwtService)
	overtimeHandler := appHTTP.NewOvertimeHandler(integrity, jwtService)

	scheduler := cron.NewScheduler()
	pendingJobs := cron.NewPendingJobs(leaveRequestRepo, overtimeRepo, virtualClock, cfg.HR.PendingSweepAge, cfg.HR.PendingSweepInterval)
	pendingJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		jwtService,
		cfg.App.Env,
		clockHandler,
		holidayHandler,
		scheduleHandler,
		leaveHandler,
		overtimeHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Starting server on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server failed:", err)
	}
}
