package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/handlers"
	infraRepo "github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/logger"
	"github.com/BruksfildServices01/salon-scheduler/internal/metrics"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
	ucSchedule "github.com/BruksfildServices01/salon-scheduler/internal/usecase/schedule"
)

// Deps are the process-wide singletons built in main. Cache, Audit, Metrics,
// Gatherer and Clock are optional.
type Deps struct {
	DB     *gorm.DB
	Config *config.Config
	Log    *zap.Logger

	Cache    domain.SlotCache
	Audit    *audit.Dispatcher
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
	Clock    timezone.Clock
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config
	log := logger.OrNop(d.Log)

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Metrics(d.Metrics))
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	// ======================================================
	// INFRA
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(d.DB)
	resolver := ucAppointment.NewResolver(appointmentRepo, d.Clock)

	// ======================================================
	// USE CASES: APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		d.Clock,
		d.Audit,
		d.Cache,
		d.Metrics,
		log,
	)

	assignAnyUC := ucAppointment.NewAssignAnyBarber(
		appointmentRepo,
		resolver,
		d.Metrics,
		log,
		cfg.ScanConcurrency,
	)

	scheduleAppointmentUC := ucAppointment.NewScheduleAppointment(
		appointmentRepo,
		resolver,
		assignAnyUC,
		createAppointmentUC,
	)

	getAvailabilityUC := ucAppointment.NewGetAvailability(
		appointmentRepo,
		resolver,
		d.Clock,
		d.Cache,
		d.Metrics,
		log,
	)

	walkInSearchUC := ucAppointment.NewWalkInSearch(
		appointmentRepo,
		resolver,
		d.Clock,
		d.Metrics,
		log,
		cfg.ScanConcurrency,
	)

	createWalkInUC := ucAppointment.NewCreateWalkIn(
		appointmentRepo,
		resolver,
		walkInSearchUC,
		createAppointmentUC,
		d.Clock,
	)

	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(
		appointmentRepo,
		d.Audit,
		d.Cache,
		log,
	)

	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)

	// ======================================================
	// USE CASES: SCHEDULE
	// ======================================================
	workingHoursUC := ucSchedule.NewWorkingHours(appointmentRepo, d.Audit, d.Cache, log)
	blockedTimeUC := ucSchedule.NewBlockedTime(appointmentRepo, d.Audit, d.Cache, log)

	// ======================================================
	// HANDLERS
	// ======================================================
	availabilityHandler := handlers.NewAvailabilityHandler(getAvailabilityUC)
	appointmentHandler := handlers.NewAppointmentHandler(
		scheduleAppointmentUC,
		deleteAppointmentUC,
		listAppointmentsUC,
	)
	walkInHandler := handlers.NewWalkInHandler(walkInSearchUC, createWalkInUC)
	workingHoursHandler := handlers.NewWorkingHoursHandler(workingHoursUC)
	blockedTimeHandler := handlers.NewBlockedTimeHandler(blockedTimeUC)
	meHandler := handlers.NewMeHandler(appointmentRepo)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.DB)

	// ======================================================
	// OPS
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if d.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	}

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/availability", availabilityHandler.Get)
		api.GET("/walkin/slots", walkInHandler.Slots)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg.JWTSecret))
		{
			secured.GET("/me", meHandler.GetMe)

			writes := secured.Group("/")
			writes.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
			{
				writes.POST("/appointments", appointmentHandler.Create)
				writes.DELETE("/appointments/:id", appointmentHandler.Delete)
				writes.POST("/walkin", walkInHandler.Create)
			}

			// ------------------------------
			// STAFF
			// ------------------------------
			staff := secured.Group("/")
			staff.Use(middleware.RequireStaff())
			{
				staff.GET("/me/appointments", appointmentHandler.ListByDate)
				staff.GET("/me/appointments/month", appointmentHandler.ListByMonth)

				staff.GET("/me/working-hours", workingHoursHandler.Get)
				staff.PUT("/me/working-hours", workingHoursHandler.Update)

				staff.GET("/me/blocked-times", blockedTimeHandler.List)
				staff.POST("/me/blocked-times", blockedTimeHandler.Create)
				staff.DELETE("/me/blocked-times/:id", blockedTimeHandler.Delete)

				staff.GET("/me/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
