package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/ozkanv/teknopark-api/internal/application/allocation"
	appaudit "github.com/ozkanv/teknopark-api/internal/application/audit"
	"github.com/ozkanv/teknopark-api/internal/application/auth"
	"github.com/ozkanv/teknopark-api/internal/application/notify"
	"github.com/ozkanv/teknopark-api/internal/application/rollback"
	"github.com/ozkanv/teknopark-api/internal/application/usecase"
	"github.com/ozkanv/teknopark-api/internal/infrastructure/excel"
	"github.com/ozkanv/teknopark-api/internal/infrastructure/postgres"
	"github.com/ozkanv/teknopark-api/internal/infrastructure/redisbus"
	httpRouter "github.com/ozkanv/teknopark-api/internal/interfaces/http"
	"github.com/ozkanv/teknopark-api/pkg/config"
	"github.com/ozkanv/teknopark-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	campusRepo := postgres.NewCampusRepository(pool)
	blockRepo := postgres.NewBlockRepository(pool)
	unitRepo := postgres.NewUnitRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	leaseRepo := postgres.NewLeaseRepository(pool)
	auditRepo := postgres.NewAuditLogRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Bus de cambios: si Redis no está disponible se arranca con Noop;
	// el fan-out es best-effort y no condiciona el servicio
	var notifier notify.Notifier
	redisNotifier, err := redisbus.NewNotifier(ctx, cfg.Redis, log)
	if err != nil {
		log.Warn().Err(err).Msg("Redis no disponible; notificaciones de cambio desactivadas")
		notifier = notify.Noop{}
	} else {
		notifier = redisNotifier
		defer func() { _ = redisNotifier.Close() }()
	}

	rollbackWindow := time.Duration(cfg.Audit.RollbackWindowHours) * time.Hour

	campusUC := usecase.NewCampusUseCase(campusRepo, blockRepo, unitRepo, txRunner, notifier)
	blockUC := usecase.NewBlockUseCase(blockRepo, campusRepo, unitRepo, txRunner, notifier)
	companyUC := usecase.NewCompanyUseCase(companyRepo, leaseRepo, unitRepo, txRunner, notifier)
	leaseUC := usecase.NewLeaseUseCase(leaseRepo, companyRepo, unitRepo, txRunner, notifier)
	reportUC := usecase.NewReportUseCase(campusRepo, blockRepo, unitRepo, companyRepo, excel.NewExporter())
	allocationUC := allocation.NewAllocationUseCase(txRunner, blockRepo, companyRepo, unitRepo, leaseRepo, notifier)
	auditUC := appaudit.NewAuditUseCase(auditRepo, cfg.Audit.PageSize, rollbackWindow)
	reversalSvc := rollback.NewReversalService(txRunner, blockRepo, unitRepo, leaseRepo)
	coordinator := rollback.NewCoordinator(reversalSvc, auditRepo, notifier, rollbackWindow)
	authUC := auth.NewAuthUseCase(userRepo, auditRepo, cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Teknopark API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		CampusUC:     campusUC,
		BlockUC:      blockUC,
		CompanyUC:    companyUC,
		LeaseUC:      leaseUC,
		ReportUC:     reportUC,
		AllocationUC: allocationUC,
		AuditUC:      auditUC,
		Coordinator:  coordinator,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
