package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ozkanv/teknopark-api/internal/application/allocation"
	appaudit "github.com/ozkanv/teknopark-api/internal/application/audit"
	"github.com/ozkanv/teknopark-api/internal/application/auth"
	"github.com/ozkanv/teknopark-api/internal/application/rollback"
	"github.com/ozkanv/teknopark-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	CampusUC     *usecase.CampusUseCase
	BlockUC      *usecase.BlockUseCase
	CompanyUC    *usecase.CompanyUseCase
	LeaseUC      *usecase.LeaseUseCase
	ReportUC     *usecase.ReportUseCase
	AllocationUC *allocation.AllocationUseCase
	AuditUC      *appaudit.AuditUseCase
	Coordinator  *rollback.Coordinator
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login público; logout requiere token)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Post("/auth/logout", authHandler.Logout)

	// Campuses
	campuses := protected.Group("/campuses")
	campusHandler := NewCampusHandler(deps.CampusUC)
	campuses.Post("/", campusHandler.Create)
	campuses.Get("/", campusHandler.List)
	campuses.Get("/:id", campusHandler.GetByID)
	campuses.Put("/:id", campusHandler.Update)
	campuses.Delete("/:id", campusHandler.Delete)

	// Blocks
	blocks := protected.Group("/blocks")
	blockHandler := NewBlockHandler(deps.BlockUC)
	blocks.Post("/", blockHandler.Create)
	blocks.Get("/", blockHandler.List)
	blocks.Get("/:id", blockHandler.GetByID)
	blocks.Put("/:id", blockHandler.Update)
	blocks.Put("/:id/floors", blockHandler.ReplaceFloors)
	blocks.Delete("/:id", blockHandler.Delete)

	// Companies (+ contrato y puntaje)
	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	leaseHandler := NewLeaseHandler(deps.LeaseUC)
	companies.Post("/", companyHandler.Register)
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", companyHandler.Update)
	companies.Delete("/:id", companyHandler.Delete)
	companies.Post("/:id/score", companyHandler.AddScoreEntry)
	companies.Get("/:id/score", companyHandler.ListScoreEntries)
	companies.Delete("/:id/score/:entryId", companyHandler.DeleteScoreEntry)
	companies.Get("/:companyId/lease", leaseHandler.GetByCompany)

	// Leases
	leases := protected.Group("/leases")
	leases.Get("/extended", leaseHandler.ListExtended)
	leases.Put("/:id/fees", leaseHandler.UpdateFees)
	leases.Put("/:id/dates", leaseHandler.UpdateDates)
	leases.Post("/:id/documents", leaseHandler.AddDocument)
	leases.Delete("/:id/documents/:index", leaseHandler.RemoveDocument)

	// Units (motor de asignación)
	units := protected.Group("/units")
	allocationHandler := NewAllocationHandler(deps.AllocationUC)
	units.Post("/", allocationHandler.Assign)
	units.Put("/:id/resize", allocationHandler.Resize)
	units.Post("/removal/confirm", allocationHandler.ConfirmRemoval)
	units.Post("/:id/removal", allocationHandler.RequestRemoval)

	// Audit + rollback
	audit := protected.Group("/audit")
	auditHandler := NewAuditHandler(deps.AuditUC, deps.Coordinator)
	audit.Get("/", auditHandler.List)
	audit.Post("/rollback/cancel", auditHandler.CancelRollback)
	audit.Post("/:id/rollback/preview", auditHandler.PreviewRollback)
	audit.Post("/:id/rollback/confirm", auditHandler.ConfirmRollback)

	// Reports
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/occupancy", reportHandler.Occupancy)
	reports.Get("/occupancy/export", reportHandler.OccupancyExport)
}
