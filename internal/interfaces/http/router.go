package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/progress-api/internal/application/usecase"
	"github.com/jhoicas/progress-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ServiceName   string
	DB            Pinger
	Cache         Pinger // nil cuando se usa la caché en memoria
	DashboardUC   *usecase.DashboardUseCase
	CatalogUC     *usecase.CatalogUseCase
	StructureUC   *usecase.StructureUseCase
	UseCasesUC    *usecase.UseCasesUseCase
	TechnicalFnUC *usecase.TechnicalFunctionUseCase
	ReportUC      *usecase.ReportUseCase
	Log           *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	app.Use(RequestID(), RequestLogger(log))

	health := NewHealthHandler(deps.ServiceName, deps.DB, deps.Cache)
	app.Get("/health", health.Health)
	app.Get("/health/db", health.Database)
	app.Get("/health/cache", health.Cache)

	api := app.Group("/api")

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, log)
	api.Get("/dashboard/stats", dashboardHandler.GetStats)

	// Catálogos
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	api.Get("/domains", catalogHandler.ListDomains)
	api.Get("/features", catalogHandler.ListFeatures)
	api.Get("/product-functions", catalogHandler.ListProductFunctions)

	// Estructura y edición de PFs
	structureHandler := NewStructureHandler(deps.StructureUC)
	api.Get("/structure", structureHandler.List)
	api.Patch("/product-functions/:id", structureHandler.UpdateProductFunction)

	// Technical functions
	tfHandler := NewTechnicalFunctionHandler(deps.TechnicalFnUC)
	tfs := api.Group("/technical-functions")
	tfs.Patch("/:id/progress", tfHandler.UpdateProgress)
	tfs.Patch("/:id/parent", tfHandler.UpdateParent)

	// Casos de uso ("/jump" antes de "/:id")
	useCaseHandler := NewUseCaseHandler(deps.UseCasesUC)
	useCases := api.Group("/use-cases")
	useCases.Get("/", useCaseHandler.List)
	useCases.Get("/jump", useCaseHandler.Jump)
	useCases.Get("/:id", useCaseHandler.GetByID)
	useCases.Get("/:id/technical-functions", useCaseHandler.ListTechnicalFunctions)
	useCases.Post("/:id/technical-functions", useCaseHandler.LinkTechnicalFunction)
	useCases.Delete("/:id/technical-functions/:tfId", useCaseHandler.UnlinkTechnicalFunction)
	useCases.Get("/:id/available-technical-functions", useCaseHandler.AvailableTechnicalFunctions)

	// Reportes
	if deps.ReportUC != nil {
		reportHandler := NewReportHandler(deps.ReportUC)
		api.Get("/reports/use-cases.pdf", reportHandler.UseCasesPDF)
	}
}
