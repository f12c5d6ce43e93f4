package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/progress-api/docs"
	"github.com/jhoicas/progress-api/internal/application/ports"
	"github.com/jhoicas/progress-api/internal/application/usecase"
	infracache "github.com/jhoicas/progress-api/internal/infrastructure/cache"
	infrapdf "github.com/jhoicas/progress-api/internal/infrastructure/pdf"
	"github.com/jhoicas/progress-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/progress-api/internal/interfaces/http"
	"github.com/jhoicas/progress-api/pkg/config"
	"github.com/jhoicas/progress-api/pkg/logger"
)

// @title        Progress API
// @version      1.0
// @description  Tablero de progreso: Domain > Feature > ProductFunction > TechnicalFunction y casos de uso.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
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

	domainRepo := postgres.NewDomainRepository(pool)
	featureRepo := postgres.NewFeatureRepository(pool)
	pfRepo := postgres.NewProductFunctionRepository(pool)
	tfRepo := postgres.NewTechnicalFunctionRepository(pool)
	useCaseRepo := postgres.NewUseCaseRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Caché de lecturas agregadas: Redis si hay REDIS_ADDR, si no memoria del proceso.
	var store ports.Cache = infracache.NewMemoryCache()
	var cachePinger httpRouter.Pinger
	if cfg.Cache.RedisAddr != "" {
		redisCache, err := infracache.NewRedisCache(ctx, cfg.Cache)
		if err != nil {
			log.Warn().Err(err).Str("addr", cfg.Cache.RedisAddr).Msg("redis no disponible, se usa caché en memoria")
		} else {
			defer redisCache.Close()
			store = redisCache
			cachePinger = redisCache
			log.Info().Str("addr", cfg.Cache.RedisAddr).Msg("caché redis conectada")
		}
	}
	readCache := usecase.NewReadCache(store, usecase.CacheTTL{
		Stats:      cfg.Cache.StatsTTL,
		List:       cfg.Cache.ListTTL,
		Navigation: cfg.Cache.NavigationTTL,
	}, log)

	dashboardUC := usecase.NewDashboardUseCase(statsRepo, readCache)
	catalogUC := usecase.NewCatalogUseCase(domainRepo, featureRepo, pfRepo)
	structureUC := usecase.NewStructureUseCase(pfRepo, featureRepo, readCache)
	useCasesUC := usecase.NewUseCasesUseCase(useCaseRepo, tfRepo, txRunner, readCache)
	technicalFnUC := usecase.NewTechnicalFunctionUseCase(tfRepo, pfRepo, readCache)

	// PDF: reporte de progreso de casos de uso
	reportUC := usecase.NewReportUseCase(useCasesUC, infrapdf.NewMarotoReportGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	if cfg.HTTP.CORSOrigins != "" {
		app.Use(cors.New(cors.Config{
			AllowOrigins: cfg.HTTP.CORSOrigins,
			AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
			AllowHeaders: "Origin, Content-Type, Accept, " + httpRouter.HeaderRequestID,
		}))
	}

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Progress API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		ServiceName:   cfg.App.Name,
		DB:            pool,
		Cache:         cachePinger,
		DashboardUC:   dashboardUC,
		CatalogUC:     catalogUC,
		StructureUC:   structureUC,
		UseCasesUC:    useCasesUC,
		TechnicalFnUC: technicalFnUC,
		ReportUC:      reportUC,
		Log:           log,
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
