package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	apiswagger "github.com/uqpp/uqpp-api/api/swagger"
	"github.com/uqpp/uqpp-api/internal/handler"
	"github.com/uqpp/uqpp-api/internal/middleware"
	"github.com/uqpp/uqpp-api/internal/scraper"
	"github.com/uqpp/uqpp-api/internal/service"
	"github.com/uqpp/uqpp-api/pkg/config"
	"github.com/uqpp/uqpp-api/pkg/logger"
	corsmiddleware "github.com/uqpp/uqpp-api/pkg/middleware/cors"
	reqidmiddleware "github.com/uqpp/uqpp-api/pkg/middleware/requestid"
	"github.com/uqpp/uqpp-api/pkg/storage"
)

// @title UQPP API
// @version 1.0.0
// @description Course catalogue lookup and program requirements checks
// @BasePath /api/v1
// @schemes http

func main() {
	openapiOut := flag.String("openapi", "", "write the OpenAPI document to the given file and exit")
	flag.Parse()

	if *openapiOut != "" {
		if err := os.WriteFile(*openapiOut, []byte(apiswagger.Doc()), 0o644); err != nil {
			log.Fatalf("failed to write openapi document: %v", err)
		}
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	metricsSvc := service.NewMetricsService()

	fetcher := scraper.NewFetcher(cfg.Source, metricsSvc, logr)
	courseSvc := service.NewCourseService(fetcher, scraper.NewDetailExtractor(), scraper.NewTimetableExtractor(), metricsSvc, logr)

	var programCache service.ProgramPageCache
	if cfg.Program.UseCache {
		pageCache, err := storage.NewPageCache(cfg.Program.CacheDir)
		if err != nil {
			logr.Sugar().Fatalw("failed to init program page cache", "error", err)
		}
		programCache = pageCache
	}
	programSvc := service.NewProgramService(fetcher, scraper.NewProgramExtractor(), programCache, cfg.Program, logr)
	requirementsSvc := service.NewRequirementsService(programSvc, logr)

	var exporter handler.CourseExporter
	if cfg.Export.Enabled {
		exporter = service.NewExportService(logr)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", handler.Health)
	r.GET("/ready", handler.Ready)

	if cfg.Metrics.Enabled {
		r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))
	}
	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	courseHandler := handler.NewCourseHandler(courseSvc, exporter)
	programHandler := handler.NewProgramHandler(programSvc, requirementsSvc)

	api := r.Group(cfg.APIPrefix)
	api.GET("/courses/:code", courseHandler.Get)
	api.GET("/courses/:code/export", courseHandler.Export)
	api.GET("/program/courses", programHandler.Courses)
	api.POST("/program/requirements/evaluate", programHandler.Evaluate)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
