package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/Ralph-Dulla-23/CMS/api/swagger"
	"github.com/Ralph-Dulla-23/CMS/internal/handler"
	"github.com/Ralph-Dulla-23/CMS/internal/middleware"
	"github.com/Ralph-Dulla-23/CMS/internal/repository"
	"github.com/Ralph-Dulla-23/CMS/internal/service"
	"github.com/Ralph-Dulla-23/CMS/pkg/cache"
	"github.com/Ralph-Dulla-23/CMS/pkg/config"
	"github.com/Ralph-Dulla-23/CMS/pkg/database"
	"github.com/Ralph-Dulla-23/CMS/pkg/logger"
	corsmiddleware "github.com/Ralph-Dulla-23/CMS/pkg/middleware/cors"
	reqidmiddleware "github.com/Ralph-Dulla-23/CMS/pkg/middleware/requestid"
)

// @title Counseling Management API
// @version 0.1.0
// @description Intake, availability and scheduling backend for the guidance office
// @BasePath /api/v1
// @schemes http

func main() {
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

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	var cacheRepo service.CacheRepository
	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Warnw("redis unavailable, caching disabled", "error", err)
	} else {
		defer redisClient.Close()
		cacheRepo = repository.NewCacheRepository(redisClient, logr)
	}

	validate := validator.New()
	metricsSvc := service.NewMetricsService()
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Availability.CacheTTL, logr, cfg.Availability.CacheEnabled)

	availabilityRepo := repository.NewAvailabilityRepository(db)
	formRepo := repository.NewFormRepository(db)

	availabilitySvc := service.NewAvailabilityService(availabilityRepo, cacheSvc, logr)
	scheduleSvc := service.NewScheduleService(formRepo, availabilitySvc, logr)
	intakeSvc := service.NewIntakeService(formRepo, availabilitySvc, validate, logr)
	reportSvc := service.NewReportService(scheduleSvc, cfg.Exports.Enabled, logr)
	statsSvc := service.NewStatsService(formRepo, logr)

	availabilityHandler := handler.NewAvailabilityHandler(availabilitySvc)
	scheduleHandler := handler.NewScheduleHandler(scheduleSvc)
	intakeHandler := handler.NewIntakeHandler(intakeSvc, reportSvc)
	statsHandler := handler.NewStatsHandler(statsSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		api.GET("/unavailable-dates", availabilityHandler.List)
		api.POST("/unavailable-dates", availabilityHandler.Add)
		api.DELETE("/unavailable-dates", availabilityHandler.Remove)
		api.GET("/availability/check", availabilityHandler.Check)

		api.GET("/schedule/month", scheduleHandler.Month)
		api.GET("/schedule/day", scheduleHandler.Day)

		api.POST("/interview-forms", intakeHandler.Submit)
		api.GET("/interview-forms", intakeHandler.List)
		api.GET("/interview-forms/export", intakeHandler.Export)
		api.GET("/interview-forms/:id", intakeHandler.Get)
		api.PATCH("/interview-forms/:id/status", intakeHandler.UpdateStatus)

		api.GET("/stats/summary", statsHandler.Summary)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
