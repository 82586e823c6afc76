// Package api builds the Fiber application serving the dashboard over HTTP.
package api

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/ortelius/command-center/graphql"
	"github.com/ortelius/command-center/internal/config"
	"github.com/ortelius/command-center/internal/exporter"
	"github.com/ortelius/command-center/internal/services"
	"github.com/ortelius/command-center/restapi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// NewFiberApp creates and configures a Fiber app with REST and GraphQL routes.
// When cfg.Metrics is set the dashboard gauges are registered on reg and served at /metrics.
// A nil reg gets a fresh registry.
func NewFiberApp(svc *services.DashboardService, cfg *config.Config, log *zap.Logger, reg *prometheus.Registry) (*fiber.App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	schema, err := graphql.CreateSchema(svc)
	if err != nil {
		return nil, fmt.Errorf("failed to create GraphQL schema: %w", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "command-center API v1.0",
		ReadTimeout:           cfg.ReadTimeout,
		DisableStartupMessage: true,
	})

	// Middleware
	app.Use(fiberrecover.New())
	app.Use(compress.New(compress.Config{Level: compress.LevelBestSpeed}))

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		AllowCredentials: true,
		AllowMethods:     "GET, POST, HEAD, OPTIONS",
	}))

	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("graphql_op", "-")
		return c.Next()
	})
	app.Use(logger.New(logger.Config{
		Format: "${time} | ${status} | ${latency} | ${method} ${path} | ${locals:requestid} | op=${locals:graphql_op}\n",
	}))

	// Health check endpoint
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	})

	if cfg.Metrics {
		exp, err := exporter.NewExporter(reg)
		if err != nil {
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
		// The dataset never changes after load, so the gauges are set once.
		if overview, err := svc.Overview(); err == nil {
			exp.Observe(overview, svc.Integrations())
		} else {
			log.Warn("Dashboard gauges left unset", zap.Error(err))
		}
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	}

	restapi.SetupRoutes(app, svc, schema, log)

	return app, nil
}
