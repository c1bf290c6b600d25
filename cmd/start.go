package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"catalog-webservice/core/loader"
	"catalog-webservice/core/logger"
	"catalog-webservice/core/middleware/auth"
	"catalog-webservice/core/middleware/rayid"
	"catalog-webservice/feature/catalog"
	"catalog-webservice/feature/integrity"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "catalog-webservice/docs/swagger"
)

// @title Catalog Web Service API
// @version 1.0
// @description Catalog product counts, configurable attributes and variations.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the catalog web service",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := bootstrap(false)
		if err != nil {
			return err
		}
		defer e.Close()
		zap.ReplaceGlobals(e.logger)
		logg := e.logger

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
			ReadTimeout:           e.cfg.Server.ReadTimeout(),
		})

		mgr := loader.NewManager(logg)
		mgr.Register(catalog.NewFeature(e.db, e.storage, e.cfg.Storage.Bucket, e.publisher, logg, e.cfg.Catalog))
		mgr.Register(integrity.NewFeature(e.storage, e.cfg.Storage.Bucket, e.cfg.Storage.Region,
			[]string{e.cfg.Catalog.ReportPrefix}, logg, e.db))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Request logging with the ray id
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 3. Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 4. Auth, disabled when no API key is configured
		if e.cfg.Server.IsProtected() {
			app.Use(auth.New(auth.Config{ApiKey: e.cfg.Server.ApiKey}))
		} else {
			logg.Warn("No API key configured, the API is unprotected")
		}

		if err := mgr.LoadAll(app); err != nil {
			return fmt.Errorf("failed to load features: %w", err)
		}

		go func() {
			logg.Info("Starting server", zap.String("port", e.cfg.Server.Port))
			if err := app.Listen(":" + e.cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
