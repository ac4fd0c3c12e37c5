package main

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"salary_ledger/config"
	"salary_ledger/handlers"
	"salary_ledger/middleware"
	"salary_ledger/services"
	"salary_ledger/types"
	"salary_ledger/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newApp(cfg *config.Config, db *gorm.DB) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "salary-ledger",
		ErrorHandler: errorHandler,
	})

	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	// the access log wraps recover so a panicking request is still logged
	app.Use(middleware.RequestLogger())
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "*",
	}))
	app.Use(middleware.ResolveTenant(middleware.TenantConfig{
		MultiTenant: cfg.MultiTenant,
		Header:      cfg.TenantHeader,
		Default:     cfg.DefaultTenant,
	}))

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(types.StatusResponse{Status: types.StatusOK})
	})

	h := handlers.NewHandler(services.NewSettingsStore(db), services.NewLedger(db), cfg.MultiTenant)
	h.RegisterRoutes(app)

	// the front-end build is optional
	if info, err := os.Stat(cfg.StaticDir); err == nil && info.IsDir() {
		app.Static("/", cfg.StaticDir, fiber.Static{Index: "index.html"})
	}
	return app
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var ferr *fiber.Error
	if errors.As(err, &ferr) {
		code = ferr.Code
	}
	if code >= fiber.StatusInternalServerError {
		utils.Logger.Error("Unhandled error", zap.String("path", c.Path()), zap.Error(err))
		return c.Status(code).JSON(types.ErrorResponse{Detail: types.DetailUnexpected})
	}
	return c.Status(code).JSON(types.ErrorResponse{Detail: err.Error()})
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}
	if err := utils.InitLogger(cfg.LogLevel); err != nil {
		log.Fatal(err)
	}
	defer utils.SyncLogger()

	db, err := config.OpenDatabase(cfg.DBPath)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer func() {
		if err := config.CloseDatabase(db); err != nil {
			utils.Logger.Error("Failed to close database", zap.Error(err))
		}
	}()

	app := newApp(cfg, db)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		utils.Logger.Info("Shutting down")
		if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout); err != nil {
			utils.Logger.Error("Shutdown failed", zap.Error(err))
		}
	}()

	utils.Logger.Info("Server starting",
		zap.String("addr", cfg.Addr()),
		zap.String("db", cfg.DBPath),
		zap.Bool("multi_tenant", cfg.MultiTenant))
	if err := app.Listen(cfg.Addr()); err != nil {
		utils.Logger.Error("Server stopped", zap.Error(err))
	}
}
