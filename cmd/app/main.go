package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fulfillment/cmd"
	httpin "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/rediscache"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	gommonlog "github.com/labstack/gommon/log"
	"go.uber.org/zap"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	cfg, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := initLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	db, err := initDatabase(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	if err = postgres.Migrate(ctx, db); err != nil {
		logger.Fatal("Failed to migrate database", zap.Error(err))
	}

	var cache ports.IssuedInvoiceCache
	if cfg.Redis.Addr != "" {
		client, redisErr := rediscache.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if redisErr != nil {
			logger.Fatal("Failed to connect to redis", zap.Error(redisErr))
		}
		defer func() { _ = client.Close() }()
		cache = rediscache.NewIssuedInvoiceCache(client, cfg.Redis.TTL)
	} else {
		logger.Info("redis.addr is empty, issued invoice cache disabled")
	}

	app := cmd.NewCompositionRoot(cfg, db, cache, logger)

	if err = seedStaff(ctx, &app, cfg); err != nil {
		logger.Fatal("Failed to seed staff", zap.Error(err))
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		logger.Fatal("Failed to start jobs", zap.Error(err))
	}

	e, err := newEcho(&app, logger)
	if err != nil {
		logger.Fatal("Failed to build HTTP server", zap.Error(err))
	}

	go func() {
		logger.Info("Server starting", zap.Int("port", cfg.HTTP.Port))
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%d", cfg.HTTP.Port)); startErr != nil &&
			!errors.Is(startErr, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(startErr))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
	jobManager.StopAll()

	logger.Info("Server exited")
}

func newEcho(app *cmd.CompositionRoot, logger *zap.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	// Requests are logged through zap; echo's own logger only reports its
	// internal failures.
	e.Logger.SetLevel(gommonlog.ERROR)

	access := logger.With(zap.String("component", "access"))
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			access.Debug("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency))
			return nil
		},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	servers.RegisterHandlers(e, app.CreateHTTPServer())
	if err := httpin.RegisterSwagger(e); err != nil {
		return nil, err
	}
	return e, nil
}

func seedStaff(ctx context.Context, app *cmd.CompositionRoot, cfg cmd.Config) error {
	seeds, err := cfg.StaffSeeds()
	if err != nil {
		return err
	}

	handler := app.CreateUpsertStaffCommandHandler()
	for _, s := range seeds {
		command, cmdErr := commands.NewUpsertStaffCommand(s.Username, s.Role)
		if cmdErr != nil {
			return fmt.Errorf("staff %q: %w", s.Username, cmdErr)
		}
		if err = handler.Handle(ctx, command); err != nil {
			return fmt.Errorf("staff %q: %w", s.Username, err)
		}
	}
	return nil
}

func initLogger(cfg cmd.LogConfig) (*zap.Logger, error) {
	var zapCfg zap.Config

	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	switch cfg.Level {
	case "debug":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}

	return zapCfg.Build()
}

func gormLogLevel(level string) gormlogger.LogLevel {
	switch level {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "info":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}

func initDatabase(cfg cmd.Config) (*gorm.DB, error) {
	db, err := gorm.Open(gormpostgres.Open(cfg.DB.DSN(cfg.Timezone)), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormLogLevel(cfg.DB.LogLevel)),
		NowFunc: func() time.Time {
			return time.Now().In(cfg.Location())
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}
