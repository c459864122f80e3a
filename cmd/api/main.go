package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/headuck/gophonelite/internal/auth"
	"github.com/headuck/gophonelite/internal/email"
	apphttp "github.com/headuck/gophonelite/internal/http"
	"github.com/headuck/gophonelite/internal/leads"
	"github.com/headuck/gophonelite/internal/notification"
	"github.com/headuck/gophonelite/internal/phonenumberapi"
	"github.com/headuck/gophonelite/internal/whatsapp"
	"github.com/headuck/gophonelite/phonenumber"
	"github.com/headuck/gophonelite/platform/callingcodes"
	"github.com/headuck/gophonelite/platform/config"
	"github.com/headuck/gophonelite/platform/db"
	"github.com/headuck/gophonelite/platform/logger"
	"github.com/headuck/gophonelite/platform/phone"
	"github.com/headuck/gophonelite/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure layer
	// ========================================================================

	if err := withRetry(ctx, log, "database migrations", 5, 2*time.Second, func() error {
		return db.RunMigrations(ctx, cfg, "migrations")
	}); err != nil {
		log.Error("failed to run database migrations", "error", err)
		panic("failed to run database migrations: " + err.Error())
	}
	log.Info("database migrations complete")

	var pool *pgxpool.Pool
	if err := withRetry(ctx, log, "database connection", 5, 2*time.Second, func() error {
		p, err := db.NewPool(ctx, cfg)
		if err != nil {
			return err
		}
		pool = p
		return nil
	}); err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()
	log.Info("database connection established")

	engine, err := loadEngine(cfg, log)
	if err != nil {
		log.Error("failed to initialize phonenumber engine", "error", err)
		panic("failed to initialize phonenumber engine: " + err.Error())
	}
	phone.Init(engine)
	log.Info("phonenumber engine initialized", "regions", len(engine.GetSupportedRegions()))

	val := validator.New()

	emailSender := email.NewSender(cfg)
	whatsappClient := whatsapp.NewClient(cfg, cfg, log)
	notifier := notification.New(whatsappClient, emailSender, log)

	// ========================================================================
	// Domain modules (composition root)
	// ========================================================================

	authModule := auth.NewModule(cfg)
	numbersModule := phonenumberapi.NewModule(engine, val)
	leadsModule := leads.NewModule(pool, notifier)

	whatsappWorker := whatsapp.NewWorker(whatsappClient, cfg, cfg, log)
	if whatsappWorker != nil {
		go whatsappWorker.Run(ctx)
	}

	// ========================================================================
	// HTTP layer
	// ========================================================================

	app := &apphttp.App{
		Config: cfg,
		Logger: log,
		Health: poolHealthChecker{pool: pool},
		Modules: []apphttp.Module{
			authModule,
			numbersModule,
			leadsModule,
		},
	}

	router := apphttp.NewRouter(app)

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- router.Run(cfg.HTTPAddr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
	case err := <-srvErr:
		if err != nil {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}

	if whatsappClient != nil {
		_ = whatsappClient.Close()
	}
}

// poolHealthChecker adapts a pgxpool.Pool to apphttp.HealthChecker.
type poolHealthChecker struct {
	pool *pgxpool.Pool
}

func (h poolHealthChecker) Ping(ctx context.Context) error {
	return h.pool.Ping(ctx)
}

// loadEngine builds the phonenumber engine from the externally supplied
// metadata blob and calling-code table. Both files are generated outside
// this repository, the same way upstream libphonenumber compiles its
// metadata resource from ITU data rather than hand-authoring it.
func loadEngine(cfg config.EngineConfig, log *logger.Logger) (*phonenumber.Util, error) {
	callingCodeTable, err := callingcodes.Load(cfg.GetCallingCodeTablePath())
	if err != nil {
		return nil, fmt.Errorf("loading calling-code table: %w", err)
	}

	metadataFile, err := os.Open(cfg.GetPhoneMetadataPath())
	if err != nil {
		return nil, fmt.Errorf("opening metadata file: %w", err)
	}
	defer metadataFile.Close()

	return phonenumber.NewWithLogger(metadataFile, callingCodeTable, log.Logger), nil
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return errors.New(name + ": " + lastErr.Error())
}
