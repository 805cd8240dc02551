package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/nikgolev/TicketGate/internal/auditor"
	"github.com/nikgolev/TicketGate/internal/auth"
	"github.com/nikgolev/TicketGate/internal/cache"
	"github.com/nikgolev/TicketGate/internal/config"
	"github.com/nikgolev/TicketGate/internal/domain"
	"github.com/nikgolev/TicketGate/internal/handler"
	"github.com/nikgolev/TicketGate/internal/middleware"
	"github.com/nikgolev/TicketGate/internal/notification"
	"github.com/nikgolev/TicketGate/internal/repository"
	"github.com/nikgolev/TicketGate/internal/router"
	"github.com/nikgolev/TicketGate/internal/service"
	"github.com/nikgolev/TicketGate/internal/service/ports"
	"github.com/nikgolev/TicketGate/internal/stream"
	"github.com/pressly/goose/v3"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	eventCache *cache.EventCache
	producer   *stream.Producer
	httpServer *http.Server
	auditor    *auditor.Auditor
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"TicketGate",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initServices() error {
	eventRepo := repository.NewEventRepo(a.db)
	bookingRepo := repository.NewBookingRepo(a.db)
	userRepo := repository.NewUserRepo(a.db)
	ledger := repository.NewCapacityLedger(a.db)
	index := repository.NewActiveIndex(a.db)

	notifier, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	tokens := auth.NewManager(a.cfg.Auth.JWTSecret, a.cfg.Auth.TokenTTL)

	var eventCache ports.EventCache
	if a.cfg.Redis.Addr != "" {
		c := cache.NewEventCache(a.cfg.Redis.Addr, a.cfg.Redis.Password, a.cfg.Redis.DB, a.cfg.Redis.TTL)
		if err := c.Ping(context.Background()); err != nil {
			return fmt.Errorf("pinging redis: %w", err)
		}
		a.eventCache = c
		eventCache = c
	}

	a.producer = stream.NewProducer(a.cfg.Kafka.Brokers, a.cfg.Kafka.Topic)

	eventSvc := service.NewEventService(eventRepo, bookingRepo, eventCache, a.log)
	authSvc := service.NewAuthService(userRepo, tokens)
	bookingSvc := service.NewBookingService(
		bookingRepo, eventRepo, userRepo,
		ledger, index,
		notifier, a.producer, a.log,
	)

	a.auditor = auditor.New(eventRepo, a.cfg.Auditor.Interval, a.log)

	h := handler.NewHandler(authSvc, eventSvc, bookingSvc)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.Auth(tokens),
		middleware.RequireRole(domain.RoleAdmin),
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.auditor.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.producer.Close(); err != nil {
		a.log.LogAttrs(context.Background(), logger.ErrorLevel, "close kafka producer",
			logger.String("error", err.Error()),
		)
	}

	if a.eventCache != nil {
		if err := a.eventCache.Close(); err != nil {
			a.log.LogAttrs(context.Background(), logger.ErrorLevel, "close redis client",
				logger.String("error", err.Error()),
			)
		}
	}

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
