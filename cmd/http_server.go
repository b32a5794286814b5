package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/alorahq/hr-portal/internal"
	"github.com/alorahq/hr-portal/internal/apps"
	appsPostgres "github.com/alorahq/hr-portal/internal/apps/postgres"
	"github.com/alorahq/hr-portal/internal/auth"
	authPostgres "github.com/alorahq/hr-portal/internal/auth/postgres"
	"github.com/alorahq/hr-portal/internal/core/events"
	"github.com/alorahq/hr-portal/internal/employee"
	employeePostgres "github.com/alorahq/hr-portal/internal/employee/postgres"
	"github.com/alorahq/hr-portal/internal/masterdata"
	masterdataPostgres "github.com/alorahq/hr-portal/internal/masterdata/postgres"
	"github.com/alorahq/hr-portal/internal/satisfaction"
	satisfactionPostgres "github.com/alorahq/hr-portal/internal/satisfaction/postgres"
	"github.com/alorahq/hr-portal/internal/transport"
	"github.com/alorahq/hr-portal/internal/transport/rest"
	"github.com/alorahq/hr-portal/pkg/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

const sessionSweepInterval = 15 * time.Minute

type Dependencies struct {
	Config       *internal.Config
	DB           *sqlx.DB
	GormDB       *gorm.DB
	Router       *chi.Mux
	Logger       *slog.Logger
	SessionStore *authPostgres.SessionStore
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	setupRoutes(deps)

	// background eviction of expired session rows
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	go sweepSessions(sweepCtx, deps.SessionStore, deps.Logger)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:              addr,
		Handler:           deps.Router,
		ReadHeaderTimeout: deps.Config.Server.ReadHeaderTimeout,
		ReadTimeout:       deps.Config.Server.ReadTimeout,
		WriteTimeout:      deps.Config.Server.WriteTimeout,
		IdleTimeout:       deps.Config.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("received signal, shutting down", "signal", sig)
		stopSweep()
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			deps.Logger.Error("database close error", "error", err)
		}
	case err := <-serverErrChan:
		stopSweep()
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("server stopped")
}

func setupRoutes(deps *Dependencies) {
	lg := deps.Logger
	baseHandler := transport.NewBaseHandler(lg)

	eventBus := events.NewEventBus(lg)
	eventBus.Subscribe(events.EventSurveySubmitted, func(ctx context.Context, event events.Event) error {
		lg.Info("survey submission recorded",
			"event_id", event.EventID(),
			"payload", event.Payload())
		return nil
	})

	authRepo := authPostgres.NewRepository(deps.GormDB)
	authService := auth.NewService(authRepo, deps.SessionStore, deps.Config.Session.TTL, deps.Config.Security.BCryptCost, lg)
	authHandler := auth.NewHandler(authService, auth.CookieConfig{
		Name:   deps.Config.Session.CookieName,
		Secure: deps.Config.Session.CookieSecure,
	}, deps.Config.Session.TTL)

	appsService := apps.NewService(appsPostgres.NewAppsRepository(deps.GormDB), lg)
	appsHandler := apps.NewHandler(baseHandler, appsService)

	employeeService := employee.NewService(employeePostgres.NewEmployeeRepository(deps.GormDB), lg)
	employeeHandler := employee.NewHandler(baseHandler, employeeService)

	masterDataService := masterdata.NewService(masterdataPostgres.NewMasterDataRepository(deps.GormDB), lg)
	masterDataHandler := masterdata.NewHandler(baseHandler, masterDataService)

	satisfactionRepo := satisfactionPostgres.NewSatisfactionRepository(deps.GormDB)
	satisfactionService := satisfaction.NewService(satisfactionRepo, masterDataService, eventBus, lg)
	satisfactionHandler := satisfaction.NewHandler(baseHandler, satisfactionService)

	rest.RegisterAllRoutes(
		deps.Router,
		deps.DB.DB,
		deps.Config.Server.OriginList(),
		authHandler,
		appsHandler,
		employeeHandler,
		masterDataHandler,
		satisfactionHandler,
		lg,
	)
}

func sweepSessions(ctx context.Context, store *authPostgres.SessionStore, lg *slog.Logger) {
	ticker := time.NewTicker(sessionSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := store.Sweep(ctx)
			if err != nil {
				lg.Error("session sweep failed", "error", err)
				continue
			}
			if removed > 0 {
				lg.Info("swept expired sessions", "removed", removed)
			}
		}
	}
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Logging.Level, config.Logging.Format)
	lg := logger.L()

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := initGorm(db)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize orm: %w", err)
	}

	return &Dependencies{
		Config:       config,
		Logger:       lg,
		DB:           db,
		GormDB:       gormDB,
		Router:       chi.NewRouter(),
		SessionStore: authPostgres.NewSessionStore(gormDB),
	}, nil
}

func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}

// initGorm shares the sqlx pool. TranslateError is required so unique
// index violations surface as gorm.ErrDuplicatedKey.
func initGorm(db *sqlx.DB) (*gorm.DB, error) {
	return gorm.Open(postgres.New(postgres.Config{
		Conn: db.DB,
	}), &gorm.Config{
		TranslateError: true,
	})
}
