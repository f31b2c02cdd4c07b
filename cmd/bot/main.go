package main

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"phonequest/internal/config"
	"phonequest/internal/handler"
	"phonequest/internal/repository/postgres"
	"phonequest/internal/service"

	"github.com/golang-migrate/migrate/v4"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting phone quest bot")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}
	location, err := cfg.Location()
	if err != nil {
		logger.Fatal("Failed to load time zone", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully",
		zap.Int("admins", len(cfg.AdminIDs)),
		zap.String("timezone", cfg.Timezone),
	)

	// Connect to database with retries
	db, err := connectDatabase(cfg.DSN(), logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connection established")

	if err := runMigrations(db, cfg.MigrationsPath, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	phonebookRepo := postgres.NewPhonebookRepo(db)
	pauseRepo := postgres.NewPauseRepo(db)
	callRepo := postgres.NewCallLogRepo(db)
	aliasRepo := postgres.NewAliasRepo(db)

	// Initialize services
	userService := service.NewUserService(userRepo, logger)
	phonebookService := service.NewPhonebookService(phonebookRepo, logger)
	pauseService := service.NewPauseService(pauseRepo, logger)
	aliasService := service.NewAliasService(aliasRepo, logger)
	statsService := service.NewStatsService(callRepo, aliasService, location, logger)
	callService := service.NewCallService(phonebookService, pauseService, statsService)
	sessionService := service.NewSessionService(phonebookService, logger)

	if err := loadState(userService, phonebookService, pauseService, aliasService); err != nil {
		logger.Fatal("Failed to load state", zap.Error(err))
	}
	if err := userService.EnsureAdmins(cfg.AdminIDs); err != nil {
		logger.Fatal("Failed to seed admins", zap.Error(err))
	}

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c tele.Context) {
			logger.Error("Unhandled bot error", zap.Error(err))
		},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized")

	h := handler.NewHandler(bot, handler.Services{
		Users:     userService,
		Sessions:  sessionService,
		Phonebook: phonebookService,
		Calls:     callService,
		Stats:     statsService,
		Pause:     pauseService,
		Aliases:   aliasService,
	}, cfg.BroadcastConcurrency, logger)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")

	bot.Stop()

	logger.Info("Bot stopped gracefully")
}

// loadState fills the in-memory caches from the database
func loadState(
	users *service.UserService,
	phonebook *service.PhonebookService,
	pause *service.PauseService,
	aliases *service.AliasService,
) error {
	if err := users.Reload(); err != nil {
		return err
	}
	if err := phonebook.Reload(); err != nil {
		return err
	}
	if err := pause.Load(); err != nil {
		return err
	}
	return aliases.Reload()
}

// connectDatabase connects to PostgreSQL with retries
func connectDatabase(dsn string, logger *zap.Logger) (*sql.DB, error) {
	var db *sql.DB
	var err error

	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = sql.Open("postgres", dsn)
		if err != nil {
			logger.Warn("Failed to open database connection",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			time.Sleep(retryDelay)
			continue
		}

		if err = db.Ping(); err != nil {
			logger.Warn("Failed to ping database",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			db.Close()
			time.Sleep(retryDelay)
			continue
		}

		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)

		return db, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

// runMigrations applies pending migrations from sourceURL
func runMigrations(db *sql.DB, sourceURL string, logger *zap.Logger) error {
	driver, err := postgresdb.WithInstance(db, &postgresdb.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(sourceURL, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	err = m.Up()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		logger.Info("No new migrations to apply")
	case err != nil:
		return fmt.Errorf("failed to run migrations: %w", err)
	default:
		logger.Info("Migrations applied successfully")
	}
	return nil
}
