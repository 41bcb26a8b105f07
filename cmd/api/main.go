package main

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hiring-pipeline-api/internal/config"
	"github.com/hiring-pipeline-api/internal/handler"
	"github.com/hiring-pipeline-api/internal/importer"
	"github.com/hiring-pipeline-api/internal/report"
	"github.com/hiring-pipeline-api/internal/repository"
	"github.com/hiring-pipeline-api/internal/service"
	"github.com/pressly/goose/v3"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

//go:embed migrations
var embedMigrations embed.FS

func main() {
	// Инициализация логгера
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Загрузка конфигурации
	cfg := config.Load()

	// Подключение к БД
	db, err := connectDB(cfg.Database)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("failed to get sql.DB", slog.Any("error", err))
		os.Exit(1)
	}
	defer sqlDB.Close()

	// Запуск миграций
	if err := runMigrations(sqlDB, cfg.Database.Driver); err != nil {
		logger.Error("failed to run migrations", slog.Any("error", err))
		os.Exit(1)
	}

	// Инициализация репозиториев
	jobRepo := repository.NewJobRepository(db)
	interviewerRepo := repository.NewInterviewerRepository(db)
	classRepo := repository.NewClassRepository(db)
	candidateRepo := repository.NewCandidateRepository(db)
	metricsRepo := repository.NewMetricsRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// Инициализация сервисов
	jobService := service.NewJobService(jobRepo)
	interviewerService := service.NewInterviewerService(interviewerRepo)
	classService := service.NewClassService(classRepo)
	candidateService := service.NewCandidateService(candidateRepo, jobRepo, classRepo, interviewerRepo)
	metricsService := service.NewMetricsService(metricsRepo)
	snapshotWriter := report.NewSnapshotWriter(cfg.Export.Dir)
	reportService := service.NewReportService(reportRepo, candidateRepo, metricsService, snapshotWriter)

	csvImporter := importer.New(metricsService)

	// Инициализация хендлеров
	jobHandler := handler.NewJobHandler(jobService, logger)
	interviewerHandler := handler.NewInterviewerHandler(interviewerService, logger)
	classHandler := handler.NewClassHandler(classService, logger)
	candidateHandler := handler.NewCandidateHandler(candidateService, logger)
	metricsHandler := handler.NewMetricsHandler(metricsService, csvImporter, logger)
	reportHandler := handler.NewReportHandler(reportService, logger)

	// Настройка роутера
	router := handler.NewRouter(jobHandler, interviewerHandler, classHandler, candidateHandler, metricsHandler, reportHandler, logger)
	httpHandler := router.Setup()

	// Настройка HTTP сервера
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan bool)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info("server is shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("could not gracefully shutdown the server", slog.Any("error", err))
		}
		close(done)
	}()

	logger.Info("server is starting", slog.String("port", cfg.Server.Port), slog.String("driver", cfg.Database.Driver))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("could not listen on port", slog.String("port", cfg.Server.Port), slog.Any("error", err))
		os.Exit(1)
	}

	<-done
	logger.Info("server stopped")
}

func connectDB(cfg config.DatabaseConfig) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	}

	if cfg.Driver == "sqlite" {
		return gorm.Open(sqlite.Open(cfg.SQLiteDSN()), gormCfg)
	}

	var db *gorm.DB
	var err error

	for i := 0; i < 30; i++ {
		db, err = gorm.Open(postgres.Open(cfg.DSN()), gormCfg)
		if err == nil {
			sqlDB, _ := db.DB()
			if sqlDB.Ping() == nil {
				return db, nil
			}
		}
		time.Sleep(time.Second)
	}

	return nil, fmt.Errorf("failed to connect to database after 30 attempts: %w", err)
}

func runMigrations(db *sql.DB, driver string) error {
	goose.SetBaseFS(embedMigrations)

	dialect := "postgres"
	if driver == "sqlite" {
		dialect = "sqlite3"
	}
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	if err := goose.Up(db, "migrations/"+driver); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
