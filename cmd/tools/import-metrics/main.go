// Утилита разовой загрузки исторических показателей из CSV.
// База данных должна быть уже инициализирована сервером API.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hiring-pipeline-api/internal/config"
	"github.com/hiring-pipeline-api/internal/importer"
	"github.com/hiring-pipeline-api/internal/repository"
	"github.com/hiring-pipeline-api/internal/service"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	file := flag.String("file", "", "path to the CSV file with daily metrics")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	if *file == "" {
		fmt.Fprintln(os.Stderr, "usage: import-metrics -file <metrics.csv>")
		os.Exit(2)
	}

	cfg := config.Load()

	db, err := openDB(cfg.Database)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}

	f, err := os.Open(*file)
	if err != nil {
		logger.Error("failed to open file", slog.String("file", *file), slog.Any("error", err))
		os.Exit(1)
	}
	defer f.Close()

	metricsService := service.NewMetricsService(repository.NewMetricsRepository(db))
	result, err := importer.New(metricsService).ImportCSV(context.Background(), f)
	if err != nil {
		logger.Error("import failed", slog.Any("error", err))
		os.Exit(1)
	}

	for _, e := range result.Errors {
		logger.Warn("row skipped", slog.String("reason", e))
	}
	logger.Info("import complete",
		slog.Int("imported_days", result.ImportedDays),
		slog.Int("skipped_rows", result.SkippedRows),
	)
}

func openDB(cfg config.DatabaseConfig) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	}

	if cfg.Driver == "sqlite" {
		return gorm.Open(sqlite.Open(cfg.SQLiteDSN()), gormCfg)
	}
	return gorm.Open(postgres.Open(cfg.DSN()), gormCfg)
}
