// cmd/import_catalog/main.go
//
// XLSX のカタログ (コース・レッスン・単語) をデータベースに取り込みます。
//
//	go run ./cmd/import_catalog --file hsk1.xlsx --sheet Sheet1
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"vocab_mastery/internal/catalog"
	"vocab_mastery/internal/config"
	"vocab_mastery/internal/logging"
	"vocab_mastery/internal/middleware"
	"vocab_mastery/internal/repository"

	"github.com/spf13/pflag"
)

func main() {
	file := pflag.StringP("file", "f", "", "取り込む XLSX ファイルのパス")
	sheet := pflag.StringP("sheet", "s", catalog.DefaultSheetName, "シート名")
	configPath := pflag.String("config", "../configs", "config.yaml のあるディレクトリ")
	migrate := pflag.Bool("migrate", false, "取り込み前にテーブルを作成・更新する")
	pflag.Parse()

	if *file == "" {
		pflag.Usage()
		os.Exit(2)
	}

	if err := config.LoadConfig(*configPath); err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	cfg := &config.Cfg

	logger := logging.New(os.Stderr, cfg.Log.Level, os.Getenv("APP_ENV"))
	slog.SetDefault(logger)

	db, err := repository.NewDB(cfg.Database, logger)
	if err != nil {
		logger.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	if *migrate || cfg.Database.AutoMigrate {
		if err := repository.AutoMigrate(db); err != nil {
			logger.Error("Error migrating database", slog.Any("error", err))
			os.Exit(1)
		}
	}

	f, err := os.Open(*file)
	if err != nil {
		logger.Error("Error opening catalog file", slog.String("file", *file), slog.Any("error", err))
		os.Exit(1)
	}
	defer f.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()
	ctx = middleware.WithLogger(ctx, logger.With("file", *file))

	importer := catalog.NewImporter(db, repository.NewGormCatalogRepository())
	result, err := importer.Import(ctx, f, *sheet)
	if err != nil {
		logger.Error("Catalog import failed", slog.Any("error", err))
		os.Exit(1)
	}

	for _, e := range result.Errors {
		logger.Warn("Row skipped", slog.String("detail", e))
	}
	logger.Info("Catalog import summary",
		slog.Int("processed", result.TotalProcessed),
		slog.Int("courses_created", result.CoursesCreated),
		slog.Int("lessons_created", result.LessonsCreated),
		slog.Int("vocabulary_created", result.Created),
		slog.Int("skipped", result.Skipped),
		slog.Int("errors", len(result.Errors)),
	)
	if len(result.Errors) > 0 {
		os.Exit(1)
	}
}
