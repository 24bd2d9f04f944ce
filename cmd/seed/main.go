package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/meddent-dev/booking/backend/internal/config"
	"github.com/meddent-dev/booking/backend/internal/refdata"
	"github.com/meddent-dev/booking/backend/internal/repository"
	"github.com/meddent-dev/booking/backend/internal/seed"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var force bool
	var withStaff bool
	flag.BoolVar(&force, "force", false, "seed even when the appointments table is not empty")
	flag.BoolVar(&withStaff, "with-staff", false, "also create a demo receptionist account")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("failed to create database pool", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open does not connect, ping explicitly to fail fast
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("failed to reach database", "error", err)
		return
	}

	repo := repository.NewRepository(cfg, dbpool)

	if !force {
		count, err := repo.CountAppointments()
		if err != nil {
			logger.Error("failed to count appointments", slog.String("error", err.Error()))
			return
		}
		if count > 0 {
			logger.Info("appointments table is not empty, skipping seed", slog.Int("count", count))
			return
		}
	}

	inserted := seed.SeedDemoAppointments(repo, refdata.Default())
	logger.Info("demo appointments seeded", slog.Int("count", inserted))

	if withStaff {
		if err := seed.SeedDemoStaff(repo); err != nil {
			logger.Error("failed to create demo receptionist", slog.String("error", err.Error()))
		}
	}
}
