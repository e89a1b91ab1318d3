package main

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/cmlabs-hris/hris-attendance-go/internal/config"
	"github.com/cmlabs-hris/hris-attendance-go/internal/fixtures"
	"github.com/cmlabs-hris/hris-attendance-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-attendance-go/internal/repository/postgresql"
	"github.com/cmlabs-hris/hris-attendance-go/migrations"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Error loading config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{MaxConns: 2})
	if err != nil {
		slog.Error("Error connecting to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(ctx, db, migrations.FS); err != nil {
		slog.Error("Error applying migrations", "error", err)
		os.Exit(1)
	}

	var seeded *fixtures.SeededData
	err = postgresql.NewTxManager(db).WithinTx(ctx, func(txCtx context.Context) error {
		seeded, err = fixtures.Seed(txCtx,
			postgresql.NewDepartmentRepository(db),
			postgresql.NewUserRepository(db),
			fixtures.AdminAccount{
				Name:       cfg.Seed.AdminName,
				Email:      strings.ToLower(strings.TrimSpace(cfg.Seed.AdminEmail)),
				Password:   cfg.Seed.AdminPassword,
				Department: cfg.Seed.AdminDepartment,
			},
		)
		return err
	})
	if err != nil {
		slog.Error("Error seeding database", "error", err)
		os.Exit(1)
	}

	slog.Info("Seed complete",
		"departments", len(seeded.DepartmentIDs),
		"admin_id", seeded.AdminID,
		"admin_created", seeded.AdminCreated,
	)
}
