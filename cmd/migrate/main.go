// Command migrate applies the SQL migrations under migrations/ to the
// database named by the connection environment variables.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"ariga.io/atlas-go-sdk/atlasexec"

	"hotelier/internal/pkg/config"
)

func main() {
	var (
		dir     = flag.String("dir", "file://migrations?format=golang-migrate", "migration directory URL")
		dryRun  = flag.Bool("dry-run", false, "print pending migrations without applying them")
		baseDir = flag.String("workdir", ".", "working directory for the atlas client")
	)
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	client, err := atlasexec.NewClient(*baseDir, "atlas")
	if err != nil {
		slog.Error("failed to initialize atlas client", "error", err)
		os.Exit(1)
	}

	url := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		cfg.DB.User, cfg.DB.Password, cfg.DB.Host, cfg.DB.Port, cfg.DB.DBName, cfg.DB.SSLMode)

	ctx := context.Background()

	if *dryRun {
		status, err := client.MigrateStatus(ctx, &atlasexec.MigrateStatusParams{
			URL:    url,
			DirURL: *dir,
		})
		if err != nil {
			slog.Error("failed to inspect migration status", "error", err)
			os.Exit(1)
		}
		slog.Info("migration status", "current", status.Current, "next", status.Next, "pending", len(status.Pending))
		return
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    url,
		DirURL: *dir,
	})
	if err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	slog.Info("migrations applied", "target", res.Target, "applied", len(res.Applied))
}
