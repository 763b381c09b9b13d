// Command migrate applies the SQL migrations in --dir to the configured
// database through the atlas CLI.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"perks-ledger/internal/handler/middleware"
	"perks-ledger/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/spf13/pflag"
)

type options struct {
	dir      string
	dryRun   bool
	baseline string
	timeout  time.Duration
	atlasBin string
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := pflag.NewFlagSet("migrate", pflag.ContinueOnError)
	fs.StringVar(&opts.dir, "dir", "migrations", "directory holding the migration files and atlas.sum")
	fs.BoolVar(&opts.dryRun, "dry-run", false, "print pending statements without executing them")
	fs.StringVar(&opts.baseline, "baseline", "", "treat this version as already applied on a non-empty database")
	fs.DurationVar(&opts.timeout, "timeout", 2*time.Minute, "overall migration timeout")
	fs.StringVar(&opts.atlasBin, "atlas", "atlas", "path to the atlas binary")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	return opts, nil
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger := middleware.NewLogger(cfg.Log).Slog()

	ctx, cancel := context.WithTimeout(context.Background(), opts.timeout)
	defer cancel()

	if err := run(ctx, opts, cfg.DB, logger); err != nil {
		logger.Error("migration failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, db config.DBConfig, logger *slog.Logger) error {
	workdir, err := atlasexec.NewWorkingDir(
		atlasexec.WithMigrations(os.DirFS(opts.dir)),
	)
	if err != nil {
		return err
	}
	defer workdir.Close()

	client, err := atlasexec.NewClient(workdir.Path(), opts.atlasBin)
	if err != nil {
		return err
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:             db.BuildDSN(),
		DryRun:          opts.dryRun,
		BaselineVersion: opts.baseline,
	})
	if err != nil {
		return err
	}

	logger.Info("migrations applied",
		slog.String("from", res.Current),
		slog.String("to", res.Target),
		slog.Int("applied", len(res.Applied)),
		slog.Bool("dry_run", opts.dryRun))
	return nil
}
