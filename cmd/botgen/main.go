package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/udisondev/botloadout/internal/config"
	"github.com/udisondev/botloadout/internal/data"
	"github.com/udisondev/botloadout/internal/db"
	"github.com/udisondev/botloadout/internal/loadout"
	"github.com/udisondev/botloadout/internal/spawn"
)

const DefaultConfigPath = "config/botgen.yaml"

type options struct {
	configPath string
	role       string
	count      int
	seed       uint64
	out        string
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", DefaultConfigPath, "generator config file")
	flag.StringVar(&opts.role, "role", "assault", "bot role to generate")
	flag.IntVar(&opts.count, "count", 1, "number of bots")
	flag.Uint64Var(&opts.seed, "seed", 0, "wave seed (overrides config; 0 = config or random)")
	flag.StringVar(&opts.out, "out", "-", "output file, - for stdout")
	flag.Parse()

	if p := os.Getenv("BOTGEN_CONFIG"); p != "" && opts.configPath == DefaultConfigPath {
		opts.configPath = p
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx, opts); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options) error {
	cfg, err := config.LoadGenerator(opts.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// stdout is reserved for the generated loadouts
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	slog.Info("botgen starting",
		"source", cfg.Source,
		"workers", cfg.Workers,
		"log_level", cfg.LogLevel)

	catalog, roles, closeSource, err := openSource(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeSource()

	for _, issue := range catalog.Validate() {
		slog.Warn("catalog reference", "issue", issue.String())
	}

	gen := loadout.NewGenerator(catalog,
		loadout.WithLogger(slog.Default()),
		loadout.WithMaxModDepth(cfg.MaxModDepth))
	mgr := spawn.NewManager(gen, roles, cfg.Workers, cfg.MaxWaveSize)

	seed := opts.seed
	if seed == 0 {
		seed = cfg.Seed
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	start := time.Now()
	results, err := mgr.GenerateWave(ctx, spawn.Wave{Role: opts.role, Count: opts.count, Seed: seed})
	if err != nil {
		return fmt.Errorf("generating wave: %w", err)
	}

	slog.Info("generation finished",
		"bots", mgr.Generated(),
		"issues", mgr.Issues(),
		"seed", seed,
		"elapsed", time.Since(start))

	return writeResults(opts.out, results)
}

// openSource loads the catalog and returns the role repository of the configured source.
func openSource(ctx context.Context, cfg config.Generator) (*data.Catalog, spawn.RoleRepository, func(), error) {
	switch cfg.Source {
	case config.SourcePostgres:
		dsn := cfg.Database.DSN()
		if _, err := db.RunMigrations(ctx, dsn); err != nil {
			return nil, nil, nil, fmt.Errorf("running migrations: %w", err)
		}
		database, err := db.New(ctx, dsn)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("connecting to database: %w", err)
		}
		repo := db.NewCatalogRepository(database.Pool())
		catalog, err := repo.LoadCatalog(ctx)
		if err != nil {
			database.Close()
			return nil, nil, nil, fmt.Errorf("loading catalog: %w", err)
		}
		slog.Info("catalog loaded from database", "templates", catalog.Len())
		return catalog, repo, database.Close, nil

	default:
		catalog, err := data.LoadCatalogFile(cfg.CatalogPath)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("loading catalog: %w", err)
		}
		roles, err := data.LoadRolesDir(cfg.RolesDir)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("loading roles: %w", err)
		}
		return catalog, spawn.NewDataRoleRepo(roles), func() {}, nil
	}
}

func writeResults(path string, results []*loadout.Result) error {
	var w io.Writer = os.Stdout
	if path != "-" && path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating output %s: %w", path, err)
		}
		defer f.Close()
		w = f
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(struct {
		Bots []*loadout.Result `json:"bots"`
	}{Bots: results}); err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}
	return nil
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
