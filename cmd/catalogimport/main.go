package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/udisondev/botloadout/internal/config"
	"github.com/udisondev/botloadout/internal/data"
	"github.com/udisondev/botloadout/internal/db"
)

// catalogimport loads the YAML catalog and role inventories into PostgreSQL.
func main() {
	configPath := flag.String("config", "config/botgen.yaml", "generator config file")
	catalogPath := flag.String("catalog", "", "catalog YAML (defaults to config catalog_path)")
	rolesDir := flag.String("roles", "", "roles directory (defaults to config roles_dir)")
	dryRun := flag.Bool("dry-run", false, "validate without writing")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	if err := run(context.Background(), *configPath, *catalogPath, *rolesDir, *dryRun); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath, catalogPath, rolesDir string, dryRun bool) error {
	cfg, err := config.LoadGenerator(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if catalogPath == "" {
		catalogPath = cfg.CatalogPath
	}
	if rolesDir == "" {
		rolesDir = cfg.RolesDir
	}

	catalog, err := data.LoadCatalogFile(catalogPath)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}
	roles, err := data.LoadRolesDir(rolesDir)
	if err != nil {
		return fmt.Errorf("loading roles: %w", err)
	}

	issues := catalog.Validate()
	for _, issue := range issues {
		slog.Warn("catalog reference", "issue", issue.String())
	}
	for name, role := range roles {
		if _, ok := catalog.Template(role.RootTemplate); !ok {
			return fmt.Errorf("role %s: root template %q not in catalog", name, role.RootTemplate)
		}
	}

	if dryRun {
		slog.Info("dry run, nothing written",
			"templates", catalog.Len(),
			"roles", len(roles),
			"dangling_refs", len(issues))
		return nil
	}

	dsn := cfg.Database.DSN()
	if _, err := db.RunMigrations(ctx, dsn); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	database, err := db.New(ctx, dsn)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer database.Close()

	repo := db.NewCatalogRepository(database.Pool())
	if err := repo.SaveTemplates(ctx, catalog.Templates()); err != nil {
		return fmt.Errorf("saving templates: %w", err)
	}

	names := make([]string, 0, len(roles))
	for name := range roles {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		if err := repo.SaveRole(ctx, roles[name]); err != nil {
			return fmt.Errorf("saving role %s: %w", name, err)
		}
	}

	slog.Info("catalog imported", "templates", catalog.Len(), "roles", len(names))
	return nil
}
