package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/botloadout/internal/data"
	"github.com/udisondev/botloadout/internal/model"
)

// ErrRoleNotFound is returned when a role inventory is not stored.
var ErrRoleNotFound = errors.New("role not found")

// CatalogRepository хранит шаблоны предметов и инвентари ролей в PostgreSQL.
// Documents are stored as JSONB in the same shape the YAML loader produces.
type CatalogRepository struct {
	pool *pgxpool.Pool
}

// NewCatalogRepository creates a new CatalogRepository.
func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

// SaveTemplates upserts templates in a single transaction.
func (r *CatalogRepository) SaveTemplates(ctx context.Context, templates []*model.ItemTemplate) error {
	if len(templates) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	batch := &pgx.Batch{}
	for _, tpl := range templates {
		doc, err := json.Marshal(tpl)
		if err != nil {
			return fmt.Errorf("encoding template %s: %w", tpl.ID, err)
		}
		batch.Queue(
			`INSERT INTO item_templates (id, parent_id, document, updated_at)
			 VALUES ($1, $2, $3, now())
			 ON CONFLICT (id) DO UPDATE SET parent_id=$2, document=$3, updated_at=now()`,
			tpl.ID, tpl.ParentID, doc,
		)
	}

	br := tx.SendBatch(ctx, batch)
	for _, tpl := range templates {
		if _, err := br.Exec(); err != nil {
			br.Close() //nolint:errcheck
			return fmt.Errorf("saving template %s: %w", tpl.ID, err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("close template batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit templates: %w", err)
	}

	slog.Info("item templates saved", "count", len(templates))
	return nil
}

// LoadCatalog reads every stored template and builds a Catalog.
func (r *CatalogRepository) LoadCatalog(ctx context.Context) (*data.Catalog, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, document FROM item_templates ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying item templates: %w", err)
	}
	defer rows.Close()

	templates := make([]*model.ItemTemplate, 0, 512)
	for rows.Next() {
		var id string
		var doc []byte
		if err := rows.Scan(&id, &doc); err != nil {
			return nil, fmt.Errorf("scanning template row: %w", err)
		}

		tpl := &model.ItemTemplate{}
		if err := json.Unmarshal(doc, tpl); err != nil {
			return nil, fmt.Errorf("decoding template %s: %w", id, err)
		}
		templates = append(templates, tpl)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating template rows: %w", err)
	}

	catalog, err := data.NewCatalog(templates)
	if err != nil {
		return nil, fmt.Errorf("building catalog: %w", err)
	}
	return catalog, nil
}

// SaveRole upserts one role inventory.
func (r *CatalogRepository) SaveRole(ctx context.Context, role *data.RoleInventory) error {
	doc, err := json.Marshal(role)
	if err != nil {
		return fmt.Errorf("encoding role %s: %w", role.Role, err)
	}

	_, err = r.pool.Exec(ctx,
		`INSERT INTO role_inventories (role, document, updated_at)
		 VALUES ($1, $2, now())
		 ON CONFLICT (role) DO UPDATE SET document=$2, updated_at=now()`,
		role.Role, doc,
	)
	if err != nil {
		return fmt.Errorf("saving role %s: %w", role.Role, err)
	}
	return nil
}

// LoadRole reads one role inventory. Implements spawn.RoleRepository.
func (r *CatalogRepository) LoadRole(ctx context.Context, role string) (*data.RoleInventory, error) {
	var doc []byte
	err := r.pool.QueryRow(ctx,
		`SELECT document FROM role_inventories WHERE role = $1`, role,
	).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("role %q: %w", role, ErrRoleNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying role %q: %w", role, err)
	}

	inv := &data.RoleInventory{}
	if err := json.Unmarshal(doc, inv); err != nil {
		return nil, fmt.Errorf("decoding role %q: %w", role, err)
	}
	if err := inv.Normalize(); err != nil {
		return nil, fmt.Errorf("stored role %q: %w", role, err)
	}
	return inv, nil
}

// ListRoles returns stored role names in sorted order.
func (r *CatalogRepository) ListRoles(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT role FROM role_inventories ORDER BY role`)
	if err != nil {
		return nil, fmt.Errorf("querying roles: %w", err)
	}
	defer rows.Close()

	roles, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("collecting roles: %w", err)
	}
	return roles, nil
}
