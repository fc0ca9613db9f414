package data

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/botloadout/internal/model"
)

// catalogFile is the on-disk layout of a YAML catalog.
type catalogFile struct {
	Templates []*model.ItemTemplate `yaml:"templates"`
}

// LoadCatalogFile читает YAML каталог шаблонов и строит Catalog.
func LoadCatalogFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	return ParseCatalog(raw)
}

// ParseCatalog builds a Catalog from YAML bytes.
func ParseCatalog(raw []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	c, err := NewCatalog(f.Templates)
	if err != nil {
		return nil, fmt.Errorf("building catalog: %w", err)
	}

	slog.Info("loaded item templates", "count", c.Len())
	return c, nil
}

// LoadRoleFile reads one role inventory from YAML.
func LoadRoleFile(path string) (*RoleInventory, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading role %s: %w", path, err)
	}
	return ParseRole(raw)
}

// ParseRole decodes and validates a role inventory.
func ParseRole(raw []byte) (*RoleInventory, error) {
	var r RoleInventory
	if err := yaml.Unmarshal(raw, &r); err != nil {
		return nil, fmt.Errorf("parsing role: %w", err)
	}
	if err := r.Normalize(); err != nil {
		return nil, err
	}
	return &r, nil
}

// LoadRolesDir loads every *.yaml / *.yml file in dir as a role inventory.
func LoadRolesDir(dir string) (map[string]*RoleInventory, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading roles dir %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext == ".yaml" || ext == ".yml" {
			names = append(names, e.Name())
		}
	}
	slices.Sort(names)

	roles := make(map[string]*RoleInventory, len(names))
	for _, name := range names {
		r, err := LoadRoleFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("loading role file %s: %w", name, err)
		}
		if _, dup := roles[r.Role]; dup {
			return nil, fmt.Errorf("duplicate role %q in %s", r.Role, name)
		}
		roles[r.Role] = r
	}

	slog.Info("loaded role inventories", "count", len(roles))
	return roles, nil
}
