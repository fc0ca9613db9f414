package spawn

import (
	"context"
	"fmt"
	"slices"

	"github.com/udisondev/botloadout/internal/data"
)

// DataRoleRepo implements RoleRepository over role inventories loaded from YAML.
type DataRoleRepo struct {
	roles map[string]*data.RoleInventory
}

// NewDataRoleRepo creates a DataRoleRepo adapter.
func NewDataRoleRepo(roles map[string]*data.RoleInventory) *DataRoleRepo {
	return &DataRoleRepo{roles: roles}
}

// LoadRole returns the role inventory by name.
func (r *DataRoleRepo) LoadRole(_ context.Context, role string) (*data.RoleInventory, error) {
	inv, ok := r.roles[role]
	if !ok {
		return nil, fmt.Errorf("role %q not found in data", role)
	}
	return inv, nil
}

// Roles returns known role names in sorted order.
func (r *DataRoleRepo) Roles() []string {
	names := make([]string, 0, len(r.roles))
	for name := range r.roles {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
