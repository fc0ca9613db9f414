package loadout

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/udisondev/botloadout/internal/data"
	"github.com/udisondev/botloadout/internal/model"
)

// DefaultMaxModDepth bounds mod recursion when neither the role nor the generator sets one.
const DefaultMaxModDepth = 12

var (
	// ErrNoRoleInventory is returned when a request carries no role inventory.
	ErrNoRoleInventory = errors.New("no role inventory")
	// ErrUnknownTemplate is returned when the root template is missing from the catalog.
	ErrUnknownTemplate = errors.New("unknown template")
)

// Generator builds bot loadouts from a read-only catalog.
// A Generator is safe for concurrent use: every Generate call owns its own state.
type Generator struct {
	catalog     *data.Catalog
	drawer      Drawer
	durability  DurabilitySampler
	logger      *slog.Logger
	maxModDepth int
}

// Option configures a Generator.
type Option func(*Generator)

// WithDrawer replaces the weighted draw primitive.
func WithDrawer(d Drawer) Option {
	return func(g *Generator) { g.drawer = d }
}

// WithDurabilitySampler replaces the durability sampler.
func WithDurabilitySampler(s DurabilitySampler) Option {
	return func(g *Generator) { g.durability = s }
}

// WithLogger sets the logger for generation issues.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// WithMaxModDepth sets the default recursion bound for mod attachment.
func WithMaxModDepth(depth int) Option {
	return func(g *Generator) {
		if depth > 0 {
			g.maxModDepth = depth
		}
	}
}

// NewGenerator creates a Generator over catalog.
func NewGenerator(catalog *data.Catalog, opts ...Option) *Generator {
	g := &Generator{
		catalog:     catalog,
		drawer:      WeightedDrawer{},
		durability:  RangeDurability{},
		logger:      slog.Default(),
		maxModDepth: DefaultMaxModDepth,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Catalog returns the catalog the generator reads from.
func (g *Generator) Catalog() *data.Catalog {
	return g.catalog
}

// Request describes one bot to generate.
type Request struct {
	Role   *data.RoleInventory
	RootID string // Equipment root id; derived from Seed when empty
	Seed   uint64
}

// Result is the finished loadout: a flat list ordered parent-before-child,
// rooted at RootID, plus every non-fatal issue met on the way.
type Result struct {
	Role   string       `json:"role"`
	RootID string       `json:"root_id"`
	Seed   uint64       `json:"seed"`
	Items  []model.Item `json:"items"`
	Report Report       `json:"report"`
}

// Generate builds one loadout. Only unusable input returns an error; every
// problem inside generation is recorded in Result.Report instead.
func (g *Generator) Generate(req Request) (*Result, error) {
	if req.Role == nil {
		return nil, ErrNoRoleInventory
	}
	root, ok := g.catalog.Template(req.Role.RootTemplate)
	if !ok {
		return nil, fmt.Errorf("root template %q of role %s: %w", req.Role.RootTemplate, req.Role.Role, ErrUnknownTemplate)
	}

	depth := g.maxModDepth
	if req.Role.Limits.MaxModDepth > 0 {
		depth = req.Role.Limits.MaxModDepth
	}

	c := &genContext{
		catalog:    g.catalog,
		drawer:     g.drawer,
		durability: g.durability,
		logger:     g.logger,
		role:       req.Role,
		rng:        NewRNG(req.Seed),
		ids:        newIDSource(req.Seed, req.Role.Role+"/"+req.RootID),
		maxDepth:   depth,
		items:      make([]model.Item, 0, 64),
		index:      make(map[string]int, 64),
	}

	c.rootID = req.RootID
	if c.rootID == "" {
		c.rootID = c.ids.next()
	}
	c.add(model.Item{ID: c.rootID, TemplateID: root.ID})

	c.generateEquipment(root)
	c.generateWeapons(root)
	c.generateLoot()

	g.logger.Debug("loadout generated",
		"role", req.Role.Role,
		"root", c.rootID,
		"items", len(c.items),
		"issues", c.report.Len())

	return &Result{
		Role:   req.Role.Role,
		RootID: c.rootID,
		Seed:   req.Seed,
		Items:  c.items,
		Report: c.report,
	}, nil
}
