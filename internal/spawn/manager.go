package spawn

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/botloadout/internal/data"
	"github.com/udisondev/botloadout/internal/loadout"
)

// ErrWaveTooLarge is returned when a wave exceeds the configured bot cap.
var ErrWaveTooLarge = errors.New("wave too large")

// RoleRepository interface for loading role inventories
type RoleRepository interface {
	LoadRole(ctx context.Context, role string) (*data.RoleInventory, error)
}

// Wave — пачка ботов одной роли, генерируемых параллельно.
type Wave struct {
	Role  string
	Count int
	Seed  uint64 // Bot i gets loadout.SeedFor(Seed, i)
}

// Manager generates loadouts for waves of bots.
type Manager struct {
	gen      *loadout.Generator
	roleRepo RoleRepository
	workers  int
	maxWave  int

	generated atomic.Uint64 // bots generated since creation
	issues    atomic.Uint64 // report issues across all bots
}

// NewManager creates new wave manager.
// workers bounds parallel generations; maxWave bounds bots per wave.
func NewManager(gen *loadout.Generator, roleRepo RoleRepository, workers, maxWave int) *Manager {
	if workers <= 0 {
		workers = 1
	}
	return &Manager{
		gen:      gen,
		roleRepo: roleRepo,
		workers:  workers,
		maxWave:  maxWave,
	}
}

// GenerateWave generates Count bots of one role. Results are in bot order.
//
// A single bot is never interrupted: ctx is only checked before a bot starts,
// so a cancelled wave returns ctx.Err() without partial item trees.
func (m *Manager) GenerateWave(ctx context.Context, w Wave) ([]*loadout.Result, error) {
	if w.Count <= 0 {
		return nil, nil
	}
	if m.maxWave > 0 && w.Count > m.maxWave {
		return nil, fmt.Errorf("%d bots requested, limit %d: %w", w.Count, m.maxWave, ErrWaveTooLarge)
	}

	role, err := m.roleRepo.LoadRole(ctx, w.Role)
	if err != nil {
		return nil, fmt.Errorf("loading role %s: %w", w.Role, err)
	}

	results := make([]*loadout.Result, w.Count)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.workers)

	for i := range w.Count {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := m.gen.Generate(loadout.Request{
				Role: role,
				Seed: loadout.SeedFor(w.Seed, i),
			})
			if err != nil {
				return fmt.Errorf("generating bot %d of role %s: %w", i, w.Role, err)
			}
			results[i] = res
			m.generated.Add(1)
			m.issues.Add(uint64(res.Report.Len()))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	slog.Info("wave generated",
		"role", w.Role,
		"bots", w.Count,
		"seed", w.Seed)

	return results, nil
}

// GenerateWaves runs several waves one after another and concatenates the results.
func (m *Manager) GenerateWaves(ctx context.Context, waves []Wave) ([]*loadout.Result, error) {
	var all []*loadout.Result
	for _, w := range waves {
		res, err := m.GenerateWave(ctx, w)
		if err != nil {
			return nil, err
		}
		all = append(all, res...)
	}
	return all, nil
}

// Generated returns total number of bots generated (O(1) atomic counter).
func (m *Manager) Generated() uint64 {
	return m.generated.Load()
}

// Issues returns total number of report issues across all generated bots.
func (m *Manager) Issues() uint64 {
	return m.issues.Load()
}
