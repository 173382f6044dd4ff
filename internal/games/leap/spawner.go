package leap

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/solarlune/resolv"

	"github.com/vovakirdan/leap-of-faith/internal/config"
	"github.com/vovakirdan/leap-of-faith/internal/core"
)

// spaceCell is the broad-phase cell size in terminal cells.
const spaceCell = 4

// pendingBreak is an armed breakable tile waiting for its deadline.
type pendingBreak struct {
	id       int
	deadline int
}

// Spawner owns the live terrain set: it creates tiles on a fixed period,
// scrolls them up, reclaims the ones that left the shaft and sweeps armed
// breakable tiles once their own deadline passes.
type Spawner struct {
	cfg *config.LeapConfig
	rng *rand.Rand

	// Weighted table, cumulative over kinds.
	kinds []TerrainKind
	cum   []int
	total int

	tiles  []*Terrain // Insertion order
	nextID int

	space *resolv.Space
	probe *resolv.Object

	period     int // Spawn period in ticks
	nextSpawn  int
	breakDelay int // Ticks between arming and destruction
	pending    []pendingBreak
}

// NewSpawner creates a spawner for a validated config.
func NewSpawner(cfg *config.LeapConfig, tickRate int, seed int64) (*Spawner, error) {
	s := &Spawner{
		cfg:        cfg,
		rng:        rand.New(rand.NewSource(seed)),
		tiles:      make([]*Terrain, 0, 16),
		period:     config.Ticks(cfg.Timing.SpawnPeriodMS, tickRate),
		breakDelay: config.Ticks(cfg.Timing.BreakDelayMS, tickRate),
	}

	if len(cfg.Terrain.Kinds) != len(cfg.Terrain.Weights) {
		return nil, fmt.Errorf("leap: %d terrain kinds but %d weights", len(cfg.Terrain.Kinds), len(cfg.Terrain.Weights))
	}
	for i, name := range cfg.Terrain.Kinds {
		k, err := ParseTerrainKind(name)
		if err != nil {
			return nil, err
		}
		w := cfg.Terrain.Weights[i]
		if w < 0 {
			return nil, fmt.Errorf("leap: negative weight %d for %s", w, name)
		}
		s.total += w
		s.kinds = append(s.kinds, k)
		s.cum = append(s.cum, s.total)
	}
	if s.total <= 0 {
		return nil, fmt.Errorf("leap: terrain weights sum to %d", s.total)
	}

	// Room below the baseline for freshly spawned tiles.
	spaceH := cfg.Field.Height + 2*cfg.Terrain.Height + spaceCell
	s.space = resolv.NewSpace(cfg.Field.Width+spaceCell, spaceH, spaceCell, spaceCell)
	s.probe = resolv.NewObject(0, 0, 1, 1, tagHero)
	s.space.Add(s.probe)

	return s, nil
}

// Reseed restarts the random sequence.
func (s *Spawner) Reseed(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
}

// SetTickRate recomputes the timer periods for a tick rate.
func (s *Spawner) SetTickRate(tickRate int) {
	s.period = config.Ticks(s.cfg.Timing.SpawnPeriodMS, tickRate)
	s.breakDelay = config.Ticks(s.cfg.Timing.BreakDelayMS, tickRate)
}

// Clear removes every tile and pending destruction.
func (s *Spawner) Clear() {
	for _, t := range s.tiles {
		s.space.Remove(t.obj)
	}
	clear(s.tiles)
	s.tiles = s.tiles[:0]
	s.pending = s.pending[:0]
	s.nextID = 0
}

// Draw picks a kind with probability proportional to its weight.
func (s *Spawner) Draw() TerrainKind {
	r := s.rng.Intn(s.total)
	i := sort.SearchInts(s.cum, r+1)
	return s.kinds[i]
}

// Seed places the always-present common tile centred at cx with its top at y.
func (s *Spawner) Seed(cx, y float64) *Terrain {
	return s.add(KindCommon, cx-float64(s.cfg.Terrain.Width)/2, y)
}

// Spawn creates a tile of the given kind on the baseline at a uniformly
// random horizontal position between the spawn bounds.
func (s *Spawner) Spawn(kind TerrainKind) *Terrain {
	left, right := s.cfg.SpawnBounds()
	cx := left + s.rng.Float64()*(right-left)
	return s.add(kind, cx-float64(s.cfg.Terrain.Width)/2, float64(s.cfg.Field.Height))
}

func (s *Spawner) add(kind TerrainKind, x, y float64) *Terrain {
	w, h := float64(s.cfg.Terrain.Width), float64(s.cfg.Terrain.Height)
	t := &Terrain{
		ID:   s.nextID,
		Kind: kind,
		X:    x,
		Y:    y,
		W:    w,
		H:    h,
		mask: core.SolidMask(s.cfg.Terrain.Width, s.cfg.Terrain.Height),
	}
	s.nextID++

	t.obj = resolv.NewObject(x, y, w, h, tagTerrain)
	t.obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	t.obj.Data = t
	s.space.Add(t.obj)

	s.tiles = append(s.tiles, t)
	return t
}

// Scroll moves every tile up by the terrain speed and reclaims tiles whose
// top reached -height. Returns how many tiles were reclaimed.
func (s *Spawner) Scroll() int {
	speed := s.cfg.Physics.TerrainSpeed
	kept := s.tiles[:0]
	removed := 0
	for _, t := range s.tiles {
		t.moveTo(t.X, t.Y-speed)
		if t.Y <= -t.H {
			s.space.Remove(t.obj)
			removed++
			continue
		}
		kept = append(kept, t)
	}
	clear(s.tiles[len(kept):])
	s.tiles = kept
	return removed
}

// RestartTimer schedules the next spawn one period after tick.
func (s *Spawner) RestartTimer(tick int) {
	s.nextSpawn = tick + s.period
}

// DueSpawn reports whether the spawn timer fired at tick. It fires once per
// period.
func (s *Spawner) DueSpawn(tick int) bool {
	if tick < s.nextSpawn {
		return false
	}
	s.nextSpawn = tick + s.period
	return true
}

// Arm schedules a breakable tile for destruction breakDelay ticks after
// tick. Arming is one-shot; it reports false when already armed.
func (s *Spawner) Arm(t *Terrain, tick int) bool {
	if t.BreakArmed {
		return false
	}
	t.BreakArmed = true
	t.ArmedAt = tick
	s.pending = append(s.pending, pendingBreak{id: t.ID, deadline: tick + s.breakDelay})
	return true
}

// DueDestructions returns, in arming order, the ids of armed tiles whose
// deadline is at or before tick, and forgets them.
func (s *Spawner) DueDestructions(tick int) []int {
	var due []int
	kept := s.pending[:0]
	for _, p := range s.pending {
		if p.deadline <= tick {
			due = append(due, p.id)
			continue
		}
		kept = append(kept, p)
	}
	s.pending = kept
	return due
}

// Pending returns how many armed tiles are waiting for destruction.
func (s *Spawner) Pending() int {
	return len(s.pending)
}

// Remove reclaims the tile with the given id. Reports false when it is
// already gone, e.g. scrolled out before its deadline.
func (s *Spawner) Remove(id int) bool {
	for i, t := range s.tiles {
		if t.ID != id {
			continue
		}
		s.space.Remove(t.obj)
		copy(s.tiles[i:], s.tiles[i+1:])
		s.tiles[len(s.tiles)-1] = nil
		s.tiles = s.tiles[:len(s.tiles)-1]
		return true
	}
	return false
}

// Get returns the live tile with the given id.
func (s *Spawner) Get(id int) *Terrain {
	for _, t := range s.tiles {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// Tiles returns the live tiles in insertion order.
func (s *Spawner) Tiles() []*Terrain {
	return s.tiles
}

// Candidates returns the tiles sharing a broad-phase cell with r, in
// insertion order. The probe is inflated by one cell on every side so
// that fractional bounds never slip between cells.
func (s *Spawner) Candidates(r core.RectF) []*Terrain {
	s.probe.X, s.probe.Y = r.X-1, r.Y-1
	s.probe.W, s.probe.H = r.W+2, r.H+2
	s.probe.Update()

	check := s.probe.Check(0, 0, tagTerrain)
	if check == nil {
		return nil
	}

	out := make([]*Terrain, 0, len(check.Objects))
	for _, obj := range check.Objects {
		if t, ok := obj.Data.(*Terrain); ok {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
