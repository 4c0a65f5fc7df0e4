package memory

import (
	"time"

	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/core"
)

// Level is one difficulty tier with its menu button.
type Level struct {
	Tier    config.Tier
	Name    string
	Columns int
	Budget  time.Duration
	Bounds  core.Rect
}

// LevelSelector maps tiers to board sizes and time budgets and tracks which
// menu button is armed.
type LevelSelector struct {
	levels []Level
	armed  int // Index into levels, -1 when nothing is armed
}

// NewLevelSelector builds the three tiers with their buttons laid out by l.
func NewLevelSelector(cfg config.LevelsConfig, l Layout) *LevelSelector {
	full := config.MemoryConfig{Levels: cfg}
	bounds := l.Levels(len(config.Tiers))
	s := &LevelSelector{armed: -1}
	for i, t := range config.Tiers {
		lc := full.Level(t)
		s.levels = append(s.levels, Level{
			Tier:    t,
			Name:    lc.Name,
			Columns: lc.Columns,
			Budget:  lc.Budget(),
			Bounds:  bounds[i],
		})
	}
	return s
}

// Levels returns the tiers in menu order.
func (s *LevelSelector) Levels() []Level {
	return s.levels
}

// Lookup returns the board columns and time budget of a tier.
func (s *LevelSelector) Lookup(t config.Tier) (columns int, budget time.Duration, ok bool) {
	for _, lvl := range s.levels {
		if lvl.Tier == t {
			return lvl.Columns, lvl.Budget, true
		}
	}
	return 0, 0, false
}

// Click arms the tier whose button contains (x, y).
func (s *LevelSelector) Click(x, y int) bool {
	for i, lvl := range s.levels {
		if lvl.Bounds.Contains(x, y) {
			s.armed = i
			return true
		}
	}
	return false
}

// Arm arms a tier directly, as a keyboard shortcut would.
func (s *LevelSelector) Arm(t config.Tier) bool {
	for i, lvl := range s.levels {
		if lvl.Tier == t {
			s.armed = i
			return true
		}
	}
	return false
}

// Armed returns the armed tier.
func (s *LevelSelector) Armed() (config.Tier, bool) {
	if s.armed < 0 {
		return 0, false
	}
	return s.levels[s.armed].Tier, true
}

// Disarm clears the armed tier.
func (s *LevelSelector) Disarm() {
	s.armed = -1
}
