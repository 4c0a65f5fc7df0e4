// Package config provides YAML-based configuration loading and validation for
// the memory game.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// MemoryConfig contains all configuration for the memory game.
type MemoryConfig struct {
	Levels  LevelsConfig  `yaml:"levels"`
	Rules   RulesConfig   `yaml:"rules"`
	Bonuses BonusesConfig `yaml:"bonuses"`
	Unlocks []UnlockRule  `yaml:"unlocks"`
	Layout  LayoutConfig  `yaml:"layout"`
}

// LevelsConfig holds the three difficulty tiers.
type LevelsConfig struct {
	Easy   LevelConfig `yaml:"easy"`
	Medium LevelConfig `yaml:"medium"`
	Hard   LevelConfig `yaml:"hard"`
}

// LevelConfig defines one tier: a 3-row board with Columns columns and a
// starting clock of Seconds.
type LevelConfig struct {
	Name    string `yaml:"name"`
	Columns int    `yaml:"columns"`
	Seconds int    `yaml:"seconds"`
}

// Budget returns the tier's time budget.
func (l LevelConfig) Budget() time.Duration {
	return time.Duration(l.Seconds) * time.Second
}

// RulesConfig defines the match evaluation rules.
type RulesConfig struct {
	RevealDelay     time.Duration `yaml:"reveal_delay"`
	MatchReward     time.Duration `yaml:"match_reward"`
	MismatchPenalty time.Duration `yaml:"mismatch_penalty"`
	PointsPerPair   int           `yaml:"points_per_pair"`
}

// BonusesConfig holds per-kind bonus settings.
type BonusesConfig struct {
	ExtraTime  BonusConfig `yaml:"extra_time"`
	FreezeTime BonusConfig `yaml:"freeze_time"`
	RevealHint BonusConfig `yaml:"reveal_hint"`
}

// Initial bonus states accepted in configuration.
const (
	InitialNotActive = "not_active"
	InitialNotUsed   = "not_used"
)

// BonusConfig defines a single bonus button.
type BonusConfig struct {
	Label    string        `yaml:"label"`
	Initial  string        `yaml:"initial"`  // not_active or not_used
	Duration time.Duration `yaml:"duration"` // how long the bonus stays in use
	Grant    time.Duration `yaml:"grant"`    // clock time granted on activation
}

// UnlockRule unlocks Bonus once the match streak reaches Streak.
type UnlockRule struct {
	Streak int    `yaml:"streak"`
	Bonus  string `yaml:"bonus"`
}

// LayoutConfig defines the board geometry in terminal cells.
type LayoutConfig struct {
	CardWidth    int `yaml:"card_width"`
	CardHeight   int `yaml:"card_height"`
	GapX         int `yaml:"gap_x"`
	GapY         int `yaml:"gap_y"`
	Top          int `yaml:"top"`
	BonusRow     int `yaml:"bonus_row"`
	ButtonWidth  int `yaml:"button_width"`
	ButtonHeight int `yaml:"button_height"`
	ButtonGap    int `yaml:"button_gap"`
	MaxWidth     int `yaml:"max_width"` // widest board the layout accepts
}

// BoardWidth returns the width of a board with the given number of columns.
func (l LayoutConfig) BoardWidth(columns int) int {
	if columns <= 0 {
		return 0
	}
	return columns*l.CardWidth + (columns-1)*l.GapX
}

// Tier identifies a difficulty level.
type Tier int

const (
	TierEasy Tier = iota
	TierMedium
	TierHard
)

// Tiers lists all tiers in menu order.
var Tiers = []Tier{TierEasy, TierMedium, TierHard}

// String returns the preset name of the tier.
func (t Tier) String() string {
	switch t {
	case TierEasy:
		return "easy"
	case TierMedium:
		return "medium"
	case TierHard:
		return "hard"
	default:
		return "unknown"
	}
}

// ParseTier parses a tier preset string.
func ParseTier(s string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy", "1":
		return TierEasy, nil
	case "medium", "2":
		return TierMedium, nil
	case "hard", "3":
		return TierHard, nil
	default:
		return TierEasy, fmt.Errorf("unknown level %q (want easy, medium or hard)", s)
	}
}

// Level returns the configuration for a tier.
func (c MemoryConfig) Level(t Tier) LevelConfig {
	switch t {
	case TierMedium:
		return c.Levels.Medium
	case TierHard:
		return c.Levels.Hard
	default:
		return c.Levels.Easy
	}
}

// Validate checks the configuration for values the game cannot run with.
func (c MemoryConfig) Validate() error {
	for _, t := range Tiers {
		lvl := c.Level(t)
		if lvl.Columns < 2 {
			return fmt.Errorf("%w: level %s: columns must be at least 2, got %d", ErrInvalidConfig, t, lvl.Columns)
		}
		if (3*lvl.Columns)%2 != 0 {
			return fmt.Errorf("%w: level %s: 3x%d board has an odd card count", ErrInvalidConfig, t, lvl.Columns)
		}
		if lvl.Seconds <= 0 {
			return fmt.Errorf("%w: level %s: seconds must be positive", ErrInvalidConfig, t)
		}
		if w := c.Layout.BoardWidth(lvl.Columns); c.Layout.MaxWidth > 0 && w > c.Layout.MaxWidth {
			return fmt.Errorf("%w: level %s: board width %d exceeds max_width %d", ErrInvalidConfig, t, w, c.Layout.MaxWidth)
		}
	}

	if c.Rules.RevealDelay < 0 || c.Rules.MatchReward < 0 || c.Rules.MismatchPenalty < 0 {
		return fmt.Errorf("%w: rules: durations must not be negative", ErrInvalidConfig)
	}
	if c.Rules.PointsPerPair < 0 {
		return fmt.Errorf("%w: rules: points_per_pair must not be negative", ErrInvalidConfig)
	}

	bonuses := map[string]BonusConfig{
		"extra_time":  c.Bonuses.ExtraTime,
		"freeze_time": c.Bonuses.FreezeTime,
		"reveal_hint": c.Bonuses.RevealHint,
	}
	for name, b := range bonuses {
		if b.Initial != InitialNotActive && b.Initial != InitialNotUsed {
			return fmt.Errorf("%w: bonus %s: initial must be %q or %q, got %q",
				ErrInvalidConfig, name, InitialNotActive, InitialNotUsed, b.Initial)
		}
		if b.Duration < 0 || b.Grant < 0 {
			return fmt.Errorf("%w: bonus %s: durations must not be negative", ErrInvalidConfig, name)
		}
	}

	for i, u := range c.Unlocks {
		if u.Streak <= 0 {
			return fmt.Errorf("%w: unlocks[%d]: streak must be positive", ErrInvalidConfig, i)
		}
		if _, ok := bonuses[u.Bonus]; !ok {
			return fmt.Errorf("%w: unlocks[%d]: unknown bonus %q", ErrInvalidConfig, i, u.Bonus)
		}
	}

	l := c.Layout
	if l.CardWidth < 3 || l.CardHeight < 3 {
		return fmt.Errorf("%w: layout: cards must be at least 3x3", ErrInvalidConfig)
	}
	if l.GapX < 0 || l.GapY < 0 || l.Top < 0 || l.ButtonGap < 0 {
		return fmt.Errorf("%w: layout: gaps must not be negative", ErrInvalidConfig)
	}
	if l.ButtonWidth < 3 || l.ButtonHeight < 1 {
		return fmt.Errorf("%w: layout: buttons must be at least 3x1", ErrInvalidConfig)
	}
	return nil
}
