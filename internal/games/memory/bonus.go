package memory

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/core"
)

// BonusKind identifies what a bonus does when activated.
type BonusKind int

const (
	BonusExtraTime  BonusKind = iota // Adds time to the clock
	BonusFreezeTime                  // Stops the clock while in use
	BonusRevealHint                  // Picks a matching pair
)

// BonusKinds lists all kinds in button order.
var BonusKinds = []BonusKind{BonusExtraTime, BonusFreezeTime, BonusRevealHint}

// String returns the configuration name of the kind.
func (k BonusKind) String() string {
	switch k {
	case BonusExtraTime:
		return "extra_time"
	case BonusFreezeTime:
		return "freeze_time"
	case BonusRevealHint:
		return "reveal_hint"
	default:
		return "unknown"
	}
}

// ParseBonusKind parses a configuration name.
func ParseBonusKind(s string) (BonusKind, error) {
	for _, k := range BonusKinds {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown bonus %q", s)
}

// BonusState is the lifecycle step of a bonus.
type BonusState int

const (
	BonusNotActive BonusState = iota // Locked until a streak unlocks it
	BonusNotUsed                     // Clickable
	BonusUsing                       // Effect running
	BonusUsed                        // Spent for this round
)

// String returns the state name.
func (s BonusState) String() string {
	switch s {
	case BonusNotActive:
		return "not_active"
	case BonusNotUsed:
		return "not_used"
	case BonusUsing:
		return "using"
	case BonusUsed:
		return "used"
	default:
		return "unknown"
	}
}

// Bonus is a clickable power-up. It tracks only its own lifecycle; the round
// applies the effect when Press reports a consumed click.
type Bonus struct {
	Kind     BonusKind
	Label    string
	Duration time.Duration // Time spent in BonusUsing
	Grant    time.Duration // Clock time granted on activation
	Bounds   core.Rect
	State    BonusState

	initial     BonusState
	activatedAt time.Time
}

// NewBonus creates a bonus from its configuration, in its initial state.
func NewBonus(kind BonusKind, cfg config.BonusConfig) *Bonus {
	initial := BonusNotUsed
	if cfg.Initial == config.InitialNotActive {
		initial = BonusNotActive
	}
	b := &Bonus{
		Kind:     kind,
		Label:    cfg.Label,
		Duration: cfg.Duration,
		Grant:    cfg.Grant,
		initial:  initial,
	}
	b.Reset()
	return b
}

// Reset returns the bonus to its configured initial state.
func (b *Bonus) Reset() {
	b.State = b.initial
	b.activatedAt = time.Time{}
}

// Unlock moves a locked bonus to NotUsed. It reports whether the state changed.
func (b *Bonus) Unlock() bool {
	if b.State != BonusNotActive {
		return false
	}
	b.State = BonusNotUsed
	return true
}

// Press activates the bonus at now. It reports whether the click was consumed;
// only a NotUsed bonus consumes clicks.
func (b *Bonus) Press(now time.Time) bool {
	if b.State != BonusNotUsed {
		return false
	}
	b.State = BonusUsing
	b.activatedAt = now
	return true
}

// Click presses the bonus if (x, y) is inside its button.
func (b *Bonus) Click(x, y int, now time.Time) bool {
	if !b.Bounds.Contains(x, y) {
		return false
	}
	return b.Press(now)
}

// Update expires the bonus once its duration has elapsed. It reports whether
// the bonus moved to Used.
func (b *Bonus) Update(now time.Time) bool {
	if b.State != BonusUsing {
		return false
	}
	if now.Sub(b.activatedAt) < b.Duration {
		return false
	}
	b.State = BonusUsed
	b.activatedAt = time.Time{}
	return true
}

// Active reports whether the bonus effect is running.
func (b *Bonus) Active() bool {
	return b.State == BonusUsing
}

// ActivatedAt returns the activation time while the bonus is in use.
func (b *Bonus) ActivatedAt() (time.Time, bool) {
	if b.State != BonusUsing {
		return time.Time{}, false
	}
	return b.activatedAt, true
}

// Left returns how long the bonus stays in use after now.
func (b *Bonus) Left(now time.Time) time.Duration {
	if b.State != BonusUsing {
		return 0
	}
	return max(b.Duration-now.Sub(b.activatedAt), 0)
}
