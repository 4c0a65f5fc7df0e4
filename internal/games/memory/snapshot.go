package memory

import (
	"time"

	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/core"
)

// CardView is the read-only view of one card.
type CardView struct {
	Pos     Pos
	Bounds  core.Rect
	FaceUp  bool
	Matched bool
	Phase   FlipPhase
	MatchID int    // Zero while face down
	FaceID  string // BackID while face down
}

// BonusView is the read-only view of one bonus button.
type BonusView struct {
	Kind   BonusKind
	Label  string
	State  BonusState
	Bounds core.Rect
	Left   time.Duration // Time left in use
}

// LevelView is the read-only view of one level button.
type LevelView struct {
	Tier    config.Tier
	Name    string
	Columns int
	Budget  time.Duration
	Bounds  core.Rect
	Armed   bool
}

// Snapshot is everything the presentation layer reads in one frame.
type Snapshot struct {
	State      RoundState
	Columns    int
	Remaining  time.Duration
	Budget     time.Duration
	Urgent     bool
	Streak     int
	BestStreak int
	Score      int
	Pairs      int
	PairsTotal int
	Selected   int
	Pressed    bool

	Cards   []CardView // Live cards plus matched cards still animating
	Bonuses []BonusView
	Levels  []LevelView
}

// Snapshot returns the round state as seen at the last tick.
func (r *Round) Snapshot() Snapshot {
	snap := Snapshot{
		State:      r.State(),
		Columns:    r.columns,
		Remaining:  r.timer.Remaining(),
		Budget:     r.timer.Budget(),
		Urgent:     r.timer.Urgent(),
		Streak:     r.streak,
		BestStreak: r.bestStreak,
		Score:      r.score,
		Pairs:      r.pairs,
		PairsTotal: Rows * r.columns / 2,
		Selected:   len(r.sel.picks),
		Pressed:    r.pressed,
	}

	cards := append(r.board.Cards(), r.fading...)
	snap.Cards = make([]CardView, 0, len(cards))
	for _, c := range cards {
		v := CardView{
			Pos:     c.Pos,
			Bounds:  c.Bounds,
			FaceUp:  c.FaceUp,
			Matched: c.Matched,
			Phase:   c.Phase,
			FaceID:  BackID,
		}
		if c.FaceUp {
			v.MatchID = c.MatchID
			v.FaceID = c.FaceID()
		}
		snap.Cards = append(snap.Cards, v)
	}

	now := r.timer.lastTick
	for _, b := range r.bonuses {
		snap.Bonuses = append(snap.Bonuses, BonusView{
			Kind:   b.Kind,
			Label:  b.Label,
			State:  b.State,
			Bounds: b.Bounds,
			Left:   b.Left(now),
		})
	}

	armed, hasArmed := r.levels.Armed()
	for _, lvl := range r.levels.Levels() {
		snap.Levels = append(snap.Levels, LevelView{
			Tier:    lvl.Tier,
			Name:    lvl.Name,
			Columns: lvl.Columns,
			Budget:  lvl.Budget,
			Bounds:  lvl.Bounds,
			Armed:   hasArmed && armed == lvl.Tier,
		})
	}
	return snap
}

// Hash returns a hash of the snapshot for determinism checks.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.State)
	h = h*31 + uint64(snap.Columns)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Remaining) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Budget)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Streak)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Pairs)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Selected)  //#nosec G115 -- hash computation

	for _, c := range snap.Cards {
		h = h*31 + uint64(c.Pos.Col) //#nosec G115 -- hash computation
		h = h*31 + uint64(c.Pos.Row) //#nosec G115 -- hash computation
		h = h*31 + uint64(c.MatchID) //#nosec G115 -- hash computation
		h = h*31 + uint64(c.Phase)   //#nosec G115 -- hash computation
	}
	for _, b := range snap.Bonuses {
		h = h*31 + uint64(b.State) //#nosec G115 -- hash computation
	}
	return h
}
