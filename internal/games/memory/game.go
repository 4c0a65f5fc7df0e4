// Package memory implements the memory-matching card game: a timed board of
// face-down pairs, streak-unlocked bonuses and Won/Lost end states.
//
// Round holds the rules and is driven by explicit ticks and pointer events.
// Game adapts a Round to the platform's fixed-tick loop, supplying the clock,
// the shuffle source and logging.
package memory

import (
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/core"
)

// Game implements the memory game for the terminal platform.
type Game struct {
	cfg      config.MemoryConfig
	clock    Clock
	shuffler Shuffler
	logger   *log.Logger
	level    *config.Tier

	runtime core.RuntimeConfig
	round   *Round
	roundID string
	cues    []core.Cue
}

// Option configures a Game.
type Option func(*Game)

// WithConfig sets the game configuration.
func WithConfig(cfg config.MemoryConfig) Option {
	return func(g *Game) {
		g.cfg = cfg
	}
}

// WithClock sets the time source.
func WithClock(c Clock) Option {
	return func(g *Game) {
		g.clock = c
	}
}

// WithShuffler sets the shuffle source. Without it, Reset seeds one from
// the runtime config.
func WithShuffler(s Shuffler) Option {
	return func(g *Game) {
		g.shuffler = s
	}
}

// WithLogger sets the logger used for round events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// WithLevel skips the menu: every Reset arms t, so the first Step deals it.
func WithLevel(t config.Tier) Option {
	return func(g *Game) {
		g.level = &t
	}
}

// New creates a new memory game.
func New(opts ...Option) *Game {
	g := &Game{
		cfg:   config.DefaultMemoryConfig(),
		clock: SystemClock(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "memory"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Memory Match"
}

// Reset discards any round in progress and shows the level menu.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	shuffler := g.shuffler
	if shuffler == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		shuffler = rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1)) //#nosec G115 -- seed bits
	}
	g.round = NewRound(g.cfg, cfg.ScreenW, cfg.ScreenH, shuffler)
	if g.level != nil {
		g.round.Levels().Arm(*g.level)
	}
	g.roundID = ""
	g.cues = nil
}

// Resize relays out the board for a new screen size.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	if g.round != nil {
		g.round.Resize(w, h)
	}
}

// Round returns the underlying round.
func (g *Game) Round() *Round {
	return g.round
}

// Step feeds one frame of input to the round and advances it to the clock's
// current time.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.round == nil {
		g.Reset(g.runtime)
	}
	g.cues = g.cues[:0]

	if g.round.State() == StateAtMenu {
		for _, t := range config.Tiers {
			if in.Has(ActionTier(t)) {
				g.round.Levels().Arm(t)
				break
			}
		}
	}
	if in.Has(core.ActionRestart) {
		g.round.Reset()
	}

	for _, p := range in.Pointer {
		if p.Down {
			g.round.PointerDown(p.X, p.Y)
		} else {
			g.round.PointerUp()
		}
	}

	g.round.Tick(g.clock.Now())

	for _, e := range g.round.Events() {
		g.handle(e)
	}

	cues := make([]core.Cue, len(g.cues))
	copy(cues, g.cues)
	return core.StepResult{State: g.State(), Cues: cues}
}

// ActionTier maps a tier to its keyboard action.
func ActionTier(t config.Tier) core.Action {
	switch t {
	case config.TierMedium:
		return core.ActionLevelMedium
	case config.TierHard:
		return core.ActionLevelHard
	default:
		return core.ActionLevelEasy
	}
}

func (g *Game) handle(e Event) {
	switch e.Kind {
	case EventStarted:
		g.roundID = uuid.NewString()
		snap := g.round.Snapshot()
		g.logger.Info("round started", "round", g.roundID, "columns", snap.Columns, "budget", snap.Budget)
		g.cues = append(g.cues, core.CueStart)
	case EventSetupFailed:
		g.logger.Error("round setup failed", "err", e.Err)
	case EventMatched:
		g.logger.Debug("pair matched", "round", g.roundID, "id", e.MatchID, "streak", e.Streak, "remaining", e.Remaining)
		g.cues = append(g.cues, core.CueCollect)
	case EventMismatched:
		g.logger.Debug("pair mismatched", "round", g.roundID, "remaining", e.Remaining)
		g.cues = append(g.cues, core.CueWrong)
	case EventBonusUnlocked:
		g.logger.Info("bonus unlocked", "round", g.roundID, "bonus", e.Bonus, "streak", e.Streak)
	case EventBonusActivated:
		g.logger.Info("bonus activated", "round", g.roundID, "bonus", e.Bonus, "remaining", e.Remaining)
		g.cues = append(g.cues, core.CueBonus)
	case EventBonusExpired:
		g.logger.Debug("bonus expired", "round", g.roundID, "bonus", e.Bonus)
	case EventWon:
		g.logger.Info("round won", "round", g.roundID, "score", g.round.score, "remaining", e.Remaining)
		g.cues = append(g.cues, core.CueWin)
	case EventLost:
		g.logger.Info("round lost", "round", g.roundID, "score", g.round.score, "pairs", g.round.pairs)
		g.cues = append(g.cues, core.CueFail)
	case EventReset:
		g.logger.Debug("back to menu", "round", g.roundID)
		g.roundID = ""
	}
}

// State returns the coarse game state.
func (g *Game) State() core.GameState {
	if g.round == nil {
		return core.GameState{}
	}
	state := g.round.State()
	return core.GameState{
		Score:      g.round.score,
		GameOver:   state.Terminal(),
		Won:        state == StateWon,
		Remaining:  g.round.timer.Remaining(),
		TimeBudget: g.round.timer.Span(),
	}
}

// Snapshot returns the current round snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.round == nil {
		return Snapshot{}
	}
	return g.round.Snapshot()
}

// RoundID returns the identifier of the round in progress, if any.
func (g *Game) RoundID() string {
	return g.roundID
}
