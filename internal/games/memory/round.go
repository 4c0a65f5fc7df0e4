package memory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/looplab/fsm"

	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/core"
)

// ErrInvalidBoard is returned when a board size cannot be dealt.
var ErrInvalidBoard = fmt.Errorf("invalid board: %w", config.ErrInvalidConfig)

// ErrRoundInProgress is returned by Setup outside the menu.
var ErrRoundInProgress = errors.New("round in progress")

// RoundState is the coarse state of a round.
type RoundState int

const (
	StateAtMenu RoundState = iota
	StatePlaying
	StateWon
	StateLost
)

// String returns the state name.
func (s RoundState) String() string {
	switch s {
	case StateAtMenu:
		return "at_menu"
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the round has ended.
func (s RoundState) Terminal() bool {
	return s == StateWon || s == StateLost
}

// FSM event names.
const (
	fsmStart = "start"
	fsmWin   = "win"
	fsmLose  = "lose"
	fsmReset = "reset"
)

func parseRoundState(s string) RoundState {
	switch s {
	case "playing":
		return StatePlaying
	case "won":
		return StateWon
	case "lost":
		return StateLost
	default:
		return StateAtMenu
	}
}

type selection struct {
	picks []Pos
	at    time.Time // Most recent pick
}

// Round owns everything that changes during a game: board, selection,
// bonuses, clock and the lifecycle state. It is driven by a single goroutine.
type Round struct {
	cfg      config.MemoryConfig
	layout   Layout
	shuffler Shuffler
	machine  *fsm.FSM

	board   *Board
	fading  []*Card // Matched cards finishing their last animation
	columns int
	sel     selection
	bonuses []*Bonus
	timer   *CountdownTimer
	levels  *LevelSelector

	streak     int
	bestStreak int
	score      int
	pairs      int

	clicks  []core.Point // Latched until the next tick
	pressed bool
	events  []Event
}

// NewRound creates a round at the menu for a screen of the given size.
func NewRound(cfg config.MemoryConfig, screenW, screenH int, shuffler Shuffler) *Round {
	r := &Round{
		cfg:      cfg,
		layout:   NewLayout(cfg.Layout, screenW, screenH),
		shuffler: shuffler,
		board:    NewBoard(),
		timer:    NewCountdownTimer(0, time.Time{}),
	}
	r.bonuses = []*Bonus{
		NewBonus(BonusExtraTime, cfg.Bonuses.ExtraTime),
		NewBonus(BonusFreezeTime, cfg.Bonuses.FreezeTime),
		NewBonus(BonusRevealHint, cfg.Bonuses.RevealHint),
	}
	r.levels = NewLevelSelector(cfg.Levels, r.layout)
	r.machine = fsm.NewFSM(
		StateAtMenu.String(),
		fsm.Events{
			{Name: fsmStart, Src: []string{StateAtMenu.String()}, Dst: StatePlaying.String()},
			{Name: fsmWin, Src: []string{StatePlaying.String()}, Dst: StateWon.String()},
			{Name: fsmLose, Src: []string{StatePlaying.String()}, Dst: StateLost.String()},
			{Name: fsmReset, Src: []string{StatePlaying.String(), StateWon.String(), StateLost.String()}, Dst: StateAtMenu.String()},
		},
		fsm.Callbacks{
			"enter_" + StatePlaying.String(): func(_ context.Context, _ *fsm.Event) {
				r.emit(Event{Kind: EventStarted, Remaining: r.timer.Remaining()})
			},
			"enter_" + StateWon.String(): func(_ context.Context, _ *fsm.Event) {
				r.emit(Event{Kind: EventWon, Streak: r.streak, Remaining: r.timer.Remaining()})
			},
			"enter_" + StateLost.String(): func(_ context.Context, _ *fsm.Event) {
				r.emit(Event{Kind: EventLost, Streak: r.streak})
			},
			"enter_" + StateAtMenu.String(): func(_ context.Context, _ *fsm.Event) {
				r.emit(Event{Kind: EventReset})
			},
		},
	)
	r.placeBonuses()
	return r
}

// State returns the current round state.
func (r *Round) State() RoundState {
	return parseRoundState(r.machine.Current())
}

func (r *Round) transition(event string) {
	if !r.machine.Can(event) {
		return
	}
	// Can guarantees a valid transition; errors are only reported for
	// same-state or unknown events.
	_ = r.machine.Event(context.Background(), event)
}

func (r *Round) emit(e Event) {
	r.events = append(r.events, e)
}

// Events drains the event queue.
func (r *Round) Events() []Event {
	out := r.events
	r.events = nil
	return out
}

// Board returns the live board.
func (r *Round) Board() *Board {
	return r.board
}

// Bonus returns the bonus of the given kind.
func (r *Round) Bonus(k BonusKind) *Bonus {
	for _, b := range r.bonuses {
		if b.Kind == k {
			return b
		}
	}
	return nil
}

// Timer returns the round clock.
func (r *Round) Timer() *CountdownTimer {
	return r.timer
}

// Levels returns the level selector.
func (r *Round) Levels() *LevelSelector {
	return r.levels
}

// Streak returns the number of consecutive matches.
func (r *Round) Streak() int {
	return r.streak
}

// Selection returns the selected positions in pick order.
func (r *Round) Selection() []Pos {
	out := make([]Pos, len(r.sel.picks))
	copy(out, r.sel.picks)
	return out
}

// Resize recomputes every rectangle for a new screen size.
func (r *Round) Resize(screenW, screenH int) {
	r.layout = NewLayout(r.cfg.Layout, screenW, screenH)
	armed, hasArmed := r.levels.Armed()
	r.levels = NewLevelSelector(r.cfg.Levels, r.layout)
	if hasArmed {
		r.levels.Arm(armed)
	}
	r.placeBonuses()
	for _, c := range r.board.Cards() {
		c.Bounds = r.layout.Card(r.columns, c.Pos)
	}
	for _, c := range r.fading {
		c.Bounds = r.layout.Card(r.columns, c.Pos)
	}
}

func (r *Round) placeBonuses() {
	bounds := r.layout.Bonuses(len(r.bonuses))
	for i, b := range r.bonuses {
		b.Bounds = bounds[i]
	}
}

// Setup deals a new board of Rows x columns cards and starts the clock.
func (r *Round) Setup(columns int, budget time.Duration, now time.Time) error {
	if r.State() != StateAtMenu {
		return fmt.Errorf("setup: %w", ErrRoundInProgress)
	}
	if columns < 2 {
		return fmt.Errorf("%w: need at least 2 columns, got %d", ErrInvalidBoard, columns)
	}
	if (Rows*columns)%2 != 0 {
		return fmt.Errorf("%w: %dx%d has an odd card count", ErrInvalidBoard, Rows, columns)
	}
	if !r.layout.Fits(columns) {
		return fmt.Errorf("%w: %d columns exceed the configured width", ErrInvalidBoard, columns)
	}

	n := Rows * columns / 2
	ids := make([]int, 0, 2*n)
	for id := 1; id <= n; id++ {
		ids = append(ids, id, id)
	}
	r.shuffler.Shuffle(len(ids), func(i, j int) {
		ids[i], ids[j] = ids[j], ids[i]
	})

	r.board.Clear()
	r.fading = nil
	r.columns = columns
	for row := range Rows {
		for col := range columns {
			id := ids[len(ids)-1]
			ids = ids[:len(ids)-1]
			pos := Pos{Col: col, Row: row}
			r.board.Place(NewCard(id, pos, r.layout.Card(columns, pos)))
		}
	}

	r.sel = selection{}
	r.clicks = r.clicks[:0]
	r.timer.Start(budget, now)
	for _, b := range r.bonuses {
		b.Reset()
	}
	r.streak = 0
	r.bestStreak = 0
	r.score = 0
	r.pairs = 0
	r.levels.Disarm()

	r.transition(fsmStart)
	return nil
}

// SelectLevel starts a round on the given tier. It is ignored outside the menu.
func (r *Round) SelectLevel(t config.Tier, now time.Time) error {
	if r.State() != StateAtMenu {
		return nil
	}
	columns, budget, ok := r.levels.Lookup(t)
	if !ok {
		return fmt.Errorf("%w: unknown tier %d", ErrInvalidBoard, t)
	}
	return r.Setup(columns, budget, now)
}

// Reset abandons the current round and returns to the menu.
func (r *Round) Reset() {
	if r.State() == StateAtMenu {
		return
	}
	r.board.Clear()
	r.fading = nil
	r.sel = selection{}
	r.clicks = r.clicks[:0]
	for _, b := range r.bonuses {
		b.Reset()
	}
	r.levels.Disarm()
	r.transition(fsmReset)
}

// PointerDown latches a click at (x, y) for the next tick.
func (r *Round) PointerDown(x, y int) {
	r.clicks = append(r.clicks, core.Point{X: x, Y: y})
	r.pressed = true
}

// PointerUp releases the pointer. Clicks are taken on press.
func (r *Round) PointerUp() {
	r.pressed = false
}

// Pressed reports whether the pointer is held down.
func (r *Round) Pressed() bool {
	return r.pressed
}

// Tick advances the round to now.
func (r *Round) Tick(now time.Time) {
	clicks := r.clicks
	r.clicks = nil

	switch r.State() {
	case StateAtMenu:
		r.tickMenu(clicks, now)
	case StatePlaying:
		r.tickPlaying(clicks, now)
	default:
		// Won and Lost are absorbing until Reset.
	}
}

func (r *Round) tickMenu(clicks []core.Point, now time.Time) {
	for _, p := range clicks {
		r.levels.Click(p.X, p.Y)
	}
	t, ok := r.levels.Armed()
	if !ok {
		return
	}
	if err := r.SelectLevel(t, now); err != nil {
		r.levels.Disarm()
		r.emit(Event{Kind: EventSetupFailed, Err: err})
	}
}

func (r *Round) tickPlaying(clicks []core.Point, now time.Time) {
	for _, p := range clicks {
		r.click(p.X, p.Y, now)
	}

	for _, b := range r.bonuses {
		if b.Update(now) {
			r.emit(Event{Kind: EventBonusExpired, Bonus: b.Kind})
		}
	}

	if r.frozen() {
		r.timer.Hold(now)
	} else {
		r.timer.Tick(now)
	}

	if r.timer.Expired() && !r.board.Empty() {
		r.transition(fsmLose)
		return
	}
	if r.board.Empty() {
		r.transition(fsmWin)
		return
	}

	r.animate()

	if len(r.sel.picks) == 2 && now.Sub(r.sel.at) >= r.cfg.Rules.RevealDelay {
		r.resolve()
	}

	for _, u := range r.cfg.Unlocks {
		if r.streak < u.Streak {
			continue
		}
		kind, err := ParseBonusKind(u.Bonus)
		if err != nil {
			continue
		}
		if b := r.Bonus(kind); b != nil && b.Unlock() {
			r.emit(Event{Kind: EventBonusUnlocked, Bonus: kind, Streak: r.streak})
		}
	}
}

func (r *Round) frozen() bool {
	b := r.Bonus(BonusFreezeTime)
	return b != nil && b.Active()
}

func (r *Round) click(x, y int, now time.Time) {
	for _, b := range r.bonuses {
		if !b.Bounds.Contains(x, y) {
			continue
		}
		var hinted []*Card
		if b.Kind == BonusRevealHint {
			hinted = r.hintCards()
			if len(hinted) == 0 {
				break
			}
		}
		if b.Press(now) {
			for _, c := range hinted {
				r.pick(c, now)
			}
			r.activate(b)
			return
		}
		break
	}

	if len(r.sel.picks) >= 2 {
		return
	}
	c, ok := r.board.HitTest(x, y)
	if !ok || !c.Selectable() {
		return
	}
	r.pick(c, now)
}

func (r *Round) pick(c *Card, now time.Time) {
	c.Flip()
	r.sel.picks = append(r.sel.picks, c.Pos)
	r.sel.at = now
}

func (r *Round) activate(b *Bonus) {
	if b.Grant > 0 {
		r.timer.Extend(b.Grant)
	}
	r.emit(Event{Kind: EventBonusActivated, Bonus: b.Kind, Remaining: r.timer.Remaining()})
}

// hintCards returns the cards a hint would pick: the partner of the single
// selected card, or the first pickable card in row-major order together with
// its partner. It returns nil when there is nothing to pick.
func (r *Round) hintCards() []*Card {
	switch len(r.sel.picks) {
	case 0:
		for _, c := range r.board.Cards() {
			if !c.Selectable() {
				continue
			}
			if p, ok := r.board.Partner(c); ok && p.Selectable() {
				return []*Card{c, p}
			}
		}
	case 1:
		c, ok := r.board.Card(r.sel.picks[0])
		if !ok {
			return nil
		}
		if p, ok := r.board.Partner(c); ok && p.Selectable() {
			return []*Card{p}
		}
	}
	return nil
}

func (r *Round) animate() {
	for _, c := range r.board.Cards() {
		c.Advance()
	}
	live := r.fading[:0]
	for _, c := range r.fading {
		c.Advance()
		if !c.Hidden() {
			live = append(live, c)
		}
	}
	r.fading = live
}

func (r *Round) resolve() {
	a, okA := r.board.Card(r.sel.picks[0])
	b, okB := r.board.Card(r.sel.picks[1])
	r.sel.picks = r.sel.picks[:0]
	if !okA || !okB {
		return
	}

	frozen := r.frozen()
	if a.MatchID == b.MatchID {
		for _, c := range []*Card{a, b} {
			c.MarkMatched()
			r.board.Remove(c.Pos)
			r.fading = append(r.fading, c)
		}
		r.streak++
		r.bestStreak = max(r.bestStreak, r.streak)
		r.pairs++
		r.score += r.cfg.Rules.PointsPerPair
		if !frozen {
			r.timer.Extend(r.cfg.Rules.MatchReward)
		}
		r.emit(Event{Kind: EventMatched, MatchID: a.MatchID, Streak: r.streak, Remaining: r.timer.Remaining()})
		return
	}

	a.FlipDown()
	b.FlipDown()
	r.streak = 0
	if !frozen {
		r.timer.Reduce(r.cfg.Rules.MismatchPenalty)
	}
	r.emit(Event{Kind: EventMismatched, Remaining: r.timer.Remaining()})
}
