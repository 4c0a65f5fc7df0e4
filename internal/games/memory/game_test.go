package memory_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/games/memory"
	"github.com/vovakirdan/tui-memory/internal/games/memory/mocks"
)

type fakeTime struct {
	now time.Time
}

func (f *fakeTime) advance(d time.Duration) {
	f.now = f.now.Add(d)
}

func newMockedGame(t *testing.T, buf *bytes.Buffer) (*memory.Game, *fakeTime) {
	t.Helper()
	ctrl := gomock.NewController(t)

	ft := &fakeTime{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().DoAndReturn(func() time.Time { return ft.now }).AnyTimes()

	// Identity shuffle: (0,r) and (1,r) hold the same pair.
	shuffler := mocks.NewMockShuffler(ctrl)
	shuffler.EXPECT().Shuffle(6, gomock.Any()).Times(1)

	logger := log.New(buf)
	logger.SetLevel(log.DebugLevel)

	g := memory.New(
		memory.WithClock(clock),
		memory.WithShuffler(shuffler),
		memory.WithLogger(logger),
	)
	g.Reset(core.DefaultConfig())
	return g, ft
}

func cardAt(t *testing.T, g *memory.Game, p memory.Pos) memory.CardView {
	t.Helper()
	for _, c := range g.Snapshot().Cards {
		if c.Pos == p {
			return c
		}
	}
	t.Fatalf("no card at %v", p)
	return memory.CardView{}
}

func clickFrame(points ...core.Point) core.InputFrame {
	in := core.NewInputFrame()
	for _, p := range points {
		in.PointerDown(p.X, p.Y)
		in.PointerUp()
	}
	return in
}

func equalCues(a, b []core.Cue) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestGameMatchFlow(t *testing.T) {
	var buf bytes.Buffer
	g, ft := newMockedGame(t, &buf)

	in := core.NewInputFrame()
	in.Set(core.ActionLevelEasy)
	res := g.Step(in)

	if !equalCues(res.Cues, []core.Cue{core.CueStart}) {
		t.Errorf("Cues = %v, expected [start]", res.Cues)
	}
	if _, err := uuid.Parse(g.RoundID()); err != nil {
		t.Errorf("RoundID() = %q is not a UUID: %v", g.RoundID(), err)
	}
	if res.State.Remaining != 45*time.Second {
		t.Errorf("Remaining = %v, expected 45s", res.State.Remaining)
	}

	a := cardAt(t, g, memory.Pos{Col: 0, Row: 0})
	b := cardAt(t, g, memory.Pos{Col: 1, Row: 0})
	if a.MatchID != 0 || a.FaceID != memory.BackID {
		t.Errorf("face-down card leaks its identity: %+v", a)
	}

	g.Step(clickFrame(a.Bounds.Center(), b.Bounds.Center()))
	ft.advance(100 * time.Millisecond)
	g.Step(core.NewInputFrame())

	shown := cardAt(t, g, memory.Pos{Col: 0, Row: 0})
	if !shown.FaceUp || shown.FaceID != "card_3" {
		t.Errorf("flipped card = %+v, expected face up card_3", shown)
	}

	ft.advance(time.Second)
	res = g.Step(core.NewInputFrame())
	if !equalCues(res.Cues, []core.Cue{core.CueCollect}) {
		t.Errorf("Cues = %v, expected [collect]", res.Cues)
	}
	if res.State.Score != 10 {
		t.Errorf("Score = %d, expected 10", res.State.Score)
	}
	if want := 50*time.Second - 1100*time.Millisecond; res.State.Remaining != want {
		t.Errorf("Remaining = %v, expected %v", res.State.Remaining, want)
	}

	logs := buf.String()
	for _, msg := range []string{"round started", "pair matched", g.RoundID()} {
		if !strings.Contains(logs, msg) {
			t.Errorf("log output missing %q:\n%s", msg, logs)
		}
	}
}

func TestGameFreezeHoldsProgress(t *testing.T) {
	var buf bytes.Buffer
	g, ft := newMockedGame(t, &buf)

	in := core.NewInputFrame()
	in.Set(core.ActionLevelEasy)
	g.Step(in)

	ft.advance(time.Second)
	before := g.Step(core.NewInputFrame()).State

	var freeze memory.BonusView
	for _, b := range g.Snapshot().Bonuses {
		if b.Kind == memory.BonusFreezeTime {
			freeze = b
		}
	}
	g.Step(clickFrame(freeze.Bounds.Center()))

	for _, d := range []time.Duration{time.Second, 4 * time.Second} {
		ft.advance(d)
		st := g.Step(core.NewInputFrame()).State
		if st.Remaining != before.Remaining {
			t.Errorf("Remaining = %v while frozen, expected %v", st.Remaining, before.Remaining)
		}
		if got, want := st.Progress(), before.Progress(); got != want {
			t.Errorf("Progress() = %v while frozen, expected %v", got, want)
		}
	}
}

func TestGameLoseAndRestart(t *testing.T) {
	var buf bytes.Buffer
	g, ft := newMockedGame(t, &buf)

	in := core.NewInputFrame()
	in.Set(core.ActionLevelEasy)
	g.Step(in)

	ft.advance(46 * time.Second)
	res := g.Step(core.NewInputFrame())
	if !res.State.GameOver || res.State.Won {
		t.Fatalf("State = %+v, expected a lost game", res.State)
	}
	if !equalCues(res.Cues, []core.Cue{core.CueFail}) {
		t.Errorf("Cues = %v, expected [fail]", res.Cues)
	}

	screen := core.NewScreen(80, 22)
	g.Render(screen)
	if !strings.Contains(screen.String(), "TIME OUT") {
		t.Error("lost screen should show the TIME OUT overlay")
	}

	in = core.NewInputFrame()
	in.Set(core.ActionRestart)
	res = g.Step(in)
	if res.State.GameOver {
		t.Error("restart should leave the terminal state")
	}
	if g.Snapshot().State != memory.StateAtMenu || g.RoundID() != "" {
		t.Errorf("after restart: state=%v round=%q", g.Snapshot().State, g.RoundID())
	}
}

func TestGameRenderMenuAndBoard(t *testing.T) {
	var buf bytes.Buffer
	g, _ := newMockedGame(t, &buf)
	screen := core.NewScreen(80, 22)

	g.Step(core.NewInputFrame())
	g.Render(screen)
	menu := screen.String()
	for _, want := range []string{"Choose a level", "Easy", "Medium", "Hard"} {
		if !strings.Contains(menu, want) {
			t.Errorf("menu missing %q", want)
		}
	}

	lvl := g.Snapshot().Levels[0]
	g.Step(clickFrame(lvl.Bounds.Center()))
	g.Render(screen)
	board := screen.String()
	for _, want := range []string{"MEMORY", "00:45", "Freeze time", "Match hint", "locked"} {
		if !strings.Contains(board, want) {
			t.Errorf("board screen missing %q", want)
		}
	}
}

func TestGameDeterminism(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 22, TickRate: 60, Seed: 12345}
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	run := func() uint64 {
		ctrl := gomock.NewController(t)
		ft := &fakeTime{now: start}
		clock := mocks.NewMockClock(ctrl)
		clock.EXPECT().Now().DoAndReturn(func() time.Time { return ft.now }).AnyTimes()

		g := memory.New(memory.WithClock(clock))
		g.Reset(cfg)

		in := core.NewInputFrame()
		in.Set(core.ActionLevelHard)
		g.Step(in)

		cards := g.Snapshot().Cards
		for i := 0; i < 200; i++ {
			in := core.NewInputFrame()
			if i%7 == 0 {
				c := cards[(i/7)%len(cards)]
				p := c.Bounds.Center()
				in.PointerDown(p.X, p.Y)
			}
			ft.advance(50 * time.Millisecond)
			if g.Step(in).State.GameOver {
				break
			}
		}
		snap := g.Snapshot()
		return snap.Hash()
	}

	if h1, h2 := run(), run(); h1 != h2 {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", h1, h2)
	}
}

func TestGameWithLevelSkipsMenu(t *testing.T) {
	ctrl := gomock.NewController(t)
	ft := &fakeTime{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().DoAndReturn(func() time.Time { return ft.now }).AnyTimes()

	g := memory.New(memory.WithClock(clock), memory.WithLevel(config.TierMedium))
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 22, TickRate: 60, Seed: 7})

	res := g.Step(core.NewInputFrame())
	snap := g.Snapshot()
	if snap.State != memory.StatePlaying {
		t.Fatalf("State = %v, expected %v", snap.State, memory.StatePlaying)
	}
	if snap.Columns != 4 || snap.PairsTotal != 6 {
		t.Errorf("board = %d columns / %d pairs, expected 4 / 6", snap.Columns, snap.PairsTotal)
	}
	if !equalCues(res.Cues, []core.Cue{core.CueStart}) {
		t.Errorf("Cues = %v, expected [start]", res.Cues)
	}

	// Restart goes back to the menu; only a full Reset re-arms the level.
	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	g.Step(in)
	if got := g.Snapshot().State; got != memory.StateAtMenu {
		t.Errorf("after restart State = %v, expected %v", got, memory.StateAtMenu)
	}
}
