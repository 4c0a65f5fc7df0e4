package memory

import (
	"testing"

	"github.com/vovakirdan/tui-memory/internal/core"
)

func TestCardFlipSequence(t *testing.T) {
	c := NewCard(4, Pos{}, core.NewRect(0, 0, 8, 4))
	c.Flip()

	steps := []struct {
		phase  FlipPhase
		faceUp bool
	}{
		{PhaseTurnStart, false},
		{PhaseTurnMiddle, true},
		{PhaseTurnEnd, true},
		{PhaseIdle, true},
		{PhaseIdle, true},
	}
	for i, want := range steps {
		c.Advance()
		if c.Phase != want.phase || c.FaceUp != want.faceUp {
			t.Errorf("step %d: phase=%v faceUp=%v, expected %v/%v", i, c.Phase, c.FaceUp, want.phase, want.faceUp)
		}
	}
	if c.Selectable() {
		t.Error("face-up card should not be selectable")
	}
}

func TestCardIdleWithoutFlip(t *testing.T) {
	c := NewCard(1, Pos{}, core.Rect{})
	for range 3 {
		c.Advance()
	}
	if c.Phase != PhaseIdle || c.FaceUp {
		t.Errorf("untouched card moved: phase=%v faceUp=%v", c.Phase, c.FaceUp)
	}
	if !c.Selectable() {
		t.Error("fresh card should be selectable")
	}
}

func TestCardFlipDown(t *testing.T) {
	c := NewCard(2, Pos{}, core.Rect{})
	c.Flip()
	for range 4 {
		c.Advance()
	}
	if !c.FaceUp {
		t.Fatal("card should be face up after a full cycle")
	}

	c.FlipDown()
	c.Advance() // TurnStart
	c.Advance() // TurnMiddle swaps
	if c.FaceUp {
		t.Error("card should be face down after flipping back")
	}
	c.Advance()
	c.Advance()
	if c.Phase != PhaseIdle || !c.Selectable() {
		t.Errorf("card should be idle and selectable again, phase=%v", c.Phase)
	}
}

func TestCardFlipDownCancelsPendingTurn(t *testing.T) {
	c := NewCard(2, Pos{}, core.Rect{})
	c.Flip()
	c.Advance() // TurnStart, face still down
	c.FlipDown()
	c.Advance()

	if c.FaceUp {
		t.Error("cancelled turn should leave the card face down")
	}
	if c.Phase != PhaseTurnEnd {
		t.Errorf("phase = %v, expected turn_end", c.Phase)
	}
}

func TestCardMatchedShortCircuits(t *testing.T) {
	c := NewCard(3, Pos{}, core.Rect{})
	c.Flip()
	for range 4 {
		c.Advance()
	}
	c.MarkMatched()

	c.Advance()
	if c.Phase != PhaseTurnStart {
		t.Fatalf("phase = %v, expected turn_start", c.Phase)
	}
	c.Advance()
	if c.Phase != PhaseTurnEnd || !c.FaceUp {
		t.Errorf("matched card should jump to turn_end face up, got %v faceUp=%v", c.Phase, c.FaceUp)
	}
	if c.Hidden() {
		t.Error("card should still show during turn_end")
	}
	c.Advance()
	if !c.Hidden() {
		t.Error("matched card should be hidden after resolving")
	}

	c.Flip()
	c.Advance()
	if c.Phase != PhaseIdle {
		t.Error("hidden card should not animate again")
	}
}

func TestCardFaceID(t *testing.T) {
	c := NewCard(7, Pos{}, core.Rect{})
	if got := c.FaceID(); got != "card_7" {
		t.Errorf("FaceID() = %q, expected card_7", got)
	}
}
