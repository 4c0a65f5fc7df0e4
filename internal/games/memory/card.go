package memory

import (
	"fmt"

	"github.com/vovakirdan/tui-memory/internal/core"
)

// BackID is the asset identifier of a face-down card.
const BackID = "back"

// Pos is a grid coordinate on the board.
type Pos struct {
	Col, Row int
}

// FlipPhase is the step of a card's flip animation.
type FlipPhase int

const (
	PhaseIdle       FlipPhase = iota // Resting, showing its current face
	PhaseTurnStart                   // Edge-on, old face
	PhaseTurnMiddle                  // Edge-on, new face
	PhaseTurnEnd                     // Settling on the new face
)

// String returns the phase name.
func (p FlipPhase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseTurnStart:
		return "turn_start"
	case PhaseTurnMiddle:
		return "turn_middle"
	case PhaseTurnEnd:
		return "turn_end"
	default:
		return "unknown"
	}
}

// Card is a single matchable tile.
type Card struct {
	MatchID int
	Pos     Pos
	Bounds  core.Rect // Hit rectangle in screen cells
	FaceUp  bool
	Matched bool
	Phase   FlipPhase

	turning  bool // Flip requested, face not swapped yet
	resolved bool // Matched and finished its last animation step
}

// NewCard creates a face-down card.
func NewCard(id int, pos Pos, bounds core.Rect) *Card {
	return &Card{MatchID: id, Pos: pos, Bounds: bounds}
}

// FaceID returns the asset identifier of the card's face.
func (c *Card) FaceID() string {
	return fmt.Sprintf("card_%d", c.MatchID)
}

// Flip requests a turn. The card swaps faces during its next animation cycle.
func (c *Card) Flip() {
	if c.Matched {
		return
	}
	c.turning = true
}

// FlipDown turns a shown card back. A card still waiting to turn up simply
// cancels its pending turn.
func (c *Card) FlipDown() {
	if c.Matched {
		return
	}
	if c.FaceUp {
		c.turning = true
		return
	}
	c.turning = false
}

// MarkMatched resolves the card. Its next animation cycle skips the face swap.
func (c *Card) MarkMatched() {
	c.Matched = true
	c.turning = false
}

// Turning reports whether a flip is pending.
func (c *Card) Turning() bool {
	return c.turning
}

// Selectable reports whether a click may pick this card.
func (c *Card) Selectable() bool {
	return !c.FaceUp && !c.turning && !c.Matched
}

// Hidden reports whether a matched card finished resolving and should no
// longer be drawn.
func (c *Card) Hidden() bool {
	return c.resolved && c.Phase == PhaseIdle
}

// Animating reports whether the card is mid-flip or has a flip pending.
func (c *Card) Animating() bool {
	return c.Phase != PhaseIdle || c.turning || (c.Matched && !c.resolved)
}

// Advance moves the flip animation forward by one step.
func (c *Card) Advance() {
	switch c.Phase {
	case PhaseIdle:
		if c.turning || (c.Matched && !c.resolved) {
			c.Phase = PhaseTurnStart
		}
	case PhaseTurnStart:
		switch {
		case c.Matched:
			c.FaceUp = true
			c.resolved = true
			c.Phase = PhaseTurnEnd
		case !c.turning:
			c.Phase = PhaseTurnEnd
		default:
			c.FaceUp = !c.FaceUp
			c.turning = false
			c.Phase = PhaseTurnMiddle
		}
	case PhaseTurnMiddle:
		c.Phase = PhaseTurnEnd
	case PhaseTurnEnd:
		c.Phase = PhaseIdle
	}
}
