package memory

import (
	"cmp"
	"slices"
)

// Board maps grid positions to live cards.
type Board struct {
	cards map[Pos]*Card
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{cards: make(map[Pos]*Card)}
}

// Place puts a card at its position, replacing any previous occupant.
func (b *Board) Place(c *Card) {
	b.cards[c.Pos] = c
}

// Card returns the card at p.
func (b *Board) Card(p Pos) (*Card, bool) {
	c, ok := b.cards[p]
	return c, ok
}

// Remove takes the card at p off the board. Removing an empty position is a no-op.
func (b *Board) Remove(p Pos) bool {
	if _, ok := b.cards[p]; !ok {
		return false
	}
	delete(b.cards, p)
	return true
}

// Len returns the number of live cards.
func (b *Board) Len() int {
	return len(b.cards)
}

// Empty reports whether every pair has been resolved.
func (b *Board) Empty() bool {
	return len(b.cards) == 0
}

// Clear removes all cards.
func (b *Board) Clear() {
	clear(b.cards)
}

// Positions returns the live positions in row-major order.
func (b *Board) Positions() []Pos {
	out := make([]Pos, 0, len(b.cards))
	for p := range b.cards {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b Pos) int {
		if c := cmp.Compare(a.Row, b.Row); c != 0 {
			return c
		}
		return cmp.Compare(a.Col, b.Col)
	})
	return out
}

// Cards returns the live cards in row-major order.
func (b *Board) Cards() []*Card {
	pos := b.Positions()
	out := make([]*Card, len(pos))
	for i, p := range pos {
		out[i] = b.cards[p]
	}
	return out
}

// HitTest returns the card whose bounds contain (x, y).
func (b *Board) HitTest(x, y int) (*Card, bool) {
	for _, c := range b.cards {
		if c.Bounds.Contains(x, y) {
			return c, true
		}
	}
	return nil, false
}

// Partner returns the other live card sharing c's MatchID.
func (b *Board) Partner(c *Card) (*Card, bool) {
	for _, p := range b.Positions() {
		other := b.cards[p]
		if other != c && other.MatchID == c.MatchID {
			return other, true
		}
	}
	return nil, false
}

// PairingValid reports whether every MatchID on the board appears on exactly
// two cards.
func (b *Board) PairingValid() bool {
	counts := make(map[int]int, len(b.cards)/2)
	for _, c := range b.cards {
		counts[c.MatchID]++
	}
	for _, n := range counts {
		if n != 2 {
			return false
		}
	}
	return true
}
