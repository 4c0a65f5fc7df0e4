package memory

import (
	"testing"

	"github.com/vovakirdan/tui-memory/internal/core"
)

func testBoard() *Board {
	b := NewBoard()
	ids := [][]int{{1, 2}, {2, 1}}
	for row, line := range ids {
		for col, id := range line {
			b.Place(NewCard(id, Pos{Col: col, Row: row}, core.NewRect(col*10, row*5, 8, 4)))
		}
	}
	return b
}

func TestBoardPositionsRowMajor(t *testing.T) {
	b := testBoard()
	want := []Pos{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	got := b.Positions()
	if len(got) != len(want) {
		t.Fatalf("Positions() = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Positions()[%d] = %v, expected %v", i, got[i], want[i])
		}
	}
}

func TestBoardHitTest(t *testing.T) {
	b := testBoard()

	c, ok := b.HitTest(12, 6)
	if !ok || c.Pos != (Pos{Col: 1, Row: 1}) {
		t.Errorf("HitTest(12, 6) = %v, %v, expected card at (1,1)", c, ok)
	}
	if _, ok := b.HitTest(9, 0); ok {
		t.Error("HitTest in the gap should miss")
	}
}

func TestBoardPartnerAndRemove(t *testing.T) {
	b := testBoard()
	first, _ := b.Card(Pos{0, 0})

	p, ok := b.Partner(first)
	if !ok || p.Pos != (Pos{Col: 1, Row: 1}) {
		t.Errorf("Partner() = %v, expected (1,1)", p)
	}

	if !b.Remove(Pos{0, 0}) {
		t.Error("Remove should report a removed card")
	}
	if b.Remove(Pos{0, 0}) {
		t.Error("second Remove should be a no-op")
	}
	if b.PairingValid() {
		t.Error("board with a lone card should fail the pairing check")
	}
	b.Remove(Pos{1, 1})
	if !b.PairingValid() || b.Len() != 2 {
		t.Errorf("after removing a full pair: valid=%v len=%d", b.PairingValid(), b.Len())
	}

	b.Clear()
	if !b.Empty() {
		t.Error("Clear should empty the board")
	}
}
