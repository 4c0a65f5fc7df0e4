package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetColor(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColor(5, 5, 'X', ColorRed)
	cell := s.GetCell(5, 5)
	if cell.Rune != 'X' || cell.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected X/red", cell)
	}

	// Out of bounds should be silent
	s.SetColor(-1, 0, 'A', ColorRed)
	s.SetColor(100, 0, 'A', ColorRed)
	s.SetColor(0, -1, 'A', ColorRed)
	s.SetColor(0, 100, 'A', ColorRed)

	if got := s.GetCell(100, 0); got != blankCell {
		t.Errorf("Out of bounds GetCell = %+v, expected blank", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(8, 1, "abcd", ColorGreen)

	if got := s.Row(1); got != "        ab" {
		t.Errorf("Row(1) = %q, expected clipped text", got)
	}
	if s.GetCell(9, 1).Color != ColorGreen {
		t.Error("DrawText should color the written cells")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextCentered(0, "ab", ColorDefault)

	if got := s.Row(0); got != "    ab    " {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestScreenDrawTextIn(t *testing.T) {
	s := NewScreen(12, 5)
	s.DrawTextIn(NewRect(2, 1, 8, 3), "hi", ColorDefault)

	if got := s.Row(2); got != "     hi     " {
		t.Errorf("Row(2) = %q", got)
	}

	// Longer than the rectangle: truncated to its width
	s.Clear()
	s.DrawTextIn(NewRect(0, 0, 3, 1), "toolong", ColorDefault)
	if got := s.Row(0); !strings.HasPrefix(got, "too ") {
		t.Errorf("Row(0) = %q, expected truncated text", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 4)
	s.DrawBox(NewRect(0, 0, 5, 4), ColorBlue)

	expected := []string{
		"┌───┐",
		"│   │",
		"│   │",
		"└───┘",
	}
	for y, want := range expected {
		if got := s.Row(y); got != want {
			t.Errorf("Row(%d) = %q, expected %q", y, got, want)
		}
	}
}

func TestScreenFillRectAndClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.FillRect(NewRect(1, 1, 2, 2), '#', ColorGray)

	if s.Get(1, 1) != '#' || s.Get(2, 2) != '#' {
		t.Error("FillRect should fill inside the rectangle")
	}
	if s.Get(0, 0) != ' ' || s.Get(3, 3) != ' ' {
		t.Error("FillRect should not touch cells outside the rectangle")
	}

	s.Clear()
	if strings.TrimSpace(s.String()) != "" {
		t.Errorf("After Clear, String() = %q", s.String())
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 4)
	s.Set(0, 0, 'X')
	s.Resize(6, 2)

	if s.Width() != 6 || s.Height() != 2 {
		t.Errorf("Resize() = %dx%d, expected 6x2", s.Width(), s.Height())
	}
	if s.Get(0, 0) != ' ' {
		t.Error("Resize should clear the buffer")
	}
}
