package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"last column", 29, 24, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
	if c := r.Center(); c != (Point{X: 15, Y: 17}) {
		t.Errorf("Center() = %+v, expected (15, 17)", c)
	}
	if r.Empty() {
		t.Error("Empty() = true for a 20x15 rect")
	}
	if !NewRect(0, 0, 0, 3).Empty() {
		t.Error("Empty() = false for a zero-width rect")
	}
}

func TestCenteredRow(t *testing.T) {
	rects := CenteredRow(3, 10, 3, 2, 40, 5)

	if len(rects) != 3 {
		t.Fatalf("CenteredRow() returned %d rects, expected 3", len(rects))
	}
	// Row is 3*10 + 2*2 = 34 wide, so it starts at (40-34)/2 = 3
	expectedX := []int{3, 15, 27}
	for i, r := range rects {
		if r.X != expectedX[i] || r.Y != 5 || r.W != 10 || r.H != 3 {
			t.Errorf("rect[%d] = %+v, expected x=%d y=5 10x3", i, r, expectedX[i])
		}
	}

	if CenteredRow(0, 10, 3, 2, 40, 5) != nil {
		t.Error("CenteredRow(0, ...) should return nil")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.lo, tc.hi)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}

func TestGameStateProgress(t *testing.T) {
	tests := []struct {
		name     string
		state    GameState
		expected float64
	}{
		{"no budget", GameState{}, 0},
		{"half", GameState{Remaining: 30e9, TimeBudget: 60e9}, 0.5},
		{"full", GameState{Remaining: 60e9, TimeBudget: 60e9}, 1},
		{"over budget clamps", GameState{Remaining: 90e9, TimeBudget: 60e9}, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.state.Progress(); got != tc.expected {
				t.Errorf("Progress() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLevelHard)
	f.PointerDown(3, 4)
	f.PointerUp()

	if !f.Has(ActionLevelHard) || f.Has(ActionRestart) {
		t.Errorf("Has() mismatch: %v", f.Actions)
	}
	if len(f.Pointer) != 2 || !f.Pointer[0].Down || f.Pointer[0].X != 3 || f.Pointer[1].Down {
		t.Errorf("Pointer = %+v, expected press then release", f.Pointer)
	}

	f.Clear()
	if f.Has(ActionLevelHard) || len(f.Pointer) != 0 {
		t.Error("Clear() should drop actions and pointer events")
	}

	var zero InputFrame
	if zero.Has(ActionQuit) {
		t.Error("zero frame should have no actions")
	}
}
