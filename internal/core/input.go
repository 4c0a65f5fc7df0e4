package core

// Action represents a semantic shell action, abstracted from physical key presses.
type Action int

const (
	ActionNone       Action = iota
	ActionLevelEasy         // 1 - pick the easy tier from the menu
	ActionLevelMedium       // 2 - pick the medium tier
	ActionLevelHard         // 3 - pick the hard tier
	ActionRestart           // R - back to the menu after the round ends
	ActionQuit              // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLevelEasy:
		return "LevelEasy"
	case ActionLevelMedium:
		return "LevelMedium"
	case ActionLevelHard:
		return "LevelHard"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// PointerEvent is a pointer press or release captured between two ticks.
type PointerEvent struct {
	Down bool // true for press, false for release
	X, Y int  // Cell coordinates; zero for releases
}

// InputFrame collects everything the player did between two simulation ticks.
type InputFrame struct {
	Actions map[Action]bool
	Pointer []PointerEvent // In arrival order
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// PointerDown records a press at (x, y).
func (f *InputFrame) PointerDown(x, y int) {
	f.Pointer = append(f.Pointer, PointerEvent{Down: true, X: x, Y: y})
}

// PointerUp records a release.
func (f *InputFrame) PointerUp() {
	f.Pointer = append(f.Pointer, PointerEvent{})
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer = f.Pointer[:0]
}
