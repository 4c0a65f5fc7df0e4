package core

import "time"

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters (excluding the shell's HUD lines)
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for the card shuffle; 0 means time-based
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  22,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState is the coarse status the shell needs every frame.
type GameState struct {
	Score      int
	GameOver   bool // Won or lost; waiting for a restart
	Won        bool
	Remaining  time.Duration // Time left on the round clock
	TimeBudget time.Duration // Budget the clock runs against; frozen time excluded
}

// Progress returns the fraction of the budget still remaining, in [0, 1].
func (s GameState) Progress() float64 {
	if s.TimeBudget <= 0 {
		return 0
	}
	p := float64(s.Remaining) / float64(s.TimeBudget)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Cues  []Cue // Sound cues raised during this tick, in order
}
