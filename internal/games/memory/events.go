package memory

import "time"

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventStarted EventKind = iota
	EventSetupFailed
	EventMatched
	EventMismatched
	EventBonusUnlocked
	EventBonusActivated
	EventBonusExpired
	EventWon
	EventLost
	EventReset
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventSetupFailed:
		return "setup_failed"
	case EventMatched:
		return "matched"
	case EventMismatched:
		return "mismatched"
	case EventBonusUnlocked:
		return "bonus_unlocked"
	case EventBonusActivated:
		return "bonus_activated"
	case EventBonusExpired:
		return "bonus_expired"
	case EventWon:
		return "won"
	case EventLost:
		return "lost"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Event is an entry of the round's outgoing queue. Fields not relevant to the
// kind are zero.
type Event struct {
	Kind      EventKind
	MatchID   int
	Bonus     BonusKind
	Streak    int
	Remaining time.Duration
	Err       error
}
