package core

// Cue is a presentation hint raised by the game for the audio layer.
type Cue int

const (
	CueStart   Cue = iota // Level picked
	CueBonus              // Bonus activated
	CueCollect            // Pair matched
	CueWrong              // Pair mismatched
	CueFail               // Round lost
	CueWin                // Round won
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueStart:
		return "start"
	case CueBonus:
		return "bonus"
	case CueCollect:
		return "collect"
	case CueWrong:
		return "wrong"
	case CueFail:
		return "fail"
	case CueWin:
		return "win"
	default:
		return "unknown"
	}
}
