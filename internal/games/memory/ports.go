package memory

import "time"

//go:generate go tool mockgen -destination=./mocks/ports_mock.go -package=mocks . Clock,Shuffler

// Clock is the time source driving the round.
type Clock interface {
	Now() time.Time
}

// Shuffler permutes the pair IDs dealt at setup. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock {
	return systemClock{}
}
