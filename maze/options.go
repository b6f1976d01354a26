package maze

import "fmt"

// DefaultRandomness is the percentage used when WithRandomness is not given.
const DefaultRandomness = 10

// Option customizes a Map before generation.
type Option func(*config)

type config struct {
	randomness int
	rooms      bool
}

func defaultConfig() config {
	return config{randomness: DefaultRandomness}
}

// WithRandomness sets the probability, in percent, of continuing from a
// random active cell instead of the newest one. Panics outside 0..100.
func WithRandomness(percent int) Option {
	if percent < 0 || percent > 100 {
		panic(fmt.Sprintf("maze: WithRandomness(%d) out of range 0..100", percent))
	}
	return func(c *config) { c.randomness = percent }
}

// WithRooms enables or disables room closing.
func WithRooms(enabled bool) Option {
	return func(c *config) { c.rooms = enabled }
}
