package game

// ScoreTracker counts accepted clicks for the current round.
type ScoreTracker struct {
	value int
}

// Reset sets the score back to zero.
func (s *ScoreTracker) Reset() {
	s.value = 0
}

// Increment adds one point and returns the new score.
func (s *ScoreTracker) Increment() int {
	s.value++
	return s.value
}

// Value returns the current score.
func (s *ScoreTracker) Value() int {
	return s.value
}
