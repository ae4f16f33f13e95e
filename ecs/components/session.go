package components

// Session is the singleton run state: score, lives, current wave.
// Exactly one entity carries it while a run is active.
type Session struct {
	Score int
	Lives int
	Wave  int
	Over  bool
}
