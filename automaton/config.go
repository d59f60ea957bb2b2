package automaton

// config aggregates all build knobs. Passed by value once resolved.
type config struct {
	forwardOnly  bool
	allowRepeats bool
	onState      func(id string, depth int)
}

// newConfig applies opts over deterministic defaults: both strands
// checked, repeats forbidden, no hook.
func newConfig(opts ...Option) config {
	cfg := config{
		forwardOnly:  false,
		allowRepeats: false,
		onState:      func(string, int) {},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
