// SPDX-License-Identifier: MIT
// Package: motifguard/automaton
//
// options.go — functional options for Build.
//
// Contract:
//   • Options mutate an unexported config; later options win.
//   • Option constructors panic on meaningless input (nil hooks).

package automaton

// Option customizes a build.
type Option func(*config)

// WithForwardOnly disables the reverse-complement check when true.
// Default false: both strands are checked.
func WithForwardOnly(on bool) Option {
	return func(c *config) { c.forwardOnly = on }
}

// WithAllowRepeats permits consecutive identical bases when true.
// Default false: the previous base is tracked and may not repeat.
func WithAllowRepeats(on bool) Option {
	return func(c *config) { c.allowRepeats = on }
}

// WithOnState registers a hook called once per discovered state with
// its canonical ID and BFS depth from the initial state. Panics on nil.
func WithOnState(fn func(id string, depth int)) Option {
	if fn == nil {
		panic("automaton: WithOnState(nil)")
	}
	return func(c *config) { c.onState = fn }
}
