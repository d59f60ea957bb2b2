// SPDX-License-Identifier: MIT
// Package: motifguard/machine
//
// machine.go — the synthesized transition table.
//
// Layout contract:
//   • States[0] is the initial state.
//   • States[len-1] is the terminal state "end"; it has no transitions.
//   • A Transition with empty In and Out is the unconditional
//     "sequence may end here" edge; it always leads to the terminal.
//   • Every other transition consumes one base and emits the same base.
//   • Transition order inside a state is A, C, G, T, then the end edge.

// Package machine holds the transition table produced by the automaton
// builder, together with its JSON and Graphviz encodings, an executor
// for the echo transducer, and structural checks.
package machine

import (
	"errors"
	"fmt"
)

// Sentinel errors for machine inspection and execution.
var (
	// ErrEmptyMachine indicates a machine without states.
	ErrEmptyMachine = errors.New("machine: no states")

	// ErrUnknownState indicates a reference to a state ID that does not exist.
	ErrUnknownState = errors.New("machine: unknown state")

	// ErrInvalid indicates a structural violation found by Validate.
	ErrInvalid = errors.New("machine: invalid structure")

	// ErrRejected indicates that the machine has no path for a sequence.
	ErrRejected = errors.New("machine: sequence rejected")
)

// EndID is the identifier of the terminal state.
const EndID = "end"

// Transition is one outgoing edge. In and Out are empty for the
// unconditional end edge.
type Transition struct {
	In   string
	Out  string
	Dest int
}

// IsEnd reports whether t is the unconditional end edge.
func (t Transition) IsEnd() bool { return t.In == "" && t.Out == "" }

// State is a named node with its ordered transitions.
type State struct {
	ID    string
	Trans []Transition
}

// Machine is an ordered list of states. It is treated as an immutable
// value once returned by a builder.
type Machine struct {
	States []State
}

// NStates returns the number of states, terminal included.
func (m *Machine) NStates() int { return len(m.States) }

// NTransitions returns the number of transitions across all states.
func (m *Machine) NTransitions() int {
	n := 0
	for _, s := range m.States {
		n += len(s.Trans)
	}
	return n
}

// Start returns the index of the initial state.
func (m *Machine) Start() int { return 0 }

// End returns the index of the terminal state, or -1 if empty.
func (m *Machine) End() int { return len(m.States) - 1 }

// Lookup returns the index of the state with the given ID.
func (m *Machine) Lookup(id string) (int, error) {
	for i, s := range m.States {
		if s.ID == id {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrUnknownState, id)
}

// Step returns the destination of the transition consuming in from
// state s, or false if none exists.
func (m *Machine) Step(s int, in string) (int, string, bool) {
	if s < 0 || s >= len(m.States) {
		return -1, "", false
	}
	for _, t := range m.States[s].Trans {
		if t.In == in && !t.IsEnd() {
			return t.Dest, t.Out, true
		}
	}
	return -1, "", false
}

// CanStop reports whether state s has an end edge to the terminal.
func (m *Machine) CanStop(s int) bool {
	if s < 0 || s >= len(m.States) {
		return false
	}
	for _, t := range m.States[s].Trans {
		if t.IsEnd() && t.Dest == m.End() {
			return true
		}
	}
	return false
}

// Clone returns a deep copy.
func (m *Machine) Clone() *Machine {
	c := &Machine{States: make([]State, len(m.States))}
	for i, s := range m.States {
		c.States[i] = State{ID: s.ID, Trans: append([]Transition(nil), s.Trans...)}
	}
	return c
}
