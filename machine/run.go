package machine

import (
	"fmt"
	"strings"
)

// Transduce runs m over seq one character at a time, starting from the
// initial state, and returns the emitted sequence. The input is
// accepted only if every character has a transition and the final
// state may stop. Otherwise it returns ErrRejected, wrapped with the
// 1-based position of the offending character (len(seq)+1 when the
// final state cannot stop).
func (m *Machine) Transduce(seq string) (string, error) {
	if len(m.States) == 0 {
		return "", ErrEmptyMachine
	}
	var out strings.Builder
	out.Grow(len(seq))

	cur := m.Start()
	for i := 0; i < len(seq); i++ {
		next, emit, ok := m.Step(cur, seq[i:i+1])
		if !ok {
			return out.String(), fmt.Errorf("%w: no transition for %q at position %d (state %q)",
				ErrRejected, seq[i], i+1, m.States[cur].ID)
		}
		out.WriteString(emit)
		cur = next
	}
	if !m.CanStop(cur) {
		return out.String(), fmt.Errorf("%w: state %q cannot end at position %d",
			ErrRejected, m.States[cur].ID, len(seq)+1)
	}
	return out.String(), nil
}

// Accepts reports whether Transduce succeeds on seq.
func (m *Machine) Accepts(seq string) bool {
	_, err := m.Transduce(seq)
	return err == nil
}
