package machine

import (
	"encoding/json"
	"fmt"
	"io"
)

// Wire form consumed by the transducer-composition engine:
//
//	{"state":[{"id":"start","trans":[{"in":"A","out":"A","to":"f1"},{"to":"end"}]},…]}
type wireTransition struct {
	In  string `json:"in,omitempty"`
	Out string `json:"out,omitempty"`
	To  string `json:"to"`
}

type wireState struct {
	ID    string           `json:"id"`
	Trans []wireTransition `json:"trans"`
}

type wireMachine struct {
	State []wireState `json:"state"`
}

// MarshalJSON encodes m in the wire form. Destinations are written as
// state IDs.
func (m Machine) MarshalJSON() ([]byte, error) {
	w := wireMachine{State: make([]wireState, len(m.States))}
	for i, s := range m.States {
		ws := wireState{ID: s.ID, Trans: make([]wireTransition, 0, len(s.Trans))}
		for _, t := range s.Trans {
			if t.Dest < 0 || t.Dest >= len(m.States) {
				return nil, fmt.Errorf("%w: state %q has destination %d", ErrInvalid, s.ID, t.Dest)
			}
			ws.Trans = append(ws.Trans, wireTransition{In: t.In, Out: t.Out, To: m.States[t.Dest].ID})
		}
		w.State[i] = ws
	}
	return json.Marshal(w)
}

// UnmarshalJSON decodes the wire form, resolving destination IDs.
// Returns ErrEmptyMachine, ErrInvalid (duplicate IDs), ErrUnknownState.
func (m *Machine) UnmarshalJSON(data []byte) error {
	var w wireMachine
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("machine: decode: %w", err)
	}
	if len(w.State) == 0 {
		return ErrEmptyMachine
	}
	index := make(map[string]int, len(w.State))
	for i, s := range w.State {
		if _, dup := index[s.ID]; dup {
			return fmt.Errorf("%w: duplicate state ID %q", ErrInvalid, s.ID)
		}
		index[s.ID] = i
	}
	states := make([]State, len(w.State))
	for i, s := range w.State {
		st := State{ID: s.ID, Trans: make([]Transition, 0, len(s.Trans))}
		for _, t := range s.Trans {
			dest, ok := index[t.To]
			if !ok {
				return fmt.Errorf("%w: %q (from %q)", ErrUnknownState, t.To, s.ID)
			}
			st.Trans = append(st.Trans, Transition{In: t.In, Out: t.Out, Dest: dest})
		}
		states[i] = st
	}
	m.States = states
	return nil
}

// WriteJSON writes m as indented JSON followed by a newline.
func (m *Machine) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("machine: write json: %w", err)
	}
	return nil
}

// ReadJSON decodes one machine from r.
func ReadJSON(r io.Reader) (*Machine, error) {
	var m Machine
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, err
	}
	return &m, nil
}
