package fsmall

// Moore is a Moore machine: its output depends on the current state
// alone. The machine is just a state cursor over two borrowed tables;
// it holds no other memory. A single instance is not safe for
// concurrent use, but the tables themselves are read-only and may be
// shared by any number of machines.
type Moore[I comparable, O any] struct {
	state       State
	transitions TransitionTable[I]
	outputs     []O // outputs[state] is the output for state
}

// NewMoore creates a Moore machine starting in initial. Both tables are
// borrowed, not copied, and must outlive the machine unchanged. Nothing
// is validated here: a table that does not cover initial, or a
// transition leading outside the output table, is reported by the
// first lookup that hits it.
func NewMoore[I comparable, O any](initial State, transitions TransitionTable[I], outputs []O) *Moore[I, O] {
	return &Moore[I, O]{
		state:       initial,
		transitions: transitions,
		outputs:     outputs,
	}
}

// Step consumes input, moves to the successor state and returns the
// output of the state just entered. If the transition table has no
// matching entry, Step returns ErrNoTransition and the state stays
// untouched. If the entered state has no output, Step returns
// ErrInvalidState; the transition itself has already taken effect.
func (m *Moore[I, O]) Step(input I) (O, error) {
	next, err := m.transitions.Next(m.state, input)
	if err != nil {
		var zero O
		return zero, err
	}
	m.state = next
	return m.CurrentOutput()
}

// CurrentOutput returns the output of the current state without
// stepping, or ErrInvalidState if the output table is too short to
// cover the current state.
func (m *Moore[I, O]) CurrentOutput() (O, error) {
	if int(m.state) >= len(m.outputs) {
		var zero O
		return zero, ErrInvalidState
	}
	return m.outputs[m.state], nil
}

// CurrentState returns the current state.
func (m *Moore[I, O]) CurrentState() State {
	return m.state
}

// Reset moves the machine to state without consulting the tables.
func (m *Moore[I, O]) Reset(state State) {
	m.state = state
}
