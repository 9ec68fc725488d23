package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseState(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		want  State
		known bool
	}{
		{name: "initial", raw: "initial", want: StateInitial, known: true},
		{name: "mid flow", raw: "collecting_phone", want: StatePhone, known: true},
		{name: "terminal", raw: "submitted", want: StateSubmitted, known: true},
		{name: "empty resets", raw: "", want: StateInitial, known: false},
		{name: "garbage resets", raw: "collecting_shoe_size", want: StateInitial, known: false},
		{name: "case sensitive", raw: "Initial", want: StateInitial, known: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, known := ParseState(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.known, known)
		})
	}
}

func TestStateNextWalksFullSequence(t *testing.T) {
	s := StateInitial
	visited := []State{s}
	for s != StateSubmitted {
		s = s.Next()
		visited = append(visited, s)
	}
	assert.Equal(t, stateOrder, visited)
}

func TestStateNextTerminal(t *testing.T) {
	assert.Equal(t, StateSubmitted, StateSubmitted.Next())
}

func TestStateBefore(t *testing.T) {
	assert.True(t, StateName.Before(StateConfirmation))
	assert.True(t, StateInitial.Before(StateSubmitted))
	assert.False(t, StateConfirmation.Before(StateName))
	assert.False(t, StateDOB.Before(StateDOB))
}
