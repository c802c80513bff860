// Package finitestate tracks the lifecycle of a configuration assembly.
package finitestate

import (
	"log/slog"

	"github.com/robbyt/go-fsm"
)

// Assembly lifecycle states
const (
	StateCreated    = "created"    // Initial state when the assembly is created
	StateValidating = "validating" // Argument-combination check in progress

	StateLoadingDefault = "loading_default" // Default loader running
	StateLoadingCustom  = "loading_custom"  // Custom loader resolution and invocation

	StateAssembled = "assembled" // Configuration produced (terminal state)
	StateFailed    = "failed"    // Assembly failed (terminal state)
)

// AssemblyTransitions defines the valid state transitions for an assembly.
var AssemblyTransitions = map[string][]string{
	StateCreated:    {StateValidating},
	StateValidating: {StateLoadingDefault, StateLoadingCustom, StateFailed},

	StateLoadingDefault: {StateAssembled, StateFailed},
	StateLoadingCustom:  {StateAssembled, StateFailed},

	StateAssembled: {}, // terminal
	StateFailed:    {}, // terminal
}

// Machine defines the interface for the finite state machine that tracks an
// assembly's lifecycle. The abstraction keeps the assembly package decoupled
// from the concrete FSM implementation and simplifies testing.
type Machine interface {
	// Transition attempts to transition the state machine to the specified state.
	Transition(state string) error

	// GetState returns the current state of the state machine.
	GetState() string
}

// New creates a new assembly state machine starting in StateCreated.
func New(handler slog.Handler) (Machine, error) {
	return fsm.New(handler, StateCreated, AssemblyTransitions)
}
