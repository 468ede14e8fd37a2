package engine

import (
	"context"

	"github.com/looplab/fsm"
)

// State is a scheduler lifecycle state
type State string

const (
	StateCreated         State = "created"
	StateImmediateReady  State = "immediate_ready"
	StateAwaitingDelayed State = "awaiting_delayed"
	StateDelayedReady    State = "delayed_ready"
	StateFaulted         State = "faulted"
)

// Lifecycle events
const (
	eventImmediate = "immediate"
	eventWait      = "wait"
	eventReady     = "ready"
	eventFault     = "fault"
)

func newLifecycle(onEnter func(from, to State)) *fsm.FSM {
	return fsm.NewFSM(
		string(StateCreated),
		fsm.Events{
			{Name: eventImmediate, Src: []string{string(StateCreated)}, Dst: string(StateImmediateReady)},
			{Name: eventWait, Src: []string{string(StateImmediateReady)}, Dst: string(StateAwaitingDelayed)},
			{Name: eventReady, Src: []string{string(StateImmediateReady), string(StateAwaitingDelayed)}, Dst: string(StateDelayedReady)},
			{Name: eventFault, Src: []string{string(StateCreated), string(StateImmediateReady), string(StateAwaitingDelayed)}, Dst: string(StateFaulted)},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				onEnter(State(e.Src), State(e.Dst))
			},
		},
	)
}
