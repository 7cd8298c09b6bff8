package dialog

import (
	"sync"

	"github.com/dmitrijs2005/holidaybot/internal/datex"
)

// Phase is the position of a conversation inside a multi-turn flow.
type Phase int

const (
	// PhaseIdle: no flow in progress; free text is interpreted as a command.
	PhaseIdle Phase = iota

	// PhaseAwaitingLookupDate: the user was asked for a date to look up.
	PhaseAwaitingLookupDate

	// PhaseAwaitingNewEntryDate: first step of the add flow, waiting for the
	// date of the new personal holiday.
	PhaseAwaitingNewEntryDate

	// PhaseAwaitingNewEntryName: second step of the add flow; pendingDate is
	// set and the engine is waiting for the holiday name.
	PhaseAwaitingNewEntryName
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseAwaitingLookupDate:
		return "awaiting_lookup_date"
	case PhaseAwaitingNewEntryDate:
		return "awaiting_new_entry_date"
	case PhaseAwaitingNewEntryName:
		return "awaiting_new_entry_name"
	default:
		return "unknown"
	}
}

// session is the in-memory conversation state for one conversation identity.
// The mutex serializes turns: at most one event for a given conversation is
// processed at a time, in arrival order. The state is never persisted; losing
// it mid-flow means the next input is reinterpreted from idle.
type session struct {
	mu          sync.Mutex
	phase       Phase
	pendingDate datex.Date
}

// reset returns the session to idle and clears any partial flow input.
func (s *session) reset() {
	s.phase = PhaseIdle
	s.pendingDate = datex.Date{}
}
