package quote

import "aquaria-partner-portal/internal/domain/apperr"

type Status string

const (
	StatusDraft    Status = "draft"
	StatusSent     Status = "sent"
	StatusAccepted Status = "accepted"
	StatusOrdered  Status = "ordered"
)

var statusRank = map[Status]int{
	StatusDraft:    0,
	StatusSent:     1,
	StatusAccepted: 2,
	StatusOrdered:  3,
}

func (s Status) Valid() bool {
	_, ok := statusRank[s]
	return ok
}

// CanTransition allows forward moves only. Staying put is not a transition.
func (s Status) CanTransition(to Status) bool {
	from, ok := statusRank[s]
	if !ok {
		return false
	}
	next, ok := statusRank[to]
	return ok && next > from
}

// Transition validates a move from s to to.
func (s Status) Transition(to Status) error {
	if !to.Valid() {
		return apperr.Invalid("status", "unknown status %q", to)
	}
	if !s.CanTransition(to) {
		return apperr.Transition(string(s), string(to))
	}
	return nil
}

// Resendable quotes have not been accepted yet.
func (s Status) Resendable() bool { return s == StatusDraft || s == StatusSent }
