package approval

import "errors"

// Status is the lifecycle state shared by leave requests and overtime
// declarations. A request is created pending and moves exactly once to a
// terminal state.
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

var StatusValues = []string{
	string(StatusPending),
	string(StatusApproved),
	string(StatusRejected),
	string(StatusCancelled),
}

var (
	ErrAlreadyProcessed = errors.New("request already processed")
	ErrNotRequester     = errors.New("only the original requester may cancel")
	ErrStaleConflict    = errors.New("conflicting request approved after submission")
	ErrSuperseded       = errors.New("superseded by an earlier overlapping request")
)

// Terminal reports whether s admits no further transitions.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected || s == StatusCancelled
}

// CanTransition reports whether a request in state from may move to state to.
// The only legal moves are pending -> approved/rejected/cancelled.
func CanTransition(from, to Status) bool {
	if from != StatusPending {
		return false
	}
	return to == StatusApproved || to == StatusRejected || to == StatusCancelled
}

// Decide validates a decision transition (approve or reject).
func Decide(from Status, approve bool) (Status, error) {
	to := StatusRejected
	if approve {
		to = StatusApproved
	}
	if !CanTransition(from, to) {
		return from, ErrAlreadyProcessed
	}
	return to, nil
}

// Cancel validates a requester-initiated cancellation. requesterID must match
// the request owner unless the caller holds the administrative override.
func Cancel(from Status, ownerID, requesterID string, adminOverride bool) (Status, error) {
	if !CanTransition(from, StatusCancelled) {
		return from, ErrAlreadyProcessed
	}
	if requesterID != ownerID && !adminOverride {
		return from, ErrNotRequester
	}
	return StatusCancelled, nil
}
