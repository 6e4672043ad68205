package domain

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// AssignmentStatus is the lifecycle state of an assignment. The zero value
// means the assignment has not been started.
type AssignmentStatus string

const (
	StatusNotStarted AssignmentStatus = ""
	StatusInProgress AssignmentStatus = "in_progress"
	StatusSubmitted  AssignmentStatus = "submitted"
)

// ValidAssignmentStatuses is the canonical set of accepted status strings.
var ValidAssignmentStatuses = map[AssignmentStatus]bool{
	StatusNotStarted: true,
	StatusInProgress: true,
	StatusSubmitted:  true,
}

// Label returns a human label for the status.
func (s AssignmentStatus) Label() string {
	switch s {
	case StatusInProgress:
		return "in progress"
	case StatusSubmitted:
		return "submitted"
	default:
		return "not started"
	}
}

// ParseAssignmentStatus accepts the stored values plus "not_started".
func ParseAssignmentStatus(s string) (AssignmentStatus, error) {
	if s == "not_started" {
		return StatusNotStarted, nil
	}
	st := AssignmentStatus(s)
	if !ValidAssignmentStatuses[st] {
		return "", ErrInvalidInput
	}
	return st, nil
}

// BlockSource records which planner produced a stored plan block.
type BlockSource string

const (
	SourceWeekPlan  BlockSource = "week"
	SourceTopicPlan BlockSource = "topic"
)
