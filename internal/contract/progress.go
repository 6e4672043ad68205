package contract

import (
	"time"

	"github.com/alexanderramin/studysync/internal/domain"
)

// DefaultDueSoonWindow is how close a deadline must be to count as due soon.
const DefaultDueSoonWindow = 24 * time.Hour

type ProgressRequest struct {
	Now           *time.Time
	DueSoonWindow time.Duration
}

func NewProgressRequest() ProgressRequest {
	return ProgressRequest{DueSoonWindow: DefaultDueSoonWindow}
}

type AssignmentProgress struct {
	ID       string
	Label    string
	Due      time.Time
	Status   domain.AssignmentStatus
	Progress int
	DueSoon  bool
}

type ProgressResponse struct {
	GeneratedAt time.Time
	Total       int
	Submitted   int
	InProgress  int
	DueSoon     int
	// Percent is the rounded share of submitted assignments, 0 when empty.
	Percent int
	Items   []AssignmentProgress
}
