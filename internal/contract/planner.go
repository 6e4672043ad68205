package contract

import (
	"time"

	"github.com/alexanderramin/studysync/internal/domain"
	"github.com/alexanderramin/studysync/internal/scheduler"
	"github.com/alexanderramin/studysync/internal/topicplan"
)

type PlanWeekRequest struct {
	Now *time.Time
	// DefaultEffortHours sizes assignments that carry no estimate.
	DefaultEffortHours float64
	DryRun             bool
}

func NewPlanWeekRequest() PlanWeekRequest {
	return PlanWeekRequest{DefaultEffortHours: domain.DefaultEffortHours}
}

type PlanWeekResponse struct {
	GeneratedAt    time.Time
	Blocks         []*domain.PlanBlock
	Shortfalls     []scheduler.Shortfall
	RequestedUnits int
	PlacedUnits    int
	Capacity       int
}

// FullyPlaced reports whether every requested unit was booked.
func (r *PlanWeekResponse) FullyPlaced() bool {
	return len(r.Shortfalls) == 0
}

// TopicPlanRequest asks for a topic plan. When AssignmentID is set its title,
// effort and due date fill any field left empty.
type TopicPlanRequest struct {
	Topic        string
	EffortHours  *float64
	Due          *time.Time
	AssignmentID string
	// Attach stores the plan snapshot on the assignment.
	Attach             bool
	Schedule           bool
	DefaultEffortHours float64
	Now                *time.Time
}

func NewTopicPlanRequest(topic string) TopicPlanRequest {
	return TopicPlanRequest{
		Topic:              topic,
		Schedule:           true,
		DefaultEffortHours: domain.DefaultEffortHours,
	}
}

// DefaultTopicDueIn is used when a topic plan has neither a due date nor an
// assignment to take one from.
const DefaultTopicDueIn = 3 * 24 * time.Hour

type TopicPlanResponse struct {
	Plan         topicplan.Plan
	AssignmentID string
	Blocks       []*domain.PlanBlock
}

type PlanErrorCode string

const (
	PlanErrEmptyTopic          PlanErrorCode = "EMPTY_TOPIC"
	PlanErrAttachWithoutTarget PlanErrorCode = "ATTACH_WITHOUT_ASSIGNMENT"
)

type PlanError struct {
	Code    PlanErrorCode
	Message string
}

func (e *PlanError) Error() string {
	return string(e.Code) + ": " + e.Message
}
