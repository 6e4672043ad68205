package contract

import (
	"testing"
	"time"

	"github.com/alexanderramin/studysync/internal/domain"
	"github.com/alexanderramin/studysync/internal/scheduler"
	"github.com/stretchr/testify/assert"
)

func TestNewPlanWeekRequest_SetsDefaults(t *testing.T) {
	req := NewPlanWeekRequest()

	assert.Equal(t, domain.DefaultEffortHours, req.DefaultEffortHours)
	assert.Nil(t, req.Now)
	assert.False(t, req.DryRun)
}

func TestNewTopicPlanRequest_SchedulesByDefault(t *testing.T) {
	req := NewTopicPlanRequest("Solar panels")

	assert.Equal(t, "Solar panels", req.Topic)
	assert.True(t, req.Schedule)
	assert.False(t, req.Attach)
	assert.Nil(t, req.EffortHours)
	assert.Nil(t, req.Due)
	assert.Equal(t, domain.DefaultEffortHours, req.DefaultEffortHours)
}

func TestNewProgressRequest_UsesDayWindow(t *testing.T) {
	assert.Equal(t, 24*time.Hour, NewProgressRequest().DueSoonWindow)
}

func TestNewRemindersRequest_LooksAheadOneWeek(t *testing.T) {
	assert.Equal(t, 7*24*time.Hour, NewRemindersRequest().Horizon)
}

func TestPlanWeekResponse_FullyPlaced(t *testing.T) {
	assert.True(t, (&PlanWeekResponse{}).FullyPlaced())

	resp := &PlanWeekResponse{Shortfalls: []scheduler.Shortfall{{ItemID: "a", Requested: 4, Placed: 1}}}
	assert.False(t, resp.FullyPlaced())
}

func TestPlanError_Message(t *testing.T) {
	err := &PlanError{Code: PlanErrEmptyTopic, Message: "topic is required"}
	assert.Equal(t, "EMPTY_TOPIC: topic is required", err.Error())
}
