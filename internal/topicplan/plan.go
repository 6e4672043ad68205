package topicplan

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/alexanderramin/studysync/internal/domain"
	"github.com/alexanderramin/studysync/internal/scheduler"
)

// Step is a named phase with its duration in hours.
type Step struct {
	Text     string
	Duration float64
}

// Units is the number of half-hour blocks the step needs.
func (s Step) Units() int {
	return int(math.Ceil(s.Duration * 2))
}

// Plan is a generated study plan for one topic.
type Plan struct {
	Topic        string
	Type         TopicType
	TotalHours   int
	Due          time.Time
	Outline      []string
	KeyQuestions []string
	Steps        []Step
	Queries      []string
}

// Generate builds a plan for topic sized to effortHours.
func Generate(topic string, effortHours float64, due time.Time) Plan {
	kind := Classify(topic)
	total := TotalHours(effortHours)

	tpl := stepsFor(kind)
	weights := make([]int, len(tpl))
	for i, s := range tpl {
		weights[i] = s.Weight
	}
	durations := WeightDurations(weights, total)

	steps := make([]Step, len(tpl))
	for i, s := range tpl {
		steps[i] = Step{Text: s.Text, Duration: durations[i]}
	}

	return Plan{
		Topic:        topic,
		Type:         kind,
		TotalHours:   total,
		Due:          due,
		Outline:      append([]string(nil), templates[kind].Outline...),
		KeyQuestions: keyQuestions(topic, kind),
		Steps:        steps,
		Queries:      queries(topic),
	}
}

func keyQuestions(topic string, kind TopicType) []string {
	out := make([]string, 0, len(baseQuestions)+1)
	for _, q := range baseQuestions {
		out = append(out, fmt.Sprintf(q, topic))
	}
	if extra := templates[kind].ExtraQuestion; extra != "" {
		out = append(out, fmt.Sprintf(extra, topic))
	}
	return out
}

func queries(topic string) []string {
	out := make([]string, len(querySuffixes))
	for i, s := range querySuffixes {
		out[i] = topic + " " + s
	}
	return out
}

// WorkItems converts the steps to scheduler input, keeping step order as the
// priority. itemPrefix scopes the generated item IDs.
func (p Plan) WorkItems(itemPrefix string) []scheduler.WorkItem {
	items := make([]scheduler.WorkItem, len(p.Steps))
	for i, s := range p.Steps {
		items[i] = scheduler.WorkItem{
			ID:            itemPrefix + "#" + strconv.Itoa(i+1),
			Label:         s.Text,
			RequiredUnits: s.Units(),
			PriorityKey:   int64(i),
		}
	}
	return items
}

// Snapshot converts the plan into the form stored on an assignment.
func (p Plan) Snapshot() *domain.AttachedPlan {
	steps := make([]domain.PlanStep, len(p.Steps))
	for i, s := range p.Steps {
		steps[i] = domain.PlanStep{Text: s.Text, Duration: s.Duration}
	}
	return &domain.AttachedPlan{
		Topic:        p.Topic,
		Type:         p.Type.String(),
		TotalHours:   p.TotalHours,
		Outline:      append([]string(nil), p.Outline...),
		KeyQuestions: append([]string(nil), p.KeyQuestions...),
		Steps:        steps,
		Queries:      append([]string(nil), p.Queries...),
	}
}
