// Package topicplan turns a free-text assignment topic into a study outline
// and a list of weighted work steps.
package topicplan

import "strings"

// TopicType is the closed set of topic categories.
type TopicType int

const (
	Research TopicType = iota
	Lab
	Report
	Design
	Presentation

	numTopicTypes
)

var topicNames = [numTopicTypes]string{
	Research:     "research",
	Lab:          "lab",
	Report:       "report",
	Design:       "design",
	Presentation: "presentation",
}

func (t TopicType) String() string {
	if t < 0 || t >= numTopicTypes {
		return "unknown"
	}
	return topicNames[t]
}

// ParseTopicType maps a stored name back to its TopicType.
func ParseTopicType(s string) (TopicType, bool) {
	for i, name := range topicNames {
		if name == s {
			return TopicType(i), true
		}
	}
	return Research, false
}

// classifyOrder is the keyword match order; the first hit wins.
var classifyOrder = []TopicType{Lab, Report, Design, Presentation}

// Classify picks a topic type by keyword, defaulting to Research.
func Classify(topic string) TopicType {
	lower := strings.ToLower(topic)
	for _, t := range classifyOrder {
		if strings.Contains(lower, t.String()) {
			return t
		}
	}
	return Research
}
