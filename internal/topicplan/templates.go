package topicplan

// stepTemplate is a named work phase with its relative weight.
type stepTemplate struct {
	Text   string
	Weight int
}

type topicTemplate struct {
	Outline       []string
	Develop       string
	Produce       string
	ExtraQuestion string
}

// templates is indexed by TopicType; the array length keeps it exhaustive.
var templates = [numTopicTypes]topicTemplate{
	Research: {
		Outline: []string{"Problem Statement", "Literature Review", "Method/Approach", "Experiments/Analysis", "Findings", "Conclusion", "Future Work"},
		Develop: "Develop methodology/approach",
		Produce: "Draft main content",
	},
	Lab: {
		Outline:       []string{"Title & Objective", "Background", "Materials/Setup", "Procedure", "Results", "Analysis", "Conclusion", "References"},
		Develop:       "Develop methodology/approach",
		Produce:       "Run experiments and collect data",
		ExtraQuestion: "How to ensure repeatability and accuracy for %s?",
	},
	Report: {
		Outline: []string{"Abstract", "Introduction", "Methodology", "Results", "Discussion", "Conclusion", "References"},
		Develop: "Develop methodology/approach",
		Produce: "Draft main content",
	},
	Design: {
		Outline:       []string{"Problem Definition", "Requirements", "Concepts", "Selection & Justification", "Detailed Design", "Validation", "Conclusion"},
		Develop:       "Develop and compare concepts",
		Produce:       "Draft main content",
		ExtraQuestion: "What trade-offs drive design choices for %s?",
	},
	Presentation: {
		Outline: []string{"Title Slide", "Agenda", "Context", "Method/Approach", "Findings", "Implications", "Q&A"},
		Develop: "Develop methodology/approach",
		Produce: "Draft main content",
	},
}

// stepsFor returns the eight weighted phases for a topic type.
func stepsFor(t TopicType) []stepTemplate {
	tpl := templates[t]
	return []stepTemplate{
		{"Clarify assignment requirements", 1},
		{"Gather references and sources", 2},
		{"Outline structure and sections", 1},
		{tpl.Develop, 2},
		{tpl.Produce, 3},
		{"Analyze results and refine", 2},
		{"Write-up and formatting", 2},
		{"Review, revise, and finalize", 1},
	}
}

var baseQuestions = []string{
	"What is the goal and success criteria for %s?",
	"What prior work or standards exist for %s?",
	"What constraints, assumptions, and inputs affect %s?",
	"What methods or models are most appropriate for %s?",
	"How will results be validated and interpreted for %s?",
	"What are risks, limitations, and future improvements for %s?",
}

var querySuffixes = []string{
	"methodology best practices",
	"recent papers PDF",
	"case study engineering",
	"equations formulas standards",
	"failure modes limitations",
	"examples datasets",
}
