package generation

import "fmt"

// Task selects which kind of content a request produces.
type Task string

// Supported tasks.
const (
	TaskDescription Task = "description"
	TaskAbout       Task = "about"
	TaskProject     Task = "project"
	TaskSkills      Task = "skills"
)

// Input limits. The api request tags repeat these values.
const (
	MaxEnhanceInputChars = 1000
	MaxSkillPromptChars  = 200
)

// Default token ceilings per task family.
const (
	DefaultEnhanceMaxTokens = 350
	DefaultSkillsMaxTokens  = 200
)

var contextLabels = map[Task]string{
	TaskDescription: "portfolio description",
	TaskAbout:       "about me section",
	TaskProject:     "project description",
	TaskSkills:      "skill list",
}

// Request is one immutable unit of work for the pipeline.
type Request struct {
	Task            Task
	Input           string
	ContextLabel    string
	MaxOutputTokens int
}

// NewRequest builds a Request for task. A non-positive maxOutputTokens
// selects the task family's default.
func NewRequest(task Task, input string, maxOutputTokens int) (Request, error) {
	label, ok := contextLabels[task]
	if !ok {
		return Request{}, fmt.Errorf("unknown generation task %q", task)
	}
	if maxOutputTokens <= 0 {
		maxOutputTokens = DefaultEnhanceMaxTokens
		if task == TaskSkills {
			maxOutputTokens = DefaultSkillsMaxTokens
		}
	}
	return Request{
		Task:            task,
		Input:           input,
		ContextLabel:    label,
		MaxOutputTokens: maxOutputTokens,
	}, nil
}

// IsEnhancement reports whether the task rewrites user text into a paragraph.
func (t Task) IsEnhancement() bool {
	return t == TaskDescription || t == TaskAbout || t == TaskProject
}

// ParseEnhanceTask maps the optional "type" field of an enhance call to a
// Task. The empty string selects TaskDescription.
func ParseEnhanceTask(s string) (Task, error) {
	if s == "" {
		return TaskDescription, nil
	}
	t := Task(s)
	if !t.IsEnhancement() {
		return "", fmt.Errorf("unsupported enhancement type %q", s)
	}
	return t, nil
}
