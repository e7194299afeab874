package domain

// Roadmap is the model's answer relayed verbatim (whitespace-trimmed).
// It is never parsed into RoadmapDocument.
type Roadmap struct {
	Text string
}

// RoadmapDocument is the structure the model is asked to produce. It exists
// to describe the requested JSON shape in the prompt.
type RoadmapDocument struct {
	Milestones []Milestone `json:"milestones" jsonschema:"description=Ordered major milestones of the roadmap"`
}

type Milestone struct {
	Milestone string `json:"milestone" jsonschema:"description=The major milestone name"`
	Tasks     []Task `json:"tasks" jsonschema:"description=Tasks that make up the milestone"`
}

type Task struct {
	Description  string   `json:"description" jsonschema:"description=Task description"`
	Deadline     string   `json:"deadline" jsonschema:"description=Expected completion date (YYYY-MM-DD)"`
	Dependencies []string `json:"dependencies" jsonschema:"description=Descriptions of tasks this task depends on"`
}
