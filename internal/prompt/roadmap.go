// Package prompt renders roadmap requests into chat turns for the model.
package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"pathplan.app/engine/common/llm"
	"pathplan.app/engine/internal/domain"
)

const roadmapSystemPrompt = "You are an expert product manager helping to create detailed AI-driven roadmaps."

const roadmapUserPrompt = `Based on the following business goals, generate a detailed, timeline-based product roadmap with clear milestones, tasks, and dependencies. Prioritize tasks based on impact, urgency, and resource availability.

**Business Goals:**
%s

**Please structure the roadmap in JSON format with the following fields for each task:**
- ` + "`milestone`" + `: The major milestone name.
- ` + "`tasks`" + `: A list of tasks under the milestone, each containing:
    - ` + "`description`" + `: Task description.
    - ` + "`deadline`" + `: Expected completion date.
    - ` + "`dependencies`" + `: Any dependencies on other tasks.

**Example:**
` + "```json" + `
{
    "milestones": [
        {
            "milestone": "Milestone Name",
            "tasks": [
                {
                    "description": "Task Description",
                    "deadline": "YYYY-MM-DD",
                    "dependencies": ["Dependency Task 1", "Dependency Task 2"]
                }
            ]
        }
    ]
}
` + "```" + `

**JSON Schema:**
` + "```json" + `
%s
` + "```" + `

Generate the roadmap accordingly.`

var roadmapSchema = mustIndent(llm.GenerateSchema[domain.RoadmapDocument]())

// Roadmap is the rendered pair of turns sent to the model.
type Roadmap struct {
	System string
	User   string
}

// BuildRoadmap renders goals into the system and user turns.
func BuildRoadmap(goals []domain.Goal) Roadmap {
	return Roadmap{
		System: roadmapSystemPrompt,
		User:   fmt.Sprintf(roadmapUserPrompt, GoalLines(goals), roadmapSchema),
	}
}

// Messages returns the turns in the order the model receives them.
func (r Roadmap) Messages() []llm.Message {
	return []llm.Message{
		{Role: llm.RoleSystem, Content: r.System},
		{Role: llm.RoleUser, Content: r.User},
	}
}

// GoalLines renders one line per goal, in input order.
func GoalLines(goals []domain.Goal) string {
	lines := make([]string, len(goals))
	for i, g := range goals {
		lines[i] = GoalLine(g)
	}
	return strings.Join(lines, "\n")
}

func GoalLine(g domain.Goal) string {
	return fmt.Sprintf("- %s (Timeline: %s, Priority: %s, Type: %s)",
		g.Description, g.Timeline, Title(string(g.Priority)), Title(string(g.Type)))
}

// Title upper-cases the first letter of every word and lower-cases the rest.
// Values outside the known priority/type sets pass through the same way.
func Title(s string) string {
	// Casers keep state; one per call keeps this safe across requests.
	return cases.Title(language.Und).String(s)
}

func mustIndent(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		panic(fmt.Sprintf("prompt: marshal roadmap schema: %v", err))
	}
	return string(data)
}
