package dto

import "pathplan.app/engine/internal/domain"

// NoGoalsDetail is the detail returned for an empty goal list.
const NoGoalsDetail = "No goals provided."

// GoalRequest fields are pointers so "required" means present; an empty
// string is accepted.
type GoalRequest struct {
	Description *string `json:"description" binding:"required"`
	Timeline    *string `json:"timeline" binding:"required"`
	Priority    *string `json:"priority" binding:"required"`
	Type        *string `json:"type" binding:"required"`
}

type GenerateRoadmapRequest struct {
	Goals []GoalRequest `json:"goals" binding:"dive"`
}

type GenerateRoadmapResponse struct {
	Roadmap string `json:"roadmap"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}

func (r GenerateRoadmapRequest) ToDomain() []domain.Goal {
	goals := make([]domain.Goal, len(r.Goals))
	for i, g := range r.Goals {
		goals[i] = domain.Goal{
			Description: deref(g.Description),
			Timeline:    deref(g.Timeline),
			Priority:    domain.GoalPriority(deref(g.Priority)),
			Type:        domain.GoalType(deref(g.Type)),
		}
	}
	return goals
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
