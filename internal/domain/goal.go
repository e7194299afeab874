package domain

import (
	"errors"
	"fmt"
)

// GoalPriority is the caller-assigned importance of a goal.
type GoalPriority string

const (
	GoalPriorityLow    GoalPriority = "low"
	GoalPriorityMedium GoalPriority = "medium"
	GoalPriorityHigh   GoalPriority = "high"
)

// GoalType classifies what kind of objective a goal is.
type GoalType string

const (
	GoalTypeBusiness  GoalType = "business"
	GoalTypeProduct   GoalType = "product"
	GoalTypeTechnical GoalType = "technical"
)

var (
	ErrInvalidPriority = errors.New("invalid priority")
	ErrInvalidGoalType = errors.New("invalid goal type")
)

// Goal is one objective supplied by the caller. Priority and Type are free
// text; the known values above are only enforced through Validate.
type Goal struct {
	Description string
	Timeline    string
	Priority    GoalPriority
	Type        GoalType
}

func (p GoalPriority) IsValid() bool {
	switch p {
	case GoalPriorityLow, GoalPriorityMedium, GoalPriorityHigh:
		return true
	}
	return false
}

func (t GoalType) IsValid() bool {
	switch t {
	case GoalTypeBusiness, GoalTypeProduct, GoalTypeTechnical:
		return true
	}
	return false
}

// Validate checks Priority and Type against the known values.
func (g Goal) Validate() error {
	if !g.Priority.IsValid() {
		return fmt.Errorf("%w: %q (expected low, medium or high)", ErrInvalidPriority, g.Priority)
	}
	if !g.Type.IsValid() {
		return fmt.Errorf("%w: %q (expected business, product or technical)", ErrInvalidGoalType, g.Type)
	}
	return nil
}
