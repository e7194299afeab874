package example

type GoalPriority string

const (
	GoalPriorityLow  GoalPriority = "low"
	GoalPriorityHigh GoalPriority = "high"
)

type GoalType string

const (
	GoalTypeProduct GoalType = "product"
)

type Goal struct {
	Description string
	Priority    GoalPriority
	Type        GoalType
}

func bad() {
	g := &Goal{}
	g.Priority = "urgent" // want "enum field Priority assigned string literal"
	g.Type = "marketing"  // want "enum field Type assigned string literal"

	_ = Goal{Priority: "high"} // want "enum field Priority assigned string literal"
}

func good() {
	g := &Goal{}
	g.Priority = GoalPriorityHigh
	g.Type = GoalTypeProduct
	g.Description = "Launch v2"

	_ = Goal{Priority: GoalPriorityLow, Type: GoalTypeProduct, Description: "free text"}
	_ = Goal{Priority: GoalPriority("from input")}
}
