package domain_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"pathplan.app/engine/internal/domain"
)

var _ = Describe("Goal.Validate", func() {
	valid := domain.Goal{
		Description: "Launch v2",
		Timeline:    "Q3",
		Priority:    domain.GoalPriorityHigh,
		Type:        domain.GoalTypeProduct,
	}

	It("accepts known priority and type values", func() {
		Expect(valid.Validate()).To(Succeed())
	})

	It("rejects an unknown priority", func() {
		g := valid
		g.Priority = domain.GoalPriority("urgent")
		err := g.Validate()
		Expect(err).To(MatchError(domain.ErrInvalidPriority))
		Expect(err.Error()).To(ContainSubstring(`"urgent"`))
	})

	It("rejects an unknown type", func() {
		g := valid
		g.Type = domain.GoalType("marketing")
		Expect(g.Validate()).To(MatchError(domain.ErrInvalidGoalType))
	})

	It("is case sensitive", func() {
		g := valid
		g.Priority = domain.GoalPriority("High")
		Expect(g.Validate()).To(MatchError(domain.ErrInvalidPriority))
	})
})
