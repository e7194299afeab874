package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"pathplan.app/engine/internal/domain"
	"pathplan.app/engine/internal/http/handler"
	"pathplan.app/engine/internal/service"
)

var _ = Describe("RoadmapHandler", func() {
	var (
		router *gin.Engine
		svc    *mockRoadmapService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockRoadmapService{}
		h := handler.NewRoadmapHandler(svc)
		router.POST("/generate-roadmap", h.Generate)
	})

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/generate-roadmap", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	decode := func(w *httptest.ResponseRecorder) map[string]any {
		var resp map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		return resp
	}

	It("returns 200 with the roadmap on success", func() {
		svc.generateFn = func(_ context.Context, _ []domain.Goal) (*domain.Roadmap, error) {
			return &domain.Roadmap{Text: `{"milestones":[]}`}, nil
		}

		w := post(`{"goals":[{"description":"Launch v2","timeline":"Q3","priority":"high","type":"product"}]}`)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(decode(w)).To(Equal(map[string]any{"roadmap": `{"milestones":[]}`}))
	})

	It("maps the request body onto domain goals in order", func() {
		w := post(`{"goals":[
			{"description":"A","timeline":"Q1","priority":"low","type":"business"},
			{"description":"B","timeline":"Q2","priority":"urgent","type":"ops"}
		]}`)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(svc.calls).To(HaveLen(1))
		Expect(svc.calls[0]).To(Equal([]domain.Goal{
			{Description: "A", Timeline: "Q1", Priority: domain.GoalPriorityLow, Type: domain.GoalTypeBusiness},
			{Description: "B", Timeline: "Q2", Priority: domain.GoalPriority("urgent"), Type: domain.GoalType("ops")},
		}))
	})

	It("accepts empty strings for present fields", func() {
		w := post(`{"goals":[{"description":"","timeline":"","priority":"","type":""}]}`)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(svc.calls).To(HaveLen(1))
	})

	It("returns 400 with the fixed detail for an empty goal list", func() {
		svc.generateFn = func(_ context.Context, _ []domain.Goal) (*domain.Roadmap, error) {
			return nil, service.ErrNoGoals
		}

		w := post(`{"goals":[]}`)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(decode(w)).To(Equal(map[string]any{"detail": "No goals provided."}))
	})

	It("returns 400 on invalid JSON", func() {
		w := post(`{`)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(decode(w)).To(HaveKey("detail"))
		Expect(svc.calls).To(BeEmpty())
	})

	It("returns 400 when a goal field is missing", func() {
		w := post(`{"goals":[{"description":"Launch v2","priority":"high","type":"product"}]}`)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(decode(w)["detail"]).To(ContainSubstring("Timeline"))
		Expect(svc.calls).To(BeEmpty())
	})

	It("returns 400 with the validation message for strict goal errors", func() {
		svc.generateFn = func(_ context.Context, _ []domain.Goal) (*domain.Roadmap, error) {
			return nil, &service.GoalValidationError{Index: 0, Err: fmt.Errorf("%w: %q", domain.ErrInvalidPriority, "urgent")}
		}

		w := post(`{"goals":[{"description":"x","timeline":"y","priority":"urgent","type":"product"}]}`)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(decode(w)["detail"]).To(Equal(`goal 0: invalid priority: "urgent"`))
	})

	It("returns 500 with the stringified failure and no roadmap", func() {
		svc.generateFn = func(_ context.Context, _ []domain.Goal) (*domain.Roadmap, error) {
			return nil, &service.UpstreamError{Err: errors.New("simulated network timeout")}
		}

		w := post(`{"goals":[{"description":"x","timeline":"y","priority":"low","type":"product"}]}`)

		Expect(w.Code).To(Equal(http.StatusInternalServerError))
		resp := decode(w)
		Expect(resp).To(Equal(map[string]any{"detail": "simulated network timeout"}))
		Expect(resp).NotTo(HaveKey("roadmap"))
	})
})
