package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"pathplan.app/engine/common/id"
	"pathplan.app/engine/common/llm"
	"pathplan.app/engine/common/logger"
	"pathplan.app/engine/internal/domain"
	"pathplan.app/engine/internal/prompt"
)

// ErrNoGoals rejects a request before any upstream call is made.
var ErrNoGoals = errors.New("no goals provided")

// GoalValidationError reports a goal rejected by strict validation.
type GoalValidationError struct {
	Index int
	Err   error
}

func (e *GoalValidationError) Error() string {
	return fmt.Sprintf("goal %d: %v", e.Index, e.Err)
}

func (e *GoalValidationError) Unwrap() error {
	return e.Err
}

// UpstreamError wraps any failure of the text-generation call. Its message
// is the cause's message, unchanged.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return e.Err.Error()
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

type RoadmapService interface {
	Generate(ctx context.Context, goals []domain.Goal) (*domain.Roadmap, error)
}

type RoadmapServiceConfig struct {
	Provider    string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration // zero leaves the call bounded only by ctx
	StrictGoals bool
}

type roadmapService struct {
	llm llm.Client
	cfg RoadmapServiceConfig
}

func NewRoadmapService(client llm.Client, cfg RoadmapServiceConfig) RoadmapService {
	return &roadmapService{
		llm: client,
		cfg: cfg,
	}
}

func (s *roadmapService) Generate(ctx context.Context, goals []domain.Goal) (*domain.Roadmap, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		RequestID: logger.Ptr(id.New()),
		GoalCount: logger.Ptr(len(goals)),
		Provider:  logger.Ptr(s.cfg.Provider),
		Model:     logger.Ptr(s.llm.Model()),
		Component: "pathplan.service.roadmap",
	})

	if len(goals) == 0 {
		slog.InfoContext(ctx, "roadmap request rejected: no goals")
		return nil, ErrNoGoals
	}

	if s.cfg.StrictGoals {
		for i, g := range goals {
			if err := g.Validate(); err != nil {
				slog.InfoContext(ctx, "roadmap request rejected: invalid goal", "index", i, "error", err)
				return nil, &GoalValidationError{Index: i, Err: err}
			}
		}
	}

	p := prompt.BuildRoadmap(goals)

	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	sc := logger.StartSpan(ctx, "roadmap.generate",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("llm.model", s.llm.Model()),
			attribute.Int("roadmap.goal_count", len(goals)),
		))
	defer sc.End()
	ctx = sc.Context()

	req := llm.Request{
		Messages:    p.Messages(),
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: llm.Temp(s.cfg.Temperature),
	}

	start := time.Now()
	resp, err := s.llm.Complete(ctx, req)
	if err == nil && (resp == nil || len(resp.Choices) == 0) {
		err = llm.ErrNoChoices
	}
	if err != nil {
		sc.RecordError(err)
		slog.ErrorContext(ctx, "roadmap generation failed",
			"error", err,
			"duration_ms", time.Since(start).Milliseconds())
		return nil, &UpstreamError{Err: err}
	}

	roadmap := &domain.Roadmap{Text: strings.TrimSpace(resp.Choices[0])}

	slog.InfoContext(ctx, "roadmap generated",
		"duration_ms", time.Since(start).Milliseconds(),
		"prompt_tokens", resp.PromptTokens,
		"completion_tokens", resp.CompletionTokens,
		"roadmap_chars", len(roadmap.Text))
	slog.DebugContext(ctx, "roadmap preview", "text", logger.Truncate(roadmap.Text, 200))

	return roadmap, nil
}
