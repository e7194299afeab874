package logger

import "context"

type contextKey string

const logFieldsKey contextKey = "log_fields"

// LogFields contains structured fields automatically added to all logs within a context.
// Handlers and services enrich the context once; every slog call made with that
// context then carries the fields without repeating them.
type LogFields struct {
	RequestID *int64  // Snowflake ID assigned to one roadmap generation
	GoalCount *int    // Number of goals in the roadmap request
	Provider  *string // LLM provider serving the request
	Model     *string // Model identifier sent upstream
	Component string  // Component name (OTel semantic convention style, e.g., "pathplan.service.roadmap")
}

// WithLogFields enriches context with structured log fields.
// Multiple calls merge fields, with newer non-nil/non-empty values taking precedence.
func WithLogFields(ctx context.Context, fields LogFields) context.Context {
	existing := GetLogFields(ctx)
	merged := mergeFields(existing, fields)
	return context.WithValue(ctx, logFieldsKey, merged)
}

// GetLogFields retrieves log fields from context.
// Returns empty LogFields if none are set.
func GetLogFields(ctx context.Context) LogFields {
	if fields, ok := ctx.Value(logFieldsKey).(LogFields); ok {
		return fields
	}
	return LogFields{}
}

func mergeFields(existing, new LogFields) LogFields {
	result := existing

	if new.RequestID != nil {
		result.RequestID = new.RequestID
	}
	if new.GoalCount != nil {
		result.GoalCount = new.GoalCount
	}
	if new.Provider != nil {
		result.Provider = new.Provider
	}
	if new.Model != nil {
		result.Model = new.Model
	}
	if new.Component != "" {
		result.Component = new.Component
	}

	return result
}

// Ptr is a helper to create a pointer from a value.
// Useful for setting LogFields inline: logger.WithLogFields(ctx, logger.LogFields{RequestID: logger.Ptr(id)})
func Ptr[T any](v T) *T {
	return &v
}

// Truncate truncates a string to maxLen characters, appending "..." if truncated.
// Useful for logging potentially long strings like prompts or model output.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
