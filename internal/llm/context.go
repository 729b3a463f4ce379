package llm

import "context"

type contextKey string

const (
	purposeKey      contextKey = "llm_purpose"
	generationIDKey contextKey = "llm_generation_id"
	attemptKey      contextKey = "llm_attempt"
)

// WithPurpose attaches a purpose label to the context for event logging.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom extracts the purpose label from the context.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}

// WithGenerationID tags every request made under ctx with the ID of the
// generate call they belong to.
func WithGenerationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, generationIDKey, id)
}

// GenerationIDFrom returns the generation ID, or "" when none is set.
func GenerationIDFrom(ctx context.Context) string {
	v, _ := ctx.Value(generationIDKey).(string)
	return v
}

// withAttempt records the 1-based attempt number set by Retry.
func withAttempt(ctx context.Context, attempt int) context.Context {
	return context.WithValue(ctx, attemptKey, attempt)
}

// AttemptFrom returns the 1-based attempt number, or 0 outside Retry.
func AttemptFrom(ctx context.Context) int {
	v, _ := ctx.Value(attemptKey).(int)
	return v
}
