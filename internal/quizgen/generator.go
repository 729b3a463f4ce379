package quizgen

import (
	"context"

	"github.com/google/uuid"

	"github.com/abhisek/quizgen/internal/llm"
)

// Purpose labels attached to LLM requests for the request log.
const (
	PurposeMCQ       = "mcq-gen"
	PurposeFillBlank = "fill-blank-gen"
)

// QuestionGenerator produces quiz questions using an LLM provider.
// It holds no mutable state and is safe for concurrent use when the
// provider is.
type QuestionGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a QuestionGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *QuestionGenerator {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = llm.DefaultMaxAttempts
	}
	return &QuestionGenerator{provider: provider, config: cfg}
}

// ModelID returns the model identifier of the underlying provider.
func (g *QuestionGenerator) ModelID() string {
	return g.provider.ModelID()
}

// GenerateMCQ produces a multiple-choice question about topic. An empty
// difficulty means "medium". Each attempt is one LLM request; after
// Config.MaxAttempts failures a *GenerationError wrapping the last failure
// is returned.
func (g *QuestionGenerator) GenerateMCQ(ctx context.Context, topic, difficulty string) (*MCQQuestion, error) {
	ctx = g.tag(ctx, PurposeMCQ)
	req := g.request(buildMCQPrompt(topic, difficulty), MCQSchema)

	q, attempts, err := llm.Retry(ctx, g.config.MaxAttempts, func(ctx context.Context) (*MCQQuestion, error) {
		resp, err := g.provider.Generate(ctx, req)
		if err != nil {
			return nil, err
		}
		q, err := parseMCQ(resp.Content)
		if err != nil {
			return nil, err
		}
		if err := runValidators(q, g.config.MCQValidators); err != nil {
			return nil, err
		}
		return q, nil
	})
	if err != nil {
		return nil, wrapFailure(KindMCQ, attempts, err)
	}
	return q, nil
}

// GenerateFillBlank produces a fill-in-the-blank question about topic whose
// text contains BlankMarker. Retry behavior matches GenerateMCQ.
func (g *QuestionGenerator) GenerateFillBlank(ctx context.Context, topic, difficulty string) (*FillBlankQuestion, error) {
	ctx = g.tag(ctx, PurposeFillBlank)
	req := g.request(buildFillBlankPrompt(topic, difficulty), FillBlankSchema)

	q, attempts, err := llm.Retry(ctx, g.config.MaxAttempts, func(ctx context.Context) (*FillBlankQuestion, error) {
		resp, err := g.provider.Generate(ctx, req)
		if err != nil {
			return nil, err
		}
		q, err := parseFillBlank(resp.Content)
		if err != nil {
			return nil, err
		}
		if err := runValidators(q, g.config.FillBlankValidators); err != nil {
			return nil, err
		}
		return q, nil
	})
	if err != nil {
		return nil, wrapFailure(KindFillBlank, attempts, err)
	}
	return q, nil
}

// tag labels ctx with the purpose and a fresh generation ID unless the
// caller already set one.
func (g *QuestionGenerator) tag(ctx context.Context, purpose string) context.Context {
	ctx = llm.WithPurpose(ctx, purpose)
	if llm.GenerationIDFrom(ctx) == "" {
		ctx = llm.WithGenerationID(ctx, uuid.NewString())
	}
	return ctx
}

func (g *QuestionGenerator) request(prompt string, schema *llm.Schema) llm.Request {
	return llm.Request{
		Messages:    llm.UserPrompt(prompt),
		Schema:      schema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}
}

// wrapFailure turns the last attempt's error into a GenerationError. A
// context error stays reachable through errors.Is.
func wrapFailure(kind Kind, attempts int, err error) error {
	return &GenerationError{Kind: kind, Attempts: attempts, Err: err}
}
