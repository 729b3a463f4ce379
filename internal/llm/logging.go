package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/abhisek/quizgen/internal/store"
)

// LoggingProvider records one request-log event per outbound call. The
// purpose, generation ID and attempt number come from the context.
type LoggingProvider struct {
	inner     Provider
	name      string
	eventRepo store.EventRepo

	// warn receives log write failures. Defaults to stderr.
	warn io.Writer
}

// WithLogging wraps p so every Generate call lands in repo. name is the
// configured provider name ("euron", "openai", ...).
func WithLogging(p Provider, name string, repo store.EventRepo) Provider {
	return &LoggingProvider{inner: p, name: name, eventRepo: repo, warn: os.Stderr}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)
	event := l.event(ctx, req, resp, err, time.Since(start))

	// Written even when ctx was cancelled mid-call; a failed write never
	// fails the request.
	if logErr := l.eventRepo.AppendLLMRequest(context.WithoutCancel(ctx), event); logErr != nil {
		fmt.Fprintf(l.warn, "warning: failed to log LLM request event: %v\n", logErr)
	}
	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

func (l *LoggingProvider) event(ctx context.Context, req Request, resp *Response, err error, latency time.Duration) store.LLMRequestEventData {
	ev := store.LLMRequestEventData{
		Provider:     l.name,
		Model:        l.inner.ModelID(),
		Purpose:      PurposeFrom(ctx),
		GenerationID: GenerationIDFrom(ctx),
		Attempt:      AttemptFrom(ctx),
		LatencyMs:    latency.Milliseconds(),
		Success:      err == nil,
		RequestBody:  transcript(req),
	}
	if resp != nil {
		ev.Model = resp.Model
		ev.InputTokens = resp.Usage.InputTokens
		ev.OutputTokens = resp.Usage.OutputTokens
		ev.ResponseBody = string(resp.Content)
	}
	if err != nil {
		ev.ErrorMessage = err.Error()
		if ev.ResponseBody == "" {
			ev.ResponseBody = rejectedContent(err)
		}
	}
	return ev
}

// transcript renders a request as "[role]" sections followed by the
// schema, the form `quizgen llm view` prints.
func transcript(req Request) string {
	var b strings.Builder
	section := func(header, body string) {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", header, body)
	}

	if req.System != "" {
		section("system", req.System)
	}
	for _, m := range req.Messages {
		section(string(m.Role), m.Content)
	}
	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			section("schema: "+req.Schema.Name, string(def))
		}
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

// rejectedContent recovers the model output carried by a rejected response.
func rejectedContent(err error) string {
	var inv *ErrInvalidResponse
	if errors.As(err, &inv) {
		return string(inv.Content)
	}
	var maxTok *ErrMaxTokensExceeded
	if errors.As(err, &maxTok) {
		return string(maxTok.Content)
	}
	return ""
}
