package llm

import (
	"context"
	"time"

	"github.com/pmma/lifeskills/internal/logger"
)

// LoggingProvider is a decorator that records every LLM request.
type LoggingProvider struct {
	inner Provider
	log   *logger.Logger
}

// WithLogging wraps a Provider with structured request logging.
func WithLogging(p Provider, log *logger.Logger) Provider {
	return &LoggingProvider{inner: p, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	fields := []interface{}{
		"model", l.inner.ModelID(),
		"purpose", purpose,
		"latency_ms", time.Since(start).Milliseconds(),
	}
	if req.Schema != nil {
		fields = append(fields, "schema", req.Schema.Name)
	}

	if resp != nil {
		fields = append(fields,
			"input_tokens", resp.Usage.InputTokens,
			"output_tokens", resp.Usage.OutputTokens,
			"stop_reason", resp.StopReason,
		)
		if resp.Model != "" {
			fields[1] = resp.Model
		}
		if c := LookupCost(resp.Model); c != nil {
			fields = append(fields, "cost_usd", c.Cost(resp.Usage.InputTokens, resp.Usage.OutputTokens))
		}
	}

	if err != nil {
		fields = append(fields, "error", err.Error())
		l.log.Warn("llm request failed", fields...)
		return resp, err
	}

	l.log.Info("llm request", fields...)
	return resp, nil
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
