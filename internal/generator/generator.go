package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pmma/lifeskills/internal/lifeskill"
	"github.com/pmma/lifeskills/internal/llm"
)

// Generator produces life skill modules via an LLM provider.
type Generator struct {
	provider llm.Provider
	config   Config
}

// New creates a Generator with the given provider and config.
func New(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, config: cfg}
}

// moduleOutput is the raw LLM response before validation.
type moduleOutput struct {
	Parable      lifeskill.Parable             `json:"parable"`
	Explanations lifeskill.AgeTierExplanations `json:"explanations"`
	Quotes       []lifeskill.Quote             `json:"quotes"`
	Lessons      []lifeskill.Lesson            `json:"lessons"`
	Exercises    []lifeskill.Exercise          `json:"exercises"`
}

// Generate produces a complete, validated module for the given request.
// It makes a single provider call; transient upstream failures surface to
// the caller rather than being retried here.
func (g *Generator) Generate(ctx context.Context, req Request) (*lifeskill.LifeSkill, error) {
	topic := strings.TrimSpace(req.Topic)
	if topic == "" {
		return nil, ErrEmptyTopic
	}

	slug := lifeskill.Slugify(topic)
	if slug == "" {
		return nil, fmt.Errorf("topic %q yields an empty slug", req.Topic)
	}

	req.Topic = topic
	ctx = llm.WithPurpose(ctx, "lifeskill-gen")

	llmReq := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(req, slug)},
		},
		Schema:      ModuleSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, llmReq)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw moduleOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	description := req.Description
	if description == "" {
		description = DefaultDescription(topic)
	}

	module := &lifeskill.LifeSkill{
		ID:           slug,
		Title:        topic,
		Slug:         slug,
		Description:  description,
		Parable:      raw.Parable,
		Explanations: raw.Explanations,
		Quotes:       raw.Quotes,
		Lessons:      raw.Lessons,
		Exercises:    raw.Exercises,
	}

	if err := lifeskill.Validate(module); err != nil {
		return nil, fmt.Errorf("generated module invalid: %w", err)
	}

	return module, nil
}
