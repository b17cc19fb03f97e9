package generation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/satwik073/Priscus-server/internal/logging"
	"github.com/satwik073/Priscus-server/internal/projects/domain"
)

// TextGenerator is the text-completion model behind the generator.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Source tells whether an artifact came from the model or from the fallback.
type Source string

const (
	SourceGenerated Source = "generated"
	SourceFallback  Source = "fallback"
)

var ErrNoJSON = errors.New("no valid JSON found in model response")

// Outcome is the result of one generation. Value is always populated; Err
// holds the reason when Source is SourceFallback.
type Outcome[T any] struct {
	Value  T
	Source Source
	Err    error
}

func (o Outcome[T]) Generated() bool { return o.Source == SourceGenerated }

type Generator struct {
	llm     TextGenerator
	metrics *Metrics
}

func NewGenerator(llm TextGenerator) *Generator {
	return &Generator{llm: llm, metrics: &Metrics{}}
}

func (g *Generator) Metrics() *Metrics { return g.metrics }

// AnalyzeProject scores a project pitch.
func (g *Generator) AnalyzeProject(ctx context.Context, title, description string) Outcome[domain.ProjectAnalysis] {
	return run(ctx, g, KindAnalysis, analysisPrompt(title, description), fallbackAnalysis)
}

// GenerateKanban breaks the analysed project into pipelines and tasks.
func (g *Generator) GenerateKanban(ctx context.Context, a *domain.ProjectAnalysis, title, description string) Outcome[domain.KanbanData] {
	return run(ctx, g, KindKanban, kanbanPrompt(a, title, description), fallbackKanban)
}

// GenerateWorkflow produces the technical, user and schema diagrams.
func (g *Generator) GenerateWorkflow(ctx context.Context, a *domain.ProjectAnalysis, title, description string) Outcome[domain.WorkflowData] {
	return run(ctx, g, KindWorkflow, workflowPrompt(a, title, description), fallbackWorkflow)
}

func run[T any](ctx context.Context, g *Generator, kind Kind, prompt string, fallback func() T) Outcome[T] {
	op := "generate_" + string(kind)

	value, err := generate[T](ctx, g.llm, prompt)
	if err != nil {
		logging.NewLogger(ctx).LogWarnf(op, "source=fallback reason=%q", err.Error())
		g.metrics.record(kind, SourceFallback)
		return Outcome[T]{Value: fallback(), Source: SourceFallback, Err: err}
	}

	g.metrics.record(kind, SourceGenerated)
	return Outcome[T]{Value: value, Source: SourceGenerated}
}

func generate[T any](ctx context.Context, llm TextGenerator, prompt string) (T, error) {
	var zero T
	if llm == nil {
		return zero, errors.New("no model configured")
	}

	text, err := llm.GenerateText(ctx, prompt)
	if err != nil {
		return zero, fmt.Errorf("model call: %w", err)
	}

	span, ok := ExtractJSON(text)
	if !ok {
		return zero, ErrNoJSON
	}

	var v T
	if err := json.Unmarshal([]byte(span), &v); err != nil {
		return zero, fmt.Errorf("decode model response: %w", err)
	}
	return v, nil
}
