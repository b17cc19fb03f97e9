package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/satwik073/Priscus-server/config"
	"github.com/satwik073/Priscus-server/internal/bootstrap"
	"github.com/satwik073/Priscus-server/internal/generation"
	"github.com/satwik073/Priscus-server/internal/projects/domain"
)

// newGenerator is swapped in tests.
var newGenerator = func(ctx context.Context) (*generation.Generator, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	oracle, err := bootstrap.OpenLLM(ctx, cfg.LLM)
	if err != nil {
		return nil, err
	}
	return generation.NewGenerator(oracle), nil
}

func RunAnalyze(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) < 2 {
		return errors.New("usage: analyze <title> <description>")
	}
	gen, err := newGenerator(ctx)
	if err != nil {
		return err
	}
	out := gen.AnalyzeProject(ctx, args[0], args[1])
	return report(stdout, stderr, out.Value, out.Source, out.Err)
}

func RunKanban(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	a, title, desc, err := artifactArgs("kanban", args)
	if err != nil {
		return err
	}
	gen, err := newGenerator(ctx)
	if err != nil {
		return err
	}
	out := gen.GenerateKanban(ctx, a, title, desc)
	return report(stdout, stderr, out.Value, out.Source, out.Err)
}

func RunWorkflow(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	a, title, desc, err := artifactArgs("workflow", args)
	if err != nil {
		return err
	}
	gen, err := newGenerator(ctx)
	if err != nil {
		return err
	}
	out := gen.GenerateWorkflow(ctx, a, title, desc)
	return report(stdout, stderr, out.Value, out.Source, out.Err)
}

// artifactArgs reads <analysis.json> [title] [description].
func artifactArgs(cmd string, args []string) (*domain.ProjectAnalysis, string, string, error) {
	if len(args) < 1 {
		return nil, "", "", fmt.Errorf("usage: %s <analysis.json> [title] [description]", cmd)
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return nil, "", "", fmt.Errorf("read analysis: %w", err)
	}
	var a domain.ProjectAnalysis
	if err := json.Unmarshal(b, &a); err != nil {
		return nil, "", "", fmt.Errorf("parse analysis: %w", err)
	}

	title, desc := "Project", ""
	if len(args) > 1 {
		title = args[1]
	}
	if len(args) > 2 {
		desc = args[2]
	}
	return &a, title, desc, nil
}

func report(stdout, stderr io.Writer, v any, src generation.Source, cause error) error {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return err
	}
	if cause != nil {
		fmt.Fprintf(stderr, "source: %s (%v)\n", src, cause)
		return nil
	}
	fmt.Fprintf(stderr, "source: %s\n", src)
	return nil
}
