package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/api/aiplatform/v1"
	"google.golang.org/api/option"
)

// VertexClient calls Gemini models hosted on Vertex AI with application
// default credentials.
type VertexClient struct {
	svc     *aiplatform.Service
	model   string
	timeout time.Duration
}

func NewVertex(ctx context.Context, project, location, model string, timeout time.Duration, opts ...option.ClientOption) (*VertexClient, error) {
	if project == "" {
		return nil, errors.New("VERTEX_PROJECT is not set in environment variables")
	}
	if location == "" {
		location = "us-central1"
	}
	if model == "" {
		model = DefaultGeminiModel
	}
	if timeout == 0 {
		timeout = 90 * time.Second
	}

	opts = append([]option.ClientOption{
		option.WithEndpoint(fmt.Sprintf("https://%s-aiplatform.googleapis.com/", location)),
	}, opts...)
	svc, err := aiplatform.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("vertex client: %w", err)
	}
	return &VertexClient{
		svc:     svc,
		model:   fmt.Sprintf("projects/%s/locations/%s/publishers/google/models/%s", project, location, model),
		timeout: timeout,
	}, nil
}

func (c *VertexClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req := &aiplatform.GoogleCloudAiplatformV1GenerateContentRequest{
		Contents: []*aiplatform.GoogleCloudAiplatformV1Content{{
			Role:  "user",
			Parts: []*aiplatform.GoogleCloudAiplatformV1Part{{Text: prompt}},
		}},
	}

	resp, err := c.svc.Projects.Locations.Publishers.Models.GenerateContent(c.model, req).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("vertex generate: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("vertex: empty response")
	}

	var b strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		if p != nil {
			b.WriteString(p.Text)
		}
	}
	return b.String(), nil
}
