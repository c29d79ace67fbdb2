// Package narrator asks Gemini for a short commentary on a correlation report.
package narrator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is set.
const DefaultModel = "gemini-2.5-flash"

const instruction = `You are a market analyst. You receive a correlation report in markdown
computed from daily returns of a diversified asset universe.
Write a short commentary (at most 5 bullet points) about diversification:
which sectors move together, which ones hedge each other, and anything surprising.
Only use the numbers of the report. Do not give investment advice.`

// generator is the part of the genai client used here, *genai.Models implements it.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Narrator comments correlation reports.
type Narrator struct {
	ModelName string
	Config    *genai.GenerateContentConfig
	models    generator
}

// New returns a Narrator using client.
func New(client *genai.Client) *Narrator {
	return &Narrator{
		ModelName: DefaultModel,
		Config: &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: instruction}}},
			Temperature:       genai.Ptr[float32](0.3),
		},
		models: client.Models,
	}
}

// Prompt returns the user prompt for a markdown report.
func Prompt(report string) string {
	var b strings.Builder
	b.WriteString("Here is the correlation report:\n\n")
	b.WriteString(strings.TrimSpace(report))
	b.WriteString("\n\nComment on it.")
	return b.String()
}

// Comment returns the commentary of a markdown report.
func (n *Narrator) Comment(ctx context.Context, report string) (string, error) {
	if strings.TrimSpace(report) == "" {
		return "", errors.New("empty report")
	}
	resp, err := n.models.GenerateContent(ctx, n.ModelName, genai.Text(Prompt(report)), n.Config)
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("no response from gemini")
	}
	var b strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	return strings.TrimSpace(b.String()), nil
}
