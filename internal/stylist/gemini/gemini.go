package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/Adithya700/Wadrobe/internal/domain"
	"github.com/Adithya700/Wadrobe/internal/stylist"
)

// GeminiStylist composes outfits with the Google Gemini API. The client is
// created per call because genai.NewClient requires the request context.
type GeminiStylist struct {
	apiKey string
	model  string
}

func NewGeminiStylist(apiKey, model string) *GeminiStylist {
	return &GeminiStylist{apiKey: apiKey, model: model}
}

func (g *GeminiStylist) Compose(ctx context.Context, candidates []stylist.Candidate) (*stylist.Selection, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
	if err != nil {
		return nil, fmt.Errorf("%w: create gemini client: %v", domain.ErrExternalService, err)
	}
	defer client.Close()

	model := client.GenerativeModel(g.model)

	parts := []genai.Part{genai.Text(stylist.Prompt(candidates))}
	for _, c := range candidates {
		if len(c.Image) == 0 {
			continue
		}
		parts = append(parts, genai.ImageData(imageFormat(c.MimeType), c.Image))
	}

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExternalService, err)
	}

	text, err := responseText(resp)
	if err != nil {
		return nil, err
	}

	return stylist.ParseSelection(text)
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("%w: empty response", domain.ErrMalformedAIResponse)
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("%w: no text content", domain.ErrMalformedAIResponse)
	}
	return b.String(), nil
}

// imageFormat converts a MIME type to the bare format name genai.ImageData
// expects ("image/png" -> "png").
func imageFormat(mimeType string) string {
	return strings.TrimPrefix(mimeType, "image/")
}
