package claude

import (
	"context"
	"fmt"

	anthropic "github.com/liushuangls/go-anthropic/v2"

	"github.com/Adithya700/Wadrobe/internal/domain"
	"github.com/Adithya700/Wadrobe/internal/stylist"
)

// maxTokens bounds the response; the expected payload is a single small JSON
// object plus a one-sentence tip.
const maxTokens = 1024

// ClaudeStylist composes outfits with the Anthropic Messages API.
type ClaudeStylist struct {
	client *anthropic.Client
	model  anthropic.Model
}

// NewClaudeStylist creates a Claude-backed stylist. Extra client options are
// for tests (custom base URL).
func NewClaudeStylist(apiKey, model string, opts ...anthropic.ClientOption) *ClaudeStylist {
	return &ClaudeStylist{
		client: anthropic.NewClient(apiKey, opts...),
		model:  anthropic.Model(model),
	}
}

func (c *ClaudeStylist) Compose(ctx context.Context, candidates []stylist.Candidate) (*stylist.Selection, error) {
	content := make([]anthropic.MessageContent, 0, len(candidates)+1)
	for _, cand := range candidates {
		if len(cand.Image) == 0 {
			continue
		}
		content = append(content, anthropic.NewImageMessageContent(
			anthropic.NewMessageContentSource(
				anthropic.MessagesContentSourceTypeBase64,
				cand.MimeType,
				cand.Image,
			)))
	}
	content = append(content, anthropic.NewTextMessageContent(stylist.Prompt(candidates)))

	resp, err := c.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model:     c.model,
		MaxTokens: maxTokens,
		Messages: []anthropic.Message{
			{Role: anthropic.RoleUser, Content: content},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExternalService, err)
	}

	return stylist.ParseSelection(resp.GetFirstContentText())
}
