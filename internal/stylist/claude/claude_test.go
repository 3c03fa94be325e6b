package claude

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	anthropic "github.com/liushuangls/go-anthropic/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Adithya700/Wadrobe/internal/domain"
	"github.com/Adithya700/Wadrobe/internal/stylist"
)

var testCandidates = []stylist.Candidate{
	{ID: 1, Category: "top", Name: "Tee", Color: "black", Image: []byte{0xFF, 0xD8}, MimeType: "image/jpeg"},
	{ID: 2, Category: "bottom", Name: "Jeans", Color: "blue", Image: []byte{0xFF, 0xD8}, MimeType: "image/jpeg"},
	{ID: 3, Category: "shoes", Name: "Sneakers", Color: "white", Image: []byte{0xFF, 0xD8}, MimeType: "image/jpeg"},
}

func messagesStub(t *testing.T, text string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{
			"id":   "msg_test",
			"type": "message",
			"role": "assistant",
			"content": []map[string]any{
				{"type": "text", "text": text},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
}

func TestClaudeCompose(t *testing.T) {
	server := messagesStub(t, "```json\n{\"topId\": 1, \"bottomId\": 2, \"shoesId\": 3, \"tip\": \"classic\"}\n```")
	defer server.Close()

	s := NewClaudeStylist("sk-test", "claude-3-5-sonnet-20241022", anthropic.WithBaseURL(server.URL))

	sel, err := s.Compose(context.Background(), testCandidates)
	require.NoError(t, err)
	assert.Equal(t, int64(1), sel.TopID)
	assert.Equal(t, int64(2), sel.BottomID)
	assert.Equal(t, int64(3), sel.ShoesID)
	assert.Equal(t, "classic", sel.Tip)
}

func TestClaudeComposeMalformed(t *testing.T) {
	server := messagesStub(t, "Sorry, I cannot pick an outfit today.")
	defer server.Close()

	s := NewClaudeStylist("sk-test", "claude-3-5-sonnet-20241022", anthropic.WithBaseURL(server.URL))

	_, err := s.Compose(context.Background(), testCandidates)
	assert.ErrorIs(t, err, domain.ErrMalformedAIResponse)
}

func TestClaudeComposeAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"type":"error","error":{"type":"rate_limit_error","message":"rate limited"}}`))
	}))
	defer server.Close()

	s := NewClaudeStylist("sk-test", "claude-3-5-sonnet-20241022", anthropic.WithBaseURL(server.URL))

	_, err := s.Compose(context.Background(), testCandidates)
	assert.ErrorIs(t, err, domain.ErrExternalService)
}
