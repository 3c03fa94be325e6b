package stylist

import (
	"context"
	"fmt"
	"strings"
)

// Candidate describes one wardrobe item offered to the model. Image holds the
// item's photo bytes when the file could be read from storage; a nil Image
// means the item is described in text only.
type Candidate struct {
	ID       int64
	Category string
	Name     string
	Color    string
	Image    []byte
	MimeType string
}

// Selection is the model's raw choice: one item id per slot plus a styling
// tip. Ids are not yet resolved against the wardrobe.
type Selection struct {
	TopID    int64
	BottomID int64
	ShoesID  int64
	Tip      string
}

// Stylist asks an external generative model to compose an outfit from the
// given candidates. Implementations make exactly one call per invocation; no
// retries, no caching.
type Stylist interface {
	Compose(ctx context.Context, candidates []Candidate) (*Selection, error)
}

// Prompt renders the shared stylist prompt. Every candidate appears with its
// id, category, name, and color; the model must answer with a bare JSON
// object so the response can be parsed without scraping.
func Prompt(candidates []Candidate) string {
	var b strings.Builder
	b.WriteString("You are a professional fashion stylist. Here are the wardrobe items with their IDs, categories, and descriptions:\n\n")
	for _, c := range candidates {
		fmt.Fprintf(&b, "ID %d: %s - %s (%s)\n", c.ID, strings.ToUpper(c.Category), c.Name, c.Color)
	}
	b.WriteString(`
Pick exactly 1 top, 1 bottom, and 1 pair of shoes.
Return ONLY a JSON object in this format:
{"topId": ID, "bottomId": ID, "shoesId": ID, "tip": "Explain why this combination works"}

Make sure that the topId is an item with category "top", bottomId is "bottom", and shoesId is "shoes". Do NOT repeat the same item for multiple categories.`)
	return b.String()
}
