package stylist

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Adithya700/Wadrobe/internal/domain"
)

// Models routinely wrap their answer in markdown code fences despite being
// told not to; strip ``` and ```json markers before parsing.
var fencePattern = regexp.MustCompile("(?i)```json|```")

// CleanResponse removes code-fence markup and surrounding whitespace from a
// raw model response.
func CleanResponse(raw string) string {
	return strings.TrimSpace(fencePattern.ReplaceAllString(raw, ""))
}

// flexID decodes an id that the model may encode as a JSON number or string.
type flexID int64

func (f *flexID) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(strings.Trim(string(b), `"`))
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("id %q is not an integer", s)
	}
	*f = flexID(n)
	return nil
}

type selectionPayload struct {
	TopID    flexID `json:"topId"`
	BottomID flexID `json:"bottomId"`
	ShoesID  flexID `json:"shoesId"`
	Tip      string `json:"tip"`
}

// ParseSelection cleans and parses a raw model response into a Selection.
// Anything that is not a JSON object with the expected fields yields
// domain.ErrMalformedAIResponse.
func ParseSelection(raw string) (*Selection, error) {
	clean := CleanResponse(raw)

	var payload selectionPayload
	if err := json.Unmarshal([]byte(clean), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedAIResponse, err)
	}

	return &Selection{
		TopID:    int64(payload.TopID),
		BottomID: int64(payload.BottomID),
		ShoesID:  int64(payload.ShoesID),
		Tip:      payload.Tip,
	}, nil
}
