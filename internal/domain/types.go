package domain

// DefaultUserID is the placeholder owner used when an upload carries no
// user_id field. The app is single-tenant; there is no authentication.
const DefaultUserID int64 = 1

// Category is the closed set of clothing categories an item can belong to.
type Category string

const (
	CategoryTop    Category = "top"
	CategoryBottom Category = "bottom"
	CategoryShoes  Category = "shoes"
)

// ParseCategory validates s against the closed category set.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryTop, CategoryBottom, CategoryShoes:
		return Category(s), nil
	default:
		return "", ErrInvalidCategory
	}
}

// ClothingItem is a single cataloged wardrobe item. ImagePath is the public
// path of the uploaded image (/uploads/<name>), set once at creation. The
// file it points to may be missing on disk; readers must tolerate that.
type ClothingItem struct {
	ID        int64    `json:"id"`
	UserID    int64    `json:"user_id"`
	Name      string   `json:"name"`
	Category  Category `json:"category"`
	Color     string   `json:"color"`
	ImagePath string   `json:"image_path"`
}

// Outfit is one top, one bottom, and one pair of shoes chosen by the AI
// stylist, plus a short styling rationale. It is never persisted.
type Outfit struct {
	Top    *ClothingItem `json:"top"`
	Bottom *ClothingItem `json:"bottom"`
	Shoes  *ClothingItem `json:"shoes"`
	Tip    string        `json:"tip"`
}
