package models

// CartItem is one cart row. Title and price are denormalised from the art
// at the time the cart was fetched; Art may be missing.
type CartItem struct {
	ID       int64   `json:"id"`
	UserID   int64   `json:"userId,omitempty"`
	Art      *Art    `json:"art,omitempty"`
	ArtTitle string  `json:"artTitle"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

func (c CartItem) Title() string {
	if c.ArtTitle != "" {
		return c.ArtTitle
	}
	if c.Art != nil && c.Art.Title != "" {
		return c.Art.Title
	}
	return "Artwork"
}

// WishlistItem links a user to an art; it has no quantity.
type WishlistItem struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"userId,omitempty"`
	Art    *Art  `json:"art,omitempty"`
}

// Category returns the art's category, or "" when unknown.
func (w WishlistItem) Category() string {
	if w.Art == nil {
		return ""
	}
	return w.Art.Category
}

func (w WishlistItem) Title() string {
	if w.Art == nil || w.Art.Title == "" {
		return "N/A"
	}
	return w.Art.Title
}
