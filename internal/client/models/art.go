// Package models defines the storefront records exchanged with the backend.
// All of them are server-owned; the client only holds transient copies.
package models

// Art is one listing. Description doubles as the artist name in the admin
// forms.
type Art struct {
	ID          int64   `json:"id"`
	Title       string  `json:"artTitle"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	PictureURL1 string  `json:"pictureUrl1,omitempty"`
	PictureURL2 string  `json:"pictureUrl2,omitempty"`
	PictureURL3 string  `json:"pictureUrl3,omitempty"`
	PictureURL4 string  `json:"pictureUrl4,omitempty"`
}

// Pictures returns the non-empty picture URLs in slot order.
func (a Art) Pictures() []string {
	out := make([]string, 0, 4)
	for _, u := range []string{a.PictureURL1, a.PictureURL2, a.PictureURL3, a.PictureURL4} {
		if u != "" {
			out = append(out, u)
		}
	}
	return out
}

// ArtForm is the payload of the add and update art forms.
// Pictures are local file paths; empty slots are not sent.
type ArtForm struct {
	Title       string    `schema:"artTitle"`
	Description string    `schema:"description"`
	Category    string    `schema:"category"`
	Price       float64   `schema:"price"`
	Pictures    [4]string `schema:"-"`
}

// FormFromArt prefills an update form with the current values.
func FormFromArt(a Art) ArtForm {
	return ArtForm{
		Title:       a.Title,
		Description: a.Description,
		Category:    a.Category,
		Price:       a.Price,
	}
}
