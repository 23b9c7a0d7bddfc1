package cli

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/artgallery/internal/client/models"
	"github.com/dmitrijs2005/artgallery/internal/client/views"
)

func price(p float64) string { return fmt.Sprintf("$%.2f", p) }

func renderArts(arts []models.Art) {
	if len(arts) == 0 {
		printlnFn(views.NoProductsMessage)
		return
	}
	for _, a := range arts {
		printlnFn(fmt.Sprintf("[%d] %s by %s (%s) %s", a.ID, a.Title, a.Description, a.Category, price(a.Price)))
	}
}

func renderCategories(all []string, f views.Filter) {
	if len(all) == 0 {
		return
	}
	parts := make([]string, len(all))
	for i, c := range all {
		mark := " "
		if f.Categories[c] {
			mark = "x"
		}
		parts[i] = fmt.Sprintf("[%s] %s", mark, c)
	}
	printlnFn("Categories: " + strings.Join(parts, "  "))
}

func renderArt(a models.Art) {
	printlnFn(fmt.Sprintf("%s (#%d)", a.Title, a.ID))
	printlnFn("  Artist:   " + a.Description)
	printlnFn("  Category: " + a.Category)
	printlnFn("  Price:    " + price(a.Price))
}

func renderPicture(v *views.DetailView) {
	url, pos, total := v.Picture()
	if total == 0 {
		printlnFn("  No pictures.")
		return
	}
	printlnFn(fmt.Sprintf("  Picture %d/%d: %s", pos, total, url))
}

func renderCart(v *views.CartView) {
	items := v.Items()
	if len(items) == 0 {
		printlnFn("Your cart is empty.")
		return
	}
	for _, it := range items {
		row, _ := v.Row(it.ID)
		line := fmt.Sprintf("[%d] %s  %s x %d", it.ID, it.Title(), price(it.Price), row.Quantity())
		if d, ok := row.(views.Dirty); ok {
			line += fmt.Sprintf("  (unsaved, was %d; 'save %d')", d.Original, it.ID)
		}
		printlnFn(line)
	}
	printlnFn("Total: " + price(v.Total()))
}

func renderWishlist(v *views.WishlistView) {
	groups := v.Groups()
	if len(groups) == 0 {
		printlnFn("Your wishlist is empty.")
		return
	}
	for _, g := range groups {
		s := v.Strip(g.Category)
		from, to := s.Window()
		left, right := s.Affordance()

		cards := make([]string, 0, to-from)
		for _, it := range g.Items[from:to] {
			cards = append(cards, fmt.Sprintf("[%d] %s", it.ID, it.Title()))
		}
		line := strings.Join(cards, " | ")
		if left {
			line = "< " + line
		}
		if right {
			line += " >"
		}
		printlnFn(g.Category + ": " + line)
	}
}

func renderUser(u models.User) {
	state := "inactive"
	if u.Active {
		state = "active"
	}
	printlnFn(fmt.Sprintf("[%d] %s <%s> %s", u.ID, u.Name, u.Email, state))
}

func renderUsers(users []models.User) {
	if len(users) == 0 {
		printlnFn("No users.")
		return
	}
	for _, u := range users {
		renderUser(u)
	}
}
