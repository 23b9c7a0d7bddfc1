package cli

import (
	"context"

	"github.com/dmitrijs2005/artgallery/internal/client/session"
)

type access int

const (
	accessPublic access = iota
	accessMember
	accessAdmin
	accessGuest
)

type command struct {
	usage  string
	help   string
	access access
	run    func(a *App, ctx context.Context, args []string) error
}

// allowed decides whether the command is listed in help for who. It does
// not gate execution; protected screens are guarded by the router.
func (c command) allowed(who session.Identity) bool {
	switch c.access {
	case accessGuest:
		return who.Anonymous()
	case accessMember:
		return !who.Anonymous()
	case accessAdmin:
		return who.IsAdmin()
	}
	return true
}

func commandTable() map[string]command {
	return map[string]command{
		// account
		"home":     {"", "show the home screen", accessPublic, (*App).cmdHome},
		"register": {"", "create an account", accessGuest, (*App).cmdRegister},
		"login":    {"", "sign in", accessGuest, (*App).cmdLogin},
		"logout":   {"", "sign out", accessMember, (*App).cmdLogout},
		"forgot":   {"[email]", "request a password reset link", accessPublic, (*App).cmdForgot},
		"reset":    {"[token]", "set a new password with a reset token", accessPublic, (*App).cmdReset},
		"profile":  {"", "update name, email and picture", accessMember, (*App).cmdProfile},

		// verification
		"verify": {"[email]", "open the OTP verification screen", accessPublic, (*App).cmdVerify},
		"otp":    {"<code>", "enter the whole code and submit", accessPublic, (*App).cmdOTP},
		"digit":  {"<1-6> <d>", "enter one digit of the code", accessPublic, (*App).cmdDigit},
		"submit": {"", "submit the entered code", accessPublic, (*App).cmdSubmit},
		"resend": {"", "send a new code", accessPublic, (*App).cmdResend},

		// browsing
		"shop":     {"", "browse the shop", accessPublic, (*App).cmdShop},
		"arts":     {"", "browse arts as a member", accessMember, (*App).cmdArts},
		"search":   {"<text>", "search arts", accessPublic, (*App).cmdSearch},
		"category": {"<name>", "toggle a category filter", accessPublic, (*App).cmdCategory},
		"price":    {"<min> [max]", "set the price range", accessPublic, (*App).cmdPrice},
		"apply":    {"", "apply the filters", accessPublic, (*App).cmdApply},
		"art":      {"<id>", "show one art", accessMember, (*App).cmdArt},
		"next":     {"", "next picture", accessPublic, (*App).cmdNextPicture},
		"prev":     {"", "previous picture", accessPublic, (*App).cmdPrevPicture},
		"buy":      {"", "add the shown art to the cart", accessMember, (*App).cmdBuy},
		"wish":     {"", "add the shown art to the wishlist", accessMember, (*App).cmdWish},

		// cart
		"cart":      {"", "show the cart", accessMember, (*App).cmdCart},
		"qty":       {"<item> <n>", "edit a quantity locally", accessMember, (*App).cmdQty},
		"save":      {"<item>", "save an edited quantity", accessMember, (*App).cmdSave},
		"remove":    {"<item>", "remove a cart item", accessMember, (*App).cmdRemove},
		"clearcart": {"", "empty the cart", accessMember, (*App).cmdClearCart},
		"checkout":  {"", "proceed to checkout", accessMember, (*App).cmdCheckout},

		// wishlist
		"wishlist":      {"", "show the wishlist", accessMember, (*App).cmdWishlist},
		"open":          {"<item>", "open a wishlist item", accessMember, (*App).cmdOpen},
		"unwish":        {"<item>", "remove a wishlist item", accessMember, (*App).cmdUnwish},
		"clearwishlist": {"", "empty the wishlist", accessMember, (*App).cmdClearWishlist},
		"scroll":        {"<left|right> <category>", "scroll a wishlist row", accessMember, (*App).cmdScroll},

		// admin
		"admin":     {"", "admin home", accessAdmin, (*App).cmdAdmin},
		"artlist":   {"", "list all arts with ids", accessAdmin, (*App).cmdArtList},
		"artdetail": {"<id>", "show one art as admin", accessAdmin, (*App).cmdArtDetail},
		"addart":    {"", "add an art", accessAdmin, (*App).cmdAddArt},
		"updateart": {"<id>", "update an art", accessAdmin, (*App).cmdUpdateArt},
		"deleteart": {"<id>", "delete an art", accessAdmin, (*App).cmdDeleteArt},
		"users":     {"", "list all users", accessAdmin, (*App).cmdUsers},
	}
}
