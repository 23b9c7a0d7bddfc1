// Package views holds the per-screen state of the client: the art listing
// and its filter, the cart with unsaved quantity edits, the wishlist grouped
// by category, OTP verification and the detail/admin screens.
//
// A view owns only ephemeral state. It loads data through a service, keeps
// the last good copy, and leaves it untouched when a request fails. Views
// are safe for concurrent use; the only concurrent callers in practice are
// the OTP cooldown ticker and the delayed post-verification navigation.
//
// Loads keyed by an id take a Generation ticket; a response that arrives
// after a newer load has started is dropped and reported as ErrStale.
package views
