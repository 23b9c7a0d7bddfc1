// Package cli provides the interactive art gallery command-line client.
//
// It wires the storefront services into an interactive REPL. Each screen of
// the storefront is a Route; commands move between routes through a Router
// that sends anonymous users to login before a protected screen fetches
// anything. The identity is read once from the session at start-up and
// replaced on login and logout.
//
// Key features:
//   - Register, verify with a one-time code, login, logout, password reset
//   - Shop listing with search, category and price filters
//   - Art detail with picture cycling, add to cart or wishlist
//   - Cart with unsaved quantity edits, wishlist grouped by category
//   - Admin art management and the user list
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, Router, and runREPL for details.
package cli
