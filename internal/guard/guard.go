// Package guard decides whether a view may be shown to the current session.
package guard

import (
	"github.com/tmarques/hiredash/internal/session"
	"github.com/tmarques/hiredash/internal/types"
)

// Decision is the outcome of a guard check.
type Decision int

// Guard decisions. An Unresolved session shows a loading placeholder rather
// than committing either way; a denied admin view redirects to login, not to
// a distinct forbidden page.
const (
	ShowLoading Decision = iota
	RenderChildren
	RedirectToLogin
)

// String returns a readable decision name.
func (d Decision) String() string {
	switch d {
	case RenderChildren:
		return "render"
	case RedirectToLogin:
		return "redirect-to-login"
	default:
		return "loading"
	}
}

// Decide is a pure function of the session state, its identity and the
// view's requires-admin flag.
func Decide(state session.State, identity *types.Identity, requiresAdmin bool) Decision {
	switch state {
	case session.Unresolved:
		return ShowLoading
	case session.Anonymous:
		return RedirectToLogin
	}
	if requiresAdmin && !identity.IsAdmin() {
		return RedirectToLogin
	}
	return RenderChildren
}
