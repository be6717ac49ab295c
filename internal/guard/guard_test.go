package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tmarques/hiredash/internal/session"
	"github.com/tmarques/hiredash/internal/types"
)

func TestDecide(t *testing.T) {
	admin := &types.Identity{Email: "admin@hiredash.test", Role: types.RoleAdmin}
	user := &types.Identity{Email: "user@hiredash.test", Role: types.RoleUser}

	tests := []struct {
		name          string
		state         session.State
		identity      *types.Identity
		requiresAdmin bool
		want          Decision
	}{
		{"unresolved shows loading", session.Unresolved, nil, false, ShowLoading},
		{"unresolved admin view shows loading", session.Unresolved, nil, true, ShowLoading},
		{"anonymous redirects", session.Anonymous, nil, false, RedirectToLogin},
		{"anonymous admin view redirects", session.Anonymous, nil, true, RedirectToLogin},
		{"user renders plain view", session.Authenticated, user, false, RenderChildren},
		{"user denied admin view", session.Authenticated, user, true, RedirectToLogin},
		{"admin renders admin view", session.Authenticated, admin, true, RenderChildren},
		{"admin renders plain view", session.Authenticated, admin, false, RenderChildren},
		{"roleless identity denied admin view", session.Authenticated, &types.Identity{Email: "x@y.z"}, true, RedirectToLogin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.state, tt.identity, tt.requiresAdmin))
		})
	}
}
