package layout

import (
	"testing"

	"trackr/backend/internal/theme"

	"github.com/stretchr/testify/assert"
)

func paths(items []NavItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Path
	}
	return out
}

func TestNavigation(t *testing.T) {
	anon := paths(Navigation(false, false))
	assert.Contains(t, anon, "/login")
	assert.NotContains(t, anon, "/dashboard")

	member := Navigation(true, false)
	assert.Contains(t, paths(member), "/dashboard")
	assert.NotContains(t, paths(member), "/login")
	for _, it := range member {
		assert.False(t, it.Manage, it.Path)
	}

	var managed []string
	for _, it := range Navigation(true, true) {
		if it.Manage {
			managed = append(managed, it.Path)
		}
	}
	assert.Equal(t, []string{"/games", "/consoles", "/achievements"}, managed)
}

func TestBuild(t *testing.T) {
	shell := Build(theme.Light, &ProfileSummary{ID: "u1", Nickname: "Ada", IsAdmin: true})
	assert.Equal(t, theme.Light, shell.Mode)
	assert.Equal(t, theme.For(theme.Light), shell.Tokens)
	assert.Contains(t, paths(shell.Navigation), "/settings")

	anon := Build(theme.Dark, nil)
	assert.Nil(t, anon.Profile)
	assert.Contains(t, paths(anon.Navigation), "/register")
}
