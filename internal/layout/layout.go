package layout

import "trackr/backend/internal/theme"

// NavItem is one entry of the sidebar.
type NavItem struct {
	Path   string `json:"path"`
	Label  string `json:"label"`
	Icon   string `json:"icon"`
	Manage bool   `json:"manage,omitempty"`
}

// ProfileSummary is the signed-in user shown in the top bar.
type ProfileSummary struct {
	ID       string `json:"id"`
	Nickname string `json:"nickname"`
	IsAdmin  bool   `json:"is_admin"`
}

// Shell is the persistent chrome wrapped around every page.
type Shell struct {
	Mode       theme.Mode      `json:"mode"`
	Tokens     theme.Tokens    `json:"tokens"`
	Navigation []NavItem       `json:"navigation"`
	Profile    *ProfileSummary `json:"profile"`
}

// Navigation lists the sidebar entries visible to the caller. Catalog
// entries are flagged Manage for administrators.
func Navigation(authenticated, admin bool) []NavItem {
	items := []NavItem{
		{Path: "/", Label: "Accueil", Icon: "home"},
		{Path: "/games", Label: "Jeux", Icon: "gamepad", Manage: admin},
		{Path: "/consoles", Label: "Consoles", Icon: "monitor", Manage: admin},
		{Path: "/achievements", Label: "Succès", Icon: "trophy", Manage: admin},
		{Path: "/players", Label: "Joueurs", Icon: "users"},
	}
	if authenticated {
		return append(items,
			NavItem{Path: "/dashboard", Label: "Tableau de bord", Icon: "layout-dashboard"},
			NavItem{Path: "/settings", Label: "Paramètres", Icon: "settings"},
		)
	}
	return append(items,
		NavItem{Path: "/login", Label: "Connexion", Icon: "log-in"},
		NavItem{Path: "/register", Label: "Inscription", Icon: "user-plus"},
	)
}

// Build assembles the shell. profile is nil for anonymous visitors.
func Build(mode theme.Mode, profile *ProfileSummary) Shell {
	admin := profile != nil && profile.IsAdmin
	return Shell{
		Mode:       mode,
		Tokens:     theme.For(mode),
		Navigation: Navigation(profile != nil, admin),
		Profile:    profile,
	}
}
