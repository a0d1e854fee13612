package handler

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"trackr/backend/internal/models"
	"trackr/backend/internal/repository"
	"trackr/backend/internal/service"
)

// memAccounts backs the session manager in handler tests.
type memAccounts struct {
	mu       sync.Mutex
	byEmail  map[string]*models.Account
	profiles map[string]*models.Profile
	calls    int
}

func newMemAccounts() *memAccounts {
	return &memAccounts{byEmail: map[string]*models.Account{}, profiles: map[string]*models.Profile{}}
}

func (m *memAccounts) Create(_ context.Context, a *models.Account, p *models.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	p.UID = a.ID
	m.byEmail[strings.ToLower(a.Email)] = a
	m.profiles[a.ID] = p
	return nil
}

func (m *memAccounts) FetchByEmail(_ context.Context, email string) (*models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	return m.byEmail[strings.ToLower(email)], nil
}

func (m *memAccounts) FetchByID(_ context.Context, uid string) (*models.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.profiles[uid]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *memAccounts) promote(uid string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles[uid].Rid = models.RoleAdmin
}

func (m *memAccounts) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// fakeCatalog keeps games, consoles and achievements in maps.
type fakeCatalog struct {
	mu           sync.Mutex
	nextID       uint
	games        map[uint]*models.Game
	consoles     map[uint]*models.Console
	achievements map[uint]*models.Achievement
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		games:        map[uint]*models.Game{},
		consoles:     map[uint]*models.Console{},
		achievements: map[uint]*models.Achievement{},
	}
}

func (f *fakeCatalog) id() uint {
	f.nextID++
	return f.nextID
}

func (f *fakeCatalog) addConsole(name, brand string) uint {
	f.mu.Lock()
	defer f.mu.Unlock()
	c := &models.Console{Name: name, Brand: brand}
	c.ID = f.id()
	f.consoles[c.ID] = c
	return c.ID
}

func admin(actor *models.Profile) error {
	if !actor.IsAdmin() {
		return service.ErrForbidden
	}
	return nil
}

func (f *fakeCatalog) ListGames(context.Context) ([]models.Game, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Game{}
	for _, g := range f.games {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeCatalog) GetGame(_ context.Context, id uint) (*models.Game, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	g, ok := f.games[id]
	if !ok {
		return nil, nil
	}
	cp := *g
	return &cp, nil
}

func (f *fakeCatalog) linkConsoles(g *models.Game, ids []uint) error {
	if ids == nil {
		return nil
	}
	consoles := []models.Console{}
	for _, id := range ids {
		c, ok := f.consoles[id]
		if !ok {
			return fmt.Errorf("%w: %d", repository.ErrUnknownConsole, id)
		}
		consoles = append(consoles, *c)
	}
	g.Consoles = consoles
	return nil
}

func (f *fakeCatalog) CreateGame(_ context.Context, actor *models.Profile, in service.GameInput) (*models.Game, error) {
	if err := admin(actor); err != nil {
		return nil, err
	}
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name", service.ErrRequired)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	g := &models.Game{Name: in.Name, Description: in.Description, Pegi: in.Pegi, ImageURL: in.ImageURL}
	if err := f.linkConsoles(g, in.ConsoleIDs); err != nil {
		return nil, err
	}
	g.ID = f.id()
	f.games[g.ID] = g
	cp := *g
	return &cp, nil
}

func (f *fakeCatalog) UpdateGame(_ context.Context, actor *models.Profile, id uint, in service.GameInput) (*models.Game, error) {
	if err := admin(actor); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	g, ok := f.games[id]
	if !ok {
		return nil, service.ErrNotFound
	}
	if err := f.linkConsoles(g, in.ConsoleIDs); err != nil {
		return nil, err
	}
	g.Name, g.Description, g.Pegi, g.ImageURL = in.Name, in.Description, in.Pegi, in.ImageURL
	cp := *g
	return &cp, nil
}

func (f *fakeCatalog) DeleteGame(_ context.Context, actor *models.Profile, id uint) error {
	if err := admin(actor); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.games[id]; !ok {
		return service.ErrNotFound
	}
	delete(f.games, id)
	return nil
}

func (f *fakeCatalog) ListConsoles(context.Context) ([]models.Console, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Console{}
	for _, c := range f.consoles {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeCatalog) GetConsole(_ context.Context, id uint) (*models.Console, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.consoles[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCatalog) CreateConsole(_ context.Context, actor *models.Profile, in service.ConsoleInput) (*models.Console, error) {
	if err := admin(actor); err != nil {
		return nil, err
	}
	if in.Name == "" || in.Brand == "" {
		return nil, fmt.Errorf("%w: name, brand", service.ErrRequired)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	c := &models.Console{Name: in.Name, Brand: in.Brand, ReleaseYear: in.ReleaseYear, Description: in.Description, ImageURL: in.ImageURL}
	c.ID = f.id()
	f.consoles[c.ID] = c
	cp := *c
	return &cp, nil
}

func (f *fakeCatalog) UpdateConsole(_ context.Context, actor *models.Profile, id uint, in service.ConsoleInput) (*models.Console, error) {
	if err := admin(actor); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.consoles[id]
	if !ok {
		return nil, service.ErrNotFound
	}
	c.Name, c.Brand, c.ReleaseYear, c.Description, c.ImageURL = in.Name, in.Brand, in.ReleaseYear, in.Description, in.ImageURL
	cp := *c
	return &cp, nil
}

func (f *fakeCatalog) DeleteConsole(_ context.Context, actor *models.Profile, id uint) error {
	if err := admin(actor); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.consoles, id)
	return nil
}

func (f *fakeCatalog) ListAchievements(context.Context) ([]models.Achievement, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Achievement{}
	for _, a := range f.achievements {
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeCatalog) GetAchievement(_ context.Context, id uint) (*models.Achievement, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.achievements[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (f *fakeCatalog) CreateAchievement(_ context.Context, actor *models.Profile, in service.AchievementInput) (*models.Achievement, error) {
	if err := admin(actor); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	g, ok := f.games[in.GID]
	if !ok {
		return nil, repository.ErrUnknownGame
	}
	a := &models.Achievement{Name: in.Name, Description: in.Description, GID: in.GID, Game: g}
	a.ID = f.id()
	f.achievements[a.ID] = a
	cp := *a
	return &cp, nil
}

func (f *fakeCatalog) UpdateAchievement(_ context.Context, actor *models.Profile, id uint, in service.AchievementInput) (*models.Achievement, error) {
	if err := admin(actor); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.achievements[id]
	if !ok {
		return nil, service.ErrNotFound
	}
	a.Name, a.Description, a.GID = in.Name, in.Description, in.GID
	cp := *a
	return &cp, nil
}

func (f *fakeCatalog) DeleteAchievement(_ context.Context, actor *models.Profile, id uint) error {
	if err := admin(actor); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.achievements, id)
	return nil
}

func (f *fakeCatalog) Options(ctx context.Context, table string) ([]repository.Option, error) {
	var opts []repository.Option
	switch table {
	case "consoles":
		consoles, _ := f.ListConsoles(ctx)
		for _, c := range consoles {
			opts = append(opts, repository.Option{ID: c.ID, Label: c.Name})
		}
	case "games":
		games, _ := f.ListGames(ctx)
		for _, g := range games {
			opts = append(opts, repository.Option{ID: g.ID, Label: g.Name})
		}
	default:
		return nil, fmt.Errorf("unknown option table %q", table)
	}
	return opts, nil
}

type fakeTracker struct {
	dashboard service.DashboardView
	following map[uint]bool
}

func (f *fakeTracker) Dashboard(context.Context, string) (service.DashboardView, error) {
	return f.dashboard, nil
}

func (f *fakeTracker) GameDetail(context.Context, string, uint) (*service.GameDetailView, error) {
	return nil, nil
}

func (f *fakeTracker) ToggleGame(_ context.Context, _ string, gid uint) (bool, error) {
	if f.following == nil {
		f.following = map[uint]bool{}
	}
	f.following[gid] = !f.following[gid]
	return f.following[gid], nil
}

func (f *fakeTracker) ToggleAchievement(context.Context, string, uint) (bool, error) {
	return true, nil
}

type fakePlayers struct{}

func (fakePlayers) List(_ context.Context, query string, order service.SortOrder) (service.PlayersView, error) {
	return service.PlayersView{Query: query, Order: order, Players: []repository.PlayerStats{}}, nil
}

func (fakePlayers) Get(context.Context, string) (*repository.PlayerStats, error) {
	return nil, nil
}

type fakeHome struct {
	view service.HomeView
}

func (f fakeHome) Load(context.Context) service.HomeView { return f.view }

type fakeSettings struct {
	deleted []string
}

func (f *fakeSettings) UpdateNickname(context.Context, string, string) error { return nil }

func (f *fakeSettings) RequestEmailChange(context.Context, string, string) error { return nil }

func (f *fakeSettings) ConfirmEmail(_ context.Context, token string) (*models.Account, error) {
	if token == "" {
		return nil, service.ErrInvalidToken
	}
	return &models.Account{ID: "u1", Email: "new@example.com"}, nil
}

func (f *fakeSettings) ChangePassword(context.Context, string, string) error { return nil }

func (f *fakeSettings) DeleteAccount(_ context.Context, uid, _, phrase string) error {
	if phrase != service.DeletePhrase {
		return service.ErrDeleteConfirmation
	}
	f.deleted = append(f.deleted, uid)
	return nil
}
