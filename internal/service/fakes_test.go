package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"trackr/backend/internal/models"
	"trackr/backend/internal/repository"

	"gorm.io/gorm"
)

var errBoom = errors.New("boom")

// memDB is an in-memory stand-in for the catalog tables.
type memDB struct {
	mu           sync.Mutex
	nextID       uint
	games        map[uint]*models.Game
	consoles     map[uint]*models.Console
	achievements map[uint]*models.Achievement
	links        map[uint][]uint
	follows      map[string]map[uint]bool
	unlocks      map[string]map[uint]bool
	calls        int
}

func newMemDB() *memDB {
	return &memDB{
		games:        map[uint]*models.Game{},
		consoles:     map[uint]*models.Console{},
		achievements: map[uint]*models.Achievement{},
		links:        map[uint][]uint{},
		follows:      map[string]map[uint]bool{},
		unlocks:      map[string]map[uint]bool{},
	}
}

func (db *memDB) id() uint {
	db.nextID++
	return db.nextID
}

func (db *memDB) gameWithConsoles(id uint) models.Game {
	g := *db.games[id]
	g.Consoles = []models.Console{}
	for _, cid := range db.links[id] {
		g.Consoles = append(g.Consoles, *db.consoles[cid])
	}
	return g
}

type fakeGames struct{ db *memDB }

func (f fakeGames) FetchAllWithConsoles(context.Context) ([]models.Game, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	f.db.calls++
	out := []models.Game{}
	for id := range f.db.games {
		out = append(out, f.db.gameWithConsoles(id))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f fakeGames) FetchByID(_ context.Context, id uint) (*models.Game, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	f.db.calls++
	if _, ok := f.db.games[id]; !ok {
		return nil, nil
	}
	g := f.db.gameWithConsoles(id)
	return &g, nil
}

func (f fakeGames) Exists(_ context.Context, id uint) (bool, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	f.db.calls++
	_, ok := f.db.games[id]
	return ok, nil
}

func (f fakeGames) setLinks(gid uint, ids []uint) error {
	for _, cid := range ids {
		if _, ok := f.db.consoles[cid]; !ok {
			return repository.ErrUnknownConsole
		}
	}
	f.db.links[gid] = append([]uint(nil), ids...)
	return nil
}

func (f fakeGames) Create(ctx context.Context, fields repository.GameFields, consoleIDs []uint) (*models.Game, error) {
	f.db.mu.Lock()
	f.db.calls++
	g := &models.Game{Name: fields.Name, Description: fields.Description, Pegi: fields.Pegi, ImageURL: fields.ImageURL}
	g.ID = f.db.id()
	if err := f.setLinks(g.ID, consoleIDs); err != nil {
		f.db.mu.Unlock()
		return nil, err
	}
	f.db.games[g.ID] = g
	f.db.mu.Unlock()
	return f.FetchByID(ctx, g.ID)
}

func (f fakeGames) Update(ctx context.Context, id uint, fields repository.GameFields, consoleIDs []uint) (*models.Game, error) {
	f.db.mu.Lock()
	f.db.calls++
	g, ok := f.db.games[id]
	if !ok {
		f.db.mu.Unlock()
		return nil, nil
	}
	if consoleIDs != nil {
		if err := f.setLinks(id, consoleIDs); err != nil {
			f.db.mu.Unlock()
			return nil, err
		}
	}
	g.Name, g.Description, g.Pegi, g.ImageURL = fields.Name, fields.Description, fields.Pegi, fields.ImageURL
	f.db.mu.Unlock()
	return f.FetchByID(ctx, id)
}

func (f fakeGames) Delete(_ context.Context, id uint) (bool, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	f.db.calls++
	if _, ok := f.db.games[id]; !ok {
		return false, nil
	}
	delete(f.db.games, id)
	delete(f.db.links, id)
	for aid, a := range f.db.achievements {
		if a.GID == id {
			delete(f.db.achievements, aid)
		}
	}
	for _, set := range f.db.follows {
		delete(set, id)
	}
	return true, nil
}

func (f fakeGames) SelectOptions(context.Context) ([]repository.Option, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	out := []repository.Option{}
	for id, g := range f.db.games {
		out = append(out, repository.Option{ID: id, Label: g.Name})
	}
	return out, nil
}

func (f fakeGames) FollowedBy(_ context.Context, uid string) ([]models.Game, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	out := []models.Game{}
	for gid := range f.db.follows[uid] {
		out = append(out, f.db.gameWithConsoles(gid))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f fakeGames) MostFollowed(_ context.Context, limit int) ([]repository.RankedGame, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	counts := map[uint]int64{}
	for _, set := range f.db.follows {
		for gid := range set {
			counts[gid]++
		}
	}
	out := []repository.RankedGame{}
	for gid, n := range counts {
		out = append(out, repository.RankedGame{Game: *f.db.games[gid], Followers: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Followers > out[j].Followers })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeConsoles struct {
	db  *memDB
	err error
}

func (f fakeConsoles) FetchAll(context.Context) ([]models.Console, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	out := []models.Console{}
	for _, c := range f.db.consoles {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f fakeConsoles) FetchByID(_ context.Context, id uint) (*models.Console, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	c, ok := f.db.consoles[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f fakeConsoles) LatestReleased(ctx context.Context, limit int) ([]models.Console, error) {
	if f.err != nil {
		return nil, f.err
	}
	all, _ := f.FetchAll(ctx)
	sort.SliceStable(all, func(i, j int) bool { return all[i].ReleaseYear > all[j].ReleaseYear })
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (f fakeConsoles) Create(_ context.Context, fields repository.ConsoleFields) (*models.Console, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	f.db.calls++
	c := &models.Console{Name: fields.Name, Brand: fields.Brand, ReleaseYear: fields.ReleaseYear, Description: fields.Description, ImageURL: fields.ImageURL}
	c.ID = f.db.id()
	f.db.consoles[c.ID] = c
	cp := *c
	return &cp, nil
}

func (f fakeConsoles) Update(_ context.Context, id uint, fields repository.ConsoleFields) (*models.Console, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	f.db.calls++
	c, ok := f.db.consoles[id]
	if !ok {
		return nil, nil
	}
	c.Name, c.Brand, c.ReleaseYear = fields.Name, fields.Brand, fields.ReleaseYear
	cp := *c
	return &cp, nil
}

func (f fakeConsoles) Delete(_ context.Context, id uint) (bool, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	f.db.calls++
	if _, ok := f.db.consoles[id]; !ok {
		return false, nil
	}
	delete(f.db.consoles, id)
	for gid, ids := range f.db.links {
		kept := []uint{}
		for _, cid := range ids {
			if cid != id {
				kept = append(kept, cid)
			}
		}
		f.db.links[gid] = kept
	}
	return true, nil
}

func (f fakeConsoles) SelectOptions(context.Context) ([]repository.Option, error) {
	return []repository.Option{}, nil
}

type fakeAchievements struct{ db *memDB }

func (f fakeAchievements) FetchAll(context.Context) ([]models.Achievement, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	out := []models.Achievement{}
	for _, a := range f.db.achievements {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f fakeAchievements) FetchByID(_ context.Context, id uint) (*models.Achievement, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	a, ok := f.db.achievements[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (f fakeAchievements) FetchForGame(ctx context.Context, gid uint) ([]models.Achievement, error) {
	return f.FetchForGames(ctx, []uint{gid})
}

func (f fakeAchievements) FetchForGames(ctx context.Context, gids []uint) ([]models.Achievement, error) {
	all, _ := f.FetchAll(ctx)
	out := []models.Achievement{}
	for _, a := range all {
		for _, gid := range gids {
			if a.GID == gid {
				out = append(out, a)
			}
		}
	}
	return out, nil
}

func (f fakeAchievements) Create(_ context.Context, fields repository.AchievementFields) (*models.Achievement, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	f.db.calls++
	a := &models.Achievement{Name: fields.Name, Description: fields.Description, GID: fields.GID}
	a.ID = f.db.id()
	f.db.achievements[a.ID] = a
	cp := *a
	return &cp, nil
}

func (f fakeAchievements) Update(_ context.Context, id uint, fields repository.AchievementFields) (*models.Achievement, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	f.db.calls++
	a, ok := f.db.achievements[id]
	if !ok {
		return nil, nil
	}
	a.Name, a.Description, a.GID = fields.Name, fields.Description, fields.GID
	cp := *a
	return &cp, nil
}

func (f fakeAchievements) Delete(_ context.Context, id uint) (bool, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	f.db.calls++
	_, ok := f.db.achievements[id]
	delete(f.db.achievements, id)
	return ok, nil
}

type fakeFollows struct{ db *memDB }

func set(m map[string]map[uint]bool, uid string) map[uint]bool {
	if m[uid] == nil {
		m[uid] = map[uint]bool{}
	}
	return m[uid]
}

func keys(m map[uint]bool) []uint {
	out := []uint{}
	for k := range m {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (f fakeFollows) FollowGame(_ context.Context, uid string, gid uint) error {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	set(f.db.follows, uid)[gid] = true
	return nil
}

func (f fakeFollows) UnfollowGame(_ context.Context, uid string, gid uint) error {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	delete(set(f.db.follows, uid), gid)
	return nil
}

func (f fakeFollows) IsFollowingGame(_ context.Context, uid string, gid uint) (bool, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	return f.db.follows[uid][gid], nil
}

func (f fakeFollows) FollowedGameIDs(_ context.Context, uid string) ([]uint, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	return keys(f.db.follows[uid]), nil
}

func (f fakeFollows) UnlockAchievement(_ context.Context, uid string, aid uint) error {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	set(f.db.unlocks, uid)[aid] = true
	return nil
}

func (f fakeFollows) LockAchievement(_ context.Context, uid string, aid uint) error {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	delete(set(f.db.unlocks, uid), aid)
	return nil
}

func (f fakeFollows) IsAchievementUnlocked(_ context.Context, uid string, aid uint) (bool, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	return f.db.unlocks[uid][aid], nil
}

func (f fakeFollows) UnlockedAchievementIDs(_ context.Context, uid string) ([]uint, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	return keys(f.db.unlocks[uid]), nil
}

type fakeProfiles struct {
	players []repository.PlayerStats
	err     error
	renamed map[string]string
	queries []string
}

func (f *fakeProfiles) FetchStats(_ context.Context, uid string) (*repository.PlayerStats, error) {
	for _, p := range f.players {
		if p.UID == uid {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeProfiles) FetchAll(context.Context) ([]repository.PlayerStats, error) {
	return append([]repository.PlayerStats(nil), f.players...), f.err
}

func (f *fakeProfiles) Search(_ context.Context, query string) ([]repository.PlayerStats, error) {
	f.queries = append(f.queries, query)
	out := []repository.PlayerStats{}
	for _, p := range f.players {
		if strings.Contains(strings.ToLower(p.Nickname), strings.ToLower(query)) {
			out = append(out, p)
		}
	}
	return out, f.err
}

func (f *fakeProfiles) TopByFollowedAchievements(_ context.Context, limit int) ([]repository.PlayerStats, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := SortPlayers(f.players, SortByAchievements)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeProfiles) UpdateNickname(_ context.Context, uid, nickname string) (bool, error) {
	for _, p := range f.players {
		if p.UID == uid {
			if f.renamed == nil {
				f.renamed = map[string]string{}
			}
			f.renamed[uid] = nickname
			return true, nil
		}
	}
	return false, nil
}

type fakeAccounts struct {
	accounts map[string]*models.Account
}

func (f *fakeAccounts) FetchByID(_ context.Context, uid string) (*models.Account, error) {
	return f.accounts[uid], nil
}

func (f *fakeAccounts) FetchByEmail(_ context.Context, email string) (*models.Account, error) {
	for _, a := range f.accounts {
		if strings.EqualFold(a.Email, email) {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAccounts) UpdatePassword(_ context.Context, uid, hash string) error {
	a, ok := f.accounts[uid]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	a.PasswordHash = hash
	return nil
}

func (f *fakeAccounts) SetPendingEmail(_ context.Context, uid, email, token string) error {
	a := f.accounts[uid]
	a.PendingEmail = email
	a.EmailToken = &token
	return nil
}

func (f *fakeAccounts) ConfirmEmail(_ context.Context, token string, now time.Time) (*models.Account, error) {
	for _, a := range f.accounts {
		if a.EmailToken != nil && *a.EmailToken == token {
			if a.PendingEmail != "" {
				a.Email = a.PendingEmail
			}
			a.PendingEmail = ""
			a.EmailToken = nil
			a.EmailConfirmedAt = &now
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAccounts) Delete(_ context.Context, uid string) (bool, error) {
	_, ok := f.accounts[uid]
	delete(f.accounts, uid)
	return ok, nil
}

type fakeSessions struct {
	signedOut []string
	notified  []string
}

func (f *fakeSessions) SignOut(_ context.Context, token string) error {
	f.signedOut = append(f.signedOut, token)
	return nil
}

func (f *fakeSessions) Notify(uid string, _ any) {
	f.notified = append(f.notified, uid)
}

type fakeMailer struct {
	to, token string
}

func (f *fakeMailer) SendConfirmation(_ context.Context, to, token string) error {
	f.to, f.token = to, token
	return nil
}
