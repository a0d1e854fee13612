package seed

import (
	"context"
	"errors"
	"testing"

	"trackr/backend/internal/models"
	"trackr/backend/internal/repository"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type memStore struct {
	nextID       uint
	consoles     []models.Console
	games        map[uint][]uint
	achievements map[uint]uint
	accounts     map[string]*models.Account
	profiles     []models.Profile
	follows      map[string][]uint
	unlocks      map[string][]uint
	failConsoles bool
}

func newMemStore() *memStore {
	return &memStore{
		games:        map[uint][]uint{},
		achievements: map[uint]uint{},
		accounts:     map[string]*models.Account{},
		follows:      map[string][]uint{},
		unlocks:      map[string][]uint{},
	}
}

type consoleStore struct{ *memStore }

func (s consoleStore) Create(_ context.Context, f repository.ConsoleFields) (*models.Console, error) {
	if s.failConsoles {
		return nil, errors.New("insert failed")
	}
	s.nextID++
	c := models.Console{Name: f.Name, Brand: f.Brand, ReleaseYear: f.ReleaseYear}
	c.ID = s.nextID
	s.consoles = append(s.consoles, c)
	return &c, nil
}

type gameStore struct{ *memStore }

func (s gameStore) Create(_ context.Context, f repository.GameFields, consoleIDs []uint) (*models.Game, error) {
	s.nextID++
	g := models.Game{Name: f.Name, Pegi: f.Pegi}
	g.ID = s.nextID
	s.games[g.ID] = consoleIDs
	return &g, nil
}

type achievementStore struct{ *memStore }

func (s achievementStore) Create(_ context.Context, f repository.AchievementFields) (*models.Achievement, error) {
	s.nextID++
	a := models.Achievement{Name: f.Name, GID: f.GID}
	a.ID = s.nextID
	s.achievements[a.ID] = f.GID
	return &a, nil
}

func (s *memStore) Create(_ context.Context, a *models.Account, p *models.Profile) error {
	s.accounts[a.Email] = a
	p.UID = a.ID
	s.profiles = append(s.profiles, *p)
	return nil
}

func (s *memStore) FetchByEmail(_ context.Context, email string) (*models.Account, error) {
	return s.accounts[email], nil
}

func (s *memStore) FollowGame(_ context.Context, uid string, gid uint) error {
	s.follows[uid] = append(s.follows[uid], gid)
	return nil
}

func (s *memStore) UnlockAchievement(_ context.Context, uid string, aid uint) error {
	s.unlocks[uid] = append(s.unlocks[uid], aid)
	return nil
}

func newSeeder(store *memStore, opts Options) *Seeder {
	opts.BcryptCost = bcrypt.MinCost
	return New(Deps{
		Consoles:     consoleStore{store},
		Games:        gameStore{store},
		Achievements: achievementStore{store},
		Accounts:     store,
		Follows:      store,
		Log:          zerolog.Nop(),
	}, opts)
}

func TestRun(t *testing.T) {
	store := newMemStore()
	sum, err := newSeeder(store, Options{Consoles: 3, Games: 4, AchievementsPerGame: 2, Players: 5, Seed: 42}).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, Summary{Consoles: 3, Games: 4, Achievements: 8, Players: 5, AdminCreated: true}, sum)
	assert.Len(t, store.consoles, 3)
	require.Len(t, store.profiles, 6)
	assert.Equal(t, models.RoleAdmin, store.profiles[0].Rid)
	for _, p := range store.profiles[1:] {
		assert.Equal(t, models.RoleMember, p.Rid)
	}

	consoleIDs := map[uint]bool{}
	for _, c := range store.consoles {
		consoleIDs[c.ID] = true
		assert.Contains(t, brands, c.Brand)
		assert.GreaterOrEqual(t, c.ReleaseYear, 1977)
	}
	for gid, links := range store.games {
		assert.NotEmpty(t, links, "game %d", gid)
		for _, cid := range links {
			assert.True(t, consoleIDs[cid], "game %d links unknown console %d", gid, cid)
		}
	}

	for uid, aids := range store.unlocks {
		followed := map[uint]bool{}
		for _, gid := range store.follows[uid] {
			followed[gid] = true
		}
		for _, aid := range aids {
			assert.True(t, followed[store.achievements[aid]], "unlocked achievement of an unfollowed game")
		}
	}

	admin := store.accounts["admin@trackr.local"]
	require.NotNil(t, admin)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("changeme123")))
	assert.NotNil(t, admin.EmailConfirmedAt)
}

func TestRun_PlayersDoNotShareAdminPassword(t *testing.T) {
	store := newMemStore()
	_, err := newSeeder(store, Options{Consoles: 1, Games: 1, AchievementsPerGame: 1, Players: 2, Seed: 7}).Run(context.Background())
	require.NoError(t, err)

	require.Len(t, store.accounts, 3)
	for email, account := range store.accounts {
		if email == "admin@trackr.local" {
			continue
		}
		assert.Error(t, bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte("changeme123")), email)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte("player1234")), email)
	}
}

func TestRun_KeepsExistingAdmin(t *testing.T) {
	store := newMemStore()
	store.accounts["root@example.com"] = &models.Account{ID: "existing", Email: "root@example.com"}

	sum, err := newSeeder(store, Options{Players: 1, AdminEmail: "root@example.com", Seed: 1}).Run(context.Background())
	require.NoError(t, err)
	assert.False(t, sum.AdminCreated)
	assert.Equal(t, "existing", store.accounts["root@example.com"].ID)
	assert.Len(t, store.profiles, 1)
}

func TestRun_StopsOnStoreError(t *testing.T) {
	store := newMemStore()
	store.failConsoles = true

	_, err := newSeeder(store, Options{Seed: 7}).Run(context.Background())
	assert.ErrorContains(t, err, "seed console")
	assert.Empty(t, store.games)
}
