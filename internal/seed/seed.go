// Package seed fills an empty database with a demo catalog, an
// administrator and a few players with progress.
package seed

import (
	"context"
	"fmt"
	"time"

	"trackr/backend/internal/models"
	"trackr/backend/internal/repository"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

var brands = []string{"Nintendo", "Sony", "Microsoft", "Sega", "Atari", "SNK"}

type Consoles interface {
	Create(ctx context.Context, fields repository.ConsoleFields) (*models.Console, error)
}

type Games interface {
	Create(ctx context.Context, fields repository.GameFields, consoleIDs []uint) (*models.Game, error)
}

type Achievements interface {
	Create(ctx context.Context, fields repository.AchievementFields) (*models.Achievement, error)
}

type Accounts interface {
	Create(ctx context.Context, account *models.Account, profile *models.Profile) error
	FetchByEmail(ctx context.Context, email string) (*models.Account, error)
}

type Follows interface {
	FollowGame(ctx context.Context, uid string, gid uint) error
	UnlockAchievement(ctx context.Context, uid string, aid uint) error
}

// Deps are the stores written by the seeder.
type Deps struct {
	Consoles     Consoles
	Games        Games
	Achievements Achievements
	Accounts     Accounts
	Follows      Follows
	Log          zerolog.Logger
}

// Options size the generated data. Zero values take the defaults.
type Options struct {
	Consoles            int
	Games               int
	AchievementsPerGame int
	Players             int
	AdminEmail          string
	AdminPassword       string
	// PlayerPassword is shared by every generated player.
	PlayerPassword string
	Seed           int64
	BcryptCost     int
}

func (o Options) withDefaults() Options {
	if o.Consoles == 0 {
		o.Consoles = 6
	}
	if o.Games == 0 {
		o.Games = 12
	}
	if o.AchievementsPerGame == 0 {
		o.AchievementsPerGame = 5
	}
	if o.Players == 0 {
		o.Players = 8
	}
	if o.AdminEmail == "" {
		o.AdminEmail = "admin@trackr.local"
	}
	if o.AdminPassword == "" {
		o.AdminPassword = "changeme123"
	}
	if o.PlayerPassword == "" {
		o.PlayerPassword = "player1234"
	}
	if o.Seed == 0 {
		o.Seed = time.Now().UnixNano()
	}
	if o.BcryptCost == 0 {
		o.BcryptCost = bcrypt.DefaultCost
	}
	return o
}

// Summary counts what a run created.
type Summary struct {
	Consoles     int
	Games        int
	Achievements int
	Players      int
	AdminCreated bool
}

type Seeder struct {
	Deps
	opts  Options
	faker *gofakeit.Faker
}

func New(d Deps, opts Options) *Seeder {
	opts = opts.withDefaults()
	return &Seeder{Deps: d, opts: opts, faker: gofakeit.New(uint64(opts.Seed))}
}

// Run creates the demo data. The admin account is skipped when its email
// is already registered; everything else is added on every run.
func (s *Seeder) Run(ctx context.Context) (Summary, error) {
	var sum Summary

	created, err := s.admin(ctx)
	if err != nil {
		return sum, err
	}
	sum.AdminCreated = created

	consoleIDs := make([]uint, 0, s.opts.Consoles)
	for i := 0; i < s.opts.Consoles; i++ {
		c, err := s.Consoles.Create(ctx, repository.ConsoleFields{
			Name:        fmt.Sprintf("%s %d", s.faker.AppName(), i+1),
			Brand:       brands[s.faker.Number(0, len(brands)-1)],
			ReleaseYear: s.faker.Number(1977, 2024),
			Description: s.faker.Sentence(s.faker.Number(6, 12)),
		})
		if err != nil {
			return sum, fmt.Errorf("seed console: %w", err)
		}
		consoleIDs = append(consoleIDs, c.ID)
		sum.Consoles++
	}

	var gameIDs []uint
	var achievementIDs [][]uint
	for i := 0; i < s.opts.Games; i++ {
		g, err := s.Games.Create(ctx, repository.GameFields{
			Name:        s.faker.Sentence(s.faker.Number(1, 3)),
			Description: s.faker.Sentence(s.faker.Number(8, 16)),
			Pegi:        []int{3, 7, 12, 16, 18}[s.faker.Number(0, 4)],
		}, s.pick(consoleIDs, s.faker.Number(1, 3)))
		if err != nil {
			return sum, fmt.Errorf("seed game: %w", err)
		}
		gameIDs = append(gameIDs, g.ID)
		sum.Games++

		ids := make([]uint, 0, s.opts.AchievementsPerGame)
		for j := 0; j < s.opts.AchievementsPerGame; j++ {
			a, err := s.Achievements.Create(ctx, repository.AchievementFields{
				Name:        s.faker.Sentence(s.faker.Number(2, 4)),
				Description: s.faker.Sentence(s.faker.Number(6, 10)),
				GID:         g.ID,
			})
			if err != nil {
				return sum, fmt.Errorf("seed achievement: %w", err)
			}
			ids = append(ids, a.ID)
			sum.Achievements++
		}
		achievementIDs = append(achievementIDs, ids)
	}

	for i := 0; i < s.opts.Players; i++ {
		uid, err := s.account(ctx, s.faker.Email(), s.faker.Username(), s.opts.PlayerPassword, models.RoleMember)
		if err != nil {
			return sum, err
		}
		sum.Players++
		for _, idx := range s.pickIndexes(len(gameIDs), s.faker.Number(0, 4)) {
			if err := s.Follows.FollowGame(ctx, uid, gameIDs[idx]); err != nil {
				return sum, fmt.Errorf("seed follow: %w", err)
			}
			for _, aid := range s.pick(achievementIDs[idx], s.faker.Number(0, len(achievementIDs[idx]))) {
				if err := s.Follows.UnlockAchievement(ctx, uid, aid); err != nil {
					return sum, fmt.Errorf("seed unlock: %w", err)
				}
			}
		}
	}

	s.Log.Info().
		Int("consoles", sum.Consoles).
		Int("games", sum.Games).
		Int("achievements", sum.Achievements).
		Int("players", sum.Players).
		Bool("admin_created", sum.AdminCreated).
		Msg("seed complete")
	return sum, nil
}

func (s *Seeder) admin(ctx context.Context) (bool, error) {
	existing, err := s.Accounts.FetchByEmail(ctx, s.opts.AdminEmail)
	if err != nil {
		return false, fmt.Errorf("seed admin: %w", err)
	}
	if existing != nil {
		s.Log.Info().Str("email", s.opts.AdminEmail).Msg("admin account already exists")
		return false, nil
	}
	if _, err := s.account(ctx, s.opts.AdminEmail, "admin", s.opts.AdminPassword, models.RoleAdmin); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Seeder) account(ctx context.Context, email, nickname, password string, role int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.opts.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	now := time.Now()
	account := &models.Account{
		ID:               uuid.NewString(),
		Email:            email,
		PasswordHash:     string(hash),
		EmailConfirmedAt: &now,
	}
	profile := &models.Profile{Email: email, Nickname: nickname, Rid: role}
	if err := s.Accounts.Create(ctx, account, profile); err != nil {
		return "", fmt.Errorf("seed account %s: %w", email, err)
	}
	return account.ID, nil
}

// pick returns n distinct elements of ids.
func (s *Seeder) pick(ids []uint, n int) []uint {
	out := make([]uint, 0, n)
	for _, i := range s.pickIndexes(len(ids), n) {
		out = append(out, ids[i])
	}
	return out
}

func (s *Seeder) pickIndexes(total, n int) []int {
	idx := make([]int, total)
	for i := range idx {
		idx[i] = i
	}
	s.faker.ShuffleAnySlice(idx)
	if n > total {
		n = total
	}
	return idx[:n]
}
