package service

import (
	"context"
	"fmt"
	"strings"

	"trackr/backend/internal/models"
	"trackr/backend/internal/repository"
)

// GameInput is the editable content of a game. A nil ConsoleIDs leaves the
// links of an existing game untouched; an empty slice clears them.
type GameInput struct {
	Name        string
	Description string
	Pegi        int
	ImageURL    string
	ConsoleIDs  []uint
}

type ConsoleInput struct {
	Name        string
	Brand       string
	ReleaseYear int
	Description string
	ImageURL    string
}

type AchievementInput struct {
	Name        string
	Description string
	GID         uint
}

// CatalogService manages games, consoles and achievements. Every mutation
// requires an administrator profile.
type CatalogService struct {
	games        GameStore
	consoles     ConsoleStore
	achievements AchievementStore
}

func NewCatalogService(games GameStore, consoles ConsoleStore, achievements AchievementStore) *CatalogService {
	return &CatalogService{games: games, consoles: consoles, achievements: achievements}
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s", ErrRequired, field)
	}
	return nil
}

// region --- Games ---

func (s *CatalogService) ListGames(ctx context.Context) ([]models.Game, error) {
	return s.games.FetchAllWithConsoles(ctx)
}

// GetGame returns nil, nil when the game does not exist.
func (s *CatalogService) GetGame(ctx context.Context, id uint) (*models.Game, error) {
	return s.games.FetchByID(ctx, id)
}

func (s *CatalogService) CreateGame(ctx context.Context, actor *models.Profile, in GameInput) (*models.Game, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := required("name", in.Name); err != nil {
		return nil, err
	}
	consoleIDs := in.ConsoleIDs
	if consoleIDs == nil {
		consoleIDs = []uint{}
	}
	return s.games.Create(ctx, in.fields(), consoleIDs)
}

func (s *CatalogService) UpdateGame(ctx context.Context, actor *models.Profile, id uint, in GameInput) (*models.Game, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := required("name", in.Name); err != nil {
		return nil, err
	}
	game, err := s.games.Update(ctx, id, in.fields(), in.ConsoleIDs)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, ErrNotFound
	}
	return game, nil
}

// DeleteGame removes the game with its achievements, console links and follows.
func (s *CatalogService) DeleteGame(ctx context.Context, actor *models.Profile, id uint) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	return notFoundUnless(s.games.Delete(ctx, id))
}

func (in GameInput) fields() repository.GameFields {
	return repository.GameFields{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Pegi:        in.Pegi,
		ImageURL:    in.ImageURL,
	}
}

// endregion

// region --- Consoles ---

func (s *CatalogService) ListConsoles(ctx context.Context) ([]models.Console, error) {
	return s.consoles.FetchAll(ctx)
}

// GetConsole returns nil, nil when the console does not exist.
func (s *CatalogService) GetConsole(ctx context.Context, id uint) (*models.Console, error) {
	return s.consoles.FetchByID(ctx, id)
}

func (s *CatalogService) CreateConsole(ctx context.Context, actor *models.Profile, in ConsoleInput) (*models.Console, error) {
	if err := s.checkConsole(actor, in); err != nil {
		return nil, err
	}
	return s.consoles.Create(ctx, in.fields())
}

func (s *CatalogService) UpdateConsole(ctx context.Context, actor *models.Profile, id uint, in ConsoleInput) (*models.Console, error) {
	if err := s.checkConsole(actor, in); err != nil {
		return nil, err
	}
	console, err := s.consoles.Update(ctx, id, in.fields())
	if err != nil {
		return nil, err
	}
	if console == nil {
		return nil, ErrNotFound
	}
	return console, nil
}

// DeleteConsole also unlinks the console from every game.
func (s *CatalogService) DeleteConsole(ctx context.Context, actor *models.Profile, id uint) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	return notFoundUnless(s.consoles.Delete(ctx, id))
}

func (s *CatalogService) checkConsole(actor *models.Profile, in ConsoleInput) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if err := required("name", in.Name); err != nil {
		return err
	}
	return required("brand", in.Brand)
}

func (in ConsoleInput) fields() repository.ConsoleFields {
	return repository.ConsoleFields{
		Name:        strings.TrimSpace(in.Name),
		Brand:       strings.TrimSpace(in.Brand),
		ReleaseYear: in.ReleaseYear,
		Description: in.Description,
		ImageURL:    in.ImageURL,
	}
}

// endregion

// region --- Achievements ---

func (s *CatalogService) ListAchievements(ctx context.Context) ([]models.Achievement, error) {
	return s.achievements.FetchAll(ctx)
}

// GetAchievement returns nil, nil when the achievement does not exist.
func (s *CatalogService) GetAchievement(ctx context.Context, id uint) (*models.Achievement, error) {
	return s.achievements.FetchByID(ctx, id)
}

func (s *CatalogService) CreateAchievement(ctx context.Context, actor *models.Profile, in AchievementInput) (*models.Achievement, error) {
	if err := s.checkAchievement(ctx, actor, in); err != nil {
		return nil, err
	}
	return s.achievements.Create(ctx, in.fields())
}

func (s *CatalogService) UpdateAchievement(ctx context.Context, actor *models.Profile, id uint, in AchievementInput) (*models.Achievement, error) {
	if err := s.checkAchievement(ctx, actor, in); err != nil {
		return nil, err
	}
	achievement, err := s.achievements.Update(ctx, id, in.fields())
	if err != nil {
		return nil, err
	}
	if achievement == nil {
		return nil, ErrNotFound
	}
	return achievement, nil
}

func (s *CatalogService) DeleteAchievement(ctx context.Context, actor *models.Profile, id uint) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	return notFoundUnless(s.achievements.Delete(ctx, id))
}

func (s *CatalogService) checkAchievement(ctx context.Context, actor *models.Profile, in AchievementInput) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if err := required("name", in.Name); err != nil {
		return err
	}
	if in.GID == 0 {
		return fmt.Errorf("%w: gid", ErrRequired)
	}
	ok, err := s.games.Exists(ctx, in.GID)
	if err != nil {
		return err
	}
	if !ok {
		return repository.ErrUnknownGame
	}
	return nil
}

func (in AchievementInput) fields() repository.AchievementFields {
	return repository.AchievementFields{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		GID:         in.GID,
	}
}

// endregion

// Options returns the select options of a catalog table.
func (s *CatalogService) Options(ctx context.Context, table string) ([]repository.Option, error) {
	switch table {
	case "games":
		return s.games.SelectOptions(ctx)
	case "consoles":
		return s.consoles.SelectOptions(ctx)
	}
	return nil, fmt.Errorf("unknown option table %q", table)
}

func notFoundUnless(deleted bool, err error) error {
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
