package service

import (
	"context"
	"slices"

	"trackr/backend/internal/models"
)

// GameProgress is a followed game with the user's completion.
type GameProgress struct {
	Game         models.Game
	Achievements []models.Achievement
	Unlocked     int
	Percentage   int
}

// DashboardView lists the games a user follows.
type DashboardView struct {
	Games       []GameProgress
	UnlockedIDs []uint
}

// GameDetailView is a game page as seen by a signed-in user.
type GameDetailView struct {
	Game         models.Game
	Achievements []models.Achievement
	UnlockedIDs  []uint
	Percentage   int
	Following    bool
}

// TrackerService computes progress and toggles follows.
type TrackerService struct {
	games        GameStore
	achievements AchievementStore
	follows      FollowStore
}

func NewTrackerService(games GameStore, achievements AchievementStore, follows FollowStore) *TrackerService {
	return &TrackerService{games: games, achievements: achievements, follows: follows}
}

// Dashboard returns the followed games with per-game completion.
func (s *TrackerService) Dashboard(ctx context.Context, uid string) (DashboardView, error) {
	games, err := s.games.FollowedBy(ctx, uid)
	if err != nil {
		return DashboardView{}, err
	}
	unlocked, err := s.follows.UnlockedAchievementIDs(ctx, uid)
	if err != nil {
		return DashboardView{}, err
	}
	if unlocked == nil {
		unlocked = []uint{}
	}

	gids := make([]uint, len(games))
	for i, g := range games {
		gids[i] = g.ID
	}
	achievements, err := s.achievements.FetchForGames(ctx, gids)
	if err != nil {
		return DashboardView{}, err
	}
	byGame := make(map[uint][]models.Achievement, len(games))
	for _, a := range achievements {
		byGame[a.GID] = append(byGame[a.GID], a)
	}

	view := DashboardView{Games: make([]GameProgress, 0, len(games)), UnlockedIDs: unlocked}
	for _, g := range games {
		list := byGame[g.ID]
		if list == nil {
			list = []models.Achievement{}
		}
		n := countUnlocked(list, unlocked)
		view.Games = append(view.Games, GameProgress{
			Game:         g,
			Achievements: list,
			Unlocked:     n,
			Percentage:   Percentage(n, len(list)),
		})
	}
	return view, nil
}

// GameDetail returns nil, nil when the game does not exist.
func (s *TrackerService) GameDetail(ctx context.Context, uid string, gid uint) (*GameDetailView, error) {
	game, err := s.games.FetchByID(ctx, gid)
	if err != nil || game == nil {
		return nil, err
	}
	achievements, err := s.achievements.FetchForGame(ctx, gid)
	if err != nil {
		return nil, err
	}
	if achievements == nil {
		achievements = []models.Achievement{}
	}
	unlocked, err := s.follows.UnlockedAchievementIDs(ctx, uid)
	if err != nil {
		return nil, err
	}
	following, err := s.follows.IsFollowingGame(ctx, uid, gid)
	if err != nil {
		return nil, err
	}

	mine := []uint{}
	for _, a := range achievements {
		if slices.Contains(unlocked, a.ID) {
			mine = append(mine, a.ID)
		}
	}
	return &GameDetailView{
		Game:         *game,
		Achievements: achievements,
		UnlockedIDs:  mine,
		Percentage:   Percentage(len(mine), len(achievements)),
		Following:    following,
	}, nil
}

// ToggleGame follows or unfollows a game and returns the new state.
func (s *TrackerService) ToggleGame(ctx context.Context, uid string, gid uint) (bool, error) {
	ok, err := s.games.Exists(ctx, gid)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, ErrNotFound
	}
	following, err := s.follows.IsFollowingGame(ctx, uid, gid)
	if err != nil {
		return false, err
	}
	if following {
		return false, s.follows.UnfollowGame(ctx, uid, gid)
	}
	return true, s.follows.FollowGame(ctx, uid, gid)
}

// ToggleAchievement unlocks or locks an achievement and returns the new state.
func (s *TrackerService) ToggleAchievement(ctx context.Context, uid string, aid uint) (bool, error) {
	a, err := s.achievements.FetchByID(ctx, aid)
	if err != nil {
		return false, err
	}
	if a == nil {
		return false, ErrNotFound
	}
	unlocked, err := s.follows.IsAchievementUnlocked(ctx, uid, aid)
	if err != nil {
		return false, err
	}
	if unlocked {
		return false, s.follows.LockAchievement(ctx, uid, aid)
	}
	return true, s.follows.UnlockAchievement(ctx, uid, aid)
}

func countUnlocked(achievements []models.Achievement, unlocked []uint) int {
	n := 0
	for _, a := range achievements {
		if slices.Contains(unlocked, a.ID) {
			n++
		}
	}
	return n
}
