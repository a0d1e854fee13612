package service

import (
	"context"
	"sort"
	"strings"

	"trackr/backend/internal/repository"
)

// SortOrder selects how the player list is ordered.
type SortOrder int

const (
	SortNone SortOrder = iota
	SortAlphabetical
	SortByGames
	SortByAchievements
)

const podiumSize = 3

// PlayersView is the player listing. Podium is only filled when sorting by
// unlocked achievements.
type PlayersView struct {
	Query   string                   `json:"query"`
	Order   SortOrder                `json:"order"`
	Players []repository.PlayerStats `json:"players"`
	Podium  []repository.PlayerStats `json:"podium,omitempty"`
}

type PlayerService struct {
	profiles ProfileStore
}

func NewPlayerService(profiles ProfileStore) *PlayerService {
	return &PlayerService{profiles: profiles}
}

// List returns every player, or those whose nickname matches query.
func (s *PlayerService) List(ctx context.Context, query string, order SortOrder) (PlayersView, error) {
	query = strings.TrimSpace(query)
	var (
		players []repository.PlayerStats
		err     error
	)
	if query != "" {
		players, err = s.profiles.Search(ctx, query)
	} else {
		players, err = s.profiles.FetchAll(ctx)
	}
	if err != nil {
		return PlayersView{}, err
	}
	if players == nil {
		players = []repository.PlayerStats{}
	}

	view := PlayersView{Query: query, Order: order, Players: SortPlayers(players, order)}
	if order == SortByAchievements {
		n := min(podiumSize, len(view.Players))
		view.Podium = view.Players[:n]
	}
	return view, nil
}

// Get returns nil, nil when the player does not exist.
func (s *PlayerService) Get(ctx context.Context, uid string) (*repository.PlayerStats, error) {
	return s.profiles.FetchStats(ctx, uid)
}

// SortPlayers returns a sorted copy. Unknown orders keep the input order.
func SortPlayers(players []repository.PlayerStats, order SortOrder) []repository.PlayerStats {
	out := append([]repository.PlayerStats(nil), players...)
	switch order {
	case SortAlphabetical:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Nickname) < strings.ToLower(out[j].Nickname)
		})
	case SortByGames:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].FollowedGames > out[j].FollowedGames
		})
	case SortByAchievements:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].FollowedAchievements > out[j].FollowedAchievements
		})
	}
	return out
}
