package service

import (
	"context"

	"trackr/backend/internal/models"
	"trackr/backend/internal/repository"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	homeTopPlayers     = 2
	homeTopGames       = 3
	homeLatestConsoles = 3
)

// HomeView is the landing page content.
type HomeView struct {
	TopPlayers     []repository.PlayerStats `json:"top_players"`
	PopularGames   []repository.RankedGame  `json:"popular_games"`
	LatestConsoles []models.Console         `json:"latest_consoles"`
}

type HomeService struct {
	profiles ProfileStore
	games    GameStore
	consoles ConsoleStore
	log      zerolog.Logger
}

func NewHomeService(profiles ProfileStore, games GameStore, consoles ConsoleStore, log zerolog.Logger) *HomeService {
	return &HomeService{profiles: profiles, games: games, consoles: consoles, log: log}
}

// Load fetches the three sections in parallel. A failing section is
// logged and left empty; the others are still returned.
func (s *HomeService) Load(ctx context.Context) HomeView {
	view := HomeView{
		TopPlayers:     []repository.PlayerStats{},
		PopularGames:   []repository.RankedGame{},
		LatestConsoles: []models.Console{},
	}

	var g errgroup.Group
	g.Go(func() error {
		players, err := s.profiles.TopByFollowedAchievements(ctx, homeTopPlayers)
		if err != nil {
			s.log.Error().Err(err).Msg("home: top players")
			return nil
		}
		if players != nil {
			view.TopPlayers = players
		}
		return nil
	})
	g.Go(func() error {
		games, err := s.games.MostFollowed(ctx, homeTopGames)
		if err != nil {
			s.log.Error().Err(err).Msg("home: most followed games")
			return nil
		}
		if games != nil {
			view.PopularGames = games
		}
		return nil
	})
	g.Go(func() error {
		consoles, err := s.consoles.LatestReleased(ctx, homeLatestConsoles)
		if err != nil {
			s.log.Error().Err(err).Msg("home: latest consoles")
			return nil
		}
		if consoles != nil {
			view.LatestConsoles = consoles
		}
		return nil
	})
	_ = g.Wait()
	return view
}
