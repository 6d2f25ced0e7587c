package league

import (
	"context"
	"errors"
	"fmt"

	"github.com/rhuselid/gmcareer/internal/development"
	fb "github.com/rhuselid/gmcareer/internal/football"
	"github.com/rhuselid/gmcareer/internal/models"
	"github.com/rhuselid/gmcareer/internal/ratings"
	"github.com/rhuselid/gmcareer/internal/services"
	"github.com/rhuselid/gmcareer/internal/simulator"
	"github.com/rhuselid/gmcareer/internal/store"
	"github.com/rhuselid/gmcareer/pkg/utils"
	"github.com/sirupsen/logrus"
)

// ExhibitionResult is a game played outside the schedule. Replaying it with
// the same seed reproduces the box score as long as both rosters are
// unchanged.
type ExhibitionResult struct {
	Seed   int64                `json:"seed"`
	Result simulator.GameResult `json:"result"`
}

// SimulateExhibition plays home against away without saving anything. A zero
// seed draws one from the service's generator.
func (s *Service) SimulateExhibition(ctx context.Context, homeID, awayID uint, seed int64) (*ExhibitionResult, error) {
	if homeID == awayID {
		return nil, fmt.Errorf("a team cannot play itself: %w", utils.ErrInvalidInput)
	}

	home, err := s.store.GetTeam(ctx, homeID)
	if err != nil {
		return nil, err
	}
	away, err := s.store.GetTeam(ctx, awayID)
	if err != nil {
		return nil, err
	}
	homeRoster, err := s.store.RosterByPosition(ctx, homeID)
	if err != nil {
		return nil, err
	}
	awayRoster, err := s.store.RosterByPosition(ctx, awayID)
	if err != nil {
		return nil, err
	}

	manager, err := s.store.GetManager(ctx)
	if err != nil && !errors.Is(err, utils.ErrNotFound) {
		return nil, err
	}
	var inGame int
	if manager != nil {
		inGame = manager.InGameManagement
	}

	if seed == 0 {
		seed = s.nextSeed()
	}
	tuning := s.opts.Tuning
	result := simulator.SimulateGame(simulator.GameInput{
		HomeTeamID:    home.ID,
		AwayTeamID:    away.ID,
		HomeTeamName:  home.Name,
		AwayTeamName:  away.Name,
		Home:          homeRoster,
		Away:          awayRoster,
		ManagerTeamID: manager.TeamID(),
		ManagerInGame: inGame,
		Seed:          seed,
		Tuning:        &tuning,
	})

	s.logger.WithFields(logrus.Fields{
		"home_team_id": homeID,
		"away_team_id": awayID,
		"seed":         seed,
	}).Debug("Exhibition simulated")
	return &ExhibitionResult{Seed: seed, Result: result}, nil
}

// GameResult returns a stored game's box score, from cache when possible.
func (s *Service) GameResult(ctx context.Context, gameID uint) (simulator.GameResult, error) {
	var result simulator.GameResult
	if s.opts.Cache != nil {
		err := s.opts.Cache.Get(ctx, services.GameCacheKey(gameID), &result)
		if err == nil {
			return result, nil
		}
		if !errors.Is(err, services.ErrCacheMiss) {
			s.logger.WithError(err).WithField("game_id", gameID).Warn("Failed to read cached game result")
		}
	}

	result, err := s.store.GameResult(ctx, gameID)
	if err != nil {
		return result, err
	}
	if s.opts.Cache != nil {
		if err := s.opts.Cache.Set(ctx, services.GameCacheKey(gameID), result, s.opts.ResultTTL); err != nil {
			s.logger.WithError(err).WithField("game_id", gameID).Warn("Failed to cache game result")
		}
	}
	return result, nil
}

// SetPracticePlan stores a team's focus for the current week. It carries
// forward to later weeks until changed. Unknown focus keys are rejected.
func (s *Service) SetPracticePlan(ctx context.Context, teamID uint, plan fb.PracticePlan) (fb.PracticePlan, error) {
	plan = plan.Normalize()
	if !development.ValidFocus(fb.UnitOffense, plan.OffenseFocus) {
		return plan, fmt.Errorf("unknown offense focus %q: %w", plan.OffenseFocus, utils.ErrInvalidInput)
	}
	if !development.ValidFocus(fb.UnitDefense, plan.DefenseFocus) {
		return plan, fmt.Errorf("unknown defense focus %q: %w", plan.DefenseFocus, utils.ErrInvalidInput)
	}

	if _, err := s.store.GetTeam(ctx, teamID); err != nil {
		return plan, err
	}
	state, err := s.store.SeasonState(ctx)
	if err != nil {
		return plan, err
	}
	if err := s.store.SetPracticePlan(ctx, teamID, state.CurrentSeason, state.CurrentWeek, plan); err != nil {
		return plan, err
	}
	return plan, nil
}

// PracticePlan returns a team's focus for the current week.
func (s *Service) PracticePlan(ctx context.Context, teamID uint) (fb.PracticePlan, error) {
	state, err := s.store.SeasonState(ctx)
	if err != nil {
		return fb.PracticePlan{}, err
	}
	return s.store.PracticePlan(ctx, teamID, state.CurrentSeason, state.CurrentWeek)
}

// TeamRecord returns a team's record for the current season.
func (s *Service) TeamRecord(ctx context.Context, teamID uint) (store.Record, error) {
	team, err := s.store.GetTeam(ctx, teamID)
	if err != nil {
		return store.Record{}, err
	}
	state, err := s.store.SeasonState(ctx)
	if err != nil {
		return store.Record{}, err
	}
	rec, err := s.store.TeamRecord(ctx, teamID, state.CurrentSeason)
	if err != nil {
		return rec, err
	}
	rec.TeamName = team.Name
	return rec, nil
}

// Standings ranks a division for the current season.
func (s *Service) Standings(ctx context.Context, divisionID uint) ([]store.Record, error) {
	state, err := s.store.SeasonState(ctx)
	if err != nil {
		return nil, err
	}
	return s.store.DivisionStandings(ctx, divisionID, state.CurrentSeason)
}

// PositionFits projects a player's ratings at every position.
func (s *Service) PositionFits(ctx context.Context, playerID uint) ([]ratings.PositionFit, error) {
	row, err := s.store.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}
	return ratings.PositionFits(row.Snapshot()), nil
}

// SeasonState returns the league clock.
func (s *Service) SeasonState(ctx context.Context) (*models.SeasonState, error) {
	return s.store.SeasonState(ctx)
}

// Store exposes the underlying repository for read-only handlers.
func (s *Service) Store() *store.Store {
	return s.store
}
