// Package league runs the career's season: simulating scheduled weeks,
// developing players and advancing the league clock.
package league

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rhuselid/gmcareer/internal/development"
	fb "github.com/rhuselid/gmcareer/internal/football"
	"github.com/rhuselid/gmcareer/internal/models"
	"github.com/rhuselid/gmcareer/internal/services"
	"github.com/rhuselid/gmcareer/internal/simulator"
	"github.com/rhuselid/gmcareer/internal/store"
	"github.com/rhuselid/gmcareer/pkg/utils"
	"github.com/sirupsen/logrus"
)

// defaultDevelopingPotential is used for teams the manager does not run.
const defaultDevelopingPotential = 50

// Event types sent to subscribers and the result stream.
const (
	EventGameCompleted = "game_completed"
	EventWeekCompleted = "week_completed"
)

// Cache stores finished results for fast reads.
type Cache interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string, dest interface{}) error
}

// Publisher appends events to an external stream.
type Publisher interface {
	Publish(ctx context.Context, eventType string, payload interface{}) (string, error)
}

// Broadcaster pushes messages to live subscribers.
type Broadcaster interface {
	BroadcastToAll(message interface{})
	BroadcastToTeam(teamID uint, message interface{})
}

// Options configures a Service. Cache, Publisher and Broadcaster are
// optional.
type Options struct {
	Tuning             simulator.Tuning
	TotalWeeks         int
	DevelopmentWorkers int
	Seed               int64 // zero seeds from the clock
	ResultTTL          time.Duration

	Cache       Cache
	Publisher   Publisher
	Broadcaster Broadcaster
}

type Service struct {
	store  *store.Store
	opts   Options
	logger logrus.FieldLogger

	// simMu serializes week simulation.
	simMu sync.Mutex

	rngMu sync.Mutex
	rng   *rand.Rand
}

func NewService(st *store.Store, opts Options, logger logrus.FieldLogger) *Service {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if opts.TotalWeeks <= 0 {
		opts.TotalWeeks = 18
	}
	if opts.ResultTTL <= 0 {
		opts.ResultTTL = 24 * time.Hour
	}
	return &Service{
		store:  st,
		opts:   opts,
		logger: logger.WithField("service", "league"),
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// GameSummary is the headline of one finished game.
type GameSummary struct {
	GameID       uint   `json:"game_id"`
	DivisionID   uint   `json:"division_id,omitempty"`
	HomeTeamID   uint   `json:"home_team_id"`
	HomeTeamName string `json:"home_team_name"`
	HomeScore    int    `json:"home_score"`
	AwayTeamID   uint   `json:"away_team_id"`
	AwayTeamName string `json:"away_team_name"`
	AwayScore    int    `json:"away_score"`
	Seed         int64  `json:"seed"`
}

// TeamDevelopment condenses one team's week of practice.
type TeamDevelopment struct {
	TeamID          uint `json:"team_id"`
	PlayersImproved int  `json:"players_improved"`
	TotalGain       int  `json:"total_gain"`
}

// WeekReport describes one simulated week.
type WeekReport struct {
	RunID       string            `json:"run_id"`
	Season      int               `json:"season"`
	Week        int               `json:"week"`
	Games       []GameSummary     `json:"games"`
	Development []TeamDevelopment `json:"development"`
	NextWeek    int               `json:"next_week"`
	Phase       string            `json:"phase"`
}

// Message is the envelope sent to live subscribers.
type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// GameEvent is the payload published for each finished game.
type GameEvent struct {
	RunID  string               `json:"run_id"`
	Season int                  `json:"season"`
	Week   int                  `json:"week"`
	GameID uint                 `json:"game_id"`
	Seed   int64                `json:"seed"`
	Result simulator.GameResult `json:"result"`
}

type playedGame struct {
	summary GameSummary
	result  simulator.GameResult
}

// SimulateWeek plays every unplayed game of the current week, develops every
// team under its practice plan and advances the clock, all in one
// transaction. It fails with ErrWeekInProgress when another simulation is
// running and ErrSeasonComplete once the regular season is over.
func (s *Service) SimulateWeek(ctx context.Context) (*WeekReport, error) {
	if !s.simMu.TryLock() {
		return nil, utils.ErrWeekInProgress
	}
	defer s.simMu.Unlock()

	return s.simulateWeek(ctx)
}

// SimulateRemaining simulates week after week until the season is over.
func (s *Service) SimulateRemaining(ctx context.Context) ([]*WeekReport, error) {
	if !s.simMu.TryLock() {
		return nil, utils.ErrWeekInProgress
	}
	defer s.simMu.Unlock()

	var reports []*WeekReport
	for {
		if err := ctx.Err(); err != nil {
			return reports, err
		}
		report, err := s.simulateWeek(ctx)
		if errors.Is(err, utils.ErrSeasonComplete) && len(reports) > 0 {
			return reports, nil
		}
		if err != nil {
			return reports, err
		}
		reports = append(reports, report)
	}
}

func (s *Service) simulateWeek(ctx context.Context) (*WeekReport, error) {
	report := &WeekReport{RunID: uuid.NewString()}
	var played []playedGame

	err := s.store.Transaction(ctx, func(tx *store.Store) error {
		state, err := tx.SeasonState(ctx)
		if err != nil {
			return err
		}
		if state.Phase == models.PhaseOffseason || state.CurrentWeek > s.opts.TotalWeeks {
			return fmt.Errorf("season %d: %w", state.CurrentSeason, utils.ErrSeasonComplete)
		}
		report.Season, report.Week = state.CurrentSeason, state.CurrentWeek
		log := s.logger.WithFields(logrus.Fields{"season": report.Season, "week": report.Week, "run_id": report.RunID})

		manager, err := tx.GetManager(ctx)
		if err != nil && !errors.Is(err, utils.ErrNotFound) {
			return err
		}

		played, err = s.playWeek(ctx, tx, report, manager)
		if err != nil {
			return err
		}

		report.Development, err = s.developTeams(ctx, tx, report.Season, report.Week, manager)
		if err != nil {
			return err
		}

		if err := tx.CopyPracticePlansToNextWeek(ctx, report.Season, report.Week); err != nil {
			return err
		}
		next, err := tx.AdvanceWeek(ctx, s.opts.TotalWeeks)
		if err != nil {
			return err
		}
		report.NextWeek, report.Phase = next.CurrentWeek, next.Phase

		log.WithField("games", len(played)).Info("Week simulated")
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, g := range played {
		report.Games = append(report.Games, g.summary)
	}
	s.announce(ctx, report, played)
	return report, nil
}

// playWeek simulates and stores every unplayed matchup of the week.
func (s *Service) playWeek(ctx context.Context, tx *store.Store, report *WeekReport, manager *models.Manager) ([]playedGame, error) {
	entries, err := tx.WeekSchedule(ctx, report.Season, report.Week)
	if err != nil {
		return nil, err
	}

	teams := map[uint]*models.Team{}
	rosters := map[uint]fb.Roster{}
	load := func(id uint) (*models.Team, fb.Roster, error) {
		if t, ok := teams[id]; ok {
			return t, rosters[id], nil
		}
		t, err := tx.GetTeam(ctx, id)
		if err != nil {
			return nil, nil, err
		}
		r, err := tx.RosterByPosition(ctx, id)
		if err != nil {
			return nil, nil, err
		}
		teams[id], rosters[id] = t, r
		return t, r, nil
	}

	var inGame int
	if manager != nil {
		inGame = manager.InGameManagement
	}

	var played []playedGame
	for _, entry := range entries {
		if entry.Played() {
			continue
		}
		home, homeRoster, err := load(entry.HomeTeamID)
		if err != nil {
			return nil, err
		}
		away, awayRoster, err := load(entry.AwayTeamID)
		if err != nil {
			return nil, err
		}

		seed := s.nextSeed()
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

		game, err := tx.InsertGame(ctx, store.GameMeta{
			Season: report.Season,
			Week:   report.Week,
			RunID:  report.RunID,
			Seed:   seed,
		}, result)
		if err != nil {
			return nil, err
		}
		if err := tx.MarkPlayed(ctx, entry.ID, game.ID); err != nil {
			return nil, err
		}

		played = append(played, playedGame{
			summary: GameSummary{
				GameID:       game.ID,
				DivisionID:   entry.DivisionID,
				HomeTeamID:   home.ID,
				HomeTeamName: home.Name,
				HomeScore:    result.Home.Score,
				AwayTeamID:   away.ID,
				AwayTeamName: away.Name,
				AwayScore:    result.Away.Score,
				Seed:         seed,
			},
			result: result,
		})
	}
	return played, nil
}

// developTeams runs a week of practice for every team and writes the gains.
func (s *Service) developTeams(ctx context.Context, tx *store.Store, season, week int, manager *models.Manager) ([]TeamDevelopment, error) {
	teams, err := tx.ListTeams(ctx)
	if err != nil {
		return nil, err
	}

	inputs := make([]development.TeamInput, 0, len(teams))
	for _, t := range teams {
		plan, err := tx.PracticePlan(ctx, t.ID, season, week)
		if err != nil {
			return nil, err
		}
		rows, err := tx.TeamRoster(ctx, t.ID)
		if err != nil {
			return nil, err
		}
		players := make([]*fb.Player, len(rows))
		for i := range rows {
			players[i] = rows[i].Snapshot()
		}

		potential := defaultDevelopingPotential
		if manager != nil && manager.TeamID() == t.ID {
			potential = manager.DevelopingPotential
		}
		inputs = append(inputs, development.TeamInput{
			TeamID:              t.ID,
			Season:              season,
			Week:                week,
			FacilityGrade:       t.FacilityGrade,
			DevelopingPotential: potential,
			Plan:                plan,
			Players:             players,
		})
	}

	outcomes, err := development.DevelopLeague(ctx, inputs, s.opts.DevelopmentWorkers)
	if err != nil {
		return nil, fmt.Errorf("failed to develop players: %w", err)
	}

	summaries := make([]TeamDevelopment, 0, len(outcomes))
	for _, outcome := range outcomes {
		if err := tx.ApplyDevelopment(ctx, outcome); err != nil {
			return nil, err
		}
		td := TeamDevelopment{TeamID: outcome.TeamID, PlayersImproved: len(outcome.Summaries)}
		for _, sum := range outcome.Summaries {
			td.TotalGain += sum.TotalGain
		}
		summaries = append(summaries, td)
	}
	return summaries, nil
}

// announce caches, publishes and broadcasts a committed week. Failures are
// logged; the week itself already stands.
func (s *Service) announce(ctx context.Context, report *WeekReport, played []playedGame) {
	log := s.logger.WithFields(logrus.Fields{"season": report.Season, "week": report.Week, "run_id": report.RunID})

	for _, g := range played {
		if s.opts.Cache != nil {
			if err := s.opts.Cache.Set(ctx, services.GameCacheKey(g.summary.GameID), g.result, s.opts.ResultTTL); err != nil {
				log.WithError(err).WithField("game_id", g.summary.GameID).Warn("Failed to cache game result")
			}
		}
		if s.opts.Publisher != nil {
			_, err := s.opts.Publisher.Publish(ctx, EventGameCompleted, GameEvent{
				RunID:  report.RunID,
				Season: report.Season,
				Week:   report.Week,
				GameID: g.summary.GameID,
				Seed:   g.summary.Seed,
				Result: g.result,
			})
			if err != nil {
				log.WithError(err).WithField("game_id", g.summary.GameID).Warn("Failed to publish game result")
			}
		}
		if s.opts.Broadcaster != nil {
			msg := Message{Type: EventGameCompleted, Data: g.summary}
			s.opts.Broadcaster.BroadcastToTeam(g.summary.HomeTeamID, msg)
			s.opts.Broadcaster.BroadcastToTeam(g.summary.AwayTeamID, msg)
		}
	}

	if s.opts.Cache != nil {
		if err := s.opts.Cache.Set(ctx, services.WeekCacheKey(report.Season, report.Week), report, s.opts.ResultTTL); err != nil {
			log.WithError(err).Warn("Failed to cache week report")
		}
	}
	if s.opts.Publisher != nil {
		if _, err := s.opts.Publisher.Publish(ctx, EventWeekCompleted, report); err != nil {
			log.WithError(err).Warn("Failed to publish week report")
		}
	}
	if s.opts.Broadcaster != nil {
		s.opts.Broadcaster.BroadcastToAll(Message{Type: EventWeekCompleted, Data: report})
	}
}

func (s *Service) nextSeed() int64 {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return s.rng.Int63()
}
