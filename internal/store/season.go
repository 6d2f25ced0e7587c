package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/rhuselid/gmcareer/internal/development"
	fb "github.com/rhuselid/gmcareer/internal/football"
	"github.com/rhuselid/gmcareer/internal/models"
	"github.com/rhuselid/gmcareer/internal/simulator"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const seasonStateID = 1

// SeasonState returns the league clock, creating it at season 1 week 1 on
// first use.
func (s *Store) SeasonState(ctx context.Context) (*models.SeasonState, error) {
	state := models.SeasonState{ID: seasonStateID}
	err := s.conn(ctx).
		Attrs(models.SeasonState{CurrentSeason: 1, CurrentWeek: 1, Phase: models.PhaseInSeason}).
		FirstOrCreate(&state).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load season state: %w", err)
	}
	return &state, nil
}

// AdvanceWeek moves the clock past the current week. Finishing the last week
// of the season moves the league into the offseason.
func (s *Store) AdvanceWeek(ctx context.Context, totalWeeks int) (*models.SeasonState, error) {
	state, err := s.SeasonState(ctx)
	if err != nil {
		return nil, err
	}
	state.CurrentWeek++
	if state.CurrentWeek > totalWeeks {
		state.Phase = models.PhaseOffseason
	}
	if err := s.conn(ctx).Save(state).Error; err != nil {
		return nil, fmt.Errorf("failed to advance week: %w", err)
	}
	return state, nil
}

// StartSeason resets the clock to week 1 of season.
func (s *Store) StartSeason(ctx context.Context, season int) (*models.SeasonState, error) {
	state := &models.SeasonState{ID: seasonStateID, CurrentSeason: season, CurrentWeek: 1, Phase: models.PhaseInSeason}
	if err := s.conn(ctx).Save(state).Error; err != nil {
		return nil, fmt.Errorf("failed to start season %d: %w", season, err)
	}
	return state, nil
}

func (s *Store) InsertSchedule(ctx context.Context, entries []models.ScheduleEntry) error {
	if len(entries) == 0 {
		return nil
	}
	if err := s.conn(ctx).CreateInBatches(entries, 200).Error; err != nil {
		return fmt.Errorf("failed to insert schedule: %w", err)
	}
	return nil
}

// WeekSchedule returns every matchup of one week across all divisions.
func (s *Store) WeekSchedule(ctx context.Context, season, week int) ([]models.ScheduleEntry, error) {
	var entries []models.ScheduleEntry
	err := s.conn(ctx).
		Where("season = ? AND week = ?", season, week).
		Order("division_id").Order("id").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load week %d schedule: %w", week, err)
	}
	return entries, nil
}

// TeamSchedule returns a team's matchups for a season in week order.
func (s *Store) TeamSchedule(ctx context.Context, teamID uint, season int) ([]models.ScheduleEntry, error) {
	var entries []models.ScheduleEntry
	err := s.conn(ctx).
		Where("season = ? AND (home_team_id = ? OR away_team_id = ?)", season, teamID, teamID).
		Order("week").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule for team %d: %w", teamID, err)
	}
	return entries, nil
}

// GameMeta identifies where a persisted game came from.
type GameMeta struct {
	Season int
	Week   int
	RunID  string
	Seed   int64
}

// InsertGame stores a finished game with its box score and one row per
// player line.
func (s *Store) InsertGame(ctx context.Context, meta GameMeta, result simulator.GameResult) (*models.Game, error) {
	box, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to encode box score: %w", err)
	}

	game := models.Game{
		Season:         meta.Season,
		Week:           meta.Week,
		RunID:          meta.RunID,
		Seed:           meta.Seed,
		HomeTeamID:     result.Home.TeamID,
		AwayTeamID:     result.Away.TeamID,
		HomeScore:      result.Home.Score,
		AwayScore:      result.Away.Score,
		HomeTotalYards: result.Home.TotalYards,
		HomeRushYards:  result.Home.RushYards,
		HomePassYards:  result.Home.PassYards,
		HomeTurnovers:  result.Home.Turnovers,
		AwayTotalYards: result.Away.TotalYards,
		AwayRushYards:  result.Away.RushYards,
		AwayPassYards:  result.Away.PassYards,
		AwayTurnovers:  result.Away.Turnovers,
		BoxScore:       datatypes.JSON(box),
	}

	err = s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&game).Error; err != nil {
			return fmt.Errorf("failed to insert game: %w", err)
		}
		var rows []models.PlayerGameStatRow
		for _, side := range []simulator.TeamGameResult{result.Home, result.Away} {
			for _, line := range side.PlayerStats {
				rows = append(rows, models.PlayerGameStatRow{GameID: game.ID, PlayerGameStats: line})
			}
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(rows, 100).Error; err != nil {
			return fmt.Errorf("failed to insert player stats: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &game, nil
}

// MarkPlayed links a schedule entry to its game.
func (s *Store) MarkPlayed(ctx context.Context, scheduleID, gameID uint) error {
	err := s.conn(ctx).Model(&models.ScheduleEntry{}).Where("id = ?", scheduleID).Update("game_id", gameID).Error
	if err != nil {
		return fmt.Errorf("failed to mark schedule %d played: %w", scheduleID, err)
	}
	return nil
}

func (s *Store) GetGame(ctx context.Context, id uint) (*models.Game, error) {
	var game models.Game
	if err := s.conn(ctx).First(&game, id).Error; err != nil {
		return nil, notFound(err, "game", id)
	}
	return &game, nil
}

// GameResult decodes a stored game's box score.
func (s *Store) GameResult(ctx context.Context, id uint) (simulator.GameResult, error) {
	var result simulator.GameResult
	game, err := s.GetGame(ctx, id)
	if err != nil {
		return result, err
	}
	if err := json.Unmarshal(game.BoxScore, &result); err != nil {
		return result, fmt.Errorf("failed to decode box score for game %d: %w", id, err)
	}
	return result, nil
}

func (s *Store) PlayerGameStats(ctx context.Context, gameID uint) ([]models.PlayerGameStatRow, error) {
	var rows []models.PlayerGameStatRow
	if err := s.conn(ctx).Where("game_id = ?", gameID).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load stats for game %d: %w", gameID, err)
	}
	return rows, nil
}

// PracticePlan returns a team's plan for a week, balanced when none is set.
func (s *Store) PracticePlan(ctx context.Context, teamID uint, season, week int) (fb.PracticePlan, error) {
	var rec models.PracticePlanRecord
	err := s.conn(ctx).Where("team_id = ? AND season = ? AND week = ?", teamID, season, week).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fb.PracticePlan{}.Normalize(), nil
	}
	if err != nil {
		return fb.PracticePlan{}, fmt.Errorf("failed to load practice plan for team %d: %w", teamID, err)
	}
	return rec.Plan().Normalize(), nil
}

// SetPracticePlan upserts a team's plan for a week.
func (s *Store) SetPracticePlan(ctx context.Context, teamID uint, season, week int, plan fb.PracticePlan) error {
	plan = plan.Normalize()
	rec := models.PracticePlanRecord{
		TeamID:       teamID,
		Season:       season,
		Week:         week,
		OffenseFocus: plan.OffenseFocus,
		DefenseFocus: plan.DefenseFocus,
	}
	err := s.conn(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "team_id"}, {Name: "season"}, {Name: "week"}},
		DoUpdates: clause.AssignmentColumns([]string{"offense_focus", "defense_focus"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("failed to save practice plan for team %d: %w", teamID, err)
	}
	return nil
}

// CopyPracticePlansToNextWeek carries every plan of week into week+1 so a
// selection persists until changed.
func (s *Store) CopyPracticePlansToNextWeek(ctx context.Context, season, week int) error {
	var recs []models.PracticePlanRecord
	if err := s.conn(ctx).Where("season = ? AND week = ?", season, week).Find(&recs).Error; err != nil {
		return fmt.Errorf("failed to load week %d practice plans: %w", week, err)
	}
	for _, rec := range recs {
		if err := s.SetPracticePlan(ctx, rec.TeamID, season, week+1, rec.Plan()); err != nil {
			return err
		}
	}
	return nil
}

// ApplyDevelopment writes one team's development outcome: new attribute
// values, refreshed ratings and the log. Call it inside a transaction.
func (s *Store) ApplyDevelopment(ctx context.Context, outcome development.TeamOutcome) error {
	for _, update := range outcome.Updates {
		row, err := s.GetPlayer(ctx, update.PlayerID)
		if err != nil {
			return err
		}
		snap := update.Apply(row.Snapshot())
		err = s.conn(ctx).Model(&models.Player{}).Where("id = ?", update.PlayerID).Updates(map[string]interface{}{
			"traits":    datatypes.NewJSONType(snap.Traits),
			"overall":   snap.Overall,
			"potential": snap.Potential,
		}).Error
		if err != nil {
			return fmt.Errorf("failed to update player %d: %w", update.PlayerID, err)
		}
	}

	if len(outcome.Log) == 0 {
		return nil
	}
	logs := make([]models.DevelopmentLogRecord, len(outcome.Log))
	for i, e := range outcome.Log {
		logs[i] = models.DevelopmentLogRecord{
			PlayerID:  e.PlayerID,
			Season:    e.Season,
			Week:      e.Week,
			Attribute: e.Attribute,
			Change:    e.Delta,
		}
	}
	if err := s.conn(ctx).CreateInBatches(logs, 200).Error; err != nil {
		return fmt.Errorf("failed to write development log for team %d: %w", outcome.TeamID, err)
	}
	return nil
}

// PlayerDevelopment returns a player's most recent gains, newest first.
func (s *Store) PlayerDevelopment(ctx context.Context, playerID uint, limit int) ([]models.DevelopmentLogRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	var logs []models.DevelopmentLogRecord
	err := s.conn(ctx).
		Where("player_id = ?", playerID).
		Order("season DESC").Order("week DESC").Order("id").
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load development for player %d: %w", playerID, err)
	}
	return logs, nil
}

// Record is a team's win-loss-tie line with points for and against.
type Record struct {
	TeamID        uint   `json:"team_id"`
	TeamName      string `json:"team_name,omitempty"`
	Wins          int    `json:"wins"`
	Losses        int    `json:"losses"`
	Ties          int    `json:"ties"`
	PointsFor     int    `json:"points_for"`
	PointsAgainst int    `json:"points_against"`
}

// PointDiff is points for minus points against.
func (r Record) PointDiff() int {
	return r.PointsFor - r.PointsAgainst
}

func (r *Record) add(own, opp int) {
	r.PointsFor += own
	r.PointsAgainst += opp
	switch {
	case own > opp:
		r.Wins++
	case own < opp:
		r.Losses++
	default:
		r.Ties++
	}
}

// TeamRecord tallies a team's games in a season.
func (s *Store) TeamRecord(ctx context.Context, teamID uint, season int) (Record, error) {
	rec := Record{TeamID: teamID}
	var games []models.Game
	err := s.conn(ctx).
		Where("season = ? AND (home_team_id = ? OR away_team_id = ?)", season, teamID, teamID).
		Find(&games).Error
	if err != nil {
		return rec, fmt.Errorf("failed to load games for team %d: %w", teamID, err)
	}
	for _, g := range games {
		if g.HomeTeamID == teamID {
			rec.add(g.HomeScore, g.AwayScore)
		} else {
			rec.add(g.AwayScore, g.HomeScore)
		}
	}
	return rec, nil
}

// DivisionStandings ranks a division's teams by wins, then point
// differential, then name.
func (s *Store) DivisionStandings(ctx context.Context, divisionID uint, season int) ([]Record, error) {
	teams, err := s.TeamsInDivision(ctx, divisionID)
	if err != nil {
		return nil, err
	}
	standings := make([]Record, 0, len(teams))
	for _, t := range teams {
		rec, err := s.TeamRecord(ctx, t.ID, season)
		if err != nil {
			return nil, err
		}
		rec.TeamName = t.Name
		standings = append(standings, rec)
	}
	sort.SliceStable(standings, func(i, j int) bool {
		a, b := standings[i], standings[j]
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		if a.PointDiff() != b.PointDiff() {
			return a.PointDiff() > b.PointDiff()
		}
		return a.TeamName < b.TeamName
	})
	return standings, nil
}
