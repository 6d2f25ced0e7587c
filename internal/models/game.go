package models

import (
	"time"

	"github.com/rhuselid/gmcareer/internal/simulator"
	"gorm.io/datatypes"
)

type Game struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Season     int    `gorm:"not null;index:idx_game_season_week" json:"season"`
	Week       int    `gorm:"not null;index:idx_game_season_week" json:"week"`
	RunID      string `gorm:"index" json:"run_id"` // simulation run that produced the game
	Seed       int64  `json:"seed"`
	HomeTeamID uint   `gorm:"not null;index" json:"home_team_id"`
	AwayTeamID uint   `gorm:"not null;index" json:"away_team_id"`
	HomeScore  int    `gorm:"not null" json:"home_score"`
	AwayScore  int    `gorm:"not null" json:"away_score"`

	HomeTotalYards int `gorm:"not null;default:0" json:"home_total_yards"`
	HomeRushYards  int `gorm:"not null;default:0" json:"home_rush_yards"`
	HomePassYards  int `gorm:"not null;default:0" json:"home_pass_yards"`
	HomeTurnovers  int `gorm:"not null;default:0" json:"home_turnovers"`
	AwayTotalYards int `gorm:"not null;default:0" json:"away_total_yards"`
	AwayRushYards  int `gorm:"not null;default:0" json:"away_rush_yards"`
	AwayPassYards  int `gorm:"not null;default:0" json:"away_pass_yards"`
	AwayTurnovers  int `gorm:"not null;default:0" json:"away_turnovers"`

	BoxScore  datatypes.JSON `json:"box_score"`
	CreatedAt time.Time      `json:"created_at"`
}

func (Game) TableName() string {
	return "games"
}

// PlayerGameStatRow is one player's persisted line for one game.
type PlayerGameStatRow struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	GameID uint `gorm:"not null;index" json:"game_id"`

	simulator.PlayerGameStats `gorm:"embedded"`
}

func (PlayerGameStatRow) TableName() string {
	return "player_game_stats"
}

// ScheduleEntry is one scheduled matchup. GameID is set once played.
type ScheduleEntry struct {
	ID         uint  `gorm:"primaryKey" json:"id"`
	Season     int   `gorm:"not null;index:idx_schedule_season_week" json:"season"`
	Week       int   `gorm:"not null;index:idx_schedule_season_week" json:"week"`
	DivisionID uint  `gorm:"not null;index" json:"division_id"`
	HomeTeamID uint  `gorm:"not null" json:"home_team_id"`
	AwayTeamID uint  `gorm:"not null" json:"away_team_id"`
	GameID     *uint `json:"game_id,omitempty"`
}

func (ScheduleEntry) TableName() string {
	return "schedule"
}

// Played reports whether the matchup already has a game.
func (e ScheduleEntry) Played() bool {
	return e.GameID != nil
}
