package models

import (
	"time"

	fb "github.com/rhuselid/gmcareer/internal/football"
)

// Season phases
const (
	PhaseInSeason  = "in_season"
	PhaseOffseason = "offseason"
)

type Division struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Level     fb.Level  `gorm:"not null;index" json:"level"`
	CreatedAt time.Time `json:"created_at"`

	Teams []Team `gorm:"foreignKey:DivisionID" json:"teams,omitempty"`
}

func (Division) TableName() string {
	return "divisions"
}

type Team struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	DivisionID    uint      `gorm:"not null;index" json:"division_id"`
	Name          string    `gorm:"not null" json:"name"`
	Prestige      int       `gorm:"not null;default:50" json:"prestige"`
	FacilityGrade int       `gorm:"not null;default:50" json:"facility_grade"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Team) TableName() string {
	return "teams"
}

// Manager is the general manager the career follows. CurrentTeamID is nil
// until a team is chosen.
type Manager struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	Name                string    `gorm:"not null" json:"name"`
	Scouting            int       `gorm:"not null" json:"scouting"`
	DevelopingPotential int       `gorm:"not null" json:"developing_potential"`
	UnlockingPotential  int       `gorm:"not null" json:"unlocking_potential"`
	ConvincingPlayers   int       `gorm:"not null" json:"convincing_players"`
	InGameManagement    int       `gorm:"not null" json:"in_game_management"`
	Prestige            int       `gorm:"not null;default:50" json:"prestige"`
	CurrentTeamID       *uint     `gorm:"index" json:"current_team_id,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}

func (Manager) TableName() string {
	return "managers"
}

// Skills returns the manager's skill scalars.
func (m *Manager) Skills() fb.Manager {
	return fb.Manager{
		ID:                  m.ID,
		Name:                m.Name,
		Scouting:            m.Scouting,
		DevelopingPotential: m.DevelopingPotential,
		UnlockingPotential:  m.UnlockingPotential,
		ConvincingPlayers:   m.ConvincingPlayers,
		InGameManagement:    m.InGameManagement,
		Prestige:            m.Prestige,
	}
}

// TeamID returns the managed team, or zero.
func (m *Manager) TeamID() uint {
	if m == nil || m.CurrentTeamID == nil {
		return 0
	}
	return *m.CurrentTeamID
}

// SeasonState is a single-row table holding the league clock.
type SeasonState struct {
	ID            uint      `gorm:"primaryKey" json:"-"`
	CurrentSeason int       `gorm:"not null;default:1" json:"current_season"`
	CurrentWeek   int       `gorm:"not null;default:1" json:"current_week"`
	Phase         string    `gorm:"not null;default:in_season" json:"phase"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (SeasonState) TableName() string {
	return "season_state"
}

// PracticePlanRecord stores one team's focus for one week.
type PracticePlanRecord struct {
	TeamID       uint   `gorm:"primaryKey" json:"team_id"`
	Season       int    `gorm:"primaryKey" json:"season"`
	Week         int    `gorm:"primaryKey" json:"week"`
	OffenseFocus string `gorm:"not null;default:balanced" json:"offense_focus"`
	DefenseFocus string `gorm:"not null;default:balanced" json:"defense_focus"`
}

func (PracticePlanRecord) TableName() string {
	return "practice_plans"
}

func (r PracticePlanRecord) Plan() fb.PracticePlan {
	return fb.PracticePlan{OffenseFocus: r.OffenseFocus, DefenseFocus: r.DefenseFocus}
}

// DevelopmentLogRecord is one applied attribute gain.
type DevelopmentLogRecord struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	PlayerID  uint         `gorm:"not null;index" json:"player_id"`
	Season    int          `gorm:"not null;index:idx_dev_season_week" json:"season"`
	Week      int          `gorm:"not null;index:idx_dev_season_week" json:"week"`
	Attribute fb.Attribute `gorm:"not null" json:"attribute"`
	Change    int          `gorm:"not null" json:"change"`
	CreatedAt time.Time    `json:"created_at"`
}

func (DevelopmentLogRecord) TableName() string {
	return "player_development_log"
}

// All lists every model in migration order.
func All() []interface{} {
	return []interface{}{
		&Division{},
		&Team{},
		&Manager{},
		&Player{},
		&DepthChartEntry{},
		&Game{},
		&PlayerGameStatRow{},
		&ScheduleEntry{},
		&SeasonState{},
		&PracticePlanRecord{},
		&DevelopmentLogRecord{},
	}
}
