package models

import (
	"time"

	fb "github.com/rhuselid/gmcareer/internal/football"
	"gorm.io/datatypes"
)

type Player struct {
	ID        uint                                          `gorm:"primaryKey" json:"id"`
	TeamID    uint                                          `gorm:"not null;index:idx_team_position" json:"team_id"`
	Name      string                                        `json:"name"`
	Position  fb.Position                                   `gorm:"not null;index:idx_team_position" json:"position"`
	ClassYear int                                           `json:"class_year"`
	Height    int                                           `gorm:"not null" json:"height"`
	Weight    int                                           `gorm:"not null" json:"weight"`
	ArmLength int                                           `gorm:"not null;default:32" json:"arm_length"`
	Traits    datatypes.JSONType[map[fb.Attribute]fb.Trait] `json:"traits"`
	Overall   int                                           `gorm:"not null;index" json:"overall"`
	Potential int                                           `gorm:"not null" json:"potential"`
	CreatedAt time.Time                                     `json:"created_at"`
	UpdatedAt time.Time                                     `json:"updated_at"`
}

func (Player) TableName() string {
	return "players"
}

// Snapshot converts the row into the simulation's player snapshot.
func (p *Player) Snapshot() *fb.Player {
	src := p.Traits.Data()
	traits := make(map[fb.Attribute]fb.Trait, len(src))
	for a, t := range src {
		traits[a] = t
	}
	return &fb.Player{
		ID:        p.ID,
		TeamID:    p.TeamID,
		Name:      p.Name,
		Position:  p.Position,
		ClassYear: p.ClassYear,
		Height:    p.Height,
		Weight:    p.Weight,
		ArmLength: p.ArmLength,
		Traits:    traits,
		Overall:   p.Overall,
		Potential: p.Potential,
	}
}

// PlayerFromSnapshot builds a row from a snapshot.
func PlayerFromSnapshot(s *fb.Player) Player {
	traits := make(map[fb.Attribute]fb.Trait, len(s.Traits))
	for a, t := range s.Traits {
		traits[a] = t
	}
	return Player{
		ID:        s.ID,
		TeamID:    s.TeamID,
		Name:      s.Name,
		Position:  s.Position,
		ClassYear: s.ClassYear,
		Height:    s.Height,
		Weight:    s.Weight,
		ArmLength: s.ArmLength,
		Traits:    datatypes.NewJSONType(traits),
		Overall:   s.Overall,
		Potential: s.Potential,
	}
}

// DepthChartEntry places a player at a rank within a team's position group.
// Rank 1 is the starter.
type DepthChartEntry struct {
	TeamID   uint        `gorm:"primaryKey;uniqueIndex:idx_depth_team_player" json:"team_id"`
	Position fb.Position `gorm:"primaryKey" json:"position"`
	Rank     int         `gorm:"primaryKey" json:"rank"`
	PlayerID uint        `gorm:"not null;uniqueIndex:idx_depth_team_player" json:"player_id"`
}

func (DepthChartEntry) TableName() string {
	return "depth_chart"
}
