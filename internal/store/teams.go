package store

import (
	"context"
	"errors"
	"fmt"
	"sort"

	fb "github.com/rhuselid/gmcareer/internal/football"
	"github.com/rhuselid/gmcareer/internal/models"
	"github.com/rhuselid/gmcareer/pkg/utils"
	"gorm.io/gorm"
)

func (s *Store) CreateDivision(ctx context.Context, d *models.Division) error {
	if err := s.conn(ctx).Create(d).Error; err != nil {
		return fmt.Errorf("failed to create division: %w", err)
	}
	return nil
}

func (s *Store) CreateTeam(ctx context.Context, t *models.Team) error {
	if err := s.conn(ctx).Create(t).Error; err != nil {
		return fmt.Errorf("failed to create team: %w", err)
	}
	return nil
}

func (s *Store) GetTeam(ctx context.Context, id uint) (*models.Team, error) {
	var team models.Team
	if err := s.conn(ctx).First(&team, id).Error; err != nil {
		return nil, notFound(err, "team", id)
	}
	return &team, nil
}

// ListTeams returns every team ordered by id.
func (s *Store) ListTeams(ctx context.Context) ([]models.Team, error) {
	var teams []models.Team
	if err := s.conn(ctx).Order("id").Find(&teams).Error; err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, nil
}

func (s *Store) ListDivisions(ctx context.Context) ([]models.Division, error) {
	var divisions []models.Division
	if err := s.conn(ctx).Order("id").Find(&divisions).Error; err != nil {
		return nil, fmt.Errorf("failed to list divisions: %w", err)
	}
	return divisions, nil
}

// TeamsInDivision returns a division's teams ordered by id.
func (s *Store) TeamsInDivision(ctx context.Context, divisionID uint) ([]models.Team, error) {
	var teams []models.Team
	if err := s.conn(ctx).Where("division_id = ?", divisionID).Order("id").Find(&teams).Error; err != nil {
		return nil, fmt.Errorf("failed to list division %d teams: %w", divisionID, err)
	}
	return teams, nil
}

// CreatePlayers inserts snapshots and writes the assigned ids back onto them.
func (s *Store) CreatePlayers(ctx context.Context, players []*fb.Player) error {
	if len(players) == 0 {
		return nil
	}
	rows := make([]models.Player, len(players))
	for i, p := range players {
		rows[i] = models.PlayerFromSnapshot(p)
	}
	if err := s.conn(ctx).CreateInBatches(rows, 100).Error; err != nil {
		return fmt.Errorf("failed to create players: %w", err)
	}
	for i := range rows {
		players[i].ID = rows[i].ID
	}
	return nil
}

func (s *Store) GetPlayer(ctx context.Context, id uint) (*models.Player, error) {
	var player models.Player
	if err := s.conn(ctx).First(&player, id).Error; err != nil {
		return nil, notFound(err, "player", id)
	}
	return &player, nil
}

// TeamRoster returns a team's players ordered by position then overall.
func (s *Store) TeamRoster(ctx context.Context, teamID uint) ([]models.Player, error) {
	var players []models.Player
	err := s.conn(ctx).
		Where("team_id = ?", teamID).
		Order("position").Order("overall DESC").Order("id").
		Find(&players).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load roster for team %d: %w", teamID, err)
	}
	return players, nil
}

// SetDepthChart replaces the depth order at one position. Rank 1 is the
// starter.
func (s *Store) SetDepthChart(ctx context.Context, teamID uint, pos fb.Position, playerIDs []uint) error {
	return s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("team_id = ? AND position = ?", teamID, pos).Delete(&models.DepthChartEntry{}).Error; err != nil {
			return fmt.Errorf("failed to clear depth chart: %w", err)
		}
		if len(playerIDs) == 0 {
			return nil
		}
		entries := make([]models.DepthChartEntry, len(playerIDs))
		for i, id := range playerIDs {
			entries[i] = models.DepthChartEntry{TeamID: teamID, Position: pos, Rank: i + 1, PlayerID: id}
		}
		if err := tx.Create(&entries).Error; err != nil {
			return fmt.Errorf("failed to write depth chart: %w", err)
		}
		return nil
	})
}

// RosterByPosition builds a team's depth chart for simulation. Players with a
// depth chart entry come first by rank; the rest follow by overall desc.
func (s *Store) RosterByPosition(ctx context.Context, teamID uint) (fb.Roster, error) {
	players, err := s.TeamRoster(ctx, teamID)
	if err != nil {
		return nil, err
	}

	var entries []models.DepthChartEntry
	if err := s.conn(ctx).Where("team_id = ?", teamID).Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to load depth chart for team %d: %w", teamID, err)
	}
	rank := make(map[uint]int, len(entries))
	for _, e := range entries {
		rank[e.PlayerID] = e.Rank
	}

	snapshots := make([]*fb.Player, len(players))
	for i := range players {
		snapshots[i] = players[i].Snapshot()
	}
	sort.SliceStable(snapshots, func(i, j int) bool {
		a, b := snapshots[i], snapshots[j]
		ra, aRanked := rank[a.ID]
		rb, bRanked := rank[b.ID]
		switch {
		case aRanked && bRanked:
			return ra < rb
		case aRanked != bRanked:
			return aRanked
		case a.Overall != b.Overall:
			return a.Overall > b.Overall
		default:
			return a.ID < b.ID
		}
	})
	return fb.NewRoster(snapshots), nil
}

func (s *Store) CreateManager(ctx context.Context, m *models.Manager) error {
	if err := m.Skills().Validate(); err != nil {
		return fmt.Errorf("%v: %w", err, utils.ErrInvalidInput)
	}
	if err := s.conn(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("failed to create manager: %w", err)
	}
	return nil
}

// GetManager returns the career's manager, the most recently created one.
func (s *Store) GetManager(ctx context.Context) (*models.Manager, error) {
	var m models.Manager
	err := s.conn(ctx).Order("id DESC").First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("manager: %w", utils.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load manager: %w", err)
	}
	return &m, nil
}
