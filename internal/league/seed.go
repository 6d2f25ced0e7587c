package league

import (
	"context"
	"fmt"
	"math/rand"
	"sort"

	fb "github.com/rhuselid/gmcareer/internal/football"
	"github.com/rhuselid/gmcareer/internal/generation"
	"github.com/rhuselid/gmcareer/internal/models"
	"github.com/rhuselid/gmcareer/internal/schedule"
	"github.com/rhuselid/gmcareer/internal/store"
)

// SeedOptions controls the shape of a new league.
type SeedOptions struct {
	Levels            []fb.Level
	DivisionsPerLevel int // zero creates every division of the level
	TeamsPerDivision  int
	Season           int
	// Manager, when set, is created and placed on the first team seeded.
	Manager *models.Manager
}

// SeedSummary counts what SeedLeague created.
type SeedSummary struct {
	Divisions int `json:"divisions"`
	Teams     int `json:"teams"`
	Players   int `json:"players"`
	Games     int `json:"games"`
	Weeks     int `json:"weeks"`
}

// SeedLeague creates divisions, teams, generated rosters with depth charts,
// a double round-robin schedule per division and the season clock, in one
// transaction.
func SeedLeague(ctx context.Context, st *store.Store, rng *rand.Rand, opts SeedOptions) (*SeedSummary, error) {
	if len(opts.Levels) == 0 {
		opts.Levels = []fb.Level{fb.HighSchool}
	}
	if opts.TeamsPerDivision <= 1 {
		opts.TeamsPerDivision = 10
	}
	if opts.Season <= 0 {
		opts.Season = 1
	}

	summary := &SeedSummary{}
	err := st.Transaction(ctx, func(tx *store.Store) error {
		var firstTeam uint
		for _, level := range opts.Levels {
			names := level.DivisionNames()
			if opts.DivisionsPerLevel > 0 && opts.DivisionsPerLevel < len(names) {
				names = names[:opts.DivisionsPerLevel]
			}
			for _, name := range names {
				div := &models.Division{Name: name, Level: level}
				if err := tx.CreateDivision(ctx, div); err != nil {
					return err
				}
				summary.Divisions++

				teamIDs := make([]uint, 0, opts.TeamsPerDivision)
				for _, teamName := range generation.TeamNames(rng, opts.TeamsPerDivision) {
					team := &models.Team{
						DivisionID:    div.ID,
						Name:          teamName,
						Prestige:      30 + rng.Intn(50),
						FacilityGrade: 30 + rng.Intn(50),
					}
					if err := tx.CreateTeam(ctx, team); err != nil {
						return err
					}
					if firstTeam == 0 {
						firstTeam = team.ID
					}
					teamIDs = append(teamIDs, team.ID)

					players := generation.GenerateRoster(rng, team.ID, level, 0)
					if err := tx.CreatePlayers(ctx, players); err != nil {
						return err
					}
					if err := setDepthCharts(ctx, tx, team.ID, players); err != nil {
						return err
					}
					summary.Teams++
					summary.Players += len(players)
				}

				matchups := schedule.DivisionSchedule(teamIDs, rng)
				entries := make([]models.ScheduleEntry, len(matchups))
				for i, m := range matchups {
					entries[i] = models.ScheduleEntry{
						Season:     opts.Season,
						Week:       m.Week,
						DivisionID: div.ID,
						HomeTeamID: m.Home,
						AwayTeamID: m.Away,
					}
				}
				if err := tx.InsertSchedule(ctx, entries); err != nil {
					return err
				}
				summary.Games += len(entries)
				summary.Weeks = max(summary.Weeks, schedule.Weeks(len(teamIDs)))
			}
		}

		if opts.Manager != nil {
			if firstTeam != 0 {
				opts.Manager.CurrentTeamID = &firstTeam
			}
			if err := tx.CreateManager(ctx, opts.Manager); err != nil {
				return err
			}
		}

		if _, err := tx.StartSeason(ctx, opts.Season); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to seed league: %w", err)
	}
	return summary, nil
}

// setDepthCharts orders each position group by overall, best first.
func setDepthCharts(ctx context.Context, tx *store.Store, teamID uint, players []*fb.Player) error {
	byPos := map[fb.Position][]*fb.Player{}
	for _, p := range players {
		byPos[p.Position] = append(byPos[p.Position], p)
	}
	for _, pos := range fb.AllPositions {
		group := byPos[pos]
		if len(group) == 0 {
			continue
		}
		sort.SliceStable(group, func(i, j int) bool { return group[i].Overall > group[j].Overall })
		ids := make([]uint, len(group))
		for i, p := range group {
			ids[i] = p.ID
		}
		if err := tx.SetDepthChart(ctx, teamID, pos, ids); err != nil {
			return err
		}
	}
	return nil
}
