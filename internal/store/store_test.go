package store

import (
	"context"
	"math/rand"
	"testing"

	"github.com/rhuselid/gmcareer/internal/development"
	fb "github.com/rhuselid/gmcareer/internal/football"
	"github.com/rhuselid/gmcareer/internal/generation"
	"github.com/rhuselid/gmcareer/internal/models"
	"github.com/rhuselid/gmcareer/internal/simulator"
	"github.com/rhuselid/gmcareer/pkg/database"
	"github.com/rhuselid/gmcareer/pkg/utils"
	"github.com/stretchr/testify/suite"
)

type StoreTestSuite struct {
	suite.Suite
	db    *database.DB
	store *Store
	ctx   context.Context

	division models.Division
	home     models.Team
	away     models.Team
}

func (s *StoreTestSuite) SetupTest() {
	db, err := database.NewConnection(":memory:", false)
	s.Require().NoError(err)
	s.db = db
	s.store = New(db.DB)
	s.ctx = context.Background()
	s.Require().NoError(s.store.Migrate())

	s.division = models.Division{Name: "Midwest", Level: fb.HighSchool}
	s.Require().NoError(s.store.CreateDivision(s.ctx, &s.division))
	s.home = models.Team{DivisionID: s.division.ID, Name: "Lincoln Eagles", FacilityGrade: 60}
	s.away = models.Team{DivisionID: s.division.ID, Name: "Salem Tigers", FacilityGrade: 40}
	s.Require().NoError(s.store.CreateTeam(s.ctx, &s.home))
	s.Require().NoError(s.store.CreateTeam(s.ctx, &s.away))
}

func (s *StoreTestSuite) TearDownTest() {
	s.Require().NoError(s.db.Close())
}

func (s *StoreTestSuite) seedRoster(teamID uint, value int) []*fb.Player {
	players := generation.UniformRoster(teamID, 0, value)
	s.Require().NoError(s.store.CreatePlayers(s.ctx, players))
	return players
}

func (s *StoreTestSuite) TestCreatePlayers_AssignsIDsAndRoundTrips() {
	players := s.seedRoster(s.home.ID, 55)
	for _, p := range players {
		s.NotZero(p.ID)
	}

	row, err := s.store.GetPlayer(s.ctx, players[0].ID)
	s.Require().NoError(err)
	snap := row.Snapshot()
	s.Equal(players[0].Traits, snap.Traits)
	s.Equal(players[0].Overall, snap.Overall)
	s.Equal(players[0].Position, snap.Position)
}

func (s *StoreTestSuite) TestGetTeam_NotFound() {
	_, err := s.store.GetTeam(s.ctx, 999)
	s.ErrorIs(err, utils.ErrNotFound)

	_, err = s.store.GetPlayer(s.ctx, 999)
	s.ErrorIs(err, utils.ErrNotFound)
}

func (s *StoreTestSuite) TestRosterByPosition_DepthChartThenOverall() {
	rng := rand.New(rand.NewSource(5))
	var wrs []*fb.Player
	for i := 0; i < 4; i++ {
		p := generation.GeneratePlayer(rng, fb.College, fb.WR)
		p.TeamID = s.home.ID
		p.Overall = 50 + i*10
		wrs = append(wrs, p)
	}
	s.Require().NoError(s.store.CreatePlayers(s.ctx, wrs))

	// chart only the two weakest, weakest first
	s.Require().NoError(s.store.SetDepthChart(s.ctx, s.home.ID, fb.WR, []uint{wrs[0].ID, wrs[1].ID}))

	roster, err := s.store.RosterByPosition(s.ctx, s.home.ID)
	s.Require().NoError(err)
	var order []uint
	for _, p := range roster[fb.WR] {
		order = append(order, p.ID)
	}
	s.Equal([]uint{wrs[0].ID, wrs[1].ID, wrs[3].ID, wrs[2].ID}, order)

	// replacing the chart drops old ranks
	s.Require().NoError(s.store.SetDepthChart(s.ctx, s.home.ID, fb.WR, []uint{wrs[2].ID}))
	roster, err = s.store.RosterByPosition(s.ctx, s.home.ID)
	s.Require().NoError(err)
	s.Equal(wrs[2].ID, roster.Starter(fb.WR).ID)
}

func (s *StoreTestSuite) TestSeasonState_CreatedAndAdvanced() {
	state, err := s.store.SeasonState(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, state.CurrentSeason)
	s.Equal(1, state.CurrentWeek)
	s.Equal(models.PhaseInSeason, state.Phase)

	state, err = s.store.AdvanceWeek(s.ctx, 2)
	s.Require().NoError(err)
	s.Equal(2, state.CurrentWeek)
	s.Equal(models.PhaseInSeason, state.Phase)

	state, err = s.store.AdvanceWeek(s.ctx, 2)
	s.Require().NoError(err)
	s.Equal(3, state.CurrentWeek)
	s.Equal(models.PhaseOffseason, state.Phase)

	state, err = s.store.StartSeason(s.ctx, 2)
	s.Require().NoError(err)
	s.Equal(2, state.CurrentSeason)
	s.Equal(1, state.CurrentWeek)
}

func (s *StoreTestSuite) TestPracticePlans() {
	plan, err := s.store.PracticePlan(s.ctx, s.home.ID, 1, 1)
	s.Require().NoError(err)
	s.Equal(fb.PracticePlan{OffenseFocus: "balanced", DefenseFocus: "balanced"}, plan)

	s.Require().NoError(s.store.SetPracticePlan(s.ctx, s.home.ID, 1, 1, fb.PracticePlan{OffenseFocus: "Pass_Game"}))
	s.Require().NoError(s.store.SetPracticePlan(s.ctx, s.home.ID, 1, 1, fb.PracticePlan{OffenseFocus: "run_game", DefenseFocus: "takeaways"}))
	plan, err = s.store.PracticePlan(s.ctx, s.home.ID, 1, 1)
	s.Require().NoError(err)
	s.Equal(fb.PracticePlan{OffenseFocus: "run_game", DefenseFocus: "takeaways"}, plan)

	s.Require().NoError(s.store.CopyPracticePlansToNextWeek(s.ctx, 1, 1))
	next, err := s.store.PracticePlan(s.ctx, s.home.ID, 1, 2)
	s.Require().NoError(err)
	s.Equal(plan, next)
}

func (s *StoreTestSuite) TestInsertGame_AndRecords() {
	home := s.seedRoster(s.home.ID, 70)
	away := s.seedRoster(s.away.ID, 40)
	entries := []models.ScheduleEntry{
		{Season: 1, Week: 1, DivisionID: s.division.ID, HomeTeamID: s.home.ID, AwayTeamID: s.away.ID},
	}
	s.Require().NoError(s.store.InsertSchedule(s.ctx, entries))

	result := simulator.SimulateGame(simulator.GameInput{
		HomeTeamID: s.home.ID,
		AwayTeamID: s.away.ID,
		Home:       fb.NewRoster(home),
		Away:       fb.NewRoster(away),
		Seed:       3,
	})
	game, err := s.store.InsertGame(s.ctx, GameMeta{Season: 1, Week: 1, RunID: "run-1", Seed: 3}, result)
	s.Require().NoError(err)
	s.Require().NoError(s.store.MarkPlayed(s.ctx, entries[0].ID, game.ID))

	week, err := s.store.WeekSchedule(s.ctx, 1, 1)
	s.Require().NoError(err)
	s.Require().Len(week, 1)
	s.True(week[0].Played())

	decoded, err := s.store.GameResult(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(result, decoded)

	rows, err := s.store.PlayerGameStats(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Len(rows, len(result.Home.PlayerStats)+len(result.Away.PlayerStats))

	homeRec, err := s.store.TeamRecord(s.ctx, s.home.ID, 1)
	s.Require().NoError(err)
	awayRec, err := s.store.TeamRecord(s.ctx, s.away.ID, 1)
	s.Require().NoError(err)
	s.Equal(1, homeRec.Wins+homeRec.Losses+homeRec.Ties)
	s.Equal(homeRec.Wins, awayRec.Losses)
	s.Equal(result.Home.Score, homeRec.PointsFor)
	s.Equal(result.Away.Score, homeRec.PointsAgainst)

	standings, err := s.store.DivisionStandings(s.ctx, s.division.ID, 1)
	s.Require().NoError(err)
	s.Require().Len(standings, 2)
	s.GreaterOrEqual(standings[0].Wins, standings[1].Wins)
}

func (s *StoreTestSuite) TestApplyDevelopment_InTransaction() {
	players := generation.UniformRoster(s.home.ID, 0, 30)
	for _, p := range players {
		p.SetTrait(fb.Speed, 30, 90)
	}
	s.Require().NoError(s.store.CreatePlayers(s.ctx, players))
	outcome := development.DevelopTeam(development.TeamInput{
		TeamID:              s.home.ID,
		Season:              1,
		Week:                1,
		FacilityGrade:       99,
		DevelopingPotential: 99,
		Plan:                fb.PracticePlan{OffenseFocus: "strength_conditioning"},
		Players:             players,
	})
	s.Require().NotEmpty(outcome.Updates)

	err := s.store.Transaction(s.ctx, func(tx *Store) error {
		return tx.ApplyDevelopment(s.ctx, outcome)
	})
	s.Require().NoError(err)

	first := outcome.Updates[0]
	row, err := s.store.GetPlayer(s.ctx, first.PlayerID)
	s.Require().NoError(err)
	snap := row.Snapshot()
	for _, c := range first.Changes {
		s.Equal(c.Current, snap.Value(c.Attr))
	}
	s.Equal(first.Overall, row.Overall)

	history, err := s.store.PlayerDevelopment(s.ctx, first.PlayerID, 0)
	s.Require().NoError(err)
	s.Len(history, len(first.Changes))
}

func (s *StoreTestSuite) TestTransaction_RollsBack() {
	err := s.store.Transaction(s.ctx, func(tx *Store) error {
		if err := tx.SetPracticePlan(s.ctx, s.home.ID, 1, 5, fb.PracticePlan{OffenseFocus: "red_zone"}); err != nil {
			return err
		}
		return utils.ErrConflict
	})
	s.ErrorIs(err, utils.ErrConflict)

	plan, err := s.store.PracticePlan(s.ctx, s.home.ID, 1, 5)
	s.Require().NoError(err)
	s.Equal("balanced", plan.OffenseFocus)
}

func (s *StoreTestSuite) TestManager() {
	_, err := s.store.GetManager(s.ctx)
	s.ErrorIs(err, utils.ErrNotFound)

	bad := models.Manager{Name: "Over", Scouting: 120}
	s.ErrorIs(s.store.CreateManager(s.ctx, &bad), utils.ErrInvalidInput)

	teamID := s.home.ID
	m := models.Manager{Name: "Pat", DevelopingPotential: 70, InGameManagement: 60, CurrentTeamID: &teamID}
	s.Require().NoError(s.store.CreateManager(s.ctx, &m))

	got, err := s.store.GetManager(s.ctx)
	s.Require().NoError(err)
	s.Equal(s.home.ID, got.TeamID())
	s.Equal(70, got.Skills().DevelopingPotential)
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}
