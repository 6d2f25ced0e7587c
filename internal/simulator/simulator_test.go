package simulator

import (
	"encoding/json"
	"math/rand"
	"testing"

	fb "github.com/rhuselid/gmcareer/internal/football"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uniformRoster(teamID, firstID uint, value int) fb.Roster {
	var players []*fb.Player
	id := firstID
	for _, slot := range fb.HighSchool.RosterSlots() {
		for i := 0; i < slot.Count; i++ {
			p := &fb.Player{ID: id, TeamID: teamID, Position: slot.Position, Height: 74, Weight: 220, ArmLength: 32}
			for _, a := range fb.TrainableAttributes {
				p.SetTrait(a, value, value)
			}
			players = append(players, p)
			id++
		}
	}
	return fb.NewRoster(players)
}

func identicalGame(seed int64) GameInput {
	return GameInput{
		HomeTeamID: 1,
		AwayTeamID: 2,
		Home:       uniformRoster(1, 1, 50),
		Away:       uniformRoster(2, 101, 50),
		Seed:       seed,
	}
}

func TestPartition_ExactSum(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 2000; i++ {
		n := rng.Intn(12) + 1
		weights := make([]float64, n)
		for j := range weights {
			if rng.Float64() < 0.2 {
				continue
			}
			weights[j] = rng.Float64() * 10
		}
		total := rng.Intn(500)
		parts := Partition(total, weights, DefaultPartitionNoise, rng)

		require.Len(t, parts, n)
		sum := 0
		for _, p := range parts {
			assert.GreaterOrEqual(t, p, 0)
			sum += p
		}
		require.Equal(t, total, sum, "weights %v", weights)
	}
}

func TestPartition_DegenerateCases(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		weights  []float64
		expected []int
	}{
		{"even split with remainder", 10, []float64{1, 1, 1}, []int{4, 3, 3}},
		{"zero total", 0, []float64{1, 2, 3}, []int{0, 0, 0}},
		{"negative total", -4, []float64{1, 2}, []int{0, 0}},
		{"empty weights", 7, nil, []int{}},
		{"all zero weights are uniform", 9, []float64{0, 0, 0}, []int{3, 3, 3}},
		{"proportional", 10, []float64{3, 1}, []int{8, 2}},
		{"single recipient", 17, []float64{0.2}, []int{17}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Partition(tt.total, tt.weights, 0, nil))
		})
	}
}

func TestPartition_HigherWeightGetsMore(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	heavy, light := 0, 0
	for i := 0; i < 200; i++ {
		parts := Partition(100, []float64{4, 1}, DefaultPartitionNoise, rng)
		heavy += parts[0]
		light += parts[1]
	}
	assert.Greater(t, heavy, 3*light)
}

func TestAggregateUnits_EmptyRoster(t *testing.T) {
	r := AggregateUnits(fb.Roster{}, 5)
	expected := UnitRatings{
		OLRunBlock: 30, OLPassProtect: 30, QBPassing: 30, QBMobility: 30,
		RBRushing: 30, ReceivingCorps: 30, DLPassRush: 30, DLRunStop: 30,
		LBRating: 30, SecondaryRating: 30, KickPower: 30, PuntPower: 30,
	}
	assert.Equal(t, expected, r)
}

func TestAggregateUnits_UniformRoster(t *testing.T) {
	r := AggregateUnits(uniformRoster(1, 1, 50), 2)

	assert.InDelta(t, 52, r.OLRunBlock, 1e-9)
	assert.InDelta(t, 52, r.OLPassProtect, 1e-9)
	assert.InDelta(t, 0.90*50+2, r.QBPassing, 1e-9)
	assert.InDelta(t, 50, r.QBMobility, 1e-9, "mobility takes no bonus")
	assert.InDelta(t, 52, r.ReceivingCorps, 1e-9)
	assert.InDelta(t, 52, r.DLPassRush, 1e-9)
	assert.InDelta(t, 1.10*50+2, r.LBRating, 1e-9)
	assert.InDelta(t, 52, r.SecondaryRating, 1e-9)
	assert.InDelta(t, 50, r.KickPower, 1e-9)
	assert.InDelta(t, 50, r.PuntPower, 1e-9)
}

func TestAggregateUnits_ClampedAndStartersOnly(t *testing.T) {
	roster := uniformRoster(1, 1, 99)
	backup := &fb.Player{ID: 999, Position: fb.QB}
	backup.SetTrait(fb.ArmStrength, 0, 0)
	roster[fb.QB] = append(roster[fb.QB], backup)

	r := AggregateUnits(roster, 10)
	assert.Equal(t, 99.0, r.OLRunBlock)
	assert.Equal(t, 99.0, r.QBPassing)
}

func TestAggregateUnits_MissingAttributesUseDefaults(t *testing.T) {
	roster := fb.NewRoster([]*fb.Player{{ID: 1, Position: fb.LT}, {ID: 2, Position: fb.K}})
	r := AggregateUnits(roster, 0)
	assert.InDelta(t, 30, r.OLRunBlock, 1e-9)
	assert.InDelta(t, 0.55*30+0.45*50, r.KickPower, 1e-9)
}

func assertAdditive(t *testing.T, team TeamGameResult) {
	t.Helper()
	var rushYards, rushAtt, receptions, recYards, targets, passYards, passAtt, completions int
	var tds, xpMade, fgMade, defTDs, turnovers int
	for _, p := range team.PlayerStats {
		rushYards += p.RushYards
		rushAtt += p.RushAttempts
		receptions += p.Receptions
		recYards += p.ReceivingYards
		targets += p.Targets
		passYards += p.PassYards
		passAtt += p.PassAttempts
		completions += p.PassCompletions
		tds += p.RushTouchdowns + p.ReceivingTouchdowns
		xpMade += p.XPMade
		fgMade += p.FGMade
		defTDs += p.DefensiveTouchdowns
		turnovers += p.InterceptionsThrown + p.FumblesLost

		assert.LessOrEqual(t, p.Receptions, p.Targets, "player %d", p.PlayerID)
	}

	assert.Equal(t, team.RushYards, rushYards)
	assert.Equal(t, team.RushAttempts, rushAtt)
	assert.Equal(t, team.PassCompletions, receptions)
	assert.Equal(t, team.PassYards, recYards)
	assert.Equal(t, team.PassAttempts, targets)
	assert.Equal(t, team.PassYards, passYards)
	assert.Equal(t, team.PassAttempts, passAtt)
	assert.Equal(t, team.PassCompletions, completions)
	assert.Equal(t, team.TotalYards, rushYards+passYards)
	assert.Equal(t, team.Turnovers, turnovers)
	assert.Equal(t, team.Score, tds*6+xpMade+fgMade*3+defTDs*7)
}

func TestSimulateGame_BoxScoreAdditivity(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		in := identicalGame(seed)
		in.Away = uniformRoster(2, 101, 30+int(seed))
		result := SimulateGame(in)
		assertAdditive(t, result.Home)
		assertAdditive(t, result.Away)
	}
}

func TestSimulateGame_DefensiveLines(t *testing.T) {
	result := SimulateGame(identicalGame(11))
	for _, team := range []TeamGameResult{result.Home, result.Away} {
		var sacks float64
		var tfl, ints, pds, ff, fr int
		for _, p := range team.PlayerStats {
			sacks += p.Sacks
			tfl += p.TacklesForLoss
			ints += p.Interceptions
			pds += p.PassDeflections
			ff += p.ForcedFumbles
			fr += p.FumbleRecoveries
		}
		assert.GreaterOrEqual(t, float64(tfl), sacks)
		assert.GreaterOrEqual(t, pds, ints)
		assert.LessOrEqual(t, fr, ff)
	}

	// sacks recorded by a defense equal the sacks the other offense allowed
	var homeDefSacks float64
	for _, p := range result.Home.PlayerStats {
		homeDefSacks += p.Sacks
	}
	assert.Equal(t, float64(result.Away.SacksAllowed), homeDefSacks)
}

func TestSimulateGame_Deterministic(t *testing.T) {
	first, err := json.Marshal(SimulateGame(identicalGame(42)))
	require.NoError(t, err)
	second, err := json.Marshal(SimulateGame(identicalGame(42)))
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))

	other, err := json.Marshal(SimulateGame(identicalGame(43)))
	require.NoError(t, err)
	assert.NotEqual(t, string(first), string(other))
}

func TestSimulateGame_IdenticalRosters(t *testing.T) {
	result := SimulateGame(identicalGame(42))

	assert.Equal(t, uint(1), result.Home.TeamID)
	assert.Equal(t, "Home", result.Home.TeamName)
	assert.GreaterOrEqual(t, result.Home.Score, 0)
	assert.GreaterOrEqual(t, result.Away.Score, 0)
	assertAdditive(t, result.Home)

	diff := 0
	const games = 300
	for seed := int64(0); seed < games; seed++ {
		r := SimulateGame(identicalGame(seed))
		diff += r.Home.Score - r.Away.Score
	}
	avg := float64(diff) / games
	assert.Less(t, avg, 7.0, "average margin between identical teams should be small")
	assert.Greater(t, avg, -7.0)
}

func TestSimulateGame_StrongerTeamWinsMore(t *testing.T) {
	wins := 0
	for seed := int64(0); seed < 100; seed++ {
		in := identicalGame(seed)
		in.Home = uniformRoster(1, 1, 80)
		in.Away = uniformRoster(2, 101, 30)
		if SimulateGame(in).Winner() == 1 {
			wins++
		}
	}
	assert.Greater(t, wins, 75)
}

func TestSimulateGame_PlayerLinesBelongToTeam(t *testing.T) {
	result := SimulateGame(identicalGame(5))
	seen := map[uint]bool{}
	for _, p := range result.Home.PlayerStats {
		assert.Equal(t, uint(1), p.TeamID)
		assert.False(t, seen[p.PlayerID], "player %d listed twice", p.PlayerID)
		seen[p.PlayerID] = true
	}
	for _, p := range result.Away.PlayerStats {
		assert.Equal(t, uint(2), p.TeamID)
	}
}

func TestManagerBonus(t *testing.T) {
	assert.Equal(t, 0.0, ManagerBonus(0))
	assert.InDelta(t, 3.0, ManagerBonus(99), 1e-9)
	assert.InDelta(t, 3.0, ManagerBonus(150), 1e-9)
	assert.Equal(t, 0.0, ManagerBonus(-5))
}

func TestPlayerGameStats_Add(t *testing.T) {
	a := PlayerGameStats{PlayerID: 1, RushYards: 10, Sacks: 0.5, Tackles: 2}
	a.Add(PlayerGameStats{PlayerID: 1, RushYards: 5, Sacks: 1, Tackles: 3, Punts: 1})
	assert.Equal(t, 15, a.RushYards)
	assert.Equal(t, 1.5, a.Sacks)
	assert.Equal(t, 5, a.Tackles)
	assert.Equal(t, 1, a.Punts)
}

func TestClampedNormalDistribution(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	d := NewClampedNormalDistribution(0, 10, -1, 1)
	for i := 0; i < 100; i++ {
		v := d.Sample(rng)
		assert.GreaterOrEqual(t, v, -1.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}

func TestSimulateGame_Tuning(t *testing.T) {
	plain := SimulateGame(identicalGame(8))
	tuned := identicalGame(8)
	tuned.Tuning = &DefaultTuning
	assert.Equal(t, plain, SimulateGame(tuned))

	quiet := identicalGame(8)
	quiet.Tuning = &Tuning{HomeFieldBonus: 0, PartitionNoise: 0}
	result := SimulateGame(quiet)
	assertAdditive(t, result.Home)
	assertAdditive(t, result.Away)
}
