package schedule

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(n int) []uint {
	out := make([]uint, n)
	for i := range out {
		out[i] = uint(i + 1)
	}
	return out
}

func TestDivisionSchedule_TenTeams(t *testing.T) {
	games := DivisionSchedule(ids(10), rand.New(rand.NewSource(4)))
	require.Len(t, games, 90)
	assert.Equal(t, 18, Weeks(10))

	type pair struct{ home, away uint }
	seen := map[pair]int{}
	perWeek := map[int]map[uint]bool{}
	homeGames := map[uint]int{}
	for _, g := range games {
		assert.GreaterOrEqual(t, g.Week, 1)
		assert.LessOrEqual(t, g.Week, 18)
		assert.NotEqual(t, g.Home, g.Away)
		seen[pair{g.Home, g.Away}]++
		homeGames[g.Home]++

		if perWeek[g.Week] == nil {
			perWeek[g.Week] = map[uint]bool{}
		}
		assert.False(t, perWeek[g.Week][g.Home], "team %d twice in week %d", g.Home, g.Week)
		assert.False(t, perWeek[g.Week][g.Away], "team %d twice in week %d", g.Away, g.Week)
		perWeek[g.Week][g.Home] = true
		perWeek[g.Week][g.Away] = true
	}

	// every ordered pair exactly once: each pairing once at each venue
	assert.Len(t, seen, 90)
	for p, n := range seen {
		assert.Equal(t, 1, n, "%v", p)
	}
	for team, n := range homeGames {
		assert.Equal(t, 9, n, "team %d home games", team)
	}
	for week, teams := range perWeek {
		assert.Len(t, teams, 10, "week %d", week)
	}
}

func TestDivisionSchedule_SecondHalfMirrorsFirst(t *testing.T) {
	games := DivisionSchedule(ids(6), nil)
	half := len(games) / 2
	for i := 0; i < half; i++ {
		first, second := games[i], games[half+i]
		assert.Equal(t, first.Week+5, second.Week)
		assert.Equal(t, first.Home, second.Away)
		assert.Equal(t, first.Away, second.Home)
	}
}

func TestDivisionSchedule_OddCountHasByes(t *testing.T) {
	games := DivisionSchedule(ids(5), nil)
	assert.Equal(t, 10, Weeks(5))
	require.Len(t, games, 20)

	played := map[int]int{}
	for _, g := range games {
		played[g.Week]++
	}
	for week := 1; week <= 10; week++ {
		assert.Equal(t, 2, played[week], "week %d", week)
	}
}

func TestDivisionSchedule_Degenerate(t *testing.T) {
	assert.Empty(t, DivisionSchedule(nil, nil))
	assert.Empty(t, DivisionSchedule([]uint{7}, nil))
	assert.Equal(t, []Matchup{{1, 1, 2}, {2, 2, 1}}, DivisionSchedule(ids(2), nil))
}

func TestDivisionSchedule_DoesNotMutateInput(t *testing.T) {
	in := ids(8)
	DivisionSchedule(in, rand.New(rand.NewSource(1)))
	assert.Equal(t, ids(8), in)
}
