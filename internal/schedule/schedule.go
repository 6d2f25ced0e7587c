// Package schedule builds double round-robin division schedules.
package schedule

import "math/rand"

// Matchup is one scheduled game. Weeks are 1-indexed.
type Matchup struct {
	Week int  `json:"week"`
	Home uint `json:"home_team_id"`
	Away uint `json:"away_team_id"`
}

const bye = 0

// Weeks is the season length a division of n teams needs.
func Weeks(n int) int {
	if n < 2 {
		return 0
	}
	if n%2 != 0 {
		n++
	}
	return 2 * (n - 1)
}

// DivisionSchedule pairs every team with every other twice, once at each
// venue, using the circle method so each team plays at most once a week.
// With an odd count one team sits out each week. A non-nil rng shuffles
// the initial order; the input slice is not modified.
func DivisionSchedule(teamIDs []uint, rng *rand.Rand) []Matchup {
	if len(teamIDs) < 2 {
		return nil
	}

	teams := append([]uint(nil), teamIDs...)
	if rng != nil {
		rng.Shuffle(len(teams), func(i, j int) { teams[i], teams[j] = teams[j], teams[i] })
	}
	if len(teams)%2 != 0 {
		teams = append(teams, bye)
	}

	n := len(teams)
	rounds := n - 1
	fixed := teams[0]
	rotating := append([]uint(nil), teams[1:]...)

	var firstHalf []Matchup
	for round := 0; round < rounds; round++ {
		week := round + 1
		if round%2 == 0 {
			firstHalf = appendGame(firstHalf, week, fixed, rotating[0])
		} else {
			firstHalf = appendGame(firstHalf, week, rotating[0], fixed)
		}
		for i := 1; i < n/2; i++ {
			a, b := rotating[i], rotating[n-1-i]
			if i%2 == 0 {
				firstHalf = appendGame(firstHalf, week, a, b)
			} else {
				firstHalf = appendGame(firstHalf, week, b, a)
			}
		}
		last := rotating[len(rotating)-1]
		copy(rotating[1:], rotating[:len(rotating)-1])
		rotating[0] = last
	}

	out := make([]Matchup, 0, 2*len(firstHalf))
	out = append(out, firstHalf...)
	for _, m := range firstHalf {
		out = append(out, Matchup{Week: m.Week + rounds, Home: m.Away, Away: m.Home})
	}
	return out
}

func appendGame(games []Matchup, week int, home, away uint) []Matchup {
	if home == bye || away == bye {
		return games
	}
	return append(games, Matchup{Week: week, Home: home, Away: away})
}
