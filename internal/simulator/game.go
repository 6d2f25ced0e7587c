// Package simulator turns two depth charts into a statistically plausible,
// internally consistent box score without simulating individual plays.
package simulator

import (
	"math/rand"

	fb "github.com/rhuselid/gmcareer/internal/football"
)

const (
	// HomeFieldBonus is added to the home team's unit ratings.
	HomeFieldBonus = 1.5
	// MaxManagerBonus is the unit bonus a 99 in-game management skill earns.
	MaxManagerBonus = 3.0
)

// Tuning holds the league-wide knobs a game is played with.
type Tuning struct {
	HomeFieldBonus float64
	PartitionNoise float64
}

// DefaultTuning is the tuning used when a GameInput carries none.
var DefaultTuning = Tuning{HomeFieldBonus: HomeFieldBonus, PartitionNoise: DefaultPartitionNoise}

// GameInput describes one game. ManagerTeamID is zero when neither team is
// run by the manager.
type GameInput struct {
	HomeTeamID    uint
	AwayTeamID    uint
	HomeTeamName  string
	AwayTeamName  string
	Home          fb.Roster
	Away          fb.Roster
	ManagerTeamID uint
	ManagerInGame int
	Seed          int64
	Tuning        *Tuning
}

// TeamGameResult is one side of a finished game.
type TeamGameResult struct {
	TeamID          uint              `json:"team_id"`
	TeamName        string            `json:"team_name"`
	Score           int               `json:"score"`
	TotalYards      int               `json:"total_yards"`
	RushAttempts    int               `json:"rush_attempts"`
	RushYards       int               `json:"rush_yards"`
	PassAttempts    int               `json:"pass_attempts"`
	PassCompletions int               `json:"pass_completions"`
	PassYards       int               `json:"pass_yards"`
	Turnovers       int               `json:"turnovers"`
	SacksAllowed    int               `json:"sacks_allowed"`
	PlayerStats     []PlayerGameStats `json:"player_stats"`
}

// GameResult is the full box score of a simulated game.
type GameResult struct {
	Home TeamGameResult `json:"home"`
	Away TeamGameResult `json:"away"`
}

// Winner returns the winning team id, or zero for a tie.
func (g GameResult) Winner() uint {
	switch {
	case g.Home.Score > g.Away.Score:
		return g.Home.TeamID
	case g.Away.Score > g.Home.Score:
		return g.Away.TeamID
	default:
		return 0
	}
}

// SimulateGame plays a full game from a single RNG seeded once, home offense
// first. The same input always yields the same result.
func SimulateGame(in GameInput) GameResult {
	rng := rand.New(rand.NewSource(in.Seed))
	tuning := DefaultTuning
	if in.Tuning != nil {
		tuning = *in.Tuning
	}

	homeBonus, awayBonus := tuning.HomeFieldBonus, 0.0
	switch in.ManagerTeamID {
	case 0:
	case in.HomeTeamID:
		homeBonus += ManagerBonus(in.ManagerInGame)
	case in.AwayTeamID:
		awayBonus += ManagerBonus(in.ManagerInGame)
	}

	homeUnits := AggregateUnits(in.Home, homeBonus)
	awayUnits := AggregateUnits(in.Away, awayBonus)

	homeDrive := SimulateMatchup(homeUnits, awayUnits, in.Home, in.Away, tuning.PartitionNoise, rng)
	awayDrive := SimulateMatchup(awayUnits, homeUnits, in.Away, in.Home, tuning.PartitionNoise, rng)

	return GameResult{
		Home: teamResult(in.HomeTeamID, nameOr(in.HomeTeamName, "Home"), homeDrive, awayDrive),
		Away: teamResult(in.AwayTeamID, nameOr(in.AwayTeamName, "Away"), awayDrive, homeDrive),
	}
}

// ManagerBonus scales in-game management skill onto the unit bonus.
func ManagerBonus(inGame int) float64 {
	return float64(fb.ClampAttribute(inGame)) / fb.MaxAttribute * MaxManagerBonus
}

// teamResult combines a team's offensive half with its defensive half.
func teamResult(teamID uint, name string, own, opponent MatchupResult) TeamGameResult {
	book := newStatBook()
	for _, s := range own.Offense {
		book.merge(s)
	}
	for _, s := range opponent.Defense {
		book.merge(s)
	}

	t := own.Totals
	return TeamGameResult{
		TeamID:          teamID,
		TeamName:        name,
		Score:           own.OffenseScore + opponent.DefenseScore,
		TotalYards:      t.TotalYards,
		RushAttempts:    t.RushAttempts,
		RushYards:       t.RushYards,
		PassAttempts:    t.PassAttempts,
		PassCompletions: t.PassCompletions,
		PassYards:       t.PassYards,
		Turnovers:       t.Interceptions + t.FumblesLost,
		SacksAllowed:    t.SacksAllowed,
		PlayerStats:     book.list(),
	}
}

func nameOr(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}
