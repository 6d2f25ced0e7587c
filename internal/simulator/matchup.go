package simulator

import (
	"math"
	"math/rand"

	fb "github.com/rhuselid/gmcareer/internal/football"
)

// defensiveWeights is a position's share of each defensive counting stat.
type defensiveWeights struct {
	Tackles, Sacks, Interceptions, Deflections, TacklesForLoss, ForcedFumbles float64
}

var defensiveStatWeights = map[fb.Position]defensiveWeights{
	fb.DE:  {Tackles: 4.0, Sacks: 5.0, Interceptions: 0.1, Deflections: 0.5, TacklesForLoss: 4.0, ForcedFumbles: 4.0},
	fb.DT:  {Tackles: 3.5, Sacks: 2.5, Interceptions: 0.0, Deflections: 0.2, TacklesForLoss: 3.5, ForcedFumbles: 2.0},
	fb.NT:  {Tackles: 3.0, Sacks: 1.5, Interceptions: 0.0, Deflections: 0.1, TacklesForLoss: 3.0, ForcedFumbles: 1.5},
	fb.OLB: {Tackles: 7.0, Sacks: 3.5, Interceptions: 1.0, Deflections: 1.5, TacklesForLoss: 3.0, ForcedFumbles: 3.0},
	fb.ILB: {Tackles: 9.0, Sacks: 0.5, Interceptions: 1.0, Deflections: 1.0, TacklesForLoss: 2.5, ForcedFumbles: 1.5},
	fb.CB:  {Tackles: 4.0, Sacks: 0.2, Interceptions: 5.0, Deflections: 5.0, TacklesForLoss: 0.5, ForcedFumbles: 0.5},
	fb.S:   {Tackles: 5.5, Sacks: 0.3, Interceptions: 4.0, Deflections: 3.5, TacklesForLoss: 1.0, ForcedFumbles: 1.0},
}

// fallback weights for a defender listed outside the known front-seven and
// secondary positions
var defaultDefensiveWeights = defensiveWeights{
	Tackles: 1.0, Sacks: 0.1, Interceptions: 0.0, Deflections: 0.1, TacklesForLoss: 0.5, ForcedFumbles: 0.5,
}

const (
	minPlays = 57
	maxPlays = 72

	minRushAttempts  = 12
	minPassAttempts  = 5
	maxInterceptions = 5
	maxFumbles       = 4
	minDrives        = 6

	pickSixRate       = 0.12
	fumbleReturnRate  = 0.08
	defensiveTDPoints = 7
	fieldGoalRollBand = 0.15
)

// MatchupTotals are the team-level aggregates of one offensive half.
type MatchupTotals struct {
	TotalPlays      int `json:"total_plays"`
	RushAttempts    int `json:"rush_attempts"`
	RushYards       int `json:"rush_yards"`
	PassAttempts    int `json:"pass_attempts"`
	PassCompletions int `json:"pass_completions"`
	PassYards       int `json:"pass_yards"`
	SacksAllowed    int `json:"sacks_allowed"`
	Interceptions   int `json:"interceptions"`
	FumblesLost     int `json:"fumbles_lost"`
	TotalYards      int `json:"total_yards"`
	FGAttempts      int `json:"fg_attempts"`
	FGMade          int `json:"fg_made"`
	Touchdowns      int `json:"touchdowns"`
	Drives          int `json:"drives"`
}

// MatchupResult is one offense's output against one defense.
type MatchupResult struct {
	Offense      []PlayerGameStats `json:"offense"`
	Defense      []PlayerGameStats `json:"defense"`
	OffenseScore int               `json:"offense_score"`
	DefenseScore int               `json:"defense_score"` // pick-sixes and fumble-return touchdowns
	Totals       MatchupTotals     `json:"totals"`
}

// SimulateMatchup plays one team's offense against the other's defense and
// distributes the aggregates to individual players so that every team
// total equals the sum of its player lines.
func SimulateMatchup(off, def UnitRatings, offRoster, defRoster fb.Roster, noise float64, rng *rand.Rand) MatchupResult {
	rushOff := off.RBRushing/3 + 2*off.OLRunBlock/3
	rushDef := 0.50*def.DLRunStop + 0.30*def.LBRating + 0.20*def.SecondaryRating
	rushMatchup := rushOff - rushDef

	passOff := 0.35*off.QBPassing + 0.30*off.ReceivingCorps + 0.35*off.OLPassProtect
	passDef := 0.35*def.DLPassRush + 0.25*def.LBRating + 0.40*def.SecondaryRating
	passMatchup := passOff - passDef

	// play volume and run/pass split
	totalPlays := randInt(rng, minPlays, maxPlays)
	runPct := clamp(0.43+(rushMatchup-passMatchup)/400+gauss(rng, 0, 0.05), 0.28, 0.62)
	rushAttempts := max(minRushAttempts, round(float64(totalPlays)*runPct))
	passPlays := totalPlays - rushAttempts

	sackRate := clamp(0.065+(def.DLPassRush-off.OLPassProtect)/500+gauss(rng, 0, 0.015), 0.02, 0.15)
	sacks := max(0, round(float64(passPlays)*sackRate))
	sacks = min(sacks, max(0, passPlays-minPassAttempts))
	passAttempts := max(minPassAttempts, passPlays-sacks)

	ypc := clamp((4.3+rushMatchup/20)*gauss(rng, 1, 0.12), 1.5, 7.5)
	rushYards := max(0, round(float64(rushAttempts)*ypc))

	compPct := clamp(0.63+passMatchup/200+gauss(rng, 0, 0.05), 0.40, 0.80)
	completions := max(0, min(passAttempts, round(float64(passAttempts)*compPct)))
	ypa := clamp((7.0+passMatchup/20)*gauss(rng, 1, 0.12), 3.5, 12.0)
	passYards := max(0, round(float64(passAttempts)*ypa))

	intRate := clamp(0.025-passMatchup/500+gauss(rng, 0, 0.008), 0, 0.08)
	interceptions := min(maxInterceptions, max(0, round(float64(passAttempts)*intRate)))
	fumbles := min(maxFumbles, max(0, round(float64(rushAttempts)*0.015+float64(sacks)*0.08+gauss(rng, 0, 0.4))))

	// drive-based scoring
	totalYards := rushYards + passYards
	drives := max(minDrives, round(float64(totalPlays)/uniform(rng, 5.5, 7.0)))
	yardsPerDrive := float64(totalYards) / float64(max(1, drives))
	tdRate := clamp(0.10+yardsPerDrive/150+gauss(rng, 0, 0.03), 0.05, 0.50)

	touchdowns, fgAttempts := 0, 0
	for i := 0; i < drives; i++ {
		roll := rng.Float64()
		switch {
		case roll < tdRate:
			touchdowns++
		case roll < tdRate+fieldGoalRollBand:
			fgAttempts++
		}
	}

	rushShare := 0.5
	if totalYards > 0 {
		rushShare = float64(rushYards) / float64(totalYards)
	}
	rushTDs := countHits(rng, touchdowns, clamp(rushShare*1.1, 0.1, 0.9))
	passTDs := touchdowns - rushTDs

	fgMade := countHits(rng, fgAttempts, clamp(0.72+off.KickPower/400, 0.60, 0.95))
	xpMade := countHits(rng, touchdowns, clamp(0.94+off.KickPower/1500, 0.90, 0.995))
	offScore := touchdowns*6 + xpMade + fgMade*3

	pickSixes := countHits(rng, interceptions, pickSixRate)
	fumbleReturns := countHits(rng, fumbles, fumbleReturnRate)

	totals := MatchupTotals{
		TotalPlays:      totalPlays,
		RushAttempts:    rushAttempts,
		RushYards:       rushYards,
		PassAttempts:    passAttempts,
		PassCompletions: completions,
		PassYards:       passYards,
		SacksAllowed:    sacks,
		Interceptions:   interceptions,
		FumblesLost:     fumbles,
		TotalYards:      totalYards,
		FGAttempts:      fgAttempts,
		FGMade:          fgMade,
		Touchdowns:      touchdowns,
		Drives:          drives,
	}

	offense := newStatBook()
	qb := offRoster.Starter(fb.QB)
	if qb != nil {
		line := offense.line(qb)
		line.PassAttempts = passAttempts
		line.PassCompletions = completions
		line.PassYards = passYards
		line.PassTouchdowns = passTDs
		line.InterceptionsThrown = interceptions
		line.SacksTaken = sacks
	}

	rbs := offRoster.Starters(fb.RB, 2)
	distributeRushing(offense, qb, rbs, off.QBMobility, totals, rushTDs, noise, rng)
	distributeReceiving(offense, offRoster.Starters(fb.WR, 3), offRoster.Starters(fb.TE, 1), rbs, completions, passYards, passTDs, passAttempts, noise, rng)

	if k := offRoster.Starter(fb.K); k != nil {
		line := offense.line(k)
		line.FGAttempts = fgAttempts
		line.FGMade = fgMade
		line.XPAttempts = touchdowns
		line.XPMade = xpMade
	}

	if p := offRoster.Starter(fb.P); p != nil {
		nonScoring := max(0, drives-touchdowns-fgMade-interceptions-fumbles)
		punts := max(2, nonScoring+randInt(rng, -1, 1))
		avgPunt := clamp(35+off.PuntPower/5, 30, 55)
		line := offense.line(p)
		line.Punts = punts
		line.PuntYards = max(0, round(float64(punts)*avgPunt*gauss(rng, 1, 0.08)))
	}

	defense := newStatBook()
	distributeDefense(defense, defRoster, totals, pickSixes+fumbleReturns, noise, rng)

	return MatchupResult{
		Offense:      offense.list(),
		Defense:      defense.list(),
		OffenseScore: offScore,
		DefenseScore: (pickSixes + fumbleReturns) * defensiveTDPoints,
		Totals:       totals,
	}
}

func distributeRushing(book *statBook, qb *fb.Player, rbs []*fb.Player, qbMobility float64, totals MatchupTotals, rushTDs int, noise float64, rng *rand.Rand) {
	var rushers []*fb.Player
	var weights []float64
	if qb != nil {
		share := clamp(0.05+qbMobility/400, 0.02, 0.20)
		rushers = append(rushers, qb)
		weights = append(weights, math.Max(0.02, share))
	}
	for i, rb := range rbs {
		w := 0.35*rb.Float(fb.Speed) + 0.35*rb.Float(fb.Acceleration) + 0.30*rb.Float(fb.LateralQuickness)
		if i == 0 {
			w *= 2
		}
		rushers = append(rushers, rb)
		weights = append(weights, w)
	}
	if len(rushers) == 0 {
		return
	}

	attempts := Partition(totals.RushAttempts, weights, noise, rng)
	yards := Partition(totals.RushYards, weights, noise, rng)
	tdWeights := make([]float64, len(rushers))
	fumbleRisk := make([]float64, len(rushers))
	for i, r := range rushers {
		tdWeights[i] = math.Max(0.1, float64(yards[i]))
		fumbleRisk[i] = math.Max(0.1, weights[i]*(100-r.Float(fb.BallSecurity)))
	}
	tds := Partition(rushTDs, tdWeights, noise, rng)
	fumbles := Partition(totals.FumblesLost, fumbleRisk, noise, rng)

	for i, r := range rushers {
		line := book.line(r)
		line.RushAttempts += attempts[i]
		line.RushYards += yards[i]
		line.RushTouchdowns += tds[i]
		line.FumblesLost += fumbles[i]
	}
}

func distributeReceiving(book *statBook, wrs, tes, rbs []*fb.Player, completions, passYards, passTDs, passAttempts int, noise float64, rng *rand.Rand) {
	var receivers []*fb.Player
	var weights []float64
	for i, wr := range wrs {
		w := 0.40*wr.Float(fb.Catching) + 0.35*wr.Float(fb.RouteRunning) + 0.25*wr.Float(fb.Speed)
		if i == 0 {
			w *= 1.5
		}
		receivers = append(receivers, wr)
		weights = append(weights, w)
	}
	for _, te := range tes {
		w := 0.40*te.Float(fb.Catching) + 0.35*te.Float(fb.RouteRunning) + 0.25*te.Float(fb.Speed)
		receivers = append(receivers, te)
		weights = append(weights, w*0.85)
	}
	for _, rb := range rbs {
		w := 0.45*rb.Float(fb.Catching) + 0.35*rb.Float(fb.RouteRunning) + 0.20*rb.Float(fb.Speed)
		receivers = append(receivers, rb)
		weights = append(weights, w*0.30)
	}
	if len(receivers) == 0 {
		return
	}

	targets := Partition(passAttempts, weights, noise, rng)
	receptions := Partition(completions, weights, noise, rng)
	capReceptions(receptions, targets, weights)

	yardWeights := make([]float64, len(receivers))
	for i := range receivers {
		yardWeights[i] = math.Max(0.1, float64(receptions[i])+gauss(rng, 0, 0.5))
	}
	yards := Partition(passYards, yardWeights, noise, rng)
	tdWeights := make([]float64, len(receivers))
	for i := range receivers {
		tdWeights[i] = math.Max(0.1, float64(yards[i]))
	}
	tds := Partition(passTDs, tdWeights, noise, rng)

	for i, r := range receivers {
		line := book.line(r)
		line.Targets += targets[i]
		line.Receptions += receptions[i]
		line.ReceivingYards += yards[i]
		line.ReceivingTouchdowns += tds[i]
	}
}

// capReceptions trims each receiver to their targets and hands the trimmed
// catches back, one at a time, to the highest-weighted receivers with
// spare targets.
func capReceptions(receptions, targets []int, weights []float64) {
	deficit := 0
	for i := range receptions {
		if receptions[i] > targets[i] {
			deficit += receptions[i] - targets[i]
			receptions[i] = targets[i]
		}
	}
	if deficit == 0 {
		return
	}
	order := indicesByWeight(weights)
	for deficit > 0 {
		placed := false
		for _, i := range order {
			if deficit == 0 {
				break
			}
			if receptions[i] < targets[i] {
				receptions[i]++
				deficit--
				placed = true
			}
		}
		if !placed {
			return
		}
	}
}

func distributeDefense(book *statBook, roster fb.Roster, totals MatchupTotals, defensiveTDs int, noise float64, rng *rand.Rand) {
	var defenders []*fb.Player
	for _, group := range [][]fb.Position{fb.DefensiveLine, fb.Linebackers, fb.DefensiveBacks} {
		defenders = append(defenders, startersAt(roster, group, 0)...)
	}
	if len(defenders) == 0 {
		return
	}

	n := len(defenders)
	tackleW := make([]float64, n)
	sackW := make([]float64, n)
	tflW := make([]float64, n)
	intW := make([]float64, n)
	pdW := make([]float64, n)
	ffW := make([]float64, n)
	tdW := make([]float64, n)
	for i, d := range defenders {
		pw, ok := defensiveStatWeights[d.Position]
		if !ok {
			pw = defaultDefensiveWeights
		}
		tackling := d.Float(fb.Tackling) / 50
		pursuit := d.Float(fb.Pursuit) / 50
		speed := d.Float(fb.Speed) / 50
		coverSkill := 0.5*d.Float(fb.Coverage)/50 + 0.3*speed + 0.2*d.Float(fb.LateralQuickness)/50

		tackleW[i] = pw.Tackles * (0.5*tackling + 0.3*pursuit + 0.2*speed)
		sackW[i] = pw.Sacks * (0.7*d.Float(fb.PassRush)/50 + 0.3*d.Float(fb.BlockShedding)/50)
		tflW[i] = pw.TacklesForLoss * (0.5*tackling + 0.5*pursuit)
		intW[i] = math.Max(0.001, pw.Interceptions*coverSkill)
		pdW[i] = pw.Deflections * coverSkill
		ffW[i] = pw.ForcedFumbles * (0.5*tackling + 0.5*pursuit)
		tdW[i] = intW[i]*2 + ffW[i]
	}

	tackles := Partition(max(0, totals.TotalPlays+randInt(rng, -5, 5)), tackleW, noise, rng)
	sacks := Partition(totals.SacksAllowed, sackW, noise, rng)
	totalTFL := max(totals.SacksAllowed, round(float64(totals.TotalPlays)*0.08+gauss(rng, 0, 1)))
	tfl := Partition(totalTFL, tflW, noise, rng)
	ints := Partition(totals.Interceptions, intW, noise, rng)
	totalPD := max(totals.Interceptions, round(float64(totals.PassAttempts)*0.08+gauss(rng, 0, 1)))
	pds := Partition(totalPD, pdW, noise, rng)
	ffs := Partition(totals.FumblesLost, ffW, noise, rng)
	f := totals.FumblesLost
	recovered := min(f, max(0, f-randInt(rng, 0, max(1, f))))
	frs := Partition(recovered, ffW, noise, rng)
	tds := Partition(defensiveTDs, tdW, noise, rng)

	for i, d := range defenders {
		line := book.line(d)
		line.Tackles += tackles[i]
		line.Sacks += float64(sacks[i])
		line.TacklesForLoss += tfl[i]
		line.Interceptions += ints[i]
		line.PassDeflections += pds[i]
		line.ForcedFumbles += ffs[i]
		line.FumbleRecoveries += frs[i]
		line.DefensiveTouchdowns += tds[i]
	}
}
