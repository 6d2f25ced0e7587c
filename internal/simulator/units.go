package simulator

import (
	fb "github.com/rhuselid/gmcareer/internal/football"
	"gonum.org/v1/gonum/stat"
)

// NeutralUnitRating is used for a unit whose position group is empty.
const NeutralUnitRating = 30.0

// UnitRatings condenses one team into named unit strengths on a 0-99 scale.
type UnitRatings struct {
	OLRunBlock      float64 `json:"ol_run_block"`
	OLPassProtect   float64 `json:"ol_pass_protect"`
	QBPassing       float64 `json:"qb_passing"`
	QBMobility      float64 `json:"qb_mobility"`
	RBRushing       float64 `json:"rb_rushing"`
	ReceivingCorps  float64 `json:"receiving_corps"`
	DLPassRush      float64 `json:"dl_pass_rush"`
	DLRunStop       float64 `json:"dl_run_stop"`
	LBRating        float64 `json:"lb_rating"`
	SecondaryRating float64 `json:"secondary_rating"`
	KickPower       float64 `json:"kick_power"`
	PuntPower       float64 `json:"punt_power"`
}

type blend []struct {
	attr   fb.Attribute
	weight float64
}

func (b blend) score(p *fb.Player) float64 {
	total := 0.0
	for _, term := range b {
		total += term.weight * p.Float(term.attr)
	}
	return total
}

var (
	qbPassingBlend = blend{
		{fb.ArmStrength, 0.18}, {fb.Vision, 0.14},
		{fb.DeepAccuracy, 0.12}, {fb.ThrowUnderPressure, 0.12},
		{fb.Speed, 0.10}, {fb.Acceleration, 0.10},
	}
	qbMobilityBlend = blend{
		{fb.Scrambling, 0.30}, {fb.Speed, 0.30}, {fb.Acceleration, 0.20}, {fb.LateralQuickness, 0.20},
	}
	rbRushingBlend = blend{
		{fb.Speed, 0.20}, {fb.Acceleration, 0.20}, {fb.LateralQuickness, 0.14},
		{fb.BroadJump, 0.12}, {fb.Vision, 0.12}, {fb.BallSecurity, 0.10}, {fb.LowerBodyStrength, 0.12},
	}
	receiverBlend = blend{
		{fb.Catching, 0.30}, {fb.RouteRunning, 0.25}, {fb.Speed, 0.20},
		{fb.LateralQuickness, 0.15}, {fb.Vision, 0.10},
	}
	passRushBlend = blend{{fb.PassRush, 0.70}, {fb.BlockShedding, 0.30}}
	runStopBlend  = blend{
		{fb.LowerBodyStrength, 0.30}, {fb.UpperBodyStrength, 0.25}, {fb.BlockShedding, 0.20},
		{fb.Tackling, 0.15}, {fb.Pursuit, 0.10},
	}
	linebackerBlend = blend{
		{fb.Tackling, 0.25}, {fb.Pursuit, 0.22}, {fb.Speed, 0.18},
		{fb.LateralQuickness, 0.18}, {fb.BlockShedding, 0.17}, {fb.Vision, 0.10},
	}
	secondaryBlend = blend{
		{fb.Coverage, 0.30}, {fb.Tackling, 0.22}, {fb.Speed, 0.22},
		{fb.LateralQuickness, 0.16}, {fb.Vision, 0.10},
	}
	kickBlend = blend{{fb.KickPower, 0.55}, {fb.KickAccuracy, 0.45}}
	puntBlend = blend{{fb.KickPower, 0.60}, {fb.KickAccuracy, 0.40}}
)

// AggregateUnits computes a team's unit ratings from its depth chart. bonus
// is added to every offensive and defensive unit except QB mobility.
func AggregateUnits(roster fb.Roster, bonus float64) UnitRatings {
	ol := startersAt(roster, fb.OffensiveLine, 1)
	dl := startersAt(roster, fb.DefensiveLine, 0)
	lbs := startersAt(roster, fb.Linebackers, 0)
	dbs := startersAt(roster, fb.DefensiveBacks, 0)
	receivers := append(append([]*fb.Player{}, roster.Starters(fb.WR, 3)...), roster.Starters(fb.TE, 1)...)

	r := UnitRatings{
		OLRunBlock:      groupRating(ol, blend{{fb.RunBlock, 1}}, bonus),
		OLPassProtect:   groupRating(ol, blend{{fb.PassProtection, 1}}, bonus),
		QBPassing:       NeutralUnitRating,
		QBMobility:      NeutralUnitRating,
		RBRushing:       NeutralUnitRating,
		ReceivingCorps:  groupRating(receivers, receiverBlend, bonus),
		DLPassRush:      groupRating(dl, passRushBlend, bonus),
		DLRunStop:       groupRating(dl, runStopBlend, bonus),
		LBRating:        groupRating(lbs, linebackerBlend, bonus),
		SecondaryRating: groupRating(dbs, secondaryBlend, bonus),
		KickPower:       NeutralUnitRating,
		PuntPower:       NeutralUnitRating,
	}

	if qb := roster.Starter(fb.QB); qb != nil {
		accuracy := (qb.Float(fb.ShortAccuracy) + qb.Float(fb.MidAccuracy)) / 2
		r.QBPassing = clampRating(qbPassingBlend.score(qb) + 0.14*accuracy + bonus)
		r.QBMobility = clampRating(qbMobilityBlend.score(qb))
	}
	if rb := roster.Starter(fb.RB); rb != nil {
		r.RBRushing = clampRating(rbRushingBlend.score(rb) + bonus)
	}
	if k := roster.Starter(fb.K); k != nil {
		r.KickPower = clampRating(kickBlend.score(k))
	}
	if p := roster.Starter(fb.P); p != nil {
		r.PuntPower = clampRating(puntBlend.score(p))
	}
	return r
}

// startersAt collects starters across positions in group order. A perPos of
// zero uses each position's formation count.
func startersAt(roster fb.Roster, group []fb.Position, perPos int) []*fb.Player {
	var out []*fb.Player
	for _, pos := range group {
		n := perPos
		if n == 0 {
			n = pos.Starters()
		}
		out = append(out, roster.Starters(pos, n)...)
	}
	return out
}

func groupRating(players []*fb.Player, b blend, bonus float64) float64 {
	if len(players) == 0 {
		return NeutralUnitRating
	}
	scores := make([]float64, len(players))
	for i, p := range players {
		scores[i] = b.score(p)
	}
	return clampRating(stat.Mean(scores, nil) + bonus)
}

func clampRating(v float64) float64 {
	return clamp(v, fb.MinAttribute, fb.MaxAttribute)
}
