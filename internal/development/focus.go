package development

import (
	"strings"

	fb "github.com/rhuselid/gmcareer/internal/football"
)

// Drill is one attribute a practice focus trains, the positions it applies
// to and its rate multiplier (1.0 primary, lower for secondary work).
type Drill struct {
	Attr      fb.Attribute
	Positions []fb.Position
	Rate      float64
}

// FocusOption is a selectable practice focus with its display label.
type FocusOption struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

var (
	olGroup        = fb.OffensiveLine
	qbGroup        = []fb.Position{fb.QB}
	backsGroup     = []fb.Position{fb.RB, fb.FB}
	receiversGroup = []fb.Position{fb.WR, fb.TE}
	skillGroup     = []fb.Position{fb.QB, fb.RB, fb.FB, fb.WR, fb.TE}
)

func join(groups ...[]fb.Position) []fb.Position {
	var out []fb.Position
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// OffenseFocusOptions lists offensive focuses in menu order.
var OffenseFocusOptions = []FocusOption{
	{"strength_conditioning", "Strength & Conditioning"},
	{"pass_game", "Pass Game"},
	{"run_game", "Run Game"},
	{"screen_quick", "Screen & Quick Game"},
	{"red_zone", "Red Zone"},
	{"play_action", "Play Action"},
	{"two_minute", "Two-Minute / Tempo"},
	{"balanced", "Balanced"},
}

// DefenseFocusOptions lists defensive focuses in menu order.
var DefenseFocusOptions = []FocusOption{
	{"strength_conditioning", "Strength & Conditioning"},
	{"pass_rush", "Pass Rush"},
	{"takeaways", "Take-aways"},
	{"zone_coverage", "Zone Coverage"},
	{"man_coverage", "Man Coverage"},
	{"stopping_rush", "Stopping the Rush"},
	{"blitz_packages", "Blitz Packages"},
	{"third_down", "Third Down"},
	{"balanced", "Balanced"},
}

var offenseDrills = map[string][]Drill{
	"strength_conditioning": {
		{fb.Speed, fb.OffensivePositions, 1.0},
		{fb.Acceleration, fb.OffensivePositions, 1.0},
		{fb.LateralQuickness, fb.OffensivePositions, 1.0},
		{fb.LowerBodyStrength, fb.OffensivePositions, 1.0},
		{fb.UpperBodyStrength, fb.OffensivePositions, 1.0},
		{fb.VerticalJump, fb.OffensivePositions, 0.8},
		{fb.BroadJump, fb.OffensivePositions, 0.8},
	},
	"pass_game": {
		{fb.ShortAccuracy, qbGroup, 1.0},
		{fb.MidAccuracy, qbGroup, 1.0},
		{fb.DeepAccuracy, qbGroup, 1.0},
		{fb.ThrowUnderPressure, qbGroup, 1.0},
		{fb.ArmStrength, qbGroup, 0.9},
		{fb.Vision, qbGroup, 0.7},
		{fb.Catching, join(receiversGroup, []fb.Position{fb.RB}), 1.0},
		{fb.RouteRunning, receiversGroup, 1.0},
		{fb.PassProtection, olGroup, 1.0},
		{fb.Familiarity, fb.OffensivePositions, 0.5},
	},
	"run_game": {
		{fb.RunBlock, join(olGroup, []fb.Position{fb.FB, fb.TE}), 1.0},
		{fb.BallSecurity, join(backsGroup, []fb.Position{fb.WR, fb.TE}), 1.0},
		{fb.Vision, join(backsGroup, qbGroup), 0.9},
		{fb.LowerBodyStrength, join(olGroup, backsGroup), 0.8},
		{fb.Scrambling, qbGroup, 0.8},
		{fb.Familiarity, fb.OffensivePositions, 0.5},
	},
	"screen_quick": {
		{fb.ShortAccuracy, qbGroup, 1.0},
		{fb.LateralQuickness, skillGroup, 1.0},
		{fb.Catching, join(receiversGroup, []fb.Position{fb.RB}), 1.0},
		{fb.RouteRunning, receiversGroup, 0.8},
		{fb.RunBlock, olGroup, 0.7},
		{fb.Vision, join(qbGroup, []fb.Position{fb.RB}), 0.6},
	},
	"red_zone": {
		{fb.ShortAccuracy, qbGroup, 1.0},
		{fb.ThrowUnderPressure, qbGroup, 0.9},
		{fb.RunBlock, join(olGroup, []fb.Position{fb.FB, fb.TE}), 0.9},
		{fb.BallSecurity, backsGroup, 0.9},
		{fb.Catching, join(receiversGroup, []fb.Position{fb.RB}), 0.9},
		{fb.VerticalJump, receiversGroup, 0.6},
	},
	"play_action": {
		{fb.MidAccuracy, qbGroup, 1.0},
		{fb.DeepAccuracy, qbGroup, 0.9},
		{fb.Vision, qbGroup, 1.0},
		{fb.RunBlock, olGroup, 0.9},
		{fb.RouteRunning, receiversGroup, 0.8},
		{fb.Familiarity, fb.OffensivePositions, 0.5},
	},
	"two_minute": {
		{fb.ShortAccuracy, qbGroup, 1.0},
		{fb.Catching, join(receiversGroup, []fb.Position{fb.RB}), 0.9},
		{fb.Speed, skillGroup, 0.8},
		{fb.Acceleration, skillGroup, 0.8},
		{fb.PassProtection, olGroup, 0.7},
		{fb.Familiarity, fb.OffensivePositions, 0.6},
	},
	"balanced": {
		{fb.Speed, fb.OffensivePositions, 0.6},
		{fb.Acceleration, fb.OffensivePositions, 0.6},
		{fb.ShortAccuracy, qbGroup, 0.6},
		{fb.MidAccuracy, qbGroup, 0.6},
		{fb.Catching, join(receiversGroup, []fb.Position{fb.RB}), 0.6},
		{fb.RouteRunning, receiversGroup, 0.6},
		{fb.RunBlock, join(olGroup, []fb.Position{fb.FB, fb.TE}), 0.6},
		{fb.PassProtection, olGroup, 0.6},
		{fb.BallSecurity, backsGroup, 0.5},
		{fb.Familiarity, fb.OffensivePositions, 0.5},
	},
}

var defenseDrills = map[string][]Drill{
	"strength_conditioning": {
		{fb.Speed, fb.DefensivePositions, 1.0},
		{fb.Acceleration, fb.DefensivePositions, 1.0},
		{fb.LateralQuickness, fb.DefensivePositions, 1.0},
		{fb.LowerBodyStrength, fb.DefensivePositions, 1.0},
		{fb.UpperBodyStrength, fb.DefensivePositions, 1.0},
		{fb.VerticalJump, fb.DefensivePositions, 0.8},
		{fb.BroadJump, fb.DefensivePositions, 0.8},
	},
	"pass_rush": {
		{fb.PassRush, join(fb.DefensiveLine, []fb.Position{fb.OLB}), 1.0},
		{fb.BlockShedding, join(fb.DefensiveLine, fb.Linebackers), 1.0},
		{fb.Speed, []fb.Position{fb.DE, fb.OLB}, 0.8},
		{fb.Acceleration, []fb.Position{fb.DE, fb.OLB}, 0.8},
		{fb.UpperBodyStrength, fb.DefensiveLine, 0.7},
		{fb.LowerBodyStrength, fb.DefensiveLine, 0.7},
	},
	"takeaways": {
		{fb.Coverage, join(fb.DefensiveBacks, fb.Linebackers), 1.0},
		{fb.Tackling, fb.DefensivePositions, 1.0},
		{fb.Pursuit, fb.DefensivePositions, 1.0},
		{fb.Vision, join(fb.DefensiveBacks, []fb.Position{fb.ILB}), 0.8},
		{fb.VerticalJump, fb.DefensiveBacks, 0.5},
	},
	"zone_coverage": {
		{fb.Coverage, join(fb.DefensiveBacks, fb.Linebackers), 1.0},
		{fb.Vision, join(fb.DefensiveBacks, []fb.Position{fb.ILB}), 1.0},
		{fb.Pursuit, fb.DefensivePositions, 0.8},
		{fb.Tackling, join(fb.DefensiveBacks, fb.Linebackers), 0.7},
	},
	"man_coverage": {
		{fb.Coverage, fb.DefensiveBacks, 1.0},
		{fb.Speed, fb.DefensiveBacks, 0.9},
		{fb.Acceleration, fb.DefensiveBacks, 0.9},
		{fb.LateralQuickness, fb.DefensiveBacks, 1.0},
		{fb.Tackling, fb.DefensiveBacks, 0.6},
	},
	"stopping_rush": {
		{fb.Tackling, fb.DefensivePositions, 1.0},
		{fb.BlockShedding, join(fb.DefensiveLine, fb.Linebackers), 1.0},
		{fb.LowerBodyStrength, join(fb.DefensiveLine, []fb.Position{fb.ILB, fb.NT}), 0.9},
		{fb.UpperBodyStrength, fb.DefensiveLine, 0.8},
		{fb.Pursuit, join(fb.Linebackers, fb.DefensiveBacks), 0.8},
	},
	"blitz_packages": {
		{fb.PassRush, join(fb.Linebackers, []fb.Position{fb.DE}), 1.0},
		{fb.Speed, []fb.Position{fb.OLB, fb.ILB, fb.S}, 0.9},
		{fb.Pursuit, fb.Linebackers, 0.9},
		{fb.BlockShedding, fb.Linebackers, 0.8},
		{fb.Tackling, join(fb.Linebackers, fb.DefensiveBacks), 0.6},
	},
	"third_down": {
		{fb.PassRush, join(fb.DefensiveLine, []fb.Position{fb.OLB}), 0.9},
		{fb.Coverage, join(fb.DefensiveBacks, fb.Linebackers), 0.9},
		{fb.BlockShedding, join(fb.DefensiveLine, fb.Linebackers), 0.7},
		{fb.Pursuit, fb.DefensivePositions, 0.7},
		{fb.Vision, join(fb.DefensiveBacks, []fb.Position{fb.ILB}), 0.6},
	},
	"balanced": {
		{fb.PassRush, join(fb.DefensiveLine, []fb.Position{fb.OLB}), 0.5},
		{fb.Coverage, join(fb.DefensiveBacks, fb.Linebackers), 0.5},
		{fb.Tackling, fb.DefensivePositions, 0.5},
		{fb.BlockShedding, join(fb.DefensiveLine, fb.Linebackers), 0.5},
		{fb.Pursuit, fb.DefensivePositions, 0.5},
		{fb.Speed, fb.DefensivePositions, 0.4},
		{fb.LowerBodyStrength, join(fb.DefensiveLine, []fb.Position{fb.ILB, fb.NT}), 0.4},
	},
}

// NormalizeFocus lower-cases and trims key, falling back to the balanced
// focus when key is blank or unknown for the unit.
func NormalizeFocus(unit fb.Unit, key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	if _, ok := tableFor(unit)[key]; ok {
		return key
	}
	return fb.DefaultFocus
}

// ValidFocus reports whether key names a focus for unit.
func ValidFocus(unit fb.Unit, key string) bool {
	_, ok := tableFor(unit)[strings.ToLower(strings.TrimSpace(key))]
	return ok
}

// DrillsFor returns the drills focus runs for a player at pos, in table
// order. Special-teams and unknown positions get none.
func DrillsFor(pos fb.Position, focus string) []Drill {
	unit := pos.Unit()
	table := tableFor(unit)
	if table == nil {
		return nil
	}
	var out []Drill
	for _, d := range table[NormalizeFocus(unit, focus)] {
		if fb.In(pos, d.Positions) {
			out = append(out, d)
		}
	}
	return out
}

func tableFor(unit fb.Unit) map[string][]Drill {
	switch unit {
	case fb.UnitOffense:
		return offenseDrills
	case fb.UnitDefense:
		return defenseDrills
	default:
		return nil
	}
}
