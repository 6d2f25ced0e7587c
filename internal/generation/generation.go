// Package generation creates procedural teams and rosters.
package generation

import (
	"fmt"
	"math/rand"

	fb "github.com/rhuselid/gmcareer/internal/football"
	"github.com/rhuselid/gmcareer/internal/ratings"
)

// DiamondChance is the share of high-school players generated with
// college-level ceilings.
const DiamondChance = 0.07

type band struct{ lo, hi int }

// per-level ranges for ceilings and the floor current values are held at
var (
	capBands = map[fb.Level]band{
		fb.HighSchool:   {20, 75},
		fb.College:      {40, 85},
		fb.Professional: {50, 95},
	}
	diamondBand   = band{50, 92}
	currentFloors = map[fb.Level]int{
		fb.HighSchool:   0,
		fb.College:      35,
		fb.Professional: 50,
	}
	ageBands = map[fb.Level]band{
		fb.HighSchool:   {14, 18},
		fb.College:      {18, 22},
		fb.Professional: {22, 30},
	}
	// height lo/hi and weight lo/hi by high-school age
	hsBodies = map[int][4]int{
		14: {64, 70, 140, 220},
		15: {65, 71, 150, 240},
		16: {66, 72, 160, 260},
		17: {67, 73, 170, 280},
		18: {68, 74, 180, 300},
	}
)

const maxDevelopmentGap = 28

// TeamNames returns n distinct "City Mascot" names.
func TeamNames(rng *rand.Rand, n int) []string {
	names := make([]string, 0, len(cities)*len(mascots))
	for _, c := range cities {
		for _, m := range mascots {
			names = append(names, c+" "+m)
		}
	}
	rng.Shuffle(len(names), func(i, j int) { names[i], names[j] = names[j], names[i] })
	if n > len(names) {
		n = len(names)
	}
	return names[:n]
}

// PlayerName returns a random first and last name.
func PlayerName(rng *rand.Rand) string {
	return firstNames[rng.Intn(len(firstNames))] + " " + lastNames[rng.Intn(len(lastNames))]
}

// GenerateRoster fills every roster slot of level for a team. Players are
// numbered from firstID in slot order; pass zero to leave ids for the
// database to assign.
func GenerateRoster(rng *rand.Rand, teamID uint, level fb.Level, firstID uint) []*fb.Player {
	players := make([]*fb.Player, 0, level.RosterSize())
	id := firstID
	for _, slot := range level.RosterSlots() {
		for i := 0; i < slot.Count; i++ {
			p := GeneratePlayer(rng, level, slot.Position)
			p.TeamID = teamID
			if firstID != 0 {
				p.ID = id
				id++
			}
			players = append(players, p)
		}
	}
	return players
}

// GeneratePlayer samples one player at pos: body first, then ceilings
// biased by build, then current values a random gap below each ceiling.
func GeneratePlayer(rng *rand.Rand, level fb.Level, pos fb.Position) *fb.Player {
	ages := ageBands[level]
	age := between(rng, ages.lo, ages.hi)
	height, weight := body(rng, level, age)

	p := &fb.Player{
		Name:      PlayerName(rng),
		Position:  pos,
		ClassYear: classYear(level, age),
		Height:    height,
		Weight:    weight,
	}

	caps, ok := capBands[level]
	if !ok {
		caps = capBands[fb.HighSchool]
	}
	if level == fb.HighSchool && rng.Float64() < DiamondChance {
		caps = diamondBand
	}
	bias := buildBias(height, weight)
	floor := currentFloors[level]
	for _, a := range fb.TrainableAttributes {
		ceiling := fb.ClampAttribute(between(rng, caps.lo, caps.hi) + bias[a])
		gap := between(rng, 0, min(maxDevelopmentGap, ceiling))
		p.SetTrait(a, max(floor, ceiling-gap), ceiling)
	}

	p.ArmLength = between(rng, fb.ArmLengthMin, fb.ArmLengthMax)
	if height >= 72 {
		p.ArmLength = min(fb.ArmLengthMax, p.ArmLength+between(rng, 0, 2))
	}

	ratings.Recompute(p)
	return p
}

// UniformRoster builds a high-school sized roster in which every player has
// every attribute at value, with a neutral build.
func UniformRoster(teamID, firstID uint, value int) []*fb.Player {
	var players []*fb.Player
	id := firstID
	for _, slot := range fb.HighSchool.RosterSlots() {
		for i := 0; i < slot.Count; i++ {
			p := &fb.Player{
				ID:        id,
				TeamID:    teamID,
				Name:      fmt.Sprintf("%s%d", slot.Position, i+1),
				Position:  slot.Position,
				Height:    74,
				Weight:    220,
				ArmLength: 32,
			}
			for _, a := range fb.TrainableAttributes {
				p.SetTrait(a, value, value)
			}
			ratings.Recompute(p)
			players = append(players, p)
			if firstID != 0 {
				id++
			}
		}
	}
	return players
}

func between(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

func body(rng *rand.Rand, level fb.Level, age int) (height, weight int) {
	switch level {
	case fb.College:
		return between(rng, 68, 76), between(rng, 180, 320)
	case fb.Professional:
		return between(rng, 69, 77), between(rng, 190, 330)
	}
	b, ok := hsBodies[age]
	if !ok {
		b = hsBodies[18]
	}
	return between(rng, b[0], b[1]), between(rng, b[2], b[3])
}

// classYear maps age onto 1-4 (freshman through senior).
func classYear(level fb.Level, age int) int {
	start := 13
	switch level {
	case fb.College:
		start = 17
	case fb.Professional:
		start = 21
	}
	return min(4, max(1, age-start))
}

// buildBias favors quickness for lean frames and strength for heavy ones,
// judged by pounds per inch of height.
func buildBias(height, weight int) map[fb.Attribute]int {
	wpi := float64(weight) / float64(max(height, 60))
	switch {
	case wpi < 2.7:
		return map[fb.Attribute]int{
			fb.Speed: 8, fb.Acceleration: 8, fb.LateralQuickness: 6, fb.VerticalJump: 6, fb.BroadJump: 5,
			fb.LowerBodyStrength: -6, fb.UpperBodyStrength: -4, fb.RunBlock: -4, fb.PassProtection: -4,
		}
	case wpi > 3.5:
		return map[fb.Attribute]int{
			fb.LowerBodyStrength: 8, fb.UpperBodyStrength: 6, fb.RunBlock: 6, fb.PassProtection: 6,
			fb.Speed: -6, fb.Acceleration: -6, fb.LateralQuickness: -4, fb.VerticalJump: -4, fb.BroadJump: -4,
		}
	}
	return nil
}
