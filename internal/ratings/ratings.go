// Package ratings collapses a player's attributes into overall and potential
// ratings at a position.
package ratings

import (
	"math"

	fb "github.com/rhuselid/gmcareer/internal/football"
	"gonum.org/v1/gonum/floats"
)

const (
	// missingValue stands in for an attribute absent from the snapshot.
	missingValue = 50

	// wpiMargin is how far (pounds per inch) outside the band the penalty
	// ramps from 1.0 down to fitKnee.
	wpiMargin = 0.5
	fitKnee   = 0.3
	fitFloor  = 0.25
	fitSlope  = 1.2
)

// PositionFit is a player's projected ratings at one position.
type PositionFit struct {
	Position  fb.Position `json:"position"`
	Overall   int         `json:"overall"`
	Potential int         `json:"potential"`
	BuildFit  float64     `json:"build_fit"`
}

// Overall is the weighted rating of p's current attributes at pos.
func Overall(p *fb.Player, pos fb.Position) int {
	return clampRating(math.Round(weighted(pos, func(a fb.Attribute) int {
		return p.ValueOr(a, missingValue)
	}, p)))
}

// Potential is the weighted rating of p's attribute caps at pos, scaled by
// BuildFit. It never falls below Overall.
func Potential(p *fb.Player, pos fb.Position) int {
	raw := weighted(pos, func(a fb.Attribute) int {
		return p.CapOr(a, missingValue)
	}, p)
	raw = math.Min(fb.MaxAttribute, math.Max(fb.MinAttribute, raw))
	potential := clampRating(math.Round(raw * BuildFit(p, pos)))
	if overall := Overall(p, pos); potential < overall {
		return overall
	}
	return potential
}

// BuildFit scores how well p's weight per inch suits pos, in [0.25, 1.0].
// Players without a recorded height or weight, and positions without a
// band, are not penalized.
func BuildFit(p *fb.Player, pos fb.Position) float64 {
	band, ok := PositionWPI[pos]
	if !ok || p.Height <= 0 || p.Weight <= 0 {
		return 1.0
	}
	wpi := float64(p.Weight) / float64(max(p.Height, fb.MinFrameHeight))

	var over float64
	switch {
	case wpi < band.Min:
		over = band.Min - wpi
	case wpi > band.Max:
		over = wpi - band.Max
	default:
		return 1.0
	}
	if over < wpiMargin {
		return 1.0 - (1.0-fitKnee)*(over/wpiMargin)
	}
	return math.Max(fitFloor, fitKnee-(over-wpiMargin)*fitSlope)
}

// PositionFits projects p at every known position.
func PositionFits(p *fb.Player) []PositionFit {
	fits := make([]PositionFit, 0, len(fb.AllPositions))
	for _, pos := range fb.AllPositions {
		fits = append(fits, PositionFit{
			Position:  pos,
			Overall:   Overall(p, pos),
			Potential: Potential(p, pos),
			BuildFit:  BuildFit(p, pos),
		})
	}
	return fits
}

// Recompute refreshes the cached ratings on p for its listed position.
func Recompute(p *fb.Player) {
	p.Overall = Overall(p, p.Position)
	p.Potential = Potential(p, p.Position)
}

// weighted evaluates pos's weight table against value. Arm length is read
// from the snapshot in inches and scaled to the rating range.
func weighted(pos fb.Position, value func(fb.Attribute) int, p *fb.Player) float64 {
	table := PositionWeights[pos]
	if len(table) == 0 {
		return 0
	}
	w := make([]float64, len(table))
	v := make([]float64, len(table))
	for i, entry := range table {
		w[i] = entry.Weight
		if entry.Attr == fb.ArmLength {
			v[i] = ScaleArmLength(p.Value(fb.ArmLength))
			continue
		}
		v[i] = math.Min(fb.MaxAttribute, math.Max(fb.MinAttribute, float64(value(entry.Attr))))
	}
	return floats.Dot(w, v) / floats.Sum(w)
}

// ScaleArmLength maps inches onto 0-99.
func ScaleArmLength(inches int) float64 {
	span := float64(fb.ArmLengthMax - fb.ArmLengthMin)
	scaled := float64(inches-fb.ArmLengthMin) / span * fb.MaxAttribute
	return math.Min(fb.MaxAttribute, math.Max(0, scaled))
}

func clampRating(v float64) int {
	return fb.ClampAttribute(int(v))
}
