package ratings

import fb "github.com/rhuselid/gmcareer/internal/football"

// Weight is one attribute's share of a position rating.
type Weight struct {
	Attr   fb.Attribute
	Weight float64
}

// PositionWeights defines which attributes matter at each position. Tables
// are ordered slices so the weighted sum is evaluated in the same order on
// every call; the sum is divided by the table total, so each table acts as
// a set of weights summing to 1.0.
var PositionWeights = map[fb.Position][]Weight{
	fb.QB: {
		{fb.ArmStrength, 0.18}, {fb.Vision, 0.14}, {fb.Scrambling, 0.12},
		{fb.ShortAccuracy, 0.10}, {fb.MidAccuracy, 0.10}, {fb.DeepAccuracy, 0.08},
		{fb.ThrowUnderPressure, 0.08}, {fb.Speed, 0.08}, {fb.Acceleration, 0.08},
		{fb.UpperBodyStrength, 0.04}, {fb.LowerBodyStrength, 0.04},
	},
	fb.RB: {
		{fb.Speed, 0.16}, {fb.Acceleration, 0.16}, {fb.Vision, 0.12},
		{fb.LowerBodyStrength, 0.12}, {fb.BallSecurity, 0.10}, {fb.Catching, 0.08},
		{fb.VerticalJump, 0.06}, {fb.LateralQuickness, 0.10}, {fb.UpperBodyStrength, 0.04},
	},
	fb.FB: {
		{fb.LowerBodyStrength, 0.20}, {fb.RunBlock, 0.20}, {fb.UpperBodyStrength, 0.14},
		{fb.BallSecurity, 0.08}, {fb.ArmLength, 0.06}, {fb.Speed, 0.10}, {fb.Vision, 0.10},
	},
	fb.WR: {
		{fb.Speed, 0.16}, {fb.Acceleration, 0.16}, {fb.Catching, 0.14},
		{fb.RouteRunning, 0.12}, {fb.LateralQuickness, 0.12}, {fb.Vision, 0.08},
		{fb.VerticalJump, 0.06}, {fb.UpperBodyStrength, 0.04}, {fb.LowerBodyStrength, 0.04},
	},
	fb.TE: {
		{fb.UpperBodyStrength, 0.14}, {fb.RunBlock, 0.14}, {fb.Catching, 0.14},
		{fb.RouteRunning, 0.08}, {fb.PassProtection, 0.08}, {fb.ArmLength, 0.06},
		{fb.Speed, 0.10}, {fb.Vision, 0.10}, {fb.LowerBodyStrength, 0.08},
	},
	fb.LT: {
		{fb.PassProtection, 0.22}, {fb.RunBlock, 0.22}, {fb.ArmLength, 0.14},
		{fb.LowerBodyStrength, 0.14}, {fb.UpperBodyStrength, 0.14},
	},
	fb.LG: {
		{fb.RunBlock, 0.22}, {fb.PassProtection, 0.22}, {fb.ArmLength, 0.14},
		{fb.LowerBodyStrength, 0.14}, {fb.UpperBodyStrength, 0.14},
	},
	fb.C: {
		{fb.RunBlock, 0.22}, {fb.PassProtection, 0.22}, {fb.ArmLength, 0.12},
		{fb.LowerBodyStrength, 0.12}, {fb.UpperBodyStrength, 0.12}, {fb.Vision, 0.08},
	},
	fb.RG: {
		{fb.RunBlock, 0.22}, {fb.PassProtection, 0.22}, {fb.ArmLength, 0.14},
		{fb.LowerBodyStrength, 0.14}, {fb.UpperBodyStrength, 0.14},
	},
	fb.RT: {
		{fb.PassProtection, 0.22}, {fb.RunBlock, 0.22}, {fb.ArmLength, 0.14},
		{fb.LowerBodyStrength, 0.14}, {fb.UpperBodyStrength, 0.14},
	},
	fb.DE: {
		{fb.PassRush, 0.18}, {fb.ArmLength, 0.12}, {fb.BlockShedding, 0.12},
		{fb.LowerBodyStrength, 0.14}, {fb.UpperBodyStrength, 0.14}, {fb.Speed, 0.10},
		{fb.Acceleration, 0.10},
	},
	fb.DT: {
		{fb.LowerBodyStrength, 0.16}, {fb.UpperBodyStrength, 0.16}, {fb.PassRush, 0.18},
		{fb.BlockShedding, 0.10}, {fb.Tackling, 0.10}, {fb.Pursuit, 0.10}, {fb.Vision, 0.08},
		{fb.ArmLength, 0.08},
	},
	fb.NT: {
		{fb.LowerBodyStrength, 0.28}, {fb.UpperBodyStrength, 0.22}, {fb.PassRush, 0.08},
		{fb.BlockShedding, 0.08}, {fb.Tackling, 0.12}, {fb.Pursuit, 0.10}, {fb.Vision, 0.06},
		{fb.ArmLength, 0.06},
	},
	fb.OLB: {
		{fb.Speed, 0.14}, {fb.PassRush, 0.14}, {fb.Tackling, 0.12}, {fb.BlockShedding, 0.10},
		{fb.Pursuit, 0.10}, {fb.LateralQuickness, 0.10}, {fb.LowerBodyStrength, 0.10},
		{fb.UpperBodyStrength, 0.10}, {fb.Vision, 0.06},
	},
	fb.ILB: {
		{fb.Vision, 0.16}, {fb.Tackling, 0.14}, {fb.Pursuit, 0.12}, {fb.BlockShedding, 0.10},
		{fb.LowerBodyStrength, 0.12}, {fb.UpperBodyStrength, 0.10}, {fb.Speed, 0.10},
		{fb.LateralQuickness, 0.10},
	},
	fb.CB: {
		{fb.Speed, 0.18}, {fb.Acceleration, 0.18}, {fb.Coverage, 0.16},
		{fb.LateralQuickness, 0.14}, {fb.Tackling, 0.08}, {fb.VerticalJump, 0.04},
		{fb.Vision, 0.06}, {fb.UpperBodyStrength, 0.04},
	},
	fb.S: {
		{fb.Speed, 0.14}, {fb.Vision, 0.14}, {fb.Coverage, 0.14}, {fb.Tackling, 0.12},
		{fb.Pursuit, 0.10}, {fb.LateralQuickness, 0.10}, {fb.VerticalJump, 0.04},
		{fb.UpperBodyStrength, 0.04}, {fb.LowerBodyStrength, 0.04},
	},
	fb.K: {
		{fb.KickPower, 0.36}, {fb.KickAccuracy, 0.32}, {fb.Speed, 0.16},
		{fb.Acceleration, 0.16},
	},
	fb.P: {
		{fb.KickPower, 0.32}, {fb.KickAccuracy, 0.28}, {fb.Speed, 0.20},
		{fb.Acceleration, 0.20},
	},
	fb.LS: {
		{fb.UpperBodyStrength, 0.18}, {fb.LowerBodyStrength, 0.18}, {fb.ArmStrength, 0.16},
		{fb.Vision, 0.16}, {fb.Tackling, 0.10}, {fb.LateralQuickness, 0.10}, {fb.Speed, 0.06},
		{fb.ArmLength, 0.06},
	},
}

// WPIRange is the acceptable weight-per-inch band (pounds per inch of
// height) for a position.
type WPIRange struct {
	Min float64
	Max float64
}

// PositionWPI lists the build-fit band per position.
var PositionWPI = map[fb.Position]WPIRange{
	fb.QB:  {2.2, 2.9},
	fb.RB:  {2.1, 2.7},
	fb.FB:  {2.7, 3.7},
	fb.WR:  {1.8, 2.5},
	fb.TE:  {2.5, 3.4},
	fb.LT:  {3.0, 4.3},
	fb.LG:  {3.0, 4.3},
	fb.C:   {2.9, 4.2},
	fb.RG:  {3.0, 4.3},
	fb.RT:  {3.0, 4.3},
	fb.DE:  {2.7, 3.6},
	fb.DT:  {3.0, 4.1},
	fb.NT:  {3.2, 4.5},
	fb.OLB: {2.3, 3.1},
	fb.ILB: {2.5, 3.3},
	fb.CB:  {1.8, 2.5},
	fb.S:   {1.9, 2.7},
	fb.K:   {1.9, 2.7},
	fb.P:   {1.9, 2.7},
	fb.LS:  {2.7, 3.7},
}
