package football

// Attribute names a trainable player attribute. Every trainable attribute
// carries a current value and a cap, both in [0,99].
type Attribute string

const (
	Speed              Attribute = "speed"
	Acceleration       Attribute = "acceleration"
	LateralQuickness   Attribute = "lateral_quickness"
	Vision             Attribute = "vision"
	LowerBodyStrength  Attribute = "lower_body_strength"
	UpperBodyStrength  Attribute = "upper_body_strength"
	VerticalJump       Attribute = "vertical_jump"
	BroadJump          Attribute = "broad_jump"
	KickPower          Attribute = "kick_power"
	ArmStrength        Attribute = "arm_strength"
	RunBlock           Attribute = "run_block"
	PassRush           Attribute = "pass_rush"
	PassProtection     Attribute = "pass_protection"
	Scrambling         Attribute = "scrambling"
	ShortAccuracy      Attribute = "short_accuracy"
	MidAccuracy        Attribute = "mid_accuracy"
	DeepAccuracy       Attribute = "deep_accuracy"
	ThrowUnderPressure Attribute = "throw_under_pressure"
	BallSecurity       Attribute = "ball_security"
	Catching           Attribute = "catching"
	RouteRunning       Attribute = "route_running"
	Tackling           Attribute = "tackling"
	Coverage           Attribute = "coverage"
	BlockShedding      Attribute = "block_shedding"
	Pursuit            Attribute = "pursuit"
	KickAccuracy       Attribute = "kick_accuracy"
	Familiarity        Attribute = "familiarity"

	// ArmLength is physical and measured in inches. It has no cap and is
	// never trained; it only appears in the position weight tables.
	ArmLength Attribute = "arm_length"
)

// TrainableAttributes lists every attribute that has a cap.
var TrainableAttributes = []Attribute{
	Speed, Acceleration, LateralQuickness, Vision,
	LowerBodyStrength, UpperBodyStrength,
	VerticalJump, BroadJump,
	KickPower, ArmStrength, RunBlock, PassRush, PassProtection, Scrambling,
	ShortAccuracy, MidAccuracy, DeepAccuracy, ThrowUnderPressure,
	BallSecurity, Catching, RouteRunning,
	Tackling, Coverage, BlockShedding, Pursuit,
	KickAccuracy, Familiarity,
}

const (
	MinAttribute = 0
	MaxAttribute = 99

	// ArmLengthMin and ArmLengthMax bound arm length in inches. The rating
	// model scales this range onto 0-99.
	ArmLengthMin = 28
	ArmLengthMax = 36

	// MinFrameHeight is the smallest height (inches) used as a divisor when
	// computing weight per inch.
	MinFrameHeight = 60
)

// athleticDefault covers attributes a freshly generated player usually
// rates low in; the game engine substitutes 30 when they are missing.
var athleticDefault = map[Attribute]bool{
	Speed: true, Acceleration: true, LateralQuickness: true, Vision: true,
	LowerBodyStrength: true, UpperBodyStrength: true,
	KickPower: true, ArmStrength: true, RunBlock: true, PassRush: true,
	PassProtection: true, Scrambling: true,
}

// Default is the documented value substituted when a snapshot has no entry
// for a. Athletic and technique attributes default to 30, everything else
// to 50. Arm length defaults to the middle of its inch range.
func (a Attribute) Default() int {
	if a == ArmLength {
		return (ArmLengthMin + ArmLengthMax) / 2
	}
	if athleticDefault[a] {
		return 30
	}
	return 50
}

// Trainable reports whether a has a cap.
func (a Attribute) Trainable() bool {
	for _, t := range TrainableAttributes {
		if t == a {
			return true
		}
	}
	return false
}

// ClampAttribute bounds v to [0,99].
func ClampAttribute(v int) int {
	if v < MinAttribute {
		return MinAttribute
	}
	if v > MaxAttribute {
		return MaxAttribute
	}
	return v
}
