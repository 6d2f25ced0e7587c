package football

import "strings"

// Position is a depth-chart position code such as "QB" or "OLB".
type Position string

const (
	QB  Position = "QB"
	RB  Position = "RB"
	FB  Position = "FB"
	WR  Position = "WR"
	TE  Position = "TE"
	LT  Position = "LT"
	LG  Position = "LG"
	C   Position = "C"
	RG  Position = "RG"
	RT  Position = "RT"
	DE  Position = "DE"
	DT  Position = "DT"
	NT  Position = "NT"
	OLB Position = "OLB"
	ILB Position = "ILB"
	CB  Position = "CB"
	S   Position = "S"
	K   Position = "K"
	P   Position = "P"
	LS  Position = "LS"
)

// Unit is the side of the ball a position practices and plays with.
type Unit int

const (
	UnitNone Unit = iota
	UnitOffense
	UnitDefense
	UnitSpecialTeams
)

func (u Unit) String() string {
	switch u {
	case UnitOffense:
		return "offense"
	case UnitDefense:
		return "defense"
	case UnitSpecialTeams:
		return "special_teams"
	default:
		return "none"
	}
}

// AllPositions lists every position in depth-chart display order.
var AllPositions = []Position{
	QB, RB, FB, WR, TE,
	LT, LG, C, RG, RT,
	DE, DT, NT, OLB, ILB, CB, S,
	K, P, LS,
}

// Position groups used by the unit aggregator and the development tables.
var (
	OffensivePositions    = []Position{QB, RB, FB, WR, TE, LT, LG, C, RG, RT}
	DefensivePositions    = []Position{DE, DT, NT, OLB, ILB, CB, S}
	SpecialTeamsPositions = []Position{K, P, LS}

	OffensiveLine  = []Position{LT, LG, C, RG, RT}
	DefensiveLine  = []Position{DE, DT, NT}
	Linebackers    = []Position{OLB, ILB}
	DefensiveBacks = []Position{CB, S}
)

// StartersCount is the formation requirement per position: 1 QB, 1 RB,
// 3 WR, 1 TE and five linemen on offense; a 4-3 with two safeties on defense.
var StartersCount = map[Position]int{
	QB: 1, RB: 1, WR: 3, TE: 1,
	LT: 1, LG: 1, C: 1, RG: 1, RT: 1,
	DE: 2, DT: 1, NT: 1, OLB: 2, ILB: 1, CB: 2, S: 2,
	K: 1, P: 1,
}

// ParsePosition normalizes a position code. Unknown codes are returned
// upper-cased with ok=false.
func ParsePosition(s string) (Position, bool) {
	p := Position(strings.ToUpper(strings.TrimSpace(s)))
	return p, p.Valid()
}

// Valid reports whether p is one of the known positions.
func (p Position) Valid() bool {
	for _, known := range AllPositions {
		if p == known {
			return true
		}
	}
	return false
}

// Unit returns the side of the ball for p.
func (p Position) Unit() Unit {
	switch {
	case In(p, OffensivePositions):
		return UnitOffense
	case In(p, DefensivePositions):
		return UnitDefense
	case In(p, SpecialTeamsPositions):
		return UnitSpecialTeams
	default:
		return UnitNone
	}
}

// Starters returns the formation starter count for p, 1 when p has no entry.
func (p Position) Starters() int {
	if n, ok := StartersCount[p]; ok {
		return n
	}
	return 1
}

// In reports whether p is contained in group.
func In(p Position, group []Position) bool {
	for _, g := range group {
		if g == p {
			return true
		}
	}
	return false
}
