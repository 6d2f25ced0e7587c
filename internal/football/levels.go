package football

import "strings"

// Level is the competition tier a league plays at.
type Level string

const (
	HighSchool   Level = "high_school"
	College      Level = "college"
	Professional Level = "professional"
)

// Slot is a roster count for one position.
type Slot struct {
	Position Position
	Count    int
}

var rosterSlots = map[Level][]Slot{
	HighSchool: {
		{QB, 2}, {RB, 2}, {FB, 1}, {WR, 3}, {TE, 2},
		{LT, 1}, {LG, 1}, {C, 1}, {RG, 1}, {RT, 1},
		{DE, 2}, {DT, 1}, {NT, 1}, {OLB, 2}, {ILB, 2}, {CB, 2}, {S, 2},
		{K, 1}, {P, 1}, {LS, 1},
	},
	College: {
		{QB, 3}, {RB, 3}, {FB, 1}, {WR, 4}, {TE, 2},
		{LT, 2}, {LG, 1}, {C, 2}, {RG, 1}, {RT, 2},
		{DE, 3}, {DT, 2}, {NT, 1}, {OLB, 3}, {ILB, 2}, {CB, 3}, {S, 2},
		{K, 1}, {P, 1}, {LS, 1},
	},
	Professional: {
		{QB, 3}, {RB, 4}, {FB, 1}, {WR, 6}, {TE, 3},
		{LT, 2}, {LG, 2}, {C, 2}, {RG, 2}, {RT, 2},
		{DE, 4}, {DT, 3}, {NT, 1}, {OLB, 4}, {ILB, 3}, {CB, 4}, {S, 4},
		{K, 1}, {P, 1}, {LS, 1},
	},
}

var divisionNames = map[Level][]string{
	HighSchool: {
		"Northeast", "Southeast", "Midwest", "Texas", "Great Plains",
		"Mountain West", "Pacific Northwest", "California", "Southwest", "Sun Belt",
	},
	College:      {"D1", "D2", "D3"},
	Professional: {"NFL"},
}

// ParseLevel accepts a level name in any case. Unknown names yield ok=false.
func ParseLevel(s string) (Level, bool) {
	l := Level(strings.ToLower(strings.TrimSpace(s)))
	_, ok := rosterSlots[l]
	return l, ok
}

// RosterSlots lists the per-position roster counts for l, in depth-chart
// display order. Unknown levels use the high-school layout.
func (l Level) RosterSlots() []Slot {
	if slots, ok := rosterSlots[l]; ok {
		return slots
	}
	return rosterSlots[HighSchool]
}

// RosterSize is the total roster count for l: 30, 40 or 53.
func (l Level) RosterSize() int {
	n := 0
	for _, s := range l.RosterSlots() {
		n += s.Count
	}
	return n
}

// DivisionNames lists the divisions a league at l is split into.
func (l Level) DivisionNames() []string {
	if names, ok := divisionNames[l]; ok {
		return names
	}
	return divisionNames[HighSchool]
}
