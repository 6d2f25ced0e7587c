package football

import (
	"fmt"
	"sort"
	"strings"
)

// Roster groups a team's players by position. Each slice is in depth-chart
// order, so the first n entries are that position's starters.
type Roster map[Position][]*Player

// NewRoster groups players by position, preserving the order of players
// within each position.
func NewRoster(players []*Player) Roster {
	r := make(Roster)
	for _, p := range players {
		r[p.Position] = append(r[p.Position], p)
	}
	return r
}

// Starters returns the top n players at pos, or fewer if the roster is short.
func (r Roster) Starters(pos Position, n int) []*Player {
	group := r[pos]
	if n > len(group) {
		n = len(group)
	}
	return group[:n]
}

// FormationStarters returns the formation-count starters at pos.
func (r Roster) FormationStarters(pos Position) []*Player {
	return r.Starters(pos, pos.Starters())
}

// Starter returns the first player at pos, or nil.
func (r Roster) Starter(pos Position) *Player {
	if group := r[pos]; len(group) > 0 {
		return group[0]
	}
	return nil
}

// Players flattens the roster in AllPositions order, followed by any players
// listed under unknown position codes sorted by code.
func (r Roster) Players() []*Player {
	var out []*Player
	for _, pos := range AllPositions {
		out = append(out, r[pos]...)
	}
	var extra []string
	for pos := range r {
		if !pos.Valid() {
			extra = append(extra, string(pos))
		}
	}
	sort.Strings(extra)
	for _, pos := range extra {
		out = append(out, r[Position(pos)]...)
	}
	return out
}

// Size is the number of rostered players.
func (r Roster) Size() int {
	n := 0
	for _, group := range r {
		n += len(group)
	}
	return n
}

// PracticePlan is one team's practice focus for a week, one key per unit.
type PracticePlan struct {
	OffenseFocus string `json:"offense_focus"`
	DefenseFocus string `json:"defense_focus"`
}

// DefaultFocus is used for a unit whose focus is absent or unrecognized.
const DefaultFocus = "balanced"

// Normalize lower-cases and trims both keys and fills blanks with the
// default focus. Unknown keys are left for the development tables to reject.
func (pp PracticePlan) Normalize() PracticePlan {
	return PracticePlan{
		OffenseFocus: normalizeFocus(pp.OffenseFocus),
		DefenseFocus: normalizeFocus(pp.DefenseFocus),
	}
}

func normalizeFocus(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultFocus
	}
	return s
}

// Manager holds the general manager's skill scalars, all in [0,99].
type Manager struct {
	ID                  uint   `json:"id"`
	Name                string `json:"name"`
	Scouting            int    `json:"scouting"`
	DevelopingPotential int    `json:"developing_potential"`
	UnlockingPotential  int    `json:"unlocking_potential"`
	ConvincingPlayers   int    `json:"convincing_players"`
	InGameManagement    int    `json:"in_game_management"`
	Prestige            int    `json:"prestige"`
}

// Validate checks that every skill lies in [0,99].
func (m Manager) Validate() error {
	skills := map[string]int{
		"scouting":             m.Scouting,
		"developing_potential": m.DevelopingPotential,
		"unlocking_potential":  m.UnlockingPotential,
		"convincing_players":   m.ConvincingPlayers,
		"in_game_management":   m.InGameManagement,
		"prestige":             m.Prestige,
	}
	for _, name := range []string{"scouting", "developing_potential", "unlocking_potential", "convincing_players", "in_game_management", "prestige"} {
		if v := skills[name]; v < MinAttribute || v > MaxAttribute {
			return fmt.Errorf("%s must be between %d and %d, got %d", name, MinAttribute, MaxAttribute, v)
		}
	}
	return nil
}
