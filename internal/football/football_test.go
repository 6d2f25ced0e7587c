package football

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePosition(t *testing.T) {
	pos, ok := ParsePosition(" olb ")
	assert.True(t, ok)
	assert.Equal(t, OLB, pos)

	pos, ok = ParsePosition("xx")
	assert.False(t, ok)
	assert.Equal(t, Position("XX"), pos)
}

func TestPositionUnits(t *testing.T) {
	assert.Equal(t, UnitOffense, TE.Unit())
	assert.Equal(t, UnitDefense, NT.Unit())
	assert.Equal(t, UnitSpecialTeams, LS.Unit())
	assert.Equal(t, UnitNone, Position("XX").Unit())
	assert.Equal(t, "special_teams", LS.Unit().String())

	assert.Len(t, AllPositions, len(OffensivePositions)+len(DefensivePositions)+len(SpecialTeamsPositions))
}

func TestPositionStarters(t *testing.T) {
	assert.Equal(t, 3, WR.Starters())
	assert.Equal(t, 2, CB.Starters())
	assert.Equal(t, 1, LS.Starters())
}

func TestAttributeDefaults(t *testing.T) {
	assert.Equal(t, 30, Speed.Default())
	assert.Equal(t, 50, Tackling.Default())
	assert.Equal(t, 32, ArmLength.Default())
	assert.True(t, Familiarity.Trainable())
	assert.False(t, ArmLength.Trainable())
}

func TestPlayerTraits(t *testing.T) {
	p := &Player{ID: 1}
	assert.Equal(t, 30, p.Value(Speed))
	assert.Equal(t, 50, p.ValueOr(Speed, 50))
	assert.False(t, p.Has(Speed))

	p.SetTrait(Speed, 120, 80)
	tr, ok := p.Trait(Speed)
	require.True(t, ok)
	assert.Equal(t, Trait{Current: 80, Cap: 80}, tr, "current is held at or below cap")

	p.SetTrait(Coverage, -4, 40)
	assert.Equal(t, 0, p.Value(Coverage))

	p.Traits[Vision] = Trait{Current: 44}
	assert.Equal(t, 44, p.CapOr(Vision, 50))
	assert.Equal(t, 50, p.CapOr(Catching, 50))
}

func TestPlayerArmLength(t *testing.T) {
	p := &Player{}
	assert.False(t, p.Has(ArmLength))
	assert.Equal(t, 32, p.Value(ArmLength))
	p.ArmLength = 35
	assert.Equal(t, 35, p.Value(ArmLength))
}

func TestPlayerClone(t *testing.T) {
	p := &Player{ID: 1}
	p.SetTrait(Speed, 40, 60)
	cp := p.Clone()
	cp.SetTrait(Speed, 55, 60)
	assert.Equal(t, 40, p.Value(Speed))
	assert.Equal(t, 55, cp.Value(Speed))
}

func TestRoster(t *testing.T) {
	players := []*Player{
		{ID: 1, Position: WR}, {ID: 2, Position: WR}, {ID: 3, Position: QB},
		{ID: 4, Position: Position("ZZ")}, {ID: 5, Position: Position("AA")},
	}
	r := NewRoster(players)

	assert.Equal(t, 5, r.Size())
	assert.Len(t, r.FormationStarters(WR), 2, "short roster returns what exists")
	assert.Equal(t, uint(3), r.Starter(QB).ID)
	assert.Nil(t, r.Starter(K))

	var ids []uint
	for _, p := range r.Players() {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []uint{3, 1, 2, 5, 4}, ids)
}

func TestPracticePlanNormalize(t *testing.T) {
	plan := PracticePlan{OffenseFocus: "  Pass_Game", DefenseFocus: ""}.Normalize()
	assert.Equal(t, "pass_game", plan.OffenseFocus)
	assert.Equal(t, DefaultFocus, plan.DefenseFocus)
}

func TestManagerValidate(t *testing.T) {
	m := Manager{Scouting: 50, DevelopingPotential: 60, InGameManagement: 99}
	assert.NoError(t, m.Validate())

	m.Prestige = 100
	assert.EqualError(t, m.Validate(), "prestige must be between 0 and 99, got 100")
}

func TestLevels(t *testing.T) {
	assert.Equal(t, 30, HighSchool.RosterSize())
	assert.Equal(t, 40, College.RosterSize())
	assert.Equal(t, 53, Professional.RosterSize())
	assert.Len(t, HighSchool.DivisionNames(), 10)

	lvl, ok := ParseLevel("College")
	assert.True(t, ok)
	assert.Equal(t, College, lvl)
	_, ok = ParseLevel("semi_pro")
	assert.False(t, ok)
}
