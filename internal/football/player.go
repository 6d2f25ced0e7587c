package football

// Trait is the current value and ceiling of one trainable attribute.
type Trait struct {
	Current int `json:"current"`
	Cap     int `json:"cap"`
}

// Player is a read-only attribute snapshot of one rostered player. Missing
// traits resolve to the attribute's documented default, so a zero Player is
// usable everywhere.
type Player struct {
	ID        uint                `json:"id"`
	TeamID    uint                `json:"team_id"`
	Name      string              `json:"name"`
	Position  Position            `json:"position"`
	ClassYear int                 `json:"class_year,omitempty"`
	Height    int                 `json:"height"`     // inches, 0 when unknown
	Weight    int                 `json:"weight"`     // pounds, 0 when unknown
	ArmLength int                 `json:"arm_length"` // inches, 0 when unknown
	Traits    map[Attribute]Trait `json:"traits"`
	Overall   int                 `json:"overall"`
	Potential int                 `json:"potential"`
}

// Has reports whether the snapshot carries a value for a.
func (p *Player) Has(a Attribute) bool {
	if a == ArmLength {
		return p.ArmLength > 0
	}
	_, ok := p.Traits[a]
	return ok
}

// Value returns the current value of a, or a.Default() when missing.
func (p *Player) Value(a Attribute) int {
	return p.ValueOr(a, a.Default())
}

// ValueOr returns the current value of a, or def when missing.
func (p *Player) ValueOr(a Attribute, def int) int {
	if a == ArmLength {
		if p.ArmLength > 0 {
			return p.ArmLength
		}
		return def
	}
	if t, ok := p.Traits[a]; ok {
		return t.Current
	}
	return def
}

// Float is Value as a float64, the form the rating formulas consume.
func (p *Player) Float(a Attribute) float64 {
	return float64(p.Value(a))
}

// CapOr returns the cap of a. A trait without a recorded cap falls back to
// its current value, and a missing trait to def.
func (p *Player) CapOr(a Attribute, def int) int {
	t, ok := p.Traits[a]
	if !ok {
		return def
	}
	if t.Cap == 0 && t.Current > 0 {
		return t.Current
	}
	return t.Cap
}

// Trait returns the stored trait for a and whether it exists.
func (p *Player) Trait(a Attribute) (Trait, bool) {
	t, ok := p.Traits[a]
	return t, ok
}

// SetTrait stores a trait, clamping both values to [0,99] and keeping
// current at or below cap.
func (p *Player) SetTrait(a Attribute, current, ceiling int) {
	if p.Traits == nil {
		p.Traits = make(map[Attribute]Trait)
	}
	ceiling = ClampAttribute(ceiling)
	current = ClampAttribute(current)
	if current > ceiling {
		current = ceiling
	}
	p.Traits[a] = Trait{Current: current, Cap: ceiling}
}

// Clone returns a deep copy so callers can derive updated snapshots without
// touching the original.
func (p *Player) Clone() *Player {
	cp := *p
	if p.Traits != nil {
		cp.Traits = make(map[Attribute]Trait, len(p.Traits))
		for a, t := range p.Traits {
			cp.Traits[a] = t
		}
	}
	return &cp
}
