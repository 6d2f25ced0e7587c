// Package development advances player attributes toward their caps under a
// team's weekly practice plan.
package development

import (
	"context"
	"math"
	"runtime"
	"sort"
	"sync"

	fb "github.com/rhuselid/gmcareer/internal/football"
	"github.com/rhuselid/gmcareer/internal/ratings"
)

// BaseRate is the weekly gain for a full 99 points of headroom before the
// manager, facility and drill multipliers.
const BaseRate = 3.0

// TeamInput is everything one team's week of practice depends on.
type TeamInput struct {
	TeamID              uint
	Season              int
	Week                int
	FacilityGrade       int
	DevelopingPotential int
	Plan                fb.PracticePlan
	Players             []*fb.Player
}

// AttributeChange is the new current value of one attribute.
type AttributeChange struct {
	Attr    fb.Attribute `json:"attribute"`
	Current int          `json:"current"`
}

// PlayerUpdate is the set of changes for one player plus refreshed ratings.
type PlayerUpdate struct {
	PlayerID  uint              `json:"player_id"`
	Changes   []AttributeChange `json:"changes"`
	Overall   int               `json:"overall"`
	Potential int               `json:"potential"`
}

// LogEntry records one applied attribute gain.
type LogEntry struct {
	PlayerID  uint         `json:"player_id"`
	Season    int          `json:"season"`
	Week      int          `json:"week"`
	Attribute fb.Attribute `json:"attribute"`
	Delta     int          `json:"delta"`
}

// Summary condenses one player's week.
type Summary struct {
	PlayerID          uint `json:"player_id"`
	AttributesChanged int  `json:"attributes_changed"`
	TotalGain         int  `json:"total_gain"`
}

// TeamOutcome is the full result of one team's week. Nothing is applied;
// the caller persists Updates and Log atomically.
type TeamOutcome struct {
	TeamID    uint           `json:"team_id"`
	Updates   []PlayerUpdate `json:"updates"`
	Log       []LogEntry     `json:"log"`
	Summaries []Summary      `json:"summaries"`
}

// ManagerFactor maps developing_potential 0-99 onto 0.7-1.294.
func ManagerFactor(developingPotential int) float64 {
	return 0.7 + 0.006*float64(fb.ClampAttribute(developingPotential))
}

// FacilityFactor maps facility grade 0-99 onto 0.8-1.196.
func FacilityFactor(grade int) float64 {
	return 0.8 + 0.004*float64(fb.ClampAttribute(grade))
}

// Gain is the attribute increase for one drill. A positive gain that would
// round to zero becomes 1, and the result never passes the cap.
func Gain(current, ceiling int, managerFactor, facilityFactor, rate float64) int {
	headroom := ceiling - current
	if headroom <= 0 {
		return 0
	}
	raw := BaseRate * (float64(headroom) / fb.MaxAttribute) * managerFactor * facilityFactor * rate
	delta := int(math.Round(raw))
	if delta <= 0 && raw > 0 {
		delta = 1
	}
	if delta <= 0 {
		return 0
	}
	return min(delta, headroom)
}

// DevelopTeam runs one week of practice for a team. Special-teams players
// do not take part in unit practice. The input players are not modified.
func DevelopTeam(in TeamInput) TeamOutcome {
	out := TeamOutcome{TeamID: in.TeamID}
	plan := in.Plan.Normalize()
	mgr := ManagerFactor(in.DevelopingPotential)
	fac := FacilityFactor(in.FacilityGrade)

	for _, player := range in.Players {
		var focus string
		switch player.Position.Unit() {
		case fb.UnitOffense:
			focus = plan.OffenseFocus
		case fb.UnitDefense:
			focus = plan.DefenseFocus
		default:
			continue
		}

		drills := DrillsFor(player.Position, focus)
		if len(drills) == 0 {
			continue
		}

		p := player.Clone()
		update := PlayerUpdate{PlayerID: p.ID}
		summary := Summary{PlayerID: p.ID}
		for _, d := range drills {
			t, ok := p.Trait(d.Attr)
			if !ok {
				continue
			}
			delta := Gain(t.Current, t.Cap, mgr, fac, d.Rate)
			if delta == 0 {
				continue
			}
			p.SetTrait(d.Attr, t.Current+delta, t.Cap)
			applied := p.Value(d.Attr) - t.Current
			if applied <= 0 {
				continue
			}
			update.Changes = append(update.Changes, AttributeChange{Attr: d.Attr, Current: p.Value(d.Attr)})
			out.Log = append(out.Log, LogEntry{
				PlayerID:  p.ID,
				Season:    in.Season,
				Week:      in.Week,
				Attribute: d.Attr,
				Delta:     applied,
			})
			summary.AttributesChanged++
			summary.TotalGain += applied
		}
		if len(update.Changes) == 0 {
			continue
		}

		ratings.Recompute(p)
		update.Overall = p.Overall
		update.Potential = p.Potential
		out.Updates = append(out.Updates, update)
		out.Summaries = append(out.Summaries, summary)
	}
	return out
}

// Apply writes the update onto p and returns it. Changes for attributes
// the player does not carry are ignored.
func (u PlayerUpdate) Apply(p *fb.Player) *fb.Player {
	for _, c := range u.Changes {
		if t, ok := p.Trait(c.Attr); ok {
			p.SetTrait(c.Attr, c.Current, t.Cap)
		}
	}
	p.Overall = u.Overall
	p.Potential = u.Potential
	return p
}

// DevelopLeague develops every team concurrently on a bounded worker pool.
// Teams share no state, so the outcome does not depend on scheduling; it is
// returned ordered by team id.
func DevelopLeague(ctx context.Context, teams []TeamInput, workers int) ([]TeamOutcome, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(teams) {
		workers = len(teams)
	}

	jobs := make(chan int, len(teams))
	results := make([]TeamOutcome, len(teams))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				if ctx.Err() != nil {
					continue
				}
				results[i] = DevelopTeam(teams[i])
			}
		}()
	}

	for i := range teams {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(a, b int) bool {
		return results[a].TeamID < results[b].TeamID
	})
	return results, nil
}
