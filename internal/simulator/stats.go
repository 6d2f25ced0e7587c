package simulator

import (
	"fmt"

	fb "github.com/rhuselid/gmcareer/internal/football"
)

// PlayerGameStats is one player's box-score line for one game.
type PlayerGameStats struct {
	PlayerID uint        `json:"player_id"`
	TeamID   uint        `json:"team_id"`
	Name     string      `json:"name"`
	Position fb.Position `json:"position"`

	PassAttempts        int `json:"pass_attempts"`
	PassCompletions     int `json:"pass_completions"`
	PassYards           int `json:"pass_yards"`
	PassTouchdowns      int `json:"pass_touchdowns"`
	InterceptionsThrown int `json:"interceptions_thrown"`
	SacksTaken          int `json:"sacks_taken"`

	RushAttempts   int `json:"rush_attempts"`
	RushYards      int `json:"rush_yards"`
	RushTouchdowns int `json:"rush_touchdowns"`
	FumblesLost    int `json:"fumbles_lost"`

	Targets             int `json:"targets"`
	Receptions          int `json:"receptions"`
	ReceivingYards      int `json:"receiving_yards"`
	ReceivingTouchdowns int `json:"receiving_touchdowns"`

	Tackles          int     `json:"tackles"`
	Sacks            float64 `json:"sacks"`
	TacklesForLoss   int     `json:"tackles_for_loss"`
	Interceptions    int     `json:"interceptions"`
	PassDeflections  int     `json:"pass_deflections"`
	ForcedFumbles    int     `json:"forced_fumbles"`
	FumbleRecoveries int     `json:"fumble_recoveries"`

	FGAttempts int `json:"fg_attempts"`
	FGMade     int `json:"fg_made"`
	XPAttempts int `json:"xp_attempts"`
	XPMade     int `json:"xp_made"`

	Punts     int `json:"punts"`
	PuntYards int `json:"punt_yards"`

	DefensiveTouchdowns int `json:"defensive_touchdowns"`
}

// Add accumulates every counting field of o into s.
func (s *PlayerGameStats) Add(o PlayerGameStats) {
	s.PassAttempts += o.PassAttempts
	s.PassCompletions += o.PassCompletions
	s.PassYards += o.PassYards
	s.PassTouchdowns += o.PassTouchdowns
	s.InterceptionsThrown += o.InterceptionsThrown
	s.SacksTaken += o.SacksTaken

	s.RushAttempts += o.RushAttempts
	s.RushYards += o.RushYards
	s.RushTouchdowns += o.RushTouchdowns
	s.FumblesLost += o.FumblesLost

	s.Targets += o.Targets
	s.Receptions += o.Receptions
	s.ReceivingYards += o.ReceivingYards
	s.ReceivingTouchdowns += o.ReceivingTouchdowns

	s.Tackles += o.Tackles
	s.Sacks += o.Sacks
	s.TacklesForLoss += o.TacklesForLoss
	s.Interceptions += o.Interceptions
	s.PassDeflections += o.PassDeflections
	s.ForcedFumbles += o.ForcedFumbles
	s.FumbleRecoveries += o.FumbleRecoveries

	s.FGAttempts += o.FGAttempts
	s.FGMade += o.FGMade
	s.XPAttempts += o.XPAttempts
	s.XPMade += o.XPMade

	s.Punts += o.Punts
	s.PuntYards += o.PuntYards

	s.DefensiveTouchdowns += o.DefensiveTouchdowns
}

// statBook hands out one line per player and remembers first-appearance
// order so output never depends on map iteration.
type statBook struct {
	lines map[uint]*PlayerGameStats
	order []uint
}

func newStatBook() *statBook {
	return &statBook{lines: make(map[uint]*PlayerGameStats)}
}

func (b *statBook) line(p *fb.Player) *PlayerGameStats {
	if s, ok := b.lines[p.ID]; ok {
		return s
	}
	name := p.Name
	if name == "" {
		name = fmt.Sprintf("Player #%d", p.ID)
	}
	s := &PlayerGameStats{PlayerID: p.ID, TeamID: p.TeamID, Name: name, Position: p.Position}
	b.lines[p.ID] = s
	b.order = append(b.order, p.ID)
	return s
}

// merge folds a finished line into the book, summing with any existing line
// for the same player.
func (b *statBook) merge(s PlayerGameStats) {
	if existing, ok := b.lines[s.PlayerID]; ok {
		existing.Add(s)
		return
	}
	cp := s
	b.lines[s.PlayerID] = &cp
	b.order = append(b.order, s.PlayerID)
}

func (b *statBook) list() []PlayerGameStats {
	out := make([]PlayerGameStats, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, *b.lines[id])
	}
	return out
}
