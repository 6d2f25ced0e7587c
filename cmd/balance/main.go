// Command balance plays many seeded games between two identical-attribute
// rosters and reports the spread of margins and yardage.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"

	fb "github.com/rhuselid/gmcareer/internal/football"
	"github.com/rhuselid/gmcareer/internal/generation"
	"github.com/rhuselid/gmcareer/internal/simulator"
)

func main() {
	games := flag.Int("games", 500, "number of games to play")
	homeValue := flag.Int("home", 50, "attribute value for every home player")
	awayValue := flag.Int("away", 50, "attribute value for every away player")
	seed := flag.Int64("seed", 1, "seed of the first game; games use consecutive seeds")
	noise := flag.Float64("noise", simulator.DefaultPartitionNoise, "partition noise")
	homeBonus := flag.Float64("home-bonus", simulator.HomeFieldBonus, "home field bonus")
	flag.Parse()

	if *games < 2 {
		logrus.Fatal("need at least 2 games")
	}

	home := fb.NewRoster(generation.UniformRoster(1, 1, *homeValue))
	away := fb.NewRoster(generation.UniformRoster(2, 1001, *awayValue))
	tuning := simulator.Tuning{HomeFieldBonus: *homeBonus, PartitionNoise: *noise}

	report := Run(home, away, tuning, *seed, *games)
	report.Print(os.Stdout)
}

// Report summarizes a batch of games.
type Report struct {
	Games    int
	HomeWins int
	AwayWins int
	Ties     int
	Series   map[string][]float64
}

var seriesOrder = []string{"margin", "home_score", "away_score", "home_yards", "away_yards", "home_turnovers", "away_turnovers"}

// Run plays n games with seeds first, first+1, ...
func Run(home, away fb.Roster, tuning simulator.Tuning, first int64, n int) Report {
	r := Report{Games: n, Series: map[string][]float64{}}
	for i := 0; i < n; i++ {
		result := simulator.SimulateGame(simulator.GameInput{
			HomeTeamID: 1,
			AwayTeamID: 2,
			Home:       home,
			Away:       away,
			Seed:       first + int64(i),
			Tuning:     &tuning,
		})
		switch result.Winner() {
		case 1:
			r.HomeWins++
		case 2:
			r.AwayWins++
		default:
			r.Ties++
		}
		r.add("margin", result.Home.Score-result.Away.Score)
		r.add("home_score", result.Home.Score)
		r.add("away_score", result.Away.Score)
		r.add("home_yards", result.Home.TotalYards)
		r.add("away_yards", result.Away.TotalYards)
		r.add("home_turnovers", result.Home.Turnovers)
		r.add("away_turnovers", result.Away.Turnovers)
	}
	return r
}

func (r *Report) add(name string, v int) {
	r.Series[name] = append(r.Series[name], float64(v))
}

func (r Report) Print(out io.Writer) {
	w := tabwriter.NewWriter(out, 0, 2, 2, ' ', 0)
	fmt.Fprintf(w, "games\t%d\n", r.Games)
	fmt.Fprintf(w, "home/away/ties\t%d/%d/%d\n\n", r.HomeWins, r.AwayWins, r.Ties)
	fmt.Fprintln(w, "stat\tmean\tstddev")
	for _, name := range seriesOrder {
		mean, std := stat.MeanStdDev(r.Series[name], nil)
		fmt.Fprintf(w, "%s\t%.2f\t%.2f\n", name, mean, std)
	}
	w.Flush()
}
