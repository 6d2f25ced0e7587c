package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	fb "github.com/rhuselid/gmcareer/internal/football"
	"github.com/rhuselid/gmcareer/internal/league"
	"github.com/rhuselid/gmcareer/internal/models"
	"github.com/rhuselid/gmcareer/internal/store"
	"github.com/rhuselid/gmcareer/pkg/config"
	"github.com/rhuselid/gmcareer/pkg/database"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: migrate [up|down|seed] [flags]")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewConnection(cfg.DatabaseURL, cfg.IsDevelopment())
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	st := store.New(db.DB)

	switch command := os.Args[1]; command {
	case "up":
		if err := st.Migrate(); err != nil {
			logrus.Fatalf("Failed to run migrations: %v", err)
		}
		logrus.Info("Migrations completed successfully")

	case "down":
		if err := dropTables(db); err != nil {
			logrus.Fatalf("Failed to drop tables: %v", err)
		}
		logrus.Info("Tables dropped successfully")

	case "seed":
		if err := st.Migrate(); err != nil {
			logrus.Fatalf("Failed to run migrations: %v", err)
		}
		summary, err := seed(st, os.Args[2:])
		if err != nil {
			logrus.Fatalf("Failed to seed data: %v", err)
		}
		logrus.WithFields(logrus.Fields{
			"divisions": summary.Divisions,
			"teams":     summary.Teams,
			"players":   summary.Players,
			"games":     summary.Games,
			"weeks":     summary.Weeks,
		}).Info("Data seeded successfully")
		if summary.Weeks != cfg.TotalWeeks {
			logrus.Warnf("Schedule has %d weeks but TOTAL_WEEKS is %d", summary.Weeks, cfg.TotalWeeks)
		}

	default:
		log.Fatalf("Unknown command: %s", command)
	}
}

func dropTables(db *database.DB) error {
	all := models.All()
	for i := len(all) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(all[i]); err != nil {
			return fmt.Errorf("failed to drop %T: %w", all[i], err)
		}
	}
	return nil
}

func seed(st *store.Store, args []string) (*league.SeedSummary, error) {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)
	levels := fs.String("levels", string(fb.HighSchool), "comma-separated levels: high_school, college, professional")
	divisions := fs.Int("divisions", 0, "divisions per level (0 = all)")
	teams := fs.Int("teams", 10, "teams per division")
	rngSeed := fs.Int64("seed", 0, "generator seed (0 = clock)")
	managerName := fs.String("manager", "", "create a manager with this name on the first team")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	opts := league.SeedOptions{
		DivisionsPerLevel: *divisions,
		TeamsPerDivision:  *teams,
		Season:            1,
	}
	for _, name := range strings.Split(*levels, ",") {
		level, ok := fb.ParseLevel(name)
		if !ok {
			return nil, fmt.Errorf("unknown level %q", name)
		}
		opts.Levels = append(opts.Levels, level)
	}
	if *managerName != "" {
		opts.Manager = &models.Manager{
			Name:                *managerName,
			Scouting:            50,
			DevelopingPotential: 50,
			UnlockingPotential:  50,
			ConvincingPlayers:   50,
			InGameManagement:    50,
			Prestige:            50,
		}
	}

	if *rngSeed == 0 {
		*rngSeed = time.Now().UnixNano()
	}
	logrus.WithField("seed", *rngSeed).Info("Seeding league")
	return league.SeedLeague(context.Background(), st, rand.New(rand.NewSource(*rngSeed)), opts)
}
