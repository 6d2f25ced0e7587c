package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var Logger *logrus.Logger

// InitLogger initializes the structured logger with proper configuration
func InitLogger(logLevel string, isDevelopment bool) *logrus.Logger {
	log := logrus.New()

	if logLevel == "" {
		if isDevelopment {
			logLevel = "debug"
		} else {
			logLevel = "info"
		}
	}

	if level, err := logrus.ParseLevel(strings.ToLower(logLevel)); err == nil {
		log.SetLevel(level)
	} else {
		log.SetLevel(logrus.InfoLevel)
		log.WithField("invalid_level", logLevel).Warn("Invalid LOG_LEVEL, using INFO")
	}

	if !isDevelopment || strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
			ForceColors:     true,
		})
	}

	log.SetOutput(os.Stdout)

	Logger = log

	return log
}

// GetLogger returns the global logger instance
func GetLogger() *logrus.Logger {
	if Logger == nil {
		return InitLogger("info", false)
	}
	return Logger
}

// WithService creates a logger with service context
func WithService(serviceName string) *logrus.Entry {
	return GetLogger().WithField("service", serviceName)
}

// WithRequestContext creates a logger with request context
func WithRequestContext(requestID, method, path string) *logrus.Entry {
	return GetLogger().WithFields(logrus.Fields{
		"request_id":  requestID,
		"http_method": method,
		"http_path":   path,
	})
}

// WithWeek creates a logger scoped to one simulated week
func WithWeek(season, week int) *logrus.Entry {
	return GetLogger().WithFields(logrus.Fields{
		"season": season,
		"week":   week,
	})
}

// WithGame creates a logger with matchup context. A zero game id is omitted
// so exhibitions log cleanly.
func WithGame(gameID, homeTeamID, awayTeamID uint) *logrus.Entry {
	fields := logrus.Fields{
		"home_team_id": homeTeamID,
		"away_team_id": awayTeamID,
	}
	if gameID != 0 {
		fields["game_id"] = gameID
	}
	return GetLogger().WithFields(fields)
}

// WithTeam creates a logger with team context
func WithTeam(teamID uint) *logrus.Entry {
	return GetLogger().WithField("team_id", teamID)
}
