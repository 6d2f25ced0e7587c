package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogger_Levels(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		dev      bool
		expected logrus.Level
	}{
		{"explicit", "warn", false, logrus.WarnLevel},
		{"upper case", "ERROR", false, logrus.ErrorLevel},
		{"dev default", "", true, logrus.DebugLevel},
		{"prod default", "", false, logrus.InfoLevel},
		{"invalid", "chatty", false, logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := InitLogger(tt.level, tt.dev)
			assert.Equal(t, tt.expected, log.GetLevel())
			assert.Same(t, log, GetLogger())
		})
	}
}

func TestInitLogger_ProductionUsesJSON(t *testing.T) {
	log := InitLogger("info", false)
	_, ok := log.Formatter.(*logrus.JSONFormatter)
	assert.True(t, ok)
}

func TestWithGame_Fields(t *testing.T) {
	log := InitLogger("info", false)
	var buf bytes.Buffer
	log.SetOutput(&buf)

	WithGame(0, 3, 4).Info("exhibition")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, float64(3), entry["home_team_id"])
	assert.Equal(t, float64(4), entry["away_team_id"])
	assert.NotContains(t, entry, "game_id")
	assert.Equal(t, "exhibition", entry["msg"])
}

func TestWithWeek_Fields(t *testing.T) {
	log := InitLogger("info", false)
	var buf bytes.Buffer
	log.SetOutput(&buf)

	WithWeek(2, 7).WithField("games", 5).Info("week simulated")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, float64(2), entry["season"])
	assert.Equal(t, float64(7), entry["week"])
	assert.Equal(t, float64(5), entry["games"])
}
