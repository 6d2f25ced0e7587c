package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Setenv("ENV", "development")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 18, cfg.TotalWeeks)
	assert.Equal(t, 0.04, cfg.PartitionNoise)
	assert.Equal(t, 1.5, cfg.HomeFieldBonus)
	assert.Equal(t, 24*time.Hour, cfg.ResultCacheTTL)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:3000"}, cfg.CorsOrigins)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.UsesPostgres())
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	viper.Reset()
	t.Setenv("ENV", "production")
	t.Setenv("TOTAL_WEEKS", "10")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/gm?sslmode=disable")
	t.Setenv("AUTO_SIM_ENABLED", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.TotalWeeks)
	assert.True(t, cfg.IsProduction())
	assert.True(t, cfg.UsesPostgres())
	assert.True(t, cfg.AutoSimEnabled)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"ok", Config{TotalWeeks: 18, PartitionNoise: 0.04}, ""},
		{"no weeks", Config{TotalWeeks: 0}, "TOTAL_WEEKS must be positive, got 0"},
		{"negative noise", Config{TotalWeeks: 1, PartitionNoise: -1}, "PARTITION_NOISE must not be negative, got -1"},
		{"negative workers", Config{TotalWeeks: 1, DevelopmentWorkers: -2}, "DEVELOPMENT_WORKERS must not be negative, got -2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}
