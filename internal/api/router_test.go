package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	fb "github.com/rhuselid/gmcareer/internal/football"
	"github.com/rhuselid/gmcareer/internal/league"
	"github.com/rhuselid/gmcareer/internal/models"
	"github.com/rhuselid/gmcareer/internal/services"
	"github.com/rhuselid/gmcareer/internal/simulator"
	"github.com/rhuselid/gmcareer/internal/store"
	"github.com/rhuselid/gmcareer/pkg/config"
	"github.com/rhuselid/gmcareer/pkg/database"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type RouterTestSuite struct {
	suite.Suite
	ctx    context.Context
	cfg    *config.Config
	db     *database.DB
	store  *store.Store
	svc    *league.Service
	router *gin.Engine
	log    *logrus.Logger
	teams  []models.Team
}

func (s *RouterTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.ctx = context.Background()

	db, err := database.NewConnection(":memory:", false)
	s.Require().NoError(err)
	s.db = db
	s.store = store.New(db.DB)
	s.Require().NoError(s.store.Migrate())
	_, err = league.SeedLeague(s.ctx, s.store, rand.New(rand.NewSource(3)), league.SeedOptions{
		Levels:            []fb.Level{fb.HighSchool},
		DivisionsPerLevel: 1,
		TeamsPerDivision:  4,
	})
	s.Require().NoError(err)
	s.teams, err = s.store.ListTeams(s.ctx)
	s.Require().NoError(err)

	s.log = logrus.New()
	s.log.SetOutput(io.Discard)

	s.cfg = &config.Config{Env: "test"}
	s.svc = league.NewService(s.store, league.Options{
		Tuning:     simulator.DefaultTuning,
		TotalWeeks: 6,
		Seed:       5,
		Cache:      services.NewCacheService(nil),
	}, s.log)
	s.router = NewRouter(Dependencies{Config: s.cfg, League: s.svc, DB: db, Logger: s.log})
}

func (s *RouterTestSuite) do(method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func (s *RouterTestSuite) TestHealth() {
	w, _ := s.do(http.MethodGet, "/api/v1/health", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"database":"ok"`)
	s.NotEmpty(w.Header().Get("X-Request-ID"))
}

func (s *RouterTestSuite) TestRequestIDIsEchoed() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/season/state", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	s.Equal("abc-123", w.Header().Get("X-Request-ID"))
}

func (s *RouterTestSuite) TestGetTeam() {
	tests := []struct {
		name string
		path string
		code int
	}{
		{"found", "/api/v1/teams/1", http.StatusOK},
		{"bad id", "/api/v1/teams/abc", http.StatusBadRequest},
		{"zero id", "/api/v1/teams/0", http.StatusBadRequest},
		{"missing", "/api/v1/teams/999", http.StatusNotFound},
		{"roster", "/api/v1/teams/1/roster", http.StatusOK},
		{"roster missing", "/api/v1/teams/999/roster", http.StatusNotFound},
		{"record", "/api/v1/teams/1/record", http.StatusOK},
		{"schedule", "/api/v1/teams/1/schedule", http.StatusOK},
		{"standings", "/api/v1/divisions/1/standings", http.StatusOK},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			w, _ := s.do(http.MethodGet, tt.path, nil)
			s.Equal(tt.code, w.Code, w.Body.String())
		})
	}
}

func (s *RouterTestSuite) TestGetRoster() {
	w, env := s.do(http.MethodGet, "/api/v1/teams/1/roster", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var players []models.Player
	s.Require().NoError(json.Unmarshal(env.Data, &players))
	s.Len(players, fb.HighSchool.RosterSize())
}

func (s *RouterTestSuite) TestPracticePlan() {
	w, env := s.do(http.MethodPut, "/api/v1/teams/1/practice-plan", gin.H{"offense_focus": "run_game", "defense_focus": "takeaways"})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var plan fb.PracticePlan
	s.Require().NoError(json.Unmarshal(env.Data, &plan))
	s.Equal("run_game", plan.OffenseFocus)

	w, env = s.do(http.MethodPut, "/api/v1/teams/1/practice-plan", gin.H{"offense_focus": "hail_mary"})
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("VALIDATION_ERROR", env.Error.Code)

	w, _ = s.do(http.MethodGet, "/api/v1/teams/1/practice-plan", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "takeaways")
}

func (s *RouterTestSuite) TestSimulateWeekAndGame() {
	w, env := s.do(http.MethodPost, "/api/v1/season/sim-week", nil)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var report league.WeekReport
	s.Require().NoError(json.Unmarshal(env.Data, &report))
	s.Equal(1, report.Week)
	s.Require().Len(report.Games, 2)

	w, env = s.do(http.MethodGet, "/api/v1/games/"+itoa(report.Games[0].GameID), nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var game struct {
		Week int                      `json:"week"`
		Home simulator.TeamGameResult `json:"home"`
	}
	s.Require().NoError(json.Unmarshal(env.Data, &game))
	s.Equal(1, game.Week)
	s.Equal(report.Games[0].HomeScore, game.Home.Score)

	w, _ = s.do(http.MethodGet, "/api/v1/games/999", nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *RouterTestSuite) TestSimulateAll_ThenSeasonComplete() {
	w, env := s.do(http.MethodPost, "/api/v1/season/sim-all", nil)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var body struct {
		WeeksSimulated int `json:"weeks_simulated"`
	}
	s.Require().NoError(json.Unmarshal(env.Data, &body))
	s.Equal(6, body.WeeksSimulated)

	w, env = s.do(http.MethodPost, "/api/v1/season/sim-week", nil)
	s.Equal(http.StatusConflict, w.Code)
	s.Equal("SEASON_COMPLETE", env.Error.Code)

	w, env = s.do(http.MethodGet, "/api/v1/season/state", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Contains(string(env.Data), models.PhaseOffseason)
}

func (s *RouterTestSuite) TestExhibition() {
	req := gin.H{"home_team_id": s.teams[0].ID, "away_team_id": s.teams[1].ID, "seed": 77}
	w, first := s.do(http.MethodPost, "/api/v1/games/exhibition", req)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	_, second := s.do(http.MethodPost, "/api/v1/games/exhibition", req)
	s.JSONEq(string(first.Data), string(second.Data))

	w, _ = s.do(http.MethodPost, "/api/v1/games/exhibition", gin.H{"home_team_id": 1, "away_team_id": 1})
	s.Equal(http.StatusBadRequest, w.Code)
	w, _ = s.do(http.MethodPost, "/api/v1/games/exhibition", gin.H{"home_team_id": 1})
	s.Equal(http.StatusBadRequest, w.Code)
	w, _ = s.do(http.MethodPost, "/api/v1/games/exhibition", gin.H{"home_team_id": 1, "away_team_id": 404})
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *RouterTestSuite) TestPlayerRoutes() {
	roster, err := s.store.TeamRoster(s.ctx, s.teams[0].ID)
	s.Require().NoError(err)
	id := itoa(roster[0].ID)

	w, _ := s.do(http.MethodGet, "/api/v1/players/"+id, nil)
	s.Equal(http.StatusOK, w.Code)

	w, env := s.do(http.MethodGet, "/api/v1/players/"+id+"/position-fit", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var fits []map[string]interface{}
	s.Require().NoError(json.Unmarshal(env.Data, &fits))
	s.Len(fits, len(fb.AllPositions))

	_, _ = s.do(http.MethodPost, "/api/v1/season/sim-week", nil)
	w, _ = s.do(http.MethodGet, "/api/v1/players/"+id+"/development?limit=10", nil)
	s.Equal(http.StatusOK, w.Code)

	w, _ = s.do(http.MethodGet, "/api/v1/players/"+id+"/development?limit=0", nil)
	s.Equal(http.StatusBadRequest, w.Code)
	w, _ = s.do(http.MethodGet, "/api/v1/players/999999/development", nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *RouterTestSuite) TestSimulationRateLimit() {
	s.cfg.APIRateLimit = 0.001
	s.cfg.APIRateBurst = 1
	s.router = NewRouter(Dependencies{Config: s.cfg, League: s.svc, DB: s.db, Logger: s.log})

	req := gin.H{"home_team_id": s.teams[0].ID, "away_team_id": s.teams[1].ID}
	w, _ := s.do(http.MethodPost, "/api/v1/games/exhibition", req)
	s.Equal(http.StatusOK, w.Code)
	w, env := s.do(http.MethodPost, "/api/v1/games/exhibition", req)
	s.Equal(http.StatusTooManyRequests, w.Code)
	s.Equal("RATE_LIMITED", env.Error.Code)

	w, _ = s.do(http.MethodGet, "/api/v1/season/state", nil)
	s.Equal(http.StatusOK, w.Code, "reads are not throttled")
}

func (s *RouterTestSuite) TestCORSPreflight() {
	s.cfg.CorsOrigins = []string{"http://localhost:3000"}
	s.router = NewRouter(Dependencies{Config: s.cfg, League: s.svc, DB: s.db, Logger: s.log})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/season/sim-week", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	s.Equal(http.StatusNoContent, w.Code)
	s.Equal("http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.Header.Set("Origin", "http://elsewhere.test")
	w = httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	s.Empty(w.Header().Get("Access-Control-Allow-Origin"))
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}
