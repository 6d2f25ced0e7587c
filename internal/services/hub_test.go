package services

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T) (*Hub, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hub := NewHub(quietLogger(), nil)
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	router := gin.New()
	router.GET("/ws", hub.HandleWebSocket)
	server := httptest.NewServer(router)
	t.Cleanup(func() {
		cancel()
		server.Close()
	})
	return hub, "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readJSON(t *testing.T, conn *websocket.Conn) map[string]interface{} {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	var msg map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func TestHub_BroadcastToAll(t *testing.T) {
	hub, url := startHub(t)
	a := dial(t, url)
	b := dial(t, url+"?team_id=3")

	require.Eventually(t, func() bool { return hub.GetConnectionCount() == 2 }, 2*time.Second, 10*time.Millisecond)

	hub.BroadcastToAll(map[string]interface{}{"type": "week_completed", "week": 4})
	for _, conn := range []*websocket.Conn{a, b} {
		msg := readJSON(t, conn)
		assert.Equal(t, "week_completed", msg["type"])
		assert.Equal(t, float64(4), msg["week"])
	}
}

func TestHub_BroadcastToTeam(t *testing.T) {
	hub, url := startHub(t)
	league := dial(t, url)
	team := dial(t, url+"?team_id=7")

	require.Eventually(t, func() bool { return hub.GetConnectionCount() == 2 }, 2*time.Second, 10*time.Millisecond)

	hub.BroadcastToTeam(7, map[string]string{"type": "game_final"})
	hub.BroadcastToTeam(99, map[string]string{"type": "nobody"})
	assert.Equal(t, "game_final", readJSON(t, team)["type"])

	require.NoError(t, league.SetReadDeadline(time.Now().Add(100*time.Millisecond)))
	_, _, err := league.ReadMessage()
	assert.Error(t, err, "league-wide client should not get team messages")
}

func TestHub_Disconnect(t *testing.T) {
	hub, url := startHub(t)
	conn := dial(t, url)
	require.Eventually(t, func() bool { return hub.GetConnectionCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	conn.Close()
	assert.Eventually(t, func() bool { return hub.GetConnectionCount() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestHub_InvalidTeamID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hub := NewHub(quietLogger(), nil)
	router := gin.New()
	router.GET("/ws", hub.HandleWebSocket)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/ws?team_id=abc", nil))
	assert.Equal(t, 400, w.Code)
}

func TestOriginChecker(t *testing.T) {
	req := httptest.NewRequest("GET", "/ws", nil)
	assert.True(t, originChecker(nil)(req))

	req.Header.Set("Origin", "http://evil.example")
	assert.True(t, originChecker(nil)(req))
	assert.False(t, originChecker([]string{"http://localhost:3000"})(req))
	assert.True(t, originChecker([]string{"*"})(req))
}
