package mouseapi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/beka-birhanu/micromouse-api/config"
	"github.com/beka-birhanu/micromouse-api/infrastruture/store"
	"github.com/beka-birhanu/micromouse-api/logger"
	"github.com/beka-birhanu/micromouse-api/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	lg, err := logger.New("TEST", config.ColorReset, io.Discard)
	require.NoError(t, err)
	turns, err := service.NewTurnService(store.NewMemoryStore(0), lg)
	require.NoError(t, err)
	controller, err := NewMouseController(turns, lg)
	require.NoError(t, err)

	router := gin.New()
	controller.RegisterPublic(router.Group("/api/v1"))
	return router
}

func postTurn(t *testing.T, router *gin.Engine, body []byte) (int, TurnResponse) {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/micro-mouse", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	var resp TurnResponse
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec.Code, resp
}

func TestMicroMouseEndpoint(t *testing.T) {
	t.Run("turn round trip", func(t *testing.T) {
		router := newTestRouter(t)
		body, _ := json.Marshal(TurnRequest{
			GameID:     "judge-1",
			SensorData: []int{0, 0, 0, 0, 1},
		})
		code, resp := postTurn(t, router, body)
		assert.Equal(t, http.StatusOK, code)
		assert.NotEmpty(t, resp.Instructions)
		assert.False(t, resp.End)
	})

	t.Run("crash ends the run", func(t *testing.T) {
		router := newTestRouter(t)
		body, _ := json.Marshal(TurnRequest{GameID: "judge-1", IsCrashed: true})
		code, resp := postTurn(t, router, body)
		assert.Equal(t, http.StatusOK, code)
		assert.Empty(t, resp.Instructions)
		assert.True(t, resp.End)
	})

	t.Run("unreadable body still gets a legal batch", func(t *testing.T) {
		router := newTestRouter(t)
		code, resp := postTurn(t, router, []byte("{not json"))
		assert.Equal(t, http.StatusOK, code)
		assert.NotEmpty(t, resp.Instructions)
	})

	t.Run("health probe", func(t *testing.T) {
		router := newTestRouter(t)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
