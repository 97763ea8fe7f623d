package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskaamelia-wd/sumq/internal/models"
	"github.com/riskaamelia-wd/sumq/internal/service/viewer"
	"github.com/riskaamelia-wd/sumq/pkg/logger"
)

func showcaseRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := viewer.NewViewerService(logger.New("prod"), nil, nil, nil)
	h := NewViewerHandler(logger.New("prod"), svc)

	r := gin.New()
	r.POST("/templates/showcase-sessions", h.OpenShowcaseSession)
	r.GET("/sessions/:session_id", h.CurrentFrame)
	r.POST("/sessions/:session_id/next", h.Next)
	r.POST("/sessions/:session_id/goto", h.GoTo)
	r.POST("/sessions/:session_id/answer", h.SelectAnswer)
	r.DELETE("/sessions/:session_id", h.CloseSession)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var parsed map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	}
	return w, parsed
}

func TestShowcaseSessionFlow(t *testing.T) {
	r := showcaseRouter()

	w, opened := doJSON(t, r, http.MethodPost, "/templates/showcase-sessions", "")
	require.Equal(t, http.StatusCreated, w.Code)
	sessionID, ok := opened["session_id"].(string)
	require.True(t, ok)
	assert.Equal(t, float64(len(models.TemplateNames)), opened["length"])

	w, current := doJSON(t, r, http.MethodGet, "/sessions/"+sessionID, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), current["index"])

	w, next := doJSON(t, r, http.MethodPost, "/sessions/"+sessionID+"/next", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), next["index"])

	w, moved := doJSON(t, r, http.MethodPost, "/sessions/"+sessionID+"/goto", `{"index": 4}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(4), moved["index"])

	w, _ = doJSON(t, r, http.MethodDelete, "/sessions/"+sessionID, "")
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, r, http.MethodGet, "/sessions/"+sessionID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestShowcaseSession_AnswerQuiz(t *testing.T) {
	r := showcaseRouter()

	w, opened := doJSON(t, r, http.MethodPost, "/templates/showcase-sessions", "")
	require.Equal(t, http.StatusCreated, w.Code)
	sessionID := opened["session_id"].(string)

	// The showcase deck keeps catalog order, so the quiz sits at index 1.
	w, view := doJSON(t, r, http.MethodPost, "/sessions/"+sessionID+"/goto", `{"index": 1}`)
	require.Equal(t, http.StatusOK, w.Code)
	frame := view["frame"].(map[string]any)
	require.Equal(t, models.TemplateQuiz, frame["template"])

	w, answered := doJSON(t, r, http.MethodPost, "/sessions/"+sessionID+"/answer", `{"index": 0}`)
	require.Equal(t, http.StatusOK, w.Code)
	quiz := answered["quiz"].(map[string]any)
	assert.Equal(t, float64(0), quiz["selected_answer"])
	assert.Equal(t, true, quiz["answer_revealed"])
}

func TestSessionEndpoints_BadIDs(t *testing.T) {
	r := showcaseRouter()

	w, _ := doJSON(t, r, http.MethodGet, "/sessions/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doJSON(t, r, http.MethodPost, "/sessions/not-a-uuid/next", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
