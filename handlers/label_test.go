package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Label validation fires before any service call, so the handlers can run
// without a database here.
func newLabelRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) { c.Set("user_id", "user-1") })

	router.POST("/expenses", NewExpenseHandler(nil).Add)
	router.POST("/income", NewIncomeHandler(nil).Add)
	router.POST("/goals", NewGoalHandler(nil).Upsert)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestAddExpenseRejectsUnknownCategory(t *testing.T) {
	w := postJSON(t, newLabelRouter(), "/expenses",
		`{"amount": 12.5, "description": "snacks", "category": "crypto"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Unknown category", body["error"])
}

func TestAddIncomeRejectsUnknownSource(t *testing.T) {
	w := postJSON(t, newLabelRouter(), "/income",
		`{"amount": 200, "description": "winnings", "source": "lottery"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Unknown income source", body["error"])
}

func TestUpsertGoalRejectsUnknownCategory(t *testing.T) {
	w := postJSON(t, newLabelRouter(), "/goals",
		`{"category": "crypto", "target_amount": 100}`)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Unknown category", body["error"])
}
