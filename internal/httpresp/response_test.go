package httpresp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(fn func(c *gin.Context)) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	fn(c)
	return w
}

func TestMessageMergesExtras(t *testing.T) {
	w := record(func(c *gin.Context) {
		Message(c, http.StatusCreated, "Service created successfully", gin.H{
			"service": gin.H{"id": 1},
		})
	})

	require.Equal(t, http.StatusCreated, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Service created successfully", body["message"])
	assert.Contains(t, body, "service")
}

func TestMessageWithoutExtras(t *testing.T) {
	w := record(func(c *gin.Context) {
		Message(c, http.StatusOK, "Deleted", nil)
	})

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, map[string]any{"message": "Deleted"}, body)
}

func TestOKAndCreated(t *testing.T) {
	w := record(func(c *gin.Context) { OK(c, gin.H{"exists": true}) })
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"exists": true}`, w.Body.String())

	w = record(func(c *gin.Context) { Created(c, gin.H{"id": 7}) })
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id": 7}`, w.Body.String())
}
