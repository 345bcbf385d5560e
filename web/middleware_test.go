package web_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seroter.com/orderconsole/web"
)

func TestLogMiddleware(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	e := echo.New()
	e.Use(middleware.RequestID())
	e.Use(web.LogMiddleware)
	e.GET("/missing", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "nope")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing?x=1", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, log.InfoLevel, entry.Level)
	assert.Equal(t, "served request", entry.Message)
	assert.Equal(t, http.MethodGet, entry.Data["method"])
	assert.Equal(t, "/missing?x=1", entry.Data["uri"])
	assert.Equal(t, http.StatusNotFound, entry.Data["status"])
	assert.NotEmpty(t, entry.Data["requestId"])
}
