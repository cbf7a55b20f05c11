package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"app/internal/middleware"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoBody(c echo.Context) error {
	buf, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return err
	}
	return c.String(http.StatusOK, string(buf))
}

func TestSanitizeInput_StripsHTML(t *testing.T) {
	e := echo.New()
	e.POST("/contacts", echoBody, middleware.SanitizeInput())

	body := `{"name":"<script>alert(1)</script>Иван","phone":"+7 900"}`
	req := httptest.NewRequest(http.MethodPost, "/contacts", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "<script>")
	assert.Contains(t, rec.Body.String(), "Иван")
}

func TestSanitizeInput_IgnoresGet(t *testing.T) {
	e := echo.New()
	e.GET("/contacts", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}, middleware.SanitizeInput())

	req := httptest.NewRequest(http.MethodGet, "/contacts", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSanitizeInput_InvalidJSON(t *testing.T) {
	e := echo.New()
	e.POST("/contacts", echoBody, middleware.SanitizeInput())

	req := httptest.NewRequest(http.MethodPost, "/contacts", strings.NewReader("{not json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
