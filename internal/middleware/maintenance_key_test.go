package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func maintenanceRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/sweep", MaintenanceKey(secret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestMaintenanceKeyHeader(t *testing.T) {
	r := maintenanceRouter("s3cret")

	req := httptest.NewRequest(http.MethodPost, "/sweep", nil)
	req.Header.Set("X-Maintenance-Key", "s3cret")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMaintenanceKeyQueryParam(t *testing.T) {
	r := maintenanceRouter("s3cret")

	req := httptest.NewRequest(http.MethodPost, "/sweep?maintenance_key=s3cret", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMaintenanceKeyRejectsWrongKey(t *testing.T) {
	r := maintenanceRouter("s3cret")

	req := httptest.NewRequest(http.MethodPost, "/sweep", nil)
	req.Header.Set("X-Maintenance-Key", "guess")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMaintenanceKeyRejectsMissingKey(t *testing.T) {
	r := maintenanceRouter("s3cret")

	req := httptest.NewRequest(http.MethodPost, "/sweep", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMaintenanceKeyUnconfigured(t *testing.T) {
	r := maintenanceRouter("")

	req := httptest.NewRequest(http.MethodPost, "/sweep", nil)
	req.Header.Set("X-Maintenance-Key", "anything")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
