package meta

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mythiq/gateway/internal/registry"
)

func init() {
	gin.SetMode(gin.ReleaseMode)
}

func TestBootmapReportsFailures(t *testing.T) {
	outcomes := func() []registry.Outcome {
		return []registry.Outcome{
			{Name: "persona", Prefix: "/api/persona", Mounted: true},
			{Name: "ghost", Prefix: "/api/ghost", Error: "module source missing"},
		}
	}
	router, err := Router(time.Now().UTC(), outcomes)()
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bootmap", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Mounted int `json:"mounted"`
		Failed  int `json:"failed"`
		Modules []struct {
			Name  string `json:"name"`
			Error string `json:"error"`
		} `json:"modules"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Mounted)
	assert.Equal(t, 1, body.Failed)
	require.Len(t, body.Modules, 2)
	assert.Equal(t, "module source missing", body.Modules[1].Error)
}

func TestUptimeCounts(t *testing.T) {
	started := time.Now().UTC().Add(-90 * time.Second)
	router, err := Router(started, func() []registry.Outcome { return nil })()
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/uptime", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		UptimeSeconds int64 `json:"uptime_seconds"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.GreaterOrEqual(t, body.UptimeSeconds, int64(90))
}

func TestStatus(t *testing.T) {
	router, err := Router(time.Now().UTC(), func() []registry.Outcome { return nil })()
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/status", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}
