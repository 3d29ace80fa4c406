package registry

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.ReleaseMode)
}

func jsonRouter(body string) func() (http.Handler, error) {
	return func() (http.Handler, error) {
		r := gin.New()
		r.GET("/ping", func(c *gin.Context) {
			c.Data(http.StatusOK, "application/json", []byte(body))
		})
		return r, nil
	}
}

func TestRegisterAllMounted(t *testing.T) {
	reg := New()
	outcomes := reg.Register([]Descriptor{
		{Name: "persona", Prefix: "/api/persona", Build: jsonRouter(`{"module":"persona"}`)},
		{Name: "memory", Prefix: "/api/memory", Build: jsonRouter(`{"module":"memory"}`)},
	})

	require.Len(t, outcomes, 2)
	for _, out := range outcomes {
		assert.True(t, out.Mounted, "outcome for %s", out.Name)
		assert.Empty(t, out.Error)
	}
	assert.Equal(t, []string{"/api/persona", "/api/memory"}, reg.Prefixes())
}

func TestBrokenDescriptorDoesNotBlockOthers(t *testing.T) {
	broken := []Descriptor{
		{Name: "erroring", Prefix: "/api/broken", Build: func() (http.Handler, error) {
			return nil, errors.New("module source missing")
		}},
		{Name: "panicking", Prefix: "/api/worse", Build: func() (http.Handler, error) {
			panic("boom")
		}},
		{Name: "nil-handler", Prefix: "/api/empty", Build: func() (http.Handler, error) {
			return nil, nil
		}},
		{Name: "no-constructor", Prefix: "/api/hollow"},
	}

	for i := range broken {
		descs := []Descriptor{
			{Name: "intent", Prefix: "/api/intent", Build: jsonRouter(`{"module":"intent"}`)},
			broken[i],
			{Name: "goal", Prefix: "/api/goal", Build: jsonRouter(`{"module":"goal"}`)},
		}

		reg := New()
		outcomes := reg.Register(descs)

		require.Len(t, outcomes, 3)
		assert.True(t, outcomes[0].Mounted)
		assert.False(t, outcomes[1].Mounted, "broken descriptor %q", broken[i].Name)
		assert.NotEmpty(t, outcomes[1].Error)
		assert.True(t, outcomes[2].Mounted, "descriptor after broken %q", broken[i].Name)
		assert.Equal(t, []string{"/api/intent", "/api/goal"}, reg.Prefixes())
	}
}

func TestDispatchStripsPrefix(t *testing.T) {
	reg := New()
	reg.Register([]Descriptor{
		{Name: "brain", Prefix: "/api/brain", Build: jsonRouter(`{"module":"brain"}`)},
	})

	app := gin.New()
	reg.Mount(app)

	w := httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/brain/ping", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"module":"brain"}`, w.Body.String())

	w = httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/brain/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPrefixCollisionLastWins(t *testing.T) {
	reg := New()
	outcomes := reg.Register([]Descriptor{
		{Name: "chat-v1", Prefix: "/api/chat", Build: jsonRouter(`{"version":1}`)},
		{Name: "chat-v2", Prefix: "/api/chat", Build: jsonRouter(`{"version":2}`)},
	})

	// Both registrations succeed; the later one owns the prefix.
	require.Len(t, outcomes, 2)
	assert.True(t, outcomes[0].Mounted)
	assert.True(t, outcomes[1].Mounted)
	assert.Equal(t, []string{"/api/chat"}, reg.Prefixes())

	app := gin.New()
	reg.Mount(app)

	w := httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/chat/ping", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"version":2}`, w.Body.String())
}

func TestRootOfPrefixReachesModuleRoot(t *testing.T) {
	reg := New()
	reg.Register([]Descriptor{
		{Name: "status", Prefix: "/api/status", Build: func() (http.Handler, error) {
			r := gin.New()
			r.GET("/", func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"status": "ok"})
			})
			return r, nil
		}},
	})

	app := gin.New()
	reg.Mount(app)

	w := httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/status", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
