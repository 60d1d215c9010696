package server

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRenderRequest(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		req, err := parseRenderRequest(url.Values{"scene": {"spheres"}})
		require.NoError(t, err)
		assert.Equal(t, "spheres", req.Scene)
		assert.Equal(t, 400, req.Width)
		assert.Equal(t, 300, req.Height)
		assert.Equal(t, 0, req.Workers)
	})

	t.Run("explicit size", func(t *testing.T) {
		req, err := parseRenderRequest(url.Values{
			"scene": {"glass"}, "width": {"64"}, "height": {"48"}, "workers": {"2"},
		})
		require.NoError(t, err)
		assert.Equal(t, 64, req.Width)
		assert.Equal(t, 48, req.Height)
		assert.Equal(t, 2, req.Workers)
	})

	t.Run("errors", func(t *testing.T) {
		cases := []url.Values{
			{},                                     // no scene
			{"scene": {"spheres"}, "width": {"x"}}, // bad number
			{"scene": {"spheres"}, "width": {"-1"}},
			{"scene": {"spheres"}, "width": {"100000"}, "height": {"100000"}},
		}
		for _, q := range cases {
			if _, err := parseRenderRequest(q); err == nil {
				t.Errorf("expected error for query %v", q)
			}
		}
	})
}

func TestHandleHealth(t *testing.T) {
	s := NewServer(0)
	rec := httptest.NewRecorder()
	s.handleHealth(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok"`)
}

func TestHandleScenes(t *testing.T) {
	s := NewServer(0)
	rec := httptest.NewRecorder()
	s.handleScenes(rec, httptest.NewRequest(http.MethodGet, "/api/scenes", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var scenes []struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &scenes))
	require.NotEmpty(t, scenes)
	for _, sc := range scenes {
		assert.NotEmpty(t, sc.Name)
		assert.NotEmpty(t, sc.Description)
	}
}

func TestHandleRender(t *testing.T) {
	s := NewServer(0)

	t.Run("renders a png", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/render?scene=spheres&width=16&height=12", nil)
		s.handleRender(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
		// PNG signature
		assert.True(t, strings.HasPrefix(rec.Body.String(), "\x89PNG"))
	})

	t.Run("unknown scene", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/render?scene=nope", nil)
		s.handleRender(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("bad parameters", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/render?scene=spheres&width=abc", nil)
		s.handleRender(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleRenderWS(t *testing.T) {
	s := NewServer(0)
	srv := httptest.NewServer(http.HandlerFunc(s.handleRenderWS))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/render"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteJSON(RenderRequest{Scene: "spheres", Width: 16, Height: 12}))

	var final ProgressUpdate
	lastRows := 0
	for {
		var update ProgressUpdate
		require.NoError(t, conn.ReadJSON(&update))
		// Progress is monotonic across messages
		require.GreaterOrEqual(t, update.RowsDone, lastRows)
		lastRows = update.RowsDone
		if update.IsComplete {
			final = update
			break
		}
	}

	assert.Equal(t, 12, final.TotalRows)
	require.NotNil(t, final.Stats)
	assert.Equal(t, 16*12, final.Stats.TotalPixels)

	decoded, err := base64.StdEncoding.DecodeString(final.ImageData)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(decoded), "\x89PNG"))
}

func TestHandleRenderWS_UnknownScene(t *testing.T) {
	s := NewServer(0)
	srv := httptest.NewServer(http.HandlerFunc(s.handleRenderWS))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteJSON(RenderRequest{Scene: "nope", Width: 8, Height: 8}))

	var msg map[string]string
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Contains(t, msg["error"], "unknown scene")
}

func TestHandleIndex(t *testing.T) {
	s := NewServer(0)

	rec := httptest.NewRecorder()
	s.handleIndex(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<title>Whitted Raytracer</title>")

	rec = httptest.NewRecorder()
	s.handleIndex(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
