package prompts

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apphttp "storyforge_backend/internal/http"
	"storyforge_backend/internal/ports"
	"storyforge_backend/platform/apperr"
	"storyforge_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore()
	require.NoError(t, err)
	return s
}

func TestDefaultsLoad(t *testing.T) {
	s := newStore(t)

	names := make([]string, 0)
	for _, p := range s.List() {
		names = append(names, p.Name)
		assert.False(t, p.Customized)
		assert.NotEmpty(t, p.Template)
	}
	assert.Equal(t, []string{"chat", "generate_character", "generate_field"}, names)
}

func TestRenderChatPrompt(t *testing.T) {
	s := newStore(t)

	out, err := s.Render("chat", ports.CharacterProfile{Name: "Mira", Personality: "calm"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "You are Mira."))
	assert.Contains(t, out, "Personality: calm")
	assert.NotContains(t, out, "Scenario:")
}

func TestSetAndReset(t *testing.T) {
	s := newStore(t)

	p, err := s.Set("chat", "Be {{.Name}}.")
	require.NoError(t, err)
	assert.True(t, p.Customized)

	out, err := s.Render("chat", ports.CharacterProfile{Name: "Mira"})
	require.NoError(t, err)
	assert.Equal(t, "Be Mira.", out)

	p, err = s.Reset("chat")
	require.NoError(t, err)
	assert.False(t, p.Customized)

	out, err = s.Render("chat", ports.CharacterProfile{Name: "Mira"})
	require.NoError(t, err)
	assert.NotEqual(t, "Be Mira.", out)
}

func TestSetRejectsBrokenTemplate(t *testing.T) {
	s := newStore(t)

	_, err := s.Set("chat", "{{.Name")

	assert.True(t, apperr.Is(err, apperr.KindValidation))
}

func TestUnknownPrompt(t *testing.T) {
	s := newStore(t)

	_, err := s.Get("missing")
	assert.True(t, apperr.Is(err, apperr.KindNotFound))

	_, err = s.Set("missing", "x")
	assert.True(t, apperr.Is(err, apperr.KindNotFound))

	_, err = s.Render("missing", nil)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestDefaultsValidation(t *testing.T) {
	_, err := newStoreFromYAML([]byte("prompts:\n  - name: a\n    template: x\n  - name: a\n    template: y\n"))
	assert.ErrorContains(t, err, "duplicate")

	_, err = newStoreFromYAML([]byte("prompts:\n  - template: x\n"))
	assert.ErrorContains(t, err, "without a name")

	_, err = newStoreFromYAML([]byte("prompts:\n  - name: a\n    template: \"{{\"\n"))
	assert.Error(t, err)
}

func TestPromptEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	NewModule(newStore(t), validator.New()).RegisterRoutes(&apphttp.RouterContext{Engine: engine, API: engine.Group("/api")})

	serve := func(method, path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusOK, serve(http.MethodGet, "/api/prompts", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(http.MethodGet, "/api/prompts/nope", "").Code)
	assert.Equal(t, http.StatusBadRequest, serve(http.MethodPut, "/api/prompts/chat", `{"template":""}`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(http.MethodPut, "/api/prompts/chat", `{"template":"{{"}`).Code)

	rec := serve(http.MethodPut, "/api/prompts/chat", `{"template":"Hi {{.Name}}"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"customized":true`)

	rec = serve(http.MethodDelete, "/api/prompts/chat", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"customized":false`)
}
