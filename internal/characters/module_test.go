package characters

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	apphttp "storyforge_backend/internal/http"
	"storyforge_backend/platform/httpkit"
	"storyforge_backend/platform/logger"
	"storyforge_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T) (*gin.Engine, *Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := NewStore()
	engine := gin.New()
	NewModule(store, validator.New()).RegisterRoutes(&apphttp.RouterContext{
		Engine:            engine,
		API:               engine.Group("/api"),
		Validator:         validator.New(),
		Logger:            logger.Discard(),
		GenerationLimiter: httpkit.NewPerMinuteLimiter(1000, nil),
	})
	return engine, store
}

func call(t *testing.T, engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestCharacterLifecycle(t *testing.T) {
	engine, _ := newEngine(t)

	rec := call(t, engine, http.MethodPost, "/api/characters", CreateRequest{
		Name:        "  Mira  ",
		Description: "A lighthouse keeper",
		Tags:        []string{"Fantasy", "fantasy", " sea "},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created Character
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "Mira", created.Name)
	assert.Equal(t, []string{"fantasy", "sea"}, created.Tags)
	assert.NotEqual(t, uuid.Nil, created.ID)

	rec = call(t, engine, http.MethodGet, "/api/characters", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list ListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list.Characters, 1)

	newName := "Mira Vale"
	rec = call(t, engine, http.MethodPut, "/api/characters/"+created.ID.String(), UpdateRequest{Name: &newName})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var updated Character
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "Mira Vale", updated.Name)
	assert.Equal(t, "A lighthouse keeper", updated.Description)

	rec = call(t, engine, http.MethodDelete, "/api/characters/"+created.ID.String(), nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = call(t, engine, http.MethodGet, "/api/characters/"+created.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateValidation(t *testing.T) {
	engine, _ := newEngine(t)

	rec := call(t, engine, http.MethodPost, "/api/characters", CreateRequest{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"invalid request","details":{"name":"is required"}}`, rec.Body.String())
}

func TestBlankNameIsRejected(t *testing.T) {
	engine, store := newEngine(t)

	rec := call(t, engine, http.MethodPost, "/api/characters", CreateRequest{Name: "   "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"invalid request","details":{"name":"must not be blank"}}`, rec.Body.String())
	assert.Empty(t, store.List(t.Context()))

	created, err := store.Create(t.Context(), CreateRequest{Name: "Mira"})
	require.NoError(t, err)
	blank := "  "
	rec = call(t, engine, http.MethodPut, "/api/characters/"+created.ID.String(), UpdateRequest{Name: &blank})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	got, err := store.Get(t.Context(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mira", got.Name)
}

func TestCreateRejectsDuplicateName(t *testing.T) {
	engine, _ := newEngine(t)

	require.Equal(t, http.StatusCreated, call(t, engine, http.MethodPost, "/api/characters", CreateRequest{Name: "Mira"}).Code)
	rec := call(t, engine, http.MethodPost, "/api/characters", CreateRequest{Name: "mira"})

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestInvalidIDIsBadRequest(t *testing.T) {
	engine, _ := newEngine(t)

	rec := call(t, engine, http.MethodGet, "/api/characters/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMalformedBodyIsBadRequest(t *testing.T) {
	engine, _ := newEngine(t)

	req := httptest.NewRequest(http.MethodPost, "/api/characters", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetProfile(t *testing.T) {
	store := NewStore()
	c, err := store.Create(t.Context(), CreateRequest{Name: "Mira", Personality: "calm"})
	require.NoError(t, err)

	profile, err := store.GetProfile(t.Context(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mira", profile.Name)
	assert.Equal(t, "calm", profile.Personality)

	_, err = store.GetProfile(t.Context(), uuid.New())
	assert.Error(t, err)
}

func TestListIsEmptyArrayNotNull(t *testing.T) {
	engine, _ := newEngine(t)

	rec := call(t, engine, http.MethodGet, "/api/characters", nil)

	assert.JSONEq(t, `{"characters":[]}`, rec.Body.String())
}
