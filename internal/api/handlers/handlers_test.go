package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"ecotrack/internal/models"
	"ecotrack/internal/repository"
	"ecotrack/internal/service"
	"ecotrack/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubGenerator struct {
	response string
	err      error
}

func (g *stubGenerator) Complete(context.Context, service.Prompt, service.TaskKind) (string, error) {
	return g.response, g.err
}

// memStore backs users, footprints and recommendations for handler tests.
type memStore struct {
	mu         sync.Mutex
	users      map[uuid.UUID]*models.User
	footprints []*models.Footprint
	recs       []*models.Recommendation
}

func (s *memStore) FindUserWithPreferences(_ context.Context, id uuid.UUID) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (s *memStore) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.FindUserWithPreferences(ctx, id)
}

func (s *memStore) UpdatePreferences(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

type footprintStore struct{ *memStore }

func (s footprintStore) Create(_ context.Context, fp *models.Footprint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *fp
	s.footprints = append(s.footprints, &copied)
	return nil
}

func (s footprintStore) FindLatestFootprint(_ context.Context, userID uuid.UUID) (*models.Footprint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.footprints) - 1; i >= 0; i-- {
		if s.footprints[i].UserID == userID {
			copied := *s.footprints[i]
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

type recommendationStore struct{ *memStore }

func (s recommendationStore) Create(_ context.Context, rec *models.Recommendation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *rec
	s.recs = append(s.recs, &copied)
	return nil
}

func (s recommendationStore) List(_ context.Context, userID uuid.UUID, filter models.RecommendationFilter) ([]*models.Recommendation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []*models.Recommendation{}
	for i := len(s.recs) - 1; i >= 0; i-- {
		rec := s.recs[i]
		if rec.UserID != userID ||
			(filter.Type != nil && rec.Type != *filter.Type) ||
			(filter.Implemented != nil && rec.Implemented != *filter.Implemented) ||
			(filter.Dismissed != nil && rec.Dismissed != *filter.Dismissed) {
			continue
		}
		copied := *rec
		out = append(out, &copied)
	}
	return out, nil
}

func (s recommendationStore) UpdateStatus(_ context.Context, userID, id uuid.UUID, update models.RecommendationUpdate) (*models.Recommendation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range s.recs {
		if rec.ID != id || rec.UserID != userID {
			continue
		}
		if update.Implemented != nil {
			rec.Implemented = *update.Implemented
		}
		if update.Dismissed != nil {
			rec.Dismissed = *update.Dismissed
		}
		if update.ImplementationNotes != nil {
			rec.ImplementationNotes = update.ImplementationNotes
		}
		rec.UpdatedAt = update.UpdatedAt
		copied := *rec
		return &copied, nil
	}
	return nil, repository.ErrNotFound
}

type testAPI struct {
	app    *fiber.App
	userID uuid.UUID
	store  *memStore
}

func newTestAPI(t *testing.T, generator service.Generator) *testAPI {
	t.Helper()

	logger := zap.NewNop()
	userID := uuid.New()
	store := &memStore{users: map[uuid.UUID]*models.User{
		userID: {ID: userID, Username: "dana", Email: "dana@example.com", CreatedAt: time.Now()},
	}}

	recService := service.NewRecommendationService(generator, store, footprintStore{store}, recommendationStore{store}, nil, logger)
	insightService := service.NewInsightService(generator, nil, logger)
	profileService := service.NewProfileService(store, footprintStore{store}, logger)

	recHandler := NewRecommendationHandler(recService, logger)
	insightHandler := NewInsightHandler(insightService, logger)
	profileHandler := NewProfileHandler(profileService, logger)

	app := fiber.New()
	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		if id := c.Get("X-Test-User"); id != "" {
			c.Locals(middleware.UserIDKey, id)
		}
		return c.Next()
	})
	api.Get("/profile", profileHandler.GetProfile)
	api.Put("/profile", profileHandler.UpdateProfile)
	api.Post("/footprints", profileHandler.RecordFootprint)
	api.Get("/footprints/latest", profileHandler.LatestFootprint)
	api.Post("/recommendations/generate", recHandler.GenerateRecommendations)
	api.Get("/recommendations", recHandler.ListRecommendations)
	api.Post("/recommendations/:id/implement", recHandler.ImplementRecommendation)
	api.Post("/recommendations/:id/dismiss", recHandler.DismissRecommendation)
	api.Post("/insights/predictions", insightHandler.PredictEmissions)
	api.Post("/insights/behavior", insightHandler.AnalyzeBehavior)

	return &testAPI{app: app, userID: userID, store: store}
}

func (a *testAPI) do(t *testing.T, method, path string, body any, user uuid.UUID) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if user != uuid.Nil {
		req.Header.Set("X-Test-User", user.String())
	}

	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func TestGenerateRecommendations_FallbackResponse(t *testing.T) {
	a := newTestAPI(t, &stubGenerator{err: service.ErrNotConfigured})

	status, body := a.do(t, http.MethodPost, "/api/v1/recommendations/generate", nil, a.userID)
	require.Equal(t, http.StatusCreated, status)

	var resp struct {
		Source          string `json:"source"`
		Recommendations []struct {
			ID              string  `json:"id"`
			Impact          float64 `json:"impact"`
			Confidence      int     `json:"confidence"`
			RewardPotential int     `json:"rewardPotential"`
			Implemented     bool    `json:"implemented"`
		} `json:"recommendations"`
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Equal(t, "fallback", resp.Source)
	require.Len(t, resp.Recommendations, 1)
	assert.Equal(t, 3.2, resp.Recommendations[0].Impact)
	assert.Equal(t, 90, resp.Recommendations[0].Confidence)
	assert.Equal(t, 32, resp.Recommendations[0].RewardPotential)
	assert.False(t, resp.Recommendations[0].Implemented)
}

func TestGenerateRecommendations_Validation(t *testing.T) {
	a := newTestAPI(t, &stubGenerator{err: service.ErrNotConfigured})

	status, _ := a.do(t, http.MethodPost, "/api/v1/recommendations/generate", map[string]any{"budget": -5}, a.userID)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = a.do(t, http.MethodPost, "/api/v1/recommendations/generate", nil, uuid.Nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = a.do(t, http.MethodPost, "/api/v1/recommendations/generate", nil, uuid.New())
	assert.Equal(t, http.StatusNotFound, status)
}

func TestRecommendationLifecycle(t *testing.T) {
	a := newTestAPI(t, &stubGenerator{response: `[{"title":"A","type":"purchase"},{"title":"B","type":"behavioral"}]`})

	status, _ := a.do(t, http.MethodPost, "/api/v1/recommendations/generate", map[string]any{"location": "Rome"}, a.userID)
	require.Equal(t, http.StatusCreated, status)
	require.Len(t, a.store.recs, 2)
	first := a.store.recs[0].ID

	status, body := a.do(t, http.MethodPost, "/api/v1/recommendations/"+first.String()+"/implement",
		map[string]any{"notes": "done"}, a.userID)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), `"implementationNotes":"done"`)

	status, _ = a.do(t, http.MethodPost, "/api/v1/recommendations/"+first.String()+"/dismiss", nil, uuid.New())
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = a.do(t, http.MethodPost, "/api/v1/recommendations/not-a-uuid/dismiss", nil, a.userID)
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = a.do(t, http.MethodGet, "/api/v1/recommendations?implemented=true", nil, a.userID)
	require.Equal(t, http.StatusOK, status)
	var implemented []map[string]any
	require.NoError(t, json.Unmarshal(body, &implemented))
	require.Len(t, implemented, 1)
	assert.Equal(t, "A", implemented[0]["title"])

	status, body = a.do(t, http.MethodGet, "/api/v1/recommendations?type=behavioral&implemented=false", nil, a.userID)
	require.Equal(t, http.StatusOK, status)
	var behavioral []map[string]any
	require.NoError(t, json.Unmarshal(body, &behavioral))
	require.Len(t, behavioral, 1)
	assert.Equal(t, "B", behavioral[0]["title"])

	status, _ = a.do(t, http.MethodGet, "/api/v1/recommendations?type=magic", nil, a.userID)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = a.do(t, http.MethodGet, "/api/v1/recommendations?dismissed=maybe", nil, a.userID)
	assert.Equal(t, http.StatusBadRequest, status)

	for i := 0; i < 5; i++ {
		status, body := a.do(t, http.MethodGet, "/api/v1/recommendations?dismissed=maybe&implemented=perhaps", nil, a.userID)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Contains(t, string(body), "invalid implemented filter")
	}
}

func TestPredictEmissions(t *testing.T) {
	a := newTestAPI(t, &stubGenerator{err: service.ErrNetwork})

	status, body := a.do(t, http.MethodPost, "/api/v1/insights/predictions", map[string]any{
		"monthlyEmissions": []float64{10, 12},
	}, a.userID)
	require.Equal(t, http.StatusOK, status)

	var resp struct {
		Source     string `json:"source"`
		Prediction struct {
			PredictedEmissions float64 `json:"predictedEmissions"`
			Trend              string  `json:"trend"`
		} `json:"prediction"`
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Equal(t, "fallback", resp.Source)
	assert.Equal(t, 20.0, resp.Prediction.PredictedEmissions)
	assert.Equal(t, "stable", resp.Prediction.Trend)

	status, _ = a.do(t, http.MethodPost, "/api/v1/insights/predictions", map[string]any{
		"monthlyEmissions": []float64{-1},
	}, a.userID)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestAnalyzeBehavior(t *testing.T) {
	a := newTestAPI(t, &stubGenerator{response: `{"insights":["Short drives"],"behavior_score":61}`})

	status, body := a.do(t, http.MethodPost, "/api/v1/insights/behavior", map[string]any{
		"dailyActivities": []map[string]any{{"date": "2024-03-01", "activities": []string{"drove"}}},
	}, a.userID)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), `"source":"generated"`)
	assert.Contains(t, string(body), `"behavior_score":61`)
}

func TestProfileAndFootprint(t *testing.T) {
	a := newTestAPI(t, &stubGenerator{err: service.ErrNotConfigured})

	status, _ := a.do(t, http.MethodGet, "/api/v1/footprints/latest", nil, a.userID)
	assert.Equal(t, http.StatusNotFound, status)

	status, body := a.do(t, http.MethodPost, "/api/v1/footprints", map[string]any{
		"transportation": 4, "energy": 3.5, "food": 2, "waste": 0.5,
	}, a.userID)
	require.Equal(t, http.StatusCreated, status)
	assert.Contains(t, string(body), `"totalEmissions":10`)

	status, _ = a.do(t, http.MethodPost, "/api/v1/footprints", map[string]any{"energy": -1}, a.userID)
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = a.do(t, http.MethodPut, "/api/v1/profile", map[string]any{
		"location": "Madrid", "preferences": []string{"public transport"},
	}, a.userID)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), `"location":"Madrid"`)

	status, body = a.do(t, http.MethodGet, "/api/v1/profile", nil, a.userID)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), `"preferences":["public transport"]`)
}
