package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"ecotrack/internal/models"
	"ecotrack/internal/repository"

	"github.com/google/uuid"
)

type fakeGenerator struct {
	response string
	err      error
	calls    int
	prompts  []Prompt
}

func (g *fakeGenerator) Complete(_ context.Context, prompt Prompt, _ TaskKind) (string, error) {
	g.calls++
	g.prompts = append(g.prompts, prompt)
	return g.response, g.err
}

type memUsers struct {
	mu    sync.Mutex
	users map[uuid.UUID]*models.User
}

func newMemUsers(users ...*models.User) *memUsers {
	m := &memUsers{users: make(map[uuid.UUID]*models.User)}
	for _, u := range users {
		m.users[u.ID] = u
	}
	return m
}

func (m *memUsers) Create(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memUsers) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (m *memUsers) FindUserWithPreferences(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return m.GetByID(ctx, id)
}

func (m *memUsers) UpdatePreferences(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[user.ID]; !ok {
		return repository.ErrNotFound
	}
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

type memFootprints struct {
	mu    sync.Mutex
	items []*models.Footprint
}

func (m *memFootprints) Create(_ context.Context, fp *models.Footprint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *fp
	m.items = append(m.items, &copied)
	return nil
}

func (m *memFootprints) FindLatestFootprint(_ context.Context, userID uuid.UUID) (*models.Footprint, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var latest *models.Footprint
	for _, fp := range m.items {
		if fp.UserID == userID && (latest == nil || !fp.CreatedAt.Before(latest.CreatedAt)) {
			latest = fp
		}
	}
	if latest == nil {
		return nil, repository.ErrNotFound
	}
	copied := *latest
	return &copied, nil
}

var errStoreDown = errors.New("store unavailable")

// memRecommendations mirrors the repository contract. failOn makes the
// n-th Create call (1-based) fail.
type memRecommendations struct {
	mu      sync.Mutex
	items   []*models.Recommendation
	creates int
	failOn  int
}

func (m *memRecommendations) Create(_ context.Context, rec *models.Recommendation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.creates++
	if m.failOn > 0 && m.creates == m.failOn {
		return errStoreDown
	}
	copied := *rec
	m.items = append(m.items, &copied)
	return nil
}

func (m *memRecommendations) List(_ context.Context, userID uuid.UUID, filter models.RecommendationFilter) ([]*models.Recommendation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []*models.Recommendation{}
	for _, rec := range m.items {
		if rec.UserID != userID {
			continue
		}
		if filter.Type != nil && rec.Type != *filter.Type {
			continue
		}
		if filter.Implemented != nil && rec.Implemented != *filter.Implemented {
			continue
		}
		if filter.Dismissed != nil && rec.Dismissed != *filter.Dismissed {
			continue
		}
		copied := *rec
		out = append(out, &copied)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memRecommendations) UpdateStatus(_ context.Context, userID, id uuid.UUID, update models.RecommendationUpdate) (*models.Recommendation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, rec := range m.items {
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
			notes := *update.ImplementationNotes
			rec.ImplementationNotes = &notes
		}
		rec.UpdatedAt = update.UpdatedAt
		copied := *rec
		return &copied, nil
	}
	return nil, repository.ErrNotFound
}

// tickingClock returns a strictly increasing time on every call.
func tickingClock() func() time.Time {
	t := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func ptr[T any](v T) *T {
	return &v
}
