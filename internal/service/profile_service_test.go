package service

import (
	"context"
	"testing"

	"ecotrack/internal/dto"
	"ecotrack/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestProfileService_UpdateProfile(t *testing.T) {
	user := &models.User{ID: uuid.New(), Username: "carol", Email: "carol@example.com"}
	users := newMemUsers(user)
	svc := NewProfileService(users, &memFootprints{}, zap.NewNop())
	ctx := context.Background()

	updated, err := svc.UpdateProfile(ctx, user.ID, &dto.UpdateProfileRequest{
		Location:  "Oslo",
		Lifestyle: []string{"remote worker"},
		Budget:    ptr(150.0),
	})
	require.NoError(t, err)
	assert.Equal(t, "Oslo", updated.Location)

	stored, err := svc.GetProfile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"remote worker"}, stored.Lifestyle)
	assert.Equal(t, 150.0, *stored.Budget)

	_, err = svc.UpdateProfile(ctx, uuid.New(), &dto.UpdateProfileRequest{})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestProfileService_RecordFootprint(t *testing.T) {
	userID := uuid.New()
	svc := NewProfileService(newMemUsers(), &memFootprints{}, zap.NewNop())
	ctx := context.Background()

	_, err := svc.LatestFootprint(ctx, userID)
	assert.ErrorIs(t, err, ErrFootprintNotFound)

	summed, err := svc.RecordFootprint(ctx, userID, &dto.RecordFootprintRequest{
		Transportation: 4.5,
		Energy:         3,
		Food:           2,
		Waste:          0.5,
	})
	require.NoError(t, err)
	assert.Equal(t, 10.0, summed.TotalEmissions)

	explicit, err := svc.RecordFootprint(ctx, userID, &dto.RecordFootprintRequest{
		TotalEmissions: ptr(12.0),
		Energy:         3,
	})
	require.NoError(t, err)
	assert.Equal(t, 12.0, explicit.TotalEmissions)

	latest, err := svc.LatestFootprint(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, explicit.ID, latest.ID)
}
