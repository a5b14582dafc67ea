package limiter_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lizTheDeveloper/multiverse-bazaar-sub001/internal/mocks"
	"github.com/lizTheDeveloper/multiverse-bazaar-sub001/internal/session/limiter"
)

const (
	window            = 15 * time.Minute
	maxEmailAttempts  = 5
	maxOriginFailures = 10
)

func newLimiter(t *testing.T) (*limiter.WindowLimiter, *mocks.MockCredentialStore) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockStore := mocks.NewMockCredentialStore(ctrl)
	l := limiter.NewWindowLimiter(mockStore, window, maxEmailAttempts, maxOriginFailures)

	return l, mockStore
}

func TestWindowLimiter_Allow_UnderBothCaps(t *testing.T) {
	l, mockStore := newLimiter(t)

	mockStore.EXPECT().CountAttemptsByEmail(gomock.Any(), "a@x.com", gomock.Any()).
		Return(4, time.Now().Add(-10*time.Minute), nil)
	mockStore.EXPECT().CountFailedAttemptsByOrigin(gomock.Any(), "10.0.0.1", gomock.Any()).
		Return(9, time.Now().Add(-10*time.Minute), nil)

	allowed, retryAfter, err := l.Allow(context.Background(), "a@x.com", "10.0.0.1")

	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Zero(t, retryAfter)
}

func TestWindowLimiter_Allow_EmailCapHit(t *testing.T) {
	l, mockStore := newLimiter(t)

	oldest := time.Now().Add(-10 * time.Minute)
	mockStore.EXPECT().CountAttemptsByEmail(gomock.Any(), "a@x.com", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, since time.Time) (int, time.Time, error) {
			// The window anchor is now-window.
			assert.WithinDuration(t, time.Now().Add(-window), since, 2*time.Second)
			return maxEmailAttempts, oldest, nil
		})
	// The origin window is never consulted once the email cap is hit.

	allowed, retryAfter, err := l.Allow(context.Background(), "a@x.com", "10.0.0.1")

	require.NoError(t, err)
	assert.False(t, allowed)
	// Oldest attempt slides out of the window in ~5 minutes.
	assert.InDelta(t, (5 * time.Minute).Seconds(), retryAfter.Seconds(), 2)
}

func TestWindowLimiter_Allow_OriginCapHit(t *testing.T) {
	l, mockStore := newLimiter(t)

	oldest := time.Now().Add(-time.Minute)
	mockStore.EXPECT().CountAttemptsByEmail(gomock.Any(), "a@x.com", gomock.Any()).
		Return(0, time.Time{}, nil)
	mockStore.EXPECT().CountFailedAttemptsByOrigin(gomock.Any(), "10.0.0.1", gomock.Any()).
		Return(maxOriginFailures, oldest, nil)

	allowed, retryAfter, err := l.Allow(context.Background(), "a@x.com", "10.0.0.1")

	require.NoError(t, err)
	assert.False(t, allowed)
	assert.InDelta(t, (14 * time.Minute).Seconds(), retryAfter.Seconds(), 2)
}

func TestWindowLimiter_Allow_RetryAfterClampedToOneSecond(t *testing.T) {
	l, mockStore := newLimiter(t)

	// The anchoring attempt is about to slide out of the window.
	oldest := time.Now().Add(-window)
	mockStore.EXPECT().CountAttemptsByEmail(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(maxEmailAttempts, oldest, nil)

	allowed, retryAfter, err := l.Allow(context.Background(), "a@x.com", "10.0.0.1")

	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, time.Second, retryAfter)
}

func TestWindowLimiter_Allow_NoOldestFallsBackToFullWindow(t *testing.T) {
	l, mockStore := newLimiter(t)

	mockStore.EXPECT().CountAttemptsByEmail(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(maxEmailAttempts, time.Time{}, nil)

	allowed, retryAfter, err := l.Allow(context.Background(), "a@x.com", "10.0.0.1")

	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, window, retryAfter)
}

func TestWindowLimiter_Allow_QueryErrors(t *testing.T) {
	l, mockStore := newLimiter(t)

	dbErr := errors.New("db error")
	mockStore.EXPECT().CountAttemptsByEmail(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(0, time.Time{}, dbErr)

	allowed, _, err := l.Allow(context.Background(), "a@x.com", "10.0.0.1")
	assert.False(t, allowed)
	assert.ErrorIs(t, err, dbErr)

	mockStore.EXPECT().CountAttemptsByEmail(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(0, time.Time{}, nil)
	mockStore.EXPECT().CountFailedAttemptsByOrigin(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(0, time.Time{}, dbErr)

	allowed, _, err = l.Allow(context.Background(), "a@x.com", "10.0.0.1")
	assert.False(t, allowed)
	assert.ErrorIs(t, err, dbErr)
}
