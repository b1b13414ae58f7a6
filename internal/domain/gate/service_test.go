package gate_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rowanfield/guestgate/internal/domain/gate"
	"github.com/rowanfield/guestgate/internal/repository"
	"github.com/rowanfield/guestgate/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGateService_ActiveWithinWindow(t *testing.T) {
	ctx := context.Background()
	installs := &mocks.InstallRepository{}
	installs.On("Latest", ctx).Return(&gate.InstallRecord{
		ID:          1,
		InstalledAt: time.Now().Add(-5 * time.Minute),
	}, nil)

	svc := gate.NewService(installs, "test", nil)
	status := svc.CheckStatus(ctx)
	require.False(t, status.Expired)
	require.Greater(t, status.TimeRemaining, time.Duration(0))
	require.False(t, svc.IsReadOnly())
}

func TestGateService_ExpiredPastWindow(t *testing.T) {
	ctx := context.Background()
	installs := &mocks.InstallRepository{}
	installs.On("Latest", ctx).Return(&gate.InstallRecord{
		ID:          1,
		InstalledAt: time.Now().Add(-25 * time.Minute),
	}, nil)

	svc := gate.NewService(installs, "test", nil)
	status := svc.CheckStatus(ctx)
	require.True(t, status.Expired)
	require.LessOrEqual(t, status.TimeRemaining, time.Duration(0))
	require.True(t, svc.IsReadOnly())
}

func TestGateService_ExpiryLatches(t *testing.T) {
	ctx := context.Background()
	installs := &mocks.InstallRepository{}
	installs.On("Latest", ctx).Return(&gate.InstallRecord{
		ID:          1,
		InstalledAt: time.Now().Add(-25 * time.Minute),
	}, nil)

	svc := gate.NewService(installs, "test", nil)
	require.True(t, svc.CheckStatus(ctx).Expired)

	// Raising the duration would make the time math "un-expire", but the
	// latch holds until an explicit reset.
	require.NoError(t, svc.SetTrialDuration(time.Hour))
	require.True(t, svc.CheckStatus(ctx).Expired)
	require.True(t, svc.IsReadOnly())
}

func TestGateService_ProvisionsOnFirstCheck(t *testing.T) {
	ctx := context.Background()
	installs := &mocks.InstallRepository{}
	installs.On("Latest", ctx).Return(nil, repository.ErrNotFound)
	installs.On("Create", ctx, mock.Anything).Return(nil)

	svc := gate.NewService(installs, "test", nil)
	status := svc.CheckStatus(ctx)
	require.False(t, status.Expired)
	installs.AssertCalled(t, "Create", ctx, mock.Anything)
}

func TestGateService_FailsOpenOnStorageError(t *testing.T) {
	ctx := context.Background()
	installs := &mocks.InstallRepository{}
	installs.On("Latest", ctx).Return(nil, errors.New("disk on fire"))

	svc := gate.NewService(installs, "test", nil)
	status := svc.CheckStatus(ctx)
	require.False(t, status.Expired)
	require.False(t, svc.IsReadOnly())
}

func TestGateService_ResetClearsExpiry(t *testing.T) {
	ctx := context.Background()
	installs := &mocks.InstallRepository{}
	old := &gate.InstallRecord{ID: 1, InstalledAt: time.Now().Add(-25 * time.Minute)}
	installs.On("Latest", ctx).Return(old, nil).Once()
	installs.On("Create", ctx, mock.Anything).Return(nil)

	svc := gate.NewService(installs, "test", nil)
	require.True(t, svc.CheckStatus(ctx).Expired)

	rec, err := svc.Reset(ctx)
	require.NoError(t, err)
	require.False(t, svc.IsReadOnly())

	installs.On("Latest", ctx).Return(&gate.InstallRecord{ID: 2, InstalledAt: rec.InstalledAt}, nil)
	status := svc.CheckStatus(ctx)
	require.False(t, status.Expired)
	require.Equal(t, rec.InstalledAt, status.InstalledAt)
}

func TestGateService_ResetSurfacesStorageError(t *testing.T) {
	ctx := context.Background()
	installs := &mocks.InstallRepository{}
	installs.On("Create", ctx, mock.Anything).Return(errors.New("disk on fire"))

	svc := gate.NewService(installs, "test", nil)
	_, err := svc.Reset(ctx)
	require.Error(t, err)
}

func TestGateService_SetTrialDuration(t *testing.T) {
	installs := &mocks.InstallRepository{}
	svc := gate.NewService(installs, "test", nil)

	require.ErrorIs(t, svc.SetTrialDuration(0), gate.ErrInvalidDuration)
	require.ErrorIs(t, svc.SetTrialDuration(-time.Minute), gate.ErrInvalidDuration)
	require.NoError(t, svc.SetTrialDuration(45*time.Minute))
	require.Equal(t, 45*time.Minute, svc.TrialDuration())
}
