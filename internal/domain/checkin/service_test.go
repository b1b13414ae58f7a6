package checkin_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rowanfield/guestgate/internal/domain/checkin"
	"github.com/rowanfield/guestgate/internal/domain/guest"
	"github.com/rowanfield/guestgate/internal/repository"
	"github.com/rowanfield/guestgate/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCheckinService_CheckIn(t *testing.T) {
	ctx := context.Background()
	records := &mocks.CheckinRepository{}
	guests := &mocks.GuestRepository{}

	guests.On("Get", ctx, "g1").Return(&guest.Guest{ID: "g1", Name: "Alice"}, nil)
	records.On("Create", ctx, mock.Anything).Return(nil)

	svc := checkin.NewService(records, guests, nil)
	rec, err := svc.CheckIn(ctx, checkin.CheckInRequest{GuestID: "g1", Name: "Alice"})
	require.NoError(t, err)
	require.Equal(t, "g1", rec.GuestID)
	require.Equal(t, "Alice", rec.GuestName)
	require.NotEmpty(t, rec.ID)
	require.False(t, rec.CheckedInAt.IsZero())
}

func TestCheckinService_CheckIn_NameFallsBackToRegistry(t *testing.T) {
	ctx := context.Background()
	records := &mocks.CheckinRepository{}
	guests := &mocks.GuestRepository{}

	guests.On("Get", ctx, "g1").Return(&guest.Guest{ID: "g1", Name: "Alice"}, nil)
	records.On("Create", ctx, mock.Anything).Return(nil)

	svc := checkin.NewService(records, guests, nil)
	rec, err := svc.CheckIn(ctx, checkin.CheckInRequest{GuestID: "g1"})
	require.NoError(t, err)
	require.Equal(t, "Alice", rec.GuestName)
}

func TestCheckinService_CheckIn_ExplicitTimestamp(t *testing.T) {
	ctx := context.Background()
	records := &mocks.CheckinRepository{}
	guests := &mocks.GuestRepository{}

	guests.On("Get", ctx, "g1").Return(&guest.Guest{ID: "g1", Name: "Alice"}, nil)
	records.On("Create", ctx, mock.Anything).Return(nil)

	scannedAt := time.Date(2025, 6, 1, 19, 30, 0, 0, time.UTC)
	svc := checkin.NewService(records, guests, nil)
	rec, err := svc.CheckIn(ctx, checkin.CheckInRequest{GuestID: "g1", Timestamp: &scannedAt})
	require.NoError(t, err)
	require.Equal(t, scannedAt, rec.CheckedInAt)
}

func TestCheckinService_CheckIn_GuestNotFound(t *testing.T) {
	ctx := context.Background()
	records := &mocks.CheckinRepository{}
	guests := &mocks.GuestRepository{}

	guests.On("Get", ctx, "missing").Return(nil, guest.ErrNotFound)

	svc := checkin.NewService(records, guests, nil)
	_, err := svc.CheckIn(ctx, checkin.CheckInRequest{GuestID: "missing"})
	require.ErrorIs(t, err, checkin.ErrGuestNotFound)
	records.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCheckinService_CheckIn_AlreadyCheckedIn(t *testing.T) {
	ctx := context.Background()
	records := &mocks.CheckinRepository{}
	guests := &mocks.GuestRepository{}

	guests.On("Get", ctx, "g1").Return(&guest.Guest{ID: "g1", Name: "Alice"}, nil)
	records.On("Create", ctx, mock.Anything).Return(repository.ErrConflict)

	svc := checkin.NewService(records, guests, nil)
	_, err := svc.CheckIn(ctx, checkin.CheckInRequest{GuestID: "g1"})
	require.ErrorIs(t, err, checkin.ErrAlreadyCheckedIn)
}

func TestCheckinService_CheckIn_GuestDeletedBetweenLookupAndInsert(t *testing.T) {
	ctx := context.Background()
	records := &mocks.CheckinRepository{}
	guests := &mocks.GuestRepository{}

	guests.On("Get", ctx, "g1").Return(&guest.Guest{ID: "g1", Name: "Alice"}, nil)
	records.On("Create", ctx, mock.Anything).Return(repository.ErrForeignKeyViolation)

	svc := checkin.NewService(records, guests, nil)
	_, err := svc.CheckIn(ctx, checkin.CheckInRequest{GuestID: "g1"})
	require.ErrorIs(t, err, checkin.ErrGuestNotFound)
}

func TestCheckinService_CheckIn_StorageFailureIsClosed(t *testing.T) {
	ctx := context.Background()
	records := &mocks.CheckinRepository{}
	guests := &mocks.GuestRepository{}

	guests.On("Get", ctx, "g1").Return(&guest.Guest{ID: "g1", Name: "Alice"}, nil)
	records.On("Create", ctx, mock.Anything).Return(errors.New("database is locked"))

	svc := checkin.NewService(records, guests, nil)
	_, err := svc.CheckIn(ctx, checkin.CheckInRequest{GuestID: "g1"})
	require.ErrorIs(t, err, checkin.ErrStorageUnavailable)
	// Transient failures get exactly one retry.
	records.AssertNumberOfCalls(t, "Create", 2)
}

func TestCheckinService_CheckIn_RetrySucceeds(t *testing.T) {
	ctx := context.Background()
	records := &mocks.CheckinRepository{}
	guests := &mocks.GuestRepository{}

	guests.On("Get", ctx, "g1").Return(&guest.Guest{ID: "g1", Name: "Alice"}, nil)
	records.On("Create", ctx, mock.Anything).Return(errors.New("database is locked")).Once()
	records.On("Create", ctx, mock.Anything).Return(nil).Once()

	svc := checkin.NewService(records, guests, nil)
	rec, err := svc.CheckIn(ctx, checkin.CheckInRequest{GuestID: "g1"})
	require.NoError(t, err)
	require.Equal(t, "g1", rec.GuestID)
}

func TestCheckinService_CheckIn_ConflictIsNotRetried(t *testing.T) {
	ctx := context.Background()
	records := &mocks.CheckinRepository{}
	guests := &mocks.GuestRepository{}

	guests.On("Get", ctx, "g1").Return(&guest.Guest{ID: "g1", Name: "Alice"}, nil)
	records.On("Create", ctx, mock.Anything).Return(repository.ErrConflict)

	svc := checkin.NewService(records, guests, nil)
	_, err := svc.CheckIn(ctx, checkin.CheckInRequest{GuestID: "g1"})
	require.ErrorIs(t, err, checkin.ErrAlreadyCheckedIn)
	records.AssertNumberOfCalls(t, "Create", 1)
}

func TestCheckinService_CheckOut(t *testing.T) {
	ctx := context.Background()
	records := &mocks.CheckinRepository{}
	guests := &mocks.GuestRepository{}

	records.On("Delete", ctx, "g1").Return(nil)

	svc := checkin.NewService(records, guests, nil)
	require.NoError(t, svc.CheckOut(ctx, "g1"))
}

func TestCheckinService_CheckOut_NotCheckedIn(t *testing.T) {
	ctx := context.Background()
	records := &mocks.CheckinRepository{}
	guests := &mocks.GuestRepository{}

	records.On("Delete", ctx, "g1").Return(repository.ErrNotFound)

	svc := checkin.NewService(records, guests, nil)
	require.ErrorIs(t, svc.CheckOut(ctx, "g1"), checkin.ErrNotCheckedIn)
}

func TestCheckinService_CheckOut_StorageFailureIsClosed(t *testing.T) {
	ctx := context.Background()
	records := &mocks.CheckinRepository{}
	guests := &mocks.GuestRepository{}

	records.On("Delete", ctx, "g1").Return(errors.New("database is locked"))

	svc := checkin.NewService(records, guests, nil)
	require.ErrorIs(t, svc.CheckOut(ctx, "g1"), checkin.ErrStorageUnavailable)
	records.AssertNumberOfCalls(t, "Delete", 2)
}

func TestCheckinService_ListPresent(t *testing.T) {
	ctx := context.Background()
	records := &mocks.CheckinRepository{}
	guests := &mocks.GuestRepository{}

	records.On("ListPresent", ctx).Return([]checkin.Record{
		{ID: "c2", GuestID: "g2"},
		{ID: "c1", GuestID: "g1"},
	}, nil)

	svc := checkin.NewService(records, guests, nil)
	list, err := svc.ListPresent(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "c2", list[0].ID)
}

func TestCheckinService_InvalidInput(t *testing.T) {
	ctx := context.Background()
	svc := checkin.NewService(&mocks.CheckinRepository{}, &mocks.GuestRepository{}, nil)

	_, err := svc.CheckIn(ctx, checkin.CheckInRequest{})
	require.ErrorIs(t, err, checkin.ErrInvalidInput)
	require.ErrorIs(t, svc.CheckOut(ctx, ""), checkin.ErrInvalidInput)
}
