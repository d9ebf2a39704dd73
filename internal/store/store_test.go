package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/habithero/habitctl/internal/client"
	"github.com/habithero/habitctl/internal/client/mocks"
	errorvalues "github.com/habithero/habitctl/internal/error_values"
	"github.com/habithero/habitctl/internal/store"
	"github.com/habithero/habitctl/pkg/entity"
)

func TestMain(m *testing.M) {
	store.InitValidator()
	m.Run()
}

var fixedNow = func() time.Time {
	return time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)
}

const (
	today     = "2025-03-15"
	yesterday = "2025-03-14"
)

var testHabits = []entity.Habit{
	{ID: 1, UserID: 7, Name: "Drink Water", Frequency: entity.FrequencyDaily, Category: entity.CategoryHealth, StartDate: "2025-01-01"},
	{ID: 2, UserID: 7, Name: "Read Books", Frequency: entity.FrequencyDaily, Category: entity.CategoryLearning, StartDate: "2025-01-01"},
}

func loadedStore(t *testing.T, ctrl *gomock.Controller, policy store.PendingPolicy, habits []entity.Habit, checkins []entity.Checkin) (*store.Store, *mocks.MockHabitsAPI, *mocks.MockCheckinsAPI) {
	t.Helper()
	habitsAPI := mocks.NewMockHabitsAPI(ctrl)
	checkinsAPI := mocks.NewMockCheckinsAPI(ctrl)
	s := store.NewWithClock(habitsAPI, checkinsAPI, policy, fixedNow)
	habitsAPI.EXPECT().ListHabits(gomock.Any()).Return(habits, nil)
	checkinsAPI.EXPECT().ListCheckins(gomock.Any()).Return(checkins, nil)
	require.NoError(t, s.Load(context.Background()))
	return s, habitsAPI, checkinsAPI
}

func TestLoadReplacesStateWholesale(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	checkins := []entity.Checkin{{ID: 10, HabitID: 1, CheckinDate: today, Status: "completed"}}
	s, habitsAPI, checkinsAPI := loadedStore(t, ctrl, store.PendingReject, testHabits, checkins)

	assert.Equal(t, testHabits, s.Habits())
	assert.Equal(t, checkins, s.Checkins())

	newHabits := []entity.Habit{testHabits[0]}
	habitsAPI.EXPECT().ListHabits(gomock.Any()).Return(newHabits, nil)
	checkinsAPI.EXPECT().ListCheckins(gomock.Any()).Return([]entity.Checkin{}, nil)
	require.NoError(t, s.Load(context.Background()))
	assert.Equal(t, newHabits, s.Habits())
	assert.Empty(t, s.Checkins())
}

func TestLoadFailureLeavesStateUntouched(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	checkins := []entity.Checkin{{ID: 10, HabitID: 1, CheckinDate: yesterday, Status: "completed"}}
	s, habitsAPI, checkinsAPI := loadedStore(t, ctrl, store.PendingReject, testHabits, checkins)

	testCases := []struct {
		Desc         string
		MockPrepFunc func()
	}{
		{
			Desc: "habits fetch fails",
			MockPrepFunc: func() {
				habitsAPI.EXPECT().ListHabits(gomock.Any()).Return(nil, errors.New("boom"))
				checkinsAPI.EXPECT().ListCheckins(gomock.Any()).Return([]entity.Checkin{}, nil)
			},
		},
		{
			Desc: "check-ins fetch fails",
			MockPrepFunc: func() {
				habitsAPI.EXPECT().ListHabits(gomock.Any()).Return([]entity.Habit{}, nil)
				checkinsAPI.EXPECT().ListCheckins(gomock.Any()).Return(nil, errors.New("boom"))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			err := s.Load(context.Background())
			assert.Error(t, err)
			assert.Equal(t, testHabits, s.Habits())
			assert.Equal(t, checkins, s.Checkins())
		})
	}
}

func TestAddHabit(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	s, habitsAPI, _ := loadedStore(t, ctrl, store.PendingReject, nil, nil)

	req := &store.AddHabitRequest{
		Name:      "Exercise",
		Frequency: "daily",
		Category:  "health",
		StartDate: today,
	}
	created := &entity.Habit{ID: 5, UserID: 7, Name: "Exercise", Frequency: entity.FrequencyDaily, Category: entity.CategoryHealth, StartDate: today}
	habitsAPI.EXPECT().CreateHabit(gomock.Any(), &client.CreateHabitRequest{
		Name:      "Exercise",
		Frequency: "daily",
		Category:  "health",
		StartDate: today,
	}).Return(created, nil)

	habit, err := s.AddHabit(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(5), habit.ID)
	assert.Equal(t, []entity.Habit{*created}, s.Habits())
}

func TestAddHabitRejectsInvalidInput(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	s, _, _ := loadedStore(t, ctrl, store.PendingReject, nil, nil)

	testCases := []struct {
		Desc string
		Req  *store.AddHabitRequest
	}{
		{
			Desc: "missing name",
			Req:  &store.AddHabitRequest{Frequency: "daily", Category: "health", StartDate: today},
		},
		{
			Desc: "unknown frequency",
			Req:  &store.AddHabitRequest{Name: "x", Frequency: "hourly", Category: "health", StartDate: today},
		},
		{
			Desc: "unknown category",
			Req:  &store.AddHabitRequest{Name: "x", Frequency: "daily", Category: "sports", StartDate: today},
		},
		{
			Desc: "malformed start date",
			Req:  &store.AddHabitRequest{Name: "x", Frequency: "daily", Category: "health", StartDate: "15.03.2025"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			_, err := s.AddHabit(context.Background(), tc.Req)
			assert.Error(t, err)
			assert.Empty(t, s.Habits())
		})
	}
}

func TestDeleteHabit(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	checkins := []entity.Checkin{
		{ID: 10, HabitID: 1, CheckinDate: today, Status: "completed"},
		{ID: 11, HabitID: 2, CheckinDate: today, Status: "completed"},
	}
	s, habitsAPI, _ := loadedStore(t, ctrl, store.PendingReject, testHabits, checkins)

	habitsAPI.EXPECT().DeleteHabit(gomock.Any(), int64(1)).Return(nil)
	require.NoError(t, s.DeleteHabit(context.Background(), 1))
	assert.Equal(t, []entity.Habit{testHabits[1]}, s.Habits())
	assert.Equal(t, []entity.Checkin{checkins[1]}, s.Checkins())
}

func TestDeleteHabitFailureLeavesStateUntouched(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	checkins := []entity.Checkin{{ID: 10, HabitID: 1, CheckinDate: today, Status: "completed"}}
	s, habitsAPI, _ := loadedStore(t, ctrl, store.PendingReject, testHabits, checkins)

	habitsAPI.EXPECT().DeleteHabit(gomock.Any(), int64(1)).Return(errorvalues.ErrHabitNotFound)
	err := s.DeleteHabit(context.Background(), 1)
	assert.ErrorIs(t, err, errorvalues.ErrHabitNotFound)
	assert.Equal(t, testHabits, s.Habits())
	assert.Equal(t, checkins, s.Checkins())
}

func TestToggleCheckinCreates(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	s, _, checkinsAPI := loadedStore(t, ctrl, store.PendingReject, testHabits, nil)

	created := &entity.Checkin{ID: 42, HabitID: 1, CheckinDate: today, Status: "completed"}
	checkinsAPI.EXPECT().CreateCheckin(gomock.Any(), int64(1), today).DoAndReturn(
		func(ctx context.Context, habitID int64, date string) (*entity.Checkin, error) {
			// The optimistic record must be visible before the call resolves.
			pending := s.Checkins()
			require.Len(t, pending, 1)
			assert.Negative(t, pending[0].ID)
			assert.Equal(t, today, pending[0].CheckinDate)
			return created, nil
		})

	require.NoError(t, s.ToggleCheckin(context.Background(), 1))
	checkins := s.Checkins()
	require.Len(t, checkins, 1)
	assert.Equal(t, *created, checkins[0])
}

func TestToggleCheckinRemoves(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	// Stored date carries a time component; the toggle must still match it.
	existing := entity.Checkin{ID: 10, HabitID: 1, CheckinDate: today + "T08:00:00Z", Status: "completed"}
	s, _, checkinsAPI := loadedStore(t, ctrl, store.PendingReject, testHabits, []entity.Checkin{existing})

	checkinsAPI.EXPECT().DeleteCheckin(gomock.Any(), int64(1), int64(10)).DoAndReturn(
		func(ctx context.Context, habitID, checkinID int64) error {
			assert.Empty(t, s.Checkins())
			return nil
		})

	require.NoError(t, s.ToggleCheckin(context.Background(), 1))
	assert.Empty(t, s.Checkins())
}

func TestToggleCheckinCreateFailureRollsBack(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	checkins := []entity.Checkin{{ID: 9, HabitID: 2, CheckinDate: yesterday, Status: "completed"}}
	s, _, checkinsAPI := loadedStore(t, ctrl, store.PendingReject, testHabits, checkins)

	before := s.Checkins()
	apiErr := errors.New("server unavailable")
	checkinsAPI.EXPECT().CreateCheckin(gomock.Any(), int64(1), today).Return(nil, apiErr)

	err := s.ToggleCheckin(context.Background(), 1)
	assert.ErrorIs(t, err, apiErr)
	assert.Equal(t, before, s.Checkins())
}

func TestToggleCheckinRemoveFailureRollsBack(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	checkins := []entity.Checkin{
		{ID: 9, HabitID: 2, CheckinDate: yesterday, Status: "completed"},
		{ID: 10, HabitID: 1, CheckinDate: today, Status: "completed"},
		{ID: 11, HabitID: 2, CheckinDate: today, Status: "completed"},
	}
	s, _, checkinsAPI := loadedStore(t, ctrl, store.PendingReject, testHabits, checkins)

	before := s.Checkins()
	apiErr := errors.New("server unavailable")
	checkinsAPI.EXPECT().DeleteCheckin(gomock.Any(), int64(1), int64(10)).Return(apiErr)

	err := s.ToggleCheckin(context.Background(), 1)
	assert.ErrorIs(t, err, apiErr)
	// Rollback restores the record at its original position.
	assert.Equal(t, before, s.Checkins())
}

func TestToggleCheckinRejectsWhilePending(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	s, _, checkinsAPI := loadedStore(t, ctrl, store.PendingReject, testHabits, nil)

	inFlight := make(chan struct{})
	release := make(chan struct{})
	checkinsAPI.EXPECT().CreateCheckin(gomock.Any(), int64(1), today).DoAndReturn(
		func(ctx context.Context, habitID int64, date string) (*entity.Checkin, error) {
			close(inFlight)
			<-release
			return &entity.Checkin{ID: 42, HabitID: 1, CheckinDate: today, Status: "completed"}, nil
		})

	firstDone := make(chan error, 1)
	go func() {
		firstDone <- s.ToggleCheckin(context.Background(), 1)
	}()
	<-inFlight

	err := s.ToggleCheckin(context.Background(), 1)
	assert.ErrorIs(t, err, errorvalues.ErrTogglePending)

	close(release)
	require.NoError(t, <-firstDone)
	require.Len(t, s.Checkins(), 1)
}

func TestToggleCheckinQueuesWhilePending(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	s, _, checkinsAPI := loadedStore(t, ctrl, store.PendingQueue, testHabits, nil)

	inFlight := make(chan struct{})
	release := make(chan struct{})
	checkinsAPI.EXPECT().CreateCheckin(gomock.Any(), int64(1), today).DoAndReturn(
		func(ctx context.Context, habitID int64, date string) (*entity.Checkin, error) {
			close(inFlight)
			<-release
			return &entity.Checkin{ID: 42, HabitID: 1, CheckinDate: today, Status: "completed"}, nil
		})
	// The queued toggle re-reads state, sees the first one's check-in and
	// undoes it.
	checkinsAPI.EXPECT().DeleteCheckin(gomock.Any(), int64(1), int64(42)).Return(nil)

	firstDone := make(chan error, 1)
	secondDone := make(chan error, 1)
	go func() {
		firstDone <- s.ToggleCheckin(context.Background(), 1)
	}()
	<-inFlight
	go func() {
		secondDone <- s.ToggleCheckin(context.Background(), 1)
	}()

	close(release)
	require.NoError(t, <-firstDone)
	require.NoError(t, <-secondDone)
	assert.Empty(t, s.Checkins())
}

func TestToggleCheckinQueueHonorsContext(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	s, _, checkinsAPI := loadedStore(t, ctrl, store.PendingQueue, testHabits, nil)

	inFlight := make(chan struct{})
	release := make(chan struct{})
	checkinsAPI.EXPECT().CreateCheckin(gomock.Any(), int64(1), today).DoAndReturn(
		func(ctx context.Context, habitID int64, date string) (*entity.Checkin, error) {
			close(inFlight)
			<-release
			return &entity.Checkin{ID: 42, HabitID: 1, CheckinDate: today, Status: "completed"}, nil
		})

	firstDone := make(chan error, 1)
	go func() {
		firstDone <- s.ToggleCheckin(context.Background(), 1)
	}()
	<-inFlight

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := s.ToggleCheckin(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)

	close(release)
	require.NoError(t, <-firstDone)
}

func TestLateCompletionAfterCloseIsNoOp(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	s, _, checkinsAPI := loadedStore(t, ctrl, store.PendingReject, testHabits, nil)

	inFlight := make(chan struct{})
	release := make(chan struct{})
	checkinsAPI.EXPECT().CreateCheckin(gomock.Any(), int64(1), today).DoAndReturn(
		func(ctx context.Context, habitID int64, date string) (*entity.Checkin, error) {
			close(inFlight)
			<-release
			return &entity.Checkin{ID: 42, HabitID: 1, CheckinDate: today, Status: "completed"}, nil
		})

	done := make(chan error, 1)
	go func() {
		done <- s.ToggleCheckin(context.Background(), 1)
	}()
	<-inFlight
	s.Close()
	close(release)
	require.NoError(t, <-done)
}

func TestHabitsWithCheckins(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	checkins := []entity.Checkin{
		{ID: 10, HabitID: 1, CheckinDate: today + "T09:00:00Z", Status: "completed"},
		{ID: 11, HabitID: 1, CheckinDate: yesterday, Status: "completed"},
		{ID: 12, HabitID: 2, CheckinDate: yesterday, Status: "completed"},
	}
	s, _, _ := loadedStore(t, ctrl, store.PendingReject, testHabits, checkins)

	derived := s.HabitsWithCheckins()
	require.Len(t, derived, 2)

	assert.Equal(t, int64(1), derived[0].ID)
	assert.True(t, derived[0].CompletedToday)
	assert.Equal(t, 2, derived[0].Streak)
	assert.Len(t, derived[0].Checkins, 2)

	assert.Equal(t, int64(2), derived[1].ID)
	assert.False(t, derived[1].CompletedToday)
	assert.Equal(t, 1, derived[1].Streak)
	assert.Len(t, derived[1].Checkins, 1)
}
