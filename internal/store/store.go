package store

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/habithero/habitctl/internal/client"
	errorvalues "github.com/habithero/habitctl/internal/error_values"
	"github.com/habithero/habitctl/pkg/entity"
)

// PendingPolicy decides what a toggle does when another toggle on the same
// habit has not resolved yet.
type PendingPolicy int

const (
	// PendingReject fails the second toggle with ErrTogglePending.
	PendingReject PendingPolicy = iota
	// PendingQueue waits for the in-flight toggle to resolve, then re-reads
	// state and proceeds.
	PendingQueue
)

// Store owns the in-memory habit and check-in collections of the current
// user. Toggles mutate local state optimistically and roll back before the
// error reaches the caller, so readers never observe a state the server
// rejected alongside the error.
type Store struct {
	habitsAPI   client.HabitsAPI
	checkinsAPI client.CheckinsAPI
	policy      PendingPolicy
	now         func() time.Time

	mu           sync.Mutex
	habits       []entity.Habit
	checkins     []entity.Checkin
	pending      map[int64]chan struct{}
	nextSentinel int64
	closed       bool
}

func New(habitsAPI client.HabitsAPI, checkinsAPI client.CheckinsAPI, policy PendingPolicy) *Store {
	return NewWithClock(habitsAPI, checkinsAPI, policy, time.Now)
}

// NewWithClock injects the clock; tests pin it to a fixed day.
func NewWithClock(habitsAPI client.HabitsAPI, checkinsAPI client.CheckinsAPI, policy PendingPolicy, now func() time.Time) *Store {
	if habitsAPI == nil || checkinsAPI == nil {
		log.Fatal("on habit store provided nil api clients")
	}
	return &Store{
		habitsAPI:    habitsAPI,
		checkinsAPI:  checkinsAPI,
		policy:       policy,
		now:          now,
		pending:      make(map[int64]chan struct{}),
		nextSentinel: -1,
	}
}

// Close marks the store discarded. Requests still in flight resolve into
// no-ops instead of mutating abandoned state.
func (s *Store) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}

// Load fetches the habit list and the check-in list concurrently and swaps
// both collections in one step. Either fetch failing aborts the whole
// refresh and keeps the previous state.
func (s *Store) Load(ctx context.Context) error {
	var (
		habits     []entity.Habit
		checkins   []entity.Checkin
		habitsErr  error
		checkinErr error
		wg         sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		habits, habitsErr = s.habitsAPI.ListHabits(ctx)
	}()
	go func() {
		defer wg.Done()
		checkins, checkinErr = s.checkinsAPI.ListCheckins(ctx)
	}()
	wg.Wait()
	if habitsErr != nil {
		return errors.New("loading habits: " + habitsErr.Error())
	}
	if checkinErr != nil {
		return errors.New("loading check-ins: " + checkinErr.Error())
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.habits = habits
	s.checkins = checkins
	return nil
}

// AddHabitRequest carries validated user input for habit creation.
type AddHabitRequest struct {
	Name        string `validate:"required,max=200"`
	Description string `validate:"max=1000"`
	Frequency   string `validate:"required,frequency"`
	Category    string `validate:"required,category"`
	StartDate   string `validate:"required,calendar_date"`
}

// AddHabit creates the habit remotely and appends the server-returned record.
// No optimistic insert here: the id is server-authoritative.
func (s *Store) AddHabit(ctx context.Context, req *AddHabitRequest) (*entity.Habit, error) {
	if err := validate.Struct(req); err != nil {
		return nil, errors.New("invalid habit: " + err.Error())
	}
	habit, err := s.habitsAPI.CreateHabit(ctx, &client.CreateHabitRequest{
		Name:        req.Name,
		Description: req.Description,
		Frequency:   req.Frequency,
		Category:    req.Category,
		StartDate:   req.StartDate,
	})
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.habits = append(s.habits, *habit)
	}
	return habit, nil
}

// UpdateHabit applies the provided fields remotely and replaces the local
// record with the server's version.
func (s *Store) UpdateHabit(ctx context.Context, id int64, req *client.UpdateHabitRequest) (*entity.Habit, error) {
	habit, err := s.habitsAPI.UpdateHabit(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		for i := range s.habits {
			if s.habits[i].ID == id {
				s.habits[i] = *habit
				break
			}
		}
	}
	return habit, nil
}

// DeleteHabit removes the habit and its check-ins from local state only once
// the server confirmed the deletion. Unlike toggling there is no optimistic
// removal: delete has no natural undo preview.
func (s *Store) DeleteHabit(ctx context.Context, id int64) error {
	if err := s.habitsAPI.DeleteHabit(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.habits = slices.DeleteFunc(s.habits, func(h entity.Habit) bool {
		return h.ID == id
	})
	s.checkins = slices.DeleteFunc(s.checkins, func(c entity.Checkin) bool {
		return c.HabitID == id
	})
	return nil
}

// ToggleCheckin flips today's check-in for the habit. The local mutation is
// applied before the network call resolves and fully rolled back on failure.
func (s *Store) ToggleCheckin(ctx context.Context, habitID int64) error {
	release, err := s.acquireGate(ctx, habitID)
	if err != nil {
		return err
	}
	defer release()

	today := s.now().Format(time.DateOnly)

	s.mu.Lock()
	idx := slices.IndexFunc(s.checkins, func(c entity.Checkin) bool {
		return c.HabitID == habitID && c.Date() == today
	})
	if idx >= 0 {
		removed := s.checkins[idx]
		s.checkins = slices.Delete(s.checkins, idx, idx+1)
		s.mu.Unlock()
		return s.resolveUncheck(ctx, habitID, removed, idx)
	}
	sentinelID := s.nextSentinel
	s.nextSentinel--
	optimistic := entity.Checkin{
		ID:          sentinelID,
		HabitID:     habitID,
		CheckinDate: today,
		Status:      "completed",
	}
	s.checkins = append(s.checkins, optimistic)
	s.mu.Unlock()
	return s.resolveCheck(ctx, habitID, sentinelID, today)
}

// resolveUncheck confirms an optimistic removal. On failure the removed
// record goes back to its original position before the error propagates.
func (s *Store) resolveUncheck(ctx context.Context, habitID int64, removed entity.Checkin, idx int) error {
	err := s.checkinsAPI.DeleteCheckin(ctx, habitID, removed.ID)
	if err == nil {
		return nil
	}
	s.mu.Lock()
	if !s.closed {
		if idx > len(s.checkins) {
			idx = len(s.checkins)
		}
		s.checkins = slices.Insert(s.checkins, idx, removed)
	}
	s.mu.Unlock()
	slog.Debug("uncheck rolled back", slog.Int64("habit_id", habitID), slog.String("error", err.Error()))
	return err
}

// resolveCheck reconciles an optimistic insert: the sentinel record is
// swapped for the server's, or dropped when the create failed.
func (s *Store) resolveCheck(ctx context.Context, habitID, sentinelID int64, date string) error {
	created, err := s.checkinsAPI.CreateCheckin(ctx, habitID, date)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.checkins = slices.DeleteFunc(s.checkins, func(c entity.Checkin) bool {
		return c.ID == sentinelID
	})
	if err != nil {
		slog.Debug("check rolled back", slog.Int64("habit_id", habitID), slog.String("error", err.Error()))
		return err
	}
	s.checkins = append(s.checkins, *created)
	return nil
}

// acquireGate claims the per-habit pending slot. With PendingQueue it blocks
// until the in-flight toggle resolves, honoring ctx while waiting.
func (s *Store) acquireGate(ctx context.Context, habitID int64) (func(), error) {
	for {
		s.mu.Lock()
		gate, inFlight := s.pending[habitID]
		if !inFlight {
			done := make(chan struct{})
			s.pending[habitID] = done
			s.mu.Unlock()
			return func() {
				s.mu.Lock()
				delete(s.pending, habitID)
				s.mu.Unlock()
				close(done)
			}, nil
		}
		s.mu.Unlock()
		if s.policy == PendingReject {
			return nil, errorvalues.ErrTogglePending
		}
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// HabitsWithCheckins derives the read-model from current state: each habit
// with its check-ins, streak and completed-today flag. Pure recomputation on
// every call, nothing is cached.
func (s *Store) HabitsWithCheckins() []entity.HabitWithCheckins {
	s.mu.Lock()
	defer s.mu.Unlock()
	today := s.now()
	result := make([]entity.HabitWithCheckins, 0, len(s.habits))
	for _, h := range s.habits {
		var habitCheckins []entity.Checkin
		for _, c := range s.checkins {
			if c.HabitID == h.ID {
				habitCheckins = append(habitCheckins, c)
			}
		}
		result = append(result, entity.HabitWithCheckins{
			Habit:          h,
			Checkins:       habitCheckins,
			Streak:         currentStreak(habitCheckins, today),
			CompletedToday: completedOn(habitCheckins, today),
		})
	}
	return result
}

// Today is the store clock's current calendar date.
func (s *Store) Today() string {
	return s.now().Format(time.DateOnly)
}

// Habits returns a copy of the habit collection.
func (s *Store) Habits() []entity.Habit {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.habits)
}

// Checkins returns a copy of the check-in collection.
func (s *Store) Checkins() []entity.Checkin {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.checkins)
}
