package reminder

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"chorus/models"

	"github.com/stretchr/testify/require"
)

// fakeReminderRepo is an in-memory ReminderRepository.
type fakeReminderRepo struct {
	mu        sync.Mutex
	store     map[string]models.Reminder
	createErr error
	updateErr error
}

func newFakeReminderRepo() *fakeReminderRepo {
	return &fakeReminderRepo{store: make(map[string]models.Reminder)}
}

func (f *fakeReminderRepo) GetByID(id string) (*models.Reminder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rem, ok := f.store[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return &rem, nil
}

func (f *fakeReminderRepo) GetActive() ([]models.Reminder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Reminder
	for _, rem := range f.store {
		if rem.IsActive {
			out = append(out, rem)
		}
	}
	return out, nil
}

func (f *fakeReminderRepo) Create(rem *models.Reminder) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.store[rem.ID] = *rem
	return nil
}

func (f *fakeReminderRepo) Update(rem *models.Reminder) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return f.updateErr
	}
	f.store[rem.ID] = *rem
	return nil
}

func (f *fakeReminderRepo) Deactivate(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	rem, ok := f.store[id]
	if !ok {
		return errors.New("not found")
	}
	rem.IsActive = false
	f.store[id] = rem
	return nil
}

// fakeAlarms records Schedule/Cancel calls.
type fakeAlarms struct {
	mu        sync.Mutex
	handle    string
	scheduled []string // previousHandle per Schedule call
	cancelled []string
}

func (f *fakeAlarms) Schedule(rem *models.Reminder, previousHandle string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scheduled = append(f.scheduled, previousHandle)
	return f.handle
}

func (f *fakeAlarms) Cancel(handle string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancelled = append(f.cancelled, handle)
	return nil
}

// fakeNotifier signals each dispatch on a channel.
type fakeNotifier struct {
	dispatched chan *models.Reminder
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{dispatched: make(chan *models.Reminder, 4)}
}

func (f *fakeNotifier) DispatchReminder(ctx context.Context, rem *models.Reminder) {
	f.dispatched <- rem
}

func (f *fakeNotifier) TokenHealth() (*models.TokenHealthReport, error) {
	return &models.TokenHealthReport{}, nil
}

func (f *fakeNotifier) awaitDispatch(t *testing.T) *models.Reminder {
	t.Helper()
	select {
	case rem := <-f.dispatched:
		return rem
	case <-time.After(time.Second):
		t.Fatal("expected a dispatch")
		return nil
	}
}

func (f *fakeNotifier) requireNoDispatch(t *testing.T) {
	t.Helper()
	select {
	case <-f.dispatched:
		t.Fatal("unexpected dispatch")
	case <-time.After(100 * time.Millisecond):
	}
}

func adminUser() *models.User {
	return &models.User{ID: "admin-1", Role: models.RoleAdmin}
}

func validInput() ReminderInput {
	return ReminderInput{
		Title:        "Концерт",
		Message:      "Выезд в 17:00",
		Type:         models.ReminderTypeConcert,
		EventDate:    time.Now().Add(48 * time.Hour),
		NotifyBefore: 3600,
		TargetUsers:  models.AudienceAll,
	}
}

func newService(repo *fakeReminderRepo, alarms *fakeAlarms, notifier *fakeNotifier) *DefaultReminderService {
	return &DefaultReminderService{Repo: repo, Alarms: alarms, Notifier: notifier}
}

func TestCreatePersistsSchedulesAndDispatches(t *testing.T) {
	repo := newFakeReminderRepo()
	alarms := &fakeAlarms{handle: "alarm-1"}
	notifier := newFakeNotifier()
	svc := newService(repo, alarms, notifier)

	rem, err := svc.Create(validInput(), adminUser())
	require.NoError(t, err)
	require.NotEmpty(t, rem.ID)
	require.True(t, rem.IsActive)
	require.Equal(t, "admin-1", rem.CreatedBy)
	require.Equal(t, "alarm-1", rem.LocalNotificationID)

	// The handle is written back onto the persisted record.
	stored, err := repo.GetByID(rem.ID)
	require.NoError(t, err)
	require.Equal(t, "alarm-1", stored.LocalNotificationID)

	// First scheduling passes no previous handle.
	require.Equal(t, []string{""}, alarms.scheduled)

	dispatched := notifier.awaitDispatch(t)
	require.Equal(t, rem.ID, dispatched.ID)
}

func TestCreateRequiresAdmin(t *testing.T) {
	repo := newFakeReminderRepo()
	notifier := newFakeNotifier()
	svc := newService(repo, &fakeAlarms{}, notifier)

	_, err := svc.Create(validInput(), &models.User{ID: "u1", Role: models.RoleChoir})
	require.ErrorIs(t, err, ErrNotAuthorized)

	_, err = svc.Create(validInput(), nil)
	require.ErrorIs(t, err, ErrNotAuthorized)

	require.Empty(t, repo.store)
	notifier.requireNoDispatch(t)
}

func TestCreateValidation(t *testing.T) {
	cases := []struct {
		name  string
		field string
		mut   func(*ReminderInput)
	}{
		{"empty title", "title", func(in *ReminderInput) { in.Title = "  " }},
		{"empty message", "message", func(in *ReminderInput) { in.Message = "" }},
		{"unknown type", "type", func(in *ReminderInput) { in.Type = "party" }},
		{"past event", "eventDate", func(in *ReminderInput) { in.EventDate = time.Now().Add(-time.Hour) }},
		{"bad lead time", "notifyBefore", func(in *ReminderInput) { in.NotifyBefore = 1234 }},
		{"unknown audience", "targetUsers", func(in *ReminderInput) { in.TargetUsers = "everyone" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFakeReminderRepo()
			svc := newService(repo, &fakeAlarms{}, newFakeNotifier())

			input := validInput()
			tc.mut(&input)

			_, err := svc.Create(input, adminUser())
			var vErr ValidationError
			require.ErrorAs(t, err, &vErr)
			require.Equal(t, tc.field, vErr.Field)
			// No partial save.
			require.Empty(t, repo.store)
		})
	}
}

func TestCreateSchedulingFailureStillSaves(t *testing.T) {
	repo := newFakeReminderRepo()
	alarms := &fakeAlarms{handle: ""} // registration failed or past-due
	notifier := newFakeNotifier()
	svc := newService(repo, alarms, notifier)

	rem, err := svc.Create(validInput(), adminUser())
	require.NoError(t, err)
	require.Empty(t, rem.LocalNotificationID)
	require.Len(t, repo.store, 1)
	notifier.awaitDispatch(t)
}

func TestUpdateReplacesAlarmAndDoesNotDispatch(t *testing.T) {
	repo := newFakeReminderRepo()
	alarms := &fakeAlarms{handle: "alarm-2"}
	notifier := newFakeNotifier()
	svc := newService(repo, alarms, notifier)

	repo.store["rem-1"] = models.Reminder{
		ID:                  "rem-1",
		Title:               "Старый заголовок",
		Message:             "Старый текст",
		Type:                models.ReminderTypeGeneral,
		IsActive:            true,
		LocalNotificationID: "alarm-1",
	}

	input := validInput()
	rem, err := svc.Update("rem-1", input, adminUser())
	require.NoError(t, err)
	require.Equal(t, "Концерт", rem.Title)
	require.Equal(t, "alarm-2", rem.LocalNotificationID)

	// The previous handle is passed to the scheduler exactly once.
	require.Equal(t, []string{"alarm-1"}, alarms.scheduled)

	// Edits never re-broadcast.
	notifier.requireNoDispatch(t)

	stored, err := repo.GetByID("rem-1")
	require.NoError(t, err)
	require.Equal(t, "alarm-2", stored.LocalNotificationID)
}

func TestUpdateUnknownReminder(t *testing.T) {
	svc := newService(newFakeReminderRepo(), &fakeAlarms{}, newFakeNotifier())

	_, err := svc.Update("missing", validInput(), adminUser())
	require.Error(t, err)
}

func TestCreatePersistenceFailureSurfaces(t *testing.T) {
	repo := newFakeReminderRepo()
	repo.createErr = errors.New("store down")
	notifier := newFakeNotifier()
	svc := newService(repo, &fakeAlarms{}, notifier)

	_, err := svc.Create(validInput(), adminUser())
	require.Error(t, err)
	notifier.requireNoDispatch(t)
}

func TestDeactivateCancelsAlarm(t *testing.T) {
	repo := newFakeReminderRepo()
	alarms := &fakeAlarms{}
	svc := newService(repo, alarms, newFakeNotifier())

	repo.store["rem-1"] = models.Reminder{ID: "rem-1", IsActive: true, LocalNotificationID: "alarm-1"}

	require.NoError(t, svc.Deactivate("rem-1", adminUser()))
	require.Equal(t, []string{"alarm-1"}, alarms.cancelled)

	stored, err := repo.GetByID("rem-1")
	require.NoError(t, err)
	require.False(t, stored.IsActive)
}
