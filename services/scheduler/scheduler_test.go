package scheduler

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"chorus/models"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/require"
)

// fakeEnqueuer records enqueued tasks and their options.
type fakeEnqueuer struct {
	tasks []*asynq.Task
	opts  [][]asynq.Option
	err   error
	next  int
}

func (f *fakeEnqueuer) Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	f.tasks = append(f.tasks, task)
	f.opts = append(f.opts, opts)
	if f.err != nil {
		return nil, f.err
	}
	f.next++
	return &asynq.TaskInfo{ID: fmt.Sprintf("task-%d", f.next), Queue: ReminderQueue}, nil
}

// fakeRemover records cancelled handles.
type fakeRemover struct {
	deleted []string
	err     error
}

func (f *fakeRemover) DeleteTask(queue, id string) error {
	f.deleted = append(f.deleted, id)
	return f.err
}

func futureReminder(eventIn time.Duration, notifyBefore int64) *models.Reminder {
	return &models.Reminder{
		ID:           "rem-1",
		Title:        "Концерт",
		Message:      "Выезд в 17:00",
		EventDate:    time.Now().Add(eventIn),
		NotifyBefore: notifyBefore,
	}
}

func TestScheduleArmsAlarm(t *testing.T) {
	// Event in 2h with a 1h lead time: the alarm trigger lands in the
	// future and registration succeeds.
	enq := &fakeEnqueuer{}
	rem := &fakeRemover{}
	s := &AsynqAlarmScheduler{Enqueuer: enq, Remover: rem}

	handle := s.Schedule(futureReminder(2*time.Hour, 3600), "")
	require.NotEmpty(t, handle)
	require.Len(t, enq.tasks, 1)
	require.Equal(t, TypeReminderFire, enq.tasks[0].Type())
	require.Empty(t, rem.deleted)

	var payload models.ReminderFirePayload
	require.NoError(t, json.Unmarshal(enq.tasks[0].Payload(), &payload))
	require.Equal(t, "rem-1", payload.ReminderID)
	require.Equal(t, "Концерт", payload.Title)
	require.Equal(t, "Выезд в 17:00", payload.Message)
}

func TestSchedulePastDueReturnsEmptyHandle(t *testing.T) {
	// Event in 2h with a 1-week lead time: the trigger is already in the
	// past, so nothing is registered. Deliberate policy, not an error.
	enq := &fakeEnqueuer{}
	s := &AsynqAlarmScheduler{Enqueuer: enq, Remover: &fakeRemover{}}

	handle := s.Schedule(futureReminder(2*time.Hour, 604800), "")
	require.Empty(t, handle)
	require.Empty(t, enq.tasks)
}

func TestScheduleCancelsPreviousHandleFirst(t *testing.T) {
	enq := &fakeEnqueuer{}
	rem := &fakeRemover{}
	s := &AsynqAlarmScheduler{Enqueuer: enq, Remover: rem}

	handle := s.Schedule(futureReminder(2*time.Hour, 900), "old-handle")
	require.NotEmpty(t, handle)
	require.Equal(t, []string{"old-handle"}, rem.deleted)
	require.Len(t, enq.tasks, 1)
}

func TestScheduleCancelFailureDoesNotBlockRegistration(t *testing.T) {
	enq := &fakeEnqueuer{}
	rem := &fakeRemover{err: errors.New("task gone")}
	s := &AsynqAlarmScheduler{Enqueuer: enq, Remover: rem}

	handle := s.Schedule(futureReminder(time.Hour, 900), "old-handle")
	require.NotEmpty(t, handle)
	require.Len(t, enq.tasks, 1)
}

func TestScheduleRegistrationFailureReturnsEmptyHandle(t *testing.T) {
	enq := &fakeEnqueuer{err: errors.New("redis down")}
	s := &AsynqAlarmScheduler{Enqueuer: enq, Remover: &fakeRemover{}}

	handle := s.Schedule(futureReminder(time.Hour, 900), "")
	require.Empty(t, handle)
}

func TestScheduleDoesNotCancelWhenPastDue(t *testing.T) {
	// The previous alarm stays armed when the replacement would be past-due.
	rem := &fakeRemover{}
	s := &AsynqAlarmScheduler{Enqueuer: &fakeEnqueuer{}, Remover: rem}

	handle := s.Schedule(futureReminder(time.Minute, 3600), "old-handle")
	require.Empty(t, handle)
	require.Empty(t, rem.deleted)
}
