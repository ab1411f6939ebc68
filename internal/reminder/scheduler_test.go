package reminder

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/KawiBot/Mantis/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotifier struct {
	mu        sync.Mutex
	delivered []*entity.Reminder
	failing   map[string]error
}

func (f *fakeNotifier) Deliver(_ context.Context, reminder *entity.Reminder) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err, ok := f.failing[reminder.Message]; ok {
		return err
	}
	f.delivered = append(f.delivered, reminder)
	return nil
}

func (f *fakeNotifier) deliveredMessages() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	messages := make([]string, len(f.delivered))
	for i, r := range f.delivered {
		messages[i] = r.Message
	}
	return messages
}

func TestScheduler_StartsIdleWithEmptyStore(t *testing.T) {
	store := newTestStore(t)
	sched := NewScheduler(store, &fakeNotifier{}, time.Minute)

	sched.Start()
	defer sched.Stop()

	assert.Equal(t, StateIdle, sched.State())
}

func TestScheduler_StartsPollingWithLoadedStore(t *testing.T) {
	store := newTestStore(t)
	_, err := store.Create("U42", "C7", "from last run", time.Hour)
	require.NoError(t, err)

	sched := NewScheduler(store, &fakeNotifier{}, time.Minute)
	sched.Start()
	defer sched.Stop()

	assert.Equal(t, StatePolling, sched.State())
}

func TestScheduler_NotifyCreatedWakesIdleScheduler(t *testing.T) {
	store := newTestStore(t)
	sched := NewScheduler(store, &fakeNotifier{}, time.Minute)

	sched.Start()
	defer sched.Stop()
	require.Equal(t, StateIdle, sched.State())

	_, err := store.Create("U42", "C7", "wake up", time.Hour)
	require.NoError(t, err)
	sched.NotifyCreated()

	assert.Eventually(t, func() bool {
		return sched.State() == StatePolling
	}, time.Second, 5*time.Millisecond)
}

func TestScheduler_TickDeliversDueAndGoesIdle(t *testing.T) {
	store := newTestStore(t)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	_, err := store.Create("U42", "C7", "due now", time.Minute)
	require.NoError(t, err)

	notifier := &fakeNotifier{}
	sched := NewScheduler(store, notifier, time.Minute)
	sched.setState(StatePolling)
	sched.now = func() time.Time { return now.Add(2 * time.Minute) }

	sched.tick()

	assert.Equal(t, []string{"due now"}, notifier.deliveredMessages())
	assert.True(t, store.Empty())
	assert.Equal(t, StateIdle, sched.State())
}

func TestScheduler_TickKeepsPollingWhileRemindersRemain(t *testing.T) {
	store := newTestStore(t)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	_, err := store.Create("U42", "C7", "due now", time.Minute)
	require.NoError(t, err)
	_, err = store.Create("U42", "C7", "due later", time.Hour)
	require.NoError(t, err)

	notifier := &fakeNotifier{}
	sched := NewScheduler(store, notifier, time.Minute)
	sched.setState(StatePolling)
	sched.now = func() time.Time { return now.Add(2 * time.Minute) }

	sched.tick()

	assert.Equal(t, []string{"due now"}, notifier.deliveredMessages())
	assert.Equal(t, StatePolling, sched.State())
}

// A delivery failure must not abort the rest of the tick, and the failed
// reminder stays consumed rather than being re-queued.
func TestScheduler_TickIsolatesDeliveryFailures(t *testing.T) {
	store := newTestStore(t)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	_, err := store.Create("U1", "C7", "broken", time.Minute)
	require.NoError(t, err)
	_, err = store.Create("U2", "C7", "fine", time.Minute)
	require.NoError(t, err)

	notifier := &fakeNotifier{
		failing: map[string]error{"broken": errors.New("slack is down")},
	}
	sched := NewScheduler(store, notifier, time.Minute)
	sched.setState(StatePolling)
	sched.now = func() time.Time { return now.Add(2 * time.Minute) }

	sched.tick()

	assert.Equal(t, []string{"fine"}, notifier.deliveredMessages())
	assert.True(t, store.Empty(), "failed delivery should not re-queue the reminder")
	assert.Equal(t, StateIdle, sched.State())
}

// Wakes arriving faster than the poll interval must not postpone the tick
// timer, or a due reminder would never be delivered.
func TestScheduler_WakesWhilePollingDoNotStarveTicks(t *testing.T) {
	store := newTestStore(t)
	_, err := store.Create("U42", "C7", "already due", -time.Second)
	require.NoError(t, err)

	notifier := &fakeNotifier{}
	sched := NewScheduler(store, notifier, 50*time.Millisecond)
	sched.Start()
	defer sched.Stop()

	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(10 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				sched.NotifyCreated()
			case <-done:
				return
			}
		}
	}()

	assert.Eventually(t, func() bool {
		return len(notifier.deliveredMessages()) == 1
	}, time.Second, 5*time.Millisecond)
}

func TestScheduler_PollingLoopDeliversOnTimer(t *testing.T) {
	store := newTestStore(t)
	_, err := store.Create("U42", "C7", "quick", -time.Second)
	require.NoError(t, err)

	notifier := &fakeNotifier{}
	sched := NewScheduler(store, notifier, 10*time.Millisecond)
	sched.Start()
	defer sched.Stop()

	assert.Eventually(t, func() bool {
		return len(notifier.deliveredMessages()) == 1 && sched.State() == StateIdle
	}, time.Second, 5*time.Millisecond)
}
