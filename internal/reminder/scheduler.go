package reminder

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/KawiBot/Mantis/internal/domain/entity"
)

// State of the scheduler's polling loop.
type State int

const (
	// StateIdle means no polling timer is active because the store is empty.
	StateIdle State = iota
	// StatePolling means the scheduler wakes at a fixed interval to deliver
	// due reminders.
	StatePolling
)

// DefaultPollInterval is how often the scheduler checks for due reminders.
const DefaultPollInterval = 30 * time.Second

// Notifier delivers a consumed reminder to its owner.
type Notifier interface {
	Deliver(ctx context.Context, reminder *entity.Reminder) error
}

// Scheduler polls the store for due reminders and delivers them. It
// oscillates between Idle (empty store, no timer) and Polling for the
// lifetime of the process.
type Scheduler struct {
	store    *Store
	notifier Notifier
	interval time.Duration
	now      func() time.Time

	wake     chan struct{}
	stopChan chan struct{}
	running  bool

	mu    sync.Mutex
	state State
}

// NewScheduler creates a scheduler polling at the given interval.
func NewScheduler(store *Store, notifier Notifier, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Scheduler{
		store:    store,
		notifier: notifier,
		interval: interval,
		now:      time.Now,
		wake:     make(chan struct{}, 1),
		stopChan: make(chan struct{}),
	}
}

// Start launches the polling loop. The scheduler begins in Polling when the
// loaded store already holds reminders, Idle otherwise.
func (s *Scheduler) Start() {
	if s.running {
		return
	}
	s.running = true

	if s.store.Empty() {
		s.setState(StateIdle)
	} else {
		s.setState(StatePolling)
	}

	log.Println("Reminder scheduler starting...")
	go s.mainLoop()
}

// Stop terminates the polling loop.
func (s *Scheduler) Stop() {
	if !s.running {
		return
	}
	log.Println("Reminder scheduler stopping...")
	close(s.stopChan)
	s.running = false
}

// NotifyCreated wakes the scheduler after a reminder is created so an Idle
// scheduler starts polling again.
func (s *Scheduler) NotifyCreated() {
	// Non-blocking send; a pending wake already covers this creation.
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// State returns the scheduler's current state.
func (s *Scheduler) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Scheduler) setState(state State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
}

func (s *Scheduler) mainLoop() {
	for {
		if s.State() == StateIdle {
			select {
			case <-s.wake:
				log.Println("Reminder created, scheduler polling...")
				s.setState(StatePolling)
			case <-s.stopChan:
				return
			}
			continue
		}

		timer := time.NewTimer(s.interval)
		for fired := false; !fired; {
			select {
			case <-timer.C:
				s.tick()
				fired = true
			case <-s.wake:
				// Already polling; a new reminder does not change the
				// cadence, so the running timer is kept.
			case <-s.stopChan:
				timer.Stop()
				return
			}
		}
	}
}

// tick consumes every due reminder and attempts delivery for each. A failed
// delivery is logged and swallowed so the remaining entries still go out;
// the reminder was already removed from the store, so it is not retried on
// a later tick. When the store is left empty the scheduler goes Idle.
func (s *Scheduler) tick() {
	due, err := s.store.TakeDue(s.now())
	if err != nil {
		log.Printf("Error consuming due reminders: %v", err)
	}

	for _, reminder := range due {
		if err := s.notifier.Deliver(context.Background(), reminder); err != nil {
			log.Printf("Failed to deliver reminder %s to user %s: %v", reminder.ID, reminder.OwnerID, err)
			continue
		}
		log.Printf("Delivered reminder %s to user %s in channel %s", reminder.ID, reminder.OwnerID, reminder.ChannelID)
	}

	if s.store.Empty() {
		s.setState(StateIdle)
	}
}
