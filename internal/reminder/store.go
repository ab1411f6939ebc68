// Package reminder implements the delayed reminder subsystem: a file-backed
// store of pending reminders per user and a polling scheduler that delivers
// them when due.
package reminder

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/KawiBot/Mantis/internal/domain/entity"
	"github.com/google/uuid"
)

// ErrNotFound is returned when cancelling a position that does not exist.
var ErrNotFound = errors.New("reminder not found")

// Store holds every user's pending reminders and owns the durable JSON
// file. Every mutation persists the full mapping before returning, inside
// the same critical section, so no caller ever observes a partially-applied
// mutation.
type Store struct {
	path string
	now  func() time.Time

	mu      sync.Mutex
	byOwner map[string][]*entity.Reminder
}

// NewStore loads the store from path. A missing file yields an empty store;
// a file that exists but cannot be parsed is an error, so corrupted data is
// surfaced at startup instead of being silently discarded.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:    path,
		now:     time.Now,
		byOwner: make(map[string][]*entity.Reminder),
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read reminder file: %w", err)
	}

	if err := json.Unmarshal(data, &s.byOwner); err != nil {
		return nil, fmt.Errorf("reminder file %s is corrupt: %w", path, err)
	}

	return s, nil
}

// Create appends a reminder due now+in to the owner's list and persists.
func (s *Store) Create(ownerID, channelID, message string, in time.Duration) (*entity.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reminder := &entity.Reminder{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		ChannelID: channelID,
		Message:   message,
		DueAt:     s.now().Add(in),
		Ordinal:   len(s.byOwner[ownerID]) + 1,
	}

	s.byOwner[ownerID] = append(s.byOwner[ownerID], reminder)

	if err := s.save(); err != nil {
		// Undo so a failed create leaves no trace in memory either.
		list := s.byOwner[ownerID]
		if len(list) == 1 {
			delete(s.byOwner, ownerID)
		} else {
			s.byOwner[ownerID] = list[:len(list)-1]
		}
		return nil, err
	}

	return reminder, nil
}

// List returns the owner's pending reminders in creation order. The
// returned slice is a copy and safe to hold across further mutations.
func (s *Store) List(ownerID string) []*entity.Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.byOwner[ownerID]
	out := make([]*entity.Reminder, len(list))
	copy(out, list)
	return out
}

// Cancel removes and returns the reminder at the given 1-based position.
// An unknown owner or out-of-range position returns ErrNotFound without
// mutating anything.
func (s *Store) Cancel(ownerID string, position int) (*entity.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.byOwner[ownerID]
	if position < 1 || position > len(list) {
		return nil, ErrNotFound
	}

	removed := list[position-1]
	updated := make([]*entity.Reminder, 0, len(list)-1)
	updated = append(updated, list[:position-1]...)
	updated = append(updated, list[position:]...)

	if len(updated) == 0 {
		delete(s.byOwner, ownerID)
	} else {
		s.byOwner[ownerID] = updated
	}

	if err := s.save(); err != nil {
		s.byOwner[ownerID] = list
		return nil, err
	}

	return removed, nil
}

// TakeDue removes every reminder whose due time is at or before asOf and
// returns them for delivery, persisting the pruned mapping once. Owners
// left with no reminders are dropped from the mapping. Consumption happens
// before any delivery attempt, so delivery is at-most-once.
func (s *Store) TakeDue(asOf time.Time) ([]*entity.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	owners := make([]string, 0, len(s.byOwner))
	for owner := range s.byOwner {
		owners = append(owners, owner)
	}
	sort.Strings(owners)

	var due []*entity.Reminder
	for _, owner := range owners {
		var remaining []*entity.Reminder
		for _, reminder := range s.byOwner[owner] {
			if reminder.Due(asOf) {
				due = append(due, reminder)
			} else {
				remaining = append(remaining, reminder)
			}
		}

		if len(remaining) == 0 {
			delete(s.byOwner, owner)
		} else {
			s.byOwner[owner] = remaining
		}
	}

	if len(due) == 0 {
		return nil, nil
	}

	if err := s.save(); err != nil {
		// The entries are already consumed in memory; hand them to the
		// scheduler anyway and let the caller log the persistence failure.
		return due, err
	}

	return due, nil
}

// Empty reports whether the store holds no reminders at all.
func (s *Store) Empty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byOwner) == 0
}

// Save persists the current mapping. Used as a final flush at shutdown;
// regular operations already persist inside their own critical section.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save()
}

// save writes the full mapping to the durable file. Callers must hold mu.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.byOwner, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal reminders: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create reminder directory: %w", err)
		}
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write reminder file: %w", err)
	}

	return nil
}
