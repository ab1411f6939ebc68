package contract

import (
	"context"
	"time"

	"github.com/KawiBot/Mantis/internal/domain/entity"
)

// TriviaService runs the trivia question/answer flow.
type TriviaService interface {
	// Ask fetches a new question and registers it as pending for the user
	// in the channel, replacing any previous pending question.
	Ask(ctx context.Context, channelID, userID, category, difficulty string) (*entity.TriviaQuestion, error)

	// Answer resolves the user's pending question in the channel with the
	// given answer letter and records the outcome.
	Answer(ctx context.Context, channelID, userID, letter string) (*entity.TriviaResult, error)

	// Score returns the user's lifetime score, nil if they never played.
	Score(userID string) (*entity.TriviaScore, error)

	// Top returns the leaderboard, at most limit entries.
	Top(limit int) ([]*entity.TriviaScore, error)
}

// ReminderStore owns the owner to pending-reminders mapping and its
// durable file. All mutations persist synchronously before returning.
type ReminderStore interface {
	Create(ownerID, channelID, message string, in time.Duration) (*entity.Reminder, error)
	List(ownerID string) []*entity.Reminder
	Cancel(ownerID string, position int) (*entity.Reminder, error)

	// TakeDue removes and returns every reminder due as of the given time.
	// Removal happens before delivery is attempted, so delivery is
	// at-most-once.
	TakeDue(asOf time.Time) ([]*entity.Reminder, error)

	// Empty reports whether no owner has any pending reminder.
	Empty() bool
}

// ReminderScheduler is the polling task that delivers due reminders.
type ReminderScheduler interface {
	Start()
	Stop()

	// NotifyCreated wakes the scheduler after a reminder is created so it
	// can leave the Idle state.
	NotifyCreated()
}
