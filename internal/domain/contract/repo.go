package contract

import (
	"github.com/KawiBot/Mantis/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	TriviaScore() TriviaScoreRepo
}

// TriviaScoreRepo defines the contract for the trivia score repository
type TriviaScoreRepo interface {
	// RecordAnswer increments the user's totals (and correct count when
	// correct is true) and returns the updated score.
	RecordAnswer(userID string, correct bool) (*entity.TriviaScore, error)

	// Get returns the user's score, or nil when the user has never answered.
	Get(userID string) (*entity.TriviaScore, error)

	// Top returns up to limit scores ordered by correct answers, then by
	// success rate.
	Top(limit int) ([]*entity.TriviaScore, error)
}
