package database

import (
	"github.com/KawiBot/Mantis/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db              *DB
	triviaScoreRepo contract.TriviaScoreRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	return &instance{
		db:              db,
		triviaScoreRepo: newTriviaScoreRepo(db.conn),
	}
}

// TriviaScore returns the trivia score repository
func (i *instance) TriviaScore() contract.TriviaScoreRepo {
	return i.triviaScoreRepo
}
