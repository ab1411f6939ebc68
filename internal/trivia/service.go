package trivia

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/KawiBot/Mantis/internal/domain"
	"github.com/KawiBot/Mantis/internal/domain/contract"
	"github.com/KawiBot/Mantis/internal/domain/entity"
)

// answerWindow is how long a user has to answer their question.
const answerWindow = 60 * time.Second

var (
	// ErrUnknownCategory means the category name is not in the category map.
	ErrUnknownCategory = errors.New("unknown trivia category")
	// ErrUnknownDifficulty means the difficulty is not easy/medium/hard.
	ErrUnknownDifficulty = errors.New("unknown trivia difficulty")
	// ErrNoPendingQuestion means the user has no question to answer in
	// this channel.
	ErrNoPendingQuestion = errors.New("no pending trivia question")
	// ErrInvalidAnswer means the answer is not one of the answer letters.
	// The pending question is kept.
	ErrInvalidAnswer = errors.New("invalid answer letter")
)

// QuestionFetcher retrieves one question from the trivia API.
type QuestionFetcher interface {
	Fetch(ctx context.Context, categoryID int, difficulty string) (*entity.TriviaQuestion, error)
}

// Service tracks one pending question per user per channel and records
// answer outcomes in the score repository.
type Service struct {
	fetcher QuestionFetcher
	dm      contract.DataManager
	now     func() time.Time

	mu      sync.Mutex
	pending map[string]*entity.TriviaQuestion
}

// New creates the trivia service.
func New(fetcher QuestionFetcher, dm contract.DataManager) *Service {
	return &Service{
		fetcher: fetcher,
		dm:      dm,
		now:     time.Now,
		pending: make(map[string]*entity.TriviaQuestion),
	}
}

// Ask fetches a question for the user in the channel. Empty category and
// difficulty fall back to "any" and "medium". A previous unanswered
// question for the same user and channel is replaced.
func (s *Service) Ask(ctx context.Context, channelID, userID, category, difficulty string) (*entity.TriviaQuestion, error) {
	if category == "" {
		category = "any"
	}
	if difficulty == "" {
		difficulty = "medium"
	}

	categoryID, ok := domain.TriviaCategories[strings.ToLower(category)]
	if !ok {
		return nil, ErrUnknownCategory
	}

	difficulty = strings.ToLower(difficulty)
	valid := false
	for _, d := range domain.TriviaDifficulties {
		if d == difficulty {
			valid = true
			break
		}
	}
	if !valid {
		return nil, ErrUnknownDifficulty
	}

	question, err := s.fetcher.Fetch(ctx, categoryID, difficulty)
	if err != nil {
		return nil, err
	}
	question.AskedAt = s.now()

	s.mu.Lock()
	s.pending[pendingKey(channelID, userID)] = question
	s.mu.Unlock()

	return question, nil
}

// Answer resolves the user's pending question in the channel. An answer
// outside A-D leaves the question pending. An answer after the window
// consumes the question and returns an expired result without touching the
// score.
func (s *Service) Answer(ctx context.Context, channelID, userID, letter string) (*entity.TriviaResult, error) {
	index := -1
	for i, l := range domain.AnswerLetters {
		if strings.EqualFold(letter, l) {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, ErrInvalidAnswer
	}

	key := pendingKey(channelID, userID)

	s.mu.Lock()
	question, ok := s.pending[key]
	if ok {
		delete(s.pending, key)
	}
	s.mu.Unlock()

	if !ok {
		return nil, ErrNoPendingQuestion
	}

	result := &entity.TriviaResult{
		CorrectLetter: domain.AnswerLetters[question.CorrectIndex],
		CorrectAnswer: question.Answers[question.CorrectIndex],
	}

	if s.now().Sub(question.AskedAt) > answerWindow {
		result.Expired = true
		return result, nil
	}

	result.Correct = index == question.CorrectIndex

	score, err := s.dm.TriviaScore().RecordAnswer(userID, result.Correct)
	if err != nil {
		return nil, fmt.Errorf("failed to record trivia answer: %w", err)
	}
	result.Score = *score

	return result, nil
}

// Score returns the user's lifetime score, nil when they never answered.
func (s *Service) Score(userID string) (*entity.TriviaScore, error) {
	return s.dm.TriviaScore().Get(userID)
}

// Top returns the leaderboard.
func (s *Service) Top(limit int) ([]*entity.TriviaScore, error) {
	return s.dm.TriviaScore().Top(limit)
}

func pendingKey(channelID, userID string) string {
	return channelID + "|" + userID
}
