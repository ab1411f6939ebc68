package entity

import "time"

// TriviaQuestion is a multiple-choice question fetched from the trivia API,
// with answers already shuffled.
type TriviaQuestion struct {
	Category     string
	Difficulty   string
	Prompt       string
	Answers      []string
	CorrectIndex int
	AskedAt      time.Time
}

// TriviaResult is the outcome of answering a pending question. When the
// answer arrived after the question expired, Expired is set and no score
// was recorded.
type TriviaResult struct {
	Correct       bool
	Expired       bool
	CorrectLetter string
	CorrectAnswer string
	Score         TriviaScore
}

// TriviaScore tracks a user's lifetime trivia performance.
type TriviaScore struct {
	UserID  string `json:"user_id" db:"user_id"`
	Correct int    `json:"correct" db:"correct"`
	Total   int    `json:"total" db:"total"`
}

// SuccessRate returns the percentage of correct answers, 0 when no
// questions have been answered yet.
func (s *TriviaScore) SuccessRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Total) * 100
}
