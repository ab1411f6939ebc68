// Package trivia fetches multiple-choice questions from the Open Trivia
// Database and runs the question/answer flow with persistent scores.
package trivia

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"math/rand"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/KawiBot/Mantis/internal/domain/entity"
	"github.com/codeGROOVE-dev/retry"
)

const defaultBaseURL = "https://opentdb.com/api.php"

// ErrNoQuestion means the API had no question for the requested
// category/difficulty combination.
var ErrNoQuestion = errors.New("no trivia question available")

// Client fetches questions from the Open Trivia DB. Safe for concurrent
// use; the shuffle source is serialized behind a mutex.
type Client struct {
	httpClient *http.Client
	baseURL    string

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewClient creates a trivia API client.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    defaultBaseURL,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

type apiResponse struct {
	ResponseCode int           `json:"response_code"`
	Results      []apiQuestion `json:"results"`
}

type apiQuestion struct {
	Category         string   `json:"category"`
	Difficulty       string   `json:"difficulty"`
	Question         string   `json:"question"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
}

// Fetch retrieves one multiple-choice question. categoryID 0 means any
// category. Answers come back HTML-unescaped and shuffled.
func (c *Client) Fetch(ctx context.Context, categoryID int, difficulty string) (*entity.TriviaQuestion, error) {
	params := url.Values{}
	params.Set("amount", "1")
	params.Set("type", "multiple")
	if categoryID != 0 {
		params.Set("category", fmt.Sprintf("%d", categoryID))
	}
	params.Set("difficulty", difficulty)

	requestURL := c.baseURL + "?" + params.Encode()

	var payload apiResponse
	err := retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
			if err != nil {
				return err
			}

			resp, err := c.httpClient.Do(req)
			if err != nil {
				return fmt.Errorf("trivia API request failed: %w", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("trivia API returned status %d", resp.StatusCode)
			}

			// Decode into a fresh value so a failed attempt leaves no
			// partial fields behind for the next one.
			var attempt apiResponse
			if err := json.NewDecoder(resp.Body).Decode(&attempt); err != nil {
				return fmt.Errorf("failed to decode trivia response: %w", err)
			}
			payload = attempt
			return nil
		},
		retry.Attempts(3),
		retry.Delay(time.Second),
		retry.Context(ctx),
	)
	if err != nil {
		return nil, err
	}

	if payload.ResponseCode != 0 || len(payload.Results) == 0 {
		return nil, ErrNoQuestion
	}

	raw := payload.Results[0]

	answers := make([]string, 0, len(raw.IncorrectAnswers)+1)
	for _, answer := range raw.IncorrectAnswers {
		answers = append(answers, html.UnescapeString(answer))
	}
	correct := html.UnescapeString(raw.CorrectAnswer)
	answers = append(answers, correct)

	c.rngMu.Lock()
	c.rng.Shuffle(len(answers), func(i, j int) {
		answers[i], answers[j] = answers[j], answers[i]
	})
	c.rngMu.Unlock()

	correctIndex := 0
	for i, answer := range answers {
		if answer == correct {
			correctIndex = i
			break
		}
	}

	return &entity.TriviaQuestion{
		Category:     html.UnescapeString(raw.Category),
		Difficulty:   raw.Difficulty,
		Prompt:       html.UnescapeString(raw.Question),
		Answers:      answers,
		CorrectIndex: correctIndex,
	}, nil
}
