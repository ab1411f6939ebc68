package trivia

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Fetch(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		fmt.Fprint(w, `{
			"response_code": 0,
			"results": [{
				"category": "Science &amp; Nature",
				"difficulty": "hard",
				"question": "What does &quot;DNA&quot; stand for?",
				"correct_answer": "Deoxyribonucleic acid",
				"incorrect_answers": ["Ribonucleic acid", "Nucleic acid", "Amino acid"]
			}]
		}`)
	}))
	defer server.Close()

	client := NewClient()
	client.baseURL = server.URL

	question, err := client.Fetch(context.Background(), 17, "hard")
	require.NoError(t, err)

	assert.Contains(t, gotQuery, "amount=1")
	assert.Contains(t, gotQuery, "type=multiple")
	assert.Contains(t, gotQuery, "category=17")
	assert.Contains(t, gotQuery, "difficulty=hard")

	assert.Equal(t, "Science & Nature", question.Category)
	assert.Equal(t, `What does "DNA" stand for?`, question.Prompt)
	assert.Len(t, question.Answers, 4)
	assert.Equal(t, "Deoxyribonucleic acid", question.Answers[question.CorrectIndex])
}

func TestClient_Fetch_AnyCategoryOmitsParam(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		fmt.Fprint(w, `{
			"response_code": 0,
			"results": [{
				"category": "General Knowledge",
				"difficulty": "medium",
				"question": "Q?",
				"correct_answer": "yes",
				"incorrect_answers": ["no", "maybe", "unclear"]
			}]
		}`)
	}))
	defer server.Close()

	client := NewClient()
	client.baseURL = server.URL

	_, err := client.Fetch(context.Background(), 0, "medium")
	require.NoError(t, err)

	assert.NotContains(t, gotQuery, "category=")
}

func TestClient_Fetch_NoQuestion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"response_code": 1, "results": []}`)
	}))
	defer server.Close()

	client := NewClient()
	client.baseURL = server.URL

	_, err := client.Fetch(context.Background(), 9, "easy")
	assert.ErrorIs(t, err, ErrNoQuestion)
}

func TestClient_Fetch_Concurrent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{
			"response_code": 0,
			"results": [{
				"category": "General Knowledge",
				"difficulty": "easy",
				"question": "Q?",
				"correct_answer": "yes",
				"incorrect_answers": ["no", "maybe", "unclear"]
			}]
		}`)
	}))
	defer server.Close()

	client := NewClient()
	client.baseURL = server.URL

	// Slash commands are served concurrently, so the shuffle source must
	// tolerate parallel fetches.
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			question, err := client.Fetch(context.Background(), 0, "easy")
			assert.NoError(t, err)
			assert.Equal(t, "yes", question.Answers[question.CorrectIndex])
		}()
	}
	wg.Wait()
}

func TestClient_Fetch_FailedAttemptLeavesNoStaleData(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		if calls == 1 {
			// Decoding fails on response_code after results were read.
			fmt.Fprint(w, `{
				"results": [{
					"category": "Stale",
					"difficulty": "easy",
					"question": "Old?",
					"correct_answer": "x",
					"incorrect_answers": ["a", "b", "c"]
				}],
				"response_code": "bad"
			}`)
			return
		}
		fmt.Fprint(w, `{"response_code": 0}`)
	}))
	defer server.Close()

	client := NewClient()
	client.baseURL = server.URL

	_, err := client.Fetch(context.Background(), 0, "easy")
	assert.ErrorIs(t, err, ErrNoQuestion, "results from the failed attempt must not leak into the next one")
}

func TestClient_Fetch_RetriesServerErrors(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, `{
			"response_code": 0,
			"results": [{
				"category": "General Knowledge",
				"difficulty": "easy",
				"question": "Q?",
				"correct_answer": "yes",
				"incorrect_answers": ["no", "maybe", "unclear"]
			}]
		}`)
	}))
	defer server.Close()

	client := NewClient()
	client.baseURL = server.URL

	question, err := client.Fetch(context.Background(), 0, "easy")
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, "yes", question.Answers[question.CorrectIndex])
}
