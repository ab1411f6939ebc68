package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriviaScoreRepo_RecordAnswer(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newTriviaScoreRepo(db.conn)

	score, err := repo.RecordAnswer("U1", true)
	require.NoError(t, err)
	assert.Equal(t, "U1", score.UserID)
	assert.Equal(t, 1, score.Correct)
	assert.Equal(t, 1, score.Total)

	score, err = repo.RecordAnswer("U1", false)
	require.NoError(t, err)
	assert.Equal(t, 1, score.Correct)
	assert.Equal(t, 2, score.Total)

	score, err = repo.RecordAnswer("U1", true)
	require.NoError(t, err)
	assert.Equal(t, 2, score.Correct)
	assert.Equal(t, 3, score.Total)
}

func TestTriviaScoreRepo_Get_NeverAnswered(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newTriviaScoreRepo(db.conn)

	score, err := repo.Get("U404")
	require.NoError(t, err)
	assert.Nil(t, score)
}

func TestTriviaScoreRepo_Top(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newTriviaScoreRepo(db.conn)

	// U1: 2/4, U2: 3/3, U3: 2/2 - ordered by correct count, then success rate
	for _, answer := range []struct {
		userID  string
		correct bool
	}{
		{"U1", true}, {"U1", true}, {"U1", false}, {"U1", false},
		{"U2", true}, {"U2", true}, {"U2", true},
		{"U3", true}, {"U3", true},
	} {
		_, err := repo.RecordAnswer(answer.userID, answer.correct)
		require.NoError(t, err)
	}

	scores, err := repo.Top(10)
	require.NoError(t, err)
	require.Len(t, scores, 3)

	assert.Equal(t, "U2", scores[0].UserID)
	assert.Equal(t, "U3", scores[1].UserID, "same correct count, higher rate ranks first")
	assert.Equal(t, "U1", scores[2].UserID)
}

func TestTriviaScoreRepo_Top_Limit(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newTriviaScoreRepo(db.conn)

	for _, userID := range []string{"U1", "U2", "U3"} {
		_, err := repo.RecordAnswer(userID, true)
		require.NoError(t, err)
	}

	scores, err := repo.Top(2)
	require.NoError(t, err)
	assert.Len(t, scores, 2)
}
