package database

import (
	"database/sql"
	"fmt"

	"github.com/KawiBot/Mantis/internal/domain/contract"
	"github.com/KawiBot/Mantis/internal/domain/entity"
)

type triviaScoreRepo struct {
	db dbConn
}

func newTriviaScoreRepo(db dbConn) contract.TriviaScoreRepo {
	return &triviaScoreRepo{db: db}
}

func (r *triviaScoreRepo) RecordAnswer(userID string, correct bool) (*entity.TriviaScore, error) {
	correctDelta := 0
	if correct {
		correctDelta = 1
	}

	query := `
		INSERT INTO trivia_scores (user_id, correct, total)
		VALUES (?, ?, 1)
		ON CONFLICT(user_id) DO UPDATE SET
			correct = correct + excluded.correct,
			total = total + 1,
			updated_at = CURRENT_TIMESTAMP
	`

	if _, err := r.db.Exec(query, userID, correctDelta); err != nil {
		return nil, fmt.Errorf("failed to record answer: %w", err)
	}

	return r.Get(userID)
}

func (r *triviaScoreRepo) Get(userID string) (*entity.TriviaScore, error) {
	score := &entity.TriviaScore{}
	query := `
		SELECT user_id, correct, total
		FROM trivia_scores
		WHERE user_id = ?
	`

	err := r.db.QueryRow(query, userID).Scan(
		&score.UserID,
		&score.Correct,
		&score.Total,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get score: %w", err)
	}

	return score, nil
}

func (r *triviaScoreRepo) Top(limit int) ([]*entity.TriviaScore, error) {
	query := `
		SELECT user_id, correct, total
		FROM trivia_scores
		WHERE total > 0
		ORDER BY correct DESC, CAST(correct AS REAL) / total DESC
		LIMIT ?
	`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list top scores: %w", err)
	}
	defer rows.Close()

	var scores []*entity.TriviaScore
	for rows.Next() {
		score := &entity.TriviaScore{}
		if err := rows.Scan(&score.UserID, &score.Correct, &score.Total); err != nil {
			return nil, fmt.Errorf("failed to scan score: %w", err)
		}
		scores = append(scores, score)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate scores: %w", err)
	}

	return scores, nil
}
