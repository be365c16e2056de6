package store

import (
	"context"
	"database/sql"
	"fmt"
)

// interviewRepo implements InterviewRepo with raw SQL.
type interviewRepo struct {
	db    *sql.DB
	cache *queryCache
}

func (r *interviewRepo) AppendAnswer(ctx context.Context, rec AnswerRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO interviews (candidate, role, question, answer, question_score)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.Candidate, rec.Role, rec.Question, rec.Answer, rec.QuestionScore,
	)
	if err != nil {
		return fmt.Errorf("append answer: %w", err)
	}
	r.cache.invalidate()
	return nil
}

func (r *interviewRepo) FinalizeResult(ctx context.Context, candidate, role string, totalScore int, passed bool) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE interviews SET total_score = ?, outcome = ?
		 WHERE id = (
			SELECT id FROM interviews
			WHERE candidate = ? AND role = ? AND total_score IS NULL
			ORDER BY created_at DESC, id DESC
			LIMIT 1
		 )`,
		totalScore, boolToInt(passed), candidate, role,
	)
	if err != nil {
		return fmt.Errorf("finalize result: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("finalize result: rows affected: %w", err)
	}
	if n == 0 {
		return ErrNoPendingRow
	}

	r.cache.invalidate()
	return nil
}

func (r *interviewRepo) TopScores(ctx context.Context, role string, limit int) ([]LeaderboardEntry, error) {
	key := fmt.Sprintf("top:%s:%d", role, limit)
	if v, ok := r.cache.get(key); ok {
		return v.([]LeaderboardEntry), nil
	}

	// Ties break on earliest finalize. The aggregates stay out of the
	// SELECT list: an aggregate loses the column's declared DATETIME
	// affinity and would come back as a string.
	rows, err := r.db.QueryContext(ctx,
		`SELECT candidate, total_score
		 FROM interviews
		 WHERE role = ? AND total_score IS NOT NULL
		 GROUP BY candidate, total_score
		 ORDER BY total_score DESC, MIN(created_at) ASC, MIN(id) ASC
		 LIMIT ?`,
		role, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("top scores: %w", err)
	}
	defer rows.Close()

	var out []LeaderboardEntry
	for rows.Next() {
		var e LeaderboardEntry
		if err := rows.Scan(&e.Candidate, &e.TotalScore); err != nil {
			return nil, fmt.Errorf("top scores: scan: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("top scores: %w", err)
	}

	r.cache.set(key, out)
	return out, nil
}

func (r *interviewRepo) History(ctx context.Context, candidate, role string) ([]HistoryEntry, error) {
	key := fmt.Sprintf("history:%s:%s", candidate, role)
	if v, ok := r.cache.get(key); ok {
		return v.([]HistoryEntry), nil
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT total_score, created_at
		 FROM interviews
		 WHERE candidate = ? AND role = ? AND total_score IS NOT NULL
		 ORDER BY created_at DESC, id DESC`,
		candidate, role,
	)
	if err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}
	defer rows.Close()

	var out []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		if err := rows.Scan(&e.TotalScore, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("history: scan: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}

	r.cache.set(key, out)
	return out, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
