package store

import (
	"context"
	"errors"
	"testing"
)

func appendScored(t *testing.T, repo InterviewRepo, candidate, role string, score int) {
	t.Helper()
	err := repo.AppendAnswer(context.Background(), AnswerRecord{
		Candidate:     candidate,
		Role:          role,
		Question:      "What does a goroutine cost?",
		Answer:        "A few KB of stack.",
		QuestionScore: score,
	})
	if err != nil {
		t.Fatalf("append answer: %v", err)
	}
}

func TestFinalizeUpdatesOnlyMostRecentNullRow(t *testing.T) {
	s := openTestStore(t)
	repo := s.InterviewRepo()
	ctx := context.Background()

	appendScored(t, repo, "ada", "backend engineer", 6)
	appendScored(t, repo, "ada", "backend engineer", 7)
	appendScored(t, repo, "ada", "backend engineer", 8)

	if err := repo.FinalizeResult(ctx, "ada", "backend engineer", 70, true); err != nil {
		t.Fatalf("finalize: %v", err)
	}

	rows, err := s.DB().Query(
		"SELECT id, total_score IS NULL FROM interviews WHERE candidate='ada' ORDER BY id")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	defer rows.Close()

	type row struct {
		id     int64
		isNull bool
	}
	var got []row
	for rows.Next() {
		var r row
		if err := rows.Scan(&r.id, &r.isNull); err != nil {
			t.Fatalf("scan: %v", err)
		}
		got = append(got, r)
	}
	if len(got) != 3 {
		t.Fatalf("row count = %d, want 3", len(got))
	}
	if !got[0].isNull || !got[1].isNull {
		t.Error("earlier rows should keep null total")
	}
	if got[2].isNull {
		t.Error("most recent row should have a total")
	}
}

func TestFinalizeNoPendingRow(t *testing.T) {
	s := openTestStore(t)
	repo := s.InterviewRepo()

	err := repo.FinalizeResult(context.Background(), "nobody", "backend engineer", 50, false)
	if !errors.Is(err, ErrNoPendingRow) {
		t.Fatalf("expected ErrNoPendingRow, got %v", err)
	}
}

func TestFinalizeDoesNotTouchOtherPairs(t *testing.T) {
	s := openTestStore(t)
	repo := s.InterviewRepo()
	ctx := context.Background()

	appendScored(t, repo, "ada", "backend engineer", 6)
	appendScored(t, repo, "grace", "backend engineer", 9)
	appendScored(t, repo, "ada", "sre", 5)

	if err := repo.FinalizeResult(ctx, "ada", "backend engineer", 40, false); err != nil {
		t.Fatalf("finalize: %v", err)
	}

	var count int
	err := s.DB().QueryRow(
		"SELECT COUNT(*) FROM interviews WHERE total_score IS NOT NULL").Scan(&count)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("finalized rows = %d, want 1", count)
	}
}

func finalizeSession(t *testing.T, repo InterviewRepo, candidate, role string, total int) {
	t.Helper()
	appendScored(t, repo, candidate, role, 5)
	if err := repo.FinalizeResult(context.Background(), candidate, role, total, total >= 60); err != nil {
		t.Fatalf("finalize %s: %v", candidate, err)
	}
}

func TestTopScoresOrderingAndCap(t *testing.T) {
	s := openTestStore(t)
	repo := s.InterviewRepo()
	ctx := context.Background()

	finalizeSession(t, repo, "ada", "backend engineer", 80)
	finalizeSession(t, repo, "grace", "backend engineer", 92)
	finalizeSession(t, repo, "alan", "backend engineer", 61)
	finalizeSession(t, repo, "edsger", "backend engineer", 45)
	finalizeSession(t, repo, "barbara", "backend engineer", 74)
	finalizeSession(t, repo, "donald", "backend engineer", 88)
	finalizeSession(t, repo, "ada", "sre", 99)

	entries, err := repo.TopScores(ctx, "backend engineer", 5)
	if err != nil {
		t.Fatalf("top scores: %v", err)
	}
	if len(entries) != 5 {
		t.Fatalf("entries = %d, want 5", len(entries))
	}

	wantOrder := []string{"grace", "donald", "ada", "barbara", "alan"}
	for i, want := range wantOrder {
		if entries[i].Candidate != want {
			t.Errorf("entries[%d] = %s, want %s", i, entries[i].Candidate, want)
		}
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].TotalScore > entries[i-1].TotalScore {
			t.Errorf("entries not sorted descending at %d", i)
		}
	}
}

func TestTopScoresDistinctAndNonNull(t *testing.T) {
	s := openTestStore(t)
	repo := s.InterviewRepo()
	ctx := context.Background()

	// Two sessions with the same total collapse into one entry.
	finalizeSession(t, repo, "ada", "backend engineer", 75)
	finalizeSession(t, repo, "ada", "backend engineer", 75)
	// A pending row must never appear.
	appendScored(t, repo, "grace", "backend engineer", 9)

	entries, err := repo.TopScores(ctx, "backend engineer", 5)
	if err != nil {
		t.Fatalf("top scores: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	if entries[0].Candidate != "ada" || entries[0].TotalScore != 75 {
		t.Errorf("entry = %+v, want ada/75", entries[0])
	}
}

func TestTopScoresReadsRowsWithDefaultTimestamps(t *testing.T) {
	s := openTestStore(t)
	repo := s.InterviewRepo()
	ctx := context.Background()

	// Rows written through AppendAnswer get created_at from the column
	// default. The leaderboard query must scan cleanly over them.
	appendScored(t, repo, "ada", "backend engineer", 8)
	if err := repo.FinalizeResult(ctx, "ada", "backend engineer", 53, false); err != nil {
		t.Fatalf("finalize: %v", err)
	}

	entries, err := repo.TopScores(ctx, "backend engineer", 5)
	if err != nil {
		t.Fatalf("top scores: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	if entries[0].Candidate != "ada" || entries[0].TotalScore != 53 {
		t.Errorf("entry = %+v, want ada/53", entries[0])
	}
}

func TestHistoryMostRecentFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.InterviewRepo()
	ctx := context.Background()

	finalizeSession(t, repo, "ada", "backend engineer", 52)
	finalizeSession(t, repo, "ada", "backend engineer", 68)
	finalizeSession(t, repo, "ada", "backend engineer", 81)
	finalizeSession(t, repo, "ada", "sre", 33)

	hist, err := repo.History(ctx, "ada", "backend engineer")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(hist) != 3 {
		t.Fatalf("history entries = %d, want 3", len(hist))
	}
	want := []int{81, 68, 52}
	for i, w := range want {
		if hist[i].TotalScore != w {
			t.Errorf("hist[%d] = %d, want %d", i, hist[i].TotalScore, w)
		}
	}
}

func TestReadsReflectWritesDespiteCache(t *testing.T) {
	s := openTestStore(t)
	repo := s.InterviewRepo()
	ctx := context.Background()

	finalizeSession(t, repo, "ada", "backend engineer", 70)

	entries, err := repo.TopScores(ctx, "backend engineer", 5)
	if err != nil {
		t.Fatalf("top scores: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}

	// A write invalidates the cached leaderboard.
	finalizeSession(t, repo, "grace", "backend engineer", 90)

	entries, err = repo.TopScores(ctx, "backend engineer", 5)
	if err != nil {
		t.Fatalf("top scores: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries after write = %d, want 2", len(entries))
	}
	if entries[0].Candidate != "grace" {
		t.Errorf("entries[0] = %s, want grace", entries[0].Candidate)
	}
}
