package store

import (
	"context"
	"errors"
	"time"
)

// ErrNoPendingRow is returned by FinalizeResult when no row with a null
// total exists for the candidate/role pair. Callers log it and move on.
var ErrNoPendingRow = errors.New("no pending interview row to finalize")

// AnswerRecord is one answered question, persisted as soon as it is scored.
type AnswerRecord struct {
	Candidate     string
	Role          string
	Question      string
	Answer        string
	QuestionScore int
}

// LeaderboardEntry is one distinct (candidate, total) pair for a role.
type LeaderboardEntry struct {
	Candidate  string
	TotalScore int
}

// HistoryEntry is one finalized session total for a candidate/role pair.
type HistoryEntry struct {
	TotalScore int
	Timestamp  time.Time
}

// InterviewRepo manages interview answer rows and finalized results.
type InterviewRepo interface {
	// AppendAnswer inserts one new record with null total/outcome.
	// It never updates existing rows.
	AppendAnswer(ctx context.Context, rec AnswerRecord) error

	// FinalizeResult sets total and outcome on the most recent row for
	// (candidate, role) whose total is still null. Returns ErrNoPendingRow
	// if no such row exists.
	FinalizeResult(ctx context.Context, candidate, role string, totalScore int, passed bool) error

	// TopScores returns distinct (candidate, total) pairs for a role,
	// highest first, ties broken by earliest finalize, capped at limit.
	TopScores(ctx context.Context, role string, limit int) ([]LeaderboardEntry, error)

	// History returns all finalized totals for a candidate/role pair,
	// most recent first.
	History(ctx context.Context, candidate, role string) ([]HistoryEntry, error)
}

// LLMRequestData captures the data for a single LLM request event.
type LLMRequestData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	RequestBody  string
	ResponseBody string
	ErrorMessage string
}

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	ID        int64
	Timestamp time.Time
	LLMRequestData
}

// QueryOpts configures LLM event queries.
type QueryOpts struct {
	Limit      int    // max results (0 = unlimited)
	Purpose    string // filter by purpose ("" = all)
	FailedOnly bool   // only events where the request failed
}

// UsageStat aggregates LLM usage grouped by purpose or model.
type UsageStat struct {
	Key          string
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestData) error

	// QueryLLMRequests returns events matching opts, most recent first.
	QueryLLMRequests(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMRequest returns a single event by ID, or nil if not found.
	GetLLMRequest(ctx context.Context, id int64) (*LLMEvent, error)

	// UsageByPurpose aggregates token usage and latency per purpose.
	UsageByPurpose(ctx context.Context) ([]UsageStat, error)

	// UsageByModel aggregates token usage and latency per model.
	UsageByModel(ctx context.Context) ([]UsageStat, error)
}
