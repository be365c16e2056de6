package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// eventRepo implements EventRepo with raw SQL.
type eventRepo struct {
	db *sql.DB
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestData) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO llm_requests
		 (provider, model, purpose, input_tokens, output_tokens, latency_ms,
		  success, request_body, response_body, error_message)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		data.Provider, data.Model, data.Purpose,
		data.InputTokens, data.OutputTokens, data.LatencyMs,
		boolToInt(data.Success), data.RequestBody, data.ResponseBody,
		data.ErrorMessage,
	)
	if err != nil {
		return fmt.Errorf("append LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLLMRequests(ctx context.Context, opts QueryOpts) ([]LLMEvent, error) {
	var where []string
	var args []any

	if opts.Purpose != "" {
		where = append(where, "purpose = ?")
		args = append(args, opts.Purpose)
	}
	if opts.FailedOnly {
		where = append(where, "success = 0")
	}

	q := `SELECT id, created_at, provider, model, purpose, input_tokens,
		output_tokens, latency_ms, success, request_body, response_body,
		error_message FROM llm_requests`
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY id DESC"
	if opts.Limit > 0 {
		q += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}
	defer rows.Close()

	var out []LLMEvent
	for rows.Next() {
		ev, err := scanLLMEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}
	return out, nil
}

func (r *eventRepo) GetLLMRequest(ctx context.Context, id int64) (*LLMEvent, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, created_at, provider, model, purpose, input_tokens,
		 output_tokens, latency_ms, success, request_body, response_body,
		 error_message FROM llm_requests WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("get LLM event: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	return scanLLMEvent(rows)
}

func (r *eventRepo) UsageByPurpose(ctx context.Context) ([]UsageStat, error) {
	return r.usage(ctx, "purpose")
}

func (r *eventRepo) UsageByModel(ctx context.Context) ([]UsageStat, error) {
	return r.usage(ctx, "model")
}

func (r *eventRepo) usage(ctx context.Context, column string) ([]UsageStat, error) {
	// column is one of the fixed identifiers above, never user input.
	q := fmt.Sprintf(
		`SELECT %s, COUNT(*), SUM(success = 0), SUM(input_tokens),
		 SUM(output_tokens), CAST(AVG(latency_ms) AS INTEGER)
		 FROM llm_requests GROUP BY %s ORDER BY COUNT(*) DESC`,
		column, column,
	)

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("usage by %s: %w", column, err)
	}
	defer rows.Close()

	var out []UsageStat
	for rows.Next() {
		var s UsageStat
		if err := rows.Scan(&s.Key, &s.Requests, &s.Failures,
			&s.InputTokens, &s.OutputTokens, &s.AvgLatencyMs); err != nil {
			return nil, fmt.Errorf("usage by %s: scan: %w", column, err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("usage by %s: %w", column, err)
	}
	return out, nil
}

func scanLLMEvent(rows *sql.Rows) (*LLMEvent, error) {
	var ev LLMEvent
	var success int
	err := rows.Scan(&ev.ID, &ev.Timestamp, &ev.Provider, &ev.Model,
		&ev.Purpose, &ev.InputTokens, &ev.OutputTokens, &ev.LatencyMs,
		&success, &ev.RequestBody, &ev.ResponseBody, &ev.ErrorMessage)
	if err != nil {
		return nil, fmt.Errorf("scan LLM event: %w", err)
	}
	ev.Success = success != 0
	return &ev, nil
}
