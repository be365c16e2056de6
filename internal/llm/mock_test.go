package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMockProvider_ReturnsCannedResponsesInOrder(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"question":"What is a goroutine?"}`), Usage: Usage{InputTokens: 12, OutputTokens: 8, TotalTokens: 20}},
		MockResponse{Content: json.RawMessage(`{"score":6,"explanation":"Good start."}`)},
	)

	resp1, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "first"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp1.Content) != `{"question":"What is a goroutine?"}` {
		t.Fatalf("unexpected first response: %s", resp1.Content)
	}
	if resp1.Usage.InputTokens != 12 {
		t.Fatalf("expected 12 input tokens, got %d", resp1.Usage.InputTokens)
	}

	resp2, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "second"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp2.Content) != `{"score":6,"explanation":"Good start."}` {
		t.Fatalf("unexpected second response: %s", resp2.Content)
	}

	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls recorded, got %d", mock.CallCount())
	}
}

func TestMockProvider_EmptyQueueReturnsUnavailable(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error from empty queue")
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %T", err)
	}
}

func TestMockProvider_CannedError(t *testing.T) {
	boom := &ErrRateLimit{Err: errors.New("slow down")}
	mock := NewMockProvider(MockResponse{Err: boom})

	_, err := mock.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got %T", err)
	}
}
