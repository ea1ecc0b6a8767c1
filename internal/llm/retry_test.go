package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func retryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:    5,
		RateLimitWait:  1 * time.Millisecond,
		InvalidWait:    1 * time.Millisecond,
		DowngradeAfter: 2,
	}
}

func TestRetry_SucceedsOnFirstAttempt(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"ok":true}`)},
	)
	p := WithRetry(mock, retryConfig())

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestRetry_RateLimitThenSuccess(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{Err: errors.New("429")}},
		MockResponse{Content: json.RawMessage(`{"ok":true}`)},
	)
	p := WithRetry(mock, retryConfig())

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRetry_InvalidResponseRetried(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrInvalidResponse{Content: json.RawMessage(`bad`), Err: errors.New("bad")}},
		MockResponse{Err: &ErrInvalidResponse{Content: json.RawMessage(`bad`), Err: errors.New("bad")}},
		MockResponse{Content: json.RawMessage(`{"ok":true}`)},
	)
	p := WithRetry(mock, retryConfig())

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if mock.CallCount() != 3 {
		t.Fatalf("expected 3 calls, got %d", mock.CallCount())
	}
}

func TestRetry_UnavailableNotRetried(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		MockResponse{Content: json.RawMessage(`{"ok":true}`)}, // Won't be reached.
	)
	p := WithRetry(mock, retryConfig())

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call (no retry), got %d", mock.CallCount())
	}
}

func TestRetry_MaxTokensNotRetried(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrMaxTokensExceeded{Content: json.RawMessage(`{"truncat`)}},
		MockResponse{Content: json.RawMessage(`{"ok":true}`)}, // Won't be reached.
	)
	p := WithRetry(mock, retryConfig())

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("expected ErrMaxTokensExceeded, got: %T", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call (no retry), got %d", mock.CallCount())
	}
}

func TestRetry_BudgetExhausted(t *testing.T) {
	var responses []MockResponse
	for range 5 {
		responses = append(responses, MockResponse{Err: &ErrRateLimit{Err: errors.New("429")}})
	}
	mock := NewMockProvider(responses...)
	p := WithRetry(mock, retryConfig())

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected last ErrRateLimit to propagate, got: %T", err)
	}
	if mock.CallCount() != 5 {
		t.Fatalf("expected 5 calls, got %d", mock.CallCount())
	}
}

func TestRetry_DowngradesToSmallModel(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{Err: errors.New("429")}},
		MockResponse{Err: &ErrRateLimit{Err: errors.New("429")}},
		MockResponse{Content: json.RawMessage(`{"ok":true}`)},
	)
	p := WithRetry(mock, retryConfig())

	_, err := p.Generate(context.Background(), Request{Model: ModelLarge})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := mock.Calls[0].Model; got != ModelLarge {
		t.Errorf("attempt 1 model = %q, want %q", got, ModelLarge)
	}
	if got := mock.Calls[1].Model; got != ModelLarge {
		t.Errorf("attempt 2 model = %q, want %q", got, ModelLarge)
	}
	if got := mock.Calls[2].Model; got != ModelSmall {
		t.Errorf("attempt 3 model = %q, want %q", got, ModelSmall)
	}
}

func TestRetry_SmallModelNeverDowngrades(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{Err: errors.New("429")}},
		MockResponse{Err: &ErrRateLimit{Err: errors.New("429")}},
		MockResponse{Content: json.RawMessage(`{"ok":true}`)},
	)
	p := WithRetry(mock, retryConfig())

	_, err := p.Generate(context.Background(), Request{Model: ModelSmall})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, call := range mock.Calls {
		if call.Model != ModelSmall {
			t.Errorf("attempt %d model = %q, want %q", i+1, call.Model, ModelSmall)
		}
	}
}

func TestRetry_BackoffIncreasesPerAttempt(t *testing.T) {
	r := &RetryProvider{config: DefaultConfig().Retry}

	var prev time.Duration
	for attempt := range 4 {
		wait, retryable := r.classify(&ErrRateLimit{Err: errors.New("429")}, attempt)
		if !retryable {
			t.Fatalf("attempt %d: rate limit should be retryable", attempt)
		}
		want := time.Duration(attempt+1) * 12 * time.Second
		if wait != want {
			t.Errorf("attempt %d wait = %v, want %v", attempt, wait, want)
		}
		if wait <= prev {
			t.Errorf("attempt %d wait %v not greater than previous %v", attempt, wait, prev)
		}
		prev = wait
	}

	wait, _ := r.classify(&ErrInvalidResponse{Err: errors.New("bad")}, 0)
	if wait != 2*time.Second {
		t.Errorf("invalid-response wait = %v, want 2s", wait)
	}
}

func TestRetry_ContextCancellation(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{Err: errors.New("429")}},
		MockResponse{Content: json.RawMessage(`{"ok":true}`)},
	)
	p := WithRetry(mock, retryConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately.

	_, err := p.Generate(ctx, Request{})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestRetry_ModelIDDelegates(t *testing.T) {
	mock := NewMockProvider()
	p := WithRetry(mock, retryConfig())
	if p.ModelID() != "mock" {
		t.Fatalf("expected 'mock', got %q", p.ModelID())
	}
}
