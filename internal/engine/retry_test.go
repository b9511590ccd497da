package engine

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"
)

var testRetryConfig = RetryConfig{MaxRetries: 3, InitialWait: time.Millisecond, MaxWait: 10 * time.Millisecond, Multiplier: 2}

func okResponse() *http.Response {
	return &http.Response{StatusCode: 200, Body: io.NopCloser(strings.NewReader("ok"))}
}

func TestRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"http 429", &httpStatusError{429}, true},
		{"http 502", &httpStatusError{502}, true},
		{"http 503", &httpStatusError{503}, true},
		{"regular error", errors.New("something"), false},
		{"dns timeout", &net.DNSError{IsTimeout: true}, true},
		{"op error", &net.OpError{Op: "dial", Err: errors.New("refused")}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := retryable(tt.err); got != tt.want {
				t.Errorf("retryable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRetryHTTPSuccess(t *testing.T) {
	calls := 0
	resp, err := RetryHTTP(context.Background(), testRetryConfig, func() (*http.Response, error) {
		calls++
		return okResponse(), nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	resp.Body.Close()
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestRetryHTTPRetryThenSuccess(t *testing.T) {
	calls := 0
	resp, err := RetryHTTP(context.Background(), testRetryConfig, func() (*http.Response, error) {
		calls++
		if calls < 3 {
			return &http.Response{StatusCode: 503, Body: io.NopCloser(strings.NewReader(""))}, nil
		}
		return okResponse(), nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	resp.Body.Close()
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
}

func TestRetryHTTPExhausted(t *testing.T) {
	calls := 0
	_, err := RetryHTTP(context.Background(), testRetryConfig, func() (*http.Response, error) {
		calls++
		return &http.Response{StatusCode: 502, Body: io.NopCloser(strings.NewReader(""))}, nil
	})
	if err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	if calls != testRetryConfig.MaxRetries+1 {
		t.Errorf("expected %d calls, got %d", testRetryConfig.MaxRetries+1, calls)
	}
}

func TestRetryHTTPNonRetryable(t *testing.T) {
	calls := 0
	_, err := RetryHTTP(context.Background(), testRetryConfig, func() (*http.Response, error) {
		calls++
		return nil, errors.New("bad request construction")
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if calls != 1 {
		t.Errorf("expected 1 call for non-retryable error, got %d", calls)
	}
}

func TestRetryHTTPTerminalStatusReturned(t *testing.T) {
	// 404 is terminal: returned to the caller, not retried.
	calls := 0
	resp, err := RetryHTTP(context.Background(), testRetryConfig, func() (*http.Response, error) {
		calls++
		return &http.Response{StatusCode: 404, Body: io.NopCloser(strings.NewReader(""))}, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != 404 {
		t.Errorf("got status %d, want 404", resp.StatusCode)
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}
