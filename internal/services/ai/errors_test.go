package ai

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestIsRateLimitError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil error", err: nil, want: false},
		{name: "plain error", err: errors.New("connection refused"), want: false},
		{name: "429 in message", err: errors.New("request failed with status 429"), want: true},
		{name: "rate limit in message", err: errors.New("rate limit exceeded"), want: true},
		{name: "too many requests", err: errors.New("too many requests"), want: true},
		{
			name: "structured 429",
			err:  &APIError{StatusCode: 429, Type: "rate_limit_error", Message: "slow down"},
			want: true,
		},
		{
			name: "structured quota is permanent",
			err:  &APIError{StatusCode: 429, IsPermanent: true, Code: "insufficient_quota"},
			want: false,
		},
		{
			name: "wrapped structured error",
			err:  fmt.Errorf("failed to generate completion: %w", &APIError{StatusCode: 429}),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := IsRateLimitError(tt.err); got != tt.want {
				t.Errorf("IsRateLimitError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsQuotaError(t *testing.T) {
	t.Parallel()

	if IsQuotaError(nil) {
		t.Error("Expected nil error not to be a quota error")
	}
	if !IsQuotaError(errors.New("insufficient_quota: please check billing")) {
		t.Error("Expected quota message to be detected")
	}
	if !IsQuotaError(&APIError{StatusCode: 429, IsPermanent: true}) {
		t.Error("Expected permanent API error to be a quota error")
	}
	if IsQuotaError(&APIError{StatusCode: 429}) {
		t.Error("Expected transient 429 not to be a quota error")
	}
}

func TestExtractAPIError(t *testing.T) {
	t.Parallel()

	t.Run("non 429 returns nil", func(t *testing.T) {
		t.Parallel()

		if got := ExtractAPIError(errors.New("500 internal server error")); got != nil {
			t.Errorf("Expected nil, got %+v", got)
		}
	})

	t.Run("parses embedded json body", func(t *testing.T) {
		t.Parallel()

		err := errors.New(`POST "...": 429 Too Many Requests {"message":"You exceeded your current quota","type":"insufficient_quota","code":"insufficient_quota"}`)
		got := ExtractAPIError(err)
		if got == nil {
			t.Fatal("Expected an APIError")
		}
		if got.Code != "insufficient_quota" || !got.IsPermanent {
			t.Errorf("Expected permanent quota error, got %+v", got)
		}
		if got.Message != "You exceeded your current quota" {
			t.Errorf("Unexpected message: %q", got.Message)
		}
		if got.RetryAfter == nil || *got.RetryAfter != time.Hour {
			t.Error("Expected one hour retry-after for quota errors")
		}
	})

	t.Run("plain 429 gets defaults", func(t *testing.T) {
		t.Parallel()

		got := ExtractAPIError(errors.New("429 Too Many Requests"))
		if got == nil {
			t.Fatal("Expected an APIError")
		}
		if got.StatusCode != 429 || got.Type != "rate_limit_error" {
			t.Errorf("Unexpected defaults: %+v", got)
		}
		if got.RetryAfter == nil || *got.RetryAfter != 60*time.Second {
			t.Error("Expected 60s retry-after for rate limits")
		}
	})
}

func TestRetryDelay(t *testing.T) {
	t.Parallel()

	rateLimited := &APIError{StatusCode: 429}

	if got := RetryDelay(rateLimited, 0); got != 60*time.Second {
		t.Errorf("attempt 0: got %v, want 60s", got)
	}
	if got := RetryDelay(rateLimited, 1); got != 120*time.Second {
		t.Errorf("attempt 1: got %v, want 120s", got)
	}
	if got := RetryDelay(rateLimited, 20); got != 15*time.Minute {
		t.Errorf("large attempt: got %v, want capped 15m", got)
	}

	plain := errors.New("boom")
	if got := RetryDelay(plain, 0); got != time.Second {
		t.Errorf("plain attempt 0: got %v, want 1s", got)
	}
	if got := RetryDelay(plain, 30); got != time.Minute {
		t.Errorf("plain large attempt: got %v, want capped 1m", got)
	}
}
