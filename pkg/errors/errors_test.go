package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    Code
		format  string
		args    []any
		wantMsg string
	}{
		{
			name:    "simple message",
			code:    ErrCodeInvalidConfig,
			format:  "bad value",
			wantMsg: "INVALID_CONFIG: bad value",
		},
		{
			name:    "formatted message",
			code:    ErrCodeWeekOutOfRange,
			format:  "week %d out of range 1..%d",
			args:    []any{53, 52},
			wantMsg: "WEEK_OUT_OF_RANGE: week 53 out of range 1..52",
		},
		{
			name:    "overflow message",
			code:    ErrCodeLayoutOverflow,
			format:  "content exceeds page by %.2f points",
			args:    []any{12.5},
			wantMsg: "LAYOUT_OVERFLOW: content exceeds page by 12.50 points",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, tt.format, tt.args...)
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", err.Error(), tt.wantMsg)
			}
			if err.Cause != nil {
				t.Errorf("Cause = %v, want nil", err.Cause)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Wrap(ErrCodeIO, cause, "write %s", "out/tracker.pdf")

	if !strings.Contains(err.Error(), "disk full") {
		t.Errorf("Error() = %q, want cause included", err.Error())
	}
	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match cause via errors.Is")
	}
	if err.Unwrap() != cause {
		t.Errorf("Unwrap() = %v, want %v", err.Unwrap(), cause)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{
			name: "matching code",
			err:  New(ErrCodeLayoutOverflow, "too tall"),
			code: ErrCodeLayoutOverflow,
			want: true,
		},
		{
			name: "different code",
			err:  New(ErrCodeLayoutOverflow, "too tall"),
			code: ErrCodeInvalidConfig,
			want: false,
		},
		{
			name: "wrapped in fmt.Errorf",
			err:  fmt.Errorf("generate: %w", New(ErrCodeIO, "write failed")),
			code: ErrCodeIO,
			want: true,
		},
		{
			name: "plain error",
			err:  stderrors.New("plain"),
			code: ErrCodeIO,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.want {
				t.Errorf("Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeMissingKey, "fonts missing")); got != ErrCodeMissingKey {
		t.Errorf("GetCode() = %q, want %q", got, ErrCodeMissingKey)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode() = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidConfig, "page.margins.top must be positive, got -1")
	if got := UserMessage(err); got != "page.margins.top must be positive, got -1" {
		t.Errorf("UserMessage() = %q", got)
	}

	plain := stderrors.New("plain failure")
	if got := UserMessage(plain); got != "plain failure" {
		t.Errorf("UserMessage() = %q", got)
	}
}
