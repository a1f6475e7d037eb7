package wrap

import (
	"errors"
	"testing"
)

func TestResolveWidth(t *testing.T) {
	tests := []struct {
		name  string
		query WidthFunc
		want  int
	}{
		{"nil query", nil, 77},
		{"fixed", Fixed(100), 100},
		{"error", func() (int, error) { return 120, errors.New("boom") }, 77},
		{"zero", Fixed(0), 77},
		{"negative", Fixed(-3), 77},
	}
	for _, tt := range tests {
		if got := ResolveWidth(tt.query, 77); got != tt.want {
			t.Errorf("%s: ResolveWidth = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestResolveWidthAsksEveryTime(t *testing.T) {
	calls := 0
	q := func() (int, error) {
		calls++
		return 40 + calls, nil
	}
	if got := ResolveWidth(q, 10); got != 41 {
		t.Errorf("first = %d, want 41", got)
	}
	if got := ResolveWidth(q, 10); got != 42 {
		t.Errorf("second = %d, want 42", got)
	}
	if calls != 2 {
		t.Errorf("query called %d times, want 2", calls)
	}
}

func TestTerminalNotATTY(t *testing.T) {
	if _, err := Terminal(-1)(); err == nil {
		t.Error("Terminal(-1) should fail")
	}
	if got := ResolveWidth(Terminal(-1), DefaultFallbackWidth); got != DefaultFallbackWidth {
		t.Errorf("ResolveWidth(Terminal(-1)) = %d, want %d", got, DefaultFallbackWidth)
	}
}
