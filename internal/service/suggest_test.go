package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"
)

// completerFunc adapts a function to the Completer interface.
type completerFunc func(ctx context.Context, prompt string) (string, error)

func (f completerFunc) Complete(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

func assertSuggestionContract(t *testing.T, suggestions []string) {
	t.Helper()
	if len(suggestions) == 0 {
		t.Fatal("expected at least one suggestion")
	}
	if len(suggestions) > 5 {
		t.Fatalf("expected at most 5 suggestions, got %d", len(suggestions))
	}
	for i, s := range suggestions {
		if s == "" {
			t.Errorf("suggestion %d is empty", i)
		}
		if utf8.RuneCountInString(s) > 100 {
			t.Errorf("suggestion %d exceeds 100 characters: %q", i, s)
		}
	}
}

func TestSuggest_NoProviderConfigured(t *testing.T) {
	svc := NewSuggestionService("", "gpt-3.5-turbo", time.Second)

	first := svc.Suggest(context.Background(), "Write spec", "Draft the design doc")
	second := svc.Suggest(context.Background(), "Write spec", "Draft the design doc")

	assertSuggestionContract(t, first)

	// Offline mode is deterministic.
	if len(first) != len(second) {
		t.Fatalf("offline suggestions not deterministic: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("offline suggestion %d differs between calls", i)
		}
	}

	if !strings.Contains(first[0], "Write spec") {
		t.Errorf("offline suggestion should reference the title, got %q", first[0])
	}
}

func TestSuggest_ProviderSuccess(t *testing.T) {
	stub := completerFunc(func(ctx context.Context, prompt string) (string, error) {
		return "- Add a deadline\n- Split into subtasks\n- Define done criteria", nil
	})
	svc := NewSuggestionServiceWithCompleter(stub, time.Second)

	suggestions := svc.Suggest(context.Background(), "Write spec", "Draft the design doc")

	assertSuggestionContract(t, suggestions)
	want := []string{"Add a deadline", "Split into subtasks", "Define done criteria"}
	if len(suggestions) != len(want) {
		t.Fatalf("got %d suggestions, want %d", len(suggestions), len(want))
	}
	for i := range want {
		if suggestions[i] != want[i] {
			t.Errorf("suggestion %d = %q, want %q", i, suggestions[i], want[i])
		}
	}
}

func TestSuggest_ProviderError(t *testing.T) {
	stub := completerFunc(func(ctx context.Context, prompt string) (string, error) {
		return "", errors.New("quota exceeded")
	})
	svc := NewSuggestionServiceWithCompleter(stub, time.Second)

	suggestions := svc.Suggest(context.Background(), "Write spec", "Draft the design doc")

	assertSuggestionContract(t, suggestions)
}

func TestSuggest_ProviderEmptyOutput(t *testing.T) {
	stub := completerFunc(func(ctx context.Context, prompt string) (string, error) {
		return "\n\n   \n", nil
	})
	svc := NewSuggestionServiceWithCompleter(stub, time.Second)

	suggestions := svc.Suggest(context.Background(), "Write spec", "Draft the design doc")

	assertSuggestionContract(t, suggestions)
}

func TestSuggest_ProviderTimeout(t *testing.T) {
	stub := completerFunc(func(ctx context.Context, prompt string) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	})
	svc := NewSuggestionServiceWithCompleter(stub, 10*time.Millisecond)

	suggestions := svc.Suggest(context.Background(), "Write spec", "Draft the design doc")

	assertSuggestionContract(t, suggestions)
}

func TestSuggest_LongInputsAreCapped(t *testing.T) {
	var gotPrompt string
	stub := completerFunc(func(ctx context.Context, prompt string) (string, error) {
		gotPrompt = prompt
		return "Line one", nil
	})
	svc := NewSuggestionServiceWithCompleter(stub, time.Second)

	longTitle := strings.Repeat("t", 1000)
	longDesc := strings.Repeat("d", 5000)
	suggestions := svc.Suggest(context.Background(), longTitle, longDesc)

	assertSuggestionContract(t, suggestions)
	if strings.Contains(gotPrompt, strings.Repeat("t", 301)) {
		t.Error("title was not capped to 300 characters in the prompt")
	}
	if strings.Contains(gotPrompt, strings.Repeat("d", 1201)) {
		t.Error("description was not capped to 1200 characters in the prompt")
	}
}

func TestSuggest_LongTitleFallbackStillCapped(t *testing.T) {
	// A 300-char title interpolated into fallback templates must still
	// produce lines within the 100-character contract.
	svc := NewSuggestionService("", "gpt-3.5-turbo", time.Second)

	suggestions := svc.Suggest(context.Background(), strings.Repeat("x", 400), "desc")

	assertSuggestionContract(t, suggestions)
}

func TestParseSuggestionLines(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "bullet lines",
			raw:  "- first\n- second\n- third",
			want: []string{"first", "second", "third"},
		},
		{
			name: "numbered lines",
			raw:  "1. first\n2) second\n3. third",
			want: []string{"first", "second", "third"},
		},
		{
			name: "asterisk bullets with blanks",
			raw:  "* first\n\n* second\n   \n* third",
			want: []string{"first", "second", "third"},
		},
		{
			name: "windows line endings",
			raw:  "- first\r\n- second",
			want: []string{"first", "second"},
		},
		{
			name: "more than five lines truncated",
			raw:  "a\nb\nc\nd\ne\nf\ng",
			want: []string{"a", "b", "c", "d", "e"},
		},
		{
			name: "empty input",
			raw:  "",
			want: nil,
		},
		{
			name: "only markup",
			raw:  "- \n* \n1. ",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseSuggestionLines(tt.raw)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d lines %v, want %d lines %v", len(got), got, len(tt.want), tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestCapString(t *testing.T) {
	if got := capString("short", 10); got != "short" {
		t.Errorf("capString(short, 10) = %q", got)
	}
	if got := capString("abcdef", 3); got != "abc" {
		t.Errorf("capString(abcdef, 3) = %q", got)
	}
	// Rune-aware: multi-byte characters must not be split.
	if got := capString("ééééé", 3); got != "ééé" {
		t.Errorf("capString on multi-byte runes = %q", got)
	}
}
