package task

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantLen []int
	}{
		{"short", "Buy milk", []int{8}},
		{"exact width", strings.Repeat("x", 44), []int{44}},
		{"one over", strings.Repeat("x", 45), []int{44, 1}},
		{"two full lines", strings.Repeat("x", 88), []int{44, 44}},
		{"three lines", strings.Repeat("x", 100), []int{44, 44, 12}},
		{"multibyte runes", strings.Repeat("é", 45), []int{44, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.text, LineWidth)
			if len(got) != len(tt.wantLen) {
				t.Fatalf("expected %d chunks, got %d: %q", len(tt.wantLen), len(got), got)
			}
			for i, chunk := range got {
				if n := utf8.RuneCountInString(chunk); n != tt.wantLen[i] {
					t.Errorf("chunk %d: got %d runes, want %d", i, n, tt.wantLen[i])
				}
			}
			if joined := strings.Join(got, ""); joined != tt.text {
				t.Errorf("chunks do not rebuild the input: %q", joined)
			}
		})
	}
}

func TestWrapPreservesBytes(t *testing.T) {
	inputs := []string{
		"",
		"a",
		"mixed ascii and ünïcödé text that is long enough to be split twice over here",
		"invalid \xff bytes " + strings.Repeat("z", 50),
	}
	for _, in := range inputs {
		got := Wrap(in, 7)
		if joined := strings.Join(got, ""); joined != in {
			t.Errorf("Wrap(%q) rebuilt %q", in, joined)
		}
		for _, chunk := range got {
			if utf8.RuneCountInString(chunk) > 7 {
				t.Errorf("chunk %q is wider than 7", chunk)
			}
		}
	}
}

func TestWrapEntry(t *testing.T) {
	t.Run("wraps each line independently", func(t *testing.T) {
		raw := []string{"  first line  ", strings.Repeat("y", 50)}
		got, err := WrapEntry(raw)
		if err != nil {
			t.Fatalf("WrapEntry: %v", err)
		}
		want := []string{"first line", strings.Repeat("y", 44), "yyyyyy"}
		if strings.Join(got, "|") != strings.Join(want, "|") {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("blank entry", func(t *testing.T) {
		for _, raw := range [][]string{nil, {}, {"", "   "}} {
			if _, err := WrapEntry(raw); !errors.Is(err, ErrBlankTask) {
				t.Errorf("WrapEntry(%q): expected ErrBlankTask, got %v", raw, err)
			}
		}
	})
}
