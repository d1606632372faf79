package task

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestParsePriority(t *testing.T) {
	tests := []struct {
		raw     string
		want    Priority
		wantErr bool
	}{
		{"C", PriorityCritical, false},
		{"c", PriorityCritical, false},
		{"H", PriorityHigh, false},
		{"h", PriorityHigh, false},
		{" n ", PriorityNormal, false},
		{"L", PriorityLow, false},
		{"l", PriorityLow, false},
		{"", "", true},
		{"X", "", true},
		{"CH", "", true},
		{"critical", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParsePriority(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidPriority) {
					t.Fatalf("expected ErrInvalidPriority, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPriorityName(t *testing.T) {
	names := map[Priority]string{
		PriorityCritical: "Critical",
		PriorityHigh:     "High",
		PriorityNormal:   "Normal",
		PriorityLow:      "Low",
	}
	for p, want := range names {
		if got := p.Name(); got != want {
			t.Errorf("%q.Name(): got %q, want %q", p, got, want)
		}
	}
}

func TestParseField(t *testing.T) {
	for _, raw := range []string{"priority", "date", "time", "task", " task "} {
		if _, err := ParseField(raw); err != nil {
			t.Errorf("ParseField(%q): unexpected error %v", raw, err)
		}
	}
	for _, raw := range []string{"", "Priority", "lines", "tasks"} {
		if _, err := ParseField(raw); !errors.Is(err, ErrInvalidField) {
			t.Errorf("ParseField(%q): expected ErrInvalidField, got %v", raw, err)
		}
	}
}

func TestNew(t *testing.T) {
	t.Run("normalizes date and time", func(t *testing.T) {
		got, err := New(PriorityHigh, "2023-3-1", "9:0", []string{"Buy milk"})
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		want := Task{Priority: PriorityHigh, Date: "2023-03-01", Time: "09:00", Lines: []string{"Buy milk"}}
		if !got.Equal(want) {
			t.Errorf("got %+v, want %+v", got, want)
		}
	})

	t.Run("copies lines", func(t *testing.T) {
		lines := []string{"a"}
		got, err := New(PriorityLow, "2023-03-01", "09:00", lines)
		if err != nil {
			t.Fatal(err)
		}
		lines[0] = "b"
		if got.Lines[0] != "a" {
			t.Errorf("task shares its lines with the caller")
		}
	})

	tests := []struct {
		name     string
		priority Priority
		date     string
		clock    string
		lines    []string
		wantErr  error
	}{
		{"bad priority", "X", "2023-03-01", "09:00", []string{"a"}, ErrInvalidPriority},
		{"bad date", PriorityHigh, "2023-02-30", "09:00", []string{"a"}, ErrInvalidDate},
		{"bad time", PriorityHigh, "2023-03-01", "24:00", []string{"a"}, ErrInvalidTime},
		{"no lines", PriorityHigh, "2023-03-01", "09:00", nil, ErrBlankTask},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.priority, tt.date, tt.clock, tt.lines); !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	t.Run("line too wide", func(t *testing.T) {
		if _, err := New(PriorityHigh, "2023-03-01", "09:00", []string{strings.Repeat("x", 45)}); err == nil {
			t.Error("expected error for 45 character line")
		}
	})
}

func TestText(t *testing.T) {
	task := Task{Lines: []string{strings.Repeat("a", 44), "b"}}
	if got := task.Text(); got != strings.Repeat("a", 44)+"b" {
		t.Errorf("got %q", got)
	}
}

func TestUrgencyAt(t *testing.T) {
	task := Task{Priority: PriorityHigh, Date: "2023-03-10", Time: "09:00", Lines: []string{"Buy milk"}}

	tests := []struct {
		today time.Time
		want  Urgency
		tag   string
	}{
		{time.Date(2023, 3, 11, 0, 0, 0, 0, time.UTC), UrgencyOverdue, "O"},
		{time.Date(2023, 3, 10, 18, 0, 0, 0, time.UTC), UrgencyToday, "T"},
		{time.Date(2023, 3, 9, 8, 0, 0, 0, time.UTC), UrgencyUpcoming, "I"},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			got, err := task.UrgencyAt(tt.today)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
			if got.Tag() != tt.tag {
				t.Errorf("tag: got %q, want %q", got.Tag(), tt.tag)
			}
		})
	}
}
