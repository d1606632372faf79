package task

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"already canonical", "2023-03-10", "2023-03-10", false},
		{"single digit month and day", "2023-3-9", "2023-03-09", false},
		{"leap day in leap year", "2020-02-29", "2020-02-29", false},
		{"leap day in non-leap year", "2021-02-29", "", true},
		{"leap day in century non-leap year", "1900-02-29", "", true},
		{"leap day in 400 year", "2000-02-29", "2000-02-29", false},
		{"day 31 in 30 day month", "2021-4-31", "", true},
		{"day 30 in february", "2024-02-30", "", true},
		{"day 31 in 31 day month", "2021-12-31", "2021-12-31", false},
		{"day 30 in 30 day month", "2021-11-30", "2021-11-30", false},
		{"month 13", "2021-13-01", "", true},
		{"month 0", "2021-0-01", "", true},
		{"day 0", "2021-01-0", "", true},
		{"day 00", "2021-01-00", "", true},
		{"day 32", "2021-01-32", "", true},
		{"three digit year", "202-01-01", "", true},
		{"five digit year", "20210-01-01", "", true},
		{"three digit day", "2021-01-010", "", true},
		{"slashes", "2021/01/01", "", true},
		{"trailing text", "2021-01-01x", "", true},
		{"surrounding space", " 2021-01-01", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeDate(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDate) {
					t.Fatalf("NormalizeDate(%q): expected ErrInvalidDate, got %q, %v", tt.raw, got, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NormalizeDate(%q): unexpected error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("NormalizeDate(%q): got %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeDateSkipsCalendarCheckUpTo28(t *testing.T) {
	for month := 1; month <= 12; month++ {
		for day := 1; day <= 28; day++ {
			raw := fmt.Sprintf("2021-%d-%d", month, day)
			want := fmt.Sprintf("2021-%02d-%02d", month, day)
			got, err := NormalizeDate(raw)
			if err != nil {
				t.Fatalf("NormalizeDate(%q): unexpected error: %v", raw, err)
			}
			if got != want {
				t.Fatalf("NormalizeDate(%q): got %q, want %q", raw, got, want)
			}
		}
	}
}

func TestDaysBetween(t *testing.T) {
	now := time.Date(2023, 3, 10, 23, 59, 0, 0, time.UTC)

	tests := []struct {
		date string
		want int
	}{
		{"2023-03-10", 0},
		{"2023-03-11", 1},
		{"2023-03-09", -1},
		{"2024-03-10", 366},
		{"0001-01-01", -738588},
	}
	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			got, err := DaysBetween(now, tt.date)
			if err != nil {
				t.Fatalf("DaysBetween: %v", err)
			}
			if got != tt.want {
				t.Errorf("DaysBetween(%s): got %d, want %d", tt.date, got, tt.want)
			}
		})
	}

	if _, err := DaysBetween(now, "2023-3-10"); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate for non-canonical date, got %v", err)
	}
}

func TestDaysBetweenUsesUTCDate(t *testing.T) {
	// 23:30 on the 9th in UTC-5 is already the 10th in UTC.
	loc := time.FixedZone("UTC-5", -5*60*60)
	now := time.Date(2023, 3, 9, 23, 30, 0, 0, loc)

	got, err := DaysBetween(now, "2023-03-10")
	if err != nil {
		t.Fatal(err)
	}
	if got != 0 {
		t.Errorf("got %d, want 0", got)
	}
}
