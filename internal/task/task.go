package task

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var (
	ErrInvalidPriority = errors.New("invalid priority")
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidTime     = errors.New("invalid time")
	ErrBlankTask       = errors.New("blank task")
	ErrInvalidField    = errors.New("invalid field")
)

// Priority is the single-letter priority code stored with a task.
type Priority string

const (
	PriorityCritical Priority = "C"
	PriorityHigh     Priority = "H"
	PriorityNormal   Priority = "N"
	PriorityLow      Priority = "L"
)

// ParsePriority accepts a case-insensitive priority letter, ignoring
// surrounding whitespace.
func ParsePriority(raw string) (Priority, error) {
	switch strings.TrimSpace(raw) {
	case "C", "c":
		return PriorityCritical, nil
	case "H", "h":
		return PriorityHigh, nil
	case "N", "n":
		return PriorityNormal, nil
	case "L", "l":
		return PriorityLow, nil
	default:
		return "", ErrInvalidPriority
	}
}

// Valid reports whether p is one of the four known codes.
func (p Priority) Valid() bool {
	switch p {
	case PriorityCritical, PriorityHigh, PriorityNormal, PriorityLow:
		return true
	}
	return false
}

// Name returns the long name of the priority.
func (p Priority) Name() string {
	switch p {
	case PriorityCritical:
		return "Critical"
	case PriorityHigh:
		return "High"
	case PriorityNormal:
		return "Normal"
	case PriorityLow:
		return "Low"
	default:
		return string(p)
	}
}

// Field names a task field that can be edited.
type Field string

const (
	FieldPriority Field = "priority"
	FieldDate     Field = "date"
	FieldTime     Field = "time"
	FieldTask     Field = "task"
)

// ParseField accepts one of priority, date, time or task.
func ParseField(raw string) (Field, error) {
	switch f := Field(strings.TrimSpace(raw)); f {
	case FieldPriority, FieldDate, FieldTime, FieldTask:
		return f, nil
	default:
		return "", ErrInvalidField
	}
}

// Task is a validated task record.
type Task struct {
	Priority Priority `json:"priority"`
	Date     string   `json:"date"`
	Time     string   `json:"time"`
	Lines    []string `json:"taskLines"`
}

// New builds a task from already split lines. The date and time are
// normalized; the lines must be non-empty and each fit in LineWidth runes.
func New(priority Priority, date, clock string, lines []string) (Task, error) {
	if !priority.Valid() {
		return Task{}, fmt.Errorf("%w: %q", ErrInvalidPriority, priority)
	}
	d, err := NormalizeDate(date)
	if err != nil {
		return Task{}, err
	}
	tm, err := NormalizeTime(clock)
	if err != nil {
		return Task{}, err
	}
	if err := checkLines(lines); err != nil {
		return Task{}, err
	}
	return Task{
		Priority: priority,
		Date:     d,
		Time:     tm,
		Lines:    append([]string(nil), lines...),
	}, nil
}

// Text returns the task text with its display lines joined back together.
func (t Task) Text() string {
	return strings.Join(t.Lines, "")
}

// Equal reports whether two tasks hold the same values.
func (t Task) Equal(other Task) bool {
	if t.Priority != other.Priority || t.Date != other.Date || t.Time != other.Time {
		return false
	}
	if len(t.Lines) != len(other.Lines) {
		return false
	}
	for i := range t.Lines {
		if t.Lines[i] != other.Lines[i] {
			return false
		}
	}
	return true
}

func checkLines(lines []string) error {
	if len(lines) == 0 {
		return ErrBlankTask
	}
	for i, line := range lines {
		if n := utf8.RuneCountInString(line); n > LineWidth {
			return fmt.Errorf("line %d is %d characters, limit is %d", i+1, n, LineWidth)
		}
	}
	return nil
}
