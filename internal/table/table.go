// Package table renders tasks as a fixed-width bordered table.
package table

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/nibzard/tasklist-go/internal/task"
)

// NoTasksMessage is rendered in place of an empty table.
const NoTasksMessage = "No tasks have been input"

const (
	separator  = "+----+------------+-------+---+---+--------------------------------------------+"
	header     = "| N  |    Date    | Time  | P | D |                   Task                     |"
	emptyCells = "|    |            |       |   |   |"
	indexWidth = 2
)

// Background swatch colors.
const (
	red    = "101"
	green  = "102"
	yellow = "103"
	blue   = "104"
)

// Options controls rendering.
type Options struct {
	// Color renders priority and urgency as ANSI background swatches.
	// Without it the cells hold the one-letter tag.
	Color bool
}

// DefaultOptions returns the options used by the interactive session.
func DefaultOptions() Options {
	return Options{Color: true}
}

// Render returns the table lines for tasks as of today. Row numbers are
// 1-based positions in tasks.
func Render(tasks []task.Task, today time.Time, opts Options) []string {
	if len(tasks) == 0 {
		return []string{NoTasksMessage}
	}

	out := make([]string, 0, 3+3*len(tasks))
	out = append(out, separator, header, separator)
	for i, t := range tasks {
		first := ""
		if len(t.Lines) > 0 {
			first = t.Lines[0]
		}
		out = append(out, fmt.Sprintf("| %s | %s | %s | %s | %s |%s|",
			padRight(strconv.Itoa(i+1), indexWidth),
			t.Date,
			t.Time,
			priorityCell(t.Priority, opts),
			urgencyCell(t, today, opts),
			padRight(first, task.LineWidth),
		))
		for j := 1; j < len(t.Lines); j++ {
			out = append(out, emptyCells+padRight(t.Lines[j], task.LineWidth)+"|")
		}
		out = append(out, separator)
	}
	return out
}

// Write renders tasks to w, one line per row.
func Write(w io.Writer, tasks []task.Task, today time.Time, opts Options) error {
	for _, line := range Render(tasks, today, opts) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func priorityCell(p task.Priority, opts Options) string {
	if !opts.Color {
		if p.Valid() {
			return string(p)
		}
		return " "
	}
	switch p {
	case task.PriorityCritical:
		return swatch(red)
	case task.PriorityHigh:
		return swatch(yellow)
	case task.PriorityNormal:
		return swatch(green)
	case task.PriorityLow:
		return swatch(blue)
	default:
		return " "
	}
}

func urgencyCell(t task.Task, today time.Time, opts Options) string {
	u, err := t.UrgencyAt(today)
	if err != nil {
		return " "
	}
	if !opts.Color {
		return u.Tag()
	}
	switch u {
	case task.UrgencyOverdue:
		return swatch(red)
	case task.UrgencyToday:
		return swatch(yellow)
	default:
		return swatch(green)
	}
}

func swatch(color string) string {
	return "\x1b[" + color + "m \x1b[0m"
}

func padRight(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
