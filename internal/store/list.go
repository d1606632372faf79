package store

import (
	"errors"
	"strconv"

	"github.com/nibzard/tasklist-go/internal/task"
)

// ErrInvalidIndex is returned for task numbers that are not numeric or out
// of range.
var ErrInvalidIndex = errors.New("invalid task number")

// List is the ordered, in-memory task list.
type List struct {
	tasks []task.Task
}

// NewList returns a list holding tasks in order.
func NewList(tasks ...task.Task) *List {
	return &List{tasks: append([]task.Task(nil), tasks...)}
}

// Len returns the number of tasks.
func (l *List) Len() int {
	return len(l.tasks)
}

// Tasks returns a copy of the tasks in order.
func (l *List) Tasks() []task.Task {
	return append([]task.Task(nil), l.tasks...)
}

// Get returns the task at the 0-based index i.
func (l *List) Get(i int) (task.Task, error) {
	if i < 0 || i >= len(l.tasks) {
		return task.Task{}, ErrInvalidIndex
	}
	return l.tasks[i], nil
}

// Add appends t to the end of the list.
func (l *List) Add(t task.Task) {
	l.tasks = append(l.tasks, t)
}

// Update replaces the task at index i with the result of updater. Other
// tasks keep their positions.
func (l *List) Update(i int, updater func(*task.Task)) error {
	if i < 0 || i >= len(l.tasks) {
		return ErrInvalidIndex
	}
	updated := l.tasks[i]
	updated.Lines = append([]string(nil), updated.Lines...)
	updater(&updated)
	l.tasks[i] = updated
	return nil
}

// Delete removes the task at index i. Later tasks move up by one.
func (l *List) Delete(i int) error {
	if i < 0 || i >= len(l.tasks) {
		return ErrInvalidIndex
	}
	l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
	return nil
}

// ResolveIndex converts a 1-based task number typed by the user into an
// index into this list.
func (l *List) ResolveIndex(raw string) (int, error) {
	return ResolveIndex(raw, l.Len())
}

// ResolveIndex parses raw as a 1-based task number and returns the 0-based
// index if it lies in [0, count).
func ResolveIndex(raw string, count int) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return -1, ErrInvalidIndex
	}
	i := n - 1
	if i < 0 || i >= count {
		return -1, ErrInvalidIndex
	}
	return i, nil
}
