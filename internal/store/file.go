package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nibzard/tasklist-go/internal/task"
)

// LoadOptions controls how a task file is read.
type LoadOptions struct {
	// Schema enables JSON Schema validation before the task checks.
	Schema bool
}

// Load reads the task file at path. A missing file is an empty list.
func Load(path string, opts LoadOptions) (*List, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NewList(), nil
		}
		return nil, fmt.Errorf("read task file: %w", err)
	}

	result := Validate(data, ValidationOptions{Schema: opts.Schema})
	if !result.Valid {
		return nil, fmt.Errorf("%s: %w", path, result.Err())
	}

	tasks, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return NewList(tasks...), nil
}

// Save writes the list to path with 2-space indentation, replacing any
// previous content.
func (l *List) Save(path string) error {
	data, err := Encode(l.tasks)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create task file dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write task file: %w", err)
	}
	return nil
}

// Encode marshals tasks in the task file format.
func Encode(tasks []task.Task) ([]byte, error) {
	if tasks == nil {
		tasks = []task.Task{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal task file: %w", err)
	}
	return append(data, '\n'), nil
}

// Decode parses tasks from the task file format without validating them.
func Decode(data []byte) ([]task.Task, error) {
	var tasks []task.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("parse task file: %w", err)
	}
	return tasks, nil
}
