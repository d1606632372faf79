package store

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/nibzard/tasklist-go/internal/task"
)

// SchemaURL identifies the embedded task file schema.
const SchemaURL = "https://github.com/nibzard/tasklist-go/tasklist.schema.json"

//go:embed tasklist.schema.json
var schemaJSON []byte

// ErrInvalidFile wraps every validation failure of a task file.
var ErrInvalidFile = errors.New("invalid task file")

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// Schema returns the embedded JSON Schema document.
func Schema() []byte {
	return append([]byte(nil), schemaJSON...)
}

// ValidationError represents a validation error with context.
type ValidationError struct {
	Path string // JSON path to the error location
	Err  error  // Underlying error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ValidationOptions controls validation behavior.
type ValidationOptions struct {
	// Schema enables JSON Schema validation.
	Schema bool
}

// ValidationResult contains validation results.
type ValidationResult struct {
	Valid      bool
	Errors     []error
	Warnings   []string
	UsedSchema bool // true if JSON Schema validation was performed
}

// Err joins the validation errors under ErrInvalidFile, or returns nil when
// the file is valid.
func (r *ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidFile, errors.Join(r.Errors...))
}

func (r *ValidationResult) fail(err error) {
	r.Valid = false
	r.Errors = append(r.Errors, err)
}

// Validate checks raw task file content.
func Validate(data []byte, opts ValidationOptions) *ValidationResult {
	result := &ValidationResult{
		Valid:    true,
		Errors:   make([]error, 0),
		Warnings: make([]string, 0),
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		result.fail(&ValidationError{Err: fmt.Errorf("parse task file: %w", err)})
		return result
	}

	if opts.Schema {
		schema, err := loadSchema()
		if err != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("invalid embedded schema: %v", err),
				"JSON Schema validation not available, using task checks only")
		} else {
			result.UsedSchema = true
			if err := schema.Validate(doc); err != nil {
				appendSchemaErrors(result, err)
				return result
			}
		}
	}

	validateTasks(data, result)
	return result
}

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource(SchemaURL, bytes.NewReader(schemaJSON)); err != nil {
			schemaErr = err
			return
		}
		compiledSchema, schemaErr = compiler.Compile(SchemaURL)
	})
	return compiledSchema, schemaErr
}

// validateTasks rebuilds every entry through task.New and reports entries
// that do not come back unchanged.
func validateTasks(data []byte, result *ValidationResult) {
	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		result.fail(&ValidationError{Err: fmt.Errorf("expected an array of tasks: %w", err)})
		return
	}

	for i, raw := range entries {
		path := fmt.Sprintf("[%d]", i)
		var t task.Task
		if err := json.Unmarshal(raw, &t); err != nil {
			result.fail(&ValidationError{Path: path, Err: err})
			continue
		}
		if err := validateTask(t, path); err != nil {
			result.fail(err)
		}
	}
}

func validateTask(t task.Task, path string) *ValidationError {
	if !t.Priority.Valid() {
		return &ValidationError{
			Path: path + ".priority",
			Err:  fmt.Errorf("%w %q, must be one of: C, H, N, L", task.ErrInvalidPriority, t.Priority),
		}
	}
	if d, err := task.NormalizeDate(t.Date); err != nil || d != t.Date {
		return &ValidationError{
			Path: path + ".date",
			Err:  fmt.Errorf("%w %q", task.ErrInvalidDate, t.Date),
		}
	}
	if tm, err := task.NormalizeTime(t.Time); err != nil || tm != t.Time {
		return &ValidationError{
			Path: path + ".time",
			Err:  fmt.Errorf("%w %q", task.ErrInvalidTime, t.Time),
		}
	}
	if _, err := task.New(t.Priority, t.Date, t.Time, t.Lines); err != nil {
		return &ValidationError{
			Path: path + ".taskLines",
			Err:  err,
		}
	}
	return nil
}

func appendSchemaErrors(result *ValidationResult, err error) {
	if err == nil {
		return
	}

	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		result.fail(err)
		return
	}

	collectSchemaErrors(result, ve)
}

func collectSchemaErrors(result *ValidationResult, err *jsonschema.ValidationError) {
	if err == nil {
		return
	}

	if len(err.Causes) == 0 {
		result.fail(&ValidationError{
			Path: jsonPointerToPath(err.InstanceLocation),
			Err:  fmt.Errorf("%s", err.Message),
		})
		return
	}

	for _, cause := range err.Causes {
		collectSchemaErrors(result, cause)
	}
}

// jsonPointerToPath converts a JSON Pointer such as "/0/taskLines/2" into
// "[0].taskLines[2]".
func jsonPointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}

	var b strings.Builder
	for _, part := range strings.Split(ptr, "/") {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if part == "" {
			continue
		}
		if idx, err := strconv.Atoi(part); err == nil {
			fmt.Fprintf(&b, "[%d]", idx)
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}
