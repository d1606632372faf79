package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/nibzard/tasklist-go/internal/store"
	"github.com/nibzard/tasklist-go/internal/table"
	"github.com/nibzard/tasklist-go/internal/task"
)

// Session is one interactive run over a task list.
type Session struct {
	in     io.Reader
	out    io.Writer
	list   *store.List
	now    func() time.Time
	table  table.Options
	logger *log.Logger

	lines <-chan inputLine
}

// inputLine is one line read from the input, or the error that ended it.
type inputLine struct {
	text string
	err  error
}

// Option configures a Session.
type Option func(*Session)

// WithClock sets the clock used to classify due dates.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

// WithTableOptions sets how the task table is rendered.
func WithTableOptions(opts table.Options) Option {
	return func(s *Session) {
		s.table = opts
	}
}

// WithLogger sets the logger for session events.
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a session that edits list in place.
func New(in io.Reader, out io.Writer, list *store.List, opts ...Option) *Session {
	if list == nil {
		list = store.NewList()
	}
	s := &Session{
		in:     in,
		out:    out,
		list:   list,
		now:    time.Now,
		table:  table.DefaultOptions(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns the list the session edits.
func (s *Session) List() *store.List {
	return s.list
}

// Run executes the command loop until "end", end of input or cancellation.
// Run must not be called concurrently on the same Session.
func (s *Session) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	s.lines = startReader(s.in, done)

	for {
		s.println(promptAction)
		raw, err := s.readLine(ctx)
		if err != nil {
			return s.finish(err)
		}

		action, err := ParseAction(raw)
		if err != nil {
			s.logger.Debug("unknown action", "input", raw)
			s.println(msgInvalidAction)
			continue
		}
		if action == ActionEnd {
			s.println(msgExit)
			return nil
		}

		if err := s.dispatch(ctx, action); err != nil {
			return s.finish(err)
		}
	}
}

func (s *Session) dispatch(ctx context.Context, action Action) error {
	switch action {
	case ActionAdd:
		return s.add(ctx)
	case ActionPrint:
		s.render()
		return nil
	case ActionEdit:
		return s.edit(ctx)
	case ActionDelete:
		return s.delete(ctx)
	}
	return nil
}

// finish maps the error that stopped the loop to the Run result.
func (s *Session) finish(err error) error {
	if errors.Is(err, io.EOF) {
		s.logger.Debug("input closed, ending session")
		return nil
	}
	return err
}

func (s *Session) add(ctx context.Context) error {
	priority, err := s.readPriority(ctx)
	if err != nil {
		return err
	}
	date, err := s.readDate(ctx)
	if err != nil {
		return err
	}
	clock, err := s.readTime(ctx)
	if err != nil {
		return err
	}
	lines, err := s.readTaskLines(ctx)
	if errors.Is(err, task.ErrBlankTask) {
		s.println(msgBlankTask)
		return nil
	}
	if err != nil {
		return err
	}

	t, err := task.New(priority, date, clock, lines)
	if err != nil {
		return err
	}
	s.list.Add(t)
	s.logger.Info("task added", "number", s.list.Len(), "priority", t.Priority, "date", t.Date)
	return nil
}

func (s *Session) edit(ctx context.Context) error {
	if !s.render() {
		return nil
	}
	i, err := s.readIndex(ctx)
	if err != nil {
		return err
	}
	field, err := s.readField(ctx)
	if err != nil {
		return err
	}

	var update func(*task.Task)
	switch field {
	case task.FieldPriority:
		p, err := s.readPriority(ctx)
		if err != nil {
			return err
		}
		update = func(t *task.Task) { t.Priority = p }
	case task.FieldDate:
		d, err := s.readDate(ctx)
		if err != nil {
			return err
		}
		update = func(t *task.Task) { t.Date = d }
	case task.FieldTime:
		tm, err := s.readTime(ctx)
		if err != nil {
			return err
		}
		update = func(t *task.Task) { t.Time = tm }
	case task.FieldTask:
		lines, err := s.readTaskLines(ctx)
		if errors.Is(err, task.ErrBlankTask) {
			s.println(msgBlankTask)
			return nil
		}
		if err != nil {
			return err
		}
		update = func(t *task.Task) { t.Lines = lines }
	}

	if err := s.list.Update(i, update); err != nil {
		return err
	}
	s.logger.Info("task changed", "number", i+1, "field", field)
	s.println(msgChanged)
	return nil
}

func (s *Session) delete(ctx context.Context) error {
	if !s.render() {
		return nil
	}
	i, err := s.readIndex(ctx)
	if err != nil {
		return err
	}
	if err := s.list.Delete(i); err != nil {
		return err
	}
	s.logger.Info("task deleted", "number", i+1, "remaining", s.list.Len())
	s.println(msgDeleted)
	return nil
}

// render prints the table and reports whether the list has tasks.
func (s *Session) render() bool {
	if err := table.Write(s.out, s.list.Tasks(), s.now(), s.table); err != nil {
		s.logger.Error("render task table", "err", err)
	}
	return s.list.Len() > 0
}

func (s *Session) readPriority(ctx context.Context) (task.Priority, error) {
	for {
		s.println(promptPriority)
		raw, err := s.readLine(ctx)
		if err != nil {
			return "", err
		}
		if p, err := task.ParsePriority(raw); err == nil {
			return p, nil
		}
	}
}

func (s *Session) readDate(ctx context.Context) (string, error) {
	for {
		s.println(promptDate)
		raw, err := s.readLine(ctx)
		if err != nil {
			return "", err
		}
		if d, err := task.NormalizeDate(strings.TrimSpace(raw)); err == nil {
			return d, nil
		}
		s.println(msgInvalidDate)
	}
}

func (s *Session) readTime(ctx context.Context) (string, error) {
	for {
		s.println(promptTime)
		raw, err := s.readLine(ctx)
		if err != nil {
			return "", err
		}
		if tm, err := task.NormalizeTime(strings.TrimSpace(raw)); err == nil {
			return tm, nil
		}
		s.println(msgInvalidTime)
	}
}

// readTaskLines reads lines up to the first blank one and wraps them.
func (s *Session) readTaskLines(ctx context.Context) ([]string, error) {
	s.println(promptTask)
	var raw []string
	for {
		line, err := s.readLine(ctx)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(line) == "" {
			break
		}
		raw = append(raw, line)
	}
	return task.WrapEntry(raw)
}

func (s *Session) readIndex(ctx context.Context) (int, error) {
	for {
		s.println(fmt.Sprintf(promptIndex, s.list.Len()))
		raw, err := s.readLine(ctx)
		if err != nil {
			return -1, err
		}
		if i, err := s.list.ResolveIndex(raw); err == nil {
			return i, nil
		}
		s.println(msgInvalidIndex)
	}
}

func (s *Session) readField(ctx context.Context) (task.Field, error) {
	for {
		s.println(promptField)
		raw, err := s.readLine(ctx)
		if err != nil {
			return "", err
		}
		if f, err := task.ParseField(raw); err == nil {
			return f, nil
		}
		s.println(msgInvalidField)
	}
}

func (s *Session) println(line string) {
	fmt.Fprintln(s.out, line)
}

// startReader feeds input lines from a separate goroutine so a blocked
// read does not hold up cancellation. Lines may be of any length. The
// channel is closed after the final line or error, or once done is closed.
func startReader(in io.Reader, done <-chan struct{}) <-chan inputLine {
	lines := make(chan inputLine)

	go func() {
		defer close(lines)
		r := bufio.NewReader(in)
		for {
			text, err := r.ReadString('\n')
			if text != "" || err == nil {
				select {
				case lines <- inputLine{text: strings.TrimRight(text, "\r\n")}:
				case <-done:
					return
				}
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					select {
					case lines <- inputLine{err: fmt.Errorf("read input: %w", err)}:
					case <-done:
					}
				}
				return
			}
		}
	}()
	return lines
}

func (s *Session) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-s.lines:
		if !ok {
			return "", io.EOF
		}
		return line.text, line.err
	}
}
