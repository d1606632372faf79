// Package session runs the interactive task list command loop.
//
// A session reads one line per prompt from an io.Reader and writes prompts,
// messages and the task table to an io.Writer. Invalid input never ends the
// session: the prompt is repeated until a valid value arrives.
//
// Run returns nil when the user enters "end" or the input is exhausted. The
// caller is expected to save the list only in that case; a cancelled context
// returns the context error and leaves saving to no one.
package session
