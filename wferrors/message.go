// Package wferrors provides the generic, position-free message plumbing
// shared by the object-language evaluator's structured errors. It plays the
// role cue/errors plays for CUE: a small toolkit for building and rendering
// human-readable messages that a domain-specific error type (in this module,
// value.EvalError) composes rather than reimplements.
package wferrors

import "fmt"

// Message holds a format string and its arguments for later rendering,
// mirroring cue/errors.Message: keeping format and args apart (instead of
// eagerly calling fmt.Sprintf) lets a future localized renderer reformat the
// same error without losing information.
type Message struct {
	format string
	args   []any
}

// NewMessage builds a Message from a format string and its arguments.
func NewMessage(format string, args ...any) Message {
	return Message{format: format, args: args}
}

// Msg returns the raw format string and arguments.
func (m Message) Msg() (string, []any) {
	return m.format, m.args
}

// Error renders the message for human consumption.
func (m Message) Error() string {
	return fmt.Sprintf(m.format, m.args...)
}
