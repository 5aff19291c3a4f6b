package fail

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/next-trace/scg-fail/contract"
)

const (
	// Delimiter separates a message from its cause in single-line renderings.
	Delimiter = ": "

	// CausePrefix introduces each cause line in the %+v rendering.
	CausePrefix = "caused by: "

	// DefaultMessage replaces an empty message at construction time.
	DefaultMessage = "failure"
)

// Fail is a failure description: a message and an optional cause.
//
// The cause is either another *Fail, forming a singly linked chain, or a
// foreign error reached through Wrap/Context. A Fail never changes after it is
// built, so it can be shared freely.
type Fail struct {
	msg   string
	cause error
}

// compile-time guarantee that *Fail implements contract.Fail
var _ contract.Fail = (*Fail)(nil)

// New creates a Fail with no cause.
func New(msg string) *Fail {
	return &Fail{msg: messageOrDefault(msg)}
}

// Newf formats msg with args and creates a Fail with no cause.
func Newf(format string, args ...any) *Fail {
	return New(fmt.Sprintf(format, args...))
}

// WithCause creates a Fail whose cause is an existing Fail. A nil cause yields
// the same result as New.
func WithCause(msg string, cause *Fail) *Fail {
	f := New(msg)
	if cause != nil {
		f.cause = cause
	}

	return f
}

// ------ standard error interface

// Error renders the message followed by every cause, joined by Delimiter.
func (f *Fail) Error() string {
	if f == nil {
		return "<nil>"
	}

	if f.cause == nil {
		return f.msg
	}

	return f.msg + Delimiter + f.cause.Error()
}

func (f *Fail) Unwrap() error {
	if f == nil {
		return nil
	}

	return f.cause
}

// ------ contract.Fail getters

func (f *Fail) Message() string {
	if f == nil {
		return "<nil>"
	}

	return f.msg
}

func (f *Fail) Source() error { return f.Unwrap() }

// Chain returns f followed by every cause, outermost first.
func (f *Fail) Chain() []error {
	if f == nil {
		return nil
	}

	return chainOf(f)
}

// Format supports %s, %v, %q and %+v. The %+v form puts each cause on its own
// indented line.
func (f *Fail) Format(s fmt.State, verb rune) {
	if f == nil {
		_, _ = io.WriteString(s, "<nil>")
		return
	}

	formatChain(s, verb, f)
}

// ------ internals shared by Fail and Handle

func messageOrDefault(msg string) string {
	if msg == "" {
		return DefaultMessage
	}

	return msg
}

// linkCause normalizes a cause before it is stored in a Fail: a Handle is
// replaced by what it holds and typed nil pointers become a nil error.
func linkCause(err error) error {
	switch c := err.(type) {
	case nil:
		return nil
	case *Fail:
		if c == nil {
			return nil
		}

		return c
	case *Handle:
		if c == nil {
			return nil
		}

		return c.held()
	default:
		return err
	}
}

// chainOf walks err through errors.Unwrap. Handles are transparent: only the
// value they hold shows up in the result.
func chainOf(err error) []error {
	var out []error

	for err != nil {
		if h, ok := err.(*Handle); ok {
			if h == nil {
				break
			}

			err = h.held()

			continue
		}

		if f, ok := err.(*Fail); ok && f == nil {
			break
		}

		out = append(out, err)
		err = errors.Unwrap(err)
	}

	return out
}

// levels returns one line of text per level of err's chain. A foreign error
// already renders its own causes, so the walk stops at the first one.
func levels(err error) []string {
	var out []string

	for _, e := range chainOf(err) {
		if f, ok := e.(*Fail); ok {
			out = append(out, f.msg)
			continue
		}

		out = append(out, e.Error())

		break
	}

	return out
}

func formatChain(s fmt.State, verb rune, err error) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			writeNested(s, err)
			return
		}

		_, _ = io.WriteString(s, err.Error())
	case 's':
		_, _ = io.WriteString(s, err.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", err.Error())
	default:
		_, _ = fmt.Fprintf(s, "%%!%c(%T=%s)", verb, err, err.Error())
	}
}

func writeNested(w io.Writer, err error) {
	for i, line := range levels(err) {
		if i > 0 {
			_, _ = io.WriteString(w, "\n"+strings.Repeat("  ", i-1)+CausePrefix)
		}

		_, _ = io.WriteString(w, line)
	}
}
