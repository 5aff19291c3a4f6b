package fail

import "fmt"

// Option configures a Fail during construction via E().
type Option func(*Fail)

// WithMessagef replaces the message with a formatted one.
func WithMessagef(format string, args ...any) Option {
	return func(f *Fail) { f.msg = fmt.Sprintf(format, args...) }
}

// WithCauseFail links cause as the next Fail in the chain. nil is ignored.
func WithCauseFail(cause *Fail) Option {
	return func(f *Fail) {
		if cause != nil {
			f.cause = cause
		}
	}
}

// WithCauseError sets any error as the cause. nil is ignored; a *Handle is
// replaced by the value it holds.
func WithCauseError(cause error) Option {
	return func(f *Fail) {
		if c := linkCause(cause); c != nil {
			f.cause = c
		}
	}
}

// E is a minimal builder when New/WithCause don't fit.
// Defaults: Message=msg (DefaultMessage if empty), no cause.
func E(msg string, opts ...Option) *Fail {
	f := &Fail{msg: msg}
	for _, o := range opts {
		o(f)
	}

	f.msg = messageOrDefault(f.msg)

	return f
}
