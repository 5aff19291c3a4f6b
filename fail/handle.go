package fail

import (
	"errors"
	"fmt"
	"io"

	"github.com/next-trace/scg-fail/contract"
)

// Handle is the error value handed to callers. It holds either a *Fail chain
// or an erased foreign error, and behaves the same way for both.
type Handle struct {
	fail    *Fail
	foreign error
}

// compile-time guarantee that *Handle implements contract.Fail
var _ contract.Fail = (*Handle)(nil)

// From wraps f in a Handle. A nil Fail yields a nil Handle.
func From(f *Fail) *Handle {
	if f == nil {
		return nil
	}

	return &Handle{fail: f}
}

// FromString wraps New(msg) in a Handle.
func FromString(msg string) *Handle {
	return &Handle{fail: New(msg)}
}

// FromError converts any error to a Handle.
//
// Behavior:
//   - nil input => nil output
//   - *Handle => returned as-is (same pointer)
//   - *Fail => held as a Fail chain
//   - otherwise the error is held as-is and reported by Source()
func FromError(err error) *Handle {
	switch e := err.(type) {
	case nil:
		return nil
	case *Handle:
		return e
	case *Fail:
		return From(e)
	default:
		return &Handle{foreign: err}
	}
}

// ------ standard error interface

func (h *Handle) Error() string {
	if h == nil {
		return "<nil>"
	}

	v := h.held()
	if v == nil {
		return "<nil>"
	}

	return v.Error()
}

// Unwrap returns the held value: the *Fail or the foreign error.
func (h *Handle) Unwrap() error {
	if h == nil {
		return nil
	}

	return h.held()
}

// ------ contract.Fail getters

// Message returns the outermost message. For a foreign error that is its whole
// Error() text.
func (h *Handle) Message() string {
	if h == nil || (h.fail == nil && h.foreign == nil) {
		return "<nil>"
	}

	if h.fail != nil {
		return h.fail.msg
	}

	return h.foreign.Error()
}

// Source returns the cause of the held Fail, or the foreign error itself.
func (h *Handle) Source() error {
	if h == nil {
		return nil
	}

	if h.fail != nil {
		return h.fail.cause
	}

	return h.foreign
}

// AsFail returns the held Fail, if the Handle holds one.
func (h *Handle) AsFail() (*Fail, bool) {
	if h == nil || h.fail == nil {
		return nil, false
	}

	return h.fail, true
}

// IntoFail returns the held Fail. A foreign error is converted into a Fail
// whose message is the foreign text and whose cause is errors.Unwrap of it.
func (h *Handle) IntoFail() *Fail {
	if h == nil {
		return nil
	}

	if h.fail != nil {
		return h.fail
	}

	if h.foreign == nil {
		return nil
	}

	return &Fail{
		msg:   messageOrDefault(h.foreign.Error()),
		cause: linkCause(errors.Unwrap(h.foreign)),
	}
}

// Chain returns the held value followed by every cause, outermost first.
func (h *Handle) Chain() []error {
	if h == nil {
		return nil
	}

	return chainOf(h)
}

// Format behaves like (*Fail).Format.
func (h *Handle) Format(s fmt.State, verb rune) {
	if h == nil {
		_, _ = io.WriteString(s, "<nil>")
		return
	}

	formatChain(s, verb, h)
}

// held returns nil only for a zero Handle.
func (h *Handle) held() error {
	if h.fail != nil {
		return h.fail
	}

	return h.foreign
}
