package fail

import "fmt"

// Wrap attaches msg to err. If err is nil, Wrap returns nil so it can be used
// directly in return statements.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}

	return wrapCause(msg, err)
}

// Wrapf is Wrap with a formatted message. Formatting only happens when err is
// non-nil.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}

	return wrapCause(fmt.Sprintf(format, args...), err)
}

// Ensure converts any error to *Handle at an API boundary.
//
// Behavior:
//   - nil input => nil output
//   - *Handle => returned as-is (same pointer)
//   - anything else, including errors that merely wrap a *Handle, is held as
//     given so no outer message is lost; errors.As still reaches inner Handles
func Ensure(err error) *Handle {
	return FromError(err)
}
