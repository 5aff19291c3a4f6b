package fail

import "fmt"

// Optional is a value that may be absent.
type Optional[T any] struct {
	value T
	ok    bool
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] { return Optional[T]{value: v, ok: true} }

// None returns an absent Optional.
func None[T any]() Optional[T] { return Optional[T]{} }

// OptionalOf adapts a comma-ok pair such as a map lookup or type assertion.
func OptionalOf[T any](v T, ok bool) Optional[T] {
	if !ok {
		return None[T]()
	}

	return Some(v)
}

// OptionalFromPtr treats a nil pointer as absent and dereferences otherwise.
func OptionalFromPtr[T any](p *T) Optional[T] {
	if p == nil {
		return None[T]()
	}

	return Some(*p)
}

func (o Optional[T]) IsSome() bool   { return o.ok }
func (o Optional[T]) Get() (T, bool) { return o.value, o.ok }

// ContextOrFail returns the value if present, otherwise a *Handle whose
// message is msg.
func (o Optional[T]) ContextOrFail(msg string) (T, error) {
	return OrFail(o.value, o.ok, msg)
}

// ContextOrFailFunc is ContextOrFail with a message built only when the value
// is absent.
func (o Optional[T]) ContextOrFailFunc(msg func() string) (T, error) {
	return OrFailFunc(o.value, o.ok, msg)
}

// Result is a value or the error that prevented producing it.
type Result[T any] struct {
	value T
	err   error
}

// Ok returns a successful Result holding v.
func Ok[T any](v T) Result[T] { return Result[T]{value: v} }

// Err returns a failed Result. A nil err behaves as Ok with the zero value.
func Err[T any](err error) Result[T] { return Result[T]{err: err} }

// ResultOf adapts a (value, error) pair.
func ResultOf[T any](v T, err error) Result[T] { return Result[T]{value: v, err: err} }

func (r Result[T]) IsOk() bool         { return r.err == nil }
func (r Result[T]) Unpack() (T, error) { return r.value, r.err }

// Context returns the value on success. On failure it returns a *Handle whose
// message is msg and whose cause is the original error.
func (r Result[T]) Context(msg string) (T, error) {
	return Context(r.value, r.err, msg)
}

// ContextFunc is Context with a message built only on failure.
func (r Result[T]) ContextFunc(msg func() string) (T, error) {
	return ContextFunc(r.value, r.err, msg)
}

// OrFail returns v, nil when ok is true. Otherwise it returns the zero value
// and a *Handle wrapping New(msg).
func OrFail[T any](v T, ok bool, msg string) (T, error) {
	if ok {
		return v, nil
	}

	var zero T

	return zero, From(New(msg))
}

// OrFailFunc is OrFail with a lazily built message. msg is never called when
// ok is true; prefer it on hot paths.
func OrFailFunc[T any](v T, ok bool, msg func() string) (T, error) {
	if ok {
		return v, nil
	}

	var zero T

	return zero, From(New(call(msg)))
}

// Context returns v, nil when err is nil. Otherwise it returns the zero value
// and a *Handle holding a Fail with message msg caused by err.
//
// A *Fail, or a *Handle holding one, is linked into the chain as-is; any other
// error is kept as the foreign cause.
func Context[T any](v T, err error, msg string) (T, error) {
	if err == nil {
		return v, nil
	}

	var zero T

	return zero, wrapCause(msg, err)
}

// ContextFunc is Context with a lazily built message. msg is never called on
// success; prefer it on hot paths.
func ContextFunc[T any](v T, err error, msg func() string) (T, error) {
	if err == nil {
		return v, nil
	}

	var zero T

	return zero, wrapCause(call(msg), err)
}

// Contextf is Context with a formatted message. Formatting only happens on
// failure.
func Contextf[T any](v T, err error, format string, args ...any) (T, error) {
	if err == nil {
		return v, nil
	}

	var zero T

	return zero, wrapCause(fmt.Sprintf(format, args...), err)
}

func wrapCause(msg string, err error) *Handle {
	return &Handle{fail: &Fail{msg: messageOrDefault(msg), cause: linkCause(err)}}
}

func call(msg func() string) string {
	if msg == nil {
		return DefaultMessage
	}

	return msg()
}
