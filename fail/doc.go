// Package fail provides a small failure type that chains human-readable context
// messages on top of an underlying cause.
//
// It exposes two concrete types that implement contract.Fail and integrate with
// the standard library's errors helpers (Is/As) via Unwrap:
//   - Fail:   an immutable message plus an optional cause (another Fail or any error)
//   - Handle: the value returned to callers, holding either a Fail chain or an
//     erased foreign error
//
// Key characteristics:
//   - Messages are never empty (DefaultMessage is used instead)
//   - Error() renders the whole chain on one line, joined by Delimiter
//   - %+v renders one line per level, each cause introduced by CausePrefix
//   - Fail and Handle log as structured objects through zerolog's Event.Err
//
// Context, Contextf and ContextFunc attach a message to a (value, error) pair;
// OrFail and OrFailFunc do the same for a (value, ok) pair. Optional and Result
// carry the same helpers as methods. New, Newf, WithCause and E build Fails
// directly, and Wrap/Ensure adapt arbitrary errors.
package fail
