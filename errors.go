package okaara

import "errors"

// ErrAborted is returned by Read when the user interrupts the pending read
// and the call did not opt into interrupt propagation. It is a sentinel:
// compare with errors.Is, never by message. An aborted read is distinct from
// an empty entry, which is a legitimate ("", nil) result.
var ErrAborted = errors.New("read aborted by user")

// ErrInterrupted is returned by Read when the user interrupts the pending
// read and the call requested propagation via Interruptible. It wraps the
// underlying cause when one exists.
var ErrInterrupted = errors.New("read interrupted")

// ErrExhausted is returned by Read when the input source has no more lines:
// a drained Script or end-of-stream on a real handle. It is never folded
// into an empty string or an abort.
var ErrExhausted = errors.New("input source exhausted")

// ErrInvalidColor is returned when a color argument is not one of the
// enumerated Color constants. Validation happens before any output is
// emitted.
var ErrInvalidColor = errors.New("invalid color")
