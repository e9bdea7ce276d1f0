// Package rendererr defines the render pipeline's error taxonomy and the
// LastError registry that mirrors the thread-local "most recent failure
// message" contract an FFI boundary needs from this library.
package rendererr

import (
	"fmt"
	"runtime"
	"strconv"
	"sync"
)

// Kind is one of the five mutually exclusive error classes a render call
// can fail with.
type Kind int

const (
	EmptyInput Kind = iota + 1
	ParseError
	ImageError
	LayoutError
	InternalError
)

func (k Kind) String() string {
	switch k {
	case EmptyInput:
		return "EmptyInput"
	case ParseError:
		return "ParseError"
	case ImageError:
		return "ImageError"
	case LayoutError:
		return "LayoutError"
	case InternalError:
		return "InternalError"
	default:
		return "Unknown"
	}
}

// Code returns a small nonzero integer identifying the kind, for FFI
// callers that can't carry a typed Go error across the boundary
// (0 = success, nonzero = distinct error class).
func (k Kind) Code() int { return int(k) }

// Error lets a bare Kind serve as an errors.Is target.
func (k Kind) Error() string { return k.String() }

// Error is the typed error value callers can match with errors.Is/As
// against a Kind while still getting a human-readable message.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return fmt.Sprintf("%s: %s", e.Kind, e.Msg) }

// Is supports errors.Is(err, rendererr.EmptyInput) by treating a bare Kind
// as a sentinel that matches any *Error of the same kind.
func (e *Error) Is(target error) bool {
	if k, ok := target.(Kind); ok {
		return e.Kind == k
	}
	other, ok := target.(*Error)
	return ok && other.Kind == e.Kind
}

// New builds an *Error and records it as LastError for the calling
// goroutine: a failing call terminates and leaves its message behind
// for a subsequent LastError() to retrieve.
func New(kind Kind, format string, args ...any) *Error {
	e := &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
	setLastError(e.Error())
	return e
}

// lastErrors is keyed by goroutine id, the closest Go analogue to the
// FFI boundary's thread-local storage: each call into Generate happens on
// whatever goroutine the caller used, and LastError() must answer for
// that same goroutine.
var (
	lastErrorsMu sync.RWMutex
	lastErrors   = map[uint64]string{}
)

func setLastError(msg string) {
	lastErrorsMu.Lock()
	defer lastErrorsMu.Unlock()
	lastErrors[goroutineID()] = msg
}

// LastError returns the calling goroutine's most recent failure message,
// or "" if it has not produced one.
func LastError() string {
	lastErrorsMu.RLock()
	defer lastErrorsMu.RUnlock()
	return lastErrors[goroutineID()]
}

// ClearLastError resets the calling goroutine's last-error slot, called
// at the start of each Generate so a stale message from a prior failed
// call never leaks into a later successful one.
func ClearLastError() {
	lastErrorsMu.Lock()
	defer lastErrorsMu.Unlock()
	delete(lastErrors, goroutineID())
}

// goroutineID parses the numeric id out of runtime.Stack's header line.
// There is no supported API for this in Go; it is only ever used here to
// key a thread-local-shaped cache, never for scheduling decisions, so a
// parsing miss (format change in a future Go release) degrading to id 0
// is an acceptable fallback rather than a correctness bug.
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	fields := buf[len("goroutine "):n]
	for i, b := range fields {
		if b == ' ' {
			id, err := strconv.ParseUint(string(fields[:i]), 10, 64)
			if err != nil {
				return 0
			}
			return id
		}
	}
	return 0
}
