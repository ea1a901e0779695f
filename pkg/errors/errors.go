// Package errors provides structured error handling for the uicore engine.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindPool indicates a node pool lookup failure (stale or invalid handle).
	KindPool
	// KindLayout indicates a layout failure.
	KindLayout
	// KindDraw indicates a draw command or renderer failure.
	KindDraw
	// KindResource indicates a texture population failure.
	KindResource
	// KindConfig indicates a configuration error.
	KindConfig
	// KindScene indicates a scene description error.
	KindScene
	// KindPanic indicates a recovered panic.
	KindPanic
	// KindPhase indicates a mutation attempted during a frame traversal.
	KindPhase
)

func (k ErrorKind) String() string {
	switch k {
	case KindPool:
		return "pool"
	case KindLayout:
		return "layout"
	case KindDraw:
		return "draw"
	case KindResource:
		return "resource"
	case KindConfig:
		return "config"
	case KindScene:
		return "scene"
	case KindPanic:
		return "panic"
	case KindPhase:
		return "phase"
	default:
		return "unknown"
	}
}

type sentinel string

func (s sentinel) Error() string { return string(s) }

const (
	// ErrStaleHandle is returned when a handle no longer refers to a live node.
	ErrStaleHandle = sentinel("stale or invalid node handle")
	// ErrCycle is returned when linking a node would make it its own ancestor.
	ErrCycle = sentinel("link would create a cycle")
	// ErrAlreadyAdded is reported when a node that is already stored in a
	// UserInterface is added again.
	ErrAlreadyAdded = sentinel("node is already stored in a user interface")
)

// UIError represents a structured error in the engine.
type UIError struct {
	// Op is the operation that failed (e.g., "ui.Link").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *UIError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *UIError) Unwrap() error {
	return e.Err
}

// New returns a UIError for op wrapping err.
func New(op string, kind ErrorKind, err error) *UIError {
	return &UIError{Op: op, Kind: kind, Err: err}
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "resource.Load").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// PhaseError reports a tree mutation attempted while a frame phase
// (update, layout or draw) is traversing the tree. It is raised as a panic:
// the caller broke the no-reentrancy contract.
type PhaseError struct {
	// Op is the mutation that was attempted (e.g., "ui.AddNode").
	Op string
	// Phase is the traversal that was running.
	Phase string
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("%s called during %s phase", e.Op, e.Phase)
}

// ErrorHandler receives errors reported by the engine.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *UIError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
