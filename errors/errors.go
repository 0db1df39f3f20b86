package errors

import (
	"fmt"
	"strings"

	"github.com/wippyai/igraph-go/abi"
)

// Kind categorizes a failure reported by the engine.
type Kind string

const (
	KindFailure          Kind = "failure"
	KindNoMemory         Kind = "no_memory"
	KindParseError       Kind = "parse_error"
	KindInvalidValue     Kind = "invalid_value"
	KindExists           Kind = "exists"
	KindInvalidVertexID  Kind = "invalid_vertex_id"
	KindInvalidEdgeID    Kind = "invalid_edge_id"
	KindInvalidMode      Kind = "invalid_mode"
	KindFileError        Kind = "file_error"
	KindUnimplemented    Kind = "unimplemented"
	KindInterrupted      Kind = "interrupted"
	KindDiverged         Kind = "diverged"
	KindArpack           Kind = "arpack"
	KindNegativeCycle    Kind = "negative_cycle"
	KindInternal         Kind = "internal"
	KindAttributeCombine Kind = "attribute_combine"
	KindOverflow         Kind = "overflow"
	KindUnderflow        Kind = "underflow"
	KindRandomWalkStuck  Kind = "random_walk_stuck"
	KindStop             Kind = "stop"
	KindRange            Kind = "range"
	KindNoSolution       Kind = "no_solution"
	KindUnknown          Kind = "unknown"
)

var kindByStatus = map[abi.Status]Kind{
	abi.StatusFailure:          KindFailure,
	abi.StatusNoMemory:         KindNoMemory,
	abi.StatusParseError:       KindParseError,
	abi.StatusInvalidValue:     KindInvalidValue,
	abi.StatusExists:           KindExists,
	abi.StatusInvalidVertexID:  KindInvalidVertexID,
	abi.StatusInvalidEdgeID:    KindInvalidEdgeID,
	abi.StatusInvalidMode:      KindInvalidMode,
	abi.StatusFileError:        KindFileError,
	abi.StatusUnimplemented:    KindUnimplemented,
	abi.StatusInterrupted:      KindInterrupted,
	abi.StatusDiverged:         KindDiverged,
	abi.StatusArpack:           KindArpack,
	abi.StatusNegativeCycle:    KindNegativeCycle,
	abi.StatusInternal:         KindInternal,
	abi.StatusAttributeCombine: KindAttributeCombine,
	abi.StatusOverflow:         KindOverflow,
	abi.StatusUnderflow:        KindUnderflow,
	abi.StatusRandomWalkStuck:  KindRandomWalkStuck,
	abi.StatusStop:             KindStop,
	abi.StatusRange:            KindRange,
	abi.StatusNoSolution:       KindNoSolution,
}

var messages = map[Kind]string{
	KindFailure:          "generic igraph failure",
	KindNoMemory:         "out of memory",
	KindParseError:       "parse error",
	KindInvalidValue:     "invalid value",
	KindExists:           "element already exists",
	KindInvalidVertexID:  "invalid vertex id",
	KindInvalidEdgeID:    "invalid edge id",
	KindInvalidMode:      "invalid mode argument",
	KindFileError:        "file operation error",
	KindUnimplemented:    "unimplemented function",
	KindInterrupted:      "interrupted",
	KindDiverged:         "algorithm diverged",
	KindArpack:           "ARPACK error",
	KindNegativeCycle:    "negative cycle found",
	KindInternal:         "internal error",
	KindAttributeCombine: "attribute combination error",
	KindOverflow:         "integer overflow",
	KindUnderflow:        "integer underflow",
	KindRandomWalkStuck:  "random walk stuck",
	KindStop:             "stop signal",
	KindRange:            "value out of range",
	KindNoSolution:       "no solution found",
}

// Error is a typed engine failure.
type Error struct {
	// Op is the foreign function that failed, empty when unknown.
	Op     string
	Kind   Kind
	Detail string
	// Code is the raw status. It is the only carrier of information for
	// KindUnknown and zero for errors raised on the Go side.
	Code abi.Status
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}

	if e.Kind == KindUnknown {
		fmt.Fprintf(&b, "unknown igraph error code: %d", e.Code)
	} else if msg, ok := messages[e.Kind]; ok {
		b.WriteString(msg)
	} else {
		b.WriteString(string(e.Kind))
	}

	if e.Detail != "" {
		b.WriteString(" - ")
		b.WriteString(e.Detail)
	}

	return b.String()
}

// Is reports whether target is an *Error of the same kind. Unknown errors
// match only when the raw codes agree, or when target carries no code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if e.Kind != t.Kind {
		return false
	}
	if e.Kind == KindUnknown && t.Code != 0 {
		return e.Code == t.Code
	}
	return true
}

// Translate maps a status code to an error. Success maps to nil; every
// other value maps to an *Error, with unrecognized codes kept as KindUnknown.
func Translate(code abi.Status) error {
	if code == abi.StatusSuccess {
		return nil
	}
	kind, ok := kindByStatus[code]
	if !ok {
		kind = KindUnknown
	}
	return &Error{Kind: kind, Code: code}
}

// Check is Translate with the failing foreign function recorded.
func Check(op string, code abi.Status) error {
	if code == abi.StatusSuccess {
		return nil
	}
	err := Translate(code).(*Error)
	err.Op = op
	return err
}

// KindOf returns the kind of the first *Error in err's chain, or "" if there
// is none.
func KindOf(err error) Kind {
	var e *Error
	if As(err, &e) {
		return e.Kind
	}
	return ""
}

// Known reports whether code belongs to the recognized set. Success is known.
func Known(code abi.Status) bool {
	if code == abi.StatusSuccess {
		return true
	}
	_, ok := kindByStatus[code]
	return ok
}

// InvalidValue creates an invalid-value error raised before the engine was
// called.
func InvalidValue(op, detail string) *Error {
	return &Error{
		Op:     op,
		Kind:   KindInvalidValue,
		Detail: detail,
	}
}

// Sentinels for errors.Is, one per kind.
var (
	ErrFailure          = &Error{Kind: KindFailure}
	ErrNoMemory         = &Error{Kind: KindNoMemory}
	ErrParseError       = &Error{Kind: KindParseError}
	ErrInvalidValue     = &Error{Kind: KindInvalidValue}
	ErrExists           = &Error{Kind: KindExists}
	ErrInvalidVertexID  = &Error{Kind: KindInvalidVertexID}
	ErrInvalidEdgeID    = &Error{Kind: KindInvalidEdgeID}
	ErrInvalidMode      = &Error{Kind: KindInvalidMode}
	ErrFileError        = &Error{Kind: KindFileError}
	ErrUnimplemented    = &Error{Kind: KindUnimplemented}
	ErrInterrupted      = &Error{Kind: KindInterrupted}
	ErrDiverged         = &Error{Kind: KindDiverged}
	ErrArpack           = &Error{Kind: KindArpack}
	ErrNegativeCycle    = &Error{Kind: KindNegativeCycle}
	ErrInternal         = &Error{Kind: KindInternal}
	ErrAttributeCombine = &Error{Kind: KindAttributeCombine}
	ErrOverflow         = &Error{Kind: KindOverflow}
	ErrUnderflow        = &Error{Kind: KindUnderflow}
	ErrRandomWalkStuck  = &Error{Kind: KindRandomWalkStuck}
	ErrStop             = &Error{Kind: KindStop}
	ErrRange            = &Error{Kind: KindRange}
	ErrNoSolution       = &Error{Kind: KindNoSolution}
	ErrUnknown          = &Error{Kind: KindUnknown}
)

// PoisonedError is returned by a graph whose last mutation failed, until the
// owner calls Recover. Cause is the failure that poisoned it.
type PoisonedError struct {
	Cause error
}

// ErrPoisoned matches any *PoisonedError under errors.Is.
var ErrPoisoned = &PoisonedError{}

func (e *PoisonedError) Error() string {
	if e.Cause == nil {
		return "graph poisoned by a failed mutation"
	}
	return "graph poisoned by a failed mutation (caused by: " + e.Cause.Error() + ")"
}

// Unwrap returns the underlying error
func (e *PoisonedError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type
func (e *PoisonedError) Is(target error) bool {
	_, ok := target.(*PoisonedError)
	return ok
}

// MissingExportsError is returned when a wasm module lacks shim functions.
type MissingExportsError struct {
	Module  string
	Exports []string
}

func (e *MissingExportsError) Error() string {
	if len(e.Exports) == 0 {
		return "missing exports: none specified"
	}

	var b strings.Builder
	name := e.Module
	if name == "" {
		name = "module"
	}
	fmt.Fprintf(&b, "%s is missing %d shim export(s):\n", name, len(e.Exports))
	for _, fn := range e.Exports {
		b.WriteString("  - ")
		b.WriteString(fn)
		b.WriteByte('\n')
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// Is reports whether target matches this error type
func (e *MissingExportsError) Is(target error) bool {
	_, ok := target.(*MissingExportsError)
	return ok
}
