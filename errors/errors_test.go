package errors

import (
	"fmt"
	"strings"
	"testing"

	"github.com/wippyai/igraph-go/abi"
)

func TestTranslate_Success(t *testing.T) {
	if err := Translate(abi.StatusSuccess); err != nil {
		t.Fatalf("Translate(success) = %v, want nil", err)
	}
	if err := Check("igraph_empty", abi.StatusSuccess); err != nil {
		t.Fatalf("Check(success) = %v, want nil", err)
	}
}

func TestTranslate_KnownCodes(t *testing.T) {
	tests := []struct {
		code     abi.Status
		kind     Kind
		sentinel *Error
	}{
		{abi.StatusFailure, KindFailure, ErrFailure},
		{abi.StatusNoMemory, KindNoMemory, ErrNoMemory},
		{abi.StatusParseError, KindParseError, ErrParseError},
		{abi.StatusInvalidValue, KindInvalidValue, ErrInvalidValue},
		{abi.StatusExists, KindExists, ErrExists},
		{abi.StatusInvalidVertexID, KindInvalidVertexID, ErrInvalidVertexID},
		{abi.StatusInvalidEdgeID, KindInvalidEdgeID, ErrInvalidEdgeID},
		{abi.StatusInvalidMode, KindInvalidMode, ErrInvalidMode},
		{abi.StatusFileError, KindFileError, ErrFileError},
		{abi.StatusUnimplemented, KindUnimplemented, ErrUnimplemented},
		{abi.StatusInterrupted, KindInterrupted, ErrInterrupted},
		{abi.StatusDiverged, KindDiverged, ErrDiverged},
		{abi.StatusArpack, KindArpack, ErrArpack},
		{abi.StatusNegativeCycle, KindNegativeCycle, ErrNegativeCycle},
		{abi.StatusInternal, KindInternal, ErrInternal},
		{abi.StatusAttributeCombine, KindAttributeCombine, ErrAttributeCombine},
		{abi.StatusOverflow, KindOverflow, ErrOverflow},
		{abi.StatusUnderflow, KindUnderflow, ErrUnderflow},
		{abi.StatusRandomWalkStuck, KindRandomWalkStuck, ErrRandomWalkStuck},
		{abi.StatusStop, KindStop, ErrStop},
		{abi.StatusRange, KindRange, ErrRange},
		{abi.StatusNoSolution, KindNoSolution, ErrNoSolution},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			err := Translate(tt.code)
			if err == nil {
				t.Fatal("expected error")
			}
			e, ok := err.(*Error)
			if !ok {
				t.Fatalf("Translate returned %T, want *Error", err)
			}
			if e.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", e.Kind, tt.kind)
			}
			if e.Code != tt.code {
				t.Errorf("Code = %d, want %d", e.Code, tt.code)
			}
			if !Is(err, tt.sentinel) {
				t.Errorf("errors.Is(%v, sentinel) = false", err)
			}
			if Is(err, ErrUnknown) {
				t.Error("known code should not match ErrUnknown")
			}
			if !Known(tt.code) {
				t.Errorf("Known(%d) = false", tt.code)
			}
		})
	}

	if len(kindByStatus) != len(tests) {
		t.Errorf("table covers %d codes, translator knows %d", len(tests), len(kindByStatus))
	}
}

func TestTranslate_UnknownCodes(t *testing.T) {
	for _, code := range []abi.Status{6, 11, 16, 36, 39, 53, 63, 999, -1} {
		t.Run(fmt.Sprint(code), func(t *testing.T) {
			err := Translate(code)
			e, ok := err.(*Error)
			if !ok {
				t.Fatalf("Translate returned %T, want *Error", err)
			}
			if e.Kind != KindUnknown {
				t.Errorf("Kind = %v, want unknown", e.Kind)
			}
			if e.Code != code {
				t.Errorf("Code = %d, want %d", e.Code, code)
			}
			if !Is(err, ErrUnknown) {
				t.Error("should match ErrUnknown")
			}
			if !Is(err, &Error{Kind: KindUnknown, Code: code}) {
				t.Error("should match unknown error with the same code")
			}
			if Is(err, &Error{Kind: KindUnknown, Code: code + 1000}) {
				t.Error("should not match unknown error with another code")
			}
			if !strings.Contains(err.Error(), fmt.Sprint(int32(code))) {
				t.Errorf("message %q does not carry the raw code", err.Error())
			}
			if Known(code) {
				t.Errorf("Known(%d) = true", code)
			}
		})
	}
}

func TestCheck_RecordsOp(t *testing.T) {
	err := Check("igraph_vector_int_push_back", abi.StatusNoMemory)
	var e *Error
	if !As(err, &e) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if e.Op != "igraph_vector_int_push_back" {
		t.Errorf("Op = %q", e.Op)
	}
	msg := err.Error()
	for _, s := range []string{"igraph_vector_int_push_back", "out of memory"} {
		if !strings.Contains(msg, s) {
			t.Errorf("message %q does not contain %q", msg, s)
		}
	}
}

func TestTranslate_Independent(t *testing.T) {
	a := Translate(abi.StatusInvalidValue).(*Error)
	b := Translate(abi.StatusInvalidValue).(*Error)
	if a == b {
		t.Fatal("Translate must not hand out shared values")
	}
	a.Op = "mutated"
	if b.Op != "" {
		t.Error("mutating one result leaked into another")
	}
}

func TestKindOf(t *testing.T) {
	if k := KindOf(nil); k != "" {
		t.Errorf("KindOf(nil) = %q", k)
	}
	wrapped := fmt.Errorf("outer: %w", Check("igraph_edge", abi.StatusInvalidEdgeID))
	if k := KindOf(wrapped); k != KindInvalidEdgeID {
		t.Errorf("KindOf(wrapped) = %q", k)
	}
	if k := KindOf(New("plain")); k != "" {
		t.Errorf("KindOf(plain) = %q", k)
	}
}

func TestInvalidValue(t *testing.T) {
	err := InvalidValue("igraph_famous", "name contains a NUL byte")
	if !Is(err, ErrInvalidValue) {
		t.Error("should match ErrInvalidValue")
	}
	if err.Code != 0 {
		t.Errorf("Code = %d, want 0 for a local error", err.Code)
	}
	if !strings.Contains(err.Error(), "NUL") {
		t.Errorf("message %q lost the detail", err.Error())
	}
}

func TestPoisonedError(t *testing.T) {
	cause := Check("igraph_delete_edges", abi.StatusInvalidEdgeID)
	err := &PoisonedError{Cause: cause}

	if !Is(err, ErrPoisoned) {
		t.Error("should match ErrPoisoned")
	}
	if !Is(err, ErrInvalidEdgeID) {
		t.Error("should unwrap to the cause")
	}
	if !strings.Contains(err.Error(), "igraph_delete_edges") {
		t.Errorf("message %q lost the cause", err.Error())
	}
	if ErrPoisoned.Error() == "" {
		t.Error("sentinel message should not be empty")
	}
}

func TestMissingExportsError(t *testing.T) {
	t.Run("listing", func(t *testing.T) {
		err := &MissingExportsError{Module: "igraph.wasm", Exports: []string{"gi_empty", "gi_union"}}
		msg := err.Error()
		for _, s := range []string{"igraph.wasm", "2", "gi_empty", "gi_union"} {
			if !strings.Contains(msg, s) {
				t.Errorf("message %q does not contain %q", msg, s)
			}
		}
	})

	t.Run("empty", func(t *testing.T) {
		err := &MissingExportsError{}
		if !strings.Contains(err.Error(), "none specified") {
			t.Errorf("unexpected message: %s", err.Error())
		}
	})

	t.Run("errors.Is", func(t *testing.T) {
		err := fmt.Errorf("load: %w", &MissingExportsError{Exports: []string{"gi_vcount"}})
		if !Is(err, &MissingExportsError{}) {
			t.Error("errors.Is should match MissingExportsError")
		}
	})
}
