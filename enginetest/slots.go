package enginetest

import (
	"fmt"

	"github.com/wippyai/igraph-go/abi"
)

// slot is one reserved block of foreign storage.
type slot struct {
	value    any
	kind     abi.Kind
	reserved bool
	live     bool
}

// slots is a handle table with a free list. Address 0 is never handed out.
type slots struct {
	entries  []slot
	freeList []abi.Ptr
}

func newSlots() *slots {
	return &slots{
		entries:  make([]slot, 0, 64),
		freeList: make([]abi.Ptr, 0, 16),
	}
}

func (s *slots) reserve(kind abi.Kind) abi.Ptr {
	e := slot{kind: kind, reserved: true}

	if len(s.freeList) > 0 {
		p := s.freeList[len(s.freeList)-1]
		s.freeList = s.freeList[:len(s.freeList)-1]
		s.entries[p-1] = e
		return p
	}

	s.entries = append(s.entries, e)
	return abi.Ptr(len(s.entries))
}

// get returns the slot behind p, or an error describing why p is not
// reserved storage of the given kind.
func (s *slots) get(p abi.Ptr, kind abi.Kind) (*slot, error) {
	if p == 0 || int(p) > len(s.entries) {
		return nil, fmt.Errorf("%s at invalid address %d", kind, p)
	}
	e := &s.entries[p-1]
	if !e.reserved {
		return nil, fmt.Errorf("%s at %d used after free", kind, p)
	}
	if e.kind != kind {
		return nil, fmt.Errorf("%s at %d used as %s", e.kind, p, kind)
	}
	return e, nil
}

func (s *slots) release(p abi.Ptr) {
	s.entries[p-1] = slot{}
	s.freeList = append(s.freeList, p)
}

func (s *slots) count(pred func(*slot) bool) int {
	n := 0
	for i := range s.entries {
		if pred(&s.entries[i]) {
			n++
		}
	}
	return n
}
