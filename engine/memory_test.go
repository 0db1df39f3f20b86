package engine

import (
	"context"
	"math"
	"testing"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/igraph-go/abi"
)

var onePage = []byte{
	0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00,
	0x05, 0x03, 0x01, 0x00, 0x01,
	0x07, 0x0a, 0x01, 0x06, 'm', 'e', 'm', 'o', 'r', 'y', 0x02, 0x00,
}

func newTestMemory(t *testing.T) *memory {
	t.Helper()
	ctx := context.Background()
	r := wazero.NewRuntime(ctx)
	t.Cleanup(func() { r.Close(ctx) })

	mod, err := r.Instantiate(ctx, onePage)
	if err != nil {
		t.Fatalf("instantiate: %v", err)
	}
	return &memory{mem: mod.Memory()}
}

func TestMemory_ReadWrite(t *testing.T) {
	m := newTestMemory(t)

	if m.size() != 65536 {
		t.Errorf("size = %d, want one page", m.size())
	}

	if err := m.writeCString(100, "Zachary"); err != nil {
		t.Fatal(err)
	}
	got, _ := m.mem.Read(100, 8)
	if string(got) != "Zachary\x00" {
		t.Errorf("cstring bytes = %q", got)
	}

	m.mem.WriteUint64Le(200, uint64(math.MaxUint64-1))
	if v, err := m.readU64(200); err != nil || v != math.MaxUint64-1 {
		t.Errorf("readU64 = %d, %v", v, err)
	}
	m.mem.WriteFloat64Le(208, -1.25)
	if v, err := m.readF64(208); err != nil || v != -1.25 {
		t.Errorf("readF64 = %v, %v", v, err)
	}
	m.mem.WriteUint32Le(216, 1)
	if v, err := m.readU32(216); err != nil || v != 1 {
		t.Errorf("readU32 = %d, %v", v, err)
	}
}

func TestMemory_OutOfBounds(t *testing.T) {
	m := newTestMemory(t)
	end := m.size()

	tests := []struct {
		name string
		fn   func() error
	}{
		{"write", func() error { return m.write(end-2, []byte{1, 2, 3}) }},
		{"cstring", func() error { return m.writeCString(end-3, "abc") }},
		{"u32", func() error { _, err := m.readU32(end - 2); return err }},
		{"u64", func() error { _, err := m.readU64(end - 4); return err }},
		{"f64", func() error { _, err := m.readF64(end); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.fn(); err == nil {
				t.Error("expected out of bounds error")
			}
		})
	}

	var empty memory
	if empty.size() != 0 {
		t.Error("nil memory should report size 0")
	}
}

func TestEncoding(t *testing.T) {
	if got := ptr(abi.Ptr(0xdeadbeef)); got != 0xdeadbeef {
		t.Errorf("ptr = %#x", got)
	}
	if got := i64(-1); got != math.MaxUint64 {
		t.Errorf("i64(-1) = %#x", got)
	}
	if got := api.DecodeF64(f64(2.5)); got != 2.5 {
		t.Errorf("f64 round trip = %v", got)
	}
	if flag(true) != 1 || flag(false) != 0 {
		t.Error("flag encoding")
	}
	if got := api.DecodeI32(enum(abi.NeighborAll)); got != int32(abi.NeighborAll) {
		t.Errorf("enum = %d", got)
	}
	if got := kind(abi.KindMatrix); got != uint64(abi.KindMatrix) {
		t.Errorf("kind = %d", got)
	}
}
