package engine

import (
	"fmt"

	"github.com/tetratelabs/wazero/api"
)

// memory adapts the guest's linear memory to the shim's out parameters and
// C strings.
type memory struct {
	mem api.Memory
}

func (m *memory) write(offset uint32, data []byte) error {
	if !m.mem.Write(offset, data) {
		return fmt.Errorf("memory write out of bounds: offset=%d, length=%d", offset, len(data))
	}
	return nil
}

// writeCString writes s followed by a NUL byte.
func (m *memory) writeCString(offset uint32, s string) error {
	buf := make([]byte, len(s)+1)
	copy(buf, s)
	return m.write(offset, buf)
}

func (m *memory) readU32(offset uint32) (uint32, error) {
	v, ok := m.mem.ReadUint32Le(offset)
	if !ok {
		return 0, fmt.Errorf("memory read out of bounds: offset=%d", offset)
	}
	return v, nil
}

func (m *memory) readU64(offset uint32) (uint64, error) {
	v, ok := m.mem.ReadUint64Le(offset)
	if !ok {
		return 0, fmt.Errorf("memory read out of bounds: offset=%d", offset)
	}
	return v, nil
}

func (m *memory) readF64(offset uint32) (float64, error) {
	v, ok := m.mem.ReadFloat64Le(offset)
	if !ok {
		return 0, fmt.Errorf("memory read out of bounds: offset=%d", offset)
	}
	return v, nil
}

func (m *memory) size() uint32 {
	if m.mem == nil {
		return 0
	}
	return m.mem.Size()
}
