package engine

import (
	"context"
	"fmt"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
)

const wasiModuleName = "wasi_snapshot_preview1"

// instantiateWASI provides the preview1 imports a wasm32-wasi build of
// igraph links against. A runtime that already carries them is left as is.
func instantiateWASI(ctx context.Context, r wazero.Runtime) error {
	if r.Module(wasiModuleName) != nil {
		return nil
	}
	if _, err := wasi_snapshot_preview1.Instantiate(ctx, r); err != nil {
		if r.Module(wasiModuleName) == nil {
			return fmt.Errorf("instantiate WASI: %w", err)
		}
	}
	return nil
}
