//go:build igraphnative && cgo

package main

import (
	"github.com/wippyai/igraph-go/abi"
	"github.com/wippyai/igraph-go/native"
)

func init() {
	nativeBackend = func() abi.Engine { return native.New() }
}
