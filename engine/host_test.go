package engine_test

import (
	"context"
	"testing"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/igraph-go/abi"
	"github.com/wippyai/igraph-go/engine"
	"github.com/wippyai/igraph-go/enginetest"
)

// memoryModule is a core module whose only content is one exported page of
// memory: (module (memory (export "memory") 1)).
var memoryModule = []byte{
	0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00,
	0x05, 0x03, 0x01, 0x00, 0x01,
	0x07, 0x0a, 0x01, 0x06, 'm', 'e', 'm', 'o', 'r', 'y', 0x02, 0x00,
}

var (
	i32 = api.ValueTypeI32
	i64 = api.ValueTypeI64
	f64 = api.ValueTypeF64
)

// hostDouble implements the gi_* shim as Go host functions over an
// enginetest.Fake, with out parameters and strings going through a separate
// memory module. It checks the wasm calling convention end to end.
type hostDouble struct {
	fake     *enginetest.Fake
	mem      api.Memory
	next     uint32
	mallocs  int
	releases int
	trap     string
	names    []string
}

type export struct {
	name    string
	params  []api.ValueType
	results []api.ValueType
	fn      func(s []uint64)
}

func argPtr(s []uint64, i int) abi.Ptr { return abi.Ptr(api.DecodeU32(s[i])) }
func argInt(s []uint64, i int) int64 { return int64(s[i]) }
func argBool(s []uint64, i int) bool { return api.DecodeU32(s[i]) != 0 }
func argReal(s []uint64, i int) float64 { return api.DecodeF64(s[i]) }
func argEnum(s []uint64, i int) int32 { return api.DecodeI32(s[i]) }
func argAddr(s []uint64, i int) uint32 { return api.DecodeU32(s[i]) }
func ret(s []uint64, st abi.Status) { s[0] = api.EncodeI32(int32(st)) }
func types(ts ...api.ValueType) []api.ValueType { return ts }

func status(name string, params []api.ValueType, fn func(s []uint64) abi.Status) export {
	return export{name, params, types(i32), func(s []uint64) { ret(s, fn(s)) }}
}

func void(name string, params []api.ValueType, fn func(s []uint64)) export {
	return export{name, params, nil, fn}
}

func (d *hostDouble) malloc(n uint32) uint32 {
	p := d.next
	if p+n > d.mem.Size() {
		return 0
	}
	d.next += (n + 7) &^ 7
	d.mallocs++
	return p
}

func (d *hostDouble) cstring(addr uint32) string {
	var buf []byte
	for {
		c, ok := d.mem.ReadByte(addr)
		if !ok || c == 0 {
			return string(buf)
		}
		buf = append(buf, c)
		addr++
	}
}

func (d *hostDouble) putInt(addr uint32, v int64) { d.mem.WriteUint64Le(addr, uint64(v)) }

func (d *hostDouble) putReal(addr uint32, v float64) { d.mem.WriteFloat64Le(addr, v) }

func (d *hostDouble) putBool(addr uint32, v bool) {
	var x uint32
	if v {
		x = 1
	}
	d.mem.WriteUint32Le(addr, x)
}

func (d *hostDouble) exports() []export {
	f := d.fake
	return []export{
		{"gi_alloc", types(i32), types(i32), func(s []uint64) {
			p, st := f.Alloc(abi.Kind(api.DecodeU32(s[0])))
			if st != abi.StatusSuccess {
				p = 0
			}
			s[0] = api.EncodeU32(uint32(p))
		}},
		void("gi_free", types(i32, i32), func(s []uint64) {
			f.Free(abi.Kind(api.DecodeU32(s[0])), argPtr(s, 1))
		}),
		{"gi_malloc", types(i32), types(i32), func(s []uint64) {
			s[0] = api.EncodeU32(d.malloc(argAddr(s, 0)))
		}},
		void("gi_release", types(i32), func(s []uint64) { d.releases++ }),

		status("gi_vector_init", types(i32, i64), func(s []uint64) abi.Status {
			return f.VectorInit(argPtr(s, 0), argInt(s, 1))
		}),
		void("gi_vector_destroy", types(i32), func(s []uint64) { f.VectorDestroy(argPtr(s, 0)) }),
		{"gi_vector_size", types(i32), types(i64), func(s []uint64) {
			s[0] = api.EncodeI64(f.VectorSize(argPtr(s, 0)))
		}},
		{"gi_vector_get", types(i32, i64), types(f64), func(s []uint64) {
			s[0] = api.EncodeF64(f.VectorGet(argPtr(s, 0), argInt(s, 1)))
		}},
		void("gi_vector_set", types(i32, i64, f64), func(s []uint64) {
			f.VectorSet(argPtr(s, 0), argInt(s, 1), argReal(s, 2))
		}),
		status("gi_vector_push_back", types(i32, f64), func(s []uint64) abi.Status {
			return f.VectorPushBack(argPtr(s, 0), argReal(s, 1))
		}),

		status("gi_vector_int_init", types(i32, i64), func(s []uint64) abi.Status {
			return f.VectorIntInit(argPtr(s, 0), argInt(s, 1))
		}),
		void("gi_vector_int_destroy", types(i32), func(s []uint64) { f.VectorIntDestroy(argPtr(s, 0)) }),
		{"gi_vector_int_size", types(i32), types(i64), func(s []uint64) {
			s[0] = api.EncodeI64(f.VectorIntSize(argPtr(s, 0)))
		}},
		{"gi_vector_int_get", types(i32, i64), types(i64), func(s []uint64) {
			s[0] = api.EncodeI64(f.VectorIntGet(argPtr(s, 0), argInt(s, 1)))
		}},
		void("gi_vector_int_set", types(i32, i64, i64), func(s []uint64) {
			f.VectorIntSet(argPtr(s, 0), argInt(s, 1), argInt(s, 2))
		}),
		status("gi_vector_int_push_back", types(i32, i64), func(s []uint64) abi.Status {
			return f.VectorIntPushBack(argPtr(s, 0), argInt(s, 1))
		}),

		status("gi_matrix_init", types(i32, i64, i64), func(s []uint64) abi.Status {
			return f.MatrixInit(argPtr(s, 0), argInt(s, 1), argInt(s, 2))
		}),
		void("gi_matrix_destroy", types(i32), func(s []uint64) { f.MatrixDestroy(argPtr(s, 0)) }),
		{"gi_matrix_nrow", types(i32), types(i64), func(s []uint64) {
			s[0] = api.EncodeI64(f.MatrixNrow(argPtr(s, 0)))
		}},
		{"gi_matrix_ncol", types(i32), types(i64), func(s []uint64) {
			s[0] = api.EncodeI64(f.MatrixNcol(argPtr(s, 0)))
		}},
		{"gi_matrix_get", types(i32, i64, i64), types(f64), func(s []uint64) {
			s[0] = api.EncodeF64(f.MatrixGet(argPtr(s, 0), argInt(s, 1), argInt(s, 2)))
		}},
		void("gi_matrix_set", types(i32, i64, i64, f64), func(s []uint64) {
			f.MatrixSet(argPtr(s, 0), argInt(s, 1), argInt(s, 2), argReal(s, 3))
		}),

		status("gi_vector_int_list_init", types(i32, i64), func(s []uint64) abi.Status {
			return f.VectorIntListInit(argPtr(s, 0), argInt(s, 1))
		}),
		void("gi_vector_int_list_destroy", types(i32), func(s []uint64) { f.VectorIntListDestroy(argPtr(s, 0)) }),
		{"gi_vector_int_list_size", types(i32), types(i64), func(s []uint64) {
			s[0] = api.EncodeI64(f.VectorIntListSize(argPtr(s, 0)))
		}},
		{"gi_vector_int_list_item_size", types(i32, i64), types(i64), func(s []uint64) {
			s[0] = api.EncodeI64(f.VectorIntListItemSize(argPtr(s, 0), argInt(s, 1)))
		}},
		{"gi_vector_int_list_item_get", types(i32, i64, i64), types(i64), func(s []uint64) {
			s[0] = api.EncodeI64(f.VectorIntListItemGet(argPtr(s, 0), argInt(s, 1), argInt(s, 2)))
		}},
		status("gi_vector_int_list_push_back_copy", types(i32, i32), func(s []uint64) abi.Status {
			return f.VectorIntListPushBackCopy(argPtr(s, 0), argPtr(s, 1))
		}),

		void("gi_destroy", types(i32), func(s []uint64) { f.Destroy(argPtr(s, 0)) }),
		status("gi_copy", types(i32, i32), func(s []uint64) abi.Status {
			return f.Copy(argPtr(s, 0), argPtr(s, 1))
		}),
		status("gi_empty", types(i32, i64, i32), func(s []uint64) abi.Status {
			return f.Empty(argPtr(s, 0), argInt(s, 1), argBool(s, 2))
		}),
		status("gi_create", types(i32, i32, i64, i32), func(s []uint64) abi.Status {
			return f.Create(argPtr(s, 0), argPtr(s, 1), argInt(s, 2), argBool(s, 3))
		}),
		status("gi_famous", types(i32, i32), func(s []uint64) abi.Status {
			name := d.cstring(argAddr(s, 1))
			d.names = append(d.names, name)
			return f.Famous(argPtr(s, 0), name)
		}),
		status("gi_ring", types(i32, i64, i32, i32, i32), func(s []uint64) abi.Status {
			return f.Ring(argPtr(s, 0), argInt(s, 1), argBool(s, 2), argBool(s, 3), argBool(s, 4))
		}),
		status("gi_star", types(i32, i64, i32, i64), func(s []uint64) abi.Status {
			return f.Star(argPtr(s, 0), argInt(s, 1), abi.StarMode(argEnum(s, 2)), argInt(s, 3))
		}),
		status("gi_full", types(i32, i64, i32, i32), func(s []uint64) abi.Status {
			return f.Full(argPtr(s, 0), argInt(s, 1), argBool(s, 2), argBool(s, 3))
		}),
		status("gi_kary_tree", types(i32, i64, i64, i32), func(s []uint64) abi.Status {
			return f.KaryTree(argPtr(s, 0), argInt(s, 1), argInt(s, 2), abi.TreeMode(argEnum(s, 3)))
		}),
		status("gi_erdos_renyi_gnp", types(i32, i64, f64, i32, i32), func(s []uint64) abi.Status {
			return f.ErdosRenyiGNP(argPtr(s, 0), argInt(s, 1), argReal(s, 2), argBool(s, 3), argBool(s, 4))
		}),
		status("gi_erdos_renyi_gnm", types(i32, i64, i64, i32, i32), func(s []uint64) abi.Status {
			return f.ErdosRenyiGNM(argPtr(s, 0), argInt(s, 1), argInt(s, 2), argBool(s, 3), argBool(s, 4))
		}),
		status("gi_barabasi", types(i32, i64, i64, i32), func(s []uint64) abi.Status {
			return f.Barabasi(argPtr(s, 0), argInt(s, 1), argInt(s, 2), argBool(s, 3))
		}),

		{"gi_vcount", types(i32), types(i64), func(s []uint64) {
			s[0] = api.EncodeI64(f.VCount(argPtr(s, 0)))
		}},
		{"gi_ecount", types(i32), types(i64), func(s []uint64) {
			s[0] = api.EncodeI64(f.ECount(argPtr(s, 0)))
		}},
		{"gi_is_directed", types(i32), types(i32), func(s []uint64) {
			var x uint32
			if f.IsDirected(argPtr(s, 0)) {
				x = 1
			}
			s[0] = api.EncodeU32(x)
		}},
		status("gi_neighbors", types(i32, i32, i64, i32), func(s []uint64) abi.Status {
			return f.Neighbors(argPtr(s, 0), argPtr(s, 1), argInt(s, 2), abi.NeighborMode(argEnum(s, 3)))
		}),
		status("gi_degree", types(i32, i32, i32, i32), func(s []uint64) abi.Status {
			return f.Degree(argPtr(s, 0), argPtr(s, 1), abi.NeighborMode(argEnum(s, 2)), abi.Loops(argEnum(s, 3)))
		}),
		status("gi_edge", types(i32, i64, i32, i32), func(s []uint64) abi.Status {
			from, to, st := f.Edge(argPtr(s, 0), argInt(s, 1))
			d.putInt(argAddr(s, 2), from)
			d.putInt(argAddr(s, 3), to)
			return st
		}),
		status("gi_are_adjacent", types(i32, i64, i64, i32), func(s []uint64) abi.Status {
			adj, st := f.AreAdjacent(argPtr(s, 0), argInt(s, 1), argInt(s, 2))
			d.putBool(argAddr(s, 3), adj)
			return st
		}),
		status("gi_get_edgelist", types(i32, i32), func(s []uint64) abi.Status {
			return f.EdgeList(argPtr(s, 0), argPtr(s, 1))
		}),

		status("gi_add_vertices", types(i32, i64), func(s []uint64) abi.Status {
			return f.AddVertices(argPtr(s, 0), argInt(s, 1))
		}),
		status("gi_add_edges", types(i32, i32), func(s []uint64) abi.Status {
			return f.AddEdges(argPtr(s, 0), argPtr(s, 1))
		}),
		status("gi_delete_vertices", types(i32, i32), func(s []uint64) abi.Status {
			return f.DeleteVertices(argPtr(s, 0), argPtr(s, 1))
		}),
		status("gi_delete_edges", types(i32, i32), func(s []uint64) abi.Status {
			return f.DeleteEdges(argPtr(s, 0), argPtr(s, 1))
		}),

		status("gi_simplify", types(i32, i32, i32), func(s []uint64) abi.Status {
			return f.Simplify(argPtr(s, 0), argBool(s, 1), argBool(s, 2))
		}),
		status("gi_to_directed", types(i32, i32), func(s []uint64) abi.Status {
			return f.ToDirected(argPtr(s, 0), abi.ToDirectedMode(argEnum(s, 1)))
		}),
		status("gi_to_undirected", types(i32, i32), func(s []uint64) abi.Status {
			return f.ToUndirected(argPtr(s, 0), abi.ToUndirectedMode(argEnum(s, 1)))
		}),
		status("gi_induced_subgraph", types(i32, i32, i32), func(s []uint64) abi.Status {
			return f.InducedSubgraph(argPtr(s, 0), argPtr(s, 1), argPtr(s, 2))
		}),
		status("gi_union", types(i32, i32, i32), func(s []uint64) abi.Status {
			return f.Union(argPtr(s, 0), argPtr(s, 1), argPtr(s, 2))
		}),

		status("gi_distances", types(i32, i32, i32), func(s []uint64) abi.Status {
			return f.Distances(argPtr(s, 0), argPtr(s, 1), abi.NeighborMode(argEnum(s, 2)))
		}),
		status("gi_diameter", types(i32, i32, i32), func(s []uint64) abi.Status {
			diam, st := f.Diameter(argPtr(s, 0), argBool(s, 1))
			d.putReal(argAddr(s, 2), diam)
			return st
		}),
		status("gi_betweenness", types(i32, i32, i32), func(s []uint64) abi.Status {
			return f.Betweenness(argPtr(s, 0), argPtr(s, 1), argBool(s, 2))
		}),
		status("gi_closeness", types(i32, i32, i32), func(s []uint64) abi.Status {
			return f.Closeness(argPtr(s, 0), argPtr(s, 1), abi.NeighborMode(argEnum(s, 2)))
		}),
		status("gi_pagerank", types(i32, i32, f64, i32), func(s []uint64) abi.Status {
			ev, st := f.PageRank(argPtr(s, 0), argPtr(s, 1), argReal(s, 2))
			d.putReal(argAddr(s, 3), ev)
			return st
		}),

		status("gi_is_connected", types(i32, i32, i32), func(s []uint64) abi.Status {
			ok, st := f.IsConnected(argPtr(s, 0), abi.Connectedness(argEnum(s, 1)))
			d.putBool(argAddr(s, 2), ok)
			return st
		}),
		status("gi_connected_components", types(i32, i32, i32, i32, i32), func(s []uint64) abi.Status {
			n, st := f.ConnectedComponents(argPtr(s, 0), argPtr(s, 1), argPtr(s, 2), abi.Connectedness(argEnum(s, 3)))
			d.putInt(argAddr(s, 4), n)
			return st
		}),

		status("gi_community_leiden", types(i32, i32, f64, f64, i64, i32, i32), func(s []uint64) abi.Status {
			clusters, quality, st := f.CommunityLeiden(argPtr(s, 0), argPtr(s, 1), argReal(s, 2), argReal(s, 3), argInt(s, 4))
			d.putInt(argAddr(s, 5), clusters)
			d.putReal(argAddr(s, 6), quality)
			return st
		}),
		status("gi_community_label_propagation", types(i32, i32), func(s []uint64) abi.Status {
			return f.CommunityLabelPropagation(argPtr(s, 0), argPtr(s, 1))
		}),
		status("gi_community_fastgreedy", types(i32, i32, i32), func(s []uint64) abi.Status {
			return f.CommunityFastGreedy(argPtr(s, 0), argPtr(s, 1), argPtr(s, 2))
		}),

		status("gi_count_subisomorphisms_vf2", types(i32, i32, i32), func(s []uint64) abi.Status {
			n, st := f.CountSubisomorphismsVF2(argPtr(s, 0), argPtr(s, 1))
			d.putInt(argAddr(s, 2), n)
			return st
		}),
		status("gi_get_subisomorphisms_vf2", types(i32, i32, i32), func(s []uint64) abi.Status {
			return f.SubisomorphismsVF2(argPtr(s, 0), argPtr(s, 1), argPtr(s, 2))
		}),
	}
}

// instantiate builds the double as a host module and returns a guest module
// named "igraph" that imports each of its functions and exports them again.
// wazero does not resolve exports of host modules, so the engine is always
// given the guest. Exports listed in skip are left out.
func (d *hostDouble) instantiate(ctx context.Context, r wazero.Runtime, skip ...string) (api.Module, error) {
	omit := make(map[string]bool, len(skip))
	for _, name := range skip {
		omit[name] = true
	}
	var exports []export
	for _, ex := range d.exports() {
		if !omit[ex.name] {
			exports = append(exports, ex)
		}
	}

	b := r.NewHostModuleBuilder(hostModuleName)
	for _, ex := range exports {
		name, fn := ex.name, ex.fn
		b.NewFunctionBuilder().
			WithGoFunction(api.GoFunc(func(_ context.Context, stack []uint64) {
				if d.trap == name {
					panic("injected trap in " + name)
				}
				fn(stack)
			}), ex.params, ex.results).
			Export(name)
	}
	if _, err := b.Instantiate(ctx); err != nil {
		return nil, err
	}

	return r.InstantiateWithConfig(ctx, reexportModule(hostModuleName, exports),
		wazero.NewModuleConfig().WithName("igraph"))
}

const hostModuleName = "gi_host"

// reexportModule encodes a core module that imports every function in
// exports from module from and exports it under the same name.
func reexportModule(from string, exports []export) []byte {
	var typeSec, importSec, exportSec []byte
	typeSec = uleb(typeSec, uint32(len(exports)))
	importSec = uleb(importSec, uint32(len(exports)))
	exportSec = uleb(exportSec, uint32(len(exports)))
	for i, ex := range exports {
		typeSec = append(typeSec, 0x60)
		typeSec = valueTypes(typeSec, ex.params)
		typeSec = valueTypes(typeSec, ex.results)

		importSec = wasmName(importSec, from)
		importSec = wasmName(importSec, ex.name)
		importSec = append(importSec, 0x00) // func
		importSec = uleb(importSec, uint32(i))

		exportSec = wasmName(exportSec, ex.name)
		exportSec = append(exportSec, 0x00) // func
		exportSec = uleb(exportSec, uint32(i))
	}

	out := []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}
	out = section(out, 1, typeSec)
	out = section(out, 2, importSec)
	out = section(out, 7, exportSec)
	return out
}

func section(out []byte, id byte, body []byte) []byte {
	out = append(out, id)
	out = uleb(out, uint32(len(body)))
	return append(out, body...)
}

func valueTypes(out []byte, ts []api.ValueType) []byte {
	out = uleb(out, uint32(len(ts)))
	for _, t := range ts {
		out = append(out, t)
	}
	return out
}

func wasmName(out []byte, s string) []byte {
	out = uleb(out, uint32(len(s)))
	return append(out, s...)
}

func uleb(out []byte, v uint32) []byte {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v == 0 {
			return append(out, b)
		}
		out = append(out, b|0x80)
	}
}

type fixture struct {
	ctx     context.Context
	runtime wazero.Runtime
	double  *hostDouble
	host    api.Module
	memory  api.Module
	engine  *engine.WazeroEngine
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	r := wazero.NewRuntime(ctx)
	t.Cleanup(func() { r.Close(ctx) })

	memMod, err := r.InstantiateWithConfig(ctx, memoryModule, wazero.NewModuleConfig().WithName("memory"))
	if err != nil {
		t.Fatalf("instantiate memory module: %v", err)
	}

	d := &hostDouble{fake: enginetest.New(), mem: memMod.Memory(), next: 1024}
	host, err := d.instantiate(ctx, r)
	if err != nil {
		t.Fatalf("instantiate host double: %v", err)
	}

	eng, err := engine.FromModule(ctx, host, memMod.Memory())
	if err != nil {
		t.Fatalf("FromModule: %v", err)
	}
	t.Cleanup(func() { eng.Close(ctx) })

	return &fixture{ctx: ctx, runtime: r, double: d, host: host, memory: memMod, engine: eng}
}
