package graph

import "github.com/google/uuid"

// Handle is a stable, opaque reference to a node in a Graph. Handles survive
// every structural edit except Clear; callers never dereference them
// directly (§3 "Ownership").
type Handle int

// Graph is a node-stable directed graph of Modules with unlabeled,
// ordered-per-sink edges. The zero value is not ready for use; call New to
// construct one.
//
// Graph itself satisfies Module so a whole graph can be embedded as a
// single node inside another, larger graph.
type Graph struct {
	id uuid.UUID

	channels int
	extWidth int // width of the external input frame (C + parameter count)

	modules []Module
	// edges[h] holds the ordered list of h's incoming sources, in the
	// order last installed by Connect/SetSources/Chain. The sampler packs
	// inputs by iterating this slice forward; no reversal, no compensation
	// (§4.3 "Source order semantics", §9 open question).
	edges [][]Handle
	// inputBufs[h] is pre-sized to modules[h].Inputs()*channels at AddNode
	// time and never reallocated afterwards: Inputs() is fixed at
	// construction (§4.1), so the buffer never needs to grow.
	inputBufs []Frame

	// order is the cached topological linearization, refreshed after
	// every structural edit (§4.4). A cyclic graph has order == nil.
	order []Handle

	output Frame
}

// New creates an empty Graph for the given channel count and external
// input width (§6 "Engine API"). width must be >= channels whenever
// Parameter modules will be used (width == channels + parameter count);
// passing channels is sufficient for graphs with no Parameter modules.
func New(channels, width int) *Graph {
	if width < channels {
		width = channels
	}
	return &Graph{
		id:       uuid.New(),
		channels: channels,
		extWidth: width,
		output:   make(Frame, channels),
	}
}

// ID returns the graph's instance identifier, used only for log
// correlation when a graph is replaced wholesale at runtime (§5).
func (g *Graph) ID() uuid.UUID { return g.id }

// Channels returns the graph's fixed channel count.
func (g *Graph) Channels() int { return g.channels }

// AddNode inserts module into the graph and returns its stable handle. It
// does not refresh the topological order (§4.3): a freshly added node has
// no edges yet, so any existing order remains valid.
func (g *Graph) AddNode(m Module) Handle {
	h := Handle(len(g.modules))
	g.modules = append(g.modules, m)
	g.edges = append(g.edges, nil)
	g.inputBufs = append(g.inputBufs, make(Frame, m.Inputs()*g.channels))
	return h
}

// Node returns the module installed at h.
func (g *Graph) Node(h Handle) Module { return g.modules[h] }

// Connect clears b's incoming edges and installs a as its sole source,
// then refreshes the topological order.
func (g *Graph) Connect(a, b Handle) {
	g.edges[b] = append(g.edges[b][:0], a)
	g.updateOrder()
}

// SetSources clears sink's incoming edges and installs sources as its
// ordered source list. The sampler packs sources[i]'s output into input
// chunk i on every subsequent Sample call, in exactly this order (§4.3,
// §8 "After set_sources... sampler packs sources in exactly that order").
func (g *Graph) SetSources(sink Handle, sources []Handle) {
	s := g.edges[sink][:0]
	g.edges[sink] = append(s, sources...)
	g.updateOrder()
}

// SetSourcesReversed is SetSources for a caller holding sources in reverse
// order already. It exists for the same reason the original audio_graph
// crate kept a set_sources_rev escape hatch: a convenience for callers that
// build their source list back-to-front, not something the stack compiler
// or text front-end use internally.
func (g *Graph) SetSourcesReversed(sink Handle, sources []Handle) {
	rev := make([]Handle, len(sources))
	for i, h := range sources {
		rev[len(sources)-1-i] = h
	}
	g.SetSources(sink, rev)
}

// Chain installs nodes[i] -> nodes[i+1] for every adjacent pair, clearing
// each sink's prior sources, and refreshes the topological order once
// after all edges are installed.
func (g *Graph) Chain(nodes []Handle) {
	for i := 0; i+1 < len(nodes); i++ {
		a, b := nodes[i], nodes[i+1]
		g.edges[b] = append(g.edges[b][:0], a)
	}
	g.updateOrder()
}

// Clear removes every node and edge, restoring the graph to the state
// New produced.
func (g *Graph) Clear() {
	g.modules = g.modules[:0]
	g.edges = g.edges[:0]
	g.inputBufs = g.inputBufs[:0]
	g.order = nil
	for i := range g.output {
		g.output[i] = 0
	}
}

// Terminal returns the handle the sampler treats as the graph's output:
// the last node in topological order. The second return is false for an
// empty or cyclic graph.
func (g *Graph) Terminal() (Handle, bool) {
	if len(g.order) == 0 {
		return 0, false
	}
	return g.order[len(g.order)-1], true
}
