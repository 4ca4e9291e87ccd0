package graph

// Inputs implements Module so a Graph can be nested inside another Graph as
// a single composite node, the way the original audio_graph crate lets an
// AudioGraph stand in for any other Module.
func (g *Graph) Inputs() int { return g.extWidth }

// Output implements Module, returning the Frame last written by Sample.
func (g *Graph) Output() Frame { return g.output }

// Sample advances the entire graph by one audio frame (§4.5). It packs
// every non-source node's input buffer according to the channel-major,
// input-minor layout of §4.2, invokes Sample on each module in cached
// topological order, and copies the terminal node's output into the
// graph's own output frame. If the cached order is empty (no nodes, or a
// cycle), Sample is a no-op and the output frame is left untouched (§4.4,
// §7).
//
// Sample performs no heap allocation: every buffer it touches was sized at
// AddNode or New time.
func (g *Graph) Sample(external Frame) {
	C := g.channels
	for _, h := range g.order {
		m := g.modules[h]
		I := m.Inputs()
		if I == 0 {
			m.Sample(external)
			continue
		}
		buf := g.inputBufs[h]
		srcs := g.edges[h]
		for i := 0; i < I; i++ {
			var out Frame
			if i < len(srcs) {
				out = g.modules[srcs[i]].Output()
			}
			for c := 0; c < C; c++ {
				var v Sample
				if c < len(out) {
					v = out[c]
				}
				buf[i+c*I] = v
			}
		}
		m.Sample(buf)
	}
	if term, ok := g.Terminal(); ok {
		out := g.modules[term].Output()
		n := len(out)
		if n > len(g.output) {
			n = len(g.output)
		}
		copy(g.output, out[:n])
	}
}
