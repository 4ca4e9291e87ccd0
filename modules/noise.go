package modules

import (
	"math/rand"

	"github.com/sndgraph/engine"
)

// WhiteNoise is a zero-input module emitting an independent uniform random
// sample in [-1, 1) per channel per frame. Grounded on
// audio_modules/src/noise.rs.
type WhiteNoise struct {
	rng *rand.Rand
	out graph.Frame
}

// NewWhiteNoise builds a WhiteNoise source seeded from seed, so graphs
// built identically twice produce identical noise (useful for tests).
func NewWhiteNoise(seed int64, channels int) *WhiteNoise {
	return &WhiteNoise{rng: rand.New(rand.NewSource(seed)), out: make(graph.Frame, channels)}
}

func (n *WhiteNoise) Inputs() int        { return 0 }
func (n *WhiteNoise) Output() graph.Frame { return n.out }
func (n *WhiteNoise) Sample(_ graph.Frame) {
	for c := range n.out {
		n.out[c] = graph.Sample(n.rng.Float64()*2 - 1)
	}
}
