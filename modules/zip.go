package modules

import "github.com/sndgraph/engine"

// Zip is an N-input module that takes N mono sources (each read from
// graph channel 0) and emits them as a single N-channel Frame, the
// inverse operation of Pan1: audio_modules/src/zip.rs used it to recombine
// independently-processed mono lanes into one multi-channel node.
type Zip struct {
	n   int
	out graph.Frame
}

func NewZip(n int) *Zip { return &Zip{n: n, out: make(graph.Frame, n)} }

func (z *Zip) Inputs() int        { return z.n }
func (z *Zip) Output() graph.Frame { return z.out }
func (z *Zip) Sample(in graph.Frame) {
	for i := 0; i < z.n; i++ {
		z.out[i] = in[i]
	}
}
