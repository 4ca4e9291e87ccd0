package modules

import "github.com/sndgraph/engine"

// SampleAndHold is a 2-input crossfade: chunk 0 is t, chunk 1 is x. Every
// frame it moves its held output toward x by t: y <- y*(1-t) + x*t. t=1
// outputs x outright; t=0 holds the previous output; fractional t
// smooth-crossfades between them. Grounded on
// audio_modules/src/sample_and_hold.rs:27-33.
type SampleAndHold struct {
	out graph.Frame
}

func NewSampleAndHold(channels int) *SampleAndHold {
	return &SampleAndHold{out: make(graph.Frame, channels)}
}

func (s *SampleAndHold) Inputs() int        { return 2 }
func (s *SampleAndHold) Output() graph.Frame { return s.out }
func (s *SampleAndHold) Sample(in graph.Frame) {
	C := len(s.out)
	for c := 0; c < C; c++ {
		t := float64(in[slot(0, c, 2)])
		x := float64(in[slot(1, c, 2)])
		y := float64(s.out[c])
		s.out[c] = graph.Sample(y*(1-t) + x*t)
	}
}
