package modules

import "github.com/sndgraph/engine"

// Feedback is a 3-input comb filter built the way
// audio_modules/src/feedback.rs composed one: a delay line fed not by
// this frame's own output but by the output it emitted the *previous*
// frame. Chunk 0 is the signal, chunk 1 the delay time in seconds, chunk
// 2 the feedback gain. Each frame: read the delay line for d, emit
// x + gain*d, then advance the delay line with the previously emitted
// output (not this frame's), matching feedback.rs:42's
// "delay_input[0] = *output" read before output is overwritten.
type Feedback struct {
	sr      float64
	ring    []graph.Frame
	mask    int
	write   int
	prevOut graph.Frame
	out     graph.Frame
}

func NewFeedback(sampleRate, maxSeconds float64, channels int) *Feedback {
	need := int(sampleRate*maxSeconds) + 2
	cap := 1
	for cap < need {
		cap <<= 1
	}
	ring := make([]graph.Frame, channels)
	for c := range ring {
		ring[c] = make(graph.Frame, cap)
	}
	return &Feedback{
		sr:      sampleRate,
		ring:    ring,
		mask:    cap - 1,
		prevOut: make(graph.Frame, channels),
		out:     make(graph.Frame, channels),
	}
}

func (f *Feedback) Inputs() int        { return 3 }
func (f *Feedback) Output() graph.Frame { return f.out }
func (f *Feedback) Sample(in graph.Frame) {
	C := len(f.out)
	for c := 0; c < C; c++ {
		x := float64(in[slot(0, c, 3)])
		delaySec := float64(in[slot(1, c, 3)])
		gain := float64(in[slot(2, c, 3)])

		buf := f.ring[c]
		n := len(buf)
		pos := float64(f.write) - delaySec*f.sr
		for pos < 0 {
			pos += float64(n)
		}
		i0 := int(pos) & f.mask
		i1 := (i0 + 1) & f.mask
		frac := pos - float64(int(pos))
		y0 := float64(buf[i0])
		y1 := float64(buf[i1])
		delayed := y0 + frac*(y1-y0)

		out := x + gain*delayed
		f.out[c] = graph.Sample(out)

		buf[f.write&f.mask] = f.prevOut[c]
		f.prevOut[c] = graph.Sample(out)
	}
	f.write++
}
