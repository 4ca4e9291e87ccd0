package modules

import (
	"math"

	"github.com/sndgraph/engine"
)

// LPF is a 2-input one-pole low-pass filter: input chunk 0 is the signal,
// chunk 1 is the cutoff frequency in Hz. Grounded on
// audio_modules/src/filters.rs's Lpf.
type LPF struct {
	sr    float64
	state graph.Frame
	out   graph.Frame
}

func NewLPF(sampleRate float64, channels int) *LPF {
	return &LPF{sr: sampleRate, state: make(graph.Frame, channels), out: make(graph.Frame, channels)}
}

func (f *LPF) Inputs() int        { return 2 }
func (f *LPF) Output() graph.Frame { return f.out }
func (f *LPF) Sample(in graph.Frame) {
	C := len(f.out)
	for c := 0; c < C; c++ {
		x := float64(in[slot(0, c, 2)])
		cutoff := float64(in[slot(1, c, 2)])
		a := onePoleCoeff(cutoff, f.sr)
		y := float64(f.state[c]) + a*(x-float64(f.state[c]))
		f.state[c] = graph.Sample(y)
		f.out[c] = graph.Sample(y)
	}
}

// HPF is a 2-input one-pole high-pass filter, the complement of LPF:
// chunk 0 signal, chunk 1 cutoff. Grounded on audio_modules/src/filters.rs's
// Hpf, which computed the signal minus its low-pass component.
type HPF struct {
	sr    float64
	state graph.Frame
	out   graph.Frame
}

func NewHPF(sampleRate float64, channels int) *HPF {
	return &HPF{sr: sampleRate, state: make(graph.Frame, channels), out: make(graph.Frame, channels)}
}

func (f *HPF) Inputs() int        { return 2 }
func (f *HPF) Output() graph.Frame { return f.out }
func (f *HPF) Sample(in graph.Frame) {
	C := len(f.out)
	for c := 0; c < C; c++ {
		x := float64(in[slot(0, c, 2)])
		cutoff := float64(in[slot(1, c, 2)])
		a := onePoleCoeff(cutoff, f.sr)
		lp := float64(f.state[c]) + a*(x-float64(f.state[c]))
		f.state[c] = graph.Sample(lp)
		f.out[c] = graph.Sample(x - lp)
	}
}

func onePoleCoeff(cutoff, sr float64) float64 {
	w := 2 * math.Pi * cutoff / sr
	return w / (w + 1)
}

// BiQuadKind selects which Audio-EQ-Cookbook coefficient formula BiQuad
// uses (§6's two required variants).
type BiQuadKind int

const (
	BiQuadLowpass BiQuadKind = iota
	BiQuadHighpass
)

// BiQuad is a 3-input second-order IIR filter: chunk 0 is the signal,
// chunk 1 the center frequency in Hz, chunk 2 the Q. Coefficients are
// recomputed every frame from the Audio EQ Cookbook formulas, matching
// audio_modules/src/biquad.rs, which likewise recomputed on every sample
// rather than caching by (freq, Q).
type BiQuad struct {
	kind   BiQuadKind
	sr     float64
	x1, x2 graph.Frame
	y1, y2 graph.Frame
	out    graph.Frame
}

func NewBiQuad(kind BiQuadKind, sampleRate float64, channels int) *BiQuad {
	return &BiQuad{
		kind: kind,
		sr:   sampleRate,
		x1:   make(graph.Frame, channels),
		x2:   make(graph.Frame, channels),
		y1:   make(graph.Frame, channels),
		y2:   make(graph.Frame, channels),
		out:  make(graph.Frame, channels),
	}
}

func (b *BiQuad) Inputs() int        { return 3 }
func (b *BiQuad) Output() graph.Frame { return b.out }
func (b *BiQuad) Sample(in graph.Frame) {
	C := len(b.out)
	for c := 0; c < C; c++ {
		x0 := float64(in[slot(0, c, 3)])
		freq := float64(in[slot(1, c, 3)])
		q := float64(in[slot(2, c, 3)])

		w0 := 2 * math.Pi * freq / b.sr
		cosw0 := math.Cos(w0)
		alpha := math.Sin(w0) / (2 * q)

		var b0, b1, b2, a0, a1, a2 float64
		switch b.kind {
		case BiQuadHighpass:
			b0 = (1 + cosw0) / 2
			b1 = -(1 + cosw0)
			b2 = (1 + cosw0) / 2
		default: // BiQuadLowpass
			b0 = (1 - cosw0) / 2
			b1 = 1 - cosw0
			b2 = (1 - cosw0) / 2
		}
		a0 = 1 + alpha
		a1 = -2 * cosw0
		a2 = 1 - alpha

		y0 := (b0/a0)*x0 + (b1/a0)*float64(b.x1[c]) + (b2/a0)*float64(b.x2[c]) -
			(a1/a0)*float64(b.y1[c]) - (a2/a0)*float64(b.y2[c])

		b.x2[c], b.x1[c] = b.x1[c], graph.Sample(x0)
		b.y2[c], b.y1[c] = b.y1[c], graph.Sample(y0)
		b.out[c] = graph.Sample(y0)
	}
}
