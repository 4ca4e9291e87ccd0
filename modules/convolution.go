package modules

import "github.com/sndgraph/engine"

// ConvolutionM is a (1+W)-input FIR convolution: chunk 0 is the signal,
// chunks 1..W are the W kernel taps (each itself a per-channel control
// signal, not a fixed constant, so the kernel may vary over time).
// Internally it keeps the last W signal samples per channel and computes
// their dot product with the current tap values on every frame. Grounded
// on audio_modules/src/convolution.rs's dynamically-sized convolution.
type ConvolutionM struct {
	w       int
	history []graph.Frame // history[k] holds signal[n-k] for k in [0, w)
	out     graph.Frame
}

// NewConvolutionM builds a ConvolutionM with a W-tap kernel.
func NewConvolutionM(w, channels int) *ConvolutionM {
	history := make([]graph.Frame, w)
	for k := range history {
		history[k] = make(graph.Frame, channels)
	}
	return &ConvolutionM{w: w, history: history, out: make(graph.Frame, channels)}
}

func (m *ConvolutionM) Inputs() int        { return 1 + m.w }
func (m *ConvolutionM) Output() graph.Frame { return m.out }
func (m *ConvolutionM) Sample(in graph.Frame) {
	I := 1 + m.w
	C := len(m.out)
	for c := 0; c < C; c++ {
		x := in[slot(0, c, I)]

		var acc float64
		for k := 0; k < m.w; k++ {
			tap := float64(in[slot(1+k, c, I)])
			acc += tap * float64(m.history[k][c])
		}
		m.out[c] = graph.Sample(acc)

		for k := m.w - 1; k > 0; k-- {
			m.history[k][c] = m.history[k-1][c]
		}
		if m.w > 0 {
			m.history[0][c] = x
		}
	}
}

// Convolution is the fixed 3-tap specialization of ConvolutionM, the
// common case audio_modules/src/convolution.rs exposed directly.
type Convolution struct {
	*ConvolutionM
}

func NewConvolution(channels int) *Convolution {
	return &Convolution{ConvolutionM: NewConvolutionM(3, channels)}
}
