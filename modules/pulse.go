package modules

import "github.com/sndgraph/engine"

// Pulse is a 2-input pulse/rectangle wave oscillator: input chunk 0 is
// frequency (Hz), chunk 1 is duty cycle in [0, 1]. Built from a free-
// running Phasor and Pure.Rectangle, the same composition
// audio_modules/src/pulse.rs:16-21 used.
type Pulse struct {
	ph   *Phasor
	freq graph.Frame
	out  graph.Frame
}

func NewPulse(sampleRate float64, channels int) *Pulse {
	return &Pulse{
		ph:   NewPhasor(sampleRate, channels),
		freq: make(graph.Frame, channels),
		out:  make(graph.Frame, channels),
	}
}

func (p *Pulse) Inputs() int        { return 2 }
func (p *Pulse) Output() graph.Frame { return p.out }
func (p *Pulse) Sample(in graph.Frame) {
	C := len(p.out)
	for c := 0; c < C; c++ {
		p.freq[c] = in[slot(0, c, 2)]
	}
	p.ph.Sample(p.freq)
	for c, v := range p.ph.Output() {
		width := float64(in[slot(1, c, 2)])
		p.out[c] = graph.Sample(Pure.Rectangle(float64(v), width))
	}
}
