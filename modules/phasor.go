package modules

import "github.com/sndgraph/engine"

// Phasor is a 1-input module that integrates a per-channel frequency
// (in Hz, read from input chunk 0) into a ramp over [-1, 1), wrapping at
// the boundary. It is the building block every periodic generator
// (Osc, Pulse) composes. Grounded on audio_modules/src/phasor.rs.
type Phasor struct {
	sr    float64
	phase graph.Frame
	out   graph.Frame
}

// NewPhasor builds a Phasor for the given sample rate, phase seeded to 0
// on every channel.
func NewPhasor(sampleRate float64, channels int) *Phasor {
	return &Phasor{sr: sampleRate, phase: make(graph.Frame, channels), out: make(graph.Frame, channels)}
}

func (p *Phasor) Inputs() int        { return 1 }
func (p *Phasor) Output() graph.Frame { return p.out }
func (p *Phasor) Sample(in graph.Frame) {
	for c := range p.out {
		p.out[c] = p.phase[c]
		freq := float64(in[c])
		ph := float64(p.phase[c]) + 2*freq/p.sr
		for ph >= 1 {
			ph -= 2
		}
		for ph < -1 {
			ph += 2
		}
		p.phase[c] = graph.Sample(ph)
	}
}

// Phasor0 is Phasor with a second input, phase_offset, added before the
// wrap each frame: chunk 0 frequency, chunk 1 phase_offset. It has no
// reset or sync logic of its own. Grounded on
// audio_modules/src/phasor.rs:66-83.
type Phasor0 struct {
	sr    float64
	phase graph.Frame
	out   graph.Frame
}

func NewPhasor0(sampleRate float64, channels int) *Phasor0 {
	return &Phasor0{sr: sampleRate, phase: make(graph.Frame, channels), out: make(graph.Frame, channels)}
}

func (p *Phasor0) Inputs() int        { return 2 }
func (p *Phasor0) Output() graph.Frame { return p.out }
func (p *Phasor0) Sample(in graph.Frame) {
	C := len(p.out)
	for c := 0; c < C; c++ {
		freq := float64(in[slot(0, c, 2)])
		phase0 := float64(in[slot(1, c, 2)])

		p.out[c] = p.phase[c]
		ph := float64(p.phase[c]) + 2*freq/p.sr + phase0
		for ph >= 1 {
			ph -= 2
		}
		for ph < -1 {
			ph += 2
		}
		p.phase[c] = graph.Sample(ph)
	}
}
