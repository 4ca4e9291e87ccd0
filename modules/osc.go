package modules

import "github.com/sndgraph/engine"

// OscKind selects which Pure shaping function Osc/OscPhase applies to
// their phasor, matching audio_modules/src/osc.rs's sine and triangle
// variants.
type OscKind int

const (
	OscSine OscKind = iota
	OscTriangle
)

func (k OscKind) shape(x float64) float64 {
	if k == OscTriangle {
		return Pure.Triangle(x)
	}
	return Pure.Sine(x)
}

// Osc is a composition of Phasor and a shaping function: a 1-input
// oscillator reading frequency from input chunk 0. Grounded on
// audio_modules/src/osc.rs, which built Osc the same way atop Phasor.
type Osc struct {
	kind OscKind
	ph   *Phasor
	out  graph.Frame
}

func NewOsc(kind OscKind, sampleRate float64, channels int) *Osc {
	return &Osc{kind: kind, ph: NewPhasor(sampleRate, channels), out: make(graph.Frame, channels)}
}

func (o *Osc) Inputs() int        { return 1 }
func (o *Osc) Output() graph.Frame { return o.out }
func (o *Osc) Sample(in graph.Frame) {
	o.ph.Sample(in)
	for c, v := range o.ph.Output() {
		o.out[c] = graph.Sample(o.kind.shape(float64(v)))
	}
}

// OscPhase is Osc but additionally accepts a phase offset on input chunk
// 1, added to the phasor's ramp before shaping. Grounded on
// audio_modules/src/osc.rs's OscPhase.
type OscPhase struct {
	kind OscKind
	ph   *Phasor
	freq graph.Frame
	out  graph.Frame
}

func NewOscPhase(kind OscKind, sampleRate float64, channels int) *OscPhase {
	return &OscPhase{
		kind: kind,
		ph:   NewPhasor(sampleRate, channels),
		freq: make(graph.Frame, channels),
		out:  make(graph.Frame, channels),
	}
}

func (o *OscPhase) Inputs() int        { return 2 }
func (o *OscPhase) Output() graph.Frame { return o.out }
func (o *OscPhase) Sample(in graph.Frame) {
	C := len(o.out)
	for c := 0; c < C; c++ {
		o.freq[c] = in[slot(0, c, 2)]
	}
	o.ph.Sample(o.freq)
	for c, v := range o.ph.Output() {
		offset := float64(in[slot(1, c, 2)])
		phase := float64(v) + offset
		for phase >= 1 {
			phase -= 2
		}
		for phase < -1 {
			phase += 2
		}
		o.out[c] = graph.Sample(o.kind.shape(phase))
	}
}
