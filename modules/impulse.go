package modules

import (
	"math"

	"github.com/sndgraph/engine"
)

// Impulse is a 2-input attack-decay envelope: chunk 0 is a trigger, chunk
// 1 the apex time in seconds. On the frame the trigger crosses from
// non-positive to positive, the envelope's internal clock resets to 0;
// every frame it emits h*exp(1-h) where h = elapsed_time/apex, elapsed_time
// being the time since the last trigger. Grounded on
// envelopes/impulse.rs:24-51.
type Impulse struct {
	sr       float64
	prevTrig graph.Frame
	elapsed  []float64
	out      graph.Frame
}

func NewImpulse(sampleRate float64, channels int) *Impulse {
	return &Impulse{
		sr:       sampleRate,
		prevTrig: make(graph.Frame, channels),
		elapsed:  make([]float64, channels),
		out:      make(graph.Frame, channels),
	}
}

func (m *Impulse) Inputs() int        { return 2 }
func (m *Impulse) Output() graph.Frame { return m.out }
func (m *Impulse) Sample(in graph.Frame) {
	C := len(m.out)
	dt := 1 / m.sr
	for c := 0; c < C; c++ {
		trig := in[slot(0, c, 2)]
		apex := float64(in[slot(1, c, 2)])

		if m.prevTrig[c] <= 0 && trig > 0 {
			m.elapsed[c] = 0
		}

		h := m.elapsed[c] / apex
		m.out[c] = graph.Sample(h * math.Exp(1-h))

		m.elapsed[c] += dt
		m.prevTrig[c] = trig
	}
}
