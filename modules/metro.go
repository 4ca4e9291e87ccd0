package modules

import "github.com/sndgraph/engine"

// Metro is a 1-input frame-counting trigger: chunk 0 is frequency in Hz.
// It emits 1 every ceil(sampleRate/freq) frames and 0 otherwise, resetting
// its counter each time it fires. Grounded on audio_modules/src/metro.rs.
type Metro struct {
	sr      float64
	counter []int
	out     graph.Frame
}

func NewMetro(sampleRate float64, channels int) *Metro {
	return &Metro{sr: sampleRate, counter: make([]int, channels), out: make(graph.Frame, channels)}
}

func (m *Metro) Inputs() int        { return 1 }
func (m *Metro) Output() graph.Frame { return m.out }
func (m *Metro) Sample(in graph.Frame) {
	for c := range m.out {
		freq := float64(in[c])
		period := metroPeriod(m.sr, freq)
		m.counter[c]++
		if m.counter[c] >= period {
			m.out[c] = 1
			m.counter[c] = 0
		} else {
			m.out[c] = 0
		}
	}
}

// DMetro is Metro but derives its period from a duration in seconds
// (chunk 0) rather than a frequency. Grounded on
// audio_modules/src/metro.rs's DMetro.
type DMetro struct {
	sr      float64
	counter []int
	out     graph.Frame
}

func NewDMetro(sampleRate float64, channels int) *DMetro {
	return &DMetro{sr: sampleRate, counter: make([]int, channels), out: make(graph.Frame, channels)}
}

func (m *DMetro) Inputs() int        { return 1 }
func (m *DMetro) Output() graph.Frame { return m.out }
func (m *DMetro) Sample(in graph.Frame) {
	for c := range m.out {
		dur := float64(in[c])
		period := dmetroPeriod(m.sr, dur)
		m.counter[c]++
		if m.counter[c] >= period {
			m.out[c] = 1
			m.counter[c] = 0
		} else {
			m.out[c] = 0
		}
	}
}

// MetroHold is Metro with its rate parameter frozen between triggers:
// the frequency in effect for the countdown currently running is the one
// read at the moment the previous trigger fired, so a change to chunk 0
// mid-period has no effect until the next period starts. The output
// shape is identical to Metro's — 1 on the firing frame, 0 otherwise.
// Grounded on audio_modules/src/metro.rs:109-139's MetroHold, which froze
// only last_frequency between triggers and otherwise pulsed exactly like
// Metro.
type MetroHold struct {
	sr         float64
	counter    []int
	frozenFreq []float64
	started    []bool
	out        graph.Frame
}

func NewMetroHold(sampleRate float64, channels int) *MetroHold {
	return &MetroHold{
		sr:         sampleRate,
		counter:    make([]int, channels),
		frozenFreq: make([]float64, channels),
		started:    make([]bool, channels),
		out:        make(graph.Frame, channels),
	}
}

func (m *MetroHold) Inputs() int        { return 1 }
func (m *MetroHold) Output() graph.Frame { return m.out }
func (m *MetroHold) Sample(in graph.Frame) {
	for c := range m.out {
		if !m.started[c] {
			m.frozenFreq[c] = float64(in[c])
			m.started[c] = true
		}
		period := metroPeriod(m.sr, m.frozenFreq[c])
		m.counter[c]++
		if m.counter[c] >= period {
			m.out[c] = 1
			m.counter[c] = 0
			m.frozenFreq[c] = float64(in[c])
		} else {
			m.out[c] = 0
		}
	}
}

// DMetroHold is MetroHold driven by a duration in seconds instead of a
// frequency, mirroring DMetro's relationship to Metro; it freezes
// last_dt the same way MetroHold freezes last_frequency.
type DMetroHold struct {
	sr       float64
	counter  []int
	frozenDt []float64
	started  []bool
	out      graph.Frame
}

func NewDMetroHold(sampleRate float64, channels int) *DMetroHold {
	return &DMetroHold{
		sr:       sampleRate,
		counter:  make([]int, channels),
		frozenDt: make([]float64, channels),
		started:  make([]bool, channels),
		out:      make(graph.Frame, channels),
	}
}

func (m *DMetroHold) Inputs() int        { return 1 }
func (m *DMetroHold) Output() graph.Frame { return m.out }
func (m *DMetroHold) Sample(in graph.Frame) {
	for c := range m.out {
		if !m.started[c] {
			m.frozenDt[c] = float64(in[c])
			m.started[c] = true
		}
		period := dmetroPeriod(m.sr, m.frozenDt[c])
		m.counter[c]++
		if m.counter[c] >= period {
			m.out[c] = 1
			m.counter[c] = 0
			m.frozenDt[c] = float64(in[c])
		} else {
			m.out[c] = 0
		}
	}
}

func metroPeriod(sr, freq float64) int {
	if freq <= 0 {
		return 1 << 30 // effectively never fires
	}
	p := int(sr / freq)
	if float64(p)*freq < sr {
		p++
	}
	if p < 1 {
		p = 1
	}
	return p
}

func dmetroPeriod(sr, durSeconds float64) int {
	p := int(sr * durSeconds)
	if p < 1 {
		p = 1
	}
	return p
}
