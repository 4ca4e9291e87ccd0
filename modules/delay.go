package modules

import "github.com/sndgraph/engine"

// Delay is a 2-input delay line: chunk 0 is the signal, chunk 1 the delay
// time in seconds. Each channel gets its own power-of-2-sized ring buffer
// (capacity the smallest power of 2 >= sampleRate*maxDelaySeconds + 2), read
// back with linear interpolation between the two nearest integer-sample
// taps. Grounded on audio_modules/src/delay.rs.
type Delay struct {
	sr    float64
	ring  []graph.Frame // ring[c] is channel c's circular buffer
	mask  int
	write int
	out   graph.Frame
}

// NewDelay builds a Delay able to address delay times up to maxSeconds at
// sampleRate, sized to the next power of 2.
func NewDelay(sampleRate, maxSeconds float64, channels int) *Delay {
	need := int(sampleRate*maxSeconds) + 2
	cap := 1
	for cap < need {
		cap <<= 1
	}
	ring := make([]graph.Frame, channels)
	for c := range ring {
		ring[c] = make(graph.Frame, cap)
	}
	return &Delay{sr: sampleRate, ring: ring, mask: cap - 1, out: make(graph.Frame, channels)}
}

func (d *Delay) Inputs() int        { return 2 }
func (d *Delay) Output() graph.Frame { return d.out }
func (d *Delay) Sample(in graph.Frame) {
	C := len(d.out)
	for c := 0; c < C; c++ {
		x := in[slot(0, c, 2)]
		delaySec := float64(in[slot(1, c, 2)])

		buf := d.ring[c]
		n := len(buf)
		pos := float64(d.write) - delaySec*d.sr
		for pos < 0 {
			pos += float64(n)
		}
		i0 := int(pos) & d.mask
		i1 := (i0 + 1) & d.mask
		frac := pos - float64(int(pos))
		y0 := float64(buf[i0])
		y1 := float64(buf[i1])
		d.out[c] = graph.Sample(y0 + frac*(y1-y0))

		buf[d.write&d.mask] = x
	}
	d.write++
}
