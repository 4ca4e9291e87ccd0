package modules

import (
	"math"

	"github.com/sndgraph/engine"
)

// Pan modules read their source(s) from graph channel 0 only and always
// produce a stereo (2-channel) Output Frame, independent of the host
// graph's channel count: panning is inherently a mono/stereo-boundary
// operation, the same role audio_modules/src/pan.rs's Pan1/Pan2/Pan3
// played at the tail of an otherwise mono signal chain.

func equalPower(pos float64) (l, r float64) {
	// pos in [-1, 1], -1 hard left, 1 hard right.
	theta := (pos + 1) * math.Pi / 4
	return math.Cos(theta), math.Sin(theta)
}

// Pan1 is a 2-input equal-power panner for a single mono source: chunk 0
// is the signal, chunk 1 the pan position in [-1, 1].
type Pan1 struct {
	out graph.Frame
}

func NewPan1() *Pan1 { return &Pan1{out: make(graph.Frame, 2)} }

func (p *Pan1) Inputs() int        { return 2 }
func (p *Pan1) Output() graph.Frame { return p.out }
func (p *Pan1) Sample(in graph.Frame) {
	x := float64(in[0])
	pos := float64(in[1])
	l, r := equalPower(pos)
	p.out[0] = graph.Sample(l * x)
	p.out[1] = graph.Sample(r * x)
}

// Pan2 is a 3-input equal-power panner for an already-stereo source:
// chunk 0 left, chunk 1 right, chunk 2 the pan position in [-1, 1],
// applied as a balance control across the existing pair.
type Pan2 struct {
	out graph.Frame
}

func NewPan2() *Pan2 { return &Pan2{out: make(graph.Frame, 2)} }

func (p *Pan2) Inputs() int        { return 3 }
func (p *Pan2) Output() graph.Frame { return p.out }
func (p *Pan2) Sample(in graph.Frame) {
	left := float64(in[0])
	right := float64(in[1])
	pos := float64(in[2])
	l, r := equalPower(pos)
	p.out[0] = graph.Sample(l * left)
	p.out[1] = graph.Sample(r * right)
}

// Pan3 is a 3-input cross-channel stereo blend: chunk 0 left, chunk 1
// right, chunk 2 a blend control c. Unlike Pan1/Pan2's equal-power
// position, c mixes each output channel from both inputs:
// out[0] = sqrt(min(1,1-c))*l + sqrt(max(0,-c))*r
// out[1] = sqrt(max(0,c))*l + sqrt(min(1,1+c))*r
// Grounded on audio_modules/src/pan.rs:87-100.
type Pan3 struct {
	out graph.Frame
}

func NewPan3() *Pan3 { return &Pan3{out: make(graph.Frame, 2)} }

func (p *Pan3) Inputs() int        { return 3 }
func (p *Pan3) Output() graph.Frame { return p.out }
func (p *Pan3) Sample(in graph.Frame) {
	l := float64(in[0])
	r := float64(in[1])
	c := float64(in[2])
	p.out[0] = graph.Sample(math.Sqrt(math.Min(1, 1-c))*l + math.Sqrt(math.Max(0, -c))*r)
	p.out[1] = graph.Sample(math.Sqrt(math.Max(0, c))*l + math.Sqrt(math.Min(1, 1+c))*r)
}
