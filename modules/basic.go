package modules

import "github.com/sndgraph/engine"

// Constant is a zero-input module whose output never changes after
// construction. Grounded on audio_modules/src/constant.rs.
type Constant struct {
	out graph.Frame
}

// NewConstant builds a Constant emitting value on every channel.
func NewConstant(value float64, channels int) *Constant {
	out := make(graph.Frame, channels)
	for c := range out {
		out[c] = graph.Sample(value)
	}
	return &Constant{out: out}
}

func (c *Constant) Inputs() int        { return 0 }
func (c *Constant) Output() graph.Frame { return c.out }
func (c *Constant) Sample(_ graph.Frame) {}

// Input is a zero-input module that copies one channel of the graph's
// external frame to every one of its output channels, used to expose one
// of the caller-supplied channels (e.g. a live audio input) as a graph
// source. The other channels of the external frame are not copied. Grounded on
// audio_modules/src/input.rs.
type Input struct {
	channel int
	out     graph.Frame
}

// NewInput builds an Input that mirrors channel of whatever Frame is
// passed to Sample. channels sizes the broadcast output.
func NewInput(channel, channels int) *Input {
	return &Input{channel: channel, out: make(graph.Frame, channels)}
}

func (n *Input) Inputs() int        { return 0 }
func (n *Input) Output() graph.Frame { return n.out }
func (n *Input) Sample(external graph.Frame) {
	v := external[n.channel]
	for c := range n.out {
		n.out[c] = v
	}
}

// Parameter is a zero-input module exposing one lane of the graph's
// external control-parameter region (the part of the input frame beyond
// the live channel count, §6 "Engine API"). Grounded on
// audio_modules/src/parameter.rs.
type Parameter struct {
	index int
	out   graph.Frame
}

// NewParameter builds a Parameter reading external[channels+index] on every
// Sample call and broadcasting it across channels output lanes.
func NewParameter(index, channels int) *Parameter {
	return &Parameter{index: index, out: make(graph.Frame, channels)}
}

func (p *Parameter) Inputs() int        { return 0 }
func (p *Parameter) Output() graph.Frame { return p.out }
func (p *Parameter) Sample(external graph.Frame) {
	v := external[len(p.out)+p.index]
	for c := range p.out {
		p.out[c] = v
	}
}

// Fn1 applies a unary pure function per channel. Grounded on
// audio_modules/src/function.rs's Function1.
type Fn1 struct {
	f   func(float64) float64
	out graph.Frame
}

func NewFn1(f func(float64) float64, channels int) *Fn1 {
	return &Fn1{f: f, out: make(graph.Frame, channels)}
}

func (n *Fn1) Inputs() int        { return 1 }
func (n *Fn1) Output() graph.Frame { return n.out }
func (n *Fn1) Sample(in graph.Frame) {
	C := len(n.out)
	for c := 0; c < C; c++ {
		n.out[c] = graph.Sample(n.f(float64(in[c])))
	}
}

// Fn2 applies a binary pure function per channel, reading input chunks 0
// and 1. Grounded on audio_modules/src/function.rs's Function2.
type Fn2 struct {
	f   func(x, y float64) float64
	out graph.Frame
}

func NewFn2(f func(x, y float64) float64, channels int) *Fn2 {
	return &Fn2{f: f, out: make(graph.Frame, channels)}
}

func (n *Fn2) Inputs() int        { return 2 }
func (n *Fn2) Output() graph.Frame { return n.out }
func (n *Fn2) Sample(in graph.Frame) {
	C := len(n.out)
	for c := 0; c < C; c++ {
		x := float64(in[slot(0, c, 2)])
		y := float64(in[slot(1, c, 2)])
		n.out[c] = graph.Sample(n.f(x, y))
	}
}

// Fn3 applies a ternary pure function per channel, reading input chunks
// 0, 1 and 2. The original Rust Function3 read chunk index 3 for its
// third argument, a one-off bug this port does not reproduce (§9 open
// question: Fn3 reads indices 0, 1, 2).
type Fn3 struct {
	f   func(x, y, z float64) float64
	out graph.Frame
}

func NewFn3(f func(x, y, z float64) float64, channels int) *Fn3 {
	return &Fn3{f: f, out: make(graph.Frame, channels)}
}

func (n *Fn3) Inputs() int        { return 3 }
func (n *Fn3) Output() graph.Frame { return n.out }
func (n *Fn3) Sample(in graph.Frame) {
	C := len(n.out)
	for c := 0; c < C; c++ {
		x := float64(in[slot(0, c, 3)])
		y := float64(in[slot(1, c, 3)])
		z := float64(in[slot(2, c, 3)])
		n.out[c] = graph.Sample(n.f(x, y, z))
	}
}
