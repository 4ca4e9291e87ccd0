package modules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sndgraph/engine"
)

func TestConstantNeverChanges(t *testing.T) {
	c := NewConstant(0.5, 2)
	assert.Equal(t, 0, c.Inputs())
	for i := 0; i < 5; i++ {
		c.Sample(nil)
		assert.Equal(t, graph.Frame{0.5, 0.5}, c.Output())
	}
}

func TestInputMirrorsChannel(t *testing.T) {
	in := NewInput(1, 2)
	in.Sample(graph.Frame{1, 2, 3})
	assert.Equal(t, graph.Frame{2, 2}, in.Output())
}

func TestFn1AppliesPerChannel(t *testing.T) {
	f := NewFn1(func(x float64) float64 { return x * x }, 2)
	f.Sample(graph.Frame{2, 3})
	assert.Equal(t, graph.Frame{4, 9}, f.Output())
}

func TestFn2ReadsPackedSlots(t *testing.T) {
	f := NewFn2(Pure.Add, 2)
	// layout: buf[i + c*I], I=2: c0 -> [0]=x0 [1]=y0; c1 -> [2]=x1 [3]=y1
	f.Sample(graph.Frame{1, 10, 2, 20})
	assert.Equal(t, graph.Frame{11, 22}, f.Output())
}

func TestFn3ReadsIndices012NotRustBug(t *testing.T) {
	f := NewFn3(func(x, y, z float64) float64 { return x + y + z }, 1)
	f.Sample(graph.Frame{1, 2, 3})
	assert.Equal(t, graph.Frame{6}, f.Output())
}
