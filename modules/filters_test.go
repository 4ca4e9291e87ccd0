package modules

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sndgraph/engine"
)

func TestLPFConvergesToConstantInput(t *testing.T) {
	f := NewLPF(100, 1)
	for i := 0; i < 200; i++ {
		f.Sample(graph.Frame{1, 10})
	}
	assert.InDelta(t, 1.0, float64(f.Output()[0]), 1e-6)
}

func TestHPFRejectsConstantInput(t *testing.T) {
	f := NewHPF(100, 1)
	for i := 0; i < 200; i++ {
		f.Sample(graph.Frame{1, 10})
	}
	assert.InDelta(t, 0.0, float64(f.Output()[0]), 1e-6)
}

func TestBiQuadLowpassPassesDC(t *testing.T) {
	b := NewBiQuad(BiQuadLowpass, 1000, 1)
	for i := 0; i < 500; i++ {
		b.Sample(graph.Frame{1, 100, 0.707})
	}
	assert.InDelta(t, 1.0, float64(b.Output()[0]), 1e-2)
}

func TestConvolutionSumsWeightedHistory(t *testing.T) {
	c := NewConvolution(1)
	// kernel [1, 0, 0] just delays/passes signal with weight 1 on most
	// recent history sample (which starts at 0), so first frame is 0.
	c.Sample(graph.Frame{5, 1, 0, 0})
	assert.Equal(t, graph.Sample(0), c.Output()[0])
	c.Sample(graph.Frame{0, 1, 0, 0})
	assert.Equal(t, graph.Sample(5), c.Output()[0])
}

func TestPan1EqualPowerAtCenter(t *testing.T) {
	p := NewPan1()
	p.Sample(graph.Frame{1, 0})
	l, r := float64(p.Output()[0]), float64(p.Output()[1])
	assert.InDelta(t, l, r, 1e-9)
	assert.InDelta(t, 1.0, l*l+r*r, 1e-9)
}

func TestSampleAndHoldCrossfadesByT(t *testing.T) {
	s := NewSampleAndHold(1)
	// t=1 outputs x outright.
	s.Sample(graph.Frame{1, 3})
	assert.Equal(t, graph.Sample(3), s.Output()[0])
	// t=0 holds the previous output regardless of x.
	s.Sample(graph.Frame{0, 99})
	assert.Equal(t, graph.Sample(3), s.Output()[0])
	// fractional t blends toward x.
	s.Sample(graph.Frame{0.5, 5})
	assert.InDelta(t, 4.0, float64(s.Output()[0]), 1e-9)
}

func TestImpulseRisesThenDecaysAfterTrigger(t *testing.T) {
	i := NewImpulse(8, 1) // sr=8, apex=1s -> 8 frames to apex
	i.Sample(graph.Frame{1, 1})
	assert.Equal(t, graph.Sample(0), i.Output()[0], "h=0 on the trigger frame")
	var prev float64
	rising := true
	for k := 1; k < 16; k++ {
		i.Sample(graph.Frame{0, 1})
		v := float64(i.Output()[0])
		if rising && v < prev {
			rising = false
		}
		if !rising {
			assert.LessOrEqual(t, v, prev+1e-9, "frame %d should be decaying", k)
		}
		prev = v
	}
}

func TestOnePoleCoeffIsBounded(t *testing.T) {
	a := onePoleCoeff(1000, 44100)
	assert.Greater(t, a, 0.0)
	assert.Less(t, a, 1.0)
	assert.False(t, math.IsNaN(a))
}
