package modules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sndgraph/engine"
)

func TestDelayReturnsSilenceBeforeDelayElapses(t *testing.T) {
	d := NewDelay(8, 1, 1)
	// impulse at frame 0, delay of 0.5s (4 frames)
	d.Sample(graph.Frame{1, 0.5})
	for i := 1; i < 4; i++ {
		d.Sample(graph.Frame{0, 0.5})
		assert.InDelta(t, 0, float64(d.Output()[0]), 1e-9)
	}
}

func TestDelayEventuallyReturnsTheImpulse(t *testing.T) {
	d := NewDelay(8, 1, 1)
	d.Sample(graph.Frame{1, 0.5})
	var maxSeen float64
	for i := 1; i < 8; i++ {
		d.Sample(graph.Frame{0, 0.5})
		v := float64(d.Output()[0])
		if v > maxSeen {
			maxSeen = v
		}
	}
	assert.Greater(t, maxSeen, 0.0)
}

func TestFeedbackDecaysTowardSilence(t *testing.T) {
	f := NewFeedback(8, 1, 1)
	f.Sample(graph.Frame{1, 0.25, 0.5})
	var last float64 = 1
	for i := 0; i < 64; i++ {
		f.Sample(graph.Frame{0, 0.25, 0.5})
		last = float64(f.Output()[0])
	}
	assert.Less(t, last*last, 1.0)
}
