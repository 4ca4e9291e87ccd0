package modules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sndgraph/engine"
)

func TestPhasorWrapsIntoRange(t *testing.T) {
	p := NewPhasor(8, 1)
	for i := 0; i < 20; i++ {
		p.Sample(graph.Frame{2})
		out := p.Output()[0]
		assert.GreaterOrEqual(t, float64(out), -1.0)
		assert.Less(t, float64(out), 1.0)
	}
}

func TestPhasorStartsAtZero(t *testing.T) {
	p := NewPhasor(8, 1)
	p.Sample(graph.Frame{2})
	assert.Equal(t, graph.Sample(0), p.Output()[0])
}

func TestMetroFirstFireAtCeilRoverF(t *testing.T) {
	m := NewMetro(8, 1) // R=8
	freq := 2.0         // fires every 4 frames
	var fires []int
	for i := 1; i <= 9; i++ {
		m.Sample(graph.Frame{graph.Sample(freq)})
		if m.Output()[0] == 1 {
			fires = append(fires, i)
		}
	}
	assert.Equal(t, []int{4, 8}, fires)
}

func TestMetroHoldPulsesLikeMetroAtCeilRoverF(t *testing.T) {
	m := NewMetroHold(8, 1) // R=8
	freq := 2.0             // fires every 4 frames
	var fires []int
	for i := 1; i <= 9; i++ {
		m.Sample(graph.Frame{graph.Sample(freq)})
		if m.Output()[0] == 1 {
			fires = append(fires, i)
		}
	}
	assert.Equal(t, []int{4, 8}, fires)
}

func TestMetroHoldFreezesRateBetweenTriggers(t *testing.T) {
	m := NewMetroHold(8, 1) // R=8, first period freezes at frame 1's freq=2
	var fires []int
	for i := 1; i <= 4; i++ {
		freq := 2.0
		if i > 1 {
			// a live rate change mid-period (to a rate that would fire
			// every frame if read live) must not affect the period
			// already counting down.
			freq = 8.0
		}
		m.Sample(graph.Frame{graph.Sample(freq)})
		if m.Output()[0] == 1 {
			fires = append(fires, i)
		}
	}
	// still takes the full 4 frames despite freq jumping to 8 on frame 2,
	// because the rate was frozen at frame 1's value of 2.
	assert.Equal(t, []int{4}, fires)
}
