package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sndgraph/engine"
	"github.com/sndgraph/engine/stack"
)

func TestTokenizeTreatsBracketsAndCommasAsWhitespace(t *testing.T) {
	toks := tokenize("[0.5, 0.0] pan1")
	names := make([]string, len(toks))
	for i, tk := range toks {
		names[i] = tk.Name
	}
	assert.Equal(t, []string{"0.5", "0.0", "pan1"}, names)
}

func TestTokenizeStripsLineComments(t *testing.T) {
	toks := tokenize("1 // a comment\n2 +")
	names := make([]string, len(toks))
	for i, tk := range toks {
		names[i] = tk.Name
	}
	assert.Equal(t, []string{"1", "2", "+"}, names)
}

func TestCompileConstantOscillator(t *testing.T) {
	g, err := Compile("440 s", 1, 44100, 1)
	require.NoError(t, err)
	require.NoError(t, g.CheckArity())
	for i := 0; i < 10; i++ {
		g.Sample(graph.Frame{0})
	}
}

func TestCompilePhasorThroughCosine(t *testing.T) {
	g, err := Compile("100 w cos", 1, 44100, 1)
	require.NoError(t, err)
	require.NoError(t, g.CheckArity())
	g.Sample(graph.Frame{0})
	assert.InDelta(t, 1.0, float64(g.Output()[0]), 1e-9, "cos(0) at the phasor's initial phase")
}

func TestCompilePanExpression(t *testing.T) {
	g, err := Compile("[0.5] [0.0] pan1", 1, 44100, 1)
	require.NoError(t, err)
	require.NoError(t, g.CheckArity())
	g.Sample(graph.Frame{0})
	term, ok := g.Terminal()
	require.True(t, ok)
	assert.Len(t, g.Node(term).Output(), 2, "pan1 itself is stereo")
	assert.Len(t, g.Output(), 1, "the graph's output frame keeps its channel count")
}

func TestCompileUnknownTokenReportsIndex(t *testing.T) {
	_, err := Compile("440 bogus", 1, 44100, 1)
	require.Error(t, err)
	pe, ok := err.(*ParseError)
	require.True(t, ok)
	assert.Equal(t, UnknownToken, pe.Kind)
	assert.Equal(t, 1, pe.Index)
}

func TestCompileYinIsUnsupportedNotUnknown(t *testing.T) {
	_, err := Compile("1 yin", 1, 44100, 1)
	require.Error(t, err)
	_, ok := err.(*ErrUnsupportedToken)
	assert.True(t, ok)
}

func TestCompileNoiseThenMultiply(t *testing.T) {
	_, err := Compile("1 noise *", 1, 44100, 1)
	require.NoError(t, err)
}

func TestCompileMetroFiresAtExpectedFrame(t *testing.T) {
	g, err := Compile("1 m", 4, 4, 1)
	require.NoError(t, err)
	var fires int
	for i := 0; i < 4; i++ {
		g.Sample(graph.Frame{0})
		if g.Output()[0] == 1 {
			fires++
		}
	}
	assert.Equal(t, 1, fires)
}

func TestCompileArityExhaustedPropagatesStackError(t *testing.T) {
	_, err := Compile("1 +", 1, 44100, 1)
	require.Error(t, err)
	_, ok := err.(*stack.Error)
	assert.True(t, ok)
}
