package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sndgraph/engine"
	"github.com/sndgraph/engine/modules"
)

func TestPushSourceOrderMatchesStackOrder(t *testing.T) {
	ops := []Op{
		Push{modules.NewConstant(1, 1)},
		Push{modules.NewConstant(2, 1)},
		Push{modules.NewFn2(modules.Pure.Sub, 1)},
	}
	g, err := Build(ops, 1, 1)
	require.NoError(t, err)

	require.NoError(t, g.CheckArity())
	g.Sample(graph.Frame{0})
	// fn2 sees constant(1) as its first source and constant(2) as its
	// second, so sub(1, 2) == -1.
	assert.Equal(t, graph.Sample(-1), g.Output()[0])
}

func TestPopOnEmptyStackReportsOpIndex(t *testing.T) {
	ops := []Op{Pop{}}
	_, err := Build(ops, 1, 1)
	require.Error(t, err)
	se, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, 0, se.OpIndex)
}

func TestConnectWithTooFewSourcesExhaustsStack(t *testing.T) {
	ops := []Op{
		Push{modules.NewConstant(1, 1)},
		Push{modules.NewFn2(modules.Pure.Add, 1)}, // needs 2, stack has 1
	}
	_, err := Build(ops, 1, 1)
	require.Error(t, err)
	se := err.(*Error)
	assert.Equal(t, 1, se.OpIndex)
	assert.Equal(t, 2, se.Need)
	assert.Equal(t, 1, se.Have)
}

func TestDupSwapRot(t *testing.T) {
	ops := []Op{
		Push{modules.NewConstant(7, 1)},
		Dup{},
		Push{modules.NewFn2(modules.Pure.Add, 1)},
	}
	g, err := Build(ops, 1, 1)
	require.NoError(t, err)
	g.Sample(graph.Frame{0})
	assert.Equal(t, graph.Sample(14), g.Output()[0])

	// [1 2 3] rot -> [2 3 1], swap -> [2 1 3], sub -> [2 (1-3)],
	// sub -> 2-(-2) == 4.
	ops = []Op{
		Push{modules.NewConstant(1, 1)},
		Push{modules.NewConstant(2, 1)},
		Push{modules.NewConstant(3, 1)},
		Rot{},
		Swap{},
		Push{modules.NewFn2(modules.Pure.Sub, 1)},
		Push{modules.NewFn2(modules.Pure.Sub, 1)},
	}
	g, err = Build(ops, 1, 1)
	require.NoError(t, err)
	g.Sample(graph.Frame{0})
	assert.Equal(t, graph.Sample(4), g.Output()[0])
}
