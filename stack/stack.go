// Package stack implements the RPN graph-building machine described by
// §5: a stack of node handles, walked through a list of Ops that either
// push a new node (wiring its declared arity's worth of sources off the
// stack) or rearrange the stack itself. Grounded on
// audio_graph/src/stack.rs's Op/build_graph.
package stack

import (
	"fmt"

	"github.com/sndgraph/engine"
)

// Op is one instruction in an RPN program. The concrete Op variants below
// are the only implementations; Build type-switches on them.
type Op interface {
	isOp()
}

// Push installs Module as a new zero-or-more-input node. If Module.Inputs()
// > 0, Push pops that many handles off the stack (deepest first) and wires
// them as its sources in the order they come off the stack, the same
// left-to-right source order Connect in the original crate produced.
// Push then pushes the new node's handle.
type Push struct{ Module graph.Module }

// Dup duplicates the top stack handle.
type Dup struct{}

// Swap exchanges the top two stack handles.
type Swap struct{}

// Rot rotates the top three stack handles: [a, b, c] -> [b, c, a].
type Rot struct{}

// Pop discards the top stack handle.
type Pop struct{}

func (Push) isOp() {}
func (Dup) isOp()  {}
func (Swap) isOp() {}
func (Rot) isOp()  {}
func (Pop) isOp()  {}

// Error reports the RPN op index at which the stack held too few handles
// for the operation to proceed. Grounded on
// audio_graph/src/stack.rs's Error::StackExhausted.
type Error struct {
	OpIndex int
	Op      Op
	Need    int
	Have    int
}

func (e *Error) Error() string {
	return fmt.Sprintf("op %d: stack exhausted, need %d handles, have %d", e.OpIndex, e.Need, e.Have)
}

// Build runs ops against a fresh Graph of the given channel and external
// width, in order, and returns the resulting graph. Building stops and
// returns an Error at the first op that cannot be satisfied by the
// current stack depth; the graph returned in that case is the one built
// so far, matching the original crate's behavior of leaving partial state
// inspectable after a StackExhausted error.
func Build(ops []Op, channels, width int) (*graph.Graph, error) {
	g := graph.New(channels, width)
	var st []graph.Handle

	pop := func(i, n int) ([]graph.Handle, error) {
		if len(st) < n {
			return nil, &Error{OpIndex: i, Need: n, Have: len(st)}
		}
		vals := append([]graph.Handle(nil), st[len(st)-n:]...)
		st = st[:len(st)-n]
		return vals, nil
	}

	for i, op := range ops {
		switch o := op.(type) {
		case Push:
			n := o.Module.Inputs()
			srcs, err := pop(i, n)
			if err != nil {
				err.(*Error).Op = op
				return g, err
			}
			h := g.AddNode(o.Module)
			if n > 0 {
				g.SetSources(h, srcs)
			}
			st = append(st, h)

		case Dup:
			v, err := pop(i, 1)
			if err != nil {
				err.(*Error).Op = op
				return g, err
			}
			st = append(st, v[0], v[0])

		case Swap:
			v, err := pop(i, 2)
			if err != nil {
				err.(*Error).Op = op
				return g, err
			}
			st = append(st, v[1], v[0])

		case Rot:
			v, err := pop(i, 3)
			if err != nil {
				err.(*Error).Op = op
				return g, err
			}
			st = append(st, v[1], v[2], v[0])

		case Pop:
			if _, err := pop(i, 1); err != nil {
				err.(*Error).Op = op
				return g, err
			}
		}
	}
	return g, nil
}
