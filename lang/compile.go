package lang

import (
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/sndgraph/engine"
	"github.com/sndgraph/engine/modules"
	"github.com/sndgraph/engine/stack"
)

// builder constructs a stack.Op for one token, given its optional :arg
// parameter and the ambient sample rate / channel count a module
// constructor needs. A builder returning (nil, err) where err is a
// *ParseError lets an arg-requiring token report NotEnoughParameters or
// WrongParameterType at the token's own index.
type builder func(tok Token, idx int, channels int, sr float64) (stack.Op, error)

// argFloat parses tok's :arg suffix as a float, reporting
// NotEnoughParameters or WrongParameterType against idx.
func argFloat(tok Token, idx int) (float64, error) {
	if !tok.HasArg {
		return 0, &ParseError{Kind: NotEnoughParameters, Index: idx, Token: tok.Name}
	}
	v, err := strconv.ParseFloat(tok.Arg, 64)
	if err != nil {
		return 0, &ParseError{Kind: WrongParameterType, Index: idx, Token: tok.Name}
	}
	return v, nil
}

func argInt(tok Token, idx int) (int, error) {
	v, err := argFloat(tok, idx)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

func fixedOp(op stack.Op) builder {
	return func(tok Token, idx, channels int, sr float64) (stack.Op, error) {
		return op, nil
	}
}

// sourceOp wraps a sample-rate-independent, arg-independent constructor.
func sourceOp(ctor func(channels int) graph.Module) builder {
	return func(tok Token, idx, channels int, sr float64) (stack.Op, error) {
		return stack.Push{Module: ctor(channels)}, nil
	}
}

// srOp wraps a constructor that needs the ambient sample rate.
func srOp(ctor func(channels int, sr float64) graph.Module) builder {
	return func(tok Token, idx, channels int, sr float64) (stack.Op, error) {
		return stack.Push{Module: ctor(channels, sr)}, nil
	}
}

// symbols is the grammar's token -> constructor table (§6 Table 1),
// grounded one-for-one on audio_stack/src/lib.rs's parse_ops match
// statement. Entries with value nil are recognized tokens this
// implementation does not build (currently only "yin").
var symbols = map[string]builder{
	"dup":  fixedOp(stack.Dup{}),
	"swap": fixedOp(stack.Swap{}),
	"rot":  fixedOp(stack.Rot{}),
	"pop":  fixedOp(stack.Pop{}),

	"n":     sourceOp(func(c int) graph.Module { return modules.NewInput(0, c) }),
	"noise": sourceOp(func(c int) graph.Module { return modules.NewWhiteNoise(1, c) }),

	"sh":   sourceOp(func(c int) graph.Module { return modules.NewSampleAndHold(c) }),
	"conv": sourceOp(func(c int) graph.Module { return modules.NewConvolution(c) }),
	"pan1": sourceOp(func(c int) graph.Module { return modules.NewPan1() }),
	"pan2": sourceOp(func(c int) graph.Module { return modules.NewPan2() }),
	"pan3": sourceOp(func(c int) graph.Module { return modules.NewPan3() }),

	"+":     sourceOp(func(c int) graph.Module { return modules.NewFn2(modules.Pure.Add, c) }),
	"-":     sourceOp(func(c int) graph.Module { return modules.NewFn2(modules.Pure.Sub, c) }),
	"*":     sourceOp(func(c int) graph.Module { return modules.NewFn2(modules.Pure.Mul, c) }),
	"/":     sourceOp(func(c int) graph.Module { return modules.NewFn2(modules.Pure.Div, c) }),
	"recip": sourceOp(func(c int) graph.Module { return modules.NewFn1(modules.Pure.Recip, c) }),
	"`":     sourceOp(func(c int) graph.Module { return modules.NewFn1(modules.Pure.Recip, c) }),
	"pow":   sourceOp(func(c int) graph.Module { return modules.NewFn2(modules.Pure.Pow, c) }),
	"^":     sourceOp(func(c int) graph.Module { return modules.NewFn2(modules.Pure.Pow, c) }),
	"cos":   sourceOp(func(c int) graph.Module { return modules.NewFn1(modules.Pure.Cos, c) }),
	"sin":   sourceOp(func(c int) graph.Module { return modules.NewFn1(modules.Pure.Sin, c) }),
	"m2f":       sourceOp(func(c int) graph.Module { return modules.NewFn1(modules.Pure.MidiToFreq, c) }),
	"quantize":  sourceOp(func(c int) graph.Module { return modules.NewFn2(modules.Pure.Quantize, c) }),
	"q":         sourceOp(func(c int) graph.Module { return modules.NewFn2(modules.Pure.Quantize, c) }),
	"range":     sourceOp(func(c int) graph.Module { return modules.NewFn3(modules.Pure.Range, c) }),
	"r":         sourceOp(func(c int) graph.Module { return modules.NewFn3(modules.Pure.Range, c) }),
	"round":     sourceOp(func(c int) graph.Module { return modules.NewFn1(modules.Pure.Round, c) }),
	"unit":      sourceOp(func(c int) graph.Module { return modules.NewFn1(modules.Pure.Unit, c) }),
	"rectangle": sourceOp(func(c int) graph.Module { return modules.NewFn2(modules.Pure.Rectangle, c) }),
	"cheb2":     sourceOp(func(c int) graph.Module { return modules.NewFn1(modules.Pure.Cheb2, c) }),
	"cheb3":     sourceOp(func(c int) graph.Module { return modules.NewFn1(modules.Pure.Cheb3, c) }),
	"cheb4":     sourceOp(func(c int) graph.Module { return modules.NewFn1(modules.Pure.Cheb4, c) }),
	"cheb5":     sourceOp(func(c int) graph.Module { return modules.NewFn1(modules.Pure.Cheb5, c) }),
	"cheb6":     sourceOp(func(c int) graph.Module { return modules.NewFn1(modules.Pure.Cheb6, c) }),

	// "w" is Phasor, not WhiteNoise: scenario 6's "100 w cos" sources a
	// Phasor's frequency from the popped constant.
	"w":        srOp(func(c int, sr float64) graph.Module { return modules.NewPhasor(sr, c) }),
	"phasor":   srOp(func(c int, sr float64) graph.Module { return modules.NewPhasor(sr, c) }),
	"saw":      srOp(func(c int, sr float64) graph.Module { return modules.NewPhasor0(sr, c) }),
	"phasor0":  srOp(func(c int, sr float64) graph.Module { return modules.NewPhasor0(sr, c) }),
	"s":        srOp(func(c int, sr float64) graph.Module { return modules.NewOsc(modules.OscSine, sr, c) }),
	"osc":      srOp(func(c int, sr float64) graph.Module { return modules.NewOsc(modules.OscSine, sr, c) }),
	"t":        srOp(func(c int, sr float64) graph.Module { return modules.NewOsc(modules.OscTriangle, sr, c) }),
	"sine":     srOp(func(c int, sr float64) graph.Module { return modules.NewOscPhase(modules.OscSine, sr, c) }),
	"tri":      srOp(func(c int, sr float64) graph.Module { return modules.NewOscPhase(modules.OscTriangle, sr, c) }),
	"triangle": srOp(func(c int, sr float64) graph.Module { return modules.NewOscPhase(modules.OscTriangle, sr, c) }),
	"oscphase": srOp(func(c int, sr float64) graph.Module { return modules.NewOscPhase(modules.OscSine, sr, c) }),
	// "p"/"pulse" are Pulse, not Parameter; the parameterized Parameter
	// token is "param:K" below.
	"p":          srOp(func(c int, sr float64) graph.Module { return modules.NewPulse(sr, c) }),
	"pulse":      srOp(func(c int, sr float64) graph.Module { return modules.NewPulse(sr, c) }),
	"lpf":        srOp(func(c int, sr float64) graph.Module { return modules.NewLPF(sr, c) }),
	"lowpass":    srOp(func(c int, sr float64) graph.Module { return modules.NewLPF(sr, c) }),
	"hpf":        srOp(func(c int, sr float64) graph.Module { return modules.NewHPF(sr, c) }),
	"highpass":   srOp(func(c int, sr float64) graph.Module { return modules.NewHPF(sr, c) }),
	"l":          srOp(func(c int, sr float64) graph.Module { return modules.NewBiQuad(modules.BiQuadLowpass, sr, c) }),
	"bqlpf":      srOp(func(c int, sr float64) graph.Module { return modules.NewBiQuad(modules.BiQuadLowpass, sr, c) }),
	"h":          srOp(func(c int, sr float64) graph.Module { return modules.NewBiQuad(modules.BiQuadHighpass, sr, c) }),
	"bqhpf":      srOp(func(c int, sr float64) graph.Module { return modules.NewBiQuad(modules.BiQuadHighpass, sr, c) }),
	"delay":      srOp(func(c int, sr float64) graph.Module { return modules.NewDelay(sr, 2, c) }),
	"feedback":   srOp(func(c int, sr float64) graph.Module { return modules.NewFeedback(sr, 2, c) }),
	"m":          srOp(func(c int, sr float64) graph.Module { return modules.NewMetro(sr, c) }),
	"metro":      srOp(func(c int, sr float64) graph.Module { return modules.NewMetro(sr, c) }),
	"dm":         srOp(func(c int, sr float64) graph.Module { return modules.NewDMetro(sr, c) }),
	"dmetro":     srOp(func(c int, sr float64) graph.Module { return modules.NewDMetro(sr, c) }),
	"mh":         srOp(func(c int, sr float64) graph.Module { return modules.NewMetroHold(sr, c) }),
	"metrohold":  srOp(func(c int, sr float64) graph.Module { return modules.NewMetroHold(sr, c) }),
	"dmh":        srOp(func(c int, sr float64) graph.Module { return modules.NewDMetroHold(sr, c) }),
	"dmetrohold": srOp(func(c int, sr float64) graph.Module { return modules.NewDMetroHold(sr, c) }),
	"impulse":    srOp(func(c int, sr float64) graph.Module { return modules.NewImpulse(sr, c) }),

	// Yin's pitch-tracking module was explicitly dropped from scope;
	// the grammar still recognizes the token so a program naming it
	// fails with a specific "unsupported", not a generic UnknownToken.
	"yin": nil,

	// Parameterized tokens: "param:2" reads external parameter lane 2,
	// "convm:5" is a 5-tap dynamic convolution, "zip:3" zips 3 mono
	// sources into one 3-channel node.
	"param": func(tok Token, idx, channels int, sr float64) (stack.Op, error) {
		n, err := argInt(tok, idx)
		if err != nil {
			return nil, err
		}
		return stack.Push{Module: modules.NewParameter(n, channels)}, nil
	},
	"convm": func(tok Token, idx, channels int, sr float64) (stack.Op, error) {
		n, err := argInt(tok, idx)
		if err != nil {
			return nil, err
		}
		return stack.Push{Module: modules.NewConvolutionM(n, channels)}, nil
	},
	"zip": func(tok Token, idx, channels int, sr float64) (stack.Op, error) {
		n, err := argInt(tok, idx)
		if err != nil {
			return nil, err
		}
		return stack.Push{Module: modules.NewZip(n)}, nil
	},
}

// Compile tokenizes and builds program into a ready-to-sample Graph with
// the given channel count, sample rate, and external input width.
// Grounded on audio_stack/src/lib.rs's parse_graph entry point.
func Compile(program string, channels int, sr graph.SampleRate, width int) (*graph.Graph, error) {
	hz := float64(sr)

	tokens := tokenize(program)
	ops := make([]stack.Op, 0, len(tokens))

	for i, tok := range tokens {
		if v, err := strconv.ParseFloat(tok.Name, 64); err == nil {
			ops = append(ops, stack.Push{Module: modules.NewConstant(v, channels)})
			continue
		}

		b, known := symbols[tok.Name]
		if !known {
			return nil, &ParseError{Kind: UnknownToken, Index: i, Token: tok.Name}
		}
		if b == nil {
			return nil, &ErrUnsupportedToken{Index: i, Token: tok.Name}
		}

		op, err := b(tok, i, channels, hz)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}

	g, err := stack.Build(ops, channels, width)
	if err != nil {
		log.Debug().Err(err).Str("program", program).Msg("graph build failed")
		return g, err
	}
	return g, nil
}
