// Package modules is the DSP module library (§4.6): every entry is a small
// struct satisfying graph.Module, grounded one-for-one on the per-module
// Rust sources retrieved alongside this repo (audio_modules/src/*.rs).
package modules

import "math"

// Pure collects the stateless scalar functions the text front-end's symbol
// table wires into Fn1/Fn2/Fn3 nodes (§6 Table 1). They correspond to the
// pure:: helpers the original Rust crate's function.rs called but whose
// source was not part of the retrieval pack; every name below is
// reconstructed from its call site in audio_stack/src/lib.rs.
var Pure = struct {
	Add, Sub, Mul, Div     func(x, y float64) float64
	Recip                  func(x float64) float64
	Pow                    func(x, y float64) float64
	Cheb2, Cheb3, Cheb4    func(x float64) float64
	Cheb5, Cheb6           func(x float64) float64
	Cos, Sin               func(x float64) float64
	Sine, Triangle         func(phase float64) float64
	MidiToFreq             func(note float64) float64
	Quantize               func(x, step float64) float64
	Range                  func(x, lo, hi float64) float64
	Round                  func(x float64) float64
	Unit                   func(x float64) float64
	Rectangle              func(phase, width float64) float64
}{
	Add:   func(x, y float64) float64 { return x + y },
	Sub:   func(x, y float64) float64 { return x - y },
	Mul:   func(x, y float64) float64 { return x * y },
	Div:   func(x, y float64) float64 { return x / y },
	Recip: func(x float64) float64 { return 1 / x },
	Pow:   math.Pow,
	// Chebyshev polynomials of the first kind, evaluated directly rather
	// than via the trig identity so they stay defined for |x| > 1.
	Cheb2: func(x float64) float64 { return 2*x*x - 1 },
	Cheb3: func(x float64) float64 { return x * (4*x*x - 3) },
	Cheb4: func(x float64) float64 { return 8*x*x*x*x - 8*x*x + 1 },
	Cheb5: func(x float64) float64 { return x * (16*x*x*x*x - 20*x*x + 5) },
	Cheb6: func(x float64) float64 { return 32*x*x*x*x*x*x - 48*x*x*x*x + 18*x*x - 1 },
	Cos:   math.Cos,
	Sin:   math.Sin,
	// Sine/Triangle take a phasor's [-1, 1) output and shape it into the
	// corresponding waveform; Osc/OscPhase compose Phasor(0) with these.
	Sine: func(phase float64) float64 { return math.Sin(phase * math.Pi) },
	Triangle: func(phase float64) float64 {
		return 2*math.Abs(2*(phase/2-math.Floor(phase/2+0.5))) - 1
	},
	MidiToFreq: func(note float64) float64 { return 440 * math.Pow(2, (note-69)/12) },
	Quantize:   func(x, step float64) float64 { return math.Round(x/step) * step },
	Range: func(x, lo, hi float64) float64 {
		return lo + (x+1)/2*(hi-lo)
	},
	Round: math.Round,
	Unit:  func(x float64) float64 { return (x + 1) / 2 },
	// Rectangle turns a phasor phase and a [0,1] duty cycle into a
	// pulse wave that is either 1 or -1, used by Pulse.
	Rectangle: func(phase, width float64) float64 {
		w := 2*width - 1
		if phase < w {
			return 1
		}
		return -1
	},
}
