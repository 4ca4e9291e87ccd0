package modules

import (
	"math"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/sndgraph/engine"
)

// SpectralTransform is a 1-input overlap-add STFT processor: it windows
// W-sample frames with a Hann window, forward-transforms with an FFT,
// lets the supplied reshape function modify the spectrum, inverse-transforms
// and overlap-adds the result back at a hop size P that must divide W.
// Grounded on audio_modules/src/spectral_transform.rs, which performed the
// same window/FFT/reshape/IFFT/overlap-add cycle; this port uses
// gonum's FFT (dsp/fourier) since no Go FFT package was present in the
// retrieved pack.
//
// Only graph channel 0 is transformed, matching the mono convention the
// other single-source modules in this package (Pan1, Zip) also use.
type SpectralTransform struct {
	w, p int
	hop  int
	fft  *fourier.CmplxFFT
	win  []float64

	ring    []float64 // W-sample input ring buffer
	ringPos int
	since   int // frames since last hop fired

	outBuf []float64 // overlap-add accumulator, length W
	outPos int

	reshape func([]complex128)

	out graph.Frame
}

// NewSpectralTransform builds a SpectralTransform with window size w, hop
// size p (p must divide w), and a reshape callback applied to the complex
// spectrum between the forward and inverse transforms.
func NewSpectralTransform(w, p int, reshape func([]complex128)) *SpectralTransform {
	win := make([]float64, w)
	for i := range win {
		win[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(w-1))
	}
	return &SpectralTransform{
		w: w, p: p, hop: p,
		fft:     fourier.NewCmplxFFT(w),
		win:     win,
		ring:    make([]float64, w),
		outBuf:  make([]float64, w),
		reshape: reshape,
		out:     make(graph.Frame, 1),
	}
}

func (s *SpectralTransform) Inputs() int        { return 1 }
func (s *SpectralTransform) Output() graph.Frame { return s.out }

func (s *SpectralTransform) Sample(in graph.Frame) {
	s.ring[s.ringPos] = float64(in[0])
	s.ringPos = (s.ringPos + 1) % s.w

	s.out[0] = graph.Sample(s.outBuf[s.outPos])
	s.outBuf[s.outPos] = 0
	s.outPos = (s.outPos + 1) % s.w

	s.since++
	if s.since >= s.hop {
		s.since = 0
		s.fireFrame()
	}
}

func (s *SpectralTransform) fireFrame() {
	windowed := make([]complex128, s.w)
	for i := 0; i < s.w; i++ {
		idx := (s.ringPos + i) % s.w
		windowed[i] = complex(s.ring[idx]*s.win[i], 0)
	}

	spec := s.fft.Coefficients(nil, windowed)
	if s.reshape != nil {
		s.reshape(spec)
	}
	inv := s.fft.Sequence(nil, spec)

	scale := 1 / float64(s.w)
	for i := 0; i < s.w; i++ {
		v := real(inv[i]) * scale * s.win[i]
		idx := (s.outPos + i) % s.w
		s.outBuf[idx] += v
	}
}
