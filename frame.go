package graph

import "zikichombo.org/sound/freq"

// Sample is the canonical numeric type for all internal arithmetic (§3:
// "internal arithmetic is 64-bit").
type Sample = float64

// Frame is a contiguous ordered sequence of per-channel samples. The engine
// and every Module share this representation both for a single node's
// output and for the flat, channel-major/input-minor packing buffer handed
// to Module.Sample (§4.2).
type Frame []Sample

// SampleRate is the fixed sample rate shared by a Graph and all of its
// modules. Reusing the teacher's own dependency (zikichombo.org/sound/freq)
// keeps the one real third-party type the teacher relied on wired into the
// rewritten core instead of dropped in favor of a bare uint32.
type SampleRate = freq.T

// copyFrame grows dst to len(src) if needed and copies src into it,
// returning the (possibly reallocated) slice. Nothing in the package calls
// it; in particular the sampling hot path does not.
func copyFrame(dst Frame, src Frame) Frame {
	if cap(dst) < len(src) {
		dst = make(Frame, len(src))
	}
	dst = dst[:len(src)]
	copy(dst, src)
	return dst
}
