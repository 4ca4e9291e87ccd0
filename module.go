package graph

// Module is the contract every DSP unit in the graph satisfies (§4.1).
//
// Inputs is fixed once a Module is constructed: a module whose input count
// depends on a construction parameter (e.g. ConvolutionM's kernel size)
// locks that value in at build time and never changes it afterwards.
//
// Output returns an immutable borrow of the Frame the module produced on
// its last Sample call. The returned Frame is only valid until the next
// Sample call on the same module; callers needing a stable copy must copy
// it themselves.
//
// Sample advances the module's internal state by exactly one audio frame.
// For a module with I := Inputs() > 0, input is a flat buffer of length
// I*C laid out channel-major, input-minor as described in package doc and
// §4.2. For a source module (I == 0), input is the engine's external input
// frame, unchanged.
type Module interface {
	// Inputs returns the number of upstream sources this module expects.
	Inputs() int

	// Output returns this module's last-produced Frame.
	Output() Frame

	// Sample advances internal state by one frame given the packed input.
	Sample(input Frame)
}

// Source is a Module with Inputs() == 0: it either reads the engine's
// external input frame unchanged (Input, Parameter) or generates
// autonomously (WhiteNoise, Constant).
//
// Transformer modules have Inputs() > 0. Composition modules (Osc, Pulse,
// Feedback, ...) are built from other Modules internally and expose a
// single Module surface to the graph.
type Source interface {
	Module
}
