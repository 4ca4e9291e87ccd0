// Package graph implements a realtime audio synthesis engine organized as a
// directed acyclic graph of sample-rate signal processors ("modules").
//
// Graph is implemented in a 2-tiered fashion, much like an audio plug
// library: there is a topology tier, which manages the node/edge structure
// and the cached traversal order, and a sampling tier, which pushes one
// Frame through every module in that order each time Sample is called.
//
// Topology tier
//
// The topology tier is a node-stable directed graph (Graph). Nodes are
// added with AddNode and never removed individually; Clear discards
// everything at once. Edges are installed with Connect, SetSources, and
// Chain, each of which replaces the sink's entire incoming edge set and
// recomputes the cached topological order.
//
// Sampling tier
//
// The sampling tier implements the computation behind a Module. The main
// interface is Module. Its job is:
//
//  1. to report how many upstream sources it expects (Inputs);
//
//  2. to expose a stable borrow of the Frame it last produced (Output);
//
//  3. to advance its internal state by exactly one audio frame given a
//     flat buffer of its sources' outputs (Sample).
//
// Unlike a block-oriented processing pipeline, a Module never negotiates
// block size: every Sample call advances the graph by exactly one frame,
// and Graph itself satisfies Module so it can be nested as a composite.
package graph
