// Package bungraph analyzes bidirected genome-variation graphs to discover
// balanced bundles — a generalization of series/parallel decomposition to
// bidirected graphs — and iteratively reduces a graph by collapsing bundles
// and degree-one appendages until no further reduction is possible.
//
// The module is organized the way lvlath organizes its graph algorithms:
// one small leaf package per concern, composed by a thin top layer.
//
//	handle/       — bit-packed oriented node references (handle algebra)
//	bgraph/       — bidirected graph store and traversal
//	scc/          — strongly connected components over bidirected handles
//	bundle/       — balanced-bundle detection and the bundle/side model
//	dtree/        — decomposition-tree data structure
//	reduce/       — the rewrite engine (R1 degree-one elimination, R2 bundle collapse)
//	loader/       — JSON graph loader
//	cmd/bungraph/ — CLI driver
//
//	go get github.com/katalvlaran/bungraph
package bungraph
