// Package lvlterra is your in-memory toolkit for analyzing terrain
// surfaces as graphs — depression filling and channel-steepness (chi)
// indexing over node/link elevation networks.
//
// 🚀 What is lvlterra?
//
//	A modern, pure-Go library that brings together:
//		• Core primitives: boundary statuses, grid interfaces, flow networks
//		• Raster grids: 8-connected elevation rasters with link lengths & cell areas
//		• Depression filling: priority-flood with a plateau fast path (Barnes et al. 2014)
//		• Channel steepness: the chi index of Perron & Royden (2013), with uniform
//		  or trapezoidal integration along the drainage network
//
// ✨ Why choose lvlterra?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – explicit typed inputs, sentinel errors, in-code docs
//   - Pure Go – no cgo, no hidden deps
//   - Faithful – semantics match the landscape-evolution literature
//
// Under the hood, everything is organized under four subpackages:
//
//	core/       — shared terrain-graph types: BoundaryStatus, Grid, FlowNetwork
//	rastergrid/ — a concrete raster implementation of core.Grid
//	pitfill/    — priority-flood depression filling of elevation surfaces
//	chi/        — channel steepness (chi) indexing along flow networks
//
// Quick ASCII example:
//
//	    9 9 9 9
//	    9 2 9 0   ← a pit (2) behind a rim (9), draining to an open edge (0)
//	    9 9 9 9
//
//	pitfill raises the pit to its spill level; chi then integrates
//	(A0/A)^θ upstream along the routed drainage network.
//
// Dive into each package's doc.go for full invariants, examples, and
// complexity notes.
//
//	go get github.com/katalvlaran/lvlterra
package lvlterra
