// Package rastergrid implements core.Grid for regular raster elevation
// grids with 8-connectivity (4 cardinal + 4 diagonal neighbors).
//
// What:
//
//   - Grid wraps a rectangular [][]float64 elevation surface.
//   - Nodes are numbered row-major: id = y·Width + x.
//   - Perimeter nodes start as fixed-value (open) boundaries, interior
//     nodes as core; SetStatus reclassifies individual nodes.
//   - Link ids encode (node, neighbor slot); cardinal links have length
//     Spacing, diagonal links Spacing·√2; cell area is Spacing².
//
// Why:
//
//   - pitfill and chi consume any core.Grid; this package supplies the
//     standard raster collaborator so the algorithms are usable (and
//     testable) without an external grid engine.
//
// Complexity:
//
//   - New: O(W×H) time and memory (deep copy + neighbor precomputation).
//   - All lookups (Status, Neighbors, LinkLength, CellArea): O(1).
//
// Options:
//
//   - Options.Spacing: node spacing in map units (default 1).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadSpacing: non-positive node spacing.
package rastergrid
