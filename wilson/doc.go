// Package wilson samples a uniform spanning tree over a cylindrical grid
// using Wilson's loop-erased random-walk algorithm, producing a perfect
// maze: exactly one simple path between any two cells.
//
// What:
//
//   - Generate runs Wilson's algorithm over a *cylgrid.Grid and returns an
//     immutable SpanningTree covering every cell.
//   - SpanningTree records one parent per non-root cell and answers
//     undirected edge queries for wall derivation.
//   - Options select the random source, the root cell, and a defensive
//     step cap.
//
// Why:
//
//   - Unbiasedness: Wilson's algorithm samples uniformly among all
//     spanning trees of the graph, unlike recursive backtracking and
//     other biased growers.
//   - Determinism: the random source is threaded explicitly, so a fixed
//     seed reproduces a bit-identical tree.
//
// Algorithm (loop-erased random walk):
//
//  1. Mark the root cell in-tree.
//  2. From each remaining cell (scanned in row-major order), walk to
//     uniformly random neighbors until the walk hits the tree. Whenever
//     the walk revisits a cell on its own path, truncate the path back
//     to that cell's first occurrence (loop erasure).
//  3. Commit the loop-free path: each cell's parent is its successor on
//     the path, and every path cell joins the tree.
//
// Termination is almost-surely finite on any finite connected graph; a
// generous step cap guards against a pathological random source and
// surfaces as ErrGeneratorStalled rather than silently retrying.
//
// Complexity:
//
//   - Expected O(τ) total walk steps, where τ is the mean hitting time of
//     the grid graph; loop erasure is O(1) amortized per step via a
//     position index. Memory: O(rows×cols).
//
// Errors:
//
//   - ErrGridNil: nil grid passed to Generate.
//   - ErrOptionViolation: invalid option (root outside the grid,
//     negative step cap).
//   - ErrGeneratorStalled: defensive step cap exceeded.
package wilson
