// Package solid maps a maze wall plan and physical dimensions onto two
// printable solid-geometry documents: the inner maze cylinder and the
// outer clearance shell that slides over it.
//
// What:
//
//   - BuildInner composes the inner piece: a core cylinder (optionally
//     hollow), a base platform for print stability, and one wall segment
//     per solid side of the plan. A Passage is the absence of a wall,
//     never a carved primitive.
//   - BuildOuter composes the companion shell: a hollow cylinder whose
//     bore clears the inner piece's outer radius by a fixed gap, plus a
//     base platform and an inward guide tooth near the top.
//   - Layout and ShellRadii expose the derived physical spans so the
//     scaling relationships stay testable.
//
// Why:
//
//   - The two pieces print separately and fit together: the maze track
//     runs between the inner piece's walls and the shell's bore.
//
// Shared walls are emitted exactly once: each cell contributes its East
// and South walls, plus its North wall on the top row only — the wrap
// makes every West boundary some cell's East boundary, and every North
// boundary below the top row is the row above's South boundary.
//
// Determinism: given one plan and one set of dimensions, the emitted
// documents are byte-identical run to run (row-major wall order, fixed
// number formatting).
//
// Tolerances:
//
// Clearance, minimum shell wall, wall depth, and base platform sizing are
// named print-tolerance constants, not algorithmic values; see types.go.
//
// Errors:
//
//   - ErrInvalidDimension: non-positive height or circumference.
//   - ErrPlanNil: BuildInner received a nil plan.
package solid
