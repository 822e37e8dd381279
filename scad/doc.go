// Package scad models a solid-geometry document: an ordered sequence of
// primitive shapes, boolean operations, and transforms, serialized as
// OpenSCAD source text.
//
// What:
//
//   - Node is a sealed tagged-variant type with an explicit discriminant
//     per shape: Cylinder, Cube, Wedge, Union, Difference, Translate,
//     Rotate, Scale. There is no behavioral dispatch — a Node is data.
//   - Document is a write-once ordered list of named parameter
//     assignments followed by statement nodes.
//   - Encode emits deterministic OpenSCAD text: one statement per line,
//     children indented, fixed float formatting. Identical documents
//     always produce byte-identical output.
//
// Why:
//
//   - The maze pipeline produces two printable pieces as OpenSCAD
//     descriptions; a downstream CAD/slicer tool turns them into meshes.
//     Validating or rendering the geometry is that tool's job, not ours.
//
// Complexity:
//
//   - Encode: O(total nodes) time, single pass, no lookahead.
//
// Errors: none in construction; Encode surfaces only the writer's error.
package scad
