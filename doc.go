// Package mazemaker generates perfect mazes on the surface of a cylinder
// and turns them into printable solid geometry.
//
// 🚀 What is maze-maker?
//
//	A small, deterministic pipeline from grid topology to OpenSCAD text:
//		• cylgrid  — the rows×cols lattice wrapped horizontally into a cylinder
//		• wilson   — Wilson's loop-erased random walks: an unbiased spanning tree
//		• wallplan — per-cell Wall/Passage sides derived from the tree
//		• scad     — a tagged-variant solid-geometry document + deterministic encoding
//		• solid    — the inner walled cylinder and the outer clearance shell
//
// ✨ Why this shape?
//
//   - Unbiased mazes – Wilson's algorithm samples uniformly among all
//     spanning trees, so no corridor style is over-represented
//   - Reproducible – randomness is threaded explicitly; one seed, one maze,
//     byte-identical geometry
//   - No hidden state – each stage consumes the previous stage's immutable
//     output and nothing reads backward
//
// Data flows strictly forward:
//
//	cylgrid.Grid → wilson.SpanningTree → wallplan.Plan → solid → two scad.Documents
//
// The cmd/maze-maker command wires the stages to flags and files; the
// emitted .scad files are meant for a standard OpenSCAD interpreter and a
// slicer — rendering and mesh validation live there, not here.
package mazemaker
