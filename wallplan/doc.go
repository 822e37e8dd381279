// Package wallplan turns a spanning tree over a cylindrical grid into a
// per-cell, per-side Wall/Passage classification.
//
// What:
//
//   - Derive is a total pure function: a side is Passage exactly when the
//     tree holds the edge toward that neighbor, otherwise Wall. The cap
//     rows (row 0 North, row rows-1 South) have no neighbor there and
//     stay Wall — they are the cylinder caps.
//   - Plan answers At(row, col) queries, renders itself as wrap-aware
//     ASCII art, and checks passage reachability between two cells.
//
// Why:
//
//   - The geometry builders consume the plan: every Wall side becomes a
//     physical wall segment, every Passage is simply the absence of one.
//   - Symmetry holds by construction: passage state is a property of the
//     undirected edge, so A's side toward B always matches B's side
//     toward A.
//
// Complexity:
//
//   - Derive:   O(rows×cols) time and memory.
//   - Solvable: O(rows×cols) time (BFS over passages).
//   - String:   O(rows×cols) time.
//
// No randomness and no failure modes: Derive is total over a valid
// spanning tree.
package wallplan
