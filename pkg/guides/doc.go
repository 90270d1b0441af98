// Package guides computes alignment targets from an element's siblings and
// holds the transient guide-line state shown while a gesture snaps.
//
// # Sibling edges
//
// [ComputeSiblingEdges] records, for every other child of the element's
// parent, the left and right offsets (vertical edges) and the top and
// bottom offsets (horizontal edges). The snapshot is taken once when a
// gesture starts; it is not refreshed while the pointer moves.
//
// # Snapping
//
// A candidate edge snaps when it lies within [Threshold] pixels of a
// sibling edge. Edges are tested in array order and the last match wins,
// which is not necessarily the nearest edge. [SnapSpan] tests both edges of
// a moving span (drag); [SnapEdge] tests a single moving edge (resize).
//
// # Guide state
//
// [Guides] holds the snapped line positions in the manipulated element's
// own frame, nil when nothing snapped on that axis. [Engine] bundles the
// per-gesture edge snapshot with the observable guide state and must be
// cleared when the gesture ends.
package guides
