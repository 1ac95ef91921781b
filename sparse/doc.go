// Package sparse provides a state-set backing built on Roaring bitmaps.
//
// It suits very large universes in which only a few states are live at a
// time: memory grows with the members rather than the universe, and
// IsDisjoint between two sparse sets only touches containers present in both.
package sparse
