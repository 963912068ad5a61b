// SPDX-License-Identifier: MIT

// Package stepper is the single entry point for step-wise algorithm runs.
//
// Initialize validates the inputs, freezes the graph and returns the initial
// *State for one of five algorithms. (*State).Step advances it by one unit of
// work and returns a fresh value; the receiver is never changed, so any State
// may be kept for history or replay. Dispatch is a switch over the closed
// Algorithm tag, and an out-of-range tag panics.
//
// The pseudocode annotator (Listing, Line) maps a State's PC to the text of
// the line the algorithm just executed.
//
//	st, err := stepper.Initialize(stepper.Dijkstra, g, 0, stepper.WithEnd(5))
//	if err != nil {
//		return err // wraps ErrInvalidNode for a bad start or end
//	}
//	for !st.Done() {
//		st, snap, _ = st.Step()
//		render(snap)
//	}
package stepper
