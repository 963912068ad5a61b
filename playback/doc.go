// Package playback drives a stepper run manually or on a timer.
//
// A Session owns exactly one run at a time and moves through
//
//	Idle → Ready → Stepping ⇄ Playing → Done
//
// Steps never overlap: manual Step and the play loop serialize on the
// Session mutex, and the loop re-checks a generation token before every tick
// so a Pause or re-Initialize that lands between ticks wins. Pause and Close
// are idempotent.
//
// Observers registered with Subscribe receive every Frame in order. They run
// with the Session lock held and must not call back into the Session; hand
// the frame to a channel or goroutine instead.
package playback
