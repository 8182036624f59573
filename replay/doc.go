// Package replay turns a finished search trace into a paced animation.
//
// What
//
//   - A Replayer consumes the two sequences produced by astar.FindPath (visited
//     order, then path) and emits them to a Renderer one cell per Tick.
//   - Phases: Idle → ReplayingVisited → ReplayingPath → Idle.
//   - Events:
//   - VisitedEvent      one per non-endpoint cell of the visited order, in order
//   - PathEvent         one per non-endpoint cell of the path, in order
//   - ClearVisitedEvent exactly once, when the visited phase hands over to a
//     non-empty path phase
//   - Endpoint cells (start and end) are consumed but never emitted; the
//     editor draws them itself.
//
// Timing
//
//	The Replayer owns no clock. Whoever hosts it calls Tick at its own cadence:
//	a UI timer, a test loop, or Drive, which ticks on a time.Ticker until the
//	replay finishes or the context is done.
//
// Lifecycle rules
//
//   - Start is accepted only in Idle; while a replay is active it is rejected
//     (returns false) and nothing changes. Cancel first to replace a replay.
//   - Cancel is legal in any phase, drops queued cells and emits nothing.
//   - Tick in Idle is a no-op and may be called any number of times.
//   - Each Tick emits at most two events.
//
// Complexity
//
//   - Start: O(V + P) to copy the sequences.
//   - Tick, Cancel: O(1).
//
// A Replayer is not safe for concurrent use; the host serializes Start, Tick
// and Cancel on one goroutine.
package replay
