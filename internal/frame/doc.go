// Package frame schedules work on the UI loop.
//
// A Scheduler owns two kinds of deferred callbacks:
//
//   - frame callbacks (RequestFrame), run on the next Tick, the terminal
//     analogue of requestAnimationFrame;
//   - one-shot timers (AfterFunc), run on the first Tick at or after their
//     deadline.
//
// Every registration returns a Handle. Handles index a slot in the
// scheduler's arena and carry a generation, so cancelling a handle that has
// already fired, or whose slot was reused, is a harmless no-op. Components
// keep their handles and cancel them on teardown.
//
// The scheduler is not safe for concurrent use. It is meant to be driven from
// a single bubbletea Update loop via FrameMsg, see Next and HandleFrame.
package frame
