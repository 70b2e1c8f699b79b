// Package scheduler drives the alarm manager from a time source and relays
// its transitions to a notifier.
//
// Presenters (the terminal UI and the gRPC daemon) share one Scheduler: it
// is the only place where a fired alarm starts a notifier and a cancelled
// ringing alarm silences it.
package scheduler
