// Package instance detects other running copies of a binary so the daemon
// can refuse to start twice on one machine.
package instance
