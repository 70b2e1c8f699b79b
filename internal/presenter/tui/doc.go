// Package tui is the terminal presenter of the alarm clock.
//
// It shows a digital clock, the next alarm with the time left and the
// ordered alarm list, and relays add and cancel key presses to the
// scheduler. A one-second tick drives alarm checks from the bubbletea event
// loop, so checks never interleave with user actions.
package tui
