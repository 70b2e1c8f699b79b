// Package client implements the alarmctl commands: add, cancel, list and
// next, each a single call against the alarm clock daemon.
package client
