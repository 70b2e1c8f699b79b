// Package server runs the alarm clock daemon: a gRPC endpoint in front of a
// scheduler that checks alarms once per second and rings the configured
// notifiers.
package server
