// Package common holds what alarmctl subcommands and the watch loop share:
// the AlarmClockService client with per-call timeouts and detection of the
// calling user for the daemon's audit log.
//
//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common
