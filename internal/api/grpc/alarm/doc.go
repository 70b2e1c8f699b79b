// Package alarm implements the gRPC transport for the alarm clock service.
//
// It adapts domain alarms to wire messages and exposes a server that calls
// into a provided business-service interface.
package alarm
