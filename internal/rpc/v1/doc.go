// Package rpc defines the alarm clock gRPC contract: message types, the
// service descriptor, a typed client and the JSON codec the messages travel
// with.
//
// Calls made through AlarmClockClient always select the JSON codec via the
// content subtype, so no protobuf code generation is involved.
package rpc
