// Package config defines the settings shared by the alarm binaries and
// provides helpers to load, validate and save them in YAML format.
//
// Config holds the daemon gRPC address, polling interval, logging options and
// the notifiers used when an alarm starts ringing.
package config
