// Package integration holds end-to-end tests that run the daemon in-process
// and talk to it over gRPC.
package integration
