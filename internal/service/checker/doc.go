// Package checker implements alarmctl watch: it polls the daemon once per
// second and reports alarms as they start ringing and as they go away.
package checker
