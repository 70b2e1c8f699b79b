// Package alarm contains core domain types for the alarm business logic.
//
// It defines Alarm (a same-day wake-up time with a ringing flag), Actor (who
// changed the alarm set) and Manager, which owns the ordered alarm
// collection and performs every state transition. Manager never talks to
// notifiers or presenters: callers inspect the values it returns and react.
package alarm
