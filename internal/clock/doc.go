// Package clock supplies the current wall-clock time to the alarm services.
//
// TimeSource abstracts time.Now so schedulers and presenters can be driven by
// a fixed or manually advanced time in tests.
package clock
