// Package notifier turns alarm transitions into audible or visible feedback.
//
// A Notifier is told when an alarm starts ringing and when it must stop. The
// alarm manager never calls a notifier itself: the scheduler does, once per
// transition. Implementations keep signaling until Silence is called, the
// way a looped alarm sound keeps playing until it is dismissed.
package notifier
