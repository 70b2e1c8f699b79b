// Package logger provides a small wrapper around zap to offer:
//   - a global sugared logger with a console encoder,
//   - context helpers (ToContext/FromContext/WithName/WithKV),
//   - level configuration and parsing utilities,
//   - file output for presenters that own the terminal.
//
// Services accept a context and extract the logger from it, so every log
// line carries the component name it was produced by.
package logger
