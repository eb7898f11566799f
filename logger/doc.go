/*
Package logger provides logging functionality to a signpost app by defining the required behavior in [Logger]
and providing an implementation of it with [SignpostLogger].

# Overview

The Logger interface outputs messages at certain levels of importance.
LogLevel is the type to use to represent those levels.
[SignpostLogger] accepts a [LogLevel] and only emits messages at or above it.
For example, if initialized with [LogLevelWarn],
only [*SignpostLogger.Warn], [*SignpostLogger.Error], and [*SignpostLogger.Fatal] produce messages.

# SignpostLogger

Log messages emitted by [SignpostLogger] are composed of a few parts:
  - timestamp
  - log level
  - call site
  - message
  - log context

Here's an example:

	2026/04/28 15:55:21 [DEBUG] dispatch/dispatch.go:43 'resolved view' log_context: {"data":{"view":"controller/void"}}

The log context is a JSON-encoded [*LogContext].
It carries data inessential to the message proper,
but provides a fuller picture of the application state at the time of logging.

# SentryLogger

When SENTRY_DSN is set, [New] wraps the [SignpostLogger] in a [SentryLogger],
which additionally ships errors found in a [LogContext] to Sentry.

# SkipLogger

Sometimes, especially with internal packages, the file and line number in a log needs to be configurable.
[SkipLogger] sets the number of frames to skip back in order to reach the desired caller.
*/
package logger
