/*
Package ranger initializes and manages a signpost app with sane defaults.

# Ranger

The main entrypoint to package ranger is the [Ranger] type.
A [Ranger] ought to be constructed with [New].
It exposes the [*resp.Responder], [*router.Router] and [*dispatch.Dispatcher]
every handler in a signpost app shares.

[*Ranger.Guide] begins a signpost app's web server.
By default, [*Ranger.Guide] listens on :3000.

Upon calling [*Ranger.Guide], all routes configured up to that point are now active.
Stop that web server with [*Ranger.Shutdown],
cancel the context.Context given to [WithContext],
or send a signal [*Ranger.Guide] listens for.

# Configuration

A developer configures a signpost app through environment variables,
optionally collected in a YAML file pointed at by CONFIG_PATH.
Environment variables may also be set in a file called ".env"
found at the same directory the application is executed from.

Here are the available environment variables.
  - BASE_URL: the base URL the application runs on; default: http://localhost:3000
  - CONFIG_PATH: a YAML file holding any of the values below
  - CONTACT_US_EMAIL: the email address end users can reach when something goes wrong
  - CORS_ORIGIN: the origin allowed to make cross-origin requests
  - ENVIRONMENT: the environment the application is running in; default: DEVELOPMENT; cf. [signpost.Environment]
  - LOG_LEVEL: the level at which to begin logging; default: INFO; cf. [logger.LogLevel]
  - PORT: the port the application should listen on; default: :3000
  - SENTRY_DSN: reports errors and panics to Sentry when set
  - SERVER_IDLE_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for idling between requests when using keep-alives; default: 120s
  - SERVER_READ_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for reading HTTP requests; default: 5s
  - SERVER_WRITE_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for writing HTTP responses; default: 5s
  - VIEW_NOT_FOUND_CODE: the status code sent when a logical view has no template; default: 404
  - VIEW_PREFIX: prepended to every logical view name; default: views/
  - VIEW_SUFFIX: appended to every logical view name; default: .tmpl
*/
package ranger
