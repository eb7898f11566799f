/*
Package signpost holds what every part of a signpost app shares:
sentinel errors, the Environment an app runs in,
context keys, the per-request Attributes handlers share and log masking.

A signpost app answers each HTTP request by what its handler returns.
See package [github.com/xy-planning-network/signpost/http/dispatch] for those rules
and package [github.com/xy-planning-network/signpost/ranger] to start an app.
*/
package signpost
