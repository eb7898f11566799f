/*
Package router defines how an HTTP server routes requests to handlers.

[*Router] utilizes [mux.Router] for its implementation,
and so functions as thin wrapper around that package.

A [Router] leverages a standardized data model - a [Route] -
when registering how requests should be routed.
A path and an HTTP method comprise a [Route].
An implementation of [http.Handler] is the function called when a request matches a Route.
Before a request gets to a handler, though,
any middlewares added to the Route are called in the order they appear.
A Route naming required Params rejects requests missing them before any handler runs.

It is often the case that many routes for a web server share identical middleware stacks,
which aid in directing, redirecting, or adding contextual information to a request.
Thus, a [Router] provides conveniences for making a single call to register many logically associated Routes.

[Router.Forward] re-dispatches a request being handled to another path on the same Router.
No response reaches the client in between, the client's address bar does not change,
and the forwarded handler sees the same request context, and so the same signpost.Attributes.
*/
package router
