/*
Package dispatch turns what a handler returns into an HTTP response.

A [Handler] returns a [Result], and the category of that Result alone decides
how the response is produced:

  - [Void]: render the logical view named after the request path
  - [String]: render the logical view it names, unless it carries a prefix
  - [String] prefixed "redirect:": redirect the client to the rest of the string
  - [String] prefixed "forward:": serve the request again at the rest of the string, without the client knowing
  - [Body]: serialize the value as JSON or XML, as the client accepts
  - [Envelope]: write its status, headers and body exactly

[Plan] makes that decision without side effects;
a [Dispatcher] carries it out through a Responder and a Forwarder.
*/
package dispatch
