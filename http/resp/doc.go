/*
The resp package provides a high-level API for responding to HTTP requests
with an easy way to configure the responses application-wide.

resp provides these ways of responding to an HTTP request:
  - rendering a logical view through HTML templates
  - serializing a structured value as JSON or XML, chosen by content negotiation
  - redirecting
  - writing an explicit status, headers and body verbatim

A logical view name is mapped to a template path by a [ViewNamer].
A view that cannot be found fails with [ErrNotFound],
answered with 404 unless [WithViewNotFoundCode] says otherwise.
*/
package resp
