/*
Package req binds the parameters of an HTTP request to a request record.

A request record is a pointer to a struct whose field names match the
submitted parameters one-to-one through struct tags.
Query and form parameters are matched through "schema" tags;
JSON payloads through "json" tags.
Fields must accept the textual parameter value through a defined conversion,
or binding fails.

After binding, "validate" tags are checked.

The parade of errors that may propagate from either step
are translated to signpost sentinel errors in order to provide a consistent interface
for issues that arise across encoding types.
A value that cannot be converted, like age=notanumber for an int field,
is reported as [ValidationErrors], never silently replaced by a default.
*/
package req
