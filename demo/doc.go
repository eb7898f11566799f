/*
Package demo is a signpost app showing how what a handler returns decides how it is answered.

Every handler on [ReturnTypes] lives under /controller/:

  - GET the base renders the view index, linking to every handler below
  - GET void renders the view named after its path: controller/void
  - GET string renders the view Yoseph
  - GET stringWithCommandObject binds name and age into a [Person], then renders Yoseph
  - GET returnStringForRedirection redirects to /controller/redirect
  - POST returnStringForForward forwards, still a POST, to /controller/forward
  - GET returnJavaObject serializes a [Person] as JSON or XML
  - GET returnResponseEntity writes a fixed status, header and body
  - GET redirect renders the view redirect
  - POST forward renders the view forward

Mount them with [ReturnTypes.Routes] on a router whose prefix matches the Controller's base.
*/
package demo
