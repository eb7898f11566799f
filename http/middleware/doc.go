/*
The middleware package defines what a middleware is in signpost and a set of basic middlewares.

The available middlewares are:
  - CORS
  - ForceHTTPS
  - InjectAttributes
  - InjectIPAddress
  - LogRequest
  - RateLimit
  - ReportPanic
  - RequestID
  - RequireParams

ranger assembles the default chain applied to every request:

	vs := middleware.NewVisitors()
	adpts := []middleware.Adapter{
		middleware.RequestID(),
		middleware.InjectIPAddress(),
		middleware.RateLimit(vs),
		middleware.ForceHTTPS(env),
		middleware.LogRequest(log),
		middleware.CORS(baseURL),
		middleware.InjectAttributes(),
	}
*/
package middleware
