// Package health provides HTTP handlers for health probes.
//
// This package implements liveness and readiness endpoints compatible with
// Docker, Kubernetes, and 3rd-party monitoring services. Checks are plain
// func(context.Context) error closures, so any dependency can contribute one.
//
// # Quick Start
//
// Register health endpoints on your router:
//
//	r.Get("/healthz", health.LivenessHandler())
//	r.Get("/readyz", health.ReadinessHandler(log, health.Checks{
//	    "upload_root": func(ctx context.Context) error {
//	        _, err := os.Stat(root.Path())
//	        return err
//	    },
//	}))
//
// # Response Formats
//
// By default, handlers respond with plain text for compatibility with probes.
// Request JSON by setting Accept: application/json header or ?format=json:
//
//	curl http://localhost:8080/readyz?format=json
//
// Plain text responses:
//   - 200 OK: "OK"
//   - 503 Service Unavailable: "Service Unavailable"
//
// JSON response structure:
//
//	{
//	  "status": "healthy",
//	  "checks": {
//	    "upload_root": {"status": "healthy"}
//	  }
//	}
//
// Checks run in parallel and share a five second deadline.
package health
