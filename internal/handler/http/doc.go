// Package http implements the HTTP transport layer of the API.
// It provides middleware, route handlers, and request/response utilities
// for the REST surface. Authentication, logging, tracing, and metrics
// concerns are all handled at this layer before requests are forwarded to
// the service layer.
package http
