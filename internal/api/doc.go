// Package api handles incoming HTTP requests for lists and entries. It
// decodes and validates request payloads, calls the todo service and maps
// the outcome to HTTP status codes and JSON bodies.
//
// Status mapping: missing lists or entries answer 404 with an empty body,
// invalid input answers 400, anything unexpected answers 500. Error bodies
// carry a sanitized message and the request's trace ID.
package api
