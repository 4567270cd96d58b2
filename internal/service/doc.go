// Package service contains the application logic behind the HTTP API. It
// orchestrates the list and entry stores (defined in internal/store) to
// implement each request: existence checks, ownership checks and the
// translation of store failures into service errors.
//
// Services receive their stores through constructor injection and never
// depend on a concrete storage implementation. Expected conditions are
// reported as sentinel errors (ErrListNotFound, ErrEntryNotFound,
// ErrEntryNotInList, ErrDuplicateListName) or domain validation errors;
// anything else is wrapped in TodoServiceError so the API layer can answer
// with a generic server error.
package service
