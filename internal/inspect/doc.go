// Package inspect owns the protocol inspector service.
//
// Ownership boundary:
// - HTTP views over loaded protocol documents
// - service health and readiness
// - request logging and metrics for its own endpoints
//
// The inspector is read-only: it never mutates the documents it serves and
// never participates in generation or dispatch.
package inspect
