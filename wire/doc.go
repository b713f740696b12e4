// Package wire owns the runtime half of the protocol contract.
//
// Ownership boundary:
// - message framing and the argument builder/cursor
// - the per-connection object table and lease discipline
// - dispatch error types shared with generated code
// - the process-wide trace toggle
package wire
