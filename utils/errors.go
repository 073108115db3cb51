package utils

import "errors"

// Error taxonomy for the whole service. Wrap with fmt.Errorf("...: %w", ...)
// and branch with errors.Is in handlers.
var (
	// ErrNotFound: missing profile/entry/row. Degrades to an empty payload
	// or 404 depending on the endpoint.
	ErrNotFound = errors.New("not found")
	// ErrValidation: a required request field is missing or malformed (400).
	ErrValidation = errors.New("validation failed")
	// ErrStore: relational store connectivity or query failure (500, logged
	// in full, generic message in the response body).
	ErrStore = errors.New("store failure")
	// ErrTransientSync: profile-sync remote call failed; logged, short
	// backoff, the batch resumes on its next scheduled run.
	ErrTransientSync = errors.New("transient sync failure")
)
