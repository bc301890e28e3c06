// Package service contains the application use cases. NoteService turns a
// visit note into generated nursing documentation: it validates the input,
// builds the prompt, calls the configured generator and guarantees that
// every failure leaving the package is a classified domain error.
//
// The service depends on the generation.Generator interface only, never on
// a concrete provider, so handlers and tests can supply any implementation.
package service
