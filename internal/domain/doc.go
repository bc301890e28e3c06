// Package domain contains the core entities of the documentation pipeline:
// the visit note submitted by a nurse, the prompt built from it, the
// generated result, and the error taxonomy shared by every layer.
//
// Nothing in this package is persisted; every value lives for the duration
// of a single request.
package domain
