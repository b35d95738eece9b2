package outbound

import "errors"

// ErrNotFound is returned by the store ports when a record does not exist.
// Mid-pipeline it is fatal for the running stage.
var ErrNotFound = errors.New("record not found")

// ErrTransient marks collaborator failures caused by infrastructure trouble
// (network errors, service 5xx). The queue layer retries jobs that fail with
// it; anything else is a business failure reported on the document record
// immediately.
var ErrTransient = errors.New("transient collaborator failure")
