package interfaces

import "errors"

// ErrStatusConflict is returned by conditional charge writes when the stored
// status no longer matches the one the caller read.
var ErrStatusConflict = errors.New("charge status changed concurrently")
