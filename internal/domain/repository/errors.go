package repository

import "errors"

// ErrNotFound is returned by every repository when the requested row does not
// exist. Services translate it into their own domain errors.
var ErrNotFound = errors.New("not found")
