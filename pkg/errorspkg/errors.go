// Package errorspkg provides common app errors.
package errorspkg

import "errors"

var (
	// ErrInternal indicates internal server error.
	ErrInternal = errors.New("internal")
	// ErrBadRequest indicates a request body that could not be decoded.
	ErrBadRequest = errors.New("bad request")
)
