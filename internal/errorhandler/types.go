package errorhandler

import (
	pkgErrors "challenge-admin/pkg/errors"
)

// Problem is the resolved form of an error.
type Problem struct {
	Status  int
	Code    pkgErrors.Code
	Message string
	Details []string
	// Cause is the original error; logged, never sent.
	Cause error
}
