package alldiff

import "errors"

// ErrGroupMismatch reports CountGrouped input whose sets and sizes disagree.
// Test with errors.Is.
var ErrGroupMismatch = errors.New("alldiff: group sets and sizes mismatch")
