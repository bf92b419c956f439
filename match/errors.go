// errors.go — package sentinels; test with errors.Is.

package match

import "errors"

var (
	// ErrNilGraph reports a nil template or world graph.
	ErrNilGraph = errors.New("match: nil graph")

	// ErrChannelMismatch reports a template channel the world does not have.
	ErrChannelMismatch = errors.New("match: template channel missing from world")

	// ErrCandidateShape reports a seed candidate matrix whose shape is not
	// template nodes by world nodes.
	ErrCandidateShape = errors.New("match: candidate matrix shape mismatch")

	// ErrBitmatShape reports invalid Bitmat dimensions.
	ErrBitmatShape = errors.New("match: invalid bitmat dimensions")
)
