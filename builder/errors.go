// SPDX-License-Identifier: MIT

// errors.go — sentinel errors shared by every constructor.

package builder

import "errors"

var (
	// ErrTooFewNodes reports a node count below the constructor's minimum.
	ErrTooFewNodes = errors.New("builder: too few nodes")

	// ErrInvalidProbability reports an edge probability outside [0, 1].
	ErrInvalidProbability = errors.New("builder: probability outside [0,1]")

	// ErrNoChannels reports an empty channel list.
	ErrNoChannels = errors.New("builder: no channels")
)
