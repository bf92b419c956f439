package equivalence

import "errors"

// Package sentinels. Test with errors.Is.
var (
	// ErrNilGraph reports a nil graph argument.
	ErrNilGraph = errors.New("equivalence: nil graph")

	// ErrSeedLength reports a seed whose length is not the node count.
	ErrSeedLength = errors.New("equivalence: seed length does not match node count")
)
