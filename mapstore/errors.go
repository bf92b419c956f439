// errors.go — sentinel errors for the mapping store.

package mapstore

import "errors"

// ErrClosed reports use of a store after Close.
var ErrClosed = errors.New("mapstore: store closed")
