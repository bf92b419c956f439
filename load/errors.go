// errors.go — sentinel errors for CSV ingestion.

package load

import "errors"

// ErrHeader reports a header row that does not name the required
// columns, or an input with no header at all.
var ErrHeader = errors.New("load: unusable header")

// ErrRecord reports a data row that is too short or carries an empty
// source, target or channel field.
var ErrRecord = errors.New("load: malformed record")

// ErrCount reports a count field that is not a positive finite number.
var ErrCount = errors.New("load: invalid count")
