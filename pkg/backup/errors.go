package backup

import (
	"errors"
	"fmt"
)

// ErrInvalidFormat means the byte stream is not a parseable JSON document.
// Nothing was mutated.
var ErrInvalidFormat = errors.New("backup file is not valid JSON")

// ErrInvalidBackup means the document parsed but is missing required
// top-level fields. Nothing was mutated.
var ErrInvalidBackup = errors.New("file is not a valid MoneyPal backup")

// RestoreError reports a failure during the wholesale-replace sequence.
// Stores are replaced one after another with no joint atomicity, so stages
// before Stage are fully restored and Stage itself may be partially applied.
type RestoreError struct {
	Stage string
	Err   error
}

func (e *RestoreError) Error() string {
	return fmt.Sprintf("restore failed during %s stage (earlier stages are already applied): %v", e.Stage, e.Err)
}

func (e *RestoreError) Unwrap() error {
	return e.Err
}
