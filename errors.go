package affect

import (
	"errors"
	"fmt"
)

// ErrNoAssociation reports that an external lookup returned definitions but
// none of them carried any emotional signal. It marks an empty outcome, not
// a failure: callers treat it as "nothing to add".
var ErrNoAssociation = errors.New("affect: no emotion association found")

// InvalidInputError reports input the engine refuses to process, with the
// offending field and the reason.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("affect: invalid %s: %s", e.Field, e.Reason)
}

// ExternalSourceError wraps a failure talking to an external dictionary
// source. The word and source survive so batch runs can log which lookups
// were skipped.
type ExternalSourceError struct {
	Source string
	Word   string
	Err    error
}

func (e *ExternalSourceError) Error() string {
	return fmt.Sprintf("affect: %s lookup for %q failed: %v", e.Source, e.Word, e.Err)
}

func (e *ExternalSourceError) Unwrap() error {
	return e.Err
}

// ConsistencyError guards internal invariants. Seeing one means a
// programming defect, not bad input: for example, a lexicon writer observing
// a snapshot swap it did not perform.
type ConsistencyError struct {
	Op     string
	Detail string
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("affect: consistency violation in %s: %s", e.Op, e.Detail)
}
