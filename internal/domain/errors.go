package domain

import "fmt"

// EmptyInputError is returned before any work starts when an input is blank.
type EmptyInputError struct {
	Field string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("empty input: %s", e.Field)
}

// IncompleteRecordError reports a record lacking a field needed for scoring.
type IncompleteRecordError struct {
	TrackID int64
	Field   string
}

func (e *IncompleteRecordError) Error() string {
	return fmt.Sprintf("record %d: missing field %s", e.TrackID, e.Field)
}

// ProviderError wraps any failure of the metadata provider.
type ProviderError struct {
	ID  string
	Op  string
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s %s: %v", e.Op, e.ID, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
