package relayer

import (
	"errors"
	"fmt"
)

// TransientError marks transport failures, timeouts and 5xx responses. The
// caller may resubmit the identical envelope with the identical quoteId.
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("transient relayer error: %s", e.Err)
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

func (e *TransientError) Temporary() bool {
	return true
}

// RejectedError marks 4xx responses. The relayer judged the order content
// invalid, so the envelope must be rebuilt before any further attempt.
type RejectedError struct {
	Status int
	Reason string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("relayer rejected order with status %d: %s", e.Status, e.Reason)
}

func (e *RejectedError) Temporary() bool {
	return false
}

func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}

func IsRejected(err error) bool {
	var re *RejectedError
	return errors.As(err, &re)
}
