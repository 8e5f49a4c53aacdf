package engine

import "fmt"

// State is the position of one swap attempt in the build -> sign -> submit
// sequence. There is no terminal state beyond Submitted; settlement and
// claiming belong to the relayer and the chains.
type State uint8

const (
	Idle State = iota
	Built
	Signed
	Submitted
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Built:
		return "built"
	case Signed:
		return "signed"
	case Submitted:
		return "submitted"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("state-%d", uint8(s))
	}
}

// FailureKind determines which transitions are allowed out of Failed:
// transient failures may retry the identical submission, everything else
// must restart from scratch.
type FailureKind uint8

const (
	FailureNone FailureKind = iota
	FailureValidation
	FailureSigning
	FailureTransient
	FailureRejected
	FailureInternal
)

func (k FailureKind) String() string {
	switch k {
	case FailureNone:
		return "none"
	case FailureValidation:
		return "validation"
	case FailureSigning:
		return "signing"
	case FailureTransient:
		return "transient"
	case FailureRejected:
		return "rejected"
	case FailureInternal:
		return "internal"
	default:
		return fmt.Sprintf("failure-%d", uint8(k))
	}
}

// TransitionError reports an operation called from a state that does not
// allow it. No side effects have happened when it is returned.
type TransitionError struct {
	Op   string
	From State
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s from state %s", e.Op, e.From)
}
