package match

import "errors"

// ErrorKind separates malformed/illegal actions from content rejections.
type ErrorKind uint8

const (
	InvalidAction ErrorKind = iota + 1
	ValidationRejection
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidAction:
		return "invalid_action"
	case ValidationRejection:
		return "validation_rejection"
	default:
		return "unknown"
	}
}

// ActionError is returned for every refused action. The state the action was
// applied to is always left unchanged.
type ActionError struct {
	Kind   ErrorKind
	Reason string
}

func (e *ActionError) Error() string { return e.Reason }

// Invalid declares an InvalidAction error.
func Invalid(reason string) *ActionError {
	return &ActionError{Kind: InvalidAction, Reason: reason}
}

// Rejected declares a ValidationRejection error.
func Rejected(reason string) *ActionError {
	return &ActionError{Kind: ValidationRejection, Reason: reason}
}

// KindOf extracts the ErrorKind from err, or 0 when err is not an ActionError.
func KindOf(err error) ErrorKind {
	var ae *ActionError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return 0
}

// IsInvalid reports whether err is an InvalidAction.
func IsInvalid(err error) bool { return KindOf(err) == InvalidAction }

// IsRejected reports whether err is a ValidationRejection.
func IsRejected(err error) bool { return KindOf(err) == ValidationRejection }

var (
	ErrGameOver      = Invalid("game is over")
	ErrNotYourTurn   = Invalid("not your turn")
	ErrUnknownPlayer = Invalid("unknown player")
)
