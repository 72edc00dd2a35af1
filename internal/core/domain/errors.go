package domain

import "errors"

var (
	ErrConfigurationMissing = errors.New("backend is not configured")
	ErrValidation           = errors.New("validation failed")
	ErrInvalidEmail         = errors.New("invalid email address")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrDuplicateAccount     = errors.New("email is already registered")
	ErrRateLimited          = errors.New("too many attempts, try again later")
	ErrProvider             = errors.New("backend provider error")
	ErrNotAuthenticated     = errors.New("authentication required")
	ErrBusy                 = errors.New("a submission is already in progress")
	ErrNotFound             = errors.New("not found")
)

var known = []error{
	ErrConfigurationMissing,
	ErrInvalidEmail,
	ErrInvalidCredentials,
	ErrDuplicateAccount,
	ErrRateLimited,
	ErrNotAuthenticated,
	ErrBusy,
	ErrNotFound,
	ErrProvider,
}

// Message is the inline text shown to the user for err. Validation errors
// keep their detail, everything else collapses to the taxonomy message.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Reason
	}
	for _, k := range known {
		if errors.Is(err, k) {
			return k.Error()
		}
	}
	return ErrProvider.Error()
}

// ValidationError is matched by errors.Is(err, ErrValidation).
type ValidationError struct {
	Reason string
}

func NewValidationError(reason string) error {
	return &ValidationError{Reason: reason}
}

func (e *ValidationError) Error() string {
	return ErrValidation.Error() + ": " + e.Reason
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
