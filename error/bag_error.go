package error

type ErrorType int

const (
	CapacityExceeded ErrorType = iota
	InvalidCapacity
	ReportError
	ConfigError
)

// Sentinels for errors.Is. They match any *Error of the same type regardless
// of its message.
var (
	ErrCapacityExceeded = &Error{Type: CapacityExceeded}
	ErrInvalidCapacity  = &Error{Type: InvalidCapacity}
	ErrReport           = &Error{Type: ReportError}
	ErrConfig           = &Error{Type: ConfigError}
)

type Error struct {
	Message string
	Type    ErrorType
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	if !ok {
		return false
	}

	if e.Type != t.Type {
		return false
	}

	return t.Message == "" || e.Message == t.Message
}

func New(errorType ErrorType, reason string) *Error {
	error := &Error{}

	switch errorType {
	case CapacityExceeded:
		error.Message = "gobag: Capacity exceeded: " + reason
	case InvalidCapacity:
		error.Message = "gobag: Invalid capacity: " + reason
	case ReportError:
		error.Message = "gobag: Report error: " + reason
	case ConfigError:
		error.Message = "gobag: Config error: " + reason
	default:
		error.Message = "gobag: Unknown error: " + reason
	}

	error.Type = errorType

	return error
}
