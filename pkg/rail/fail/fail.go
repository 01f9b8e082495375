package fail

// Kind classifies an Error into one of the closed set of failure categories
// the library distinguishes. The set is deliberately small: anything that is
// not an expected domain outcome is Unexpected.
type Kind int

const (
	Validation Kind = iota
	NotFound
	Conflict
	Unauthorized
	Unexpected
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case NotFound:
		return "not_found"
	case Conflict:
		return "conflict"
	case Unauthorized:
		return "unauthorized"
	default:
		return "unexpected"
	}
}

// Default codes used when a factory is called without an explicit code.
const (
	ValidationCode   = "validation.error"
	NotFoundCode     = "not.found.error"
	ConflictCode     = "conflict.error"
	UnauthorizedCode = "unauthorized.error"
	UnexpectedCode   = "unexpected.error"
)

// Error is an immutable typed failure. It is only created through the
// per-kind factory functions; With* methods return modified copies.
type Error struct {
	kind    Kind
	code    string
	message string
	field   string
}

// NewValidation creates a validation error. The optional second argument
// tags the error with the offending field name, which is how multi-field
// validation responses associate messages with inputs.
func NewValidation(message string, field ...string) Error {
	e := Error{kind: Validation, code: ValidationCode, message: message}
	if len(field) > 0 {
		e.field = field[0]
	}
	return e
}

func NewNotFound(message string) Error {
	return Error{kind: NotFound, code: NotFoundCode, message: message}
}

func NewConflict(message string) Error {
	return Error{kind: Conflict, code: ConflictCode, message: message}
}

func NewUnauthorized(message string) Error {
	return Error{kind: Unauthorized, code: UnauthorizedCode, message: message}
}

func NewUnexpected(message string) Error {
	return Error{kind: Unexpected, code: UnexpectedCode, message: message}
}

func (e Error) Kind() Kind      { return e.kind }
func (e Error) Code() string    { return e.code }
func (e Error) Message() string { return e.message }
func (e Error) Field() string   { return e.field }

// WithCode returns a copy of e carrying the given code.
func (e Error) WithCode(code string) Error {
	e.code = code
	return e
}

// WithField returns a copy of e tagged with the given field name.
func (e Error) WithField(field string) Error {
	e.field = field
	return e
}

// Error implements the error interface.
func (e Error) Error() string {
	return e.code + ": " + e.message
}

// Equals compares by kind, code and message. The field tag is presentation
// metadata and does not take part in identity.
func (e Error) Equals(other Error) bool {
	return e.kind == other.kind && e.code == other.code && e.message == other.message
}
