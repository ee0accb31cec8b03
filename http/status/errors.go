package status

type HTTPError struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return HTTPError{
		Code:    code,
		Message: message,
	}
}

func (h HTTPError) Error() string {
	return h.Message
}

var (
	// parsing errors. All of them render into a 400, the distinction exists
	// solely for logs.
	ErrMissingRequestLine   = NewError(BadRequest, "missing request line")
	ErrMalformedRequestLine = NewError(BadRequest, "malformed request line")
	ErrMalformedHeaderLine  = NewError(BadRequest, "malformed header line")

	ErrBadRequest       = NewError(BadRequest, "bad request")
	ErrNotFound         = NewError(NotFound, "not found")
	ErrMethodNotAllowed = NewError(MethodNotAllowed, "method not allowed")
)
