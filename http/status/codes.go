package status

type (
	Code   uint16
	Status string
)

// The subset of the IANA-registered HTTP status codes this server is able
// to respond with.
// See: https://www.iana.org/assignments/http-status-codes/http-status-codes.xhtml
const (
	OK               Code = 200 // RFC 9110, 15.3.1
	BadRequest       Code = 400 // RFC 9110, 15.5.1
	NotFound         Code = 404 // RFC 9110, 15.5.5
	MethodNotAllowed Code = 405 // RFC 9110, 15.5.6
)

// Text returns a text for the HTTP status code. It returns the empty
// string if the code is unknown.
func Text(code Code) Status {
	switch code {
	case OK:
		return "OK"
	case BadRequest:
		return "Bad Request"
	case NotFound:
		return "Not Found"
	case MethodNotAllowed:
		return "Method Not Allowed"
	default:
		return ""
	}
}
