package http

import (
	"github.com/indigo-web/statico/kv"
)

// Request represents a single parsed HTTP request. It is constructed once per
// connection by the parser and never mutated afterwards.
type Request struct {
	// Method is always uppercased, no matter how the client spelled it.
	Method string
	// Path is the raw request target exactly as received. It may contain
	// dot-segments or be absolute; sanitizing it is the file server's job,
	// not the parser's.
	Path string
	// Headers keys are normalized to lowercase, values come with leading
	// whitespace stripped.
	Headers *kv.Storage
}

func NewRequest() *Request {
	return &Request{
		Headers: kv.New(),
	}
}
