package parser

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/indigo-web/statico/http"
	"github.com/indigo-web/statico/http/status"
	"github.com/indigo-web/statico/internal/lines"
	"github.com/indigo-web/statico/kv"
	"github.com/scott-ainsworth/go-ascii"
)

// Parse consumes the line sequence of a single connection and assembles a
// request out of it. Nothing beyond the header block is ever read.
func Parse(lr *lines.Reader) (*http.Request, error) {
	line, err := lr.Next()
	if err != nil {
		return nil, status.ErrMissingRequestLine
	}

	request := http.NewRequest()
	request.Method, request.Path, err = parseRequestLine(line)
	if err != nil {
		return nil, err
	}

	for {
		line, err = lr.Next()
		if err != nil {
			return request, nil
		}

		if err = parseHeaderLine(request.Headers, line); err != nil {
			return nil, err
		}
	}
}

// parseRequestLine splits the start line into exactly three tokens. Any run
// of blanks counts as one separator, so a client sloppy with its spaces is
// still understood. The protocol token is deliberately left unvalidated:
// its only job here is to be present.
func parseRequestLine(line []byte) (method, path string, err error) {
	if !isASCII(line) {
		return "", "", malformed(status.ErrMalformedRequestLine, line)
	}

	tokens := bytes.Fields(line)
	if len(tokens) != 3 {
		return "", "", malformed(status.ErrMalformedRequestLine, line)
	}

	return strings.ToUpper(string(tokens[0])), string(tokens[1]), nil
}

func parseHeaderLine(headers *kv.Storage, line []byte) error {
	if !isASCII(line) {
		return malformed(status.ErrMalformedHeaderLine, line)
	}

	colon := bytes.IndexByte(line, ':')
	if colon == -1 {
		return malformed(status.ErrMalformedHeaderLine, line)
	}

	key := string(line[:colon])
	value := strings.TrimLeft(string(line[colon+1:]), " \t")
	headers.Set(key, value)

	return nil
}

// isASCII reports whether the line consists of printable ASCII only.
// Horizontal tabs get a pass, as they legitimately appear inside header
// values.
func isASCII(line []byte) bool {
	for i := 0; i < len(line); i++ {
		if !ascii.IsPrint(line[i]) && line[i] != '\t' {
			return false
		}
	}

	return true
}

// malformed attaches the offending line to the error kind, so the operator
// can see what exactly the client sent.
func malformed(kind error, line []byte) error {
	return fmt.Errorf("%w: %q", kind, line)
}
