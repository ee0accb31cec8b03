package parser

import (
	"testing"

	"github.com/dchest/uniuri"
	"github.com/indigo-web/statico/http"
	"github.com/indigo-web/statico/http/status"
	"github.com/indigo-web/statico/internal/lines"
	"github.com/indigo-web/statico/transport/dummy"
	"github.com/stretchr/testify/require"
)

func parse(raw string) (*http.Request, error) {
	return Parse(lines.New(dummy.NewClient([]byte(raw))))
}

func TestParseRequestLine(t *testing.T) {
	t.Run("ordinary GET", func(t *testing.T) {
		request, err := parse("GET /index.html HTTP/1.1\r\n\r\n")
		require.NoError(t, err)
		require.Equal(t, "GET", request.Method)
		require.Equal(t, "/index.html", request.Path)
	})

	t.Run("method is uppercased", func(t *testing.T) {
		request, err := parse("get / http/1.0\r\n\r\n")
		require.NoError(t, err)
		require.Equal(t, "GET", request.Method)
	})

	t.Run("runs of whitespace between tokens", func(t *testing.T) {
		request, err := parse("GET  /index.html   HTTP/1.1\r\n\r\n")
		require.NoError(t, err)
		require.Equal(t, "GET", request.Method)
		require.Equal(t, "/index.html", request.Path)
	})

	t.Run("tab-separated tokens", func(t *testing.T) {
		request, err := parse("GET\t/\tHTTP/1.1\r\n\r\n")
		require.NoError(t, err)
		require.Equal(t, "/", request.Path)
	})

	t.Run("four tokens", func(t *testing.T) {
		_, err := parse("GET /a b HTTP/1.1\r\n\r\n")
		require.ErrorIs(t, err, status.ErrMalformedRequestLine)
	})

	t.Run("two tokens", func(t *testing.T) {
		_, err := parse("GET /\r\n\r\n")
		require.ErrorIs(t, err, status.ErrMalformedRequestLine)
	})

	t.Run("non-ascii", func(t *testing.T) {
		_, err := parse("GET /\xd0\xb0 HTTP/1.1\r\n\r\n")
		require.ErrorIs(t, err, status.ErrMalformedRequestLine)
	})

	t.Run("nothing sent at all", func(t *testing.T) {
		_, err := parse("")
		require.ErrorIs(t, err, status.ErrMissingRequestLine)
	})

	t.Run("closed before any separator", func(t *testing.T) {
		_, err := parse("GET / HTTP/1.1")
		require.ErrorIs(t, err, status.ErrMissingRequestLine)
	})
}

func TestParseHeaders(t *testing.T) {
	t.Run("key lowercased, value trimmed", func(t *testing.T) {
		request, err := parse("GET / HTTP/1.1\r\nContent-Type: text/html\r\n\r\n")
		require.NoError(t, err)
		require.Equal(t, "text/html", request.Headers.Value("content-type"))
	})

	t.Run("duplicate keys, last wins", func(t *testing.T) {
		request, err := parse("GET / HTTP/1.1\r\nAccept: text/html\r\naccept: */*\r\n\r\n")
		require.NoError(t, err)
		require.Equal(t, 1, request.Headers.Len())
		require.Equal(t, "*/*", request.Headers.Value("accept"))
	})

	t.Run("no colon", func(t *testing.T) {
		_, err := parse("GET / HTTP/1.1\r\nthis is no header\r\n\r\n")
		require.ErrorIs(t, err, status.ErrMalformedHeaderLine)
	})

	t.Run("non-ascii value", func(t *testing.T) {
		_, err := parse("GET / HTTP/1.1\r\nX-Name: \xd0\xb8\xd0\xbc\xd1\x8f\r\n\r\n")
		require.ErrorIs(t, err, status.ErrMalformedHeaderLine)
	})

	t.Run("headers cut off by disconnect are kept", func(t *testing.T) {
		// the line sequence simply ends, which is indistinguishable from a
		// proper terminator once the request line is in
		request, err := parse("GET / HTTP/1.1\r\nHost: localhost\r\n")
		require.NoError(t, err)
		require.Equal(t, "localhost", request.Headers.Value("host"))
	})

	t.Run("random values survive roundtrip", func(t *testing.T) {
		value := uniuri.NewLen(64)
		request, err := parse("GET / HTTP/1.1\r\nX-Token:   " + value + "\r\n\r\n")
		require.NoError(t, err)
		require.Equal(t, value, request.Headers.Value("x-token"))
	})
}
