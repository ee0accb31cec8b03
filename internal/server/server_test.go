package server

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/indigo-web/statico/config"
	"github.com/indigo-web/statico/fs"
	"github.com/indigo-web/statico/transport/dummy"
	"github.com/stretchr/testify/require"
)

const (
	badRequestResponse = "HTTP/1.1 400 Bad Request\r\n" +
		"Content-type: text/plain\r\n" +
		"Content-length: 11\r\n" +
		"\r\n" +
		"Bad Request"
	methodNotAllowedResponse = "HTTP/1.1 405 Method Not Allowed\r\n" +
		"Content-type: text/plain\r\n" +
		"Content-length: 17\r\n" +
		"\r\n" +
		"Method Not Allowed"
)

func newFS(t *testing.T) *fs.Server {
	root := t.TempDir()
	err := os.WriteFile(filepath.Join(root, "index.html"), []byte("<h1>hello</h1>"), 0o644)
	require.NoError(t, err)

	return fs.New(config.FS{Root: root, Index: "index.html"})
}

func handle(t *testing.T, raw string) string {
	client := dummy.NewClient([]byte(raw))
	Handle(client, newFS(t))

	return string(client.Written())
}

func TestHandle(t *testing.T) {
	t.Run("GET an existing file", func(t *testing.T) {
		response := handle(t, "GET /index.html HTTP/1.1\r\n\r\n")
		require.True(t, strings.HasPrefix(response, "HTTP/1.1 200 OK\r\n"))
		require.True(t, strings.HasSuffix(response, "\r\n\r\n<h1>hello</h1>"))
	})

	t.Run("non-GET method", func(t *testing.T) {
		response := handle(t, "POST /index.html HTTP/1.1\r\nContent-Length: 0\r\n\r\n")
		require.Equal(t, methodNotAllowedResponse, response)
	})

	t.Run("malformed request line", func(t *testing.T) {
		require.Equal(t, badRequestResponse, handle(t, "NONSENSE\r\n\r\n"))
	})

	t.Run("malformed header", func(t *testing.T) {
		require.Equal(t, badRequestResponse, handle(t, "GET / HTTP/1.1\r\nno colon here\r\n\r\n"))
	})

	t.Run("immediate disconnect", func(t *testing.T) {
		require.Equal(t, badRequestResponse, handle(t, ""))
	})

	t.Run("404 is not a handler error", func(t *testing.T) {
		response := handle(t, "GET /nonexistent.txt HTTP/1.1\r\n\r\n")
		require.True(t, strings.HasPrefix(response, "HTTP/1.1 404 Not Found\r\n"))
		require.True(t, strings.HasSuffix(response, "Not Found"))
	})
}
