package fs

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/indigo-web/statico/config"
	"github.com/indigo-web/statico/http/mime"
	"github.com/indigo-web/statico/http/status"
	"github.com/indigo-web/statico/internal/render"
	"github.com/indigo-web/statico/transport"
)

// Server maps request paths onto a root directory and streams files back.
// Escapes of the root and genuinely missing files are answered with the very
// same 404, so the filesystem layout cannot be probed from outside.
type Server struct {
	root  string
	index string
}

func New(cfg config.FS) *Server {
	return &Server{
		root:  filepath.Clean(cfg.Root),
		index: cfg.Index,
	}
}

// Serve resolves the raw request path and either streams the file or sends
// the fixed 404. Any error not expressible as a 404 is returned to the
// caller untouched.
func (s *Server) Serve(client transport.Client, path string) error {
	if path == "/" {
		path = "/" + s.index
	}

	resolved, contained := s.resolve(path)
	if !contained {
		return s.notFound(client)
	}

	file, err := os.Open(resolved)
	if err != nil {
		if os.IsNotExist(err) {
			return s.notFound(client)
		}

		return err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return err
	}

	if !stat.Mode().IsRegular() {
		return s.notFound(client)
	}

	if _, err = client.Write(render.FileHeaders(contentType(resolved), stat.Size())); err != nil {
		return err
	}

	_, err = io.Copy(client, file)
	return err
}

// resolve joins the request path onto the root and reports whether the
// result still lives under it. The check respects path segment boundaries:
// a sibling like "static-backup" never satisfies a root of "static".
func (s *Server) resolve(path string) (resolved string, contained bool) {
	resolved = filepath.Join(s.root, strings.TrimPrefix(path, "/"))

	return resolved, resolved == s.root ||
		strings.HasPrefix(resolved, s.root+string(filepath.Separator))
}

func contentType(path string) string {
	m, encoding := mime.Guess(path)
	if len(encoding) > 0 {
		// the content encoding rides in a charset parameter
		return m + "; charset=" + encoding
	}

	return m
}

func (s *Server) notFound(client transport.Client) error {
	_, err := client.Write(render.Fixed(status.NotFound))
	return err
}
