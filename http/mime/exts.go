package mime

import (
	"path/filepath"
	"strings"
)

var Extension = map[string]MIME{
	".avif": AVIF,
	".css":  CSS,
	".gif":  GIF,
	".htm":  HTML,
	".html": HTML,
	".ico":  ICO,
	".jpeg": JPEG,
	".jpg":  JPEG,
	".js":   JAVASCRIPT,
	".mjs":  JAVASCRIPT,
	".json": JSON,
	".pdf":  PDF,
	".png":  PNG,
	".svg":  SVG,
	".txt":  Plain,
	".wasm": WASM,
	".webp": WEBP,
	".xml":  XML,
	".yaml": YAML,
	".zip":  ZIP,
}

// Encoding maps compressor suffixes which are treated as content encodings
// rather than standalone types, so "index.html.gz" still resolves as HTML.
var Encoding = map[string]string{
	".br":  "br",
	".bz2": "bzip2",
	".gz":  "gzip",
	".xz":  "xz",
	".z":   "compress",
}

// Guess resolves a content type and, optionally, a content encoding of a
// file by its name. Unrecognized extensions resolve into OctetStream.
func Guess(path string) (m MIME, encoding string) {
	ext := strings.ToLower(filepath.Ext(path))
	if enc, found := Encoding[ext]; found {
		encoding = enc
		path = path[:len(path)-len(ext)]
		ext = strings.ToLower(filepath.Ext(path))
	}

	m, found := Extension[ext]
	if !found {
		return OctetStream, encoding
	}

	return m, encoding
}
