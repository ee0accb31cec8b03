package config

type (
	NET struct {
		// ReadBufferSize is a size of the buffer in bytes which will be used
		// to read from a socket. One buffer is allocated per connection and
		// lives until the connection is closed.
		ReadBufferSize int
	}

	FS struct {
		// Root is the directory files are served from. Nothing outside of it
		// is ever reachable, no matter what the request path looks like.
		Root string
		// Index is the document substituted for requests of the bare "/" path.
		Index string
	}
)

// Config holds settings used across statico. You must ALWAYS modify defaults
// (returned via Default()) instead of constructing the struct manually,
// otherwise zero-valued fields may result in ambiguous errors.
type Config struct {
	NET NET
	FS  FS
}

// Default returns the default config.
func Default() Config {
	return Config{
		NET: NET{
			// 16kb per read amortizes syscalls well enough for a server
			// which never reads anything past the header block anyway.
			ReadBufferSize: 16 * 1024,
		},
		FS: FS{
			Root:  "static",
			Index: "index.html",
		},
	}
}

// Fill replaces zero-valued fields of the passed config with defaults.
func Fill(cfg Config) Config {
	defaults := Default()

	if cfg.NET.ReadBufferSize == 0 {
		cfg.NET.ReadBufferSize = defaults.NET.ReadBufferSize
	}

	if len(cfg.FS.Root) == 0 {
		cfg.FS.Root = defaults.FS.Root
	}

	if len(cfg.FS.Index) == 0 {
		cfg.FS.Index = defaults.FS.Index
	}

	return cfg
}
