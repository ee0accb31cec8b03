package statico

import (
	"log"
	"net"

	"github.com/indigo-web/statico/config"
	"github.com/indigo-web/statico/fs"
	"github.com/indigo-web/statico/internal/server"
	"github.com/indigo-web/statico/transport"
)

// App owns the listening socket for its whole lifetime. Connections are
// accepted and fully serviced one at a time, strictly in acceptance order;
// a slow peer therefore stalls everybody behind it, which is the documented
// price of having no concurrency to coordinate at all.
type App struct {
	addr  string
	cfg   config.Config
	tcp   *transport.TCP
	bound bool
}

// New returns a new App instance serving on the given address.
func New(addr string) *App {
	return &App{
		addr: addr,
		cfg:  config.Default(),
		tcp:  transport.NewTCP(),
	}
}

// Tune replaces the default config. Zero-valued fields fall back to defaults.
func (a *App) Tune(cfg config.Config) *App {
	a.cfg = config.Fill(cfg)
	return a
}

// Bind acquires the listening socket without serving yet. Serve calls it
// itself when needed; binding separately only matters when the actually
// chosen address (e.g. port 0) must be known up front.
func (a *App) Bind() error {
	if a.bound {
		return nil
	}

	if err := a.tcp.Bind(a.addr); err != nil {
		return err
	}

	a.bound = true
	return nil
}

// Addr returns the address the app is bound to.
func (a *App) Addr() net.Addr {
	return a.tcp.Addr()
}

// Serve runs the accept loop forever. It returns only if binding or the
// listener itself fails; per-connection failures never propagate this far.
func (a *App) Serve() error {
	if err := a.Bind(); err != nil {
		return err
	}

	fserver := fs.New(a.cfg.FS)
	log.Printf("listening on %s", a.tcp.Addr())

	return a.tcp.Listen(func(conn net.Conn) {
		log.Printf("accepted connection from %s", conn.RemoteAddr())
		buff := make([]byte, a.cfg.NET.ReadBufferSize)
		server.Handle(transport.NewClient(conn, buff), fserver)
	})
}
