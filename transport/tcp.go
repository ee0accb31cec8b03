package transport

import (
	"net"
)

// TCP owns the listening socket. It is created once at startup and, in normal
// operation, never closed.
type TCP struct {
	l net.Listener
}

func NewTCP() *TCP {
	return new(TCP)
}

func (t *TCP) Bind(addr string) error {
	tcpaddr, err := net.ResolveTCPAddr("tcp", addr)
	if err != nil {
		return err
	}

	// net.ListenTCP enables SO_REUSEADDR itself, so restarting right after
	// a shutdown doesn't trip over a lingering socket.
	t.l, err = net.ListenTCP("tcp", tcpaddr)
	return err
}

// Addr returns the address the listener is actually bound to. Handy when the
// requested port was 0.
func (t *TCP) Addr() net.Addr {
	return t.l.Addr()
}

// Listen accepts and fully services one connection at a time, strictly in
// acceptance order. The connection is closed right after the callback
// returns, on every exit path. Returns only if the listener itself fails.
func (t *TCP) Listen(cb func(conn net.Conn)) error {
	for {
		conn, err := t.l.Accept()
		if err != nil {
			return err
		}

		cb(conn)
		_ = conn.Close()
	}
}

func (t *TCP) Close() {
	_ = t.l.Close()
}
