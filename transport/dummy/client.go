package dummy

import (
	"io"
	"net"

	"github.com/indigo-web/statico/transport"
)

var _ transport.Client = new(Client)

// Client feeds pre-defined chunks of data one by one, recording everything
// written back. Once the chunks are exhausted, Read returns io.EOF, imitating
// a peer which has closed the connection.
type Client struct {
	chunks  [][]byte
	tmp     []byte
	pointer int
	written []byte
	closed  bool
}

func NewClient(chunks ...[]byte) *Client {
	return &Client{
		chunks: chunks,
	}
}

func (c *Client) Read() (data []byte, err error) {
	if len(c.tmp) > 0 {
		data, c.tmp = c.tmp, nil

		return data, nil
	}

	if c.closed || c.pointer >= len(c.chunks) {
		return nil, io.EOF
	}

	piece := c.chunks[c.pointer]
	c.pointer++

	return piece, nil
}

func (c *Client) Pushback(takeback []byte) {
	c.tmp = takeback
}

func (c *Client) Write(b []byte) (int, error) {
	c.written = append(c.written, b...)
	return len(b), nil
}

// Written returns everything the tested code has sent so far.
func (c *Client) Written() []byte {
	return c.written
}

func (c *Client) Conn() net.Conn {
	return nil
}

func (c *Client) Remote() net.Addr {
	return nil
}

func (c *Client) Close() error {
	c.closed = true
	return nil
}
