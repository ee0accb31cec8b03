package lines

import (
	"bytes"
	"io"

	"github.com/indigo-web/statico/transport"
)

var crlf = []byte("\r\n")

// Reader splits a connection's byte stream into CRLF-delimited lines, taking
// care of separators torn apart by partial reads. One instance serves exactly
// one connection and is not reusable.
//
// Bytes past a framed line are returned to the client via Pushback, so the
// local buffer only ever holds an unterminated fragment.
type Reader struct {
	client transport.Client
	buff   []byte
	done   bool
}

func New(client transport.Client) *Reader {
	return &Reader{
		client: client,
	}
}

// Next returns the following line with its CRLF stripped. io.EOF is returned
// on the empty terminator line as well as when the peer closes the stream
// mid-headers, whichever comes first. After that the sequence stays
// exhausted forever.
func (r *Reader) Next() ([]byte, error) {
	if r.done {
		return nil, io.EOF
	}

	for {
		data, err := r.client.Read()
		if len(data) == 0 {
			if err != nil {
				r.done = true
				return nil, io.EOF
			}

			continue
		}

		if len(r.buff) == 0 {
			if i := bytes.Index(data, crlf); i != -1 {
				r.client.Pushback(data[i+2:])
				return r.line(data[:i])
			}

			// no separator yet, and its CR half may even be sitting at the
			// very end of the chunk. Stash the fragment and read on
			r.buff = append(r.buff, data...)
			continue
		}

		r.buff = append(r.buff, data...)
		if i := bytes.Index(r.buff, crlf); i != -1 {
			r.client.Pushback(r.buff[i+2:])
			line := r.buff[:i]
			r.buff = nil

			return r.line(line)
		}
	}
}

func (r *Reader) line(line []byte) ([]byte, error) {
	if len(line) == 0 {
		// the empty line ends the header block. Whatever follows would be
		// a body, which is never read here
		r.done = true
		return nil, io.EOF
	}

	return line, nil
}
