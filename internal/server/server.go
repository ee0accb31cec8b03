package server

import (
	"log"

	"github.com/indigo-web/statico/fs"
	"github.com/indigo-web/statico/http/status"
	"github.com/indigo-web/statico/internal/lines"
	"github.com/indigo-web/statico/internal/parser"
	"github.com/indigo-web/statico/internal/render"
	"github.com/indigo-web/statico/transport"
)

// Handle services a single accepted connection from start to finish. Closing
// the connection stays with the caller, so every exit path below may simply
// return.
//
// All the parser's error kinds collapse into the same 400; the distinction
// survives only in the log. Likewise, an error escaping the file server is
// answered with a 400 as a last resort: either no response was written yet
// and the client gets a proper status, or the connection is broken anyway
// and the extra bytes go nowhere.
func Handle(client transport.Client, fserver *fs.Server) {
	request, err := parser.Parse(lines.New(client))
	if err != nil {
		log.Printf("%s: parsing request: %s", remote(client), err)
		_, _ = client.Write(render.Fixed(status.BadRequest))
		return
	}

	if request.Method != "GET" {
		_, _ = client.Write(render.Fixed(status.MethodNotAllowed))
		return
	}

	if err = fserver.Serve(client, request.Path); err != nil {
		log.Printf("%s: serving %s: %s", remote(client), request.Path, err)
		_, _ = client.Write(render.Fixed(status.BadRequest))
	}
}

func remote(client transport.Client) string {
	if addr := client.Remote(); addr != nil {
		return addr.String()
	}

	return "unknown"
}
