package accesslog

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/schemagate-io/schemagate/utils"
)

type Entry struct {
	RequestID string
	Latency   time.Duration
	ClientIP  string
	Request   Request
	Response  Response
}

type Request struct {
	Method  string
	Path    string
	Proto   string
	Headers map[string]string
}

type Response struct {
	Status int
	Size   int
}

func NewEntry(r *http.Request) *Entry {
	host, _ := parseHostPort(r.RemoteAddr)
	entry := Entry{
		ClientIP: host,
		Request: Request{
			Method: r.Method,
			Path:   r.URL.Path,
			Proto:  r.Proto,
			Headers: map[string]string{
				"user-agent": r.UserAgent(),
				"referer":    r.Referer(),
			},
		},
	}
	return &entry
}

func (m *Entry) MarshalZerologObject(e *zerolog.Event) {
	e.Str("client_ip", m.ClientIP)
	e.Str("request_id", m.RequestID)
	e.Dict("request", zerolog.Dict().
		Str("method", m.Request.Method).
		Str("path", m.Request.Path).
		Str("proto", m.Request.Proto).
		Dict("headers", zerolog.Dict().
			Str("user-agent", m.Request.Headers["user-agent"]).
			Str("referer", m.Request.Headers["referer"])),
	)
	e.Dict("response",
		zerolog.Dict().
			Int("status", m.Response.Status).
			Int("size", m.Response.Size),
	)
	e.Int64("latency", m.Latency.Milliseconds())
}

func (m *Entry) String() string {
	return fmt.Sprintf(`%s - %s "%s %s %s" %d %d %dms "%s" "%s"`,
		m.ClientIP,
		utils.DefaultIfZero(m.RequestID, "-"),
		m.Request.Method,
		m.Request.Path,
		m.Request.Proto,
		m.Response.Status,
		m.Response.Size,
		m.Latency.Milliseconds(),
		utils.DefaultIfZero(m.Request.Headers["referer"], "-"),
		utils.DefaultIfZero(m.Request.Headers["user-agent"], "-"),
	)
}
