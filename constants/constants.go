package constants

var VERSION = "dev"

type Header struct {
	Name  string
	Value string
}

var (
	HeaderRequestID        = "X-Request-Id"
	DefaultResponseHeaders = []Header{
		{Name: "Server", Value: "SchemaGate/" + VERSION},
	}
)
