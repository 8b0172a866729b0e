package schemagate

import (
	"bytes"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// bodyValue parses the request body as JSON and restores it so downstream
// handlers can read it again. An absent or empty body validates as an empty
// object.
func bodyValue(r *http.Request) (any, error) {
	if r.Body == nil {
		return map[string]any{}, nil
	}
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}
	_ = r.Body.Close()
	r.Body = io.NopCloser(bytes.NewReader(raw))

	if len(bytes.TrimSpace(raw)) == 0 {
		return map[string]any{}, nil
	}
	return jsonschema.UnmarshalJSON(bytes.NewReader(raw))
}

// queryValue converts query parameters into a JSON-like object. Values are
// strings; repeated parameters become arrays.
func queryValue(values url.Values) map[string]any {
	m := make(map[string]any, len(values))
	for name, vals := range values {
		if len(vals) == 1 {
			m[name] = vals[0]
			continue
		}
		arr := make([]any, len(vals))
		for i, v := range vals {
			arr[i] = v
		}
		m[name] = arr
	}
	return m
}

// headerValue converts headers into a JSON-like object with lowercased
// names; values of repeated headers are joined with a comma.
func headerValue(header http.Header) map[string]any {
	m := make(map[string]any, len(header))
	for name, values := range header {
		m[strings.ToLower(name)] = strings.Join(values, ",")
	}
	return m
}
