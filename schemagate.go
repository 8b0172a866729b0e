// Package schemagate provides JSON Schema request-validation middleware.
// A Gate compiles up to three schemas (body, query parameters, headers) at
// setup time and produces a standard http middleware that rejects
// non-conforming requests with a structured 400 response.
package schemagate

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/schemagate-io/schemagate/pkg/http/response"
	"github.com/schemagate-io/schemagate/validator"
)

// Validation failure messages, one per request part.
const (
	MessageBodyFailed    = "Request body validation failed"
	MessageQueryFailed   = "Query parameters validation failed"
	MessageHeadersFailed = "Headers validation failed"
)

// Options configures a Gate. Each schema is optional; an absent schema skips
// validation for that part. A schema may be given as a raw JSON string,
// []byte, json.RawMessage, or any JSON-marshalable document.
type Options struct {
	BodySchema    any
	QuerySchema   any
	HeadersSchema any

	// Draft selects the JSON Schema draft (draft-04 through draft-2020-12).
	// Empty means draft-2020-12.
	Draft string

	// DisableSchemaEcho leaves the offending schema out of 400 responses.
	DisableSchemaEcho bool
}

// ErrorResponse is the wire format of a validation failure.
type ErrorResponse struct {
	Error   string              `json:"error"`
	Schema  any                 `json:"schema,omitempty"`
	Details []validator.Finding `json:"details"`
}

type part struct {
	validator validator.Validator
	schema    any
	message   string
}

// Gate validates request bodies, query parameters, and headers against
// precompiled JSON Schemas. A Gate is immutable after New and safe for
// concurrent use.
type Gate struct {
	body    *part
	query   *part
	headers *part
	echo    bool
}

// New compiles the configured schemas eagerly so that schema errors surface
// at startup rather than on the first request.
func New(opts Options) (*Gate, error) {
	gate := &Gate{echo: !opts.DisableSchemaEcho}
	var err error
	if gate.body, err = newPart(opts.BodySchema, opts.Draft, MessageBodyFailed); err != nil {
		return nil, fmt.Errorf("body schema: %w", err)
	}
	if gate.query, err = newPart(opts.QuerySchema, opts.Draft, MessageQueryFailed); err != nil {
		return nil, fmt.Errorf("query schema: %w", err)
	}
	if gate.headers, err = newPart(opts.HeadersSchema, opts.Draft, MessageHeadersFailed); err != nil {
		return nil, fmt.Errorf("headers schema: %w", err)
	}
	return gate, nil
}

// Middleware is a convenience wrapper around New for router.Use.
func Middleware(opts Options) (func(http.Handler) http.Handler, error) {
	gate, err := New(opts)
	if err != nil {
		return nil, err
	}
	return gate.Handler, nil
}

// Handler wraps next with request validation. Parts are checked in a fixed
// order (body, query, headers); the first failing part responds 400 and the
// downstream handler is never invoked.
func (g *Gate) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if g.body != nil {
			value, err := bodyValue(r)
			if err != nil {
				g.reject(w, g.body, validator.ValidateError{{
					Field:   "root",
					Message: err.Error(),
					Keyword: "parse",
					Params:  map[string]any{},
				}})
				return
			}
			if !g.check(w, g.body, value) {
				return
			}
		}
		if g.query != nil && !g.check(w, g.query, queryValue(r.URL.Query())) {
			return
		}
		if g.headers != nil && !g.check(w, g.headers, headerValue(r.Header)) {
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (g *Gate) check(w http.ResponseWriter, p *part, value any) bool {
	err := p.validator.Validate(value)
	if err == nil {
		return true
	}
	ve, ok := err.(validator.ValidateError)
	if !ok {
		ve = validator.ValidateError{{
			Field:   "root",
			Message: err.Error(),
			Params:  map[string]any{},
		}}
	}
	g.reject(w, p, ve)
	return false
}

func (g *Gate) reject(w http.ResponseWriter, p *part, ve validator.ValidateError) {
	resp := ErrorResponse{
		Error:   p.message,
		Details: ve,
	}
	if g.echo {
		resp.Schema = p.schema
	}
	response.JSON(w, http.StatusBadRequest, resp)
}

func newPart(schema any, draft string, message string) (*part, error) {
	if schema == nil {
		return nil, nil
	}
	def, err := normalizeSchema(schema)
	if err != nil {
		return nil, err
	}
	v, err := validator.NewValidator(draft, def)
	if err != nil {
		return nil, err
	}

	// decoded copy of the schema for echoing in failure responses
	var doc any
	if err := json.Unmarshal(def, &doc); err != nil {
		return nil, err
	}
	return &part{validator: v, schema: doc, message: message}, nil
}

func normalizeSchema(schema any) ([]byte, error) {
	switch v := schema.(type) {
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	case json.RawMessage:
		return v, nil
	}
	return json.Marshal(schema)
}
