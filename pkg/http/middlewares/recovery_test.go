package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/schemagate-io/schemagate/pkg/http/response"
	"github.com/stretchr/testify/assert"
)

func TestRecovery(t *testing.T) {
	m := NewRecovery(nil)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	m.Handle(next).ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, 500, rec.Code)
	assert.JSONEq(t, `{"message": "internal error"}`, rec.Body.String())
}

func TestRecoveryCustomizeError(t *testing.T) {
	var badInput = errors.New("bad input")
	m := NewRecovery(func(err error, w http.ResponseWriter) bool {
		if errors.Is(err, badInput) {
			response.JSON(w, 400, ErrorResponse{Message: err.Error()})
			return true
		}
		return false
	})
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(badInput)
	})

	rec := httptest.NewRecorder()
	m.Handle(next).ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, 400, rec.Code)
	assert.JSONEq(t, `{"message": "bad input"}`, rec.Body.String())
}
