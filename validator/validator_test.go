package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidatorDrafts(t *testing.T) {
	schema := []byte(`{"type": "object"}`)
	for _, draft := range []string{"draft-04", "draft-06", "draft-07", "draft-2019-09", "draft-2020-12", ""} {
		v, err := NewValidator(draft, schema)
		assert.NoError(t, err, "draft %q", draft)
		assert.NotNil(t, v)
	}

	_, err := NewValidator("draft-05", schema)
	assert.EqualError(t, err, "unsupported draft: draft-05")
}

func TestValidatorCache(t *testing.T) {
	schema := []byte(`{"type": "object", "properties": {"cached": {"type": "boolean"}}}`)
	v1, err := NewValidator("draft-2020-12", schema)
	require.NoError(t, err)
	v2, err := NewValidator("draft-2020-12", schema)
	require.NoError(t, err)
	assert.Same(t, v1, v2)

	v3, err := NewValidator("draft-07", schema)
	require.NoError(t, err)
	assert.NotSame(t, v1, v3)
}

func TestInvalidSchema(t *testing.T) {
	_, err := NewValidator("", []byte(`{`))
	assert.Error(t, err)

	_, err = NewValidator("", []byte(`{"type": 123}`))
	assert.Error(t, err)
}

func TestValidateErrorString(t *testing.T) {
	ve := ValidateError{
		{Field: "a", Message: "first"},
		{Field: "b", Message: "second"},
	}
	assert.Equal(t, "first | second", ve.Error())
}
