package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultIfZero(t *testing.T) {
	tests := []struct {
		Input    interface{}
		Default  interface{}
		Expected interface{}
	}{
		{
			Input:    "",
			Default:  "value",
			Expected: "value",
		},
		{
			Input:    false,
			Default:  true,
			Expected: true,
		},
		{
			Input:    0,
			Default:  1,
			Expected: 1,
		},
	}

	for _, test := range tests {
		v := DefaultIfZero(test.Input, test.Default)
		assert.Equal(t, test.Expected, v)
	}
}

func TestPointer(t *testing.T) {
	p := Pointer("value")
	assert.Equal(t, "value", *p)
	assert.Equal(t, "value", PointerValue(p))
	assert.Equal(t, "", PointerValue[string](nil))
}
