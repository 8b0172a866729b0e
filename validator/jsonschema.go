package validator

import (
	"bytes"
	"errors"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

type JSONSchemaValidator struct {
	schema *jsonschema.Schema
}

func NewJSONSchemaValidator(draft *jsonschema.Draft, schemaDef []byte) (*JSONSchemaValidator, error) {
	c := jsonschema.NewCompiler()
	c.DefaultDraft(draft)
	c.AssertFormat()
	for i := range extraFormats {
		c.RegisterFormat(&extraFormats[i])
	}
	schemaJson, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaDef))
	if err != nil {
		return nil, err
	}
	err = c.AddResource("schema.json", schemaJson)
	if err != nil {
		return nil, err
	}
	schema, err := c.Compile("schema.json")
	if err != nil {
		return nil, err
	}

	return &JSONSchemaValidator{schema: schema}, nil
}

func (v *JSONSchemaValidator) Validate(value any) error {
	return convertError(v.schema.Validate(value))
}

// convertError flattens the engine's cause tree into a ValidateError,
// keeping the engine's error order.
func convertError(err error) error {
	var e *jsonschema.ValidationError
	if !errors.As(err, &e) {
		return err
	}

	var validateError ValidateError
	var walk func(e *jsonschema.ValidationError)

	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			validateError = append(validateError, findings(e)...)
			return
		}
		for _, cause := range e.Causes {
			walk(cause)
		}
	}

	walk(e)
	return validateError
}
