package validator

import (
	"fmt"
	"hash/fnv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Finding is a single validation failure.
type Finding struct {
	Field   string         `json:"field"`
	Message string         `json:"message"`
	Keyword string         `json:"keyword"`
	Params  map[string]any `json:"params"`
}

// ValidateError is the ordered list of findings produced by one validation.
// Order follows the engine's native error order.
type ValidateError []Finding

func (ve ValidateError) Error() string {
	sb := strings.Builder{}
	for i, f := range ve {
		sb.WriteString(f.Message)
		if i != len(ve)-1 {
			sb.WriteString(" | ")
		}
	}
	return sb.String()
}

type Validator interface {
	Validate(value any) error
}

var cache, _ = lru.New[uint64, Validator](128)

func hash(str string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(str))
	return h.Sum64()
}

// NewValidator compiles schemaDef under the given draft. An empty draft
// selects draft-2020-12. Compiled validators are cached, so identical
// schemas compile once per process.
func NewValidator(draft string, schemaDef []byte) (Validator, error) {
	cacheKey := hash(draft + "." + string(schemaDef))
	validator, exist := cache.Get(cacheKey)
	if exist {
		return validator, nil
	}

	var d *jsonschema.Draft
	switch draft {
	case "draft-04":
		d = jsonschema.Draft4
	case "draft-06":
		d = jsonschema.Draft6
	case "draft-07":
		d = jsonschema.Draft7
	case "draft-2019-09":
		d = jsonschema.Draft2019
	case "", "draft-2020-12":
		d = jsonschema.Draft2020
	default:
		return nil, fmt.Errorf("unsupported draft: %s", draft)
	}

	validator, err := NewJSONSchemaValidator(d, schemaDef)
	if err != nil {
		return nil, err
	}

	_ = cache.Add(cacheKey, validator)
	return validator, nil
}
