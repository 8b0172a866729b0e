package validator

import (
	"math/big"
	"reflect"
	"strings"
	"unicode"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// findings maps one leaf engine error to findings. The field locator is the
// instance path when present, the missing property name for a required
// failure at the instance root, and "root" otherwise. A required failure
// listing several properties expands into one finding per property.
func findings(e *jsonschema.ValidationError) []Finding {
	msg := e.ErrorKind.LocalizedString(printer)
	keyword := ""
	if path := e.ErrorKind.KeywordPath(); len(path) > 0 {
		keyword = path[len(path)-1]
	}
	field := "root"
	if len(e.InstanceLocation) > 0 {
		field = instancePath(e.InstanceLocation)
	}

	if keyword == "required" {
		if missing, ok := missingProperties(e.ErrorKind); ok {
			out := make([]Finding, 0, len(missing))
			for _, name := range missing {
				f := field
				if len(e.InstanceLocation) == 0 {
					f = name
				}
				out = append(out, Finding{
					Field:   f,
					Message: msg,
					Keyword: keyword,
					Params:  map[string]any{"missingProperty": name},
				})
			}
			return out
		}
	}

	return []Finding{{
		Field:   field,
		Message: msg,
		Keyword: keyword,
		Params:  params(e.ErrorKind),
	}}
}

// instancePath renders instance location tokens as a JSON Pointer.
func instancePath(tokens []string) string {
	sb := strings.Builder{}
	for _, token := range tokens {
		token = strings.ReplaceAll(token, "~", "~0")
		token = strings.ReplaceAll(token, "/", "~1")
		sb.WriteString("/")
		sb.WriteString(token)
	}
	return sb.String()
}

func missingProperties(k jsonschema.ErrorKind) ([]string, bool) {
	v := reflect.ValueOf(k)
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, false
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, false
	}
	f := v.FieldByName("Missing")
	if !f.IsValid() {
		return nil, false
	}
	missing, ok := f.Interface().([]string)
	return missing, ok && len(missing) > 0
}

// params flattens the exported fields of the engine's error kind into the
// rule parameter set.
func params(k jsonschema.ErrorKind) map[string]any {
	params := make(map[string]any)
	v := reflect.ValueOf(k)
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return params
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return params
	}
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		value := paramValue(v.Field(i).Interface())
		if value == nil {
			continue
		}
		params[lowerFirst(f.Name)] = value
	}
	return params
}

func paramValue(v any) any {
	switch value := v.(type) {
	case nil:
		return nil
	case error:
		return value.Error()
	case *big.Rat:
		if value == nil {
			return nil
		}
		if value.IsInt() {
			return value.RatString()
		}
		f, _ := value.Float64()
		return f
	}
	return v
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
