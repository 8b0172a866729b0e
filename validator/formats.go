package validator

import (
	"fmt"
	"net/url"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// extraFormats supplements the engine's built-in format vocabulary
// (date-time, date, time, email, hostname, ipv4, ipv6, uri, uuid, regex,
// ...). "url" is not part of any JSON Schema draft but is accepted by gate
// schemas.
var extraFormats = []jsonschema.Format{
	{
		Name: "url",
		Validate: func(v any) error {
			s, ok := v.(string)
			if !ok {
				return nil
			}
			u, err := url.Parse(s)
			if err != nil {
				return err
			}
			if u.Scheme == "" || u.Host == "" {
				return fmt.Errorf("'%s' is not a valid url", s)
			}
			return nil
		},
	},
}
