package config

import (
	"fmt"
	"slices"
)

var drafts = []string{
	"draft-04",
	"draft-06",
	"draft-07",
	"draft-2019-09",
	"draft-2020-12",
}

type GateConfig struct {
	Draft      string `yaml:"draft" json:"draft" default:"draft-2020-12"`
	SchemaEcho *bool  `yaml:"schema_echo" json:"schema_echo" default:"true"`
}

func (cfg GateConfig) Validate() error {
	if !slices.Contains(drafts, cfg.Draft) {
		return fmt.Errorf("invalid draft: %s", cfg.Draft)
	}
	return nil
}

// EchoEnabled reports whether failing responses echo the offending schema.
func (cfg GateConfig) EchoEnabled() bool {
	return cfg.SchemaEcho == nil || *cfg.SchemaEcho
}
