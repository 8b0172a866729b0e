package config

import (
	"encoding/json"
)

// Config Configuration
type Config struct {
	Listen    string          `yaml:"listen" json:"listen" default:"127.0.0.1:9610"`
	Log       LogConfig       `yaml:"log" json:"log"`
	AccessLog AccessLogConfig `yaml:"access_log" json:"access_log"`
	Gate      GateConfig      `yaml:"gate" json:"gate"`
}

func (cfg Config) String() string {
	bytes, err := json.Marshal(cfg)
	if err != nil {
		panic(err)
	}
	return string(bytes)
}

func (cfg Config) Validate() error {
	if err := cfg.Log.Validate(); err != nil {
		return err
	}
	if err := cfg.AccessLog.Validate(); err != nil {
		return err
	}
	if err := cfg.Gate.Validate(); err != nil {
		return err
	}
	return nil
}
