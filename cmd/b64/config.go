package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/errwrap"
	"gopkg.in/yaml.v3"
)

const (
	modeNone   = ""
	modeEncode = "encode"
	modeDecode = "decode"
)

// Config holds defaults read from the YAML file given with --config.
type Config struct {
	Mode     string `yaml:"mode"`      // encode, decode, or empty for no conversion
	Wrap     int    `yaml:"wrap"`      // columns, 0 disables wrapping
	LogLevel string `yaml:"log_level"` // e.g., debug
}

func loadConfig(configFile string) (*Config, error) {
	var config Config

	// Load the config file
	data, err := os.ReadFile(configFile)
	if err != nil {
		return nil, errwrap.Wrapf("failed to read config file: {{err}}", err)
	}

	// Unmarshal the config file
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, errwrap.Wrapf("failed to parse config file: {{err}}", err)
	}

	switch config.Mode {
	case modeNone, modeEncode, modeDecode:
	default:
		return nil, fmt.Errorf("invalid mode in config file: %q", config.Mode)
	}
	if config.Wrap < 0 {
		return nil, fmt.Errorf("invalid wrap in config file: %d", config.Wrap)
	}

	return &config, nil
}
