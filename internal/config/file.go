package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/go-homedir"
)

// LoadFile reads a TOML config file and overlays getenv on top of it.
// Precedence is environment, then file, then defaults.
func LoadFile(path string, getenv func(string) string) (Config, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return Config{}, fmt.Errorf("expand config path %s: %w", path, err)
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", expanded, err)
	}

	var file Config
	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&file)
	if err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", expanded, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("parse config %s: unknown key %q", expanded, undecoded[0].String())
	}
	return overlayEnv(merge(Default(), file), getenv), nil
}

// merge copies the non-empty fields of src over dst.
func merge(dst, src Config) Config {
	if src.AppName != "" {
		dst.AppName = src.AppName
	}
	if src.Port != "" {
		dst.Port = src.Port
	}
	if src.Environment != "" {
		dst.Environment = src.Environment
	}
	if src.AWSAccessKey != "" {
		dst.AWSAccessKey = src.AWSAccessKey
	}
	if src.AWSSecretKey != "" {
		dst.AWSSecretKey = src.AWSSecretKey
	}
	if src.DBConnection != "" {
		dst.DBConnection = src.DBConnection
	}
	return dst
}
