package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Source supplies explorer overrides such as ETH_EXPLORER_BASEPATH.
// Empty values are reported as absent.
type Source interface {
	Lookup(key string) (string, bool)
}

type envSource struct{}

// Env reads the process environment at lookup time.
func Env() Source {
	return envSource{}
}

func (envSource) Lookup(key string) (string, bool) {
	value := strings.TrimSpace(os.Getenv(key))
	return value, value != ""
}

// Map is an in-memory Source.
type Map map[string]string

func (m Map) Lookup(key string) (string, bool) {
	value := strings.TrimSpace(m[key])
	return value, value != ""
}

// Layered consults its sources in order and returns the first hit.
type Layered []Source

func (l Layered) Lookup(key string) (string, bool) {
	for _, s := range l {
		if s == nil {
			continue
		}
		if value, found := s.Lookup(key); found {
			return value, true
		}
	}
	return "", false
}

type fileConfig struct {
	Explorers map[string]string `yaml:"explorers"`
}

// ParseFile decodes a YAML document of the form
//
//	explorers:
//	  ETH_EXPLORER_BASEPATH: https://sepolia.etherscan.io/
func ParseFile(content []byte) (Map, error) {
	fc := fileConfig{}
	if err := yaml.Unmarshal(content, &fc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal explorer config: %w", err)
	}
	result := Map{}
	for key, value := range fc.Explorers {
		result[strings.TrimSpace(key)] = value
	}
	return result, nil
}

// LoadFile reads and parses the YAML config file at path.
func LoadFile(path string) (Map, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return ParseFile(content)
}
