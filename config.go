package wren

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// NetModel selects which connection engine a server run uses.
type NetModel int

const (
	// Multithread serves each accepted connection on a pooled worker task.
	Multithread NetModel = iota
	// EventPoll serves all connections from a single readiness-driven loop.
	EventPoll
)

// String returns the configuration-file spelling of the model.
func (m NetModel) String() string {
	if m == EventPoll {
		return "event-poll"
	}
	return "multithread"
}

// ParseNetModel maps a configuration-file spelling to its NetModel.
// Unknown spellings map to Multithread.
func ParseNetModel(s string) NetModel {
	if s == "event-poll" {
		return EventPoll
	}
	return Multithread
}

// Config carries every value the serving loop, the static responder and the
// forwarder consume. It is populated before Run and read-only afterwards.
type Config struct {
	// ListenAddr is the address the listener binds to.
	ListenAddr string

	// Port is the decimal listen port.
	Port string

	// RootPath is the static-file root directory. Empty disables static
	// file serving; every GET then yields the 404 fallback.
	RootPath string

	// ProxyTargets is the ordered list of backend host:port strings used
	// by the forwarder.
	ProxyTargets []string

	// NetModel selects the connection engine.
	NetModel NetModel

	// Workers is the task pool size in Multithread mode.
	Workers int

	// ReadTimeout bounds reading one request from a connection.
	ReadTimeout time.Duration

	// WriteTimeout bounds writing one response to a connection.
	WriteTimeout time.Duration

	// DisableStartupMessage suppresses the boot banner.
	DisableStartupMessage bool
}

// DefaultConfig returns the configuration used when no file or overrides
// are supplied: listen on 0.0.0.0:9999, no static root, no proxy targets,
// multithread engine with 10 workers and 30 second read/write deadlines.
func DefaultConfig() Config {
	return Config{
		ListenAddr:   "0.0.0.0",
		Port:         "9999",
		NetModel:     Multithread,
		Workers:      10,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

// fileConfig mirrors the recognized sections and keys of the configuration
// file. Unknown sections and keys are ignored.
type fileConfig struct {
	Server struct {
		Port     string `yaml:"port"`
		NetModel string `yaml:"net-model"`
	} `yaml:"server"`
	Directory struct {
		RootPath string `yaml:"root-path"`
	} `yaml:"directory"`
	Proxy struct {
		Target []string `yaml:"target"`
	} `yaml:"proxy"`
}

// LoadConfigFile reads a YAML configuration file and returns DefaultConfig
// overlaid with the values the file sets. Keys the file omits keep their
// defaults.
func LoadConfigFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if fc.Server.Port != "" {
		cfg.Port = fc.Server.Port
	}
	if fc.Server.NetModel != "" {
		cfg.NetModel = ParseNetModel(fc.Server.NetModel)
	}
	if fc.Directory.RootPath != "" {
		cfg.RootPath = fc.Directory.RootPath
	}
	if len(fc.Proxy.Target) > 0 {
		cfg.ProxyTargets = fc.Proxy.Target
	}
	return cfg, nil
}
