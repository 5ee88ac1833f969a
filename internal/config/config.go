package config

import (
	"errors"
	"io/fs"
	"os"

	"fivecarddraw-server/internal/util"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the five-card draw server
type Config struct {
	loaded bool
	TCP    TCP  `yaml:"tcp" envconfig:"tcp"`
	HTTP   HTTP `yaml:"http" envconfig:"http"`
	Log    Log  `yaml:"log" envconfig:"log"`
	Deck   Deck `yaml:"deck" envconfig:"deck"`
}

// TCP configures the line protocol server
type TCP struct {
	Addr string `yaml:"addr" envconfig:"addr"`
}

// HTTP configures the health, table and websocket server
type HTTP struct {
	Addr              string `yaml:"addr" envconfig:"addr"`
	DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
}

// Log configures logrus
type Log struct {
	Level string `yaml:"level" envconfig:"level"`
}

// Deck configures the shuffle. A seed of 0 uses crypto/rand.
type Deck struct {
	Seed int64 `yaml:"seed" envconfig:"seed"`
}

var config Config

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	return Config{
		TCP:  TCP{Addr: ":8080"},
		HTTP: HTTP{Addr: ":5000"},
		Log:  Log{Level: "info"},
	}
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration from FCD_CONFIG_FILE (config.yaml by
// default). The file is optional.
func Load() error {
	return load(util.Getenv("FCD_CONFIG_FILE", "config.yaml"), false)
}

// LoadFile will load the configuration from the file, which must exist
func LoadFile(configFile string) error {
	return load(configFile, true)
}

func load(configFile string, required bool) error {
	cfg := DefaultConfig()

	file, err := os.Open(configFile)
	if err != nil {
		if required || !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	} else {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	}

	if err := envconfig.Process("fcd", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}
