package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// DefaultMongoURI is used when MONGODB_URI is not set in the environment.
const DefaultMongoURI = "mongodb://localhost:27017/edu-resource"

// Config holds the resolved runtime configuration for a single invocation.
// It is loaded once in the command layer and passed down explicitly.
type Config struct {
	MongoURI string `mapstructure:"mongodb_uri"`
}

// Load resolves configuration from viper (environment plus defaults).
func Load() *Config {
	cfg := &Config{
		MongoURI: viper.GetString("mongodb_uri"),
	}

	if cfg.MongoURI == "" {
		cfg.MongoURI = DefaultMongoURI
	}

	return cfg
}

// DatabaseName extracts the database name from the connection URI: the
// path segment after the last slash, stripped of any query string.
func (c *Config) DatabaseName() string {
	name := c.MongoURI
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.Index(name, "?"); i >= 0 {
		name = name[:i]
	}
	return name
}

func (c *Config) Validate() error {
	if c.MongoURI == "" {
		return fmt.Errorf("connection URI cannot be empty")
	}

	if !strings.HasPrefix(c.MongoURI, "mongodb://") && !strings.HasPrefix(c.MongoURI, "mongodb+srv://") {
		return fmt.Errorf("unsupported connection scheme in %q: expected mongodb:// or mongodb+srv://", c.MongoURI)
	}

	name := c.DatabaseName()
	if name == "" || strings.ContainsAny(name, ":@") {
		return fmt.Errorf("connection URI %q does not include a database name", c.MongoURI)
	}

	return nil
}
