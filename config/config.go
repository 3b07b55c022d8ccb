package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	defaultHost        = "localhost"
	defaultPort        = 5432
	defaultSSLMode     = "disable"
	defaultEventsTopic = "airbooking.events"
	defaultGroupID     = "airbooking-notifier"
)

type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Kafka    KafkaConfig    `yaml:"kafka"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
}

// DSN renders the connection string in URL form so an empty password stays empty.
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		Host:     net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:     "/" + d.Name,
		RawQuery: url.Values{"sslmode": {d.SSLMode}}.Encode(),
	}
	if d.Password != "" {
		u.User = url.UserPassword(d.User, d.Password)
	} else {
		u.User = url.User(d.User)
	}
	return u.String()
}

// Redacted is the connection URL without credentials, safe to print.
func (d DatabaseConfig) Redacted() string {
	return fmt.Sprintf("postgres://%s/%s", net.JoinHostPort(d.Host, strconv.Itoa(d.Port)), d.Name)
}

type KafkaConfig struct {
	Brokers     []string `yaml:"brokers"`
	EventsTopic string   `yaml:"events_topic"`
	GroupID     string   `yaml:"group_id"`
}

// Enabled reports whether events should be published at all.
func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0 && k.EventsTopic != ""
}

// LoadConfig reads the YAML file at path. A missing file is not an error, defaults are
// used instead. The database password is taken from the environment when the file does
// not set one.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyDefaults()
	cfg.applyEnv()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Database.Host == "" {
		c.Database.Host = defaultHost
	}
	if c.Database.Port == 0 {
		c.Database.Port = defaultPort
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = defaultSSLMode
	}
	if c.Kafka.EventsTopic == "" {
		c.Kafka.EventsTopic = defaultEventsTopic
	}
	if c.Kafka.GroupID == "" {
		c.Kafka.GroupID = defaultGroupID
	}
}

func (c *Config) applyEnv() {
	if c.Database.Password != "" {
		return
	}
	for _, key := range []string{"AIRBOOKING_DB_PASSWORD", "PGPASSWORD"} {
		if v := os.Getenv(key); v != "" {
			c.Database.Password = v
			return
		}
	}
}
