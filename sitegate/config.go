package sitegate

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default path to the sitegate config file.
const DefaultConfigFile = "sitegate.yaml"

// Config contains the configuration for running the gateway.
type Config struct {
	// Domain is the public hostname to serve and obtain certificates
	// for. Required.
	Domain string `yaml:"domain"`

	// Email is the contact email registered with the certificate
	// authority.
	Email string `yaml:"email"`

	// StaticDir is the directory of static files to serve.
	StaticDir string `yaml:"static_dir"`

	// CertDir is the cache directory for certificates.
	CertDir string `yaml:"cert_dir"`

	HTTPSAddr string `yaml:"https_addr"`
	HTTPAddr  string `yaml:"http_addr"`

	// MaxBodyBytes caps the size of accepted request bodies.
	MaxBodyBytes int64 `yaml:"max_body_bytes"`
}

// LoadConfig reads the config file at path. A missing file yields a
// zero config, whose accessors fall back to defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, err
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config YAML: %w", err)
	}
	return config, nil
}

func (c *Config) staticDir() string {
	if c.StaticDir != "" {
		return c.StaticDir
	}
	return "public"
}

func (c *Config) certDir() string {
	if c.CertDir != "" {
		return c.CertDir
	}
	return "var/certs"
}

func (c *Config) httpsAddr() string {
	if c.HTTPSAddr != "" {
		return c.HTTPSAddr
	}
	return ":443"
}

func (c *Config) httpAddr() string {
	if c.HTTPAddr != "" {
		return c.HTTPAddr
	}
	return ":80"
}

func (c *Config) maxBodyBytes() int64 {
	if c.MaxBodyBytes > 0 {
		return c.MaxBodyBytes
	}
	const defaultMax = 1 << 20 // 1 MiB
	return defaultMax
}
