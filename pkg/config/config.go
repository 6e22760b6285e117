package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlpretty/pkg/consts"
	"github.com/pseudomuto/sqlpretty/pkg/format"
	"github.com/pseudomuto/sqlpretty/pkg/lexer"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

type (
	// Keywords adjusts the keyword vocabulary used for lexing and layout.
	Keywords struct {
		// Extra lists additional words to recognize (and upper-case) as
		// keywords. Extra words never start a new clause.
		Extra []string `yaml:"extra,omitempty"`
	}

	// Config represents the project configuration for sqlpretty.
	Config struct {
		// IndentSize is the number of spaces per indent level
		IndentSize int `yaml:"indent_size,omitempty"`

		// Keywords customizes the keyword vocabulary
		Keywords Keywords `yaml:"keywords,omitempty"`

		// Extensions lists the file extensions formatted when walking
		// directories
		Extensions []string `yaml:"extensions,omitempty"`

		// Jobs caps the number of files formatted concurrently (0 = one per CPU)
		Jobs int `yaml:"jobs,omitempty"`
	}
)

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()

	return cfg
}

// LoadConfig parses a configuration from the provided io.Reader.
//
// The function expects YAML-formatted configuration data. An empty document
// yields the defaults; unset fields are filled with their defaults.
//
// Example:
//
//	yamlData := `
//	indent_size: 4
//	keywords:
//	  extra: [my_udf]
//	extensions: [.sql, .hql]
//	`
//
//	cfg, err := config.LoadConfig(strings.NewReader(yamlData))
//	if err != nil {
//		panic(err)
//	}
//
//	fmt.Printf("Indent: %d\n", cfg.IndentSize)
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if cfg.IndentSize < 0 {
		return nil, errors.Errorf("indent_size must not be negative: %d", cfg.IndentSize)
	}

	if cfg.Jobs < 0 {
		return nil, errors.Errorf("jobs must not be negative: %d", cfg.Jobs)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// LoadConfigFile loads a configuration from the specified file path.
// This is a convenience function that opens the file and calls LoadConfig.
func LoadConfigFile(fs afero.Fs, path string) (*Config, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return LoadConfig(f)
}

// Load resolves the project configuration. The file named by
// $SQLPRETTY_CONFIG must exist; otherwise .sqlpretty.yaml is used when present
// and the defaults when it is not.
func Load(fs afero.Fs) (*Config, error) {
	path, explicit := os.LookupEnv(consts.ConfigEnvVar)
	if !explicit || path == "" {
		path, explicit = consts.DefaultConfigFile, false
	}

	exists, err := afero.Exists(fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to access config file: %s", path)
	}

	if !exists {
		if explicit {
			return nil, errors.Errorf("config file not found: %s", path)
		}

		return Default(), nil
	}

	return LoadConfigFile(fs, path)
}

// GetFormatter builds a formatter honoring the configured options.
func (c *Config) GetFormatter() *format.Formatter {
	return format.New(format.FormatterOptions{
		IndentSize: c.IndentSize,
		Keywords:   c.GetKeywords(),
	})
}

// GetKeywords returns the keyword vocabulary described by the config.
func (c *Config) GetKeywords() *lexer.Keywords {
	if len(c.Keywords.Extra) == 0 {
		return lexer.DefaultKeywords()
	}

	return lexer.NewKeywords(c.Keywords.Extra...)
}

// Matches reports whether path has one of the configured extensions.
func (c *Config) Matches(path string) bool {
	ext := filepath.Ext(path)
	for _, e := range c.Extensions {
		if strings.EqualFold(ext, e) {
			return true
		}
	}

	return false
}

func (c *Config) applyDefaults() {
	if c.IndentSize == 0 {
		c.IndentSize = format.DefaultIndentSize
	}

	if len(c.Extensions) == 0 {
		c.Extensions = []string{consts.DefaultExtension}
	}

	for i, ext := range c.Extensions {
		if ext != "" && !strings.HasPrefix(ext, ".") {
			c.Extensions[i] = "." + ext
		}
	}
}
