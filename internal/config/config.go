package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Settings holds the tool's configuration.
type Settings struct {
	// ElementName is the XML root tag used for generated documents.
	ElementName string `mapstructure:"element_name" yaml:"element_name"`
	// Logged controls whether values are log10-transformed before distances
	// are computed.
	Logged bool `mapstructure:"logged" yaml:"logged"`
	// Indent is the number of spaces per XML nesting level; 0 emits compact
	// output.
	Indent int `mapstructure:"indent" yaml:"indent"`
	// OutputDir, if set, anchors relative --output paths.
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir"`
}

// Default returns the built-in settings used when no config is available.
func Default() *Settings {
	return &Settings{
		ElementName: "xxx",
		Logged:      true,
		Indent:      2,
	}
}

// Save writes the given settings to the cfgFile path. If cfgFile is empty,
// it writes to ~/.taxadist/config.yaml, creating the directory if necessary.
func Save(s *Settings, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".taxadist")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads settings from file, env, and defaults.
// Precedence: env (TAXADIST_*) > config file > defaults.
func Load(cfgFile string) (*Settings, error) {
	v := viper.New()
	v.SetEnvPrefix("TAXADIST")
	v.AutomaticEnv()

	d := Default()
	v.SetDefault("element_name", d.ElementName)
	v.SetDefault("logged", d.Logged)
	v.SetDefault("indent", d.Indent)
	v.SetDefault("output_dir", "")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		v.AddConfigPath(filepath.Join(home, ".taxadist"))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &s, nil
}
