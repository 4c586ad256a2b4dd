package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	ListenAddr  string `yaml:"listen_addr"   mapstructure:"listen_addr"`
	Directory   string `yaml:"directory"     mapstructure:"directory"` // path to users/roles JSON
	JWKS        string `yaml:"jwks"          mapstructure:"jwks"`      // path to JWKS for bearer subjects
	FGAEndpoint string `yaml:"fga_endpoint"  mapstructure:"fga_endpoint"`
}

func ensureDir(p string) error { return os.MkdirAll(p, 0o755) }

func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".pdp"), nil
}

func loadConfig(path string) (*Config, error) {
	if path == "" {
		dir, err := configDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, "config.yaml")
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Defaults
	v.SetDefault("listen_addr", ":8086")
	v.SetDefault("directory", "")
	v.SetDefault("jwks", "")
	v.SetDefault("fga_endpoint", "")

	// Env overrides: PDP_LISTEN_ADDR, PDP_DIRECTORY, etc.
	v.SetEnvPrefix("PDP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// Read file if it exists, otherwise return defaults without error
	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

func saveConfig(path string, c *Config) error {
	if path == "" {
		dir, err := configDir()
		if err != nil {
			return err
		}
		path = filepath.Join(dir, "config.yaml")
	}
	if err := ensureDir(filepath.Dir(path)); err != nil {
		return err
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.Set("listen_addr", c.ListenAddr)
	v.Set("directory", c.Directory)
	v.Set("jwks", c.JWKS)
	v.Set("fga_endpoint", c.FGAEndpoint)

	if err := v.WriteConfigAs(path); err != nil {
		return err
	}

	// Restrict perms to owner
	_ = os.Chmod(path, 0o600)
	return nil
}
