package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/narravis/narravis/pkg/errors"
	"github.com/narravis/narravis/pkg/layout"
)

// configFileName is the config file looked up in the working directory and
// under the XDG config dir.
const configFileName = "narravis.toml"

// fileConfig is the narravis.toml schema. Absent keys keep their defaults;
// command-line flags override whatever the file sets.
type fileConfig struct {
	Layout layout.Config `toml:"layout"`
	Server serverConfig  `toml:"server"`
	Cache  cacheConfig   `toml:"cache"`
}

type serverConfig struct {
	Addr     string `toml:"addr"`
	MongoURI string `toml:"mongo_uri"`
}

type cacheConfig struct {
	Dir       string `toml:"dir"`
	RedisAddr string `toml:"redis_addr"`
	RedisDB   int    `toml:"redis_db"`
}

// defaultFileConfig returns the config used when no file is found.
func defaultFileConfig() fileConfig {
	return fileConfig{
		Layout: layout.DefaultConfig(),
		Server: serverConfig{Addr: ":8080"},
	}
}

// loadConfig reads the config file at path, or searches the standard
// locations when path is empty. A missing file is not an error; the defaults
// come back unchanged.
func loadConfig(path string) (fileConfig, error) {
	cfg := defaultFileConfig()

	if path == "" {
		path = findConfigFile()
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return cfg, err
	}

	// Decoding over the defaults merges: keys present in the file win,
	// everything else keeps its default.
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}

	if err := cfg.Layout.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// findConfigFile returns the first config file found in the standard
// locations, or "" when none exists.
func findConfigFile() string {
	candidates := []string{configFileName}
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		candidates = append(candidates, filepath.Join(configHome, appName, configFileName))
	} else if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", appName, configFileName))
	}

	for _, p := range candidates {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}
