package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/idilsaglam/sortable/internal/store"
)

// Config holds application configuration.
type Config struct {
	Data DataConfig
	List ListConfig
	UI   UIConfig
	Log  LogConfig
}

// DataConfig says where the list lives on disk.
type DataConfig struct {
	Path string
}

// ListConfig names the list; the name prefixes row keys and drop events.
type ListConfig struct {
	Name string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme string
	Mouse bool
	Group bool
}

// LogConfig controls the debug log. An empty File disables logging.
type LogConfig struct {
	File  string
	Level string
}

// Flags registers the command-line overrides on fs.
func Flags(fs *pflag.FlagSet) {
	fs.String("config", "", "config file (default $HOME/.config/sortable/config.yaml)")
	fs.String("data", "", "list file (.json or .yaml)")
	fs.String("theme", "", "classic | neon | mono")
	fs.Bool("mouse", true, "enable mouse drag and click")
	fs.Bool("group", false, "group output by pending/done")
	fs.String("log-file", "", "write debug log to this file")
}

// Load reads configuration from file, env and flags, in increasing priority.
// Env var overrides use prefix SORTABLE_. fs may be nil.
func Load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()

	v.SetDefault("data.path", defaultDataPath())
	v.SetDefault("list.name", "todos")
	v.SetDefault("ui.theme", "classic")
	v.SetDefault("ui.mouse", true)
	v.SetDefault("ui.group", false)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")

	v.SetConfigType("yaml")
	cfgPath := os.Getenv("SORTABLE_CONFIG")
	if fs != nil {
		if f := fs.Lookup("config"); f != nil && f.Changed {
			cfgPath = f.Value.String()
		}
	}
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "sortable"))
		}
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SORTABLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for key, flag := range map[string]string{
			"data.path": "data",
			"ui.theme":  "theme",
			"ui.mouse":  "mouse",
			"ui.group":  "group",
			"log.file":  "log-file",
		} {
			if f := fs.Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", flag, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		// no config file is fine; a broken one is not
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// todos.json in the working directory
func defaultDataPath() string {
	wd, err := os.Getwd()
	if err != nil {
		return store.DefaultFileName
	}
	return filepath.Join(wd, store.DefaultFileName)
}
