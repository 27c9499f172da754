// Package config loads CLI settings from langtime.yaml, LANGTIME_* environment
// variables and command line flags, in increasing order of precedence.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/td0m/langtime/pkg/langtime"
)

// Keys of langtime.yaml. The environment variable of a key is LANGTIME_<KEY>.
const (
	KeyDialect   = "dialect"
	KeyFullMatch = "full_match"
	KeyLayout    = "layout"
	KeyDebug     = "debug"
)

// flagKeys maps flag names to config keys where they differ.
var flagKeys = map[string]string{
	"dialect": KeyDialect,
	"full":    KeyFullMatch,
	"layout":  KeyLayout,
	"debug":   KeyDebug,
}

// Config is the merged result of defaults, file, environment and flags.
type Config struct {
	Parse  langtime.Config
	Layout string
	Debug  bool
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyDialect, langtime.UK.String())
	v.SetDefault(KeyFullMatch, false)
	v.SetDefault(KeyLayout, "")
	v.SetDefault(KeyDebug, false)
}

// Load reads file if it is set, otherwise langtime.yaml from
// $HOME/.config/langtime or the working directory. A missing default file is
// not an error. flags may be nil.
func Load(file string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("langtime")
		v.SetConfigType("yaml")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "langtime"))
		}
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("LANGTIME")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, errors.Wrapf(err, "binding flag %q", name)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || file != "" {
			return nil, errors.Wrap(err, "error reading config file")
		}
	}

	dialect, err := langtime.ParseDialect(v.GetString(KeyDialect))
	if err != nil {
		return nil, errors.Wrap(err, "invalid dialect")
	}

	return &Config{
		Parse: langtime.Config{
			Dialect:   dialect,
			FullMatch: v.GetBool(KeyFullMatch),
		},
		Layout: v.GetString(KeyLayout),
		Debug:  v.GetBool(KeyDebug),
	}, nil
}
