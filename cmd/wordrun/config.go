package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	wordrun "github.com/jamesainslie/go-wordrun"
	"github.com/jamesainslie/go-wordrun/tokenizer"
)

// config is the resolved CLI configuration. Precedence: flags, then
// WORDRUN_* environment variables, then the config file, then defaults.
type config struct {
	Separators []string
	Dictionary string
	Charset    string
	LogLevel   slog.Level
	Color      bool
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("WORDRUN")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("charset", "utf-8")
	v.SetDefault("log-level", "warn")
	v.SetDefault("color", true)
	return v
}

func loadConfig(v *viper.Viper, flags *pflag.FlagSet, path string) (config, error) {
	if err := v.BindPFlags(flags); err != nil {
		return config{}, fmt.Errorf("binding flags: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(v.GetString("log-level"))); err != nil {
		return config{}, fmt.Errorf("log-level: %w", err)
	}

	return config{
		Separators: v.GetStringSlice("separators"),
		Dictionary: v.GetString("dictionary"),
		Charset:    v.GetString("charset"),
		LogLevel:   level,
		Color:      v.GetBool("color"),
	}, nil
}

// options translates the configuration into tokenizer options.
func (c config) options(logger *slog.Logger) []wordrun.Option {
	opts := []wordrun.Option{
		wordrun.WithCharset(c.Charset),
		wordrun.WithLogger(logger),
	}
	if len(c.Separators) > 0 {
		cats := make([]tokenizer.Category, len(c.Separators))
		for i, s := range c.Separators {
			cats[i] = tokenizer.Category(s)
		}
		opts = append(opts, wordrun.WithSeparators(cats...))
	}
	return opts
}
