package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const DefaultMaxSwaps = 10

type Config struct {
	Debug    bool
	MaxSwaps int
	Threads  int
	// Args holds the positional arguments left over after flag parsing.
	Args []string
}

func (c *Config) Load(args []string) error {
	fs := pflag.NewFlagSet("wafflesolver", pflag.ContinueOnError)
	fs.Bool("debug", false, "debug logging on")
	fs.Int("max-swaps", DefaultMaxSwaps, "maximum swap path length to explore before abandoning a branch")
	fs.Int("threads", 0, "number of filler workers; 0 means one per CPU")
	if err := fs.Parse(args); err != nil {
		return err
	}
	v := viper.New()
	v.SetEnvPrefix("waffle")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return err
	}
	c.Debug = v.GetBool("debug")
	c.MaxSwaps = v.GetInt("max-swaps")
	c.Threads = v.GetInt("threads")
	c.Args = fs.Args()
	return nil
}
