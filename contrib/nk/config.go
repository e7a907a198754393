package main

import (
	"io/ioutil"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/xerrors"
	"gopkg.in/yaml.v2"
)

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Out    string `yaml:"out"`
}

type Config struct {
	Log     LogConfig `yaml:"log"`
	Output  string    `yaml:"output"`
	Workers int       `yaml:"workers"`
}

func newConfigFromBytes(b []byte) (Config, error) {
	var c Config
	if err := yaml.UnmarshalStrict(b, &c); err != nil {
		return Config{}, xerrors.Errorf("failed to parse config: %w", err)
	}

	return c, nil
}

func loadConfig(f string) (Config, error) {
	b, err := ioutil.ReadFile(f)
	if err != nil {
		return Config{}, err
	}

	return newConfigFromBytes(b)
}

// apply sets the flags which were not given in the command line.
func (c Config) apply(cmd *cobra.Command) error {
	flags := cmd.Flags()

	set := func(name, value string) error {
		if len(value) < 1 || flags.Lookup(name) == nil || flags.Changed(name) {
			return nil
		}

		if err := flags.Set(name, value); err != nil {
			return xerrors.Errorf("invalid config value for %q: %w", name, err)
		}

		return nil
	}

	if err := set("log-level", c.Log.Level); err != nil {
		return err
	}
	if err := set("log-format", c.Log.Format); err != nil {
		return err
	}
	if err := set("log-out", c.Log.Out); err != nil {
		return err
	}
	if err := set("format", c.Output); err != nil {
		return err
	}
	if c.Workers > 0 {
		if err := set("workers", strconv.Itoa(c.Workers)); err != nil {
			return err
		}
	}

	return nil
}
