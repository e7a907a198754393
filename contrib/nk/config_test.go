package main

import (
	"testing"

	"github.com/inconshreveable/log15"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/suite"
)

type testConfig struct {
	suite.Suite
}

func (t *testConfig) newCommand(level *FlagLogLevel, format *FlagOutputFormat, workers *int) *cobra.Command {
	cmd := &cobra.Command{Use: "test", Run: func(*cobra.Command, []string) {}}
	cmd.Flags().Var(level, "log-level", "")
	cmd.Flags().Var(format, "format", "")
	cmd.Flags().IntVar(workers, "workers", 1, "")

	return cmd
}

func (t *testConfig) TestParse() {
	c, err := newConfigFromBytes([]byte(`
log:
  level: debug
  format: json
output: json
workers: 3
`))
	t.NoError(err)
	t.Equal("debug", c.Log.Level)
	t.Equal("json", c.Log.Format)
	t.Equal("json", c.Output)
	t.Equal(3, c.Workers)
}

func (t *testConfig) TestUnknownKey() {
	_, err := newConfigFromBytes([]byte("unknown: 1\n"))
	t.Error(err)
}

func (t *testConfig) TestApply() {
	level := FlagLogLevel{lvl: log15.LvlError}
	format := FlagOutputFormat{f: "yaml"}
	var workers int

	cmd := t.newCommand(&level, &format, &workers)
	t.NoError(cmd.Flags().Parse(nil))

	c := Config{Log: LogConfig{Level: "debug"}, Output: "json", Workers: 5}
	t.NoError(c.apply(cmd))

	t.Equal(log15.LvlDebug, level.lvl)
	t.Equal("json", format.f)
	t.Equal(5, workers)
}

func (t *testConfig) TestFlagsOverride() {
	level := FlagLogLevel{lvl: log15.LvlError}
	format := FlagOutputFormat{f: "yaml"}
	var workers int

	cmd := t.newCommand(&level, &format, &workers)
	t.NoError(cmd.Flags().Parse([]string{"--log-level", "warn", "--workers", "2"}))

	c := Config{Log: LogConfig{Level: "debug"}, Output: "json", Workers: 5}
	t.NoError(c.apply(cmd))

	t.Equal(log15.LvlWarn, level.lvl)
	t.Equal("json", format.f)
	t.Equal(2, workers)
}

func (t *testConfig) TestInvalidValue() {
	level := FlagLogLevel{lvl: log15.LvlError}
	format := FlagOutputFormat{f: "yaml"}
	var workers int

	cmd := t.newCommand(&level, &format, &workers)
	t.NoError(cmd.Flags().Parse(nil))

	c := Config{Output: "toml"}
	t.Error(c.apply(cmd))
}

func TestConfig(t *testing.T) {
	suite.Run(t, new(testConfig))
}
