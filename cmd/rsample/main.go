/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fentec-project/rmath/logger"
	"github.com/fentec-project/rmath/rng"
	"github.com/fentec-project/rmath/sample"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cmdMain = &cobra.Command{
	Use:               "rsample",
	Short:             "Reproducible random variates and Normal probabilities",
	PersistentPreRunE: setup,
	SilenceUsage:      true,
}

var flagMain struct {
	Config  string
	Summary bool
}

// cfg merges the persistent flags, RSAMPLE_* environment variables and
// the optional configuration file.
var cfg *viper.Viper

type config struct {
	Kind       string `mapstructure:"kind"`
	NormalKind string `mapstructure:"normal-kind"`
	Seed       uint32 `mapstructure:"seed"`
	LogLevel   string `mapstructure:"log-level"`
	LogFormat  string `mapstructure:"log-format"`
}

func init() {
	flags := cmdMain.PersistentFlags()
	flags.StringVarP(&flagMain.Config, "config", "c", "", "Configuration file (TOML or YAML)")
	flags.StringP("kind", "k", rng.MersenneTwister.String(), "Uniform engine kind")
	flags.StringP("normal-kind", "n", sample.Inversion.String(), "Normal deviate algorithm")
	flags.Uint32P("seed", "s", 1, "Engine seed")
	flags.String("log-level", "warn", "Log level (trace, debug, info, warn, error)")
	flags.String("log-format", "plain", "Log format (plain or json)")
	flags.BoolVar(&flagMain.Summary, "summary", false, "Print the count, mean and variance instead of the draws")

	initConfig()
}

func initConfig() {
	cfg = viper.New()
	cfg.SetEnvPrefix("RSAMPLE")
	cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	cfg.AutomaticEnv()
	check(cfg.BindPFlags(cmdMain.PersistentFlags()))
}

func main() {
	if err := cmdMain.Execute(); err != nil {
		os.Exit(1)
	}
}

func setup(cmd *cobra.Command, _ []string) error {
	if flagMain.Config != "" {
		cfg.SetConfigFile(flagMain.Config)
		if err := cfg.ReadInConfig(); err != nil {
			return errors.Wrap(err, "read config")
		}
	}

	c, err := loadConfig()
	if err != nil {
		return err
	}
	return logger.Configure(cmd.ErrOrStderr(), c.LogFormat, c.LogLevel)
}

func loadConfig() (*config, error) {
	c := new(config)
	if err := cfg.Unmarshal(c); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	return c, nil
}

// newEngine builds the configured uniform engine.
func newEngine() (rng.Engine, error) {
	c, err := loadConfig()
	if err != nil {
		return nil, err
	}
	kind, err := rng.ParseKind(c.Kind)
	if err != nil {
		return nil, err
	}
	return rng.New(kind, c.Seed)
}

// newNormal builds the configured Normal generator on top of newEngine.
func newNormal() (*sample.Normal, error) {
	c, err := loadConfig()
	if err != nil {
		return nil, err
	}
	nk, err := sample.ParseNormalKind(c.NormalKind)
	if err != nil {
		return nil, err
	}
	e, err := newEngine()
	if err != nil {
		return nil, err
	}
	logger.Log().Debug().Str("engine", e.Name()).Str("normal", nk.String()).Uint32("seed", c.Seed).
		Msg("generator configured")
	return sample.NewNormal(e, nk)
}

func check(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
