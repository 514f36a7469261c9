/*
Copyright © 2022 - 2024 SUSE LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/vanilla-os/vanilla-processor/pkg/config"
	"github.com/vanilla-os/vanilla-processor/pkg/constants"
	eleError "github.com/vanilla-os/vanilla-processor/pkg/error"
	v1 "github.com/vanilla-os/vanilla-processor/pkg/types/v1"
	"github.com/vanilla-os/vanilla-processor/pkg/utils"
)

// ReadConfigRun sets up the runtime configuration: logger level, format and
// outputs, the optional env file and config file found in configDir and the
// VANILLA prefixed environment.
func ReadConfigRun(configDir string, opts ...config.GenericOptions) (*v1.Config, error) {
	cfg := config.NewConfig(append([]config.GenericOptions{config.WithLogger(v1.NewLogger())}, opts...)...)
	if cfg == nil {
		return nil, eleError.New("failed applying configuration options", eleError.ReadingConfig)
	}

	if viper.GetBool("debug") {
		cfg.Logger.SetLevel(v1.DebugLevel())
	}

	// Set formatter so both file and terminal format are equal
	cfg.Logger.SetFormatter(&logrus.TextFormatter{
		ForceColors:      true,
		DisableColors:    false,
		DisableTimestamp: false,
		FullTimestamp:    true,
	})

	// stdout is kept for command results, logs go to stderr
	var outputs []io.Writer
	if !viper.GetBool("quiet") {
		outputs = append(outputs, os.Stderr)
	}
	logfile := viper.GetString("logfile")
	if logfile != "" {
		o, err := cfg.Fs.OpenFile(logfile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, constants.FilePerm)
		if err != nil {
			cfg.Logger.Errorf("Could not open %s for logging to file: %s", logfile, err.Error())
		} else {
			outputs = append(outputs, o)
		}
	}
	if len(outputs) == 0 {
		cfg.Logger.SetOutput(io.Discard)
	} else {
		cfg.Logger.SetOutput(io.MultiWriter(outputs...))
	}

	if configDir == "" {
		configDir = constants.ConfigDir
	}

	if err := loadEnvFile(cfg, filepath.Join(configDir, constants.EnvFile)); err != nil {
		return cfg, eleError.NewFromError(err, eleError.ReadingConfig)
	}

	if err := mergeConfigFile(cfg, filepath.Join(configDir, constants.ConfigFile)); err != nil {
		return cfg, eleError.NewFromError(err, eleError.ReadingConfig)
	}

	// Set the prefix for vars so we get only the ones starting with VANILLA
	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	return cfg, nil
}

// loadEnvFile exports the variables of an env file, never overriding the
// ones already set in the environment
func loadEnvFile(cfg *v1.Config, path string) error {
	if ok, _ := utils.Exists(cfg.Fs, path); !ok {
		return nil
	}
	data, err := cfg.Fs.ReadFile(path)
	if err != nil {
		return err
	}
	vars, err := godotenv.Parse(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	for k, v := range vars {
		if _, set := os.LookupEnv(k); set {
			continue
		}
		if err = os.Setenv(k, v); err != nil {
			return err
		}
	}
	cfg.Logger.Debugf("Loaded %d variables from %s", len(vars), path)
	return nil
}

func mergeConfigFile(cfg *v1.Config, path string) error {
	if ok, _ := utils.Exists(cfg.Fs, path); !ok {
		return nil
	}
	data, err := cfg.Fs.ReadFile(path)
	if err != nil {
		return err
	}
	viper.SetConfigType("yaml")
	if err = viper.MergeConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	cfg.Logger.Debugf("Loaded config file %s", path)
	return nil
}

type scriptToggle struct {
	key string
	env string
}

// Script toggles are enabled by the mere presence of their variable, any
// value including an empty one counts
var scriptToggles = []scriptToggle{
	{key: "fake", env: constants.FakeEnv},
	{key: "skip-install", env: constants.SkipInstallEnv},
	{key: "skip-postinstall", env: constants.SkipPostEnv},
}

// applyScriptToggles pins the toggles set on the command line or present in
// the environment, flags first. Unset toggles fall back to the config file.
func applyScriptToggles(cfg *v1.Config, flags *pflag.FlagSet) error {
	for _, t := range scriptToggles {
		if flags != nil {
			if f := flags.Lookup(t.key); f != nil && f.Changed {
				enabled, err := flags.GetBool(t.key)
				if err != nil {
					return err
				}
				viper.Set(t.key, enabled)
				continue
			}
		}
		if _, set := os.LookupEnv(t.env); set {
			cfg.Logger.Debugf("%s is set, enabling '%s'", t.env, t.key)
			viper.Set(t.key, true)
		}
	}
	return nil
}

// ReadGenerateSpec merges flags, environment and config file values into a
// GenerateSpec and loads its finals from finalsFile
func ReadGenerateSpec(cfg *v1.Config, flags *pflag.FlagSet, finalsFile string) (*v1.GenerateSpec, error) {
	spec := config.NewGenerateSpec()

	if flags != nil {
		if err := viper.BindPFlags(flags); err != nil {
			return nil, eleError.NewFromError(err, eleError.ReadingConfig)
		}
	}
	if err := applyScriptToggles(cfg, flags); err != nil {
		return nil, eleError.NewFromError(err, eleError.ReadingConfig)
	}
	if err := viper.Unmarshal(spec); err != nil {
		cfg.Logger.Errorf("Failed reading generate settings: %s", err)
		return nil, eleError.NewFromError(err, eleError.ReadingConfig)
	}

	finals, err := ReadFinals(cfg, finalsFile)
	if err != nil {
		cfg.Logger.Errorf("Failed reading final data: %s", err)
		return nil, err
	}
	spec.Finals = finals

	return spec, spec.Sanitize()
}

// ReadFinals decodes a YAML or JSON finals file. Categories without a
// fragment type are skipped with a warning.
func ReadFinals(cfg *v1.Config, path string) (v1.Finals, error) {
	data, err := cfg.Fs.ReadFile(path)
	if err != nil {
		return nil, eleError.NewFromError(err, eleError.ReadingFinals)
	}
	finals, unknown, err := v1.ParseFinals(data)
	if err != nil {
		return nil, eleError.NewFromError(fmt.Errorf("decoding %s: %w", path, err), eleError.DecodeFinals)
	}
	for _, category := range unknown {
		cfg.Logger.Warnf("Ignoring unknown configuration category '%s' in %s", category, path)
	}
	return finals, nil
}
