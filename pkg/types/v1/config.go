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

package v1

import (
	"github.com/vanilla-os/vanilla-processor/pkg/constants"
)

// Config is the runtime environment shared by all actions
type Config struct {
	Logger Logger
	Fs     FS
	Runner Runner
}

// GenerateSpec describes a single script generation request. The CLI fills
// Fake, SkipInstall and SkipPostInstall from flags or VANILLA_* variables.
type GenerateSpec struct {
	LogPath         string `yaml:"log-path,omitempty" mapstructure:"log-path"`
	PreRun          string `yaml:"pre-run,omitempty" mapstructure:"pre-run"`
	PostRun         string `yaml:"post-run,omitempty" mapstructure:"post-run"`
	Fake            bool   `yaml:"fake,omitempty" mapstructure:"fake"`
	SkipInstall     bool   `yaml:"skip-install,omitempty" mapstructure:"skip-install"`
	SkipPostInstall bool   `yaml:"skip-postinstall,omitempty" mapstructure:"skip-postinstall"`
	Source          string `yaml:"source,omitempty" mapstructure:"source"`
	Hostname        string `yaml:"hostname,omitempty" mapstructure:"hostname"`
	ManifestPath    string `yaml:"manifest,omitempty" mapstructure:"manifest"`
	TempDir         string `yaml:"tmp-dir,omitempty" mapstructure:"tmp-dir"`
	Finals          Finals `yaml:"-" mapstructure:"-"`
}

// Sanitize fills the fixed defaults for any value left empty
func (g *GenerateSpec) Sanitize() error {
	if g.Source == "" {
		g.Source = constants.SourceImage
	}
	if g.Hostname == "" {
		g.Hostname = constants.DefaultHostname
	}
	if g.ManifestPath == "" {
		g.ManifestPath = constants.ManifestRemove
	}
	return nil
}
