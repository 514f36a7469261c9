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
	"github.com/twpayne/go-vfs"

	"github.com/vanilla-os/vanilla-processor/pkg/constants"
	v1 "github.com/vanilla-os/vanilla-processor/pkg/types/v1"
)

type GenericOptions func(a *v1.Config) error

func WithFs(fs v1.FS) func(r *v1.Config) error {
	return func(r *v1.Config) error {
		r.Fs = fs
		return nil
	}
}

func WithLogger(logger v1.Logger) func(r *v1.Config) error {
	return func(r *v1.Config) error {
		r.Logger = logger
		return nil
	}
}

func WithRunner(runner v1.Runner) func(r *v1.Config) error {
	return func(r *v1.Config) error {
		r.Runner = runner
		return nil
	}
}

func NewConfig(opts ...GenericOptions) *v1.Config {
	log := v1.NewLogger()
	c := &v1.Config{
		Fs:     vfs.OSFS,
		Logger: log,
	}
	for _, o := range opts {
		err := o(c)
		if err != nil {
			log.Errorf("error applying config option: %s", err.Error())
			return nil
		}
	}

	// delay runner creation after we have run over the options in case we use WithRunner
	if c.Runner == nil {
		c.Runner = &v1.RealRunner{Logger: c.Logger}
	}

	// WithRunner does not set a logger on the runner, point ours into it
	if c.Runner.GetLogger() == nil {
		c.Runner.SetLogger(c.Logger)
	}

	return c
}

// NewGenerateSpec returns a spec carrying the fixed distinst defaults
func NewGenerateSpec() *v1.GenerateSpec {
	return &v1.GenerateSpec{
		Source:       constants.SourceImage,
		Hostname:     constants.DefaultHostname,
		ManifestPath: constants.ManifestRemove,
		Finals:       v1.Finals{},
	}
}
