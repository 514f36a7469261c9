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

package config_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/twpayne/go-vfs"
	"github.com/twpayne/go-vfs/vfst"

	"github.com/vanilla-os/vanilla-processor/pkg/config"
	"github.com/vanilla-os/vanilla-processor/pkg/constants"
	"github.com/vanilla-os/vanilla-processor/pkg/mocks"
	v1 "github.com/vanilla-os/vanilla-processor/pkg/types/v1"
)

var _ = Describe("Types", Label("types", "config"), func() {
	Describe("Config", func() {
		Describe("ConfigOptions", func() {
			It("Sets the proper interfaces in the config struct", func() {
				fs, cleanup, err := vfst.NewTestFS(map[string]interface{}{})
				Expect(err).ToNot(HaveOccurred())
				defer cleanup()
				runner := mocks.NewFakeRunner()
				logger := v1.NewNullLogger()
				c := config.NewConfig(
					config.WithFs(fs),
					config.WithRunner(runner),
					config.WithLogger(logger),
				)
				Expect(c.Fs).To(Equal(fs))
				Expect(c.Runner).To(Equal(runner))
				Expect(c.Logger).To(Equal(logger))
				Expect(runner.GetLogger()).To(Equal(logger))
			})
			It("Sets the runner if not provided", func() {
				logger := v1.NewNullLogger()
				c := config.NewConfig(config.WithLogger(logger))
				Expect(c.Runner).ToNot(BeNil())
				Expect(c.Runner.GetLogger()).To(Equal(logger))
				Expect(c.Fs).To(Equal(vfs.OSFS))
			})
			It("Keeps the logger the runner already has", func() {
				runner := mocks.NewFakeRunner()
				own := v1.NewNullLogger()
				runner.SetLogger(own)
				c := config.NewConfig(config.WithRunner(runner), config.WithLogger(v1.NewNullLogger()))
				Expect(c.Runner.GetLogger()).To(BeIdenticalTo(own))
			})
		})
		Describe("GenerateSpec", func() {
			It("Carries the distinst defaults", func() {
				spec := config.NewGenerateSpec()
				Expect(spec.Source).To(Equal(constants.SourceImage))
				Expect(spec.Hostname).To(Equal(constants.DefaultHostname))
				Expect(spec.ManifestPath).To(Equal(constants.ManifestRemove))
				Expect(spec.Fake).To(BeFalse())
				Expect(spec.SkipInstall).To(BeFalse())
				Expect(spec.SkipPostInstall).To(BeFalse())
				Expect(spec.Finals).To(BeEmpty())
			})
			It("Restores emptied defaults on sanitize", func() {
				spec := &v1.GenerateSpec{Hostname: "box"}
				Expect(spec.Sanitize()).To(Succeed())
				Expect(spec.Source).To(Equal(constants.SourceImage))
				Expect(spec.Hostname).To(Equal("box"))
				Expect(spec.ManifestPath).To(Equal(constants.ManifestRemove))
			})
		})
	})
})
