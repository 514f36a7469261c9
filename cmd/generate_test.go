/*
Copyright © 2024 Vanilla OS Contributors

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

package cmd

import (
	"bytes"
	"errors"
	"os"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/viper"
	"github.com/twpayne/go-vfs/vfst"

	pkgConfig "github.com/vanilla-os/vanilla-processor/pkg/config"
	"github.com/vanilla-os/vanilla-processor/pkg/constants"
	eleError "github.com/vanilla-os/vanilla-processor/pkg/error"
	"github.com/vanilla-os/vanilla-processor/pkg/mocks"
)

const autoFinals = `- users:
    username: bob
    fullname: Bob B.
    password: pw
- timezone:
    region: Europe
    zone: Rome
- disk:
    auto:
      disk: /dev/sda
`

var _ = Describe("Generate", Label("generate", "cmd"), func() {
	var fs *vfst.TestFS
	var runner *mocks.FakeRunner
	var cleanup func()
	var err error

	BeforeEach(func() {
		viper.Reset()
		fs, cleanup, err = vfst.NewTestFS(map[string]interface{}{
			"/tmp":          &vfst.Dir{Perm: 0o777},
			"/finals.yaml":  autoFinals,
			"/unknown.yaml": "- bootloader: grub\n- keyboard: us\n",
			"/manual.json":  `[{"disk": {"disk": "/dev/sda", "root": {"mp": "/", "fs": "btrfs", "size": 20000}}}]`,
			"/manual-flag.yaml":   "- disk: {manual: true}\n",
			"/manual-parts.yaml":  "- disk: {sda1: {size: 10G}}\n",
			"/manual-scalar.yaml": "- disk: /dev/sda\n",
			"/auto-empty.yaml":    "- disk: {auto: {}}\n",
		})
		Expect(err).Should(BeNil())
		runner = mocks.NewFakeRunner()
		rootCmd = NewRootCmd()
		_ = NewGenerateCmd(rootCmd, pkgConfig.WithFs(fs), pkgConfig.WithRunner(runner))
	})
	AfterEach(func() {
		cleanup()
		_ = os.Unsetenv(constants.FakeEnv)
	})

	run := func(args ...string) (string, error) {
		args = append([]string{"generate", "--quiet", "--config-dir", "/etc/vanilla-installer", "--tmp-dir", "/tmp"}, args...)
		_, out, err := executeCommandC(rootCmd, args...)
		return strings.TrimSpace(out), err
	}

	It("outputs usage if no FINALS_FILE param", Label("args"), func() {
		buf := new(bytes.Buffer)
		rootCmd.SetOut(buf)
		rootCmd.SetErr(buf)
		_, _, err := executeCommandC(rootCmd, "generate")
		// Restore cobra output
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		Expect(err).ToNot(BeNil())
		Expect(buf.String()).To(ContainSubstring("Usage:"))
	})
	It("prints the path of the generated script", func() {
		path, err := run("/finals.yaml")
		Expect(err).ToNot(HaveOccurred())
		Expect(path).To(HavePrefix("/tmp/vanilla-install-"))

		script, err := fs.ReadFile(path)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(script)).To(ContainSubstring("--username 'bob'"))
		Expect(string(script)).To(ContainSubstring("sudo abroot-adapter '/dev/sda' 'Europe' 'Rome'"))

		manifest, err := fs.ReadFile(constants.ManifestRemove)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(manifest)).To(Equal("vanilla-installer\ngparted\n"))
	})
	It("honors the hostname and manifest flags", Label("flags"), func() {
		path, err := run("--hostname", "box", "--manifest", "/tmp/remove", "/finals.yaml")
		Expect(err).ToNot(HaveOccurred())
		script, err := fs.ReadFile(path)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(script)).To(ContainSubstring("-r '/tmp/remove' -h 'box'"))
	})
	It("skips the install command with --skip-install", Label("flags"), func() {
		path, err := run("--skip-install", "/finals.yaml")
		Expect(err).ToNot(HaveOccurred())
		script, err := fs.ReadFile(path)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(script)).ToNot(ContainSubstring("distinst"))
		Expect(string(script)).To(ContainSubstring("abroot-adapter"))
	})
	It("enables the fake run from the environment", Label("env"), func() {
		Expect(os.Setenv(constants.FakeEnv, "true")).To(Succeed())
		path, err := run("/finals.yaml")
		Expect(err).ToNot(HaveOccurred())
		script, err := fs.ReadFile(path)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(script)).ToNot(ContainSubstring("distinst"))
		Expect(string(script)).To(HaveSuffix("exit 1\n"))
	})
	It("enables the fake run from an empty variable", Label("env"), func() {
		Expect(os.Setenv(constants.FakeEnv, "")).To(Succeed())
		path, err := run("/finals.yaml")
		Expect(err).ToNot(HaveOccurred())
		script, err := fs.ReadFile(path)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(script)).To(HaveSuffix("exit 1\n"))
	})
	It("runs the real install when the fake flag is disabled", Label("env", "flags"), func() {
		Expect(os.Setenv(constants.FakeEnv, "yes")).To(Succeed())
		path, err := run("--fake=false", "/finals.yaml")
		Expect(err).ToNot(HaveOccurred())
		script, err := fs.ReadFile(path)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(script)).To(ContainSubstring("distinst"))
	})
	It("ignores unknown categories", func() {
		path, err := run("/unknown.yaml")
		Expect(err).ToNot(HaveOccurred())
		script, err := fs.ReadFile(path)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(script)).To(ContainSubstring("-k 'us'"))
		Expect(string(script)).ToNot(ContainSubstring("grub"))
	})
	It("fails with the decoding exit code on auto requests without a disk", func() {
		_, err := run("/auto-empty.yaml")
		Expect(err).To(HaveOccurred())
		Expect(eleError.ExitCode(err)).To(Equal(eleError.DecodeFinals))
	})
	It("fails with the reading exit code on missing files", func() {
		_, err := run("/missing.yaml")
		Expect(err).To(HaveOccurred())
		Expect(eleError.ExitCode(err)).To(Equal(eleError.ReadingFinals))
	})
	It("fails on manual partitioning requests", func() {
		_, err := run("/manual.json")
		Expect(err).To(HaveOccurred())
		var iErr *eleError.InstallerError
		Expect(errors.As(err, &iErr)).To(BeTrue())
		Expect(iErr.ExitCode()).To(Equal(eleError.Unimplemented))
	})
	It("reports any other disk payload as unimplemented after writing the manifest", func() {
		for _, file := range []string{"/manual-flag.yaml", "/manual-parts.yaml", "/manual-scalar.yaml"} {
			_, err := run(file)
			Expect(err).To(HaveOccurred(), file)
			Expect(eleError.ExitCode(err)).To(Equal(eleError.Unimplemented), file)
			Expect(fs.ReadFile(constants.ManifestRemove)).To(Equal([]byte("vanilla-installer\ngparted\n")), file)
			Expect(fs.Remove(constants.ManifestRemove)).To(Succeed())
		}
	})
})
