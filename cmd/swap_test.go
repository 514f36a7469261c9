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
	"errors"
	"strings"

	"github.com/docker/go-units"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/viper"

	eleError "github.com/vanilla-os/vanilla-processor/pkg/error"
	"github.com/vanilla-os/vanilla-processor/pkg/mocks"
)

var _ = Describe("Swap size", Label("swap", "cmd"), func() {
	var mem *mocks.FakeMemory

	BeforeEach(func() {
		viper.Reset()
		mem = &mocks.FakeMemory{Bytes: 4 * units.GiB}
		rootCmd = NewRootCmd()
		_ = NewSwapSizeCmd(rootCmd, mem)
	})
	It("prints the recommended size in MiB", func() {
		_, out, err := executeCommandC(rootCmd, "swap-size", "--quiet")
		Expect(err).ToNot(HaveOccurred())
		Expect(strings.TrimSpace(out)).To(Equal("8192"))
		Expect(mem.Calls()).To(Equal(1))
	})
	It("fails if the host memory can't be read", func() {
		mem.ReturnError = errors.New("no meminfo")
		_, _, err := executeCommandC(rootCmd, "swap-size", "--quiet")
		Expect(err).To(HaveOccurred())
		Expect(eleError.ExitCode(err)).To(Equal(eleError.MemoryInfo))
	})
})
