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

package v1_test

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/vanilla-os/vanilla-processor/pkg/mocks"
	v1 "github.com/vanilla-os/vanilla-processor/pkg/types/v1"
)

var _ = Describe("Runner", Label("types", "runner"), func() {
	It("Sets and gets the logger on the fake runner", func() {
		r := mocks.NewFakeRunner()
		Expect(r.GetLogger()).To(BeNil())
		logger := v1.NewNullLogger()
		r.SetLogger(logger)
		Expect(r.GetLogger()).To(Equal(logger))
	})
	It("Sets and gets the logger on the real runner", func() {
		r := v1.RealRunner{}
		Expect(r.GetLogger()).To(BeNil())
		logger := v1.NewNullLogger()
		r.SetLogger(logger)
		Expect(r.GetLogger()).To(Equal(logger))
	})
	It("logs the lookup result when on debug", func() {
		memLog := &bytes.Buffer{}
		logger := v1.NewBufferLogger(memLog)
		logger.SetLevel(v1.DebugLevel())
		r := v1.RealRunner{Logger: logger}
		Expect(r.CommandExists("true")).To(BeTrue())
		Expect(memLog.String()).To(ContainSubstring("true found at"))
	})
	It("logs when command is not found in debug mode", func() {
		memLog := &bytes.Buffer{}
		logger := v1.NewBufferLogger(memLog)
		logger.SetLevel(v1.DebugLevel())
		r := v1.RealRunner{Logger: logger}
		Expect(r.CommandExists("IAmMissing")).To(BeFalse())
		Expect(memLog.String()).To(ContainSubstring("IAmMissing not found in PATH"))
	})
	It("returns false if command does not exists", func() {
		r := v1.RealRunner{}
		exists := r.CommandExists("THISCOMMANDSHOULDNOTBETHERECOMEON")
		Expect(exists).To(BeFalse())
	})
	It("returns true if command exists", func() {
		r := v1.RealRunner{}
		exists := r.CommandExists("true")
		Expect(exists).To(BeTrue())
	})
	It("reports missing commands on the fake runner", func() {
		r := mocks.NewFakeRunner()
		r.CmdNotFound = []string{"almost"}
		Expect(r.CommandExists("almost")).To(BeFalse())
		Expect(r.CommandExists("distinst")).To(BeTrue())
		Expect(r.GetLookups()).To(Equal([]string{"almost", "distinst"}))
	})
})

var _ = Describe("Logger", Label("types", "logger"), func() {
	It("writes into the buffer", func() {
		memLog := &bytes.Buffer{}
		logger := v1.NewBufferLogger(memLog)
		logger.Info("info message")
		logger.Debug("hidden message")
		Expect(memLog.String()).To(ContainSubstring("info message"))
		Expect(memLog.String()).ToNot(ContainSubstring("hidden message"))
	})
	It("reports the debug level", func() {
		logger := v1.NewNullLogger()
		Expect(v1.IsDebugLevel(logger)).To(BeFalse())
		logger.SetLevel(v1.DebugLevel())
		Expect(v1.IsDebugLevel(logger)).To(BeTrue())
	})
})
