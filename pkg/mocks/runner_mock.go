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

package mocks

import (
	v1 "github.com/vanilla-os/vanilla-processor/pkg/types/v1"
)

// FakeRunner records command lookups. Every command is reported present on
// PATH except the ones listed in CmdNotFound.
type FakeRunner struct {
	lookups     []string
	Logger      v1.Logger
	CmdNotFound []string
}

func NewFakeRunner() *FakeRunner {
	return &FakeRunner{lookups: []string{}}
}

func (r *FakeRunner) CommandExists(command string) bool {
	r.lookups = append(r.lookups, command)
	for _, missing := range r.CmdNotFound {
		if command == missing {
			r.debug(command + " not found in PATH")
			return false
		}
	}
	return true
}

// GetLookups returns the command names queried through CommandExists
func (r FakeRunner) GetLookups() []string {
	return r.lookups
}

func (r FakeRunner) GetLogger() v1.Logger {
	return r.Logger
}

func (r *FakeRunner) SetLogger(logger v1.Logger) {
	r.Logger = logger
}

func (r FakeRunner) debug(msg string) {
	if r.Logger != nil {
		r.Logger.Debug(msg)
	}
}
