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

package error

import "errors"

// InstallerError carries an exit code alongside the error so cmd.Execute
// can terminate with it
type InstallerError struct {
	err  error
	code int
}

func (e *InstallerError) Error() string {
	return e.err.Error()
}

func (e *InstallerError) ExitCode() int {
	return e.code
}

func (e *InstallerError) Unwrap() error {
	return e.err
}

// NewFromError wraps an existing error with an exit code. A nil error stays nil.
func NewFromError(err error, code int) error {
	if err == nil {
		return nil
	}
	return &InstallerError{err: err, code: code}
}

// New generates an InstallerError from a string
func New(err string, code int) error {
	return &InstallerError{err: errors.New(err), code: code}
}

// ExitCode extracts the exit code of err, Unknown if it does not carry one
func ExitCode(err error) int {
	var iErr *InstallerError
	if errors.As(err, &iErr) {
		return iErr.ExitCode()
	}
	return Unknown
}
