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

package mocks

// FakeMemory reports a fixed amount of host memory
type FakeMemory struct {
	Bytes       int64
	ReturnError error
	calls       int
}

func (m *FakeMemory) TotalBytes() (int64, error) {
	m.calls++
	return m.Bytes, m.ReturnError
}

// Calls returns how many times the memory was queried
func (m FakeMemory) Calls() int {
	return m.calls
}
