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

package action

import (
	"regexp"
	"strings"

	"github.com/sanity-io/litter"

	v1 "github.com/vanilla-os/vanilla-processor/pkg/types/v1"
)

var dumper = litter.Options{
	HidePrivateFields: true,
	StripPackageNames: true,
	FieldExclusions:   regexp.MustCompile(`^Password$`),
}

// DumpFinals returns a readable multi line representation of the final
// data with passwords left out
func DumpFinals(finals v1.Finals) []string {
	return strings.Split(strings.TrimRight(dumper.Sdump(finals), "\n"), "\n")
}
