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

package partitioner

import (
	"github.com/docker/go-units"

	"github.com/vanilla-os/vanilla-processor/pkg/constants"
)

// NewAutoLayout returns the whole disk GPT layout: EFI, boot, two btrfs
// root slices for A/B updates and home up to the end of the disk.
func NewAutoLayout(disk string) *Table {
	table := NewTable(disk)
	table.CreatePartition(&Partition{
		End:        constants.EfiEndMiB * units.MiB,
		FileSystem: constants.EfiFs,
		MountPoint: constants.EfiDir,
		Flags:      []string{constants.EspFlag},
	})
	table.CreatePartition(&Partition{
		Start:      constants.EfiEndMiB * units.MiB,
		End:        constants.BootEndMiB * units.MiB,
		FileSystem: constants.BootFs,
		MountPoint: constants.BootDir,
	})
	table.CreatePartition(&Partition{
		Start:      constants.BootEndMiB * units.MiB,
		End:        constants.RootAEndMiB * units.MiB,
		FileSystem: constants.RootFs,
		MountPoint: constants.RootDir,
	})
	table.CreatePartition(&Partition{
		Start:      constants.RootAEndMiB * units.MiB,
		End:        constants.RootBEndMiB * units.MiB,
		FileSystem: constants.RootFs,
		MountPoint: constants.RootDir,
	})
	table.CreatePartition(&Partition{
		Start:      constants.RootBEndMiB * units.MiB,
		FileSystem: constants.RootFs,
		MountPoint: constants.HomeDir,
	})
	return table
}
