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

package partitioner

import (
	"fmt"
	"strings"

	"github.com/docker/go-units"

	"github.com/vanilla-os/vanilla-processor/pkg/constants"
)

// distinst flags for disk handling
const (
	BlockFlag = "-b"
	TableFlag = "-t"
	NewFlag   = "-n"
)

// Partition is a distinst partition request. Offsets are in bytes and must
// be MiB aligned; a zero Start means the beginning of the disk and a zero
// End means the end of the disk.
type Partition struct {
	Disk       string
	Kind       string
	Start      int64
	End        int64
	FileSystem string
	MountPoint string
	Flags      []string
}

func offset(b int64, fallback string) string {
	if b == 0 {
		return fallback
	}
	return fmt.Sprintf("%dM", b/units.MiB)
}

// Spec renders the partition in distinst form:
// disk:kind:start:end:fs[:mount=path][:flags=a,b]
func (p Partition) Spec() string {
	kind := p.Kind
	if kind == "" {
		kind = constants.PartitionPrimary
	}
	fields := []string{p.Disk, kind, offset(p.Start, "start"), offset(p.End, "end"), p.FileSystem}
	if p.MountPoint != "" {
		fields = append(fields, fmt.Sprintf("mount=%s", p.MountPoint))
	}
	if len(p.Flags) > 0 {
		fields = append(fields, fmt.Sprintf("flags=%s", strings.Join(p.Flags, ",")))
	}
	return strings.Join(fields, ":")
}

// Table collects the requests for a single GPT disk
type Table struct {
	disk  string
	parts []*Partition
}

func NewTable(disk string) *Table {
	return &Table{disk: disk, parts: []*Partition{}}
}

func (t *Table) Disk() string {
	return t.disk
}

func (t *Table) CreatePartition(p *Partition) {
	if p.Disk == "" {
		p.Disk = t.disk
	}
	t.parts = append(t.parts, p)
}

// Args returns the distinst arguments selecting the disk, creating the
// table and every partition, in creation order
func (t Table) Args() []string {
	opts := []string{BlockFlag, t.disk, TableFlag, fmt.Sprintf("%s:%s", t.disk, constants.GPT)}
	for _, part := range t.parts {
		opts = append(opts, NewFlag, part.Spec())
	}
	return opts
}
