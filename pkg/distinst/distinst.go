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

// Package distinst models a distinst invocation built out of installer
// final data.
package distinst

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vanilla-os/vanilla-processor/pkg/constants"
	eleError "github.com/vanilla-os/vanilla-processor/pkg/error"
	"github.com/vanilla-os/vanilla-processor/pkg/partitioner"
	v1 "github.com/vanilla-os/vanilla-processor/pkg/types/v1"
	"github.com/vanilla-os/vanilla-processor/pkg/utils"
)

const (
	SourceFlag      = "-s"
	RemoveFlag      = "-r"
	HostnameFlag    = "-h"
	UsernameFlag    = "--username"
	RealnameFlag    = "--realname"
	ProfileIconFlag = "--profile_icon"
	TimezoneFlag    = "--tz"
	LanguageFlag    = "-l"
	KeyboardFlag    = "-k"
)

// ErrManualPartitioning is returned for any non auto disk request
var ErrManualPartitioning = eleError.NewFromError(
	errors.New("manual partitioning is not supported yet"), eleError.Unimplemented,
)

type arg struct {
	flag  string
	value string
}

// Command is an append only distinst argument list. Values are kept raw and
// only quoted when rendered as a shell line.
type Command struct {
	args      []arg
	passwords []string

	// Captured for the post install adapter
	Device string
	Region string
	Zone   string
}

// New returns the base command deploying source, excluding the packages
// listed in manifest and naming the host hostname
func New(source, manifest, hostname string) *Command {
	c := &Command{}
	c.add(SourceFlag, source)
	c.add(RemoveFlag, manifest)
	c.add(HostnameFlag, hostname)
	return c
}

func (c *Command) add(flag, value string) {
	c.args = append(c.args, arg{flag: flag, value: value})
}

// Apply accumulates the arguments of a single fragment. Repeated categories
// add repeated flags.
func (c *Command) Apply(frag v1.Fragment) error {
	switch f := frag.(type) {
	case v1.UserConfig:
		c.passwords = append([]string{f.Password}, c.passwords...)
		c.add(UsernameFlag, f.Username)
		c.add(RealnameFlag, f.Fullname)
		c.add(ProfileIconFlag, constants.ProfileIcon)
	case v1.TimezoneConfig:
		c.add(TimezoneFlag, fmt.Sprintf("%s/%s", f.Region, f.Zone))
		c.Region = f.Region
		c.Zone = f.Zone
	case v1.LanguageConfig:
		c.add(LanguageFlag, string(f))
	case v1.KeyboardConfig:
		c.add(KeyboardFlag, string(f))
	case v1.DiskConfig:
		if f.Auto == nil {
			return ErrManualPartitioning
		}
		return c.applyTable(partitioner.NewAutoLayout(f.Auto.Disk))
	default:
		return fmt.Errorf("unsupported fragment type %T", frag)
	}
	return nil
}

func (c *Command) applyTable(table *partitioner.Table) error {
	opts := table.Args()
	if len(opts)%2 != 0 {
		return fmt.Errorf("malformed partition arguments for %s", table.Disk())
	}
	for i := 0; i < len(opts); i += 2 {
		c.add(opts[i], opts[i+1])
	}
	c.Device = table.Disk()
	return nil
}

// Argv returns the command as an argument array, ready for exec
func (c Command) Argv() []string {
	argv := []string{constants.SudoBin, constants.DistinstBin}
	for _, a := range c.args {
		argv = append(argv, a.flag, a.value)
	}
	return argv
}

// Stdin returns what distinst reads on its standard input, the password of
// the first user fragment, and whether there is any
func (c Command) Stdin() (string, bool) {
	if len(c.passwords) == 0 {
		return "", false
	}
	return c.passwords[len(c.passwords)-1], true
}

// PartitionSpecs returns the values of all partition creation flags
func (c Command) PartitionSpecs() []string {
	specs := []string{}
	for _, a := range c.args {
		if a.flag == partitioner.NewFlag {
			specs = append(specs, a.value)
		}
	}
	return specs
}

// String renders the command as a single shell line. Every password echo
// is piped in front of the command, most recent first.
func (c Command) String() string {
	tokens := []string{}
	for _, pw := range c.passwords {
		tokens = append(tokens, "echo", utils.Quote(pw), "|")
	}
	tokens = append(tokens, constants.SudoBin, constants.DistinstBin)
	for _, a := range c.args {
		tokens = append(tokens, a.flag, utils.Quote(a.value))
	}
	return strings.Join(tokens, " ")
}
