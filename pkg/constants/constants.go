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

package constants

import (
	"os"
)

const (
	// distinst invocation
	DistinstBin      = "distinst"
	SudoBin          = "sudo"
	SourceImage      = "/cdrom/casper/filesystem.squashfs"
	ManifestRemove   = "/tmp/filesystem.manifest-remove"
	DefaultHostname  = "vanilla"
	ProfileIcon      = "/usr/share/pixmaps/faces/yellow-rose.jpg"
	PartitionPrimary = "primary"
	GPT              = "gpt"

	// post install and helpers
	AdapterBin   = "abroot-adapter"
	RWHelperBin  = "almost"
	RWHelperArgs = "enter rw"

	// generated script
	ScriptShebang  = "#!/bin/sh"
	ScriptPattern  = "vanilla-install-*.sh"
	StrictMode     = "set -e -x"
	FakeRunSleep   = 5
	FakeRunExit    = 1
	ConfigDir      = "/etc/vanilla-installer"
	ConfigFile     = "config.yaml"
	EnvFile        = "installer.env"
	EnvPrefix      = "VANILLA"
	FakeEnv        = "VANILLA_FAKE"
	SkipInstallEnv = "VANILLA_SKIP_INSTALL"
	SkipPostEnv    = "VANILLA_SKIP_POSTINSTALL"

	// filesystems used by the auto layout
	EfiFs   = "fat32"
	BootFs  = "ext4"
	RootFs  = "btrfs"
	EfiDir  = "/boot/efi"
	BootDir = "/boot"
	RootDir = "/"
	HomeDir = "/home"
	EspFlag = "esp"

	// auto layout boundaries in MiB
	EfiEndMiB   = 1024
	BootEndMiB  = 2048
	RootAEndMiB = 22528
	RootBEndMiB = 43008

	// Fragment categories as they appear in the finals file
	UsersKey    = "users"
	TimezoneKey = "timezone"
	LanguageKey = "language"
	KeyboardKey = "keyboard"
	DiskKey     = "disk"
	AutoKey     = "auto"

	FilePerm   = 0644
	ScriptPerm = 0755
	DirPerm    = os.ModeDir | os.ModePerm
)

// GetScriptHeader returns the provenance comments written after the shebang
func GetScriptHeader() []string {
	return []string{
		"# This file was created by the Vanilla Installer.",
		"# Do not edit this file manually!",
	}
}

// GetManifestRemoveEntries returns the packages excluded from the deployed image
func GetManifestRemoveEntries() []string {
	return []string{"vanilla-installer", "gparted"}
}
