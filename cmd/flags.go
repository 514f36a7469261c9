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

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vanilla-os/vanilla-processor/pkg/constants"
)

// addScriptToggleFlags adds the flags trimming the generated script. Each
// one can also be set through its VANILLA_* environment variable.
func addScriptToggleFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("fake", false, "Only dump the configuration in the script, never install (env "+constants.FakeEnv+")")
	cmd.Flags().Bool("skip-install", false, "Leave the distinst command out of the script (env "+constants.SkipInstallEnv+")")
	cmd.Flags().Bool("skip-postinstall", false, "Leave the post installation step out of the script (env "+constants.SkipPostEnv+")")
}

// addDistinstFlags adds flags overriding the fixed distinst arguments
func addDistinstFlags(cmd *cobra.Command) {
	cmd.Flags().String("source", constants.SourceImage, "Root filesystem image to deploy")
	cmd.Flags().String("hostname", constants.DefaultHostname, "Hostname of the installed system")
	cmd.Flags().String("manifest", constants.ManifestRemove, "Path of the package removal manifest to write")
	cmd.Flags().String("tmp-dir", "", "Directory for the generated script, defaults to the system temp dir")
}

// addInstallerFlags adds the values handed over by the installer UI. They are
// recorded in the logs only.
func addInstallerFlags(cmd *cobra.Command) {
	cmd.Flags().String("log-path", "", "Installer log path")
	cmd.Flags().String("pre-run", "", "Installer pre run hook")
	cmd.Flags().String("post-run", "", "Installer post run hook")
}
