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

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vanilla-os/vanilla-processor/cmd/config"
	"github.com/vanilla-os/vanilla-processor/pkg/action"
	pkgConfig "github.com/vanilla-os/vanilla-processor/pkg/config"
)

// NewGenerateCmd returns a new instance of the generate subcommand and appends it to
// the root command. opts are applied to the runtime config of every execution.
func NewGenerateCmd(root *cobra.Command, opts ...pkgConfig.GenericOptions) *cobra.Command {
	c := &cobra.Command{
		Use:   "generate FINALS_FILE",
		Short: "Generates the install script out of the installer final data",
		Long: "Generates the install script out of the installer final data\n\n" +
			"FINALS_FILE is a YAML or JSON list of configuration entries. The path of\n" +
			"the generated script is printed on success.",
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return viper.BindPFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.ReadConfigRun(viper.GetString("config-dir"), opts...)
			if err != nil {
				if cfg != nil {
					cfg.Logger.Errorf("Error reading config: %s\n", err)
				}
				return err
			}

			// Errors from here on are not usage errors
			cmd.SilenceUsage = true

			spec, err := config.ReadGenerateSpec(cfg, cmd.Flags(), args[0])
			if err != nil {
				cfg.Logger.Errorf("Invalid generate command setup: %v", err)
				return err
			}

			path, err := action.NewGenerateAction(cfg, spec).Run()
			if err != nil {
				return err
			}
			fmt.Println(path)
			return nil
		},
	}
	root.AddCommand(c)
	addScriptToggleFlags(c)
	addDistinstFlags(c)
	addInstallerFlags(c)
	return c
}

// register the subcommand into rootCmd
var _ = NewGenerateCmd(rootCmd)
