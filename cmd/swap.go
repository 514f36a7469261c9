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
	"github.com/vanilla-os/vanilla-processor/pkg/swap"
)

// NewSwapSizeCmd returns a new instance of the swap-size subcommand and appends it
// to the root command. A nil src queries the host memory.
func NewSwapSizeCmd(root *cobra.Command, src swap.MemorySource) *cobra.Command {
	if src == nil {
		src = swap.GhwMemory{}
	}
	c := &cobra.Command{
		Use:   "swap-size",
		Args:  cobra.ExactArgs(0),
		Short: "Prints the recommended swap size in MiB for this host",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.ReadConfigRun(viper.GetString("config-dir"))
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true

			size, err := swap.Recommended(src, cfg.Logger)
			if err != nil {
				cfg.Logger.Errorf("Failed estimating the swap size: %s", err)
				return err
			}
			fmt.Println(size)
			return nil
		},
	}
	root.AddCommand(c)
	return c
}

// register the subcommand into rootCmd
var _ = NewSwapSizeCmd(rootCmd, nil)
