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

package action

import (
	"fmt"
	"strings"

	"github.com/vanilla-os/vanilla-processor/pkg/constants"
	"github.com/vanilla-os/vanilla-processor/pkg/distinst"
	eleError "github.com/vanilla-os/vanilla-processor/pkg/error"
	v1 "github.com/vanilla-os/vanilla-processor/pkg/types/v1"
	"github.com/vanilla-os/vanilla-processor/pkg/utils"
)

const separator = "----------------------------------"

// GenerateAction turns installer final data into an executable install
// script. The script is written, never run.
type GenerateAction struct {
	cfg  *v1.Config
	spec *v1.GenerateSpec
}

func NewGenerateAction(cfg *v1.Config, spec *v1.GenerateSpec) *GenerateAction {
	return &GenerateAction{cfg: cfg, spec: spec}
}

// Run writes the manifest removal file and the install script, returning
// the script path
func (g *GenerateAction) Run() (string, error) {
	log := g.cfg.Logger

	if err := g.spec.Sanitize(); err != nil {
		return "", err
	}
	log.Infof("Processing %d final data entries", len(g.spec.Finals))
	if v1.IsDebugLevel(log) {
		for _, line := range DumpFinals(g.spec.Finals) {
			log.Debug(line)
		}
	}
	log.Debugf("Log path: '%s', pre run: '%s', post run: '%s'", g.spec.LogPath, g.spec.PreRun, g.spec.PostRun)

	if err := g.writeManifest(); err != nil {
		return "", err
	}

	cmd := distinst.New(g.spec.Source, g.spec.ManifestPath, g.spec.Hostname)
	for _, frag := range g.spec.Finals {
		if err := cmd.Apply(frag); err != nil {
			log.Errorf("Failed processing '%s' entry: %s", frag.Category(), err)
			return "", err
		}
	}
	log.Debugf("distinst arguments: %s", strings.Join(cmd.Argv(), " "))
	for _, part := range cmd.PartitionSpecs() {
		log.Infof("Partition requested: %s", part)
	}
	if _, ok := cmd.Stdin(); !ok {
		log.Warn("No user configured, distinst will not be given a password")
	}

	rwHelper := g.cfg.Runner.CommandExists(constants.RWHelperBin)
	return g.writeScript(g.scriptLines(cmd, rwHelper))
}

func (g *GenerateAction) writeManifest() error {
	g.cfg.Logger.Debugf("Writing manifest removal file %s", g.spec.ManifestPath)
	err := utils.WriteLines(g.cfg.Fs, g.spec.ManifestPath, constants.GetManifestRemoveEntries(), constants.FilePerm)
	if err != nil {
		g.cfg.Logger.Errorf("Failed writing %s: %s", g.spec.ManifestPath, err)
		return eleError.NewFromError(err, eleError.WriteFile)
	}
	return nil
}

func (g *GenerateAction) scriptLines(cmd *distinst.Command, rwHelper bool) []string {
	lines := []string{constants.ScriptShebang}
	lines = append(lines, constants.GetScriptHeader()...)
	lines = append(lines, "")
	if rwHelper {
		lines = append(lines, fmt.Sprintf("%s %s", constants.RWHelperBin, constants.RWHelperArgs))
	}
	lines = append(lines, constants.StrictMode, "")

	if g.spec.Fake {
		g.cfg.Logger.Info("Fake run enabled, skipping the installation process")
		lines = append(lines,
			utils.EchoLine("Fake run enabled, skipping the installation process."),
			utils.EchoLine("Printing the configuration instead:"),
			utils.EchoLine(separator),
		)
		for _, line := range DumpFinals(g.spec.Finals) {
			lines = append(lines, utils.EchoLine(line))
		}
		return append(lines,
			utils.EchoLine(separator),
			fmt.Sprintf("sleep %d", constants.FakeRunSleep),
			fmt.Sprintf("exit %d", constants.FakeRunExit),
		)
	}

	if !g.spec.SkipInstall {
		lines = append(lines, cmd.String())
	} else {
		g.cfg.Logger.Info("Skipping the installation command")
	}

	if !g.spec.SkipPostInstall {
		lines = append(lines,
			utils.EchoLine("Starting the post-installation process ..."),
			strings.Join([]string{
				constants.SudoBin, constants.AdapterBin,
				utils.Quote(cmd.Device), utils.Quote(cmd.Region), utils.Quote(cmd.Zone),
			}, " "),
		)
	} else {
		g.cfg.Logger.Info("Skipping the post-installation command")
	}
	return lines
}

func (g *GenerateAction) writeScript(lines []string) (path string, err error) {
	f, name, err := utils.TempFile(g.cfg.Fs, g.spec.TempDir, constants.ScriptPattern)
	if err != nil {
		g.cfg.Logger.Errorf("Failed creating the install script: %s", err)
		return "", eleError.NewFromError(err, eleError.CreateFile)
	}

	cleanup := utils.NewCleanStack()
	cleanup.PushErrorOnly(func() error { return g.cfg.Fs.Remove(name) })
	cleanup.Push(f.Close)
	defer func() {
		err = cleanup.Cleanup(err)
		if err != nil {
			path = ""
		}
	}()

	if _, err = f.WriteString(strings.Join(lines, "\n") + "\n"); err != nil {
		return "", eleError.NewFromError(err, eleError.WriteFile)
	}
	if err = g.cfg.Fs.Chmod(name, constants.ScriptPerm); err != nil {
		return "", eleError.NewFromError(err, eleError.ChmodFile)
	}

	g.cfg.Logger.Infof("Install script written to %s", name)
	return name, nil
}
