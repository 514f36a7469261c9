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

package v1

import (
	"errors"
	"fmt"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/vanilla-os/vanilla-processor/pkg/constants"
)

// Fragment is one entry of the installer final data. The set of
// implementations is closed: only the types in this file satisfy it.
type Fragment interface {
	Category() string
	fragment()
}

type UserConfig struct {
	Username string `yaml:"username" mapstructure:"username"`
	Fullname string `yaml:"fullname" mapstructure:"fullname"`
	Password string `yaml:"password" mapstructure:"password"`
}

type TimezoneConfig struct {
	Region string `yaml:"region" mapstructure:"region"`
	Zone   string `yaml:"zone" mapstructure:"zone"`
}

// LanguageConfig is a locale name such as en_US.UTF-8
type LanguageConfig string

// KeyboardConfig is a keyboard layout name such as us
type KeyboardConfig string

// DiskConfig holds exactly one of Auto or Manual
type DiskConfig struct {
	Auto   *AutoDisk
	Manual *ManualDisk
}

type AutoDisk struct {
	Disk string `yaml:"disk" mapstructure:"disk"`
}

// ManualDisk is captured best effort: entries that do not decode as a
// partition are left in Raw only.
type ManualDisk struct {
	Disk       string
	Partitions map[string]ManualPartition
	Raw        interface{}
}

type ManualPartition struct {
	MountPoint string `yaml:"mp" mapstructure:"mp"`
	FileSystem string `yaml:"fs" mapstructure:"fs"`
	Size       int    `yaml:"size" mapstructure:"size"`
}

func (UserConfig) Category() string     { return constants.UsersKey }
func (TimezoneConfig) Category() string { return constants.TimezoneKey }
func (LanguageConfig) Category() string { return constants.LanguageKey }
func (KeyboardConfig) Category() string { return constants.KeyboardKey }
func (DiskConfig) Category() string     { return constants.DiskKey }

func (UserConfig) fragment()     {}
func (TimezoneConfig) fragment() {}
func (LanguageConfig) fragment() {}
func (KeyboardConfig) fragment() {}
func (DiskConfig) fragment()     {}

// Finals is the ordered list of fragments. Repeated categories are kept,
// consumers accumulate them in order.
type Finals []Fragment

// UnmarshalYAML reads a list of single or multi key maps, keeping document
// order both across and within list items. JSON input decodes the same way.
// Unknown categories are dropped, use ParseFinals to get their names.
func (f *Finals) UnmarshalYAML(node *yaml.Node) error {
	finals, _, err := decodeFinals(node)
	if err != nil {
		return err
	}
	*f = finals
	return nil
}

// ParseFinals decodes a YAML or JSON finals document. It also returns the
// categories that were skipped because no fragment type exists for them.
func ParseFinals(data []byte) (Finals, []string, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, err
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return Finals{}, []string{}, nil
	}
	return decodeFinals(doc.Content[0])
}

func decodeFinals(node *yaml.Node) (Finals, []string, error) {
	if node.Kind != yaml.SequenceNode {
		return nil, nil, fmt.Errorf("final data must be a list, line %d", node.Line)
	}

	finals := Finals{}
	unknown := []string{}
	for _, item := range node.Content {
		if item.Kind != yaml.MappingNode {
			return nil, nil, fmt.Errorf("final data entries must be maps, line %d", item.Line)
		}
		for i := 0; i+1 < len(item.Content); i += 2 {
			var category string
			var data interface{}

			if err := item.Content[i].Decode(&category); err != nil {
				return nil, nil, err
			}
			if err := item.Content[i+1].Decode(&data); err != nil {
				return nil, nil, err
			}
			frag, err := NewFragment(category, data)
			if errors.Is(err, ErrUnknownCategory) {
				unknown = append(unknown, category)
				continue
			}
			if err != nil {
				return nil, nil, fmt.Errorf("line %d: %w", item.Content[i].Line, err)
			}
			finals = append(finals, frag)
		}
	}
	return finals, unknown, nil
}

// ErrUnknownCategory is returned by NewFragment for categories without a fragment type
var ErrUnknownCategory = errors.New("unknown configuration category")

// NewFragment builds the fragment for the given category out of generic
// decoded data (maps and scalars as produced by yaml or json decoders)
func NewFragment(category string, data interface{}) (Fragment, error) {
	switch category {
	case constants.UsersKey:
		user := UserConfig{}
		err := decodePayload(category, data, &user)
		return user, err
	case constants.TimezoneKey:
		tz := TimezoneConfig{}
		err := decodePayload(category, data, &tz)
		return tz, err
	case constants.LanguageKey:
		var lang string
		err := decodePayload(category, data, &lang)
		return LanguageConfig(lang), err
	case constants.KeyboardKey:
		var kbd string
		err := decodePayload(category, data, &kbd)
		return KeyboardConfig(kbd), err
	case constants.DiskKey:
		return newDiskConfig(data)
	default:
		return nil, fmt.Errorf("%w '%s'", ErrUnknownCategory, category)
	}
}

// newDiskConfig only requires a well formed auto request. Anything else is
// a manual request and never fails to decode.
func newDiskConfig(data interface{}) (Fragment, error) {
	mData, _ := data.(map[string]interface{})

	if auto, ok := mData[constants.AutoKey]; ok {
		disk := &AutoDisk{}
		if err := decodePayload(constants.DiskKey, auto, disk); err != nil {
			return nil, err
		}
		if disk.Disk == "" {
			return nil, fmt.Errorf("'%s' requires a target '%s'", constants.AutoKey, constants.DiskKey)
		}
		return DiskConfig{Auto: disk}, nil
	}

	manual := &ManualDisk{Partitions: map[string]ManualPartition{}, Raw: data}
	for name, value := range mData {
		if name == constants.DiskKey {
			if disk, ok := value.(string); ok {
				manual.Disk = disk
			}
			continue
		}
		part := ManualPartition{}
		if decodePayload(constants.DiskKey, value, &part) == nil {
			manual.Partitions[name] = part
		}
	}
	return DiskConfig{Manual: manual}, nil
}

func decodePayload(category string, data interface{}, result interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           result,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("failed creating a decoder for '%s': %w", category, err)
	}
	if err = dec.Decode(data); err != nil {
		return fmt.Errorf("failed to decode '%s', invalid format: %w", category, err)
	}
	return nil
}
