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

// Package swap computes the recommended swap size for the host following
// the RHEL storage administration guide tiers.
package swap

import (
	"github.com/docker/go-units"
	"github.com/jaypipes/ghw"
	"github.com/jaypipes/ghw/pkg/memory"

	eleError "github.com/vanilla-os/vanilla-processor/pkg/error"
	v1 "github.com/vanilla-os/vanilla-processor/pkg/types/v1"
)

// MaxSizeMiB is the fixed swap size for hosts above the last tier
const MaxSizeMiB = 4096

// MemorySource reports the total memory of the host in bytes
type MemorySource interface {
	TotalBytes() (int64, error)
}

// GhwMemory reads the host memory through ghw
type GhwMemory struct{}

func (GhwMemory) TotalBytes() (int64, error) {
	info, err := memory.New(ghw.WithDisableWarnings())
	if err != nil {
		return 0, err
	}
	// usable bytes match what the kernel reports as MemTotal
	if info.TotalUsableBytes > 0 {
		return info.TotalUsableBytes, nil
	}
	return info.TotalPhysicalBytes, nil
}

// Estimate returns the swap size in MiB for the given amount of memory.
// Upper bounds are inclusive: exactly 2, 8 and 64 GiB use the lower tier.
func Estimate(totalBytes int64) int {
	mem := float64(totalBytes) / float64(units.GiB)
	switch {
	case mem <= 2:
		return int(mem * 3 * 1024)
	case mem <= 8:
		return int(mem * 2 * 1024)
	case mem <= 64:
		return int(mem * 1.5 * 1024)
	default:
		return MaxSizeMiB
	}
}

// Recommended queries src and returns the estimated swap size in MiB
func Recommended(src MemorySource, log v1.Logger) (int, error) {
	total, err := src.TotalBytes()
	if err != nil {
		return 0, eleError.NewFromError(err, eleError.MemoryInfo)
	}
	size := Estimate(total)
	if log != nil {
		log.Debugf("Host memory %s, recommended swap %s", units.BytesSize(float64(total)), units.BytesSize(float64(size)*units.MiB))
	}
	return size, nil
}
