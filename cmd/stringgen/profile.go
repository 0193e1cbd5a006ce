// This file is Free Software under the Apache-2.0 License
// without warranty, see README.md and LICENSES/Apache-2.0.txt for details.
//
// SPDX-License-Identifier: Apache-2.0

//go:build profile

package main

import (
	"errors"
	"os"
	"runtime"
	"runtime/pprof"
)

// profileOptions adds CPU/heap profiling flags that wrap the generate
// step; enumerate and render-set are the operations worth profiling here.
type profileOptions struct {
	CPUProfile string `long:"cpuprofile" description:"write a CPU profile to this file"`
	MemProfile string `long:"memprofile" description:"write a heap profile to this file"`
}

func (pf *profileOptions) profile(fn func() error) error {
	if pf.CPUProfile != "" {
		f, err := os.Create(pf.CPUProfile)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
	}
	ret := fn()
	if pf.MemProfile != "" {
		f, err := os.Create(pf.MemProfile)
		if err != nil {
			return errors.Join(ret, err)
		}
		defer f.Close()
		runtime.GC() // get up-to-date statistics.
		if err := pprof.WriteHeapProfile(f); err != nil {
			return errors.Join(ret, err)
		}
	}
	return ret
}
