// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package gnu

import (
	"path"
	"path/filepath"

	"github.com/ezrec/armtarget/mcu"
)

// Multilib returns the newlib multilib directory for a validated
// descriptor, e.g. "thumb/v7e-m+fp/hard". The bare-metal library sets
// are built for thumb only; an arm-encoding descriptor selects the
// default library set.
func Multilib(desc *mcu.Descriptor) (dir string, err error) {
	err = desc.Validate()
	if err != nil {
		return
	}

	if desc.InstructionSet != mcu.ISA_THUMB {
		dir = "."
		return
	}

	arch := desc.Cpu.March
	if desc.Fpu != nil {
		if desc.Fpu.DoublePrecision() {
			arch += "+dp"
		} else {
			arch += "+fp"
		}
	}

	float := "nofp"
	switch desc.FloatAbi {
	case mcu.FLOAT_ABI_HARD:
		float = "hard"
	case mcu.FLOAT_ABI_SOFTFP:
		float = "softfp"
	}

	dir = path.Join("thumb", arch, float)

	return
}

// LibraryPaths returns the library search directories for a target,
// most specific first.
func (tc *Toolchain) LibraryPaths(desc *mcu.Descriptor) (paths []string, err error) {
	dir, err := Multilib(desc)
	if err != nil {
		return
	}

	sysroot := tc.sysroot()
	paths = []string{
		filepath.Join(sysroot, "lib", filepath.FromSlash(dir)),
		filepath.Join(sysroot, "lib"),
	}

	return
}

// IncludePaths returns the system include directories of the
// toolchain's C library.
func (tc *Toolchain) IncludePaths() []string {
	return []string{
		filepath.Join(tc.sysroot(), "include"),
	}
}
