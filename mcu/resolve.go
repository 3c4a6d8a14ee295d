// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package mcu

import (
	"github.com/ezrec/armtarget/arm"
)

// archSelector maps the descriptor's instruction set and endianness
// onto the four-way architecture selector.
func (desc *Descriptor) archSelector() arm.Arch {
	switch {
	case desc.InstructionSet == ISA_THUMB && desc.Endian == ENDIAN_LITTLE:
		return arm.ARCH_THUMB
	case desc.InstructionSet == ISA_THUMB && desc.Endian == ENDIAN_BIG:
		return arm.ARCH_THUMBEB
	case desc.InstructionSet == ISA_ARM && desc.Endian == ENDIAN_LITTLE:
		return arm.ARCH_ARM
	default:
		return arm.ARCH_ARMEB
	}
}

// Query projects a descriptor into the arch/abi/feature query consumed
// by a target resolver. The descriptor is validated first.
//
// The feature list starts empty; softfp adds the soft-float marker,
// and a present FPU adds every flag it implies. Validation has already
// rejected softfp without an FPU, so the ordering is safe.
func (desc *Descriptor) Query() (query *arm.Query, err error) {
	err = desc.Validate()
	if err != nil {
		return nil, err
	}

	abi := arm.ABI_EABI
	if desc.FloatAbi == FLOAT_ABI_HARD {
		abi = arm.ABI_EABIHF
	}

	query = &arm.Query{
		Arch: desc.archSelector(),
		Os:   arm.OS_FREESTANDING,
		Abi:  abi,
	}

	if desc.FloatAbi == FLOAT_ABI_SOFTFP {
		if !query.AddFeature(arm.FEATURE_SOFT_FLOAT) {
			return nil, ErrFeatureOverflow
		}
	}
	if desc.Fpu != nil {
		for feature := range desc.Fpu.Features.All() {
			if !query.AddFeature(feature) {
				return nil, ErrFeatureOverflow
			}
		}
	}

	return
}

// inferFpu scans the whole catalogue for FPUs whose implied flags are
// all present in the feature set, keeping the most specific candidate.
// Several candidates can match at once when one FPU's feature set is a
// subset of another's; the lowest priority number wins. No candidate
// means a soft-float target.
func inferFpu(features arm.FeatureSet) (best *Fpu) {
	for fpu := range Fpus() {
		if !features.Contains(fpu.Features) {
			continue
		}
		if best == nil || fpu.Priority < best.Priority {
			best = fpu
		}
	}

	return
}

// FromResolvedArch recovers the flag-equivalent descriptor from a
// resolved architecture. The result is valid by construction: the CPU
// match, FPU inference, compatibility check, and float-ABI inference
// below enforce every descriptor invariant inline.
func FromResolvedArch(arch *arm.ResolvedArch) (desc *Descriptor, err error) {
	if arch.Os != arm.OS_FREESTANDING {
		err = ErrNotFreestanding
		return
	}

	cpu := cpuByCore(arch.Core)
	if cpu == nil {
		err = ErrCpuUnsupported(arch.Core.String())
		return
	}

	var isa InstructionSet
	var endian Endian
	switch arch.Arch {
	case arm.ARCH_THUMB:
		isa, endian = ISA_THUMB, ENDIAN_LITTLE
	case arm.ARCH_THUMBEB:
		isa, endian = ISA_THUMB, ENDIAN_BIG
	case arm.ARCH_ARM:
		isa, endian = ISA_ARM, ENDIAN_LITTLE
	case arm.ARCH_ARMEB:
		isa, endian = ISA_ARM, ENDIAN_BIG
	default:
		err = ErrCpuUnsupported(arch.Arch.String())
		return
	}

	fpu := inferFpu(arch.Features)
	if fpu != nil && !cpu.Supports(fpu) {
		err = ErrFpuIncompatible{Cpu: cpu.Name, Fpu: fpu.Name}
		return
	}

	floatAbi := FLOAT_ABI_SOFT
	if fpu != nil {
		if arch.Features.Has(arm.FEATURE_SOFT_FLOAT) {
			floatAbi = FLOAT_ABI_SOFTFP
		} else {
			floatAbi = FLOAT_ABI_HARD
		}
	}

	desc = &Descriptor{
		Cpu:            cpu,
		InstructionSet: isa,
		Endian:         endian,
		FloatAbi:       floatAbi,
		Fpu:            fpu,
	}

	return
}

// CheckCompatibility reports whether the resolved architecture's core
// model is a catalogue CPU, ignoring FPU considerations.
func CheckCompatibility(arch *arm.ResolvedArch) (err error) {
	if cpuByCore(arch.Core) == nil {
		err = ErrCpuUnsupported(arch.Core.String())
	}

	return
}

// Within returns true if the resolved architecture reverse-translates
// to a descriptor structurally equal to a member of the allowed set.
func Within(arch *arm.ResolvedArch, allowed []*Descriptor) bool {
	desc, err := FromResolvedArch(arch)
	if err != nil {
		return false
	}

	for _, entry := range allowed {
		if desc.Equal(entry) {
			return true
		}
	}

	return false
}
