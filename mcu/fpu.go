// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package mcu

import (
	"iter"
	"slices"

	"github.com/ezrec/armtarget/arm"
)

// Fpu is a floating-point unit from the GCC -mfpu vocabulary.
// Priority ranks specificity for reverse inference: a lower number is
// a more specific (superset) feature combination.
type Fpu struct {
	Name     string
	Priority int
	Features arm.FeatureSet
}

// Equal returns true if the two FPUs match in name, priority, and
// implied feature set.
func (fpu *Fpu) Equal(other *Fpu) bool {
	return fpu.Name == other.Name &&
		fpu.Priority == other.Priority &&
		fpu.Features == other.Features
}

// Equivalent returns true if the two FPUs imply the same feature set.
// Aliases of the same hardware are equivalent under different names.
func (fpu *Fpu) Equivalent(other *Fpu) bool {
	return fpu.Features == other.Features
}

var _double_precision = arm.Features(
	arm.FEATURE_VFP2,
	arm.FEATURE_VFP3,
	arm.FEATURE_VFP3_D16,
	arm.FEATURE_VFP4,
	arm.FEATURE_VFP4_D16,
	arm.FEATURE_FP_ARMV8,
	arm.FEATURE_FP_ARMV8_D16,
)

// DoublePrecision returns true if the FPU carries double-precision
// hardware, false for single-precision-only units.
func (fpu *Fpu) DoublePrecision() bool {
	return fpu.Features&_double_precision != 0
}

// The FPU catalogue, in priority bands from the most specific feature
// combination (0) down to the least (8). An alias carries the same
// feature set as its canonical entry; the canonical spelling is
// listed first within a band.
var _fpus = []*Fpu{
	{Name: "crypto-neon-fp-armv8", Priority: 0,
		Features: arm.Features(arm.FEATURE_CRYPTO, arm.FEATURE_NEON, arm.FEATURE_FP_ARMV8)},

	{Name: "neon-fp-armv8", Priority: 1,
		Features: arm.Features(arm.FEATURE_NEON, arm.FEATURE_FP_ARMV8)},

	{Name: "fp-armv8", Priority: 2, Features: arm.Features(arm.FEATURE_FP_ARMV8)},
	{Name: "fpv5-d16", Priority: 2, Features: arm.Features(arm.FEATURE_FP_ARMV8_D16)},
	{Name: "fpv5-sp-d16", Priority: 2, Features: arm.Features(arm.FEATURE_FP_ARMV8_D16_SP)},

	{Name: "neon-vfpv4", Priority: 3,
		Features: arm.Features(arm.FEATURE_NEON, arm.FEATURE_VFP4)},

	{Name: "vfpv4", Priority: 4, Features: arm.Features(arm.FEATURE_VFP4)},
	{Name: "vfpv4-d16", Priority: 4, Features: arm.Features(arm.FEATURE_VFP4_D16)},
	{Name: "fpv4-sp-d16", Priority: 4, Features: arm.Features(arm.FEATURE_VFP4_D16_SP)},

	{Name: "neon", Priority: 5, Features: arm.Features(arm.FEATURE_NEON)},
	{Name: "neon-vfpv3", Priority: 5, Features: arm.Features(arm.FEATURE_NEON)}, // alias of neon
	{Name: "neon-fp16", Priority: 5,
		Features: arm.Features(arm.FEATURE_NEON, arm.FEATURE_FP16)},

	{Name: "vfpv3", Priority: 6, Features: arm.Features(arm.FEATURE_VFP3)},
	{Name: "vfpv3-d16", Priority: 6, Features: arm.Features(arm.FEATURE_VFP3_D16)},
	{Name: "vfpv3-fp16", Priority: 6,
		Features: arm.Features(arm.FEATURE_VFP3, arm.FEATURE_FP16)},
	{Name: "vfpv3-d16-fp16", Priority: 6,
		Features: arm.Features(arm.FEATURE_VFP3_D16, arm.FEATURE_FP16)},

	{Name: "vfpv3xd", Priority: 7, Features: arm.Features(arm.FEATURE_VFP3_D16_SP)},
	{Name: "vfpv3xd-fp16", Priority: 7,
		Features: arm.Features(arm.FEATURE_VFP3_D16_SP, arm.FEATURE_FP16)},

	{Name: "vfpv2", Priority: 8, Features: arm.Features(arm.FEATURE_VFP2)},
	{Name: "vfp", Priority: 8, Features: arm.Features(arm.FEATURE_VFP2)}, // alias of vfpv2
}

var _fpu_by_name = func() (byname map[string]*Fpu) {
	byname = make(map[string]*Fpu, len(_fpus))
	for _, fpu := range _fpus {
		byname[fpu.Name] = fpu
	}

	return
}()

// FpuByName looks up a catalogue FPU by its -mfpu name.
func FpuByName(name string) (fpu *Fpu, ok bool) {
	fpu, ok = _fpu_by_name[name]

	return
}

// Fpus iterates the FPU catalogue, in priority order.
func Fpus() iter.Seq[*Fpu] {
	return slices.Values(_fpus)
}

// FpuNames iterates the catalogue FPU names, in priority order.
func FpuNames() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, fpu := range _fpus {
			if !yield(fpu.Name) {
				return
			}
		}
	}
}
