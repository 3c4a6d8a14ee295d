// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package arm

import (
	"iter"
	"math/bits"
	"strings"
)

// Feature is a fine-grained architecture feature flag.
type Feature int

//go:generate go tool stringer -linecomment -type=Feature
const (
	FEATURE_SOFT_FLOAT      = Feature(0)  // soft-float
	FEATURE_VFP2            = Feature(1)  // vfp2
	FEATURE_VFP3            = Feature(2)  // vfp3
	FEATURE_VFP3_D16        = Feature(3)  // vfp3-d16
	FEATURE_VFP3_D16_SP     = Feature(4)  // vfp3-d16-sp
	FEATURE_FP16            = Feature(5)  // fp16
	FEATURE_VFP4            = Feature(6)  // vfp4
	FEATURE_VFP4_D16        = Feature(7)  // vfp4-d16
	FEATURE_VFP4_D16_SP     = Feature(8)  // vfp4-d16-sp
	FEATURE_FP_ARMV8        = Feature(9)  // fp-armv8
	FEATURE_FP_ARMV8_D16    = Feature(10) // fp-armv8-d16
	FEATURE_FP_ARMV8_D16_SP = Feature(11) // fp-armv8-d16-sp
	FEATURE_NEON            = Feature(12) // neon
	FEATURE_CRYPTO          = Feature(13) // crypto
)

// FEATURE_MAX is one past the highest defined Feature.
const FEATURE_MAX = Feature(14)

// FeatureSet is an immutable set of Features, stored as a bitmask.
type FeatureSet uint32

// Features constructs a FeatureSet from its members.
func Features(features ...Feature) (set FeatureSet) {
	for _, feature := range features {
		set |= 1 << uint(feature)
	}

	return
}

// Has returns true if the feature is a member of the set.
func (set FeatureSet) Has(feature Feature) bool {
	return set&(1<<uint(feature)) != 0
}

// With returns a copy of the set with the additional members.
func (set FeatureSet) With(features ...Feature) FeatureSet {
	return set | Features(features...)
}

// Contains returns true if every member of sub is a member of the set.
func (set FeatureSet) Contains(sub FeatureSet) bool {
	return set&sub == sub
}

// Count returns the number of members in the set.
func (set FeatureSet) Count() int {
	return bits.OnesCount32(uint32(set))
}

// All iterates the members of the set, in Feature order.
func (set FeatureSet) All() iter.Seq[Feature] {
	return func(yield func(Feature) bool) {
		for feature := Feature(0); feature < FEATURE_MAX; feature++ {
			if set.Has(feature) && !yield(feature) {
				return
			}
		}
	}
}

// String returns the members of the set joined by '+'.
func (set FeatureSet) String() string {
	names := []string{}
	for feature := range set.All() {
		names = append(names, feature.String())
	}

	return strings.Join(names, "+")
}
