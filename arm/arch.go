// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package arm

import (
	"fmt"
	"iter"
)

// Arch is the architecture selector: instruction set crossed with
// endianness.
type Arch int

//go:generate go tool stringer -linecomment -type=Arch
const (
	ARCH_THUMB   = Arch(0) // thumb
	ARCH_THUMBEB = Arch(1) // thumbeb
	ARCH_ARM     = Arch(2) // arm
	ARCH_ARMEB   = Arch(3) // armeb
)

// Os is the operating system tag of a target.
type Os int

//go:generate go tool stringer -linecomment -type=Os
const (
	OS_FREESTANDING = Os(0) // freestanding
	OS_LINUX        = Os(1) // linux
)

// Abi is the procedure-call/float ABI tag of a target.
type Abi int

//go:generate go tool stringer -linecomment -type=Abi
const (
	ABI_EABI   = Abi(0) // eabi
	ABI_EABIHF = Abi(1) // eabihf
)

// QUERY_FEATURE_MAX is the fixed capacity of a Query's feature list.
const QUERY_FEATURE_MAX = 4

// Query is a request to a target resolver: an architecture selector,
// an OS tag, an ABI, and a bounded list of feature flags to enable on
// top of the core's baseline.
type Query struct {
	Arch Arch
	Os   Os
	Abi  Abi

	features [QUERY_FEATURE_MAX]Feature
	count    int
}

// AddFeature appends a feature flag to the query.
// Returns false if the feature list is already at capacity.
func (query *Query) AddFeature(feature Feature) (ok bool) {
	if query.count >= QUERY_FEATURE_MAX {
		return false
	}

	query.features[query.count] = feature
	query.count++

	return true
}

// FeatureCount returns the number of feature flags in the query.
func (query *Query) FeatureCount() int {
	return query.count
}

// Features iterates the query's feature flags, in insertion order.
func (query *Query) Features() iter.Seq[Feature] {
	return func(yield func(Feature) bool) {
		for n := range query.count {
			if !yield(query.features[n]) {
				return
			}
		}
	}
}

// Triple renders the query as an <arch>-<os>-<abi> target triple.
func (query *Query) Triple() string {
	return fmt.Sprintf("%v-%v-%v", query.Arch, query.Os, query.Abi)
}

// Resolve expands the query against a core model into the resolved
// architecture a target resolver would report back.
func (query *Query) Resolve(core Core) (arch *ResolvedArch) {
	arch = &ResolvedArch{
		Arch: query.Arch,
		Os:   query.Os,
		Core: core,
	}
	for feature := range query.Features() {
		arch.Features = arch.Features.With(feature)
	}

	return
}

// ResolvedArch is a fully resolved compilation target: the selector,
// OS tag, core model, and the expanded feature-flag set.
type ResolvedArch struct {
	Arch     Arch
	Os       Os
	Core     Core
	Features FeatureSet
}
