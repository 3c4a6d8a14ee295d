// Package arm models the target-resolution vocabulary for 32-bit ARM:
// fine-grained architecture feature flags, core identities, the
// architecture selector (thumb/arm crossed with endianness), OS and
// float-ABI tags, and the query/resolved-architecture pair exchanged
// with a target resolver.
//
// Everything in this package is plain immutable data. A Query is what
// a front end asks a resolver for; a ResolvedArch is what the resolver
// hands back, with the feature flags expanded into a set that can be
// probed by membership.
package arm
