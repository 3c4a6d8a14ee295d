// Package mcu translates between the GCC flag vocabulary for ARM
// microcontrollers (-mcpu, -mfpu, -mfloat-abi, -mthumb/-marm) and a
// structured target descriptor.
//
// The package is built around a fixed catalogue of Cortex-M CPUs and
// the FPUs each may be paired with. The forward translator turns flag
// values into a validated Descriptor; the reverse translator recovers
// a Descriptor from an already-resolved architecture, inferring the
// FPU and float ABI from its feature-flag set. A Descriptor projects
// into the arch/abi/feature query consumed by a target resolver.
//
// Every operation is a pure function over the immutable catalogue.
// Ambiguous or invalid combinations are always reported as errors,
// never resolved to a default that could select the wrong hardware.
package mcu
