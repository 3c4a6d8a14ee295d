package mcu

import (
	"errors"

	"github.com/ezrec/armtarget/translate"
)

var f = translate.From

// Flag translation errors: malformed or incomplete user input.
// Only FromFlags returns these.
var (
	ErrCpuMissing = errors.New(f("no cpu specified"))
	ErrFpuMissing = errors.New(f("float abi requires an fpu"))
)

// ErrCpuInvalid reports a -mcpu value not in the catalogue.
type ErrCpuInvalid string

func (err ErrCpuInvalid) Error() string {
	return f("unknown cpu '%v'", string(err))
}

// ErrFpuInvalid reports a -mfpu value not in the catalogue.
type ErrFpuInvalid string

func (err ErrFpuInvalid) Error() string {
	return f("unknown fpu '%v'", string(err))
}

// ErrFloatAbiInvalid reports a -mfloat-abi value other than
// soft, softfp, or hard.
type ErrFloatAbiInvalid string

func (err ErrFloatAbiInvalid) Error() string {
	return f("unknown float abi '%v'", string(err))
}

// Conversion errors: a structurally built descriptor violates domain
// rules, or a resolved architecture cannot be mapped back to flags.
var (
	ErrFpuSoftFloatAbi = errors.New(f("fpu specified for soft float abi"))
	ErrFeatureOverflow = errors.New(f("too many feature flags for query"))
	ErrNotFreestanding = errors.New(f("target os is not freestanding"))
)

// ErrCpuUnsupported reports a resolved core model or architecture
// selector with no catalogue equivalent.
type ErrCpuUnsupported string

func (err ErrCpuUnsupported) Error() string {
	return f("unsupported cpu '%v'", string(err))
}

// ErrNoFpuOnCpu reports an FPU assigned to a CPU that has none.
type ErrNoFpuOnCpu string

func (err ErrNoFpuOnCpu) Error() string {
	return f("cpu '%v' has no fpu", string(err))
}

// ErrFpuIncompatible reports a CPU/FPU pairing outside the
// compatibility matrix.
type ErrFpuIncompatible struct {
	Cpu string
	Fpu string
}

func (err ErrFpuIncompatible) Error() string {
	return f("fpu '%v' is not compatible with cpu '%v'", err.Fpu, err.Cpu)
}
