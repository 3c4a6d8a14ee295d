// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package mcu

// FloatAbi is the floating-point calling convention.
type FloatAbi int

//go:generate go tool stringer -linecomment -type=FloatAbi
const (
	FLOAT_ABI_SOFT   = FloatAbi(0) // soft
	FLOAT_ABI_SOFTFP = FloatAbi(1) // softfp
	FLOAT_ABI_HARD   = FloatAbi(2) // hard
)

// InstructionSet selects between the Thumb and ARM encodings.
type InstructionSet int

//go:generate go tool stringer -linecomment -type=InstructionSet
const (
	ISA_THUMB = InstructionSet(0) // thumb
	ISA_ARM   = InstructionSet(1) // arm
)

// Endian is the data endianness of the target.
type Endian int

//go:generate go tool stringer -linecomment -type=Endian
const (
	ENDIAN_LITTLE = Endian(0) // little
	ENDIAN_BIG    = Endian(1) // big
)

// Descriptor is a validated compilation target. Descriptors are value
// objects: built by a translator, never mutated afterwards.
//
// Invariants, enforced by Validate and by construction in the
// translators:
//   - Fpu is present exactly when FloatAbi is not soft.
//   - A present Fpu appears in the Cpu's compatible list, compared by
//     feature-set equivalence so aliases count as the same unit.
//   - A Cpu with no compatible FPUs never carries an Fpu.
type Descriptor struct {
	Cpu            *Cpu
	InstructionSet InstructionSet
	Endian         Endian
	FloatAbi       FloatAbi
	Fpu            *Fpu // nil for soft-float targets
}

// Validate checks the descriptor against the compatibility matrix.
// An invalid descriptor is reported, never repaired.
func (desc *Descriptor) Validate() (err error) {
	switch {
	case desc.FloatAbi == FLOAT_ABI_SOFT && desc.Fpu != nil:
		err = ErrFpuSoftFloatAbi
	case desc.Fpu != nil && len(desc.Cpu.Fpus) == 0:
		err = ErrNoFpuOnCpu(desc.Cpu.Name)
	case desc.Fpu != nil && !desc.Cpu.Supports(desc.Fpu):
		err = ErrFpuIncompatible{Cpu: desc.Cpu.Name, Fpu: desc.Fpu.Name}
	}

	return
}

// Equal compares two descriptors structurally. FPUs compare by
// feature-set equivalence, so two descriptors naming the same unit
// through different aliases are equal.
func (desc *Descriptor) Equal(other *Descriptor) bool {
	if desc.Cpu.Name != other.Cpu.Name ||
		desc.InstructionSet != other.InstructionSet ||
		desc.Endian != other.Endian ||
		desc.FloatAbi != other.FloatAbi {
		return false
	}

	if (desc.Fpu == nil) != (other.Fpu == nil) {
		return false
	}

	return desc.Fpu == nil || desc.Fpu.Equivalent(other.Fpu)
}
