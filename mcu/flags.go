// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package mcu

var _float_abi_by_name = map[string]FloatAbi{
	"soft":   FLOAT_ABI_SOFT,
	"softfp": FLOAT_ABI_SOFTFP,
	"hard":   FLOAT_ABI_HARD,
}

// FromFlags translates a GCC flag set (-mcpu, -mfloat-abi, -mfpu,
// -mthumb, -marm) into a validated target descriptor. An empty string
// stands for a flag that was not given; -mfloat-abi defaults to soft.
//
// When neither or both of -mthumb/-marm are asserted the instruction
// set is thumb, matching the cross compiler's own default.
func FromFlags(cpuName, floatAbiName, fpuName string, useThumb, useArm bool) (desc *Descriptor, err error) {
	if cpuName == "" {
		err = ErrCpuMissing
		return
	}

	cpu, ok := CpuByName(cpuName)
	if !ok {
		err = ErrCpuInvalid(cpuName)
		return
	}

	floatAbi := FLOAT_ABI_SOFT
	if floatAbiName != "" {
		floatAbi, ok = _float_abi_by_name[floatAbiName]
		if !ok {
			err = ErrFloatAbiInvalid(floatAbiName)
			return
		}
	}

	if floatAbi != FLOAT_ABI_SOFT && fpuName == "" {
		err = ErrFpuMissing
		return
	}

	var fpu *Fpu
	if fpuName != "" {
		fpu, ok = FpuByName(fpuName)
		if !ok {
			err = ErrFpuInvalid(fpuName)
			return
		}
	}

	isa := ISA_THUMB
	if useArm && !useThumb {
		isa = ISA_ARM
	}

	desc = &Descriptor{
		Cpu:            cpu,
		InstructionSet: isa,
		Endian:         ENDIAN_LITTLE,
		FloatAbi:       floatAbi,
		Fpu:            fpu,
	}

	err = desc.Validate()
	if err != nil {
		desc = nil
	}

	return
}
