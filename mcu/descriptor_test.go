package mcu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescriptorValidate(t *testing.T) {
	assert := assert.New(t)

	m0, _ := CpuByName("cortex-m0")
	m4, _ := CpuByName("cortex-m4")
	m7, _ := CpuByName("cortex-m7")
	fpv4sp, _ := FpuByName("fpv4-sp-d16")
	vfpv2, _ := FpuByName("vfpv2")

	table := [](struct {
		name string
		desc Descriptor
		err  error
	}){
		{"soft_no_fpu", Descriptor{Cpu: m0}, nil},
		{"hard_with_fpu", Descriptor{Cpu: m4, FloatAbi: FLOAT_ABI_HARD, Fpu: fpv4sp}, nil},
		{"soft_with_fpu",
			Descriptor{Cpu: m4, FloatAbi: FLOAT_ABI_SOFT, Fpu: fpv4sp},
			ErrFpuSoftFloatAbi},
		{"fpu_on_fpuless_cpu",
			Descriptor{Cpu: m0, FloatAbi: FLOAT_ABI_HARD, Fpu: fpv4sp},
			ErrNoFpuOnCpu("cortex-m0")},
		{"incompatible_fpu",
			Descriptor{Cpu: m7, FloatAbi: FLOAT_ABI_HARD, Fpu: vfpv2},
			ErrFpuIncompatible{Cpu: "cortex-m7", Fpu: "vfpv2"}},
	}

	for _, entry := range table {
		err := entry.desc.Validate()
		if entry.err == nil {
			assert.NoError(err, entry.name)
		} else {
			assert.Equal(entry.err, err, entry.name)
		}
	}
}

func TestDescriptorEqual(t *testing.T) {
	assert := assert.New(t)

	m4, _ := CpuByName("cortex-m4")
	m7, _ := CpuByName("cortex-m7")
	vfp, _ := FpuByName("vfp")
	vfpv2, _ := FpuByName("vfpv2")
	fpv4sp, _ := FpuByName("fpv4-sp-d16")

	base := &Descriptor{Cpu: m4, FloatAbi: FLOAT_ABI_HARD, Fpu: fpv4sp}

	// Independently built descriptors compare structurally.
	same := &Descriptor{Cpu: m4, FloatAbi: FLOAT_ABI_HARD, Fpu: fpv4sp}
	assert.True(base.Equal(same))
	assert.True(same.Equal(base))

	// Equality is by feature set for the FPU: aliases are the same unit.
	a := &Descriptor{Cpu: m7, FloatAbi: FLOAT_ABI_HARD, Fpu: vfp}
	b := &Descriptor{Cpu: m7, FloatAbi: FLOAT_ABI_HARD, Fpu: vfpv2}
	assert.True(a.Equal(b))

	table := [](struct {
		name  string
		other Descriptor
	}){
		{"cpu", Descriptor{Cpu: m7, FloatAbi: FLOAT_ABI_HARD, Fpu: fpv4sp}},
		{"isa", Descriptor{Cpu: m4, InstructionSet: ISA_ARM, FloatAbi: FLOAT_ABI_HARD, Fpu: fpv4sp}},
		{"endian", Descriptor{Cpu: m4, Endian: ENDIAN_BIG, FloatAbi: FLOAT_ABI_HARD, Fpu: fpv4sp}},
		{"float_abi", Descriptor{Cpu: m4, FloatAbi: FLOAT_ABI_SOFTFP, Fpu: fpv4sp}},
		{"fpu", Descriptor{Cpu: m4, FloatAbi: FLOAT_ABI_HARD, Fpu: vfpv2}},
		{"no_fpu", Descriptor{Cpu: m4, FloatAbi: FLOAT_ABI_HARD}},
	}

	for _, entry := range table {
		assert.False(base.Equal(&entry.other), entry.name)
	}
}
