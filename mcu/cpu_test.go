package mcu

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Catalogue consistency: the documented generation grouping, unique
// core identities, and compatible-FPU lists that resolve back into the
// FPU table.
func TestCpuCatalogue(t *testing.T) {
	assert := assert.New(t)

	assert.Equal([]string{
		"cortex-m0", "cortex-m0plus", "cortex-m1", // Armv6-M
		"cortex-m3",              // Armv7-M
		"cortex-m4", "cortex-m7", // Armv7E-M
		"cortex-m23",                // Armv8-M Baseline
		"cortex-m33", "cortex-m35p", // Armv8-M Mainline
		"cortex-m55", "cortex-m85", // Armv8.1-M Mainline
	}, slices.Collect(CpuNames()))

	seen := map[string]bool{}
	for cpu := range Cpus() {
		byname, ok := CpuByName(cpu.Name)
		assert.True(ok, cpu.Name)
		assert.Equal(cpu, byname, cpu.Name)

		assert.False(seen[cpu.Core.String()], cpu.Name)
		seen[cpu.Core.String()] = true
		assert.Equal(cpu, cpuByCore(cpu.Core), cpu.Name)

		for _, fpu := range cpu.Fpus {
			entry, ok := FpuByName(fpu.Name)
			assert.True(ok, cpu.Name)
			assert.True(fpu.Equal(entry), cpu.Name)
			assert.True(cpu.Supports(fpu), cpu.Name)
		}
	}

	_, ok := CpuByName("cortex-a53")
	assert.False(ok)
}

func TestCpuFpuCounts(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		count int
	}){
		{"cortex-m0", 0},
		{"cortex-m0plus", 0},
		{"cortex-m1", 0},
		{"cortex-m3", 0},
		{"cortex-m4", 1},
		{"cortex-m7", 5},
		{"cortex-m23", 0},
		{"cortex-m33", 2},
		{"cortex-m35p", 2},
		{"cortex-m55", 2},
		{"cortex-m85", 2},
	}

	for _, entry := range table {
		cpu, ok := CpuByName(entry.name)
		assert.True(ok, entry.name)
		assert.Len(cpu.Fpus, entry.count, entry.name)
	}
}

func TestCpuSupportsAlias(t *testing.T) {
	assert := assert.New(t)

	// Supports goes by feature set, not name: an alias of a listed FPU
	// counts, one outside the list does not.
	m7, _ := CpuByName("cortex-m7")
	vfpv4, _ := FpuByName("vfpv4")
	vfp, _ := FpuByName("vfp")

	assert.True(m7.Supports(vfpv4))
	assert.False(m7.Supports(vfp))
}
