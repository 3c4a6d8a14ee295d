// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package mcu

import (
	"iter"
	"slices"

	"github.com/ezrec/armtarget/arm"
)

// Cpu is a processor from the GCC -mcpu vocabulary, bound to its core
// model, its multilib architecture directory, and the FPUs it may be
// paired with.
type Cpu struct {
	Name  string
	Core  arm.Core
	March string // multilib architecture directory component
	Fpus  []*Fpu // compatible FPUs; empty means the core has no FPU
}

// Supports returns true if the FPU is compatible with this CPU.
// Membership is by feature-set equivalence, so an alias of a listed
// FPU is also supported.
func (cpu *Cpu) Supports(fpu *Fpu) bool {
	for _, compat := range cpu.Fpus {
		if compat.Equivalent(fpu) {
			return true
		}
	}

	return false
}

// fpus resolves catalogue FPU names into entries. Referencing an FPU
// that is not in the catalogue is a defect in the tables themselves.
func fpus(names ...string) (list []*Fpu) {
	for _, name := range names {
		fpu, ok := FpuByName(name)
		if !ok {
			panic("catalogue references unknown fpu " + name)
		}
		list = append(list, fpu)
	}

	return
}

// The CPU catalogue, grouped by architecture generation.
var _cpus = []*Cpu{
	// Armv6-M
	{Name: "cortex-m0", Core: arm.CORE_CORTEX_M0, March: "v6-m"},
	{Name: "cortex-m0plus", Core: arm.CORE_CORTEX_M0PLUS, March: "v6-m"},
	{Name: "cortex-m1", Core: arm.CORE_CORTEX_M1, March: "v6-m"},

	// Armv7-M
	{Name: "cortex-m3", Core: arm.CORE_CORTEX_M3, March: "v7-m"},

	// Armv7E-M
	{Name: "cortex-m4", Core: arm.CORE_CORTEX_M4, March: "v7e-m",
		Fpus: fpus("fpv4-sp-d16")},
	{Name: "cortex-m7", Core: arm.CORE_CORTEX_M7, March: "v7e-m",
		Fpus: fpus("fpv5-d16", "fpv5-sp-d16", "vfpv4", "vfpv4-d16", "fpv4-sp-d16")},

	// Armv8-M Baseline
	{Name: "cortex-m23", Core: arm.CORE_CORTEX_M23, March: "v8-m.base"},

	// Armv8-M Mainline
	{Name: "cortex-m33", Core: arm.CORE_CORTEX_M33, March: "v8-m.main",
		Fpus: fpus("fpv5-sp-d16", "fpv4-sp-d16")},
	{Name: "cortex-m35p", Core: arm.CORE_CORTEX_M35P, March: "v8-m.main",
		Fpus: fpus("fpv5-sp-d16", "fpv4-sp-d16")},

	// Armv8.1-M Mainline
	{Name: "cortex-m55", Core: arm.CORE_CORTEX_M55, March: "v8.1-m.main",
		Fpus: fpus("fpv5-d16", "fp-armv8")},
	{Name: "cortex-m85", Core: arm.CORE_CORTEX_M85, March: "v8.1-m.main",
		Fpus: fpus("fpv5-d16", "fp-armv8")},
}

var _cpu_by_name = func() (byname map[string]*Cpu) {
	byname = make(map[string]*Cpu, len(_cpus))
	for _, cpu := range _cpus {
		byname[cpu.Name] = cpu
	}

	return
}()

// CpuByName looks up a catalogue CPU by its -mcpu name.
func CpuByName(name string) (cpu *Cpu, ok bool) {
	cpu, ok = _cpu_by_name[name]

	return
}

// cpuByCore finds the catalogue CPU for a core model identity.
func cpuByCore(core arm.Core) *Cpu {
	for _, cpu := range _cpus {
		if cpu.Core == core {
			return cpu
		}
	}

	return nil
}

// Cpus iterates the CPU catalogue, in architecture-generation order.
func Cpus() iter.Seq[*Cpu] {
	return slices.Values(_cpus)
}

// CpuNames iterates the catalogue CPU names, in architecture-generation
// order.
func CpuNames() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, cpu := range _cpus {
			if !yield(cpu.Name) {
				return
			}
		}
	}
}
