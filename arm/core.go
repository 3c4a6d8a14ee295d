// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package arm

// Core is the identity of an ARM processor core model.
type Core int

//go:generate go tool stringer -linecomment -type=Core
const (
	CORE_CORTEX_M0     = Core(0)  // cortex-m0
	CORE_CORTEX_M0PLUS = Core(1)  // cortex-m0plus
	CORE_CORTEX_M1     = Core(2)  // cortex-m1
	CORE_CORTEX_M3     = Core(3)  // cortex-m3
	CORE_CORTEX_M4     = Core(4)  // cortex-m4
	CORE_CORTEX_M7     = Core(5)  // cortex-m7
	CORE_CORTEX_M23    = Core(6)  // cortex-m23
	CORE_CORTEX_M33    = Core(7)  // cortex-m33
	CORE_CORTEX_M35P   = Core(8)  // cortex-m35p
	CORE_CORTEX_M55    = Core(9)  // cortex-m55
	CORE_CORTEX_M85    = Core(10) // cortex-m85
)
