package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ezrec/armtarget/internal"
	"github.com/ezrec/armtarget/mcu"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the supported CPUs and FPUs",
	Run:   runList,
}

var listNames bool

func init() {
	listCmd.Flags().BoolVar(&listNames, "names", false, "print bare names only")
}

func runList(cmd *cobra.Command, args []string) {
	if listNames {
		for name := range internal.IterSeqConcat(mcu.CpuNames(), mcu.FpuNames()) {
			fmt.Println(name)
		}
		return
	}

	fmt.Println("CPUs:")
	for cpu := range mcu.Cpus() {
		if len(cpu.Fpus) == 0 {
			fmt.Printf("  %-14v (no fpu)\n", cpu.Name)
			continue
		}

		names := []string{}
		for _, fpu := range cpu.Fpus {
			names = append(names, fpu.Name)
		}
		fmt.Printf("  %-14v %v\n", cpu.Name, strings.Join(names, ", "))
	}

	fmt.Println("FPUs:")
	for fpu := range mcu.Fpus() {
		fmt.Printf("  %d %-20v %v\n", fpu.Priority, fpu.Name, fpu.Features)
	}
}
