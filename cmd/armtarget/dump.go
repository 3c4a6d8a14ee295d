package main

import (
	"slices"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/ezrec/armtarget/mcu"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Dump the catalogue structures for debugging",
	Run:   runDump,
}

func runDump(cmd *cobra.Command, args []string) {
	spew.Dump(slices.Collect(mcu.Cpus()))
	spew.Dump(slices.Collect(mcu.Fpus()))
}
