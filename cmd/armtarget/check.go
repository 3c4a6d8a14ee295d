package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ezrec/armtarget/manifest"
	"github.com/ezrec/armtarget/mcu"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check flags against an allow-list manifest",
	RunE:  runCheck,
}

var (
	checkFlags    targetFlags
	checkManifest string
)

func init() {
	checkFlags.register(checkCmd)
	checkCmd.Flags().StringVar(&checkManifest, "manifest", "targets.star", "allow-list manifest file")
}

func runCheck(cmd *cobra.Command, args []string) error {
	allowed, err := manifest.Load(checkManifest)
	if err != nil {
		return fail(err.Error())
	}

	desc, err := checkFlags.descriptor()
	if err != nil {
		return fail(flagError(err))
	}

	query, err := desc.Query()
	if err != nil {
		return fail(err.Error())
	}

	if !mcu.Within(query.Resolve(desc.Cpu.Core), allowed) {
		return fail(fmt.Sprintf("target %v is not allowed by %v", query.Triple(), checkManifest))
	}

	fmt.Println("ok")

	return nil
}
