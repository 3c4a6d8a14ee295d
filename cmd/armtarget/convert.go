package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Translate flags into a target triple and feature list",
	RunE:  runConvert,
}

var convertFlags targetFlags

func init() {
	convertFlags.register(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	desc, err := convertFlags.descriptor()
	if err != nil {
		return fail(flagError(err))
	}

	query, err := desc.Query()
	if err != nil {
		return fail(err.Error())
	}

	fmt.Println(query.Triple())
	for feature := range query.Features() {
		fmt.Printf("+%v\n", feature)
	}

	return nil
}
