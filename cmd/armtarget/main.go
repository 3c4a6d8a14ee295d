// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "armtarget",
	Short: "Translate GCC ARM microcontroller flags to target queries",
	Long: `armtarget converts between the GCC flag vocabulary for ARM
microcontrollers (-mcpu/-mfpu/-mfloat-abi/-mthumb/-marm) and the
arch/abi/feature target queries used by target resolvers.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var errlog = color.New(color.FgRed)

// fail prints a one-line diagnostic and returns a non-nil error so
// the process exits with status 1.
func fail(msg string) error {
	errlog.Fprintln(os.Stderr, msg)

	return errors.New(msg)
}

func main() {
	rootCmd.Version = version

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(pathsCmd)
	rootCmd.AddCommand(dumpCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
