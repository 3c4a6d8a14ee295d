package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ezrec/armtarget/gnu"
)

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Print multilib library and include paths for a target",
	RunE:  runPaths,
}

var (
	pathsFlags  targetFlags
	pathsConfig string
)

func init() {
	pathsFlags.register(pathsCmd)
	pathsCmd.Flags().StringVar(&pathsConfig, "config", "", "TOML search configuration file")
}

func runPaths(cmd *cobra.Command, args []string) error {
	config := &gnu.SearchConfig{}
	if pathsConfig != "" {
		loaded, err := gnu.LoadConfig(pathsConfig)
		if err != nil {
			return fail(err.Error())
		}
		config = loaded
	}

	desc, err := pathsFlags.descriptor()
	if err != nil {
		return fail(flagError(err))
	}

	tc, err := gnu.Locate(config)
	if err != nil {
		return fail(err.Error())
	}

	dir, err := gnu.Multilib(desc)
	if err != nil {
		return fail(err.Error())
	}
	fmt.Printf("multilib: %v\n", dir)

	libs, err := tc.LibraryPaths(desc)
	if err != nil {
		return fail(err.Error())
	}
	for _, path := range append(libs, config.Extra...) {
		fmt.Printf("lib: %v\n", path)
	}
	for _, path := range tc.IncludePaths() {
		fmt.Printf("include: %v\n", path)
	}

	return nil
}
