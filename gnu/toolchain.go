// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package gnu

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// DEFAULT_PREFIX is the binary name prefix of the bare-metal ARM
// cross toolchain.
const DEFAULT_PREFIX = "arm-none-eabi-"

// SearchConfig controls where the toolchain is looked for, read from
// a TOML file:
//
//	prefix = "arm-none-eabi-"
//	root = "/opt/gcc-arm"
//	extra = ["/opt/board/lib"]
type SearchConfig struct {
	Prefix string   `toml:"prefix"` // binary name prefix
	Root   string   `toml:"root"`   // installation root; empty searches PATH
	Extra  []string `toml:"extra"`  // extra library directories
}

// LoadConfig reads a search configuration from a TOML file.
func LoadConfig(path string) (config *SearchConfig, err error) {
	config = &SearchConfig{}
	_, err = toml.DecodeFile(path, config)
	if err != nil {
		config = nil
		err = ErrConfig{Path: path, Err: err}
	}

	return
}

// Toolchain is a located cross toolchain installation.
type Toolchain struct {
	Prefix string // binary name prefix, e.g. "arm-none-eabi-"
	Root   string // installation root holding bin/ and the sysroot
}

// Locate finds the cross gcc for the configuration without invoking
// it: under the configured root if one is set, otherwise on PATH.
func Locate(config *SearchConfig) (tc *Toolchain, err error) {
	prefix := config.Prefix
	if prefix == "" {
		prefix = DEFAULT_PREFIX
	}

	if config.Root != "" {
		gcc := filepath.Join(config.Root, "bin", prefix+"gcc")
		if _, staterr := os.Stat(gcc); staterr != nil {
			err = ErrNoToolchain(gcc)
			return
		}
		tc = &Toolchain{Prefix: prefix, Root: config.Root}
		return
	}

	gcc, err := exec.LookPath(prefix + "gcc")
	if err != nil {
		err = ErrNoToolchain(prefix + "gcc")
		return
	}

	gcc, err = filepath.EvalSymlinks(gcc)
	if err != nil {
		return
	}

	tc = &Toolchain{Prefix: prefix, Root: filepath.Dir(filepath.Dir(gcc))}

	return
}

// sysroot is the target directory of the installation, named after
// the prefix ("arm-none-eabi-" installs into "arm-none-eabi").
func (tc *Toolchain) sysroot() string {
	return filepath.Join(tc.Root, strings.TrimSuffix(tc.Prefix, "-"))
}
