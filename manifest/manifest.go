// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package manifest loads Starlark manifests declaring the compilation
// targets a build is permitted to use. A manifest is a sequence of
// target() calls:
//
//	target(cpu = "cortex-m4", float_abi = "hard", fpu = "fpv4-sp-d16")
//	target(cpu = "cortex-m0")
//
// Each call funnels through the flag translator, so a manifest can
// never declare a target the translator itself would reject.
package manifest

import (
	"os"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/armtarget/mcu"
)

// Load reads and evaluates a manifest file.
func Load(path string) (targets []*mcu.Descriptor, err error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return
	}

	return Parse(path, src)
}

// Parse evaluates manifest source. The src argument takes anything
// the Starlark interpreter accepts (string, []byte, io.Reader).
func Parse(name string, src any) (targets []*mcu.Descriptor, err error) {
	thread := starlark.Thread{Name: name}
	opts := syntax.FileOptions{}

	target := starlark.NewBuiltin("target",
		func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var cpu, floatAbi, fpu string
			var useThumb, useArm bool
			err := starlark.UnpackArgs(fn.Name(), args, kwargs,
				"cpu", &cpu,
				"float_abi?", &floatAbi,
				"fpu?", &fpu,
				"thumb?", &useThumb,
				"arm?", &useArm)
			if err != nil {
				return nil, err
			}

			desc, err := mcu.FromFlags(cpu, floatAbi, fpu, useThumb, useArm)
			if err != nil {
				return nil, err
			}
			targets = append(targets, desc)

			return starlark.None, nil
		})

	pred := starlark.StringDict{"target": target}
	_, err = starlark.ExecFileOptions(&opts, &thread, name, src, pred)
	if err != nil {
		targets = nil
		err = ErrManifest{Name: name, Err: err}
	}

	return
}
