package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/armtarget/mcu"
)

func TestParse(t *testing.T) {
	assert := assert.New(t)

	src := `
target(cpu = "cortex-m4", float_abi = "hard", fpu = "fpv4-sp-d16")
target(cpu = "cortex-m0")
target(cpu = "cortex-m3", arm = True)
`
	targets, err := Parse("targets.star", src)
	assert.NoError(err)
	assert.Len(targets, 3)

	assert.Equal("cortex-m4", targets[0].Cpu.Name)
	assert.Equal(mcu.FLOAT_ABI_HARD, targets[0].FloatAbi)
	assert.Equal("fpv4-sp-d16", targets[0].Fpu.Name)

	assert.Equal("cortex-m0", targets[1].Cpu.Name)
	assert.Equal(mcu.FLOAT_ABI_SOFT, targets[1].FloatAbi)
	assert.Nil(targets[1].Fpu)
	assert.Equal(mcu.ISA_THUMB, targets[1].InstructionSet)

	assert.Equal(mcu.ISA_ARM, targets[2].InstructionSet)
}

func TestParseRejects(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		src  string
	}){
		{"unknown_cpu", `target(cpu = "cortex-a53")`},
		{"fpu_under_soft", `target(cpu = "cortex-m4", fpu = "fpv4-sp-d16")`},
		{"missing_cpu", `target(float_abi = "hard")`},
		{"syntax", `target(`},
	}

	for _, entry := range table {
		targets, err := Parse(entry.name, entry.src)
		assert.Nil(targets, entry.name)

		var manifestErr ErrManifest
		assert.ErrorAs(err, &manifestErr, entry.name)
		assert.Equal(entry.name, manifestErr.Name, entry.name)
	}
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "targets.star")
	err := os.WriteFile(path, []byte(`target(cpu = "cortex-m7", float_abi = "softfp", fpu = "fpv5-d16")`), 0o644)
	assert.NoError(err)

	targets, err := Load(path)
	assert.NoError(err)
	assert.Len(targets, 1)
	assert.Equal(mcu.FLOAT_ABI_SOFTFP, targets[0].FloatAbi)

	_, err = Load(filepath.Join(t.TempDir(), "missing.star"))
	assert.Error(err)
}
