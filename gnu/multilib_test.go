package gnu

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/armtarget/mcu"
)

func TestMultilib(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		cpu      string
		floatAbi string
		fpu      string
		dir      string
	}){
		{"cortex-m0", "", "", "thumb/v6-m/nofp"},
		{"cortex-m3", "", "", "thumb/v7-m/nofp"},
		{"cortex-m4", "", "", "thumb/v7e-m/nofp"},
		{"cortex-m4", "hard", "fpv4-sp-d16", "thumb/v7e-m+fp/hard"},
		{"cortex-m4", "softfp", "fpv4-sp-d16", "thumb/v7e-m+fp/softfp"},
		{"cortex-m7", "hard", "fpv5-d16", "thumb/v7e-m+dp/hard"},
		{"cortex-m7", "hard", "fpv5-sp-d16", "thumb/v7e-m+fp/hard"},
		{"cortex-m23", "", "", "thumb/v8-m.base/nofp"},
		{"cortex-m33", "hard", "fpv5-sp-d16", "thumb/v8-m.main+fp/hard"},
		{"cortex-m55", "hard", "fpv5-d16", "thumb/v8.1-m.main+dp/hard"},
		{"cortex-m85", "softfp", "fp-armv8", "thumb/v8.1-m.main+dp/softfp"},
	}

	for _, entry := range table {
		desc, err := mcu.FromFlags(entry.cpu, entry.floatAbi, entry.fpu, true, false)
		assert.NoError(err, entry.dir)

		dir, err := Multilib(desc)
		assert.NoError(err, entry.dir)
		assert.Equal(entry.dir, dir, entry.dir)
	}
}

func TestMultilibArmFallback(t *testing.T) {
	assert := assert.New(t)

	desc, err := mcu.FromFlags("cortex-m3", "", "", false, true)
	assert.NoError(err)

	dir, err := Multilib(desc)
	assert.NoError(err)
	assert.Equal(".", dir)
}

func TestMultilibRejectsInvalid(t *testing.T) {
	assert := assert.New(t)

	m0, _ := mcu.CpuByName("cortex-m0")
	fpu, _ := mcu.FpuByName("fpv4-sp-d16")

	desc := &mcu.Descriptor{Cpu: m0, FloatAbi: mcu.FLOAT_ABI_HARD, Fpu: fpu}
	_, err := Multilib(desc)
	assert.Equal(mcu.ErrNoFpuOnCpu("cortex-m0"), err)
}

func TestLocateRoot(t *testing.T) {
	assert := assert.New(t)

	root := t.TempDir()
	assert.NoError(os.MkdirAll(filepath.Join(root, "bin"), 0o755))
	assert.NoError(os.WriteFile(filepath.Join(root, "bin", "arm-none-eabi-gcc"), []byte{}, 0o755))

	tc, err := Locate(&SearchConfig{Root: root})
	assert.NoError(err)
	assert.Equal(DEFAULT_PREFIX, tc.Prefix)
	assert.Equal(root, tc.Root)

	desc, err := mcu.FromFlags("cortex-m4", "hard", "fpv4-sp-d16", true, false)
	assert.NoError(err)

	paths, err := tc.LibraryPaths(desc)
	assert.NoError(err)
	assert.Equal([]string{
		filepath.Join(root, "arm-none-eabi", "lib", "thumb", "v7e-m+fp", "hard"),
		filepath.Join(root, "arm-none-eabi", "lib"),
	}, paths)

	assert.Equal([]string{
		filepath.Join(root, "arm-none-eabi", "include"),
	}, tc.IncludePaths())
}

func TestLocateMissing(t *testing.T) {
	assert := assert.New(t)

	_, err := Locate(&SearchConfig{Root: t.TempDir()})
	assert.ErrorAs(err, new(ErrNoToolchain))
}

func TestLoadConfig(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "search.toml")
	assert.NoError(os.WriteFile(path, []byte(`
prefix = "armv7m-none-eabi-"
root = "/opt/gcc-arm"
extra = ["/opt/board/lib"]
`), 0o644))

	config, err := LoadConfig(path)
	assert.NoError(err)
	assert.Equal("armv7m-none-eabi-", config.Prefix)
	assert.Equal("/opt/gcc-arm", config.Root)
	assert.Equal([]string{"/opt/board/lib"}, config.Extra)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorAs(err, new(ErrConfig))
}
