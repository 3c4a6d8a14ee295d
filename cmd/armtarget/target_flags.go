package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ezrec/armtarget/mcu"
)

// targetFlags is the GCC-equivalent flag set shared by the
// translating subcommands.
type targetFlags struct {
	cpu      string
	floatAbi string
	fpu      string
	thumb    bool
	arm      bool
}

func (flags *targetFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flags.cpu, "mcpu", "", "target cpu (-mcpu)")
	cmd.Flags().StringVar(&flags.floatAbi, "mfloat-abi", "", "float abi: soft, softfp, hard (-mfloat-abi)")
	cmd.Flags().StringVar(&flags.fpu, "mfpu", "", "target fpu (-mfpu)")
	cmd.Flags().BoolVar(&flags.thumb, "mthumb", false, "use the thumb instruction set (-mthumb)")
	cmd.Flags().BoolVar(&flags.arm, "marm", false, "use the arm instruction set (-marm)")
}

func (flags *targetFlags) descriptor() (*mcu.Descriptor, error) {
	return mcu.FromFlags(flags.cpu, flags.floatAbi, flags.fpu, flags.thumb, flags.arm)
}

// flagError renders a translation failure as a one-line diagnostic
// naming the offending flag.
func flagError(err error) string {
	flag := ""
	switch err.(type) {
	case mcu.ErrCpuInvalid:
		flag = "-mcpu"
	case mcu.ErrFpuInvalid:
		flag = "-mfpu"
	case mcu.ErrFloatAbiInvalid:
		flag = "-mfloat-abi"
	default:
		switch err {
		case mcu.ErrCpuMissing:
			flag = "-mcpu"
		case mcu.ErrFpuMissing:
			flag = "-mfpu"
		}
	}

	if flag == "" {
		return err.Error()
	}

	return fmt.Sprintf("%v: %v", flag, err)
}
