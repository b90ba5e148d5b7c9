// Command uname prints system identification from uname(2).
package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"

	"asdutils/internal/version"
)

const operatingSystem = "GNU/Linux"

func newUnameCommand() *cobra.Command {
	var (
		all      bool
		kernel   bool
		node     bool
		release  bool
		kversion bool
		machine  bool
		opsys    bool
	)

	cmd := &cobra.Command{
		Use:           "uname [flags]",
		Short:         "Print system information",
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var uts unix.Utsname
			if err := unix.Uname(&uts); err != nil {
				return fmt.Errorf("uname: %v", err)
			}

			if all {
				kernel, node, release, kversion, machine, opsys = true, true, true, true, true, true
			}
			if !kernel && !node && !release && !kversion && !machine && !opsys {
				kernel = true
			}

			var fields []string
			if kernel {
				fields = append(fields, utsField(uts.Sysname[:]))
			}
			if node {
				fields = append(fields, utsField(uts.Nodename[:]))
			}
			if release {
				fields = append(fields, utsField(uts.Release[:]))
			}
			if kversion {
				fields = append(fields, utsField(uts.Version[:]))
			}
			if machine {
				fields = append(fields, utsField(uts.Machine[:]))
			}
			if opsys {
				fields = append(fields, operatingSystem)
			}

			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(fields, " "))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "print all information")
	cmd.Flags().BoolVarP(&kernel, "kernel-name", "s", false, "print the kernel name")
	cmd.Flags().BoolVarP(&node, "nodename", "n", false, "print the network node hostname")
	cmd.Flags().BoolVarP(&release, "kernel-release", "r", false, "print the kernel release")
	cmd.Flags().BoolVarP(&kversion, "kernel-version", "v", false, "print the kernel version")
	cmd.Flags().BoolVarP(&machine, "machine", "m", false, "print the machine hardware name")
	cmd.Flags().BoolVarP(&opsys, "operating-system", "o", false, "print the operating system")
	cmd.Flags().BoolP("version", "V", false, "print version information and exit")

	return cmd
}

// utsField converts a NUL-padded uname field to a string.
func utsField(raw []byte) string {
	if i := bytes.IndexByte(raw, 0); i >= 0 {
		raw = raw[:i]
	}
	return string(raw)
}

func main() {
	cmd := newUnameCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
