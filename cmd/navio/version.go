package main

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

func versionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print version, commit, and build information for the Navio CLI.`,
		Run: func(cmd *cobra.Command, args []string) {
			v, c, d := buildInfo()
			if short {
				fmt.Println(v)
				return
			}

			printBanner()
			fmt.Println()
			info("Version:    %s", v)
			info("Commit:     %s", c)
			info("Built:      %s", d)
			info("Go version: %s", runtime.Version())
			info("OS/Arch:    %s/%s", runtime.GOOS, runtime.GOARCH)
			fmt.Println()
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "Print only version number")

	return cmd
}

// buildInfo returns version, commit and build date, preferring ldflags
// values and falling back to what the module system embedded.
func buildInfo() (string, string, string) {
	v, c, d := version, commit, date

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return v, c, d
	}
	if v == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		v = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if c == "none" {
				c = s.Value
			}
		case "vcs.time":
			if d == "unknown" {
				d = s.Value
			}
		}
	}
	return v, c, d
}
