package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ╔╗╔┌─┐┬  ┬┬┌─┐
  ║║║├─┤└┐┌┘││ │
  ╝╚╝┴ ┴ └┘ ┴└─┘
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "navio",
		Short: "Navigation core for single-page applications",
		Long: `Navio is a navigation core for single-page applications.

It routes hash-free locations through a pattern table, runs a
middleware chain per navigation, and swaps page controllers in and
out as the user moves around. A thin browser client connects over a
WebSocket bridge and renders whatever the active controller produced.

The bundled demo is a reservation admin dashboard for a real-estate
agency.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		routesCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

// printBanner prints the Navio ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}
