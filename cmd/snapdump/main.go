// Snapdump converts a capture-session snapshot directory into a single
// canonical, deterministically ordered text dump.
//
// A snapshot directory holds a snapshot.ini manifest, the device description
// files it references, and optionally a trace-metadata file. Snapdump parses
// them, validates the raw streams, canonicalizes the resulting model, and
// writes a byte-stable dump used to check that a snapshot's structure is
// parsed consistently.
//
// Usage:
//
//	snapdump --ss_dir <snapshot_dir> -o <output_file> [--quiet]
//
// See 'snapdump --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/snapdump/internal/logging"
	"github.com/muurk/snapdump/internal/version"
)

func main() {
	if err := logging.InitializeFromEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "snapdump: %v\n", err)
		os.Exit(1)
	}
	err := rootCmd.Execute()
	logging.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "snapdump: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snapdump --ss_dir <snapshot_dir> -o <output_file>",
	Short: "Snapshot parse dump tool",
	Long: `Snapdump converts a capture-session snapshot directory into a single
canonical text dump.

The snapshot's manifest, device description files and optional trace
metadata are parsed, validated, sorted into a deterministic order and
serialized, so two snapshots with identical semantic content produce
byte-identical output regardless of declaration order or whitespace.`,
	Version:       version.Version,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runDump,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("snapdump %s\n", version.Full())
	},
}
