package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/muurk/snapdump/internal/snapshot"
)

// Dump command flags
var (
	snapshotDir string
	outputFile  string
	quiet       bool
)

func init() {
	rootCmd.Flags().StringVar(&snapshotDir, "ss_dir", "", "Snapshot directory containing snapshot.ini")
	rootCmd.Flags().StringVarP(&outputFile, "out", "o", "", "Output file for the canonical dump")
	rootCmd.Flags().BoolVar(&quiet, "quiet", false, "Suppress the success notice")
	_ = rootCmd.MarkFlagRequired("ss_dir")
	_ = rootCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(inspectCmd)
}

func runDump(cmd *cobra.Command, args []string) error {
	return snapshot.Run(snapshot.Options{
		SnapshotDir: snapshotDir,
		OutputPath:  outputFile,
		Quiet:       quiet,
	})
}

// inspectCmd builds and canonicalizes the model without writing the dump,
// printing it as YAML for debugging snapshot contents.
var inspectCmd = &cobra.Command{
	Use:   "inspect --ss_dir <snapshot_dir>",
	Short: "Print the canonical snapshot model as YAML",
	Long: `Inspect parses and validates a snapshot directory exactly like a dump
run, then prints the canonicalized model as YAML instead of writing the
dump file. Useful for examining what a snapshot declares without
committing to the dump format.`,
	Example: `  # Inspect a snapshot
  snapdump inspect --ss_dir ./capture1`,
	RunE: runInspect,
}

var inspectDir string

func init() {
	inspectCmd.Flags().StringVar(&inspectDir, "ss_dir", "", "Snapshot directory containing snapshot.ini")
	_ = inspectCmd.MarkFlagRequired("ss_dir")
}

func runInspect(cmd *cobra.Command, args []string) error {
	snap, err := snapshot.Load(snapshot.Options{SnapshotDir: inspectDir})
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal model: %w", err)
	}
	_, err = os.Stdout.Write(data)
	return err
}
