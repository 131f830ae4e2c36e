package snapshot

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/muurk/snapdump/internal/ini"
	"github.com/muurk/snapdump/internal/logging"
	"github.com/muurk/snapdump/internal/textutil"
)

// ManifestName is the fixed name of the top-level file inside a snapshot
// directory.
const ManifestName = "snapshot.ini"

// Options configures one snapshot run. SnapshotDir is always required;
// OutputPath only for Run.
type Options struct {
	// SnapshotDir is the directory containing snapshot.ini.
	SnapshotDir string
	// OutputPath is where Run writes the dump.
	OutputPath string
	// Quiet suppresses the one-line success notice.
	Quiet bool
	// Separator is the target path separator used when joining
	// SnapshotDir with manifest-relative paths. Zero means the host
	// separator.
	Separator byte
	// Validator checks every raw input stream before model assembly.
	// Nil means the built-in structural validator.
	Validator Validator
	// Stdout receives the success notice. Nil means os.Stdout.
	Stdout io.Writer
}

func (o *Options) separator() byte {
	if o.Separator == 0 {
		return os.PathSeparator
	}
	return o.Separator
}

// Load parses the snapshot directory into a canonicalized model without
// writing anything. The sequence is fixed: parse manifest, run the validator
// over every raw stream (manifest, each device file, optional trace file),
// then build and canonicalize the model. The first error aborts.
func Load(opts Options) (*Snapshot, error) {
	if opts.SnapshotDir == "" {
		return nil, NewUsageError("snapshot directory not set")
	}
	sep := opts.separator()
	validator := opts.Validator
	if validator == nil {
		validator = NewStructuralValidator()
	}

	manifestPath := textutil.JoinPath(opts.SnapshotDir, ManifestName, sep)
	manifestRaw, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, NewIOError("failed to open snapshot.ini", manifestPath, err)
	}
	doc, err := ini.Parse(bytes.NewReader(manifestRaw), manifestPath)
	if err != nil {
		return nil, NewSyntaxError(manifestPath, err)
	}
	manifest, err := BuildManifest(doc, manifestPath)
	if err != nil {
		return nil, err
	}
	logging.Debug("parsed manifest",
		zap.String("path", manifestPath),
		zap.Int("devices", len(manifest.DeviceList)),
		zap.String("trace_metadata", manifest.TraceMetadata))

	// Validation phase. Every referenced file is read and checked before
	// any model file is interpreted.
	if err := validator.Validate(RoleManifest, manifestPath, bytes.NewReader(manifestRaw)); err != nil {
		return nil, err
	}
	deviceRaw := make([][]byte, len(manifest.DeviceList))
	for i, entry := range manifest.DeviceList {
		path := textutil.JoinPath(opts.SnapshotDir, entry.Value, sep)
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, NewIOError("failed to open device ini", path, err)
		}
		if err := validator.Validate(RoleDevice, path, bytes.NewReader(raw)); err != nil {
			return nil, err
		}
		deviceRaw[i] = raw
	}
	var traceRaw []byte
	var tracePath string
	if manifest.TraceMetadata != "" {
		tracePath = textutil.JoinPath(opts.SnapshotDir, manifest.TraceMetadata, sep)
		traceRaw, err = os.ReadFile(tracePath)
		if err != nil {
			return nil, NewIOError("failed to open trace metadata ini", tracePath, err)
		}
		if err := validator.Validate(RoleTraceMetadata, tracePath, bytes.NewReader(traceRaw)); err != nil {
			return nil, err
		}
	}

	// Build phase: re-parse each referenced file into the model.
	snap := &Snapshot{Dir: opts.SnapshotDir, Manifest: *manifest}
	for i, entry := range manifest.DeviceList {
		path := textutil.JoinPath(opts.SnapshotDir, entry.Value, sep)
		doc, err := ini.Parse(bytes.NewReader(deviceRaw[i]), path)
		if err != nil {
			return nil, NewSyntaxError(path, err)
		}
		dev, err := BuildDevice(doc, entry.Value)
		if err != nil {
			return nil, err
		}
		logging.Debug("built device",
			zap.String("name", dev.Name),
			zap.Int("registers", len(dev.Registers)),
			zap.Int("dumps", len(dev.Dumps)))
		snap.Devices = append(snap.Devices, *dev)
	}
	if manifest.TraceMetadata != "" {
		doc, err := ini.Parse(bytes.NewReader(traceRaw), tracePath)
		if err != nil {
			return nil, NewSyntaxError(tracePath, err)
		}
		tm, err := BuildTraceMetadata(doc, manifest.TraceMetadata)
		if err != nil {
			return nil, err
		}
		snap.Trace = tm
	}

	snap.Canonicalize()
	return snap, nil
}

// Run executes the full pipeline and writes the canonical dump to
// opts.OutputPath. The output file is not created until every earlier step
// has succeeded, so a failing run never leaves a partial file behind.
func Run(opts Options) error {
	if opts.OutputPath == "" {
		return NewUsageError("output file not set")
	}
	snap, err := Load(opts)
	if err != nil {
		return err
	}

	f, err := os.Create(opts.OutputPath)
	if err != nil {
		return NewIOError("failed to open output file", opts.OutputPath, err)
	}
	if err := WriteDump(f, snap); err != nil {
		f.Close()
		return NewIOError("failed to write output file", opts.OutputPath, err)
	}
	if err := f.Close(); err != nil {
		return NewIOError("failed to close output file", opts.OutputPath, err)
	}
	logging.Info("wrote snapshot dump",
		zap.String("output", opts.OutputPath),
		zap.Int("devices", len(snap.Devices)))

	if !opts.Quiet {
		stdout := opts.Stdout
		if stdout == nil {
			stdout = os.Stdout
		}
		fmt.Fprintf(stdout, "snapdump: wrote %s\n", opts.OutputPath)
	}
	return nil
}
