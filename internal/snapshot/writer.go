package snapshot

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/muurk/snapdump/internal/textutil"
)

// WriteDump serializes a canonicalized snapshot to the line-oriented dump
// format in a single pass. It never mutates the model; call Canonicalize
// first or the output will follow declaration order instead of the canonical
// one.
//
// All emitted paths use forward slashes; the snapshot directory additionally
// has trailing slashes stripped.
func WriteDump(w io.Writer, s *Snapshot) error {
	bw := bufio.NewWriter(w)
	line := func(format string, args ...any) {
		fmt.Fprintf(bw, format+"\n", args...)
	}

	line("snapshot_dir = %s", textutil.NormalizePath(s.Dir, true))
	line("snapshot_ini = %s", ManifestName)
	line("snapshot.version = %s", s.Manifest.Version)
	line("snapshot.description = %s", s.Manifest.Description)

	line("device_list.count = %d", len(s.Manifest.DeviceList))
	for _, e := range s.Manifest.DeviceList {
		line("device_list.%s = %s", e.Key, textutil.NormalizePath(e.Value, false))
	}

	for i := range s.Devices {
		dev := &s.Devices[i]
		line("[[device]]")
		line("name = %s", dev.Name)
		line("class = %s", dev.Class)
		line("type = %s", dev.Type)
		line("location = %s", dev.Location)
		line("ini = %s", dev.SourcePath)
		line("regs.count = %d", len(dev.Registers))
		line("dump.count = %d", len(dev.Dumps))

		for _, reg := range dev.Registers {
			line("reg.%s = %s ; meta: id=%s size=%s", reg.Name, reg.Value, reg.ID, reg.Size)
		}
		for _, dump := range dev.Dumps {
			line("[[dump]]")
			line("section = %s", dump.Section)
			line("file = %s", dump.File)
			line("space = %s", dump.Space)
			line("address = %s", dump.Address)
			line("length = %s", dump.Length)
			line("offset = %s", dump.Offset)
		}
	}

	if len(s.Manifest.Clusters) > 0 {
		line("clusters.count = %d", len(s.Manifest.Clusters))
		for _, c := range s.Manifest.Clusters {
			joined := strings.Join(textutil.SplitCommaList(c.Value), ",")
			line("cluster.%s = %s", c.Key, joined)
		}
	}

	if s.Trace != nil {
		line("trace.metadata = %s", textutil.NormalizePath(s.Manifest.TraceMetadata, false))
		line("trace_buffers.ids = %s", strings.Join(s.Trace.BufferIDs, ","))

		for _, buf := range s.Trace.Buffers {
			line("[[trace_buffer]]")
			line("id = %s", buf.ID)
			line("name = %s", buf.Name)
			line("format = %s", buf.Format)
			line("files = %s", strings.Join(buf.Files, ","))
		}
		for _, e := range s.Trace.CoreTraceSources {
			line("[[core_trace_source]]")
			line("core = %s", e.Key)
			line("source = %s", e.Value)
		}
		for _, e := range s.Trace.SourceBuffers {
			line("[[source_buffer]]")
			line("source = %s", e.Key)
			line("buffers = %s", e.Value)
		}
	}

	return bw.Flush()
}
