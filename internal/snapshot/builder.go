package snapshot

import (
	"fmt"
	"sort"
	"strings"

	"github.com/muurk/snapdump/internal/ini"
	"github.com/muurk/snapdump/internal/textutil"
)

// Section and key names of the snapshot dialect.
const (
	sectionSnapshot     = "snapshot"
	sectionDeviceList   = "device_list"
	sectionClusters     = "clusters"
	sectionTrace        = "trace"
	sectionDevice       = "device"
	sectionRegs         = "regs"
	sectionTraceBuffers = "trace_buffers"
	sectionCoreSources  = "core_trace_sources"
	sectionSourceBufs   = "source_buffers"

	dumpSectionPrefix = "dump"
)

// BuildManifest interprets a parsed snapshot.ini. path names the file for
// error messages only.
func BuildManifest(doc *ini.Document, path string) (*Manifest, error) {
	m := &Manifest{}

	if sec := doc.Section(sectionSnapshot); sec != nil {
		var gotVersion, gotDescription bool
		for _, e := range sec.Entries {
			switch e.Key {
			case "version":
				if gotVersion {
					return nil, NewSemanticError(path,
						"duplicate version key in [snapshot]: "+path)
				}
				m.Version = e.Value
				gotVersion = true
			case "description":
				if gotDescription {
					return nil, NewSemanticError(path,
						"duplicate description key in [snapshot]: "+path)
				}
				m.Description = e.Value
				gotDescription = true
			}
		}
	}
	if m.Version == "" {
		return nil, NewSemanticError(path, "missing required [snapshot] version: "+path)
	}

	list := doc.Section(sectionDeviceList)
	if list == nil {
		return nil, NewSemanticError(path, "missing required [device_list] section: "+path)
	}
	for _, e := range list.Entries {
		m.DeviceList = append(m.DeviceList, ListEntry{Key: e.Key, Value: e.Value})
	}

	if sec := doc.Section(sectionClusters); sec != nil {
		for _, e := range sec.Entries {
			m.Clusters = append(m.Clusters, ListEntry{Key: e.Key, Value: e.Value})
		}
	}

	// First metadata key wins; later duplicates are ignored.
	if sec := doc.Section(sectionTrace); sec != nil {
		for _, e := range sec.Entries {
			if e.Key == "metadata" {
				m.TraceMetadata = e.Value
				break
			}
		}
	}

	return m, nil
}

// BuildDevice interprets a parsed device description file. relPath is the
// manifest-relative path of the file, kept on the model and used in error
// messages.
func BuildDevice(doc *ini.Document, relPath string) (*Device, error) {
	dev := &Device{SourcePath: textutil.NormalizePath(relPath, false)}

	sec := doc.Section(sectionDevice)
	if sec == nil {
		return nil, NewSemanticError(relPath, "device ini missing [device] section: "+relPath)
	}
	gotName := false
	for _, e := range sec.Entries {
		switch e.Key {
		case "name":
			dev.Name = e.Value
			gotName = true
		case "class":
			dev.Class = e.Value
		case "type":
			dev.Type = e.Value
		case "location":
			dev.Location = e.Value
		}
	}
	if !gotName {
		return nil, NewSemanticError(relPath, "device ini missing [device] name: "+relPath)
	}

	if regs := doc.Section(sectionRegs); regs != nil {
		for i, e := range regs.Entries {
			reg := RegisterValue{
				Value:    textutil.TrimQuotes(e.Value),
				Position: i,
			}
			parseRegisterKey(e.Key, &reg)
			dev.Registers = append(dev.Registers, reg)
		}
	}

	for _, sec := range doc.Sections() {
		if !strings.HasPrefix(sec.Name, dumpSectionPrefix) {
			continue
		}
		dump, err := buildDump(sec, relPath)
		if err != nil {
			return nil, err
		}
		dev.Dumps = append(dev.Dumps, *dump)
	}

	return dev, nil
}

func buildDump(sec *ini.Section, relPath string) (*MemoryDump, error) {
	dump := &MemoryDump{Section: sec.Name}
	var gotFile, gotAddress bool
	for _, e := range sec.Entries {
		switch e.Key {
		case "file":
			dump.File = textutil.NormalizePath(textutil.TrimQuotes(e.Value), false)
			gotFile = true
		case "space":
			dump.Space = textutil.TrimQuotes(e.Value)
		case "address":
			dump.Address = strings.TrimSpace(e.Value)
			val, ok := textutil.ParseUnsigned(dump.Address)
			if !ok {
				return nil, NewSemanticError(relPath, "invalid dump address: "+dump.Address)
			}
			dump.AddressValue = val
			gotAddress = true
		case "length":
			dump.Length = strings.TrimSpace(e.Value)
		case "offset":
			dump.Offset = strings.TrimSpace(e.Value)
		}
	}
	if !gotAddress || !gotFile {
		return nil, NewSemanticError(relPath,
			fmt.Sprintf("dump section missing file or address: %s/%s", relPath, sec.Name))
	}
	return dump, nil
}

// parseRegisterKey splits a [regs] key of the form "name(tok, key:value, ...)"
// into display name and metadata. Without a matching parenthesis pair the
// whole key, trimmed, is the display name. Recognized metadata keys are "id"
// and "size"; a bare token becomes the id only if none is set yet; anything
// else is ignored. A fully numeric id is additionally retained as a number
// for ordering.
func parseRegisterKey(raw string, reg *RegisterValue) {
	open := strings.IndexByte(raw, '(')
	closing := strings.LastIndexByte(raw, ')')
	if open < 0 || closing < 0 || closing <= open {
		reg.Name = strings.TrimSpace(raw)
		return
	}

	reg.Name = strings.TrimSpace(raw[:open])
	for _, token := range textutil.SplitCommaList(raw[open+1 : closing]) {
		if colon := strings.IndexByte(token, ':'); colon >= 0 {
			key := strings.TrimSpace(token[:colon])
			value := strings.TrimSpace(token[colon+1:])
			switch key {
			case "id":
				reg.ID = value
				reg.HasID = true
			case "size":
				reg.Size = value
				reg.HasSize = true
			}
		} else if !reg.HasID {
			reg.ID = token
			reg.HasID = true
		}
	}

	if reg.HasID {
		if v, ok := textutil.ParseUnsigned(reg.ID); ok {
			reg.IDNumeric = true
			reg.IDValue = v
		}
	}
}

// BuildTraceMetadata interprets a parsed trace-metadata file. path names the
// file for error messages only.
func BuildTraceMetadata(doc *ini.Document, path string) (*TraceMetadata, error) {
	sec := doc.Section(sectionTraceBuffers)
	if sec == nil {
		return nil, NewSemanticError(path, "missing required [trace_buffers] section in "+path)
	}

	var ids []string
	for _, e := range sec.Entries {
		if e.Key == "buffers" {
			ids = textutil.SplitCommaList(e.Value)
			break
		}
	}
	if len(ids) == 0 {
		return nil, NewSemanticError(path, "trace metadata missing buffers list: "+path)
	}

	sort.Strings(ids)
	ids = dedupSorted(ids)

	tm := &TraceMetadata{BufferIDs: ids}
	for _, id := range ids {
		bsec := doc.Section(id)
		if bsec == nil {
			return nil, NewSemanticError(path, "missing buffer section: "+id)
		}
		buf := TraceBuffer{ID: id}
		var gotName, gotFile bool
		for _, e := range bsec.Entries {
			switch e.Key {
			case "name":
				buf.Name = e.Value
				gotName = true
			case "file":
				buf.Files = nil
				for _, f := range textutil.SplitCommaList(e.Value) {
					buf.Files = append(buf.Files,
						textutil.NormalizePath(textutil.TrimQuotes(f), false))
				}
				gotFile = true
			case "format":
				buf.Format = e.Value
			}
		}
		if !gotName || !gotFile {
			return nil, NewSemanticError(path, "trace buffer section missing name or file: "+id)
		}
		tm.Buffers = append(tm.Buffers, buf)
	}

	if sec := doc.Section(sectionCoreSources); sec != nil {
		for _, e := range sec.Entries {
			tm.CoreTraceSources = append(tm.CoreTraceSources,
				ListEntry{Key: e.Key, Value: e.Value})
		}
	}
	if sec := doc.Section(sectionSourceBufs); sec != nil {
		for _, e := range sec.Entries {
			// Re-join as a canonical comma string with each element trimmed.
			joined := strings.Join(textutil.SplitCommaList(e.Value), ",")
			tm.SourceBuffers = append(tm.SourceBuffers,
				ListEntry{Key: e.Key, Value: joined})
		}
	}

	return tm, nil
}

func dedupSorted(in []string) []string {
	out := in[:0]
	for i, s := range in {
		if i == 0 || s != in[i-1] {
			out = append(out, s)
		}
	}
	return out
}
