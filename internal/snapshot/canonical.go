package snapshot

import "sort"

// Canonicalize applies the deterministic ordering rules to every collection
// in the model. After this pass, two snapshots with identical semantic
// content serialize to byte-identical output regardless of how their input
// files ordered sections, keys, registers or dumps.
//
// Rules:
//   - devices ascending by name
//   - device-list and cluster entries ascending by key
//   - registers by (name; id-less before id-bearing; numeric id value when
//     both parse, else raw id text; declaration position as final tie-break)
//   - memory dumps by (owning section name, numeric address), stable
//   - trace-buffer ids deduplicated and lexically sorted
//   - core-trace-source and source-buffer mappings ascending by key
func (s *Snapshot) Canonicalize() {
	sort.Slice(s.Devices, func(i, j int) bool {
		return s.Devices[i].Name < s.Devices[j].Name
	})
	for i := range s.Devices {
		dev := &s.Devices[i]
		sortRegisters(dev.Registers)
		sortDumps(dev.Dumps)
	}

	sortListEntries(s.Manifest.DeviceList)
	sortListEntries(s.Manifest.Clusters)

	if s.Trace != nil {
		sort.Strings(s.Trace.BufferIDs)
		s.Trace.BufferIDs = dedupSorted(s.Trace.BufferIDs)
		sort.Slice(s.Trace.Buffers, func(i, j int) bool {
			return s.Trace.Buffers[i].ID < s.Trace.Buffers[j].ID
		})
		sortListEntries(s.Trace.CoreTraceSources)
		sortListEntries(s.Trace.SourceBuffers)
	}
}

func sortListEntries(entries []ListEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Key < entries[j].Key
	})
}

func sortRegisters(regs []RegisterValue) {
	sort.Slice(regs, func(i, j int) bool {
		return lessRegister(&regs[i], &regs[j])
	})
}

// lessRegister is a total order: the declaration position tie-break makes
// any two distinct registers comparable.
func lessRegister(a, b *RegisterValue) bool {
	if a.Name != b.Name {
		return a.Name < b.Name
	}
	if a.HasID != b.HasID {
		return !a.HasID
	}
	if a.HasID {
		if a.IDNumeric && b.IDNumeric && a.IDValue != b.IDValue {
			return a.IDValue < b.IDValue
		}
		if a.ID != b.ID {
			return a.ID < b.ID
		}
	}
	return a.Position < b.Position
}

func sortDumps(dumps []MemoryDump) {
	sort.SliceStable(dumps, func(i, j int) bool {
		if dumps[i].Section != dumps[j].Section {
			return dumps[i].Section < dumps[j].Section
		}
		return dumps[i].AddressValue < dumps[j].AddressValue
	})
}
