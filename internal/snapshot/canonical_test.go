package snapshot

import (
	"reflect"
	"testing"
)

// TestCanonicalizeDevices tests device ordering by name
func TestCanonicalizeDevices(t *testing.T) {
	s := &Snapshot{
		Devices: []Device{{Name: "core1"}, {Name: "core0"}, {Name: "dap"}},
		Manifest: Manifest{
			DeviceList: []ListEntry{{"core1", "b.ini"}, {"core0", "a.ini"}},
			Clusters:   []ListEntry{{"z", "core1"}, {"a", "core0"}},
		},
	}
	s.Canonicalize()

	gotNames := []string{s.Devices[0].Name, s.Devices[1].Name, s.Devices[2].Name}
	if !reflect.DeepEqual(gotNames, []string{"core0", "core1", "dap"}) {
		t.Errorf("device order = %v", gotNames)
	}
	if s.Manifest.DeviceList[0].Key != "core0" {
		t.Errorf("device_list order = %v", s.Manifest.DeviceList)
	}
	if s.Manifest.Clusters[0].Key != "a" {
		t.Errorf("cluster order = %v", s.Manifest.Clusters)
	}
}

// TestCanonicalizeRegisters tests the full register comparison chain
func TestCanonicalizeRegisters(t *testing.T) {
	tests := []struct {
		name string
		in   []RegisterValue
		want []string // expected order of name/id pairs
	}{
		{
			name: "By name",
			in: []RegisterValue{
				{Name: "SP", Position: 0},
				{Name: "PC", Position: 1},
			},
			want: []string{"PC/", "SP/"},
		},
		{
			name: "Id-less sorts before id-bearing",
			in: []RegisterValue{
				{Name: "R", ID: "1", HasID: true, IDNumeric: true, IDValue: 1, Position: 0},
				{Name: "R", Position: 1},
			},
			want: []string{"R/", "R/1"},
		},
		{
			name: "Numeric ids sort numerically",
			in: []RegisterValue{
				{Name: "R", ID: "10", HasID: true, IDNumeric: true, IDValue: 10, Position: 0},
				{Name: "R", ID: "9", HasID: true, IDNumeric: true, IDValue: 9, Position: 1},
			},
			want: []string{"R/9", "R/10"},
		},
		{
			name: "Mixed ids fall back to raw text",
			in: []RegisterValue{
				{Name: "R", ID: "beta", HasID: true, Position: 0},
				{Name: "R", ID: "9", HasID: true, IDNumeric: true, IDValue: 9, Position: 1},
			},
			want: []string{"R/9", "R/beta"},
		},
		{
			name: "Position is the final tie-break",
			in: []RegisterValue{
				{Name: "R", ID: "x", HasID: true, Position: 1},
				{Name: "R", ID: "x", HasID: true, Position: 0},
			},
			want: []string{"R/x", "R/x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			regs := append([]RegisterValue(nil), tt.in...)
			sortRegisters(regs)
			got := make([]string, len(regs))
			for i, reg := range regs {
				got[i] = reg.Name + "/" + reg.ID
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("order = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestCanonicalizeRegistersPositionTieBreak tests that equal registers keep
// declaration order via the position field
func TestCanonicalizeRegistersPositionTieBreak(t *testing.T) {
	regs := []RegisterValue{
		{Name: "R", Value: "second", Position: 1},
		{Name: "R", Value: "first", Position: 0},
	}
	sortRegisters(regs)
	if regs[0].Value != "first" || regs[1].Value != "second" {
		t.Errorf("tie-break order = [%s %s]", regs[0].Value, regs[1].Value)
	}
}

// TestCanonicalizeDumps tests dump ordering by section then address
func TestCanonicalizeDumps(t *testing.T) {
	dumps := []MemoryDump{
		{Section: "dump2", AddressValue: 0x100},
		{Section: "dump1", AddressValue: 0x2000},
		{Section: "dump1", AddressValue: 0x1000},
	}
	sortDumps(dumps)

	want := []MemoryDump{
		{Section: "dump1", AddressValue: 0x1000},
		{Section: "dump1", AddressValue: 0x2000},
		{Section: "dump2", AddressValue: 0x100},
	}
	if !reflect.DeepEqual(dumps, want) {
		t.Errorf("dump order = %+v", dumps)
	}
}

// TestCanonicalizeTrace tests buffer id dedup/sort and mapping key order
func TestCanonicalizeTrace(t *testing.T) {
	s := &Snapshot{
		Manifest: Manifest{Version: "1.0"},
		Trace: &TraceMetadata{
			BufferIDs: []string{"b2", "b1", "b1"},
			Buffers:   []TraceBuffer{{ID: "b2"}, {ID: "b1"}},
			CoreTraceSources: []ListEntry{
				{"core1", "src1"}, {"core0", "src0"},
			},
			SourceBuffers: []ListEntry{
				{"src1", "b2"}, {"src0", "b1"},
			},
		},
	}
	s.Canonicalize()

	if !reflect.DeepEqual(s.Trace.BufferIDs, []string{"b1", "b2"}) {
		t.Errorf("BufferIDs = %v", s.Trace.BufferIDs)
	}
	if s.Trace.Buffers[0].ID != "b1" {
		t.Errorf("buffer order = %+v", s.Trace.Buffers)
	}
	if s.Trace.CoreTraceSources[0].Key != "core0" {
		t.Errorf("core source order = %v", s.Trace.CoreTraceSources)
	}
	if s.Trace.SourceBuffers[0].Key != "src0" {
		t.Errorf("source buffer order = %v", s.Trace.SourceBuffers)
	}
}

// TestCanonicalizeIdempotent tests that a second pass changes nothing
func TestCanonicalizeIdempotent(t *testing.T) {
	s := &Snapshot{
		Devices: []Device{
			{Name: "core1", Registers: []RegisterValue{
				{Name: "R", ID: "10", HasID: true, IDNumeric: true, IDValue: 10},
				{Name: "R", ID: "9", HasID: true, IDNumeric: true, IDValue: 9, Position: 1},
			}},
			{Name: "core0"},
		},
		Manifest: Manifest{DeviceList: []ListEntry{{"b", "b.ini"}, {"a", "a.ini"}}},
	}
	s.Canonicalize()
	first := *s
	firstDevices := append([]Device(nil), s.Devices...)

	s.Canonicalize()
	if !reflect.DeepEqual(s.Devices, firstDevices) {
		t.Error("second Canonicalize changed device order")
	}
	if !reflect.DeepEqual(s.Manifest, first.Manifest) {
		t.Error("second Canonicalize changed manifest")
	}
}
